package about

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"
)

// AppMarkdown is the content of the "About BlocNote" dialog.
const AppMarkdown = `# BlocNote

A small text editor for the terminal.

Par Landry Simo.

---

- File: new, open, save, save as
- Edit: undo, redo, cut, copy, paste, select all
- Format: font, colours, read only
`

// ToolkitMarkdown is the content of the "About Bubble Tea" dialog.
const ToolkitMarkdown = `# Bubble Tea

BlocNote is built on the Charm stack.

- bubbletea: the event loop
- bubbles: text area, text input and file picker
- lipgloss: styling and layout
`

var (
	headingStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("63"))
	subheadStyle = lipgloss.NewStyle().Bold(true)
	ruleStyle    = lipgloss.NewStyle().Faint(true)
)

// Render converts markdown into styled terminal text, wrapped at width.
// Only headings, paragraphs, list items and rules are kept.
func Render(markdown string, width int) (string, error) {
	source := []byte(markdown)
	root := goldmark.DefaultParser().Parse(text.NewReader(source))

	var blocks []string
	wrap := lipgloss.NewStyle()
	if width > 0 {
		wrap = wrap.Width(width)
	}

	walker := func(node ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}

		switch n := node.(type) {
		case *ast.Heading:
			content := strings.TrimSpace(string(n.Text(source)))
			if n.Level == 1 {
				blocks = append(blocks, headingStyle.Render(content))
			} else {
				blocks = append(blocks, subheadStyle.Render(content))
			}
			return ast.WalkSkipChildren, nil
		case *ast.Paragraph:
			blocks = append(blocks, wrap.Render(strings.TrimSpace(string(n.Text(source)))))
			return ast.WalkSkipChildren, nil
		case *ast.ListItem:
			content := strings.TrimSpace(string(n.Text(source)))
			blocks = append(blocks, wrap.Render("• "+content))
			return ast.WalkSkipChildren, nil
		case *ast.ThematicBreak:
			ruleWidth := width
			if ruleWidth <= 0 {
				ruleWidth = 20
			}
			blocks = append(blocks, ruleStyle.Render(strings.Repeat("─", ruleWidth)))
			return ast.WalkSkipChildren, nil
		}
		return ast.WalkContinue, nil
	}

	if err := ast.Walk(root, walker); err != nil {
		return "", err
	}

	return strings.Join(blocks, "\n"), nil
}
