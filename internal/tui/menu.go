package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

type action int

const (
	actionNew action = iota
	actionOpen
	actionSave
	actionSaveAs
	actionQuit
	actionUndo
	actionRedo
	actionCut
	actionCopy
	actionPaste
	actionSelectAll
	actionFont
	actionBackground
	actionForeground
	actionReadOnly
	actionAbout
	actionAboutToolkit
)

// isLifecycle reports whether a runs through the document session.
func (a action) isLifecycle() bool {
	switch a {
	case actionNew, actionOpen, actionSave, actionSaveAs, actionQuit:
		return true
	}
	return false
}

type menuItem struct {
	section string
	label   string
	hint    string
	action  action
}

var menuItems = []menuItem{
	{section: "File", label: "New", hint: "^N", action: actionNew},
	{section: "File", label: "Open…", hint: "^O", action: actionOpen},
	{section: "File", label: "Save", hint: "^S", action: actionSave},
	{section: "File", label: "Save As…", hint: "F12", action: actionSaveAs},
	{section: "File", label: "Quit", hint: "^Q", action: actionQuit},
	{section: "Edit", label: "Undo", hint: "^Z", action: actionUndo},
	{section: "Edit", label: "Redo", hint: "^Y", action: actionRedo},
	{section: "Edit", label: "Cut", hint: "^X", action: actionCut},
	{section: "Edit", label: "Copy", hint: "^C", action: actionCopy},
	{section: "Edit", label: "Paste", hint: "^V", action: actionPaste},
	{section: "Edit", label: "Select All", hint: "^A", action: actionSelectAll},
	{section: "Format", label: "Font…", action: actionFont},
	{section: "Format", label: "Background Colour…", action: actionBackground},
	{section: "Format", label: "Text Colour…", action: actionForeground},
	{section: "Format", label: "Read Only", hint: "^R", action: actionReadOnly},
	{section: "Help", label: "About BlocNote", action: actionAbout},
	{section: "Help", label: "About Bubble Tea", action: actionAboutToolkit},
}

type menuState struct {
	open   bool
	cursor int
}

func (m *menuState) toggle() {
	m.open = !m.open
	m.cursor = 0
}

func (m *menuState) up() {
	if m.cursor > 0 {
		m.cursor--
	}
}

func (m *menuState) down() {
	if m.cursor < len(menuItems)-1 {
		m.cursor++
	}
}

func (m *menuState) selected() action {
	return menuItems[m.cursor].action
}

func menuBar(width int) string {
	var sections []string
	for _, item := range menuItems {
		if len(sections) == 0 || sections[len(sections)-1] != item.section {
			sections = append(sections, item.section)
		}
	}
	return menuBarStyle.Width(width).Render(" " + strings.Join(sections, "   ") + "   " + faintStyle.Render("(F10)"))
}

func (m *menuState) view(readOnly bool) string {
	var b strings.Builder
	section := ""
	for i, item := range menuItems {
		if item.section != section {
			if section != "" {
				b.WriteString("\n")
			}
			section = item.section
			b.WriteString(headerStyle.Render(section))
			b.WriteString("\n")
		}

		label := item.label
		if item.action == actionReadOnly && readOnly {
			label += " ✓"
		}
		line := lipgloss.NewStyle().Width(22).Render("  "+label) + faintStyle.Render(item.hint)
		if i == m.cursor {
			line = selectedStyle.Render(lipgloss.NewStyle().Width(22).Render("  "+label) + item.hint)
		}
		b.WriteString(line)
		b.WriteString("\n")
	}
	return dialogStyle.Render(strings.TrimRight(b.String(), "\n"))
}
