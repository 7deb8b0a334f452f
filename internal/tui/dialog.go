package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/filepicker"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

type dialogKind int

const (
	dialogNone dialogKind = iota
	dialogConfirmSave
	dialogOpen
	dialogSaveAs
	dialogFont
	dialogBackground
	dialogForeground
	dialogAbout
)

var confirmChoices = []string{"Save", "Don't Save", "Cancel"}

const (
	confirmSave = iota
	confirmDiscard
	confirmCancel
)

type dialogState struct {
	kind   dialogKind
	cursor int
	input  textinput.Model
	picker filepicker.Model
	body   string
}

func (d dialogState) active() bool {
	return d.kind != dialogNone
}

func newConfirmDialog() dialogState {
	return dialogState{kind: dialogConfirmSave}
}

func newSaveAsDialog(initial string) (dialogState, tea.Cmd) {
	in := textinput.New()
	in.Prompt = "File: "
	in.Placeholder = "path/to/file.txt"
	in.SetValue(initial)
	in.CursorEnd()
	cmd := in.Focus()
	return dialogState{kind: dialogSaveAs, input: in}, cmd
}

func newOpenDialog(dir string, width, height int) (dialogState, tea.Cmd) {
	fp := filepicker.New()
	fp.CurrentDirectory = dir
	fp.ShowHidden = false
	fp.DirAllowed = false
	fp.FileAllowed = true
	fp, _ = fp.Update(tea.WindowSizeMsg{Width: width, Height: pickerHeight(height)})
	return dialogState{kind: dialogOpen, picker: fp}, fp.Init()
}

func pickerHeight(height int) int {
	// Leaves room for the chrome and the dialog border.
	if h := height - 4; h > 8 {
		return h
	}
	return 8
}

func newChoiceDialog(kind dialogKind, current int) dialogState {
	return dialogState{kind: kind, cursor: current}
}

func newAboutDialog(body string) dialogState {
	return dialogState{kind: dialogAbout, body: body}
}

// choices returns the option labels of a list dialog.
func (d dialogState) choices() []string {
	switch d.kind {
	case dialogConfirmSave:
		return confirmChoices
	case dialogFont:
		names := make([]string, len(fonts))
		for i, f := range fonts {
			names[i] = f.name
		}
		return names
	case dialogBackground, dialogForeground:
		names := make([]string, len(palette))
		for i, c := range palette {
			names[i] = c.name
		}
		return names
	}
	return nil
}

func (d *dialogState) move(delta int) {
	n := len(d.choices())
	if n == 0 {
		return
	}
	d.cursor = (d.cursor + delta + n) % n
}

func (d dialogState) title() string {
	switch d.kind {
	case dialogConfirmSave:
		return "Information"
	case dialogOpen:
		return "Open a file"
	case dialogSaveAs:
		return "Save the file"
	case dialogFont:
		return "Choose a font"
	case dialogBackground:
		return "Choose the background colour"
	case dialogForeground:
		return "Choose the text colour"
	}
	return ""
}

func (d dialogState) view() string {
	var b strings.Builder
	if t := d.title(); t != "" {
		b.WriteString(headerStyle.Render(t))
		b.WriteString("\n\n")
	}

	switch d.kind {
	case dialogConfirmSave:
		b.WriteString("Your document has not been saved.\n\n")
		buttons := make([]string, len(confirmChoices))
		for i, c := range confirmChoices {
			label := fmt.Sprintf("[ %s ]", c)
			if i == d.cursor {
				label = selectedStyle.Render(label)
			}
			buttons[i] = label
		}
		b.WriteString(strings.Join(buttons, "  "))
	case dialogOpen:
		b.WriteString(d.picker.View())
		b.WriteString("\n")
		b.WriteString(faintStyle.Render("enter: open • esc: cancel"))
	case dialogSaveAs:
		b.WriteString(d.input.View())
		b.WriteString("\n\n")
		b.WriteString(faintStyle.Render("enter: save • esc: cancel"))
	case dialogFont, dialogBackground, dialogForeground:
		for i, c := range d.choices() {
			line := "  " + c
			if i == d.cursor {
				line = selectedStyle.Render("> " + c)
			}
			b.WriteString(line)
			b.WriteString("\n")
		}
		b.WriteString("\n")
		b.WriteString(faintStyle.Render("enter: apply • esc: cancel"))
	case dialogAbout:
		b.WriteString(d.body)
		b.WriteString("\n\n")
		b.WriteString(faintStyle.Render("press any key"))
	}
	return dialogStyle.Render(b.String())
}
