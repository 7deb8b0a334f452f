package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	New       key.Binding
	Open      key.Binding
	Save      key.Binding
	SaveAs    key.Binding
	Quit      key.Binding
	Undo      key.Binding
	Redo      key.Binding
	Cut       key.Binding
	Copy      key.Binding
	Paste     key.Binding
	SelectAll key.Binding
	ReadOnly  key.Binding
	Menu      key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		New:       key.NewBinding(key.WithKeys("ctrl+n"), key.WithHelp("^N", "new")),
		Open:      key.NewBinding(key.WithKeys("ctrl+o"), key.WithHelp("^O", "open")),
		Save:      key.NewBinding(key.WithKeys("ctrl+s"), key.WithHelp("^S", "save")),
		SaveAs:    key.NewBinding(key.WithKeys("f12", "alt+s"), key.WithHelp("F12", "save as")),
		Quit:      key.NewBinding(key.WithKeys("ctrl+q"), key.WithHelp("^Q", "quit")),
		Undo:      key.NewBinding(key.WithKeys("ctrl+z"), key.WithHelp("^Z", "undo")),
		Redo:      key.NewBinding(key.WithKeys("ctrl+y"), key.WithHelp("^Y", "redo")),
		Cut:       key.NewBinding(key.WithKeys("ctrl+x"), key.WithHelp("^X", "cut")),
		Copy:      key.NewBinding(key.WithKeys("ctrl+c"), key.WithHelp("^C", "copy")),
		Paste:     key.NewBinding(key.WithKeys("ctrl+v"), key.WithHelp("^V", "paste")),
		SelectAll: key.NewBinding(key.WithKeys("ctrl+a"), key.WithHelp("^A", "select all")),
		ReadOnly:  key.NewBinding(key.WithKeys("ctrl+r"), key.WithHelp("^R", "read only")),
		Menu:      key.NewBinding(key.WithKeys("f10", "esc"), key.WithHelp("F10", "menu")),
	}
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Menu, k.Save, k.Open, k.New, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.New, k.Open, k.Save, k.SaveAs, k.Quit},
		{k.Undo, k.Redo, k.Cut, k.Copy, k.Paste, k.SelectAll},
		{k.ReadOnly, k.Menu},
	}
}
