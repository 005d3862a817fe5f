package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	// list pane
	Up     key.Binding
	Down   key.Binding
	Select key.Binding
	Delete key.Binding
	New    key.Binding
	Edit   key.Binding
	Quit   key.Binding

	// detail pane
	NextField key.Binding
	PrevField key.Binding
	Save      key.Binding
	Cancel    key.Binding

	ForceQuit key.Binding
}

var keys = keyMap{
	Up:     key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
	Down:   key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
	Select: key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "select")),
	Delete: key.NewBinding(key.WithKeys("d", "x", "delete"), key.WithHelp("d", "delete")),
	New:    key.NewBinding(key.WithKeys("n"), key.WithHelp("n", "new")),
	Edit:   key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "form")),
	Quit:   key.NewBinding(key.WithKeys("q"), key.WithHelp("q", "quit")),

	NextField: key.NewBinding(key.WithKeys("tab", "down"), key.WithHelp("tab", "next field")),
	PrevField: key.NewBinding(key.WithKeys("shift+tab", "up"), key.WithHelp("shift+tab", "prev field")),
	Save:      key.NewBinding(key.WithKeys("enter", "ctrl+s"), key.WithHelp("enter", "save")),
	Cancel:    key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "cancel")),

	ForceQuit: key.NewBinding(key.WithKeys("ctrl+c")),
}

func (k keyMap) listHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Select, k.Delete, k.New, k.Edit, k.Quit}
}

func (k keyMap) detailHelp() []key.Binding {
	return []key.Binding{k.NextField, k.Save, k.Cancel}
}
