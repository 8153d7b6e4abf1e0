package main

import "github.com/charmbracelet/bubbles/key"

// ---------------------------------------------------------------------------
// Key bindings
// ---------------------------------------------------------------------------

type keyMap struct {
	UpDown    key.Binding
	Open      key.Binding
	Search    key.Binding
	Add       key.Binding
	Edit      key.Binding
	Delete    key.Binding
	Tags      key.Binding
	ClearTag  key.Binding
	Quit      key.Binding
	Confirm   key.Binding
	Cancel    key.Binding
	NextField key.Binding
	PrevField key.Binding
	Yes       key.Binding
	No        key.Binding
}

func newKeyMap() keyMap {
	return keyMap{
		UpDown:    key.NewBinding(key.WithKeys("up", "down", "j", "k"), key.WithHelp("j/k", "navigate")),
		Open:      key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "open")),
		Search:    key.NewBinding(key.WithKeys("/"), key.WithHelp("/", "search")),
		Add:       key.NewBinding(key.WithKeys("a"), key.WithHelp("a", "add")),
		Edit:      key.NewBinding(key.WithKeys("e"), key.WithHelp("e", "edit")),
		Delete:    key.NewBinding(key.WithKeys("d"), key.WithHelp("d", "delete")),
		Tags:      key.NewBinding(key.WithKeys("t"), key.WithHelp("t", "tags")),
		ClearTag:  key.NewBinding(key.WithKeys("c"), key.WithHelp("c", "clear filter")),
		Quit:      key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
		Confirm:   key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "confirm")),
		Cancel:    key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "cancel")),
		NextField: key.NewBinding(key.WithKeys("tab", "enter"), key.WithHelp("tab", "next field")),
		PrevField: key.NewBinding(key.WithKeys("shift+tab"), key.WithHelp("shift+tab", "prev field")),
		Yes:       key.NewBinding(key.WithKeys("y", "enter"), key.WithHelp("y", "yes")),
		No:        key.NewBinding(key.WithKeys("n", "esc"), key.WithHelp("n", "no")),
	}
}

// helpFor returns the footer bindings for the given interaction mode.
func (k keyMap) helpFor(mode int) []key.Binding {
	switch mode {
	case modeSearching:
		return []key.Binding{k.UpDown, k.Confirm, k.Cancel}
	case modeAdding, modeEditing:
		return []key.Binding{k.NextField, k.PrevField, k.Cancel}
	case modeConfirmDelete:
		return []key.Binding{k.Yes, k.No}
	case modeChoosingTag:
		return []key.Binding{k.UpDown, k.Confirm, k.Cancel}
	default:
		return []key.Binding{k.UpDown, k.Open, k.Search, k.Add, k.Edit, k.Delete, k.Tags, k.ClearTag, k.Quit}
	}
}
