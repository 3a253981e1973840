package types

import "github.com/charmbracelet/bubbles/key"

// KeyMap lists the normal-mode bindings; it also feeds the help footer
type KeyMap struct {
	Add    key.Binding
	Remove key.Binding
	Export key.Binding
	Reset  key.Binding
	View   key.Binding
	Cancel key.Binding
	Help   key.Binding
	Quit   key.Binding
}

// DefaultKeyMap returns the standard bindings
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Add:    key.NewBinding(key.WithKeys("+"), key.WithHelp("+", "lasso adds")),
		Remove: key.NewBinding(key.WithKeys("-"), key.WithHelp("-", "lasso removes")),
		Export: key.NewBinding(key.WithKeys("d"), key.WithHelp("d", "save selected")),
		Reset:  key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "reset")),
		View:   key.NewBinding(key.WithKeys("v"), key.WithHelp("v", "view last save")),
		Cancel: key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "drop lasso")),
		Help:   key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "more keys")),
		Quit:   key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

// ShortHelp implements help.KeyMap
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Add, k.Remove, k.Export, k.Reset, k.Help, k.Quit}
}

// FullHelp implements help.KeyMap
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Add, k.Remove, k.Cancel},
		{k.Export, k.View, k.Reset},
		{k.Help, k.Quit},
	}
}
