package ui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Accept key.Binding
	Reject key.Binding
	Open   key.Binding
	Quit   key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Accept: key.NewBinding(
			key.WithKeys("+", "a", "right"),
			key.WithHelp("+/a", "save"),
		),
		Reject: key.NewBinding(
			key.WithKeys("-", "r", "left"),
			key.WithHelp("-/r", "skip"),
		),
		Open: key.NewBinding(
			key.WithKeys("o"),
			key.WithHelp("o", "open profile"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c", "esc"),
			key.WithHelp("q", "quit"),
		),
	}
}

// ShortHelp implements help.KeyMap
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Accept, k.Reject, k.Open, k.Quit}
}

// FullHelp implements help.KeyMap
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}
