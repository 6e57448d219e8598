package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Submit key.Binding
	Delete key.Binding
	Cancel key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Submit: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "submit"),
		),
		Delete: key.NewBinding(
			key.WithKeys("backspace", "delete"),
			key.WithHelp("backspace", "delete"),
		),
		Cancel: key.NewBinding(
			key.WithKeys("ctrl+c", "esc"),
			key.WithHelp("esc", "quit"),
		),
	}
}

func (k keyMap) help() string {
	parts := ""
	for i, b := range []key.Binding{k.Submit, k.Delete, k.Cancel} {
		if i > 0 {
			parts += " · "
		}
		h := b.Help()
		parts += h.Key + " " + h.Desc
	}
	return parts
}
