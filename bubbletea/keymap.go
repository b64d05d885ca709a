package bubbletea

import "github.com/charmbracelet/bubbles/key"

// ClipboardKeyMap defines the key bindings for clipboard operations.
type ClipboardKeyMap struct {
	Copy  key.Binding
	Clear key.Binding
}

// DefaultClipboardKeyMap returns vim-style clipboard bindings.
func DefaultClipboardKeyMap() ClipboardKeyMap {
	return ClipboardKeyMap{
		Copy: key.NewBinding(
			key.WithKeys("y"),
			key.WithHelp("y", "copy to clipboard"),
		),
		Clear: key.NewBinding(
			key.WithKeys("ctrl+x"),
			key.WithHelp("ctrl+x", "clear clipboard"),
		),
	}
}

// ShortHelp implements help.KeyMap.
func (k ClipboardKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Copy, k.Clear}
}

// FullHelp implements help.KeyMap.
func (k ClipboardKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}

