// Package bubbletea exposes clipboard operations as Bubble Tea commands.
package bubbletea

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/fwojciec/termclip"
)

// Op identifies a clipboard operation.
type Op int

// Op constants.
const (
	OpCopy Op = iota
	OpClear
)

// String returns the lowercase operation name.
func (o Op) String() string {
	switch o {
	case OpCopy:
		return "copy"
	case OpClear:
		return "clear"
	default:
		return "unknown"
	}
}

// ClipboardMsg reports the outcome of a clipboard command.
type ClipboardMsg struct {
	Op     Op
	Target termclip.SelectionTarget
	OK     bool // False when unsupported or when the write failed
}

// CopyCmd returns a command that copies text to target.
func CopyCmd(cb *termclip.Clipboard, target termclip.SelectionTarget, text string) tea.Cmd {
	return func() tea.Msg {
		return ClipboardMsg{Op: OpCopy, Target: target, OK: cb.CopyTo(target, text)}
	}
}

// ClearCmd returns a command that clears target.
func ClearCmd(cb *termclip.Clipboard, target termclip.SelectionTarget) tea.Cmd {
	return func() tea.Msg {
		return ClipboardMsg{Op: OpClear, Target: target, OK: cb.ClearTarget(target)}
	}
}

// HandleKey returns the clipboard command bound to msg in km, or nil when
// msg matches neither binding. text supplies the content to copy lazily.
func HandleKey(msg tea.KeyMsg, km ClipboardKeyMap, cb *termclip.Clipboard, target termclip.SelectionTarget, text func() string) tea.Cmd {
	switch {
	case key.Matches(msg, km.Copy):
		return CopyCmd(cb, target, text())
	case key.Matches(msg, km.Clear):
		return ClearCmd(cb, target)
	}
	return nil
}
