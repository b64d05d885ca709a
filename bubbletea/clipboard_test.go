package bubbletea_test

import (
	"testing"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/fwojciec/termclip"
	"github.com/fwojciec/termclip/bubbletea"
	"github.com/fwojciec/termclip/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newClipboard(supported, result bool, payloads *[]string) *termclip.Clipboard {
	return termclip.NewClipboard(&mock.Transport{
		IsSupportedFn: func() bool { return supported },
		SetClipboardFn: func(_ termclip.SelectionTarget, payload []byte) bool {
			*payloads = append(*payloads, string(payload))
			return result
		},
	})
}

func TestCopyCmd(t *testing.T) {
	t.Parallel()

	t.Run("reports success", func(t *testing.T) {
		t.Parallel()

		var payloads []string
		cmd := bubbletea.CopyCmd(newClipboard(true, true, &payloads), termclip.PrimarySelection, "hello")
		require.NotNil(t, cmd)

		msg := cmd()

		assert.Equal(t, bubbletea.ClipboardMsg{Op: bubbletea.OpCopy, Target: termclip.PrimarySelection, OK: true}, msg)
		assert.Equal(t, []string{"aGVsbG8="}, payloads)
	})

	t.Run("does not run until invoked", func(t *testing.T) {
		t.Parallel()

		var payloads []string
		_ = bubbletea.CopyCmd(newClipboard(true, true, &payloads), termclip.ClipboardBuffer, "hello")

		assert.Empty(t, payloads)
	})

	t.Run("reports unsupported", func(t *testing.T) {
		t.Parallel()

		var payloads []string
		msg := bubbletea.CopyCmd(newClipboard(false, true, &payloads), termclip.ClipboardBuffer, "hello")()

		assert.False(t, msg.(bubbletea.ClipboardMsg).OK)
		assert.Empty(t, payloads)
	})
}

func TestClearCmd(t *testing.T) {
	t.Parallel()

	var payloads []string
	msg := bubbletea.ClearCmd(newClipboard(true, false, &payloads), termclip.SecondarySelection)()

	assert.Equal(t, bubbletea.ClipboardMsg{Op: bubbletea.OpClear, Target: termclip.SecondarySelection, OK: false}, msg)
	assert.Equal(t, []string{""}, payloads)
}

func TestHandleKey(t *testing.T) {
	t.Parallel()

	km := bubbletea.DefaultClipboardKeyMap()
	text := func() string { return "selected line" }

	t.Run("y copies", func(t *testing.T) {
		t.Parallel()

		var payloads []string
		cb := newClipboard(true, true, &payloads)
		cmd := bubbletea.HandleKey(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'y'}}, km, cb, termclip.ClipboardBuffer, text)
		require.NotNil(t, cmd)

		msg := cmd().(bubbletea.ClipboardMsg)

		assert.Equal(t, bubbletea.OpCopy, msg.Op)
		assert.True(t, msg.OK)
		assert.Equal(t, []string{string(termclip.EncodePayload("selected line"))}, payloads)
	})

	t.Run("ctrl+x clears", func(t *testing.T) {
		t.Parallel()

		var payloads []string
		cb := newClipboard(true, true, &payloads)
		cmd := bubbletea.HandleKey(tea.KeyMsg{Type: tea.KeyCtrlX}, km, cb, termclip.ClipboardBuffer, text)
		require.NotNil(t, cmd)

		msg := cmd().(bubbletea.ClipboardMsg)

		assert.Equal(t, bubbletea.OpClear, msg.Op)
		assert.Equal(t, []string{""}, payloads)
	})

	t.Run("other keys are ignored", func(t *testing.T) {
		t.Parallel()

		var payloads []string
		cb := newClipboard(true, true, &payloads)

		cmd := bubbletea.HandleKey(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'j'}}, km, cb, termclip.ClipboardBuffer, text)

		assert.Nil(t, cmd)
	})
}

func TestDefaultClipboardKeyMap(t *testing.T) {
	t.Parallel()

	km := bubbletea.DefaultClipboardKeyMap()

	assert.True(t, key.Matches(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'y'}}, km.Copy))
	assert.True(t, key.Matches(tea.KeyMsg{Type: tea.KeyCtrlX}, km.Clear))
	assert.Len(t, km.ShortHelp(), 2)
	assert.Len(t, km.FullHelp(), 1)
}

func TestOp_String(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "copy", bubbletea.OpCopy.String())
	assert.Equal(t, "clear", bubbletea.OpClear.String())
	assert.Equal(t, "unknown", bubbletea.Op(7).String())
}
