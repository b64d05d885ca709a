// Package osc52 writes clipboard requests to a terminal as OSC 52 escape sequences.
package osc52

import (
	"encoding/base64"
	"io"
	"log/slog"

	osc52lib "github.com/aymanbagabas/go-osc52/v2"
	"github.com/fwojciec/termclip"
)

// Compile-time interface verification.
var _ termclip.Transport = (*Transport)(nil)

// Selector characters defined by xterm for the OSC 52 Pc parameter.
const (
	SelectorClipboard osc52lib.Clipboard = osc52lib.SystemClipboard
	SelectorPrimary   osc52lib.Clipboard = osc52lib.PrimaryClipboard
	SelectorSecondary osc52lib.Clipboard = 'q'
)

// Transport implements termclip.Transport by writing OSC 52 sequences to w.
type Transport struct {
	w        io.Writer
	detector termclip.Detector
	logger   *slog.Logger
}

// Option configures a Transport.
type Option func(*Transport)

// WithLogger sets the logger used for write diagnostics.
func WithLogger(logger *slog.Logger) Option {
	return func(t *Transport) {
		t.logger = logger
	}
}

// NewTransport creates a transport writing to w. Support is reported by detector.
func NewTransport(w io.Writer, detector termclip.Detector, opts ...Option) *Transport {
	t := &Transport{
		w:        w,
		detector: detector,
		logger:   slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// IsSupported asks the detector on every call.
func (t *Transport) IsSupported() bool {
	return t.detector.Supported()
}

// SetClipboard frames payload for target and writes it to the terminal.
//
// A non-empty payload must be standard base64; an empty payload clears the
// selection. QuerySelection ignores the payload and asks the terminal to
// report the clipboard instead.
func (t *Transport) SetClipboard(target termclip.SelectionTarget, payload []byte) bool {
	seq, ok := t.sequence(target, payload)
	if !ok {
		return false
	}
	n, err := seq.WriteTo(t.w)
	if err != nil {
		t.logger.Warn("osc52 write failed", "target", target, "err", err)
		return false
	}
	t.logger.Debug("osc52 sequence written", "target", target, "bytes", n)
	return true
}

func (t *Transport) sequence(target termclip.SelectionTarget, payload []byte) (osc52lib.Sequence, bool) {
	if target == termclip.QuerySelection {
		return osc52lib.Query().Clipboard(SelectorClipboard), true
	}

	sel, ok := Selector(target)
	if !ok {
		t.logger.Warn("osc52 unknown target", "target", int(target))
		return osc52lib.Sequence{}, false
	}

	if len(payload) == 0 {
		return osc52lib.Clear().Clipboard(sel), true
	}

	// go-osc52 encodes its input, so hand it the original text.
	text, err := base64.StdEncoding.DecodeString(string(payload))
	if err != nil {
		t.logger.Warn("osc52 payload is not base64", "target", target, "err", err)
		return osc52lib.Sequence{}, false
	}
	return osc52lib.New(string(text)).Clipboard(sel), true
}

// Selector maps a selection target to its OSC 52 selector character.
// QuerySelection has no selector of its own and reports false.
func Selector(target termclip.SelectionTarget) (osc52lib.Clipboard, bool) {
	switch target {
	case termclip.ClipboardBuffer:
		return SelectorClipboard, true
	case termclip.PrimarySelection:
		return SelectorPrimary, true
	case termclip.SecondarySelection:
		return SelectorSecondary, true
	default:
		return 0, false
	}
}
