// Package clipboard provides a transport that writes to the operating system
// clipboard instead of the terminal.
package clipboard

import (
	"encoding/base64"
	"log/slog"

	clipboardlib "github.com/atotto/clipboard"
	"github.com/fwojciec/termclip"
)

// Compile-time interface verification.
var _ termclip.Transport = (*Native)(nil)

// Native implements termclip.Transport using the platform clipboard utilities
// (pbcopy, xclip, xsel, wl-copy or the Windows API).
// Only the system clipboard buffer is served.
type Native struct {
	writeAll    func(text string) error
	unsupported func() bool
	logger      *slog.Logger
}

// Option configures a Native transport.
type Option func(*Native)

// WithWriteAll replaces the function that writes the clipboard.
func WithWriteAll(fn func(text string) error) Option {
	return func(n *Native) {
		n.writeAll = fn
	}
}

// WithUnsupported replaces the check for a missing clipboard utility.
func WithUnsupported(fn func() bool) Option {
	return func(n *Native) {
		n.unsupported = fn
	}
}

// WithLogger sets the logger used for write diagnostics.
func WithLogger(logger *slog.Logger) Option {
	return func(n *Native) {
		n.logger = logger
	}
}

// NewNative returns a new Native clipboard transport.
func NewNative(opts ...Option) *Native {
	n := &Native{
		writeAll:    clipboardlib.WriteAll,
		unsupported: func() bool { return clipboardlib.Unsupported },
		logger:      slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(n)
	}
	return n
}

// IsSupported reports whether a clipboard utility is available.
func (n *Native) IsSupported() bool {
	return !n.unsupported()
}

// SetClipboard decodes payload and writes it to the system clipboard.
// An empty payload clears the clipboard.
func (n *Native) SetClipboard(target termclip.SelectionTarget, payload []byte) bool {
	if target != termclip.ClipboardBuffer {
		n.logger.Debug("native clipboard ignores target", "target", target)
		return false
	}
	text, err := base64.StdEncoding.DecodeString(string(payload))
	if err != nil {
		n.logger.Warn("native clipboard payload is not base64", "err", err)
		return false
	}
	if err := n.writeAll(string(text)); err != nil {
		n.logger.Warn("native clipboard write failed", "err", err)
		return false
	}
	return true
}
