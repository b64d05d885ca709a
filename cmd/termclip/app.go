package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/fwojciec/termclip"
	"github.com/fwojciec/termclip/lipgloss"
)

var (
	// ErrNotSupported is returned when no transport can reach a clipboard.
	ErrNotSupported = errors.New("clipboard access is not supported by this terminal")
	// ErrCopyFailed is returned when the transport reports a failed write.
	ErrCopyFailed = errors.New("clipboard write failed")
)

// App encapsulates the application logic for testing.
type App struct {
	Clipboard *termclip.Clipboard
	Stdin     io.Reader                // Read text from stdin when no arguments are given
	Output    io.Writer                // Status lines; nil or Quiet suppresses them
	Status    *lipgloss.StatusRenderer // Renders status lines
	Logger    *slog.Logger
	Quiet     bool
}

// Copy places args, joined by spaces, in target. Without args, stdin is copied.
// Support is checked up front so that an unsupported terminal and a failed
// write produce different errors.
func (a *App) Copy(target termclip.SelectionTarget, args []string) error {
	text, err := a.text(args)
	if err != nil {
		return err
	}
	if !a.Clipboard.IsSupported() {
		return ErrNotSupported
	}
	ok := a.Clipboard.CopyTo(target, text)
	a.logger().Debug("copy", "target", target, "bytes", len(text), "ok", ok)
	a.println(a.Status.Copied(target, len(text), ok))
	if !ok {
		return fmt.Errorf("copy to %s: %w", target, ErrCopyFailed)
	}
	return nil
}

// Clear empties target.
func (a *App) Clear(target termclip.SelectionTarget) error {
	if !a.Clipboard.IsSupported() {
		return ErrNotSupported
	}
	ok := a.Clipboard.ClearTarget(target)
	a.logger().Debug("clear", "target", target, "ok", ok)
	a.println(a.Status.Cleared(target, ok))
	if !ok {
		return fmt.Errorf("clear %s: %w", target, ErrCopyFailed)
	}
	return nil
}

// Check reports whether clipboard access is available.
func (a *App) Check() error {
	supported := a.Clipboard.IsSupported()
	a.println(a.Status.Support(supported))
	if !supported {
		return ErrNotSupported
	}
	return nil
}

func (a *App) text(args []string) (string, error) {
	if len(args) > 0 {
		return strings.Join(args, " "), nil
	}
	if a.Stdin == nil {
		return "", nil
	}
	data, err := io.ReadAll(a.Stdin)
	if err != nil {
		return "", fmt.Errorf("read stdin: %w", err)
	}
	return string(data), nil
}

func (a *App) println(line string) {
	if a.Quiet || a.Output == nil {
		return
	}
	fmt.Fprintln(a.Output, line)
}

func (a *App) logger() *slog.Logger {
	if a.Logger == nil {
		return slog.New(slog.DiscardHandler)
	}
	return a.Logger
}
