// Package logging builds the slog logger used by the termclip command.
package logging

import (
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/mattn/go-isatty"
	"github.com/pwntr/tinter"
)

// Format is the encoding of log records.
type Format string

// Log formats.
const (
	FormatAuto Format = "auto" // tinter on a terminal, JSON elsewhere
	FormatText Format = "text"
	FormatJSON Format = "json"
)

// ParseFormat maps a --log-format value to a Format. Anything unrecognised is FormatAuto.
func ParseFormat(s string) Format {
	switch strings.ToLower(s) {
	case "text", "tint", "human":
		return FormatText
	case "json":
		return FormatJSON
	}
	return FormatAuto
}

// ParseLevel maps a --log-level value to a slog.Level.
// Unparseable values fall back to warn so a plain copy prints nothing.
func ParseLevel(s string) slog.Level {
	var level slog.Level
	if level.UnmarshalText([]byte(s)) != nil {
		return slog.LevelWarn
	}
	return level
}

// IsTTY reports whether w is a file attached to a terminal.
func IsTTY(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	fd := f.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

// New returns a logger that writes records at or above level to w.
func New(w io.Writer, format Format, level slog.Level) *slog.Logger {
	return slog.New(handler(w, format, level))
}

// Setup installs a stderr logger as the slog default and returns it.
func Setup(format Format, level slog.Level) *slog.Logger {
	logger := New(os.Stderr, format, level)
	slog.SetDefault(logger)
	return logger
}

func handler(w io.Writer, format Format, level slog.Level) slog.Handler {
	if format == FormatJSON || (format == FormatAuto && !IsTTY(w)) {
		return slog.NewJSONHandler(w, &slog.HandlerOptions{Level: level})
	}
	return tinter.NewHandler(w, &tinter.Options{
		Level:      level,
		TimeFormat: "15:04:05.000",
	})
}
