// Package termclip provides domain types for setting the terminal clipboard
// through OSC 52 escape sequences.
package termclip

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownTarget is returned when a selection target name cannot be parsed.
var ErrUnknownTarget = errors.New("unknown selection target")

// SelectionTarget names the clipboard buffer a request addresses.
type SelectionTarget int

// Selection targets.
const (
	ClipboardBuffer    SelectionTarget = iota // System clipboard
	PrimarySelection                          // X11-style primary selection
	SecondarySelection                        // X11-style secondary selection
	QuerySelection                            // Ask the terminal to report the clipboard
)

// String returns the lowercase name of the target.
func (t SelectionTarget) String() string {
	switch t {
	case ClipboardBuffer:
		return "clipboard"
	case PrimarySelection:
		return "primary"
	case SecondarySelection:
		return "secondary"
	case QuerySelection:
		return "query"
	default:
		return "unknown"
	}
}

// ParseSelectionTarget converts a target name or its single-letter alias
// ("c", "p", "s", "q") into a SelectionTarget.
func ParseSelectionTarget(s string) (SelectionTarget, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "clipboard", "c":
		return ClipboardBuffer, nil
	case "primary", "p":
		return PrimarySelection, nil
	case "secondary", "s":
		return SecondarySelection, nil
	case "query", "q":
		return QuerySelection, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownTarget, s)
	}
}

// Transport writes clipboard requests to the terminal.
// Implementations own selector mapping, sequence framing and capability detection.
type Transport interface {
	// SetClipboard frames payload for target and writes it, reporting success.
	// The payload is only borrowed for the duration of the call.
	SetClipboard(target SelectionTarget, payload []byte) bool
	// IsSupported reports whether the terminal currently accepts OSC 52.
	IsSupported() bool
}

// Detector reports whether the attached terminal accepts OSC 52 sequences.
type Detector interface {
	Supported() bool
}

// DetectorFunc adapts a function to the Detector interface.
type DetectorFunc func() bool

// Supported calls f.
func (f DetectorFunc) Supported() bool { return f() }
