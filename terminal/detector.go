// Package terminal detects whether the attached terminal accepts OSC 52.
package terminal

import (
	"os"
	"strconv"
	"strings"

	"github.com/fwojciec/termclip"
	"github.com/mattn/go-isatty"
	"github.com/muesli/termenv"
)

// Compile-time interface verification.
var _ termclip.Detector = (*Detector)(nil)

// EnvOverride forces detection on or off when set to a boolean value.
const EnvOverride = "TERMCLIP_OSC52"

// Detector reports OSC 52 support for a terminal output.
// Nothing is cached; every call re-reads the environment and the fd.
type Detector struct {
	out        termenv.File
	lookupEnv  func(string) (string, bool)
	isTerminal func(fd uintptr) bool
}

// Option configures a Detector.
type Option func(*Detector)

// WithLookupEnv replaces os.LookupEnv.
func WithLookupEnv(fn func(string) (string, bool)) Option {
	return func(d *Detector) {
		d.lookupEnv = fn
	}
}

// WithIsTerminal replaces the terminal check on the output fd.
func WithIsTerminal(fn func(fd uintptr) bool) Option {
	return func(d *Detector) {
		d.isTerminal = fn
	}
}

// NewDetector creates a detector for out. A nil out is never a terminal.
func NewDetector(out termenv.File, opts ...Option) *Detector {
	d := &Detector{
		out:       out,
		lookupEnv: os.LookupEnv,
		isTerminal: func(fd uintptr) bool {
			return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
		},
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// Supported reports whether OSC 52 sequences written to out will reach a terminal.
func (d *Detector) Supported() bool {
	if v, ok := d.lookupEnv(EnvOverride); ok {
		if b, ok := parseBool(v); ok {
			return b
		}
	}
	if d.out == nil || !d.isTerminal(d.out.Fd()) {
		return false
	}
	term, _ := d.lookupEnv("TERM")
	return term != "" && term != "dumb"
}

func parseBool(s string) (bool, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "yes", "on":
		return true, true
	case "no", "off":
		return false, true
	}
	b, err := strconv.ParseBool(strings.TrimSpace(s))
	if err != nil {
		return false, false
	}
	return b, true
}
