package terminal_test

import (
	"bytes"
	"testing"

	"github.com/fwojciec/termclip/terminal"
	"github.com/stretchr/testify/assert"
)

// fakeFile satisfies termenv.File without a real descriptor.
type fakeFile struct {
	bytes.Buffer
}

func (f *fakeFile) Fd() uintptr { return 42 }

func env(vars map[string]string) func(string) (string, bool) {
	return func(key string) (string, bool) {
		v, ok := vars[key]
		return v, ok
	}
}

func isTerminal(v bool) func(uintptr) bool {
	return func(uintptr) bool { return v }
}

func TestDetector_Supported(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		vars     map[string]string
		terminal bool
		want     bool
	}{
		{name: "terminal with TERM", vars: map[string]string{"TERM": "xterm-256color"}, terminal: true, want: true},
		{name: "not a terminal", vars: map[string]string{"TERM": "xterm-256color"}, terminal: false, want: false},
		{name: "dumb terminal", vars: map[string]string{"TERM": "dumb"}, terminal: true, want: false},
		{name: "missing TERM", vars: map[string]string{}, terminal: true, want: false},
		{name: "override on", vars: map[string]string{terminal.EnvOverride: "1"}, terminal: false, want: true},
		{name: "override yes", vars: map[string]string{terminal.EnvOverride: "yes"}, terminal: false, want: true},
		{name: "override off", vars: map[string]string{terminal.EnvOverride: "off", "TERM": "xterm"}, terminal: true, want: false},
		{name: "override false", vars: map[string]string{terminal.EnvOverride: "false", "TERM": "xterm"}, terminal: true, want: false},
		{name: "invalid override is ignored", vars: map[string]string{terminal.EnvOverride: "maybe", "TERM": "xterm"}, terminal: true, want: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			d := terminal.NewDetector(&fakeFile{},
				terminal.WithLookupEnv(env(tt.vars)),
				terminal.WithIsTerminal(isTerminal(tt.terminal)),
			)

			assert.Equal(t, tt.want, d.Supported())
		})
	}
}

func TestDetector_NilOutput(t *testing.T) {
	t.Parallel()

	d := terminal.NewDetector(nil,
		terminal.WithLookupEnv(env(map[string]string{"TERM": "xterm"})),
		terminal.WithIsTerminal(isTerminal(true)),
	)

	assert.False(t, d.Supported())
}

func TestDetector_ReevaluatesEachCall(t *testing.T) {
	t.Parallel()

	vars := map[string]string{"TERM": "xterm"}
	d := terminal.NewDetector(&fakeFile{},
		terminal.WithLookupEnv(env(vars)),
		terminal.WithIsTerminal(isTerminal(true)),
	)

	assert.True(t, d.Supported())
	vars["TERM"] = "dumb"
	assert.False(t, d.Supported())
}
