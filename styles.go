package termclip

// ColorPair represents a foreground and background color combination.
// Colors should be hex strings in "#RRGGBB" format (e.g., "#ff0000" for red).
// Empty strings are valid and indicate no color override (use terminal default).
type ColorPair struct {
	Foreground string
	Background string
}

// Styles contains color pairs for the status lines printed by termclip.
type Styles struct {
	Success ColorPair // Operation succeeded or OSC 52 is supported
	Failure ColorPair // Operation failed or OSC 52 is unsupported
	Target  ColorPair // Selection target name
	Muted   ColorPair // Secondary detail such as byte counts
}

// Theme provides styles for status output.
// Different implementations can provide light/dark variants.
type Theme interface {
	Styles() Styles
}
