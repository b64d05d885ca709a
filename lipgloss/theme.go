// Package lipgloss provides theme and status rendering using the Lipgloss styling library.
package lipgloss

import "github.com/fwojciec/termclip"

// Compile-time interface verification.
var _ termclip.Theme = (*Theme)(nil)

// Theme implements termclip.Theme with Lipgloss-compatible colors.
type Theme struct {
	styles termclip.Styles
}

// Styles returns the color styles for this theme.
func (t *Theme) Styles() termclip.Styles {
	return t.styles
}

// DefaultTheme returns the default theme (dark background optimized).
func DefaultTheme() *Theme {
	return DarkTheme()
}

// DarkTheme returns a theme optimized for dark terminal backgrounds.
func DarkTheme() *Theme {
	return &Theme{
		styles: termclip.Styles{
			Success: termclip.ColorPair{Foreground: "#a6e3a1"}, // Green
			Failure: termclip.ColorPair{Foreground: "#f38ba8"}, // Red
			Target:  termclip.ColorPair{Foreground: "#89b4fa"}, // Blue
			Muted:   termclip.ColorPair{Foreground: "#6c7086"}, // Gray
		},
	}
}

// LightTheme returns a theme optimized for light terminal backgrounds.
func LightTheme() *Theme {
	return &Theme{
		styles: termclip.Styles{
			Success: termclip.ColorPair{Foreground: "#40a02b"},
			Failure: termclip.ColorPair{Foreground: "#d20f39"},
			Target:  termclip.ColorPair{Foreground: "#1e66f5"},
			Muted:   termclip.ColorPair{Foreground: "#8c8fa1"},
		},
	}
}
