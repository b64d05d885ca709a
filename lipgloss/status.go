package lipgloss

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/fwojciec/termclip"
)

// StatusRenderer renders one-line status messages for clipboard operations.
type StatusRenderer struct {
	success lipgloss.Style
	failure lipgloss.Style
	target  lipgloss.Style
	muted   lipgloss.Style
}

// NewStatusRenderer builds styles from theme for the given renderer.
// A nil renderer uses the lipgloss default renderer.
func NewStatusRenderer(r *lipgloss.Renderer, theme termclip.Theme) *StatusRenderer {
	if r == nil {
		r = lipgloss.DefaultRenderer()
	}
	styles := theme.Styles()
	return &StatusRenderer{
		success: styleFor(r, styles.Success).Bold(true),
		failure: styleFor(r, styles.Failure).Bold(true),
		target:  styleFor(r, styles.Target),
		muted:   styleFor(r, styles.Muted),
	}
}

// Support renders whether OSC 52 is available.
func (s *StatusRenderer) Support(supported bool) string {
	if supported {
		return s.success.Render("supported") + " " + s.muted.Render("OSC 52 clipboard access is available")
	}
	return s.failure.Render("unsupported") + " " + s.muted.Render("terminal does not accept OSC 52")
}

// Copied renders the outcome of a copy of n bytes to target.
func (s *StatusRenderer) Copied(target termclip.SelectionTarget, n int, ok bool) string {
	detail := s.muted.Render(fmt.Sprintf("(%d bytes)", n))
	if ok {
		return s.success.Render("copied") + " to " + s.target.Render(target.String()) + " " + detail
	}
	return s.failure.Render("copy failed") + " for " + s.target.Render(target.String()) + " " + detail
}

// Cleared renders the outcome of clearing target.
func (s *StatusRenderer) Cleared(target termclip.SelectionTarget, ok bool) string {
	if ok {
		return s.success.Render("cleared") + " " + s.target.Render(target.String())
	}
	return s.failure.Render("clear failed") + " for " + s.target.Render(target.String())
}

func styleFor(r *lipgloss.Renderer, c termclip.ColorPair) lipgloss.Style {
	style := r.NewStyle()
	if c.Foreground != "" {
		style = style.Foreground(lipgloss.Color(c.Foreground))
	}
	if c.Background != "" {
		style = style.Background(lipgloss.Color(c.Background))
	}
	return style
}
