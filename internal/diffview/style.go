package diffview

import "github.com/charmbracelet/lipgloss"

// Style is the one thing the rendering core needs to know about a color: how
// to paint text with it, and whether it carries a background. Everything
// else about a theme (which colors mean "added", which mean "syntax
// keyword") is the caller's business; see internal/theme and internal/syntax.
type Style struct {
	Foreground lipgloss.Color
	Background lipgloss.Color
	HasFg      bool
	HasBg      bool
	Bold       bool
	Italic     bool
	Underline  bool
}

// DefaultStyle paints text unchanged.
var DefaultStyle = Style{}

func (s Style) lipglossStyle() lipgloss.Style {
	st := lipgloss.NewStyle()
	if s.HasFg {
		st = st.Foreground(s.Foreground)
	}
	if s.HasBg {
		st = st.Background(s.Background)
	}
	if s.Bold {
		st = st.Bold(true)
	}
	if s.Italic {
		st = st.Italic(true)
	}
	if s.Underline {
		st = st.Underline(true)
	}
	return st
}

// Paint renders text with this style's ANSI sequence. Painting the empty
// string always yields the empty string: an empty styled segment must never
// introduce stray escape codes into width-sensitive output.
func (s Style) Paint(text string) string {
	if text == "" {
		return ""
	}
	return s.lipglossStyle().Render(text)
}

// HasBackground reports whether this style carries an explicit background
// color. The padder/truncator needs this to decide whether a row's trailing
// edge should be extended with a fill (§4.7).
func (s Style) HasBackground() bool {
	return s.HasBg
}

// WithBackground returns a copy of s with the given background color set.
func WithBackground(s Style, bg lipgloss.Color) Style {
	s.Background = bg
	s.HasBg = true
	return s
}
