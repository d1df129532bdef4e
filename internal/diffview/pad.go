package diffview

import (
	"strings"

	"github.com/charmbracelet/x/ansi"
)

// TruncationSymbol is appended to a row truncated because it overflows its
// panel width even after wrapping was given the chance to avoid it (the
// wrap line cap was reached, the content width was too narrow to wrap, or
// the row holds wide glyphs that take more display columns than graphemes).
var TruncationSymbol = "…"

// PadPanelLineToWidth pads or truncates one painted half-row to exactly fit
// a panel's declared width (§4.7). Truncation measures and cuts by display
// column, not byte or grapheme count, since a painted line already carries
// ANSI escapes from syntax/diff styling.
func PadPanelLineToWidth(line PaintedLine, panelWidth int, fillMethod FillMethod, fillStyle Style) string {
	if line.IsEmpty {
		return fillPanel("", panelWidth, fillMethod, fillStyle)
	}

	rendered := renderSegments(line.Segments)

	textWidth := ansi.StringWidth(rendered)
	if textWidth > panelWidth {
		rendered = ansi.Truncate(rendered, panelWidth, TruncationSymbol)
		textWidth = ansi.StringWidth(rendered)
	}

	return fillPanel(rendered, panelWidth-textWidth, fillMethod, fillStyle)
}

func renderSegments(segs []StyleSegment) string {
	var b strings.Builder
	for _, seg := range segs {
		b.WriteString(seg.Style.Paint(seg.Text))
	}
	return b.String()
}

// fillPanel appends whatever's needed to extend rendered out to the panel's
// right edge: literal spaces under FillSpaces, an ANSI fill-to-end-of-line
// escape under FillAnsiSequence (only ever emitted when the row actually
// falls short, same as FillSpaces), or nothing under FillNone.
func fillPanel(rendered string, remaining int, fillMethod FillMethod, fillStyle Style) string {
	switch fillMethod {
	case FillSpaces:
		if remaining > 0 {
			rendered += fillStyle.Paint(strings.Repeat(" ", remaining))
		}
	case FillAnsiSequence:
		if remaining > 0 {
			rendered += ansiFillToEndOfLine(fillStyle)
		}
	}
	return rendered
}

// ansiEraseToEndOfLine is the CSI "erase in line, cursor to end" sequence.
// Emitting it after setting a background color extends that background to
// the terminal's right margin without the renderer having to know how many
// columns are actually left.
const ansiEraseToEndOfLine = "\x1b[K"

// ansiFillToEndOfLine emits one styled space, to put the fill background
// into effect, followed by the terminal's own erase-to-end-of-line escape,
// letting the terminal extend that background past columns the renderer
// never computed text for.
func ansiFillToEndOfLine(fillStyle Style) string {
	return fillStyle.Paint(" ") + ansiEraseToEndOfLine
}
