package diffview

// Width is the caller's declared display width: either a fixed column count
// or "whatever the terminal reports right now".
type Width struct {
	Fixed   int
	IsFixed bool
}

// FixedWidth returns a fixed declared width.
func FixedWidth(w int) Width { return Width{Fixed: w, IsFixed: true} }

// VariableWidth returns a declared width that tracks the terminal.
func VariableWidth() Width { return Width{} }

// SideBySide splits a declared width (or, if not fixed, the observed
// terminal width) into two equal panels, per §4.1.
func SideBySide(declared Width, terminalWidth int) SideBySideData {
	total := terminalWidth
	if declared.IsFixed {
		total = declared.Fixed
	}
	panelWidth := total / 2
	return SideBySideData{Left: Panel{Width: panelWidth}, Right: Panel{Width: panelWidth}}
}

// OddWidthFix applies the odd-width ANSI-fill correction described in §4.1:
// when the declared width is fixed-odd and the right panel uses the ANSI
// "fill to end of row" escape, floor(W/2)+floor(W/2) leaves one trailing
// terminal column that the ANSI fill would otherwise bleed into. Widening
// the right panel by one column and reserving that column as a blank gutter
// pad (rather than content budget) absorbs it instead.
func OddWidthFix(declared Width, fillMethod FillMethod, data SideBySideData) SideBySideData {
	if isOddWithAnsiFill(declared, fillMethod) {
		data.Right.Width++
		data.Right.GutterPad++
	}
	return data
}

func isOddWithAnsiFill(declared Width, fillMethod FillMethod) bool {
	return fillMethod == FillAnsiSequence && declared.IsFixed && declared.Fixed%2 == 1
}

// AvailableLineWidth returns, per side, the content width left over once the
// formatted line-number gutter, any reserved gutter pad (§4.1), and, if
// keep-markers is set, the one-column diff-marker prefix, are subtracted
// from the panel width.
func AvailableLineWidth(panels SideBySideData, gutterWidth LeftRight[int], keepMarkers bool) LeftRight[int] {
	markerCost := 0
	if keepMarkers {
		markerCost = 1
	}
	sub := func(panelWidth, gutter, gutterPad int) int {
		w := panelWidth - gutter - gutterPad - markerCost
		if w < 0 {
			return 0
		}
		return w
	}
	return LeftRight[int]{
		Left:  sub(panels.Left.Width, gutterWidth.Left, panels.Left.GutterPad),
		Right: sub(panels.Right.Width, gutterWidth.Right, panels.Right.GutterPad),
	}
}
