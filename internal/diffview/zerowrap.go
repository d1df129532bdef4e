package diffview

// WrapZeroBlock wraps one context (unchanged) logical line for side-by-side
// display (§4.5). Both panels show the same text, so they must wrap at the
// same split points: the wrapper uses the narrower of the two available
// widths and wraps once, and the painter paints the resulting rows into
// both panels.
func WrapZeroBlock(line LogicalLine, availWidth LeftRight[int], fillStyle Style, cfg WrapConfig) []WrappedRow {
	width := availWidth.Left
	if availWidth.Right < width {
		width = availWidth.Right
	}

	if !LineIsTooLong(line.Syntax.Text(), width) {
		return []WrappedRow{{State: ContextZero, Line: line.Syntax}}
	}

	syntaxRows, _ := wrapSyntaxAndDiff(line, width, fillStyle, cfg)
	rows := make([]WrappedRow, len(syntaxRows))
	for i, r := range syntaxRows {
		state := ContextZeroWrapped
		if i == 0 {
			state = ContextZero
		}
		rows[i] = WrappedRow{State: state, Line: r}
	}
	return rows
}
