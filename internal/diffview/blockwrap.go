package diffview

import "fmt"

// WrappedRow is one physical output row produced by the block or zero-block
// wrapper: the styled text to paint plus the state that row should be
// painted as (a *Wrapped variant for every row after a logical line's
// first).
type WrappedRow struct {
	State LineState
	Line  StyledLine
}

// LogicalLine is one pre-wrap input line: its syntax-highlighted rendering,
// its diff-highlighted (word-level changed-region) rendering, and the state
// it occupies before wrapping. Syntax and diff differ only in styling, never
// in text, which is what the two-pass assertion below depends on.
type LogicalLine struct {
	Syntax StyledLine
	Diff   StyledLine
	State  LineState
}

// wrapSyntaxAndDiff wraps both the syntax-styled and diff-styled renderings
// of the same logical line and asserts they produced the same split points.
// A real Delta run can hit this divergence only through a highlighter bug:
// both renderings tokenize the identical underlying text, so their grapheme
// counts at every offset must agree.
func wrapSyntaxAndDiff(line LogicalLine, width int, fillStyle Style, cfg WrapConfig) ([]StyledLine, []StyledLine) {
	syntaxRows := WrapLine(line.Syntax, width, fillStyle, cfg)
	diffRows := WrapLine(line.Diff, width, fillStyle, cfg)
	if len(syntaxRows) != len(diffRows) {
		panic(fmt.Sprintf("syntax and diff wrapping differs: %d rows vs %d rows", len(syntaxRows), len(diffRows)))
	}
	for i := range syntaxRows {
		if len(syntaxRows[i].Text()) != len(diffRows[i].Text()) {
			panic(fmt.Sprintf("syntax and diff wrapping differs: row %d length %d vs %d", i, len(syntaxRows[i].Text()), len(diffRows[i].Text())))
		}
	}
	return syntaxRows, diffRows
}

// wrapOneSide wraps a single logical line (if present) into WrappedRows
// tagged first/wrapped state, using the syntax-styled rendering as the
// rendered output: diff highlighting has already informed fillStyle/styling
// of the line's segments upstream, and the assertion above exists purely to
// catch divergence, not to pick a winner between the two renderings.
//
// tooLong lets the caller skip the wrap pass entirely when it already knows
// (via HasLongLines, computed once for the whole block) that this line fits
// width unwrapped, the same fast path WrapZeroBlock takes line-by-line.
func wrapOneSide(line *LogicalLine, firstState, wrappedState LineState, width int, fillStyle Style, cfg WrapConfig, tooLong bool) []WrappedRow {
	if line == nil {
		return nil
	}
	if !tooLong {
		return []WrappedRow{{State: firstState, Line: line.Syntax}}
	}
	syntaxRows, _ := wrapSyntaxAndDiff(*line, width, fillStyle, cfg)
	rows := make([]WrappedRow, len(syntaxRows))
	for i, r := range syntaxRows {
		state := wrappedState
		if i == 0 {
			state = firstState
		}
		rows[i] = WrappedRow{State: state, Line: r}
	}
	return rows
}

// WrapMinusPlusBlock wraps an aligned run of minus/plus logical lines (§4.4).
// alignment pairs minus-side and plus-side indices into minusLines/
// plusLines row-for-row; a nil member means that side is blank on that row.
// The two sides wrap independently, then are tail-padded to equal row
// counts so the painter can zip them together one row at a time.
func WrapMinusPlusBlock(
	alignment []AlignmentEntry,
	minusLines, plusLines []LogicalLine,
	availWidth LeftRight[int],
	fillStyle LeftRight[Style],
	cfg WrapConfig,
) []LeftRight[[]WrappedRow] {
	out := make([]LeftRight[[]WrappedRow], len(alignment))

	minusTexts := make([]string, len(minusLines))
	for i, l := range minusLines {
		minusTexts[i] = l.Syntax.Text()
	}
	plusTexts := make([]string, len(plusLines))
	for i, l := range plusLines {
		plusTexts[i] = l.Syntax.Text()
	}
	_, tooLong := HasLongLines(LeftRight[[]string]{Left: minusTexts, Right: plusTexts}, availWidth)

	for i, entry := range alignment {
		var minusLine, plusLine *LogicalLine
		var minusTooLong, plusTooLong bool
		if entry.Minus != nil {
			minusLine = &minusLines[*entry.Minus]
			minusTooLong = tooLong.Left[*entry.Minus]
		}
		if entry.Plus != nil {
			plusLine = &plusLines[*entry.Plus]
			plusTooLong = tooLong.Right[*entry.Plus]
		}

		minusRows := wrapOneSide(minusLine, Minus, MinusWrapped, availWidth.Left, fillStyle.Left, cfg, minusTooLong)
		plusRows := wrapOneSide(plusLine, Plus, PlusWrapped, availWidth.Right, fillStyle.Right, cfg, plusTooLong)

		// Tail-pad the shorter side so both sides have the same physical
		// row count; the painter fills padded rows with a blank gutter.
		for len(minusRows) < len(plusRows) {
			minusRows = append(minusRows, WrappedRow{})
		}
		for len(plusRows) < len(minusRows) {
			plusRows = append(plusRows, WrappedRow{})
		}

		out[i] = LeftRight[[]WrappedRow]{Left: minusRows, Right: plusRows}
	}

	return out
}
