package diffview

// LineIsTooLong reports whether raw line text (including its leading
// never-printed "+"/"-"/" " marker and trailing newline, both counted but
// never rendered) needs wrapping at the given content width. The "+2"
// absorbs those two always-present, never-printed graphemes.
func LineIsTooLong(text string, width int) bool {
	return graphemeCount(text) > width+2
}

// HasLongLines checks a block of raw logical-line texts per side against the
// corresponding side's available width, returning whether any line on either
// side needs wrapping along with a per-line mask so the caller never has to
// recompute grapheme counts during the actual wrap pass.
func HasLongLines(lines LeftRight[[]string], width LeftRight[int]) (bool, LeftRight[[]bool]) {
	var anyTooLong bool
	check := func(side Side) []bool {
		text := lines.Get(side)
		w := width.Get(side)
		mask := make([]bool, len(text))
		for i, t := range text {
			tooLong := LineIsTooLong(t, w)
			mask[i] = tooLong
			anyTooLong = anyTooLong || tooLong
		}
		return mask
	}
	return anyTooLong, LeftRight[[]bool]{Left: check(Left), Right: check(Right)}
}
