package diffview

import "strings"

// currLine is the physical line currently being assembled. len counts
// graphemes, including the synthetic one-grapheme marker column that every
// physical line after the first carries (the first physical line's marker
// is the real "+"/"-"/" " prefix already present in the input).
type currLine struct {
	segments []StyleSegment
	len      int
}

// resetCurrLine starts a new continuation line: a synthetic marker-column
// segment, one grapheme wide, that the caller erases or overwrites before
// display.
func resetCurrLine() currLine {
	return currLine{segments: []StyleSegment{{Style: DefaultStyle, Text: "_"}}, len: inlineSymbolWidth1}
}

func (c *currLine) push(seg StyleSegment, newLen int) {
	c.segments = append(c.segments, seg)
	c.len = newLen
}

func (c currLine) hasText() bool {
	return c.len > inlineSymbolWidth1
}

func (c currLine) textLen() int {
	if c.len > inlineSymbolWidth1 {
		return c.len - inlineSymbolWidth1
	}
	return 0
}

// WrapLine splits one styled logical line into one or more styled physical
// lines of bounded visible width (§4.3). width is the content width; the
// wrapper internally works in width+1 to account for the line's leading,
// never-printed diff marker. The output is empty iff line is empty.
func WrapLine(line StyledLine, width int, fillStyle Style, cfg WrapConfig) []StyledLine {
	var result []StyledLine

	symbolStyle := cfg.inlineHintOrFill(fillStyle)
	maxLen := width + inlineSymbolWidth1

	remaining := make([]StyleSegment, len(line))
	copy(remaining, line)

	var curr currLine

	lineLimitReached := func(producedLines int) bool {
		maxLines := cfg.MaxLines
		if width <= inlineSymbolWidth1 {
			maxLines = 1
		}
		return maxLines > 0 && producedLines+1 >= maxLines
	}

	for len(remaining) > 0 && !lineLimitReached(len(result)) && maxLen > inlineSymbolWidth1 {
		seg := remaining[0]
		remaining = remaining[1:]

		graphemes := graphemeClusters(seg.Text)
		newLen := curr.len + len(graphemes)

		mustSplit := false
		switch {
		case newLen < maxLen:
			curr.push(seg, newLen)

		case newLen == maxLen:
			switch {
			case len(remaining) == 0:
				// Perfect fit: no need to make space for a continuation marker.
				curr.push(seg, newLen)
			case len(remaining) == 1 && remaining[0].Text == "\n":
				// A lone trailing newline does not consume a column.
				curr.push(seg, newLen)
				curr.push(remaining[0], newLen)
				remaining = remaining[1:]
			default:
				mustSplit = true
			}

		case newLen == maxLen+1 && len(remaining) == 0:
			if strings.HasSuffix(seg.Text, "\n") {
				curr.push(seg, newLen-1)
			} else {
				mustSplit = true
			}

		default:
			mustSplit = true
		}

		if !mustSplit {
			continue
		}

		graphemeSplitPos := len(graphemes) - (newLen - maxLen) - 1

		lineSegments := curr.segments
		var nextLineText string
		if graphemeSplitPos == 0 {
			nextLineText = seg.Text
		} else {
			byteSplitPos := 0
			for _, g := range graphemes[:graphemeSplitPos] {
				byteSplitPos += len(g)
			}
			lineSegments = append(lineSegments, StyleSegment{Style: seg.Style, Text: seg.Text[:byteSplitPos]})
			nextLineText = seg.Text[byteSplitPos:]
		}
		remaining = append([]StyleSegment{{Style: seg.Style, Text: nextLineText}}, remaining...)

		lineSegments = append(lineSegments, StyleSegment{Style: symbolStyle, Text: cfg.LeftSymbol})
		result = append(result, lineSegments)

		curr = resetCurrLine()
	}

	// Right-align a lone continuation tail, if configured and there's room.
	if len(result) == 1 && curr.hasText() {
		currentPermille := (curr.textLen() * 1000) / maxLen
		padLen := maxLen - (curr.textLen() + inlineSymbolWidth1)
		if padLen < 0 {
			padLen = 0
		}

		if cfg.UseWrapRightPermille > currentPermille && padLen > inlineSymbolWidth1 {
			last := result[0]
			if len(last) > 0 {
				last[len(last)-1].Text = cfg.RightSymbol
			}

			rightAligned := []StyleSegment{{Style: DefaultStyle, Text: "_"}}
			if padLen > 0 {
				rightAligned = append(rightAligned, StyleSegment{Style: fillStyle, Text: strings.Repeat(" ", padLen)})
			}
			rightAligned = append(rightAligned, StyleSegment{Style: symbolStyle, Text: cfg.RightPrefixSymbol})
			// Skip index 0 of curr.segments: the synthetic marker resetCurrLine added.
			rightAligned = append(rightAligned, curr.segments[1:]...)
			curr.segments = rightAligned
		}
	}

	if curr.len > 0 {
		result = append(result, curr.segments)
	}

	// Anything left on the stack (wrap capped by max_lines) is appended
	// verbatim to the last produced line; the caller truncates it later.
	if len(remaining) > 0 {
		if len(result) == 0 {
			result = append(result, nil)
		}
		result[len(result)-1] = append(result[len(result)-1], remaining...)
	}

	return result
}
