package diffview

// MarkerStyle groups a Minus/Plus pair of colors the painter needs: either
// the two diff-marker prefix colors (keep-markers) or the two empty-row
// marker colors (§4.7 step 1).
type MarkerStyle struct {
	Minus Style
	Plus  Style
}

// PaintedLine is one fully assembled panel half-row, ready for padding.
type PaintedLine struct {
	Segments []StyleSegment
	// IsEmpty marks a row with no corresponding source line: the opposite
	// side of an unpaired insertion/deletion, or a tail-padding row
	// produced when one side's block wrap ran longer than the other's. The
	// padder gives these only its fill for the whole panel width: no gutter,
	// no content and no empty-line marker.
	IsEmpty bool
}

// markerPrefix returns the one-grapheme diff-marker segment painted in
// front of a row's content when keep-markers is enabled: a literal "-"/"+"
// on the row that owns the change, a space in the owning side's marker
// color on a wrapped continuation row, and an unstyled space on context,
// hunk-header, and file-header rows, which carry no marker meaning.
func markerPrefix(side Side, state LineState, markers MarkerStyle) StyleSegment {
	switch state {
	case PlusWrapped:
		return StyleSegment{Style: markers.Plus, Text: " "}
	case MinusWrapped:
		return StyleSegment{Style: markers.Minus, Text: " "}
	case Minus:
		return StyleSegment{Style: markers.Minus, Text: "-"}
	case Plus:
		return StyleSegment{Style: markers.Plus, Text: "+"}
	default:
		return StyleSegment{Style: DefaultStyle, Text: " "}
	}
}

// oppositeMarkerState swaps Minus/Plus roles. It models a line-numbers
// gutter driven by a live, mutable per-hunk counter: painting an unpaired
// row's blank opposite-side gutter needs *some* state to decide "blank the
// number, don't advance the counter", and the real state belongs to the
// side that has no line here at all.
//
// This package supersedes that design: internal/diffview.DiffRow.OldLine and
// NewLine are resolved once, during parsing, into plain *int values (see
// parse.go); rendering never advances a counter, so there's nothing for the
// opposite side's gutter lookup to get wrong and nothing for this swap to
// protect against. render.go's blankOrNumbered looks up the gutter number
// directly from the precomputed slice instead. Kept (and tested) as a
// documented alternative, not wired into the render path.
func oppositeMarkerState(state LineState) LineState {
	switch state {
	case Minus:
		return Plus
	case MinusWrapped:
		return PlusWrapped
	case Plus:
		return Minus
	case PlusWrapped:
		return MinusWrapped
	default:
		return state
	}
}

// emptyLineMarker returns the §4.7 step-1 marker for a logical line that is
// genuinely present on this side but whose text is empty (a blank line was
// itself added or removed), styled per the owning side. Any other state
// (wrapped continuations, context) never reaches this marker: an empty
// logical line never wraps into more than one physical row, and context
// emptiness emits nothing per spec.
func emptyLineMarker(state LineState, markers MarkerStyle) StyleSegment {
	switch state {
	case Minus:
		return StyleSegment{Style: markers.Minus, Text: " "}
	case Plus:
		return StyleSegment{Style: markers.Plus, Text: " "}
	default:
		return StyleSegment{}
	}
}

// PaintPanelLine assembles one panel's half of a display row (§4.6). present
// reports whether this side actually has a source line here; when false,
// row is the zero value and the row is rendered as an empty marker, leaving
// the padder to fill the entire panel width as blank background.
//
// gutter is the pre-formatted, pre-styled line-number column for this row;
// render.go builds it (gutterSegments, blankOrNumbered) with
// internal/linenumbers's Format, blanking it on continuation rows. This
// function only places it in front of the content.
func PaintPanelLine(side Side, row WrappedRow, present bool, gutter StyledLine, keepMarkers bool, markers MarkerStyle, emptyMarkers MarkerStyle) PaintedLine {
	if !present {
		return PaintedLine{IsEmpty: true}
	}

	// row.Line's first segment is the marker/placeholder column WrapLine
	// always carries for width bookkeeping (the real "+"/"-"/" " on an
	// unwrapped first row, or a synthetic, never-displayed glyph on a
	// continuation row); the painter supplies the displayed marker itself.
	content := row.Line
	if len(content) > 0 {
		content = content[1:]
	}

	segs := make([]StyleSegment, 0, len(gutter)+2+len(content))
	segs = append(segs, gutter...)
	if keepMarkers {
		segs = append(segs, markerPrefix(side, row.State, markers))
	}
	// A line that's present but empty after its marker is a genuine blank
	// line in the diff (e.g. a deleted blank line), not an unpaired row's
	// padding (that case takes the !present branch above): mark it (§4.7
	// step 1) so it doesn't render as an indistinguishable bare gutter.
	if (row.State == Minus || row.State == Plus) && StyledLine(content).Text() == "" {
		segs = append(segs, emptyLineMarker(row.State, emptyMarkers))
	}
	segs = append(segs, content...)

	return PaintedLine{Segments: segs}
}
