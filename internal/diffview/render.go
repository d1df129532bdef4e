package diffview

import (
	"strings"

	"splitdiff/internal/linenumbers"
)

// Highlighter tokenizes one logical line's text into styled segments for
// syntax highlighting. RenderSideBySide paints a line with a single flat
// style when Highlighter is nil; internal/syntax supplies a chroma-backed
// implementation for callers that want real tokenization.
type Highlighter func(path, text string) []StyleSegment

// RenderStyles are the colors RenderSideBySide paints each row kind with.
type RenderStyles struct {
	Minus    Style
	Plus     Style
	Context  Style
	Emphasis Style
	Markers  MarkerStyle
	// EmptyMarker styles the §4.7 step-1 marker painted over a logical line
	// that is genuinely present but textually blank (a blank line itself
	// added or removed), as opposed to an unpaired row's padding.
	EmptyMarker MarkerStyle
}

// RenderOptions configures one full side-by-side render pass (§4, end to
// end): panel geometry, wrapping, gutter formatting, and styling.
type RenderOptions struct {
	Declared      Width
	TerminalWidth int
	FillMethod    FillMethod
	KeepMarkers   bool
	Wrap          WrapConfig
	Styles        RenderStyles
	GutterFormat  LeftRight[linenumbers.Format]
	Divider       string
	Highlight     Highlighter
}

// RenderSideBySide renders a parsed diff's rows into side-by-side terminal
// text. Rows are grouped by file and hunk; each hunk's content rows are
// further split into runs of context ("zero block") rows and runs of
// delete/add/change ("minus/plus block") rows, matching the two wrappers'
// natural inputs (§4.4, §4.5).
func RenderSideBySide(rows []DiffRow, opts RenderOptions) string {
	panels := OddWidthFix(opts.Declared, opts.FillMethod, SideBySide(opts.Declared, opts.TerminalWidth))
	avail := AvailableLineWidth(panels, LeftRight[int]{
		Left:  opts.GutterFormat.Left.Width(),
		Right: opts.GutterFormat.Right.Width(),
	}, opts.KeepMarkers)

	var out strings.Builder
	i := 0
	for i < len(rows) {
		row := rows[i]
		switch row.Kind {
		case RowFileHeader, RowHunkHeader:
			out.WriteString(row.OldText + "\n")
			i++
		default:
			start := i
			kind := contentRunKind(row.Kind)
			for i < len(rows) && contentRunKind(rows[i].Kind) == kind &&
				rows[i].Path == row.Path && rows[i].HunkID == row.HunkID {
				i++
			}
			out.WriteString(renderContentRun(rows[start:i], kind, panels, avail, opts))
		}
	}
	return out.String()
}

type runKind int

const (
	runContext runKind = iota
	runMinusPlus
)

func contentRunKind(k RowKind) runKind {
	if k == RowContext {
		return runContext
	}
	return runMinusPlus
}

func renderContentRun(rows []DiffRow, kind runKind, panels SideBySideData, avail LeftRight[int], opts RenderOptions) string {
	if kind == runContext {
		return renderZeroRun(rows, avail, opts, panels)
	}
	return renderMinusPlusRun(rows, avail, opts, panels)
}

func (opts RenderOptions) highlight(path, text string) []StyleSegment {
	if opts.Highlight != nil {
		return opts.Highlight(path, text)
	}
	return []StyleSegment{{Style: opts.Styles.Context, Text: text}}
}

// rightFillMode decides how the right panel's trailing edge is extended
// (§4.7/§6): a row whose fill style carries no background has nothing to
// extend, so filling it is skipped regardless of the configured method;
// otherwise the configured method applies. The left panel never consults
// this: it's always filled with literal spaces.
func rightFillMode(configured FillMethod, fillStyle Style) FillMethod {
	if !fillStyle.HasBackground() {
		return FillNone
	}
	return configured
}

func renderZeroRun(rows []DiffRow, avail LeftRight[int], opts RenderOptions, panels SideBySideData) string {
	var out strings.Builder
	for _, row := range rows {
		marker := StyleSegment{Style: DefaultStyle, Text: " "}
		content := opts.highlight(row.Path, row.OldText)
		line := LogicalLine{
			Syntax: append(StyledLine{marker}, content...),
			Diff:   append(StyledLine{marker}, content...),
			State:  ContextZero,
		}

		wrapped := WrapZeroBlock(line, avail, opts.Styles.Context, opts.Wrap)

		oldNum := *row.OldLine
		newNum := *row.NewLine
		for j, wr := range wrapped {
			first := j == 0
			leftGutter := gutterSegments(opts.GutterFormat.Left, oldNum, first, panels.Left.GutterPad)
			rightGutter := gutterSegments(opts.GutterFormat.Right, newNum, first, panels.Right.GutterPad)

			leftPainted := PaintPanelLine(Left, wr, true, leftGutter, opts.KeepMarkers, opts.Styles.Markers, opts.Styles.EmptyMarker)
			rightPainted := PaintPanelLine(Right, wr, true, rightGutter, opts.KeepMarkers, opts.Styles.Markers, opts.Styles.EmptyMarker)

			left := PadPanelLineToWidth(leftPainted, panels.Left.Width, FillSpaces, opts.Styles.Context)
			right := PadPanelLineToWidth(rightPainted, panels.Right.Width, rightFillMode(opts.FillMethod, opts.Styles.Context), opts.Styles.Context)
			out.WriteString(EmitRow(left, right, opts.Divider))
		}
	}
	return out.String()
}

// gutterSegments renders a gutter cell showing n only when showNumber is
// true (the first physical row of a logical line); continuation rows get a
// blank cell of the same width so the content column never shifts. pad
// leading blank columns (§4.1's odd-width fix) are prepended unconditionally.
func gutterSegments(format linenumbers.Format, n int, showNumber bool, pad int) StyledLine {
	leading := strings.Repeat(" ", pad)
	if !showNumber {
		return StyledLine{{Style: DefaultStyle, Text: leading + strings.Repeat(" ", format.Width())}}
	}
	return StyledLine{{Style: DefaultStyle, Text: leading + format.Render(&n)}}
}

func renderMinusPlusRun(rows []DiffRow, avail LeftRight[int], opts RenderOptions, panels SideBySideData) string {
	var alignment []AlignmentEntry
	var minusLines, plusLines []LogicalLine
	var minusNums, plusNums []int

	for _, row := range rows {
		var minusIdx, plusIdx *int
		oldSegs, newSegs := paintChangedPair(row, opts)

		if row.OldLine != nil {
			minusLines = append(minusLines, LogicalLine{
				Syntax: append(StyledLine{{Style: DefaultStyle, Text: "-"}}, oldSegs...),
				Diff:   append(StyledLine{{Style: DefaultStyle, Text: "-"}}, oldSegs...),
				State:  Minus,
			})
			minusNums = append(minusNums, *row.OldLine)
			minusIdx = idx(len(minusLines) - 1)
		}
		if row.NewLine != nil {
			plusLines = append(plusLines, LogicalLine{
				Syntax: append(StyledLine{{Style: DefaultStyle, Text: "+"}}, newSegs...),
				Diff:   append(StyledLine{{Style: DefaultStyle, Text: "+"}}, newSegs...),
				State:  Plus,
			})
			plusNums = append(plusNums, *row.NewLine)
			plusIdx = idx(len(plusLines) - 1)
		}

		alignment = append(alignment, AlignmentEntry{Minus: minusIdx, Plus: plusIdx})
	}

	fill := LeftRight[Style]{Left: opts.Styles.Minus, Right: opts.Styles.Plus}
	groups := WrapMinusPlusBlock(alignment, minusLines, plusLines, avail, fill, opts.Wrap)

	var out strings.Builder
	for i, entry := range alignment {
		group := groups[i]
		rowCount := len(group.Left)
		for r := 0; r < rowCount; r++ {
			leftPresent := group.Left[r].Line != nil
			rightPresent := group.Right[r].Line != nil

			leftGutter := blankOrNumbered(opts.GutterFormat.Left, minusNums, entry.Minus, leftPresent && r == 0, panels.Left.GutterPad)
			rightGutter := blankOrNumbered(opts.GutterFormat.Right, plusNums, entry.Plus, rightPresent && r == 0, panels.Right.GutterPad)

			leftPainted := PaintPanelLine(Left, group.Left[r], leftPresent, leftGutter, opts.KeepMarkers, opts.Styles.Markers, opts.Styles.EmptyMarker)
			rightPainted := PaintPanelLine(Right, group.Right[r], rightPresent, rightGutter, opts.KeepMarkers, opts.Styles.Markers, opts.Styles.EmptyMarker)

			left := PadPanelLineToWidth(leftPainted, panels.Left.Width, FillSpaces, opts.Styles.Minus)
			right := PadPanelLineToWidth(rightPainted, panels.Right.Width, rightFillMode(opts.FillMethod, opts.Styles.Plus), opts.Styles.Plus)
			out.WriteString(EmitRow(left, right, opts.Divider))
		}
	}
	return out.String()
}

func blankOrNumbered(format linenumbers.Format, nums []int, entryIdx *int, showNumber bool, pad int) StyledLine {
	leading := strings.Repeat(" ", pad)
	if !showNumber || entryIdx == nil {
		return StyledLine{{Style: DefaultStyle, Text: leading + strings.Repeat(" ", format.Width())}}
	}
	n := nums[*entryIdx]
	return StyledLine{{Style: DefaultStyle, Text: leading + format.Render(&n)}}
}

// paintChangedPair styles one row's old/new text, using word-level
// highlighting for a true RowChange pairing and flat syntax highlighting
// otherwise.
func paintChangedPair(row DiffRow, opts RenderOptions) ([]StyleSegment, []StyleSegment) {
	if row.Kind == RowChange {
		return HighlightChangedRegion(row.OldText, row.NewText, opts.Styles.Minus, opts.Styles.Emphasis)
	}
	return opts.highlight(row.Path, row.OldText), opts.highlight(row.Path, row.NewText)
}
