// Package diffview renders a pair of aligned minus/plus line sequences into
// side-by-side terminal rows: correct line-number gutters, correct wrapping
// or truncation of over-long lines, correct background extension to the
// right edge, and correct handling of unpaired insertions/deletions.
//
// Diff parsing, syntax highlighting, and color/theme resolution are the
// caller's concern; see internal/syntax and internal/theme. This package
// only composes pre-styled segments into rows.
package diffview

// StyleSegment is a borrowed slice of text paired with the style it should be
// painted with. text is never mutated; segments are sliced, not copied.
type StyleSegment struct {
	Style Style
	Text  string
}

// StyledLine is an ordered sequence of style segments whose concatenated
// text forms one logical line, possibly ending in a newline. Every logical
// line begins with a single-grapheme diff marker ("+", "-", or " ") that
// occupies width 1 and, unless keep-markers is enabled, is never displayed;
// all width arithmetic in this package assumes its presence.
type StyledLine []StyleSegment

// Text concatenates a styled line's segments back into plain text.
func (l StyledLine) Text() string {
	n := 0
	for _, seg := range l {
		n += len(seg.Text)
	}
	buf := make([]byte, 0, n)
	for _, seg := range l {
		buf = append(buf, seg.Text...)
	}
	return string(buf)
}

// LineState tags a physical row with the diff role it plays. The *Wrapped
// variants are produced by the block wrapper to mark continuation rows; they
// never appear in input fed to the wrapper.
type LineState int

const (
	ContextZero LineState = iota
	ContextZeroWrapped
	Minus
	MinusWrapped
	Plus
	PlusWrapped
	HunkHeader
	FileHeader
)

func (s LineState) String() string {
	switch s {
	case ContextZero:
		return "ContextZero"
	case ContextZeroWrapped:
		return "ContextZeroWrapped"
	case Minus:
		return "Minus"
	case MinusWrapped:
		return "MinusWrapped"
	case Plus:
		return "Plus"
	case PlusWrapped:
		return "PlusWrapped"
	case HunkHeader:
		return "HunkHeader"
	case FileHeader:
		return "FileHeader"
	default:
		return "Unknown"
	}
}

// Side is a two-valued tag used to index per-side data and to select which
// gutter/content a panel operation targets.
type Side int

const (
	Left Side = iota
	Right
)

func (s Side) String() string {
	if s == Left {
		return "Left"
	}
	return "Right"
}

// LeftRight is a pair-of-T container indexed by Side, used ubiquitously to
// carry per-side data (panel widths, line counts, wrap masks, ...).
type LeftRight[T any] struct {
	Left  T
	Right T
}

// Get returns the value for the given side.
func (lr LeftRight[T]) Get(side Side) T {
	if side == Left {
		return lr.Left
	}
	return lr.Right
}

// Set returns a copy of lr with the given side replaced.
func (lr LeftRight[T]) Set(side Side, v T) LeftRight[T] {
	if side == Left {
		lr.Left = v
	} else {
		lr.Right = v
	}
	return lr
}

// AlignmentEntry pairs an optional minus-side logical/physical index with an
// optional plus-side one. At least one of the two is populated; the
// interpretation is that the referenced lines occupy the same display row,
// and a nil member means the opposite panel is empty on that row.
type AlignmentEntry struct {
	Minus *int
	Plus  *int
}

func idx(i int) *int { v := i; return &v }

// Panel is one side's fixed display width. GutterPad is extra blank columns
// reserved at the left edge of this side's gutter, beyond its formatted
// line-number width; the odd-width ANSI-fill fix (§4.1) uses it to push the
// one column it adds onto a guaranteed-blank cell instead of content.
type Panel struct {
	Width     int
	GutterPad int
}

// SideBySideData is a pair of panels, one per side.
type SideBySideData = LeftRight[Panel]

// FillMethod selects how the padder extends a half-row's right edge.
type FillMethod int

const (
	// FillNone emits nothing further.
	FillNone FillMethod = iota
	// FillSpaces appends literal space characters styled with the row's
	// background.
	FillSpaces
	// FillAnsiSequence appends an ANSI "fill background to end of line"
	// escape instead of literal spaces.
	FillAnsiSequence
)

// WrapConfig configures the line wrapper (§4.3).
type WrapConfig struct {
	LeftSymbol        string
	RightSymbol       string
	RightPrefixSymbol string
	// UseWrapRightPermille is parts-per-thousand: the right-align threshold,
	// expressed in permille so a panel over 100 columns wide can still be
	// tuned to single-character precision.
	UseWrapRightPermille int
	// MaxLines is the caller's --wrap-max-lines value *plus one*, with 0
	// meaning unlimited; see SideBySideConfig.ToWrapConfig in internal/config.
	MaxLines int
	// InlineHintStyle styles the synthetic glyphs the wrapper inserts
	// (continuation marker, right-align marker, right-prefix marker) when
	// HasInlineHint is set; otherwise the fill style passed to WrapLine is
	// used. The right-align padding spaces always use the fill style.
	InlineHintStyle Style
	HasInlineHint   bool
}

// inlineHintOrFill returns the style to paint an inserted glyph with:
// InlineHintStyle if configured, else fillStyle.
func (c WrapConfig) inlineHintOrFill(fillStyle Style) Style {
	if c.HasInlineHint {
		return c.InlineHintStyle
	}
	return fillStyle
}

// inlineSymbolWidth1 is the width, in graphemes, of the synthetic leading
// marker column every physical line carries. It is always 1.
const inlineSymbolWidth1 = 1
