package diffview

import (
	"strings"
	"testing"
)

func TestPadPanelLineToWidthPadsWithSpaces(t *testing.T) {
	line := PaintedLine{Segments: []StyleSegment{seg("hi")}}
	got := PadPanelLineToWidth(line, 5, FillSpaces, plainStyle)
	if got != "hi   " {
		t.Fatalf("expected padded to width 5, got %q (len %d)", got, len(got))
	}
}

func TestPadPanelLineToWidthTruncatesOverflow(t *testing.T) {
	line := PaintedLine{Segments: []StyleSegment{seg("abcdefghij")}}
	got := PadPanelLineToWidth(line, 5, FillSpaces, plainStyle)
	if !strings.HasSuffix(got, TruncationSymbol) {
		t.Fatalf("expected truncated text to end with %q, got %q", TruncationSymbol, got)
	}
}

func TestPadPanelLineToWidthNoFillLeavesShortRowUnpadded(t *testing.T) {
	line := PaintedLine{Segments: []StyleSegment{seg("hi")}}
	got := PadPanelLineToWidth(line, 5, FillNone, plainStyle)
	if got != "hi" {
		t.Fatalf("expected no padding under FillNone, got %q", got)
	}
}

func TestPadPanelLineToWidthEmptyRowFillsWholeWidth(t *testing.T) {
	got := PadPanelLineToWidth(PaintedLine{IsEmpty: true}, 4, FillSpaces, plainStyle)
	if got != "    " {
		t.Fatalf("expected 4 spaces for an empty row, got %q", got)
	}
}

func TestPadPanelLineToWidthAnsiFillEmitsEraseSequence(t *testing.T) {
	line := PaintedLine{Segments: []StyleSegment{seg("hi")}}
	got := PadPanelLineToWidth(line, 5, FillAnsiSequence, plainStyle)
	if !strings.Contains(got, ansiEraseToEndOfLine) {
		t.Fatalf("expected ansi fill to contain the erase-to-end-of-line sequence, got %q", got)
	}
}
