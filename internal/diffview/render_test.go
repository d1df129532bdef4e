package diffview

import (
	"strings"
	"testing"

	"splitdiff/internal/linenumbers"
)

func basicRenderOptions() RenderOptions {
	return RenderOptions{
		Declared:      FixedWidth(60),
		TerminalWidth: 60,
		FillMethod:    FillSpaces,
		KeepMarkers:   true,
		Wrap:          WrapConfig{LeftSymbol: "+", RightSymbol: "<", RightPrefixSymbol: ">"},
		Styles: RenderStyles{
			Minus:    Style{},
			Plus:     Style{},
			Context:  Style{},
			Emphasis: Style{Bold: true},
			Markers:  MarkerStyle{Minus: Style{}, Plus: Style{}},
		},
		GutterFormat: LeftRight[linenumbers.Format]{
			Left:  linenumbers.Format{Digits: 3, Separator: " "},
			Right: linenumbers.Format{Digits: 3, Separator: " "},
		},
	}
}

func TestRenderSideBySideTwoMinusLines(t *testing.T) {
	rows := []DiffRow{
		{Kind: RowDelete, OldLine: iptr(1), OldText: "removed one"},
		{Kind: RowDelete, OldLine: iptr(2), OldText: "removed two"},
	}

	out := RenderSideBySide(rows, basicRenderOptions())
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")

	if len(lines) != 2 {
		t.Fatalf("expected 2 rows, got %d: %q", len(lines), out)
	}
	for i, line := range lines {
		half := len(line) / 2
		left, right := line[:half], line[half:]
		if !strings.Contains(left, "-") {
			t.Errorf("row %d: left half missing minus marker: %q", i, left)
		}
		if strings.ContainsAny(right, "+") {
			t.Errorf("row %d: right half should carry no content, got %q", i, right)
		}
	}
}

func TestRenderSideBySideOneMinusOnePlus(t *testing.T) {
	rows := []DiffRow{
		{Kind: RowChange, OldLine: iptr(1), NewLine: iptr(1), OldText: "old text", NewText: "new text"},
	}

	out := RenderSideBySide(rows, basicRenderOptions())
	if !strings.Contains(out, "-") || !strings.Contains(out, "+") {
		t.Fatalf("expected both a minus and a plus marker, got %q", out)
	}
	if strings.Count(out, "\n") != 1 {
		t.Fatalf("expected exactly 1 row, got %q", out)
	}
}

func TestRenderSideBySideContextLineAppearsOnBothSides(t *testing.T) {
	rows := []DiffRow{
		{Kind: RowContext, OldLine: iptr(5), NewLine: iptr(5), OldText: "unchanged", NewText: "unchanged"},
	}

	out := RenderSideBySide(rows, basicRenderOptions())
	if strings.Count(out, "unchanged") != 2 {
		t.Fatalf("expected context text on both panels, got %q", out)
	}
}

func TestRenderSideBySideEndToEndFromParsedDiff(t *testing.T) {
	raw := []byte(`diff --git a/sample.txt b/sample.txt
index 1111111..2222222 100644
--- a/sample.txt
+++ b/sample.txt
@@ -1,3 +1,3 @@
 keep
-old line
+new line
 tail
`)
	rows, err := ParseUnifiedDiff(raw)
	if err != nil {
		t.Fatalf("ParseUnifiedDiff: %v", err)
	}

	out := RenderSideBySide(rows, basicRenderOptions())
	if out == "" {
		t.Fatalf("expected non-empty render output")
	}
	if !strings.Contains(out, "File: sample.txt") {
		t.Fatalf("expected file header in output, got %q", out)
	}
	if !strings.Contains(out, "keep") || !strings.Contains(out, "tail") {
		t.Fatalf("expected context lines preserved, got %q", out)
	}
}

func TestRenderSideBySideAnsiFillReachesRightPanelWithBackground(t *testing.T) {
	opts := basicRenderOptions()
	opts.FillMethod = FillAnsiSequence
	opts.Styles.Plus = WithBackground(Style{}, "22")

	rows := []DiffRow{
		{Kind: RowAdd, NewLine: iptr(1), NewText: "x"},
	}
	out := RenderSideBySide(rows, opts)
	if !strings.Contains(out, ansiEraseToEndOfLine) {
		t.Fatalf("expected the ansi fill-to-end-of-line escape in output, got %q", out)
	}
}

func TestRenderSideBySideAnsiFillSkippedWithoutBackground(t *testing.T) {
	opts := basicRenderOptions()
	opts.FillMethod = FillAnsiSequence

	rows := []DiffRow{
		{Kind: RowAdd, NewLine: iptr(1), NewText: "x"},
	}
	out := RenderSideBySide(rows, opts)
	if strings.Contains(out, ansiEraseToEndOfLine) {
		t.Fatalf("a fill style without a background must not emit the ansi fill escape, got %q", out)
	}
}

func TestRenderSideBySideMarksEmptyDeletedLine(t *testing.T) {
	minusEmpty := WithBackground(Style{}, "88")
	opts := basicRenderOptions()
	opts.Styles.EmptyMarker = MarkerStyle{Minus: minusEmpty, Plus: WithBackground(Style{}, "28")}

	rows := []DiffRow{
		{Kind: RowDelete, OldLine: iptr(1), OldText: ""},
	}
	out := RenderSideBySide(rows, opts)
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	if len(lines) != 1 {
		t.Fatalf("expected 1 row, got %d: %q", len(lines), out)
	}
	half := len(lines[0]) / 2
	left := lines[0][:half]
	if !strings.Contains(left, "-") {
		t.Fatalf("expected the minus marker still present: %q", left)
	}
	if !strings.Contains(left, minusEmpty.Paint(" ")) {
		t.Fatalf("expected the empty-line marker's styled space in the left panel: %q", left)
	}
}

func iptr(n int) *int { return &n }
