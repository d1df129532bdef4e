package diffview

import "testing"

var baseStyle = Style{}
var emphasisStyle = Style{Bold: true}

func TestHighlightChangedRegionSplitsPrefixAndMiddle(t *testing.T) {
	oldSegs, newSegs := HighlightChangedRegion("hello world", "hello earth", baseStyle, emphasisStyle)

	if got := StyledLine(oldSegs).Text(); got != "hello world" {
		t.Fatalf("old text roundtrip = %q", got)
	}
	if got := StyledLine(newSegs).Text(); got != "hello earth" {
		t.Fatalf("new text roundtrip = %q", got)
	}

	if len(oldSegs) != 2 || oldSegs[0].Text != "hello " || oldSegs[1].Text != "world" {
		t.Fatalf("unexpected old segments: %+v", oldSegs)
	}
	if oldSegs[1].Style != emphasisStyle {
		t.Fatalf("expected changed region styled with emphasis")
	}
	if len(newSegs) != 2 || newSegs[0].Text != "hello " || newSegs[1].Text != "earth" {
		t.Fatalf("unexpected new segments: %+v", newSegs)
	}
}

func TestHighlightChangedRegionFindsCommonSuffix(t *testing.T) {
	oldSegs, _ := HighlightChangedRegion("catfood", "dogfood", baseStyle, emphasisStyle)

	if len(oldSegs) != 2 {
		t.Fatalf("expected prefix dropped to nothing and a suffix retained, got %+v", oldSegs)
	}
	if oldSegs[0].Text != "cat" || oldSegs[0].Style != emphasisStyle {
		t.Fatalf("expected changed prefix %q styled with emphasis, got %+v", "cat", oldSegs[0])
	}
	if oldSegs[1].Text != "food" || oldSegs[1].Style != baseStyle {
		t.Fatalf("expected unchanged suffix %q, got %+v", "food", oldSegs[1])
	}
}

func TestHighlightChangedRegionIdenticalTextIsAllUnchanged(t *testing.T) {
	oldSegs, newSegs := HighlightChangedRegion("same", "same", baseStyle, emphasisStyle)
	if len(oldSegs) != 1 || oldSegs[0].Style != baseStyle {
		t.Fatalf("expected a single unchanged segment, got %+v", oldSegs)
	}
	if len(newSegs) != 1 || newSegs[0].Text != "same" {
		t.Fatalf("unexpected new segments: %+v", newSegs)
	}
}
