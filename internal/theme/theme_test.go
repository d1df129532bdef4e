package theme

import (
	"testing"

	"splitdiff/internal/diffview"
)

func TestDefaultStylesCarryBackgroundOnChangedLines(t *testing.T) {
	styles := Default().Styles()
	if !styles.Minus.HasBackground() {
		t.Fatalf("expected minus style to carry a background")
	}
	if !styles.Plus.HasBackground() {
		t.Fatalf("expected plus style to carry a background")
	}
	if styles.Context.HasBackground() {
		t.Fatalf("expected context style to have no background")
	}
}

func TestDefaultStylesEmptyMarkersCarryBackground(t *testing.T) {
	styles := Default().Styles()
	if !styles.EmptyMarker.Minus.HasBackground() {
		t.Fatalf("expected minus empty-marker to carry a background")
	}
	if !styles.EmptyMarker.Plus.HasBackground() {
		t.Fatalf("expected plus empty-marker to carry a background")
	}
	if styles.EmptyMarker.Minus.Foreground != Default().RemovedEmptyMarker {
		t.Fatalf("expected minus empty-marker to use RemovedEmptyMarker")
	}
	if styles.EmptyMarker.Plus.Foreground != Default().AddedEmptyMarker {
		t.Fatalf("expected plus empty-marker to use AddedEmptyMarker")
	}
}

func TestHighContrastDivergesFromDefault(t *testing.T) {
	if HighContrast().AddedBackground == Default().AddedBackground {
		t.Fatalf("expected HighContrast to use a different added background")
	}
}

func TestEmphasisForPicksSideSpecificColor(t *testing.T) {
	p := Default()
	left := p.EmphasisFor(diffview.Left)
	right := p.EmphasisFor(diffview.Right)
	if left.Foreground == right.Foreground {
		t.Fatalf("expected left/right emphasis colors to differ")
	}
	if left.Foreground != p.RemovedEmphasis {
		t.Fatalf("expected left emphasis to use RemovedEmphasis")
	}
	if right.Foreground != p.AddedEmphasis {
		t.Fatalf("expected right emphasis to use AddedEmphasis")
	}
}
