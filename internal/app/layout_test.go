package app

import "testing"

func TestPaneWidthsWithFilesPaneVisible(t *testing.T) {
	left, right := paneWidths(120, 40, false)
	if left != 40 {
		t.Fatalf("paneWidths() left = %d, want 40", left)
	}
	if right != 120-40-4 {
		t.Fatalf("paneWidths() right = %d, want %d", right, 120-40-4)
	}
}

func TestPaneWidthsClampsOversizedFilePane(t *testing.T) {
	left, _ := paneWidths(30, 40, false)
	if left > 20 {
		t.Fatalf("expected file pane to be clamped below totalWidth-10, got %d", left)
	}
}

func TestPaneWidthsWithFilesPaneHidden(t *testing.T) {
	left, right := paneWidths(120, 40, true)
	if left != 0 {
		t.Fatalf("paneWidths(hidden) left = %d, want 0", left)
	}
	if right != 118 {
		t.Fatalf("paneWidths(hidden) right = %d, want 118", right)
	}
}

func TestPaneWidthsNeverReturnsNonPositive(t *testing.T) {
	left, right := paneWidths(5, 40, false)
	if left < 1 || right < 1 {
		t.Fatalf("paneWidths(5,...) = (%d,%d), want both >= 1", left, right)
	}
}
