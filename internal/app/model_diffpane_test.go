package app

import (
	"strings"
	"testing"

	"github.com/charmbracelet/bubbles/viewport"

	"splitdiff/internal/config"
	"splitdiff/internal/diffview"
	"splitdiff/internal/syntax"
	"splitdiff/internal/theme"
)

func intPtr(v int) *int {
	n := v
	return &n
}

func newTestModel() Model {
	palette := theme.Default()
	return Model{
		cfg:         config.AppConfig{SideBySide: config.DefaultSideBySideConfig()},
		styles:      palette.Styles(),
		highlighter: syntax.New("monokai", palette.Styles().Context),
		diffView:    viewport.New(60, 20),
	}
}

func TestMaxLineNumberFindsHighestOldOrNewLine(t *testing.T) {
	rows := []diffview.DiffRow{
		{Kind: diffview.RowContext, OldLine: intPtr(3), NewLine: intPtr(3)},
		{Kind: diffview.RowAdd, NewLine: intPtr(12)},
		{Kind: diffview.RowDelete, OldLine: intPtr(7)},
	}
	if got := maxLineNumber(rows); got != 12 {
		t.Fatalf("maxLineNumber()=%d, want 12", got)
	}
}

func TestRefreshDiffContentRendersIntoViewport(t *testing.T) {
	m := newTestModel()
	m.diffRows = []diffview.DiffRow{
		{Kind: diffview.RowHunkHeader, OldText: "@@ -1,1 +1,2 @@", Path: "a.go"},
		{Kind: diffview.RowAdd, NewLine: intPtr(1), NewText: "package a", Path: "a.go", HunkID: 0},
	}
	m.diffDirty = true

	m.refreshDiffContent()

	if m.diffDirty {
		t.Fatalf("expected diffDirty to be cleared after refresh")
	}
	if !strings.Contains(m.diffView.View(), "package a") {
		t.Fatalf("expected rendered content to contain the added line, got %q", m.diffView.View())
	}
}

func TestRefreshDiffContentIsNoOpWhenNotDirty(t *testing.T) {
	m := newTestModel()
	m.diffView.SetContent("untouched")
	m.diffRows = []diffview.DiffRow{{Kind: diffview.RowHunkHeader, OldText: "@@ -1 +1 @@"}}
	m.diffDirty = false

	m.refreshDiffContent()

	if !strings.Contains(m.diffView.View(), "untouched") {
		t.Fatalf("expected viewport content to remain untouched, got %q", m.diffView.View())
	}
}
