package main

import (
	"testing"

	"splitdiff/internal/diffview"
	gitint "splitdiff/internal/git"
)

func intPtr(v int) *int {
	n := v
	return &n
}

func TestParseDiffModeAcceptsKnownValues(t *testing.T) {
	cases := map[string]gitint.DiffMode{
		"":         gitint.DiffModeAll,
		"all":      gitint.DiffModeAll,
		"staged":   gitint.DiffModeStaged,
		"unstaged": gitint.DiffModeUnstaged,
	}
	for in, want := range cases {
		got, err := parseDiffMode(in)
		if err != nil {
			t.Fatalf("parseDiffMode(%q) unexpected error: %v", in, err)
		}
		if got != want {
			t.Fatalf("parseDiffMode(%q)=%v, want %v", in, got, want)
		}
	}
}

func TestParseDiffModeRejectsUnknownValue(t *testing.T) {
	if _, err := parseDiffMode("bogus"); err == nil {
		t.Fatal("expected an error for an unrecognized mode")
	}
}

func TestHighestLineNumberFindsMaxAcrossOldAndNew(t *testing.T) {
	rows := []diffview.DiffRow{
		{Kind: diffview.RowContext, OldLine: intPtr(4), NewLine: intPtr(4)},
		{Kind: diffview.RowAdd, NewLine: intPtr(9)},
		{Kind: diffview.RowDelete, OldLine: intPtr(2)},
	}
	if got := highestLineNumber(rows); got != 9 {
		t.Fatalf("highestLineNumber()=%d, want 9", got)
	}
}

func TestHighestLineNumberOnEmptyRows(t *testing.T) {
	if got := highestLineNumber(nil); got != 0 {
		t.Fatalf("highestLineNumber(nil)=%d, want 0", got)
	}
}
