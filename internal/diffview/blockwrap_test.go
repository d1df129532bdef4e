package diffview

import "testing"

func logicalLine(text string) LogicalLine {
	line := StyledLine{seg(text)}
	return LogicalLine{Syntax: line, Diff: line, State: Minus}
}

func TestWrapMinusPlusBlockPairsAndTagsStates(t *testing.T) {
	minusLines := []LogicalLine{logicalLine("-one"), logicalLine("-two")}
	plusLines := []LogicalLine{logicalLine("+one"), logicalLine("+two")}

	alignment := []AlignmentEntry{
		{Minus: idx(0), Plus: idx(0)},
		{Minus: idx(1), Plus: idx(1)},
	}

	cfg := WrapConfig{LeftSymbol: ">", RightPrefixSymbol: "<"}
	width := LeftRight[int]{Left: 80, Right: 80}
	fill := LeftRight[Style]{Left: plainStyle, Right: plainStyle}

	rows := WrapMinusPlusBlock(alignment, minusLines, plusLines, width, fill, cfg)

	if len(rows) != 2 {
		t.Fatalf("expected 2 aligned rows, got %d", len(rows))
	}
	for i, r := range rows {
		if len(r.Left) != 1 || len(r.Right) != 1 {
			t.Fatalf("row %d: expected 1 physical row per side, got left=%d right=%d", i, len(r.Left), len(r.Right))
		}
		if r.Left[0].State != Minus {
			t.Errorf("row %d: left state = %v, want Minus", i, r.Left[0].State)
		}
		if r.Right[0].State != Plus {
			t.Errorf("row %d: right state = %v, want Plus", i, r.Right[0].State)
		}
	}
}

func TestWrapMinusPlusBlockUnpairedSideIsEmpty(t *testing.T) {
	minusLines := []LogicalLine{logicalLine("-only")}
	plusLines := []LogicalLine{}

	alignment := []AlignmentEntry{{Minus: idx(0)}}
	cfg := WrapConfig{LeftSymbol: ">", RightPrefixSymbol: "<"}
	width := LeftRight[int]{Left: 80, Right: 80}
	fill := LeftRight[Style]{Left: plainStyle, Right: plainStyle}

	rows := WrapMinusPlusBlock(alignment, minusLines, plusLines, width, fill, cfg)

	if len(rows) != 1 {
		t.Fatalf("expected 1 aligned row, got %d", len(rows))
	}
	if len(rows[0].Left) != 1 {
		t.Fatalf("expected 1 physical left row, got %d", len(rows[0].Left))
	}
	if len(rows[0].Right) != 1 {
		t.Fatalf("expected the plus side tail-padded to 1 row, got %d", len(rows[0].Right))
	}
	if rows[0].Right[0].Line != nil {
		t.Fatalf("tail-padded row should carry no content, got %v", rows[0].Right[0].Line)
	}
}

func TestWrapMinusPlusBlockTailPadsUnevenWrapCounts(t *testing.T) {
	minusLines := []LogicalLine{logicalLine("-" + "abcdefghijklmnop")}
	plusLines := []LogicalLine{logicalLine("+short")}

	alignment := []AlignmentEntry{{Minus: idx(0), Plus: idx(0)}}
	cfg := WrapConfig{LeftSymbol: ">", RightPrefixSymbol: "<"}
	// Narrow left width forces the minus line to wrap into 2 rows; the
	// plus line comfortably fits in 1.
	width := LeftRight[int]{Left: 10, Right: 80}
	fill := LeftRight[Style]{Left: plainStyle, Right: plainStyle}

	rows := WrapMinusPlusBlock(alignment, minusLines, plusLines, width, fill, cfg)

	if len(rows) != 1 {
		t.Fatalf("expected 1 aligned group, got %d", len(rows))
	}
	if len(rows[0].Left) != 2 {
		t.Fatalf("expected minus side to wrap into 2 rows, got %d", len(rows[0].Left))
	}
	if len(rows[0].Right) != 2 {
		t.Fatalf("expected plus side tail-padded to 2 rows, got %d", len(rows[0].Right))
	}
	if rows[0].Right[1].Line != nil {
		t.Fatalf("padded tail row should carry no content, got %v", rows[0].Right[1].Line)
	}
}
