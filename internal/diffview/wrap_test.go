package diffview

import "testing"

var plainStyle = Style{}

func seg(text string) StyleSegment {
	return StyleSegment{Style: plainStyle, Text: text}
}

func rowText(row StyledLine) string {
	return row.Text()
}

func TestWrapLineFitsWithoutSplitting(t *testing.T) {
	line := StyledLine{seg("+"), seg("short")}
	cfg := WrapConfig{LeftSymbol: ">", RightPrefixSymbol: "<"}

	rows := WrapLine(line, 20, plainStyle, cfg)

	if len(rows) != 1 {
		t.Fatalf("expected 1 row, got %d: %v", len(rows), rows)
	}
	if got := rowText(rows[0]); got != "+short" {
		t.Fatalf("unexpected row text %q", got)
	}
}

func TestWrapLineSplitsAcrossThreeRows(t *testing.T) {
	line := StyledLine{seg("+"), seg("abcdefghij")}
	cfg := WrapConfig{LeftSymbol: ">", RightPrefixSymbol: "<"}

	rows := WrapLine(line, 5, plainStyle, cfg)

	want := []string{"+abcd>", "_efgh>", "_ij"}
	if len(rows) != len(want) {
		t.Fatalf("expected %d rows, got %d: %v", len(want), len(rows), rows)
	}
	for i, w := range want {
		if got := rowText(rows[i]); got != w {
			t.Errorf("row %d: got %q, want %q", i, got, w)
		}
	}
}

func TestWrapLineMaxLinesCapsOutput(t *testing.T) {
	line := StyledLine{seg("+"), seg("abcdefghij")}
	cfg := WrapConfig{LeftSymbol: ">", RightPrefixSymbol: "<", MaxLines: 2}

	rows := WrapLine(line, 5, plainStyle, cfg)

	want := []string{"+abcd>", "_efghij"}
	if len(rows) != len(want) {
		t.Fatalf("expected %d rows, got %d: %v", len(want), len(rows), rows)
	}
	for i, w := range want {
		if got := rowText(rows[i]); got != w {
			t.Errorf("row %d: got %q, want %q", i, got, w)
		}
	}
}

func TestWrapLineEmptyInputProducesNoRows(t *testing.T) {
	cfg := WrapConfig{LeftSymbol: ">", RightPrefixSymbol: "<"}
	rows := WrapLine(nil, 10, plainStyle, cfg)
	if len(rows) != 0 {
		t.Fatalf("expected no rows for empty input, got %v", rows)
	}
}

func TestWrapLineRightAlignsLoneShortTail(t *testing.T) {
	// Forces exactly one split, leaving a short tail comfortably within the
	// permille threshold: width 10 (maxLen 11) splits after 9 characters,
	// leaving a 7-character tail with room to spare.
	line := StyledLine{seg("+"), seg("abcdefghijklmnop")}
	cfg := WrapConfig{
		LeftSymbol:           ">",
		RightSymbol:          "<",
		RightPrefixSymbol:    "|",
		UseWrapRightPermille: 1000,
	}

	rows := WrapLine(line, 10, plainStyle, cfg)

	if len(rows) != 2 {
		t.Fatalf("expected 2 rows, got %d: %v", len(rows), rows)
	}
	if got := rowText(rows[0]); got[len(got)-1] != '<' {
		t.Errorf("first row should end with the right-align marker, got %q", got)
	}
	last := rows[1]
	if len(last) == 0 || last[0].Text != "_" {
		t.Fatalf("right-aligned row should retain the synthetic marker column, got %v", last)
	}
}

func TestWrapLinePerfectFitNeedsNoMarker(t *testing.T) {
	// width 9 means maxLen=10; "+"+"abcdefghi" is exactly 10 graphemes,
	// the perfect-fit branch.
	line := StyledLine{seg("+"), seg("abcdefghi")}
	cfg := WrapConfig{LeftSymbol: ">", RightPrefixSymbol: "<"}

	rows := WrapLine(line, 9, plainStyle, cfg)

	if len(rows) != 1 {
		t.Fatalf("expected 1 row, got %d: %v", len(rows), rows)
	}
	if got := rowText(rows[0]); got != "+abcdefghi" {
		t.Fatalf("unexpected row text %q", got)
	}
}

func TestWrapLineZeroWidthForcesSingleRow(t *testing.T) {
	line := StyledLine{seg("+"), seg("abcdef")}
	cfg := WrapConfig{LeftSymbol: ">", RightPrefixSymbol: "<"}

	rows := WrapLine(line, 0, plainStyle, cfg)

	if len(rows) != 1 {
		t.Fatalf("expected 1 row when wrapping is impossible at width 0, got %d: %v", len(rows), rows)
	}
	if got := rowText(rows[0]); got != "+abcdef" {
		t.Fatalf("unexpected row text %q", got)
	}
}
