package linenumbers

import "testing"

func TestFormatRenderPadsToDigitWidth(t *testing.T) {
	f := Format{Digits: 4, Separator: " "}
	n := 12
	if got, want := f.Render(&n), "  12 "; got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestFormatRenderBlanksNilLineNumber(t *testing.T) {
	f := Format{Digits: 4, Separator: " "}
	blank := f.Render(nil)
	if blank != "     " {
		t.Fatalf("got %q, want %q", blank, "     ")
	}
	if len(blank) != f.Width() {
		t.Fatalf("blank render must match declared width")
	}
}

func TestDigitsFor(t *testing.T) {
	cases := map[int]int{0: 1, 9: 1, 10: 2, 99: 2, 100: 3, 9999: 4, 10000: 5}
	for n, want := range cases {
		if got := DigitsFor(n); got != want {
			t.Errorf("DigitsFor(%d) = %d, want %d", n, got, want)
		}
	}
}

func TestCounterAdvanceAndPeek(t *testing.T) {
	c := NewCounter(5)
	if c.Peek() != 5 {
		t.Fatalf("expected peek to show the start value before any advance")
	}
	if got := c.Advance(); got != 5 {
		t.Fatalf("first advance = %d, want 5", got)
	}
	if got := c.Advance(); got != 6 {
		t.Fatalf("second advance = %d, want 6", got)
	}
	if c.Peek() != 7 {
		t.Fatalf("peek after two advances = %d, want 7", c.Peek())
	}
}
