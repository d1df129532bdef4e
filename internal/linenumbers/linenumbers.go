// Package linenumbers formats the per-panel line-number gutter shown to the
// left of each side-by-side row and tracks the running old/new counters a
// hunk advances as it is rendered.
package linenumbers

import "strings"

// Format fixes the gutter's numeral width and trailing separator for one
// side. Digits should be wide enough for the largest line number being
// rendered; the callers in this module size it from the highest old/new
// line number of the whole diff so the gutter never reflows mid-diff.
type Format struct {
	Digits    int
	Separator string
}

// DefaultFormat is a 4-digit gutter with a single trailing space, wide
// enough for files up to 9999 lines without reflowing.
var DefaultFormat = Format{Digits: 4, Separator: " "}

// Width is the total column width this format's gutter occupies.
func (f Format) Width() int {
	return f.Digits + len([]rune(f.Separator))
}

// Render renders one gutter cell. A nil line number (the opposite side of
// an unpaired insertion/deletion, or a wrapped continuation row) renders as
// blank space of the same width, so the content column stays aligned
// whether or not this row has a number to show.
func (f Format) Render(n *int) string {
	if n == nil {
		return strings.Repeat(" ", f.Width())
	}
	return padNumber(*n, f.Digits) + f.Separator
}

func padNumber(n, digits int) string {
	s := itoa(n)
	if len(s) >= digits {
		return s
	}
	return strings.Repeat(" ", digits-len(s)) + s
}

func itoa(n int) string {
	if n == 0 {
		return "0"
	}
	neg := n < 0
	if neg {
		n = -n
	}
	var buf [20]byte
	i := len(buf)
	for n > 0 {
		i--
		buf[i] = byte('0' + n%10)
		n /= 10
	}
	if neg {
		i--
		buf[i] = '-'
	}
	return string(buf[i:])
}

// DigitsFor returns the numeral width needed to show n without truncation;
// 1 for any n < 10, growing by one digit per decade.
func DigitsFor(n int) int {
	if n < 0 {
		n = -n
	}
	digits := 1
	for n >= 10 {
		n /= 10
		digits++
	}
	return digits
}

// Counter tracks the next line number to hand out for one side of a hunk.
// A row whose opposite side is blank still has this side's counter
// advance; a row where THIS side is blank must not advance it, which is
// why Advance is a separate, explicit call rather than something Render
// triggers implicitly.
type Counter struct {
	next int
}

// NewCounter starts a counter at the hunk's declared first line number.
func NewCounter(start int) *Counter {
	return &Counter{next: start}
}

// Peek returns the next number this counter would hand out, without
// consuming it.
func (c *Counter) Peek() int {
	return c.next
}

// Advance consumes and returns the next number.
func (c *Counter) Advance() int {
	n := c.next
	c.next++
	return n
}
