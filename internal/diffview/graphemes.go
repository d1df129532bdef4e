package diffview

import "github.com/rivo/uniseg"

// graphemeCount returns the number of extended grapheme clusters in s, per
// UAX #29. spec.md §9 requires width accounting in grapheme clusters rather
// than code points or bytes; uniseg is the one place that boundary is
// computed, so every other file in this package trusts it blindly.
func graphemeCount(s string) int {
	return uniseg.GraphemeClusterCount(s)
}

// graphemeClusters splits s into its extended grapheme clusters, in order.
// Complex clusters UAX #29 does not yet tailor (e.g. multi-virama Indic
// sequences) are counted as the standard specifies, even when they render as
// one visible glyph; this is the documented, accepted divergence from true
// visual width.
func graphemeClusters(s string) []string {
	if s == "" {
		return nil
	}
	out := make([]string, 0, len(s))
	g := uniseg.NewGraphemes(s)
	for g.Next() {
		out = append(out, g.Str())
	}
	return out
}
