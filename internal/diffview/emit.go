package diffview

import "strings"

// EmitRow composes one full terminal row from independently painted and
// padded left/right panel halves (§4.8). Panels are glued directly
// together: keep-markers already gives each side's marker column visual
// separation, so no divider is inserted unless the caller supplies one.
func EmitRow(left, right, divider string) string {
	var b strings.Builder
	b.WriteString(left)
	b.WriteString(divider)
	b.WriteString(right)
	b.WriteByte('\n')
	return b.String()
}

// EmitRows joins a sequence of already-newline-terminated rows into the
// final output block.
func EmitRows(rows []string) string {
	return strings.Join(rows, "")
}
