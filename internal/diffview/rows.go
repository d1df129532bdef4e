package diffview

// DiffSide distinguishes the pre-image ("old") and post-image ("new") file
// in a parsed diff row. It is distinct from Side (which indexes the
// rendered Left/Right panel): a context row's old and new line both land in
// the same panel pairing, but DiffSideOld/DiffSideNew is about which file
// a line number belongs to, not which screen column it is painted in.
type DiffSide int

const (
	DiffSideOld DiffSide = iota
	DiffSideNew
)

// RowKind tags a parsed diff row with the edit it represents.
type RowKind int

const (
	RowContext RowKind = iota
	RowDelete
	RowAdd
	RowChange
	RowHunkHeader
	RowFileHeader
)

// DiffRow is one row of a parsed unified diff: either a file or hunk
// header, or a content row carrying up to one line from each side. Content
// rows are already paired by ParseUnifiedDiff (§4.4's alignment is built
// from runs of these), so OldLine/NewLine being nil just means "this row's
// other side is blank here", exactly as AlignmentEntry expects.
type DiffRow struct {
	Kind    RowKind
	OldLine *int
	NewLine *int
	OldText string
	NewText string
	Path    string
	HunkID  int
}
