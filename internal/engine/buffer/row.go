package buffer

import "github.com/dshills/shim/internal/engine/highlight"

// Row is one line of the document. Raw holds the stored bytes; Render and
// HL are projections derived from Raw and are rebuilt on every mutation.
type Row struct {
	// Index is the zero-based position of the row in the document. The
	// document keeps it current across inserts and deletes.
	Index int

	// Raw is the stored content, without any line terminator.
	Raw string

	// Render is Raw with tabs expanded to the document's tab width.
	Render string

	// HL holds one highlight class per Render byte.
	HL []highlight.Class

	// endsInComment records whether the row exits inside an open block
	// comment. It seeds the next row's scan.
	endsInComment bool
}

// RenderWidth returns the row's width in render columns.
func (r *Row) RenderWidth() int {
	return len(r.Render)
}

// update rebuilds the render projection and re-scans highlighting.
// startsInComment is the previous row's exit state. It reports whether
// the row's own exit state changed, which obliges the caller to cascade
// into the next row.
func (r *Row) update(tabs TabExpander, startsInComment bool, profile *highlight.Profile) bool {
	r.Render = tabs.Expand(r.Raw)

	hl, ends := highlight.Scan([]byte(r.Render), startsInComment, profile)
	r.HL = hl

	changed := ends != r.endsInComment
	r.endsInComment = ends
	return changed
}
