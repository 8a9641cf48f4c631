// Package viewport tracks which part of the document is on screen.
//
// The viewport holds a row offset and a render-column offset into the
// document. Follow adjusts both so the cursor stays visible, scrolling by
// the minimum amount. The viewport is driven from the editor's event loop
// and is not safe for concurrent use.
package viewport

// Viewport is the visible window into the document's render space.
type Viewport struct {
	rowOff int
	colOff int
	width  int
	height int
}

// New creates a viewport with the given text-area size. Dimensions are
// clamped to a minimum of 1.
func New(width, height int) *Viewport {
	v := &Viewport{}
	v.Resize(width, height)
	return v
}

// Resize updates the text-area size.
func (v *Viewport) Resize(width, height int) {
	if width < 1 {
		width = 1
	}
	if height < 1 {
		height = 1
	}
	v.width = width
	v.height = height
}

// Width returns the text-area width in columns.
func (v *Viewport) Width() int { return v.width }

// Height returns the text-area height in rows.
func (v *Viewport) Height() int { return v.height }

// RowOffset returns the document row shown at the top of the screen.
func (v *Viewport) RowOffset() int { return v.rowOff }

// ColOffset returns the render column shown at the left edge.
func (v *Viewport) ColOffset() int { return v.colOff }

// Follow scrolls the minimum amount needed to bring the cursor (document
// row, render column) inside the visible window.
func (v *Viewport) Follow(row, renderCol int) {
	if row < v.rowOff {
		v.rowOff = row
	}
	if row >= v.rowOff+v.height {
		v.rowOff = row - v.height + 1
	}
	if renderCol < v.colOff {
		v.colOff = renderCol
	}
	if renderCol >= v.colOff+v.width {
		v.colOff = renderCol - v.width + 1
	}
}

// ForcePastEnd pushes the row offset past the document so the next Follow
// lands the cursor row at the top of the screen. Used when jumping to a
// search hit.
func (v *Viewport) ForcePastEnd(numRows int) {
	v.rowOff = numRows
}

// Visible reports whether the document row is inside the window.
func (v *Viewport) Visible(row int) bool {
	return row >= v.rowOff && row < v.rowOff+v.height
}

// ScreenPosition converts a document position into text-area coordinates.
// Callers add the gutter width for absolute screen coordinates.
func (v *Viewport) ScreenPosition(row, renderCol int) (x, y int) {
	return renderCol - v.colOff, row - v.rowOff
}
