package buffer

import "strings"

// DefaultTabWidth is the render width of a tab stop.
const DefaultTabWidth = 8

// TabExpander maps between a row's raw string and its render string, in
// which each tab advances to the next multiple of the tab width. All other
// bytes occupy exactly one render column, so the two coordinate systems
// diverge only at tabs.
type TabExpander struct {
	width int
}

// NewTabExpander creates an expander with the given tab width. Widths
// below 1 fall back to DefaultTabWidth.
func NewTabExpander(width int) TabExpander {
	if width < 1 {
		width = DefaultTabWidth
	}
	return TabExpander{width: width}
}

// Width returns the configured tab width.
func (t TabExpander) Width() int {
	return t.width
}

// Expand produces the render string for a raw row: tabs become spaces up
// to the next tab stop, everything else is copied through.
func (t TabExpander) Expand(raw string) string {
	if !strings.ContainsRune(raw, '\t') {
		return raw
	}

	var b strings.Builder
	col := 0
	for i := 0; i < len(raw); i++ {
		if raw[i] == '\t' {
			b.WriteByte(' ')
			col++
			for col%t.width != 0 {
				b.WriteByte(' ')
				col++
			}
			continue
		}
		b.WriteByte(raw[i])
		col++
	}
	return b.String()
}

// RawToRender converts a raw byte index into the render column of the
// same character. An index past the end of the row maps to the render
// width of the whole row.
func (t TabExpander) RawToRender(raw string, rawIdx int) int {
	col := 0
	for i := 0; i < rawIdx && i < len(raw); i++ {
		if raw[i] == '\t' {
			col += (t.width - 1) - (col % t.width)
		}
		col++
	}
	return col
}

// RenderToRaw converts a render column back to the raw index of the
// character occupying that column. Columns inside a tab's padding map to
// the tab itself, so RenderToRaw(RawToRender(i)) == i for every valid i.
// A column past the end of the row maps to len(raw).
func (t TabExpander) RenderToRaw(raw string, renderCol int) int {
	col := 0
	for i := 0; i < len(raw); i++ {
		if raw[i] == '\t' {
			col += (t.width - 1) - (col % t.width)
		}
		col++
		if col > renderCol {
			return i
		}
	}
	return len(raw)
}
