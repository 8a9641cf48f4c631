// Package gutter formats the line-number column drawn left of the text.
package gutter

import (
	"fmt"
	"strings"
)

// MinDigits is the smallest line-number field, so the gutter does not
// jitter while a short file grows.
const MinDigits = 3

// Gutter formats line numbers into a fixed-width column. The width is
// derived from the document's row count and only grows when the count
// gains a digit.
type Gutter struct {
	enabled bool
	digits  int
}

// New creates a gutter. A disabled gutter has zero width and formats
// nothing.
func New(enabled bool) *Gutter {
	return &Gutter{enabled: enabled, digits: MinDigits}
}

// Enabled reports whether the gutter is drawn.
func (g *Gutter) Enabled() bool { return g.enabled }

// Update recomputes the column width for the given row count.
func (g *Gutter) Update(numRows int) {
	g.digits = digitsFor(numRows)
}

// Width returns the total gutter width in columns, including the single
// space separating it from the text.
func (g *Gutter) Width() int {
	if !g.enabled {
		return 0
	}
	return g.digits + 1
}

// Format renders the gutter text for a document row (zero-based). Rows
// past the end of the document get a blank gutter.
func (g *Gutter) Format(row, numRows int) string {
	if !g.enabled {
		return ""
	}
	if row < 0 || row >= numRows {
		return strings.Repeat(" ", g.Width())
	}
	return fmt.Sprintf("%*d ", g.digits, row+1)
}

func digitsFor(numRows int) int {
	digits := 1
	for n := numRows; n >= 10; n /= 10 {
		digits++
	}
	if digits < MinDigits {
		digits = MinDigits
	}
	return digits
}
