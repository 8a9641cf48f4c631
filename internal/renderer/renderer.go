// Package renderer projects editor state onto a terminal backend: the
// text area with syntax styling, the line-number gutter, the inverted
// status bar, and the transient message line.
package renderer

import (
	"github.com/dshills/shim/internal/engine/buffer"
	"github.com/dshills/shim/internal/renderer/backend"
	"github.com/dshills/shim/internal/renderer/core"
	"github.com/dshills/shim/internal/renderer/gutter"
	"github.com/dshills/shim/internal/renderer/statusline"
	"github.com/dshills/shim/internal/renderer/viewport"
)

// Frame is everything the renderer needs to draw one complete screen.
type Frame struct {
	Doc  *buffer.Document
	View *viewport.Viewport

	// CursorRow and CursorCol locate the cursor in document row /
	// render column coordinates.
	CursorRow int
	CursorCol int

	Status  statusline.Status
	Message string

	// Welcome is shown centered a third of the way down when the
	// document is empty. Empty string disables the banner.
	Welcome string
}

// Renderer draws frames onto a backend.
type Renderer struct {
	backend backend.Backend
	theme   Theme
	gutter  *gutter.Gutter
}

// New creates a renderer. The gutter may be disabled via config.
func New(b backend.Backend, theme Theme, g *gutter.Gutter) *Renderer {
	return &Renderer{backend: b, theme: theme, gutter: g}
}

// GutterWidth returns the current width of the line-number column.
func (r *Renderer) GutterWidth() int { return r.gutter.Width() }

// Draw renders a complete frame and flushes it to the terminal.
func (r *Renderer) Draw(f Frame) {
	r.backend.Clear()
	r.gutter.Update(f.Doc.NumRows())

	width, height := r.backend.Size()
	textRows := height - 2
	if textRows < 0 {
		textRows = 0
	}

	for y := 0; y < textRows; y++ {
		r.drawTextRow(f, y, width, textRows)
	}
	r.drawStatusBar(f, width, height)
	r.drawMessage(f, width, height)
	r.placeCursor(f)
	r.backend.Show()
}

func (r *Renderer) drawTextRow(f Frame, y, width, textRows int) {
	fileRow := f.View.RowOffset() + y
	if fileRow >= f.Doc.NumRows() {
		r.drawEmptyRow(f, y, width, textRows)
		return
	}

	gw := r.gutter.Width()
	gutterText := r.gutter.Format(fileRow, f.Doc.NumRows())
	r.drawString(0, y, gutterText, r.theme.GutterStyle())

	row := f.Doc.Row(fileRow)
	colOff := f.View.ColOffset()
	visible := width - gw

	for _, run := range StyledRuns(row.HL) {
		style := r.theme.Style(run.Class)
		for i := run.Start; i < run.End; i++ {
			x := i - colOff
			if x < 0 || x >= visible {
				continue
			}
			r.setTextCell(gw+x, y, row.Render[i], style)
		}
	}
}

// setTextCell writes one render byte, showing control characters as an
// inverted placeholder ('@' for NUL, 'A' for 0x01, ...).
func (r *Renderer) setTextCell(x, y int, c byte, style core.Style) {
	if c < 32 || c == 127 {
		sym := byte('?')
		if c < 32 {
			sym = '@' + c
		}
		r.backend.SetCell(x, y, core.NewStyledCell(rune(sym), style.Reverse()))
		return
	}
	r.backend.SetCell(x, y, core.NewStyledCell(rune(c), style))
}

func (r *Renderer) drawEmptyRow(f Frame, y, width, textRows int) {
	if f.Welcome != "" && f.Doc.NumRows() == 0 && y == textRows/3 {
		r.drawWelcome(f.Welcome, y, width)
		return
	}
	r.backend.SetCell(0, y, core.NewStyledCell('~', r.theme.GutterStyle()))
}

func (r *Renderer) drawWelcome(text string, y, width int) {
	if len(text) > width {
		text = text[:width]
	}
	padding := (width - len(text)) / 2
	if padding > 0 {
		r.backend.SetCell(0, y, core.NewStyledCell('~', r.theme.GutterStyle()))
	}
	r.drawString(padding, y, text, core.DefaultStyle())
}

func (r *Renderer) drawStatusBar(f Frame, width, height int) {
	if height < 2 {
		return
	}
	bar := statusline.FormatBar(f.Status, width)
	r.drawString(0, height-2, bar, r.theme.StatusStyle())
}

func (r *Renderer) drawMessage(f Frame, width, height int) {
	if height < 1 {
		return
	}
	msg := f.Message
	if len(msg) > width {
		msg = msg[:width]
	}
	r.drawString(0, height-1, msg, core.DefaultStyle())
}

func (r *Renderer) placeCursor(f Frame) {
	x, y := f.View.ScreenPosition(f.CursorRow, f.CursorCol)
	r.backend.ShowCursor(r.gutter.Width()+x, y)
}

func (r *Renderer) drawString(x, y int, s string, style core.Style) {
	for i := 0; i < len(s); i++ {
		r.backend.SetCell(x+i, y, core.NewStyledCell(rune(s[i]), style))
	}
}
