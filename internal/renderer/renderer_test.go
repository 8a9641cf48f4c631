package renderer

import (
	"strings"
	"testing"

	"github.com/dshills/shim/internal/engine/buffer"
	"github.com/dshills/shim/internal/engine/highlight"
	"github.com/dshills/shim/internal/renderer/backend"
	"github.com/dshills/shim/internal/renderer/gutter"
	"github.com/dshills/shim/internal/renderer/statusline"
	"github.com/dshills/shim/internal/renderer/viewport"
)

func testSetup(t *testing.T, width, height int, lines []string) (*Renderer, *backend.NullBackend, Frame) {
	t.Helper()

	b := backend.NewNullBackend(width, height)
	if err := b.Init(); err != nil {
		t.Fatal(err)
	}

	d := buffer.NewDocument()
	for i, line := range lines {
		if err := d.InsertRow(i, line); err != nil {
			t.Fatal(err)
		}
	}

	g := gutter.New(true)
	r := New(b, DefaultTheme(), g)
	g.Update(d.NumRows())

	f := Frame{
		Doc:    d,
		View:   viewport.New(width-g.Width(), height-2),
		Status: statusline.Status{Filename: "test.txt", NumRows: d.NumRows()},
	}
	return r, b, f
}

func TestStyledRuns(t *testing.T) {
	classes := []highlight.Class{
		highlight.Keyword1, highlight.Keyword1,
		highlight.Normal,
		highlight.Number, highlight.Number, highlight.Number,
	}

	runs := StyledRuns(classes)
	want := []Run{
		{Start: 0, End: 2, Class: highlight.Keyword1},
		{Start: 2, End: 3, Class: highlight.Normal},
		{Start: 3, End: 6, Class: highlight.Number},
	}
	if len(runs) != len(want) {
		t.Fatalf("got %d runs, want %d", len(runs), len(want))
	}
	for i, r := range runs {
		if r != want[i] {
			t.Errorf("run %d = %+v, want %+v", i, r, want[i])
		}
	}

	if StyledRuns(nil) != nil {
		t.Error("empty input should produce no runs")
	}
}

func TestDrawTextAndTildes(t *testing.T) {
	r, b, f := testSetup(t, 20, 6, []string{"hello", "world"})
	r.Draw(f)

	if got := b.RowText(0); !strings.Contains(got, "hello") {
		t.Errorf("row 0 = %q", got)
	}
	if got := b.RowText(0); !strings.Contains(got, "  1 ") {
		t.Errorf("row 0 missing gutter: %q", got)
	}
	if got := b.RowText(2); !strings.HasPrefix(got, "~") {
		t.Errorf("row past end should show tilde: %q", got)
	}
}

func TestDrawStatusAndMessage(t *testing.T) {
	r, b, f := testSetup(t, 40, 6, []string{"x"})
	f.Message = "HELP: Ctrl-S = save"
	r.Draw(f)

	if got := b.RowText(4); !strings.Contains(got, "test.txt") {
		t.Errorf("status bar = %q", got)
	}
	if got := b.RowText(5); !strings.HasPrefix(got, "HELP: Ctrl-S = save") {
		t.Errorf("message line = %q", got)
	}
}

func TestDrawWelcomeBanner(t *testing.T) {
	r, b, f := testSetup(t, 40, 12, nil)
	f.Welcome = "shim editor"
	r.Draw(f)

	// One third of the way down the 10-row text area.
	if got := b.RowText(3); !strings.Contains(got, "shim editor") {
		t.Errorf("banner row = %q", got)
	}
	if got := b.RowText(0); !strings.HasPrefix(got, "~") {
		t.Errorf("empty rows show tildes: %q", got)
	}
}

func TestDrawHorizontalScroll(t *testing.T) {
	r, b, f := testSetup(t, 14, 5, []string{"abcdefghijklmnopqrstuvwxyz"})

	// Gutter takes 4 columns, text area is 10 wide. Scroll to column 20.
	f.View.Follow(0, 20)
	f.CursorCol = 20
	r.Draw(f)

	got := b.RowText(0)
	if !strings.Contains(got, "lmnopqrst") {
		t.Errorf("scrolled row = %q", got)
	}
	if strings.Contains(got, "abc") {
		t.Errorf("columns left of the offset should be hidden: %q", got)
	}
}

func TestDrawCursorPlacement(t *testing.T) {
	r, b, f := testSetup(t, 20, 6, []string{"hello"})
	f.CursorRow = 0
	f.CursorCol = 2
	r.Draw(f)

	x, y, visible := b.CursorPosition()
	if !visible {
		t.Fatal("cursor hidden")
	}
	// Gutter is 4 wide, so column 2 lands at screen x 6.
	if x != 6 || y != 0 {
		t.Errorf("cursor at %d,%d, want 6,0", x, y)
	}
}

func TestDrawControlCharacters(t *testing.T) {
	r, b, f := testSetup(t, 20, 5, []string{"a\x01b"})
	r.Draw(f)

	if got := b.RowText(0); !strings.Contains(got, "aAb") {
		t.Errorf("control byte should render as placeholder: %q", got)
	}
}

func TestDrawMatchOverlayStyle(t *testing.T) {
	r, b, f := testSetup(t, 20, 5, []string{"needle"})
	row := f.Doc.Row(0)
	for i := range row.HL {
		row.HL[i] = highlight.Match
	}
	r.Draw(f)

	cell := b.GetCell(4, 0) // first text column after the gutter
	want := DefaultTheme().Style(highlight.Match)
	if !cell.Style.Equals(want) {
		t.Errorf("match style not applied: %+v", cell.Style)
	}
}
