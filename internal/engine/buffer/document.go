package buffer

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/dshills/shim/internal/engine/highlight"
)

// Errors returned by document operations.
var (
	// ErrRowOutOfRange indicates a row index outside the document.
	ErrRowOutOfRange = errors.New("row index out of range")

	// ErrNoFilename indicates a save was attempted on an unnamed document.
	ErrNoFilename = errors.New("document has no filename")
)

// Document is the ordered sequence of rows under edit. Every mutation
// rebuilds the affected rows' render and highlight projections and
// cascades block-comment state into following rows as needed.
//
// Document is not safe for concurrent use; the editor drives it from a
// single event loop.
type Document struct {
	rows     []*Row
	tabs     TabExpander
	profile  *highlight.Profile
	filename string
	dirty    bool
	revision uint64
}

// Option is a functional option for configuring a Document.
type Option func(*Document)

// WithTabWidth sets the tab width used for render projections.
func WithTabWidth(width int) Option {
	return func(d *Document) {
		d.tabs = NewTabExpander(width)
	}
}

// WithProfile sets the highlight profile applied to every row.
func WithProfile(p *highlight.Profile) Option {
	return func(d *Document) {
		d.profile = p
	}
}

// NewDocument creates an empty document.
func NewDocument(opts ...Option) *Document {
	d := &Document{tabs: NewTabExpander(DefaultTabWidth)}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// Load reads the named file into a fresh document. Trailing \n and \r\n
// terminators are stripped per row. The loaded document is clean.
func Load(filename string, opts ...Option) (*Document, error) {
	d := NewDocument(opts...)
	d.filename = filename

	f, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", filename, err)
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		line := strings.TrimRight(scanner.Text(), "\r")
		d.appendRow(line)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading %s: %w", filename, err)
	}

	d.rehighlightAll()
	d.dirty = false
	return d, nil
}

// Filename returns the document's file name, empty for a new document.
func (d *Document) Filename() string { return d.filename }

// SetFilename renames the document and reselects nothing; callers pair
// this with SetProfile when the new name implies a different file type.
func (d *Document) SetFilename(name string) { d.filename = name }

// Dirty reports whether the document has unsaved changes.
func (d *Document) Dirty() bool { return d.dirty }

// Revision returns a counter that increments on every mutation.
func (d *Document) Revision() uint64 { return d.revision }

// NumRows returns the number of rows.
func (d *Document) NumRows() int { return len(d.rows) }

// Row returns the row at the given index, or nil when out of range.
func (d *Document) Row(at int) *Row {
	if at < 0 || at >= len(d.rows) {
		return nil
	}
	return d.rows[at]
}

// TabExpander returns the expander used for the raw/render mapping.
func (d *Document) TabExpander() TabExpander { return d.tabs }

// Profile returns the active highlight profile, nil when disabled.
func (d *Document) Profile() *highlight.Profile { return d.profile }

// SetProfile switches the highlight profile and re-highlights every row.
func (d *Document) SetProfile(p *highlight.Profile) {
	d.profile = p
	d.rehighlightAll()
}

// InsertRow inserts a new row at the given index (0..NumRows inclusive).
func (d *Document) InsertRow(at int, content string) error {
	if at < 0 || at > len(d.rows) {
		return ErrRowOutOfRange
	}

	// Seed the exit state with what the next row currently assumes its
	// entry state is, so the cascade fires exactly when insertion
	// changes that assumption.
	row := &Row{Raw: content, endsInComment: d.startsInComment(at)}
	d.rows = append(d.rows, nil)
	copy(d.rows[at+1:], d.rows[at:])
	d.rows[at] = row
	d.renumberFrom(at)
	d.rehighlightFrom(at)
	d.touch()
	return nil
}

// DeleteRow removes the row at the given index.
func (d *Document) DeleteRow(at int) error {
	if at < 0 || at >= len(d.rows) {
		return ErrRowOutOfRange
	}

	d.rows = append(d.rows[:at], d.rows[at+1:]...)
	d.renumberFrom(at)
	if at < len(d.rows) {
		d.rehighlightFrom(at)
	}
	d.touch()
	return nil
}

// InsertChar inserts one byte into a row at the given raw index. Indexes
// past the end append. Inserting at row == NumRows first creates an
// empty row, so typing on the line past the last row works.
func (d *Document) InsertChar(row, at int, c byte) error {
	if row == len(d.rows) {
		if err := d.InsertRow(row, ""); err != nil {
			return err
		}
	}
	r := d.Row(row)
	if r == nil {
		return ErrRowOutOfRange
	}

	if at < 0 || at > len(r.Raw) {
		at = len(r.Raw)
	}
	r.Raw = r.Raw[:at] + string(c) + r.Raw[at:]
	d.rehighlightFrom(row)
	d.touch()
	return nil
}

// DeleteChar removes the byte at the given raw index from a row.
func (d *Document) DeleteChar(row, at int) error {
	r := d.Row(row)
	if r == nil {
		return ErrRowOutOfRange
	}
	if at < 0 || at >= len(r.Raw) {
		return nil
	}

	r.Raw = r.Raw[:at] + r.Raw[at+1:]
	d.rehighlightFrom(row)
	d.touch()
	return nil
}

// AppendToRow appends content to a row's raw string. Used when a
// backspace at column zero folds a row into its predecessor.
func (d *Document) AppendToRow(row int, content string) error {
	r := d.Row(row)
	if r == nil {
		return ErrRowOutOfRange
	}

	r.Raw += content
	d.rehighlightFrom(row)
	d.touch()
	return nil
}

// InsertNewline splits a row at the given raw index: bytes before the
// index stay, the rest moves to a new following row. When autoIndent is
// true the new row inherits the original row's leading spaces and tabs.
// Splitting at index 0 inserts an empty row above instead.
func (d *Document) InsertNewline(row, at int, autoIndent bool) error {
	if at == 0 {
		return d.InsertRow(row, "")
	}

	r := d.Row(row)
	if r == nil {
		return ErrRowOutOfRange
	}
	if at < 0 || at > len(r.Raw) {
		at = len(r.Raw)
	}

	indent := ""
	if autoIndent {
		indent = leadingWhitespace(r.Raw)
	}
	tail := indent + r.Raw[at:]
	r.Raw = r.Raw[:at]

	if err := d.InsertRow(row+1, tail); err != nil {
		return err
	}
	// InsertRow already re-highlighted from row+1; the truncated row
	// still needs its own pass.
	d.rehighlightFrom(row)
	return nil
}

// Contents flattens the document into a single string with a trailing
// newline after every row, the on-disk representation.
func (d *Document) Contents() string {
	var b strings.Builder
	for _, r := range d.rows {
		b.WriteString(r.Raw)
		b.WriteByte('\n')
	}
	return b.String()
}

// Save writes the document to its filename and marks it clean. It
// returns the number of bytes written.
func (d *Document) Save() (int, error) {
	if d.filename == "" {
		return 0, ErrNoFilename
	}

	data := []byte(d.Contents())
	if err := os.WriteFile(d.filename, data, 0o644); err != nil {
		return 0, fmt.Errorf("writing %s: %w", d.filename, err)
	}
	d.dirty = false
	return len(data), nil
}

// appendRow adds a row without triggering highlighting; Load batches the
// scan into one pass afterwards.
func (d *Document) appendRow(content string) {
	d.rows = append(d.rows, &Row{Index: len(d.rows), Raw: content})
}

// rehighlightFrom rebuilds the edited row's render and highlight
// projections, then cascades into following rows for as long as their
// block-comment entry state keeps changing.
func (d *Document) rehighlightFrom(at int) {
	for i := at; i < len(d.rows); i++ {
		changed := d.rows[i].update(d.tabs, d.startsInComment(i), d.profile)
		if !changed {
			return
		}
	}
}

// rehighlightAll rebuilds every row unconditionally. Used after loading
// and after a profile switch, where stale classes may remain even when
// comment state is stable.
func (d *Document) rehighlightAll() {
	for i := range d.rows {
		d.rows[i].update(d.tabs, d.startsInComment(i), d.profile)
	}
}

func (d *Document) startsInComment(row int) bool {
	if row == 0 {
		return false
	}
	return d.rows[row-1].endsInComment
}

func (d *Document) renumberFrom(at int) {
	for i := at; i < len(d.rows); i++ {
		d.rows[i].Index = i
	}
}

func (d *Document) touch() {
	d.dirty = true
	d.revision++
}

func leadingWhitespace(s string) string {
	for i := 0; i < len(s); i++ {
		if s[i] != ' ' && s[i] != '\t' {
			return s[:i]
		}
	}
	return s
}
