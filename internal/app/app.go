// Package app wires the editor together: it owns the document, the
// cursor, the viewport, and the event loop, and dispatches key events to
// editing, search, and file operations.
package app

import (
	"errors"
	"fmt"
	"io/fs"
	"time"

	"github.com/dshills/shim/internal/config"
	"github.com/dshills/shim/internal/engine/buffer"
	"github.com/dshills/shim/internal/engine/highlight"
	"github.com/dshills/shim/internal/filewatch"
	"github.com/dshills/shim/internal/renderer"
	"github.com/dshills/shim/internal/renderer/backend"
	"github.com/dshills/shim/internal/renderer/gutter"
	"github.com/dshills/shim/internal/renderer/statusline"
	"github.com/dshills/shim/internal/renderer/viewport"
)

// Version is the editor version shown in the welcome banner.
const Version = "0.1.0"

const helpMessage = "HELP: Ctrl-S = save | Ctrl-Q = quit | Ctrl-F = find"

// Editor is the running application.
type Editor struct {
	cfg      config.Config
	log      *Logger
	backend  backend.Backend
	registry *highlight.Registry

	doc     *buffer.Document
	view    *viewport.Viewport
	gutter  *gutter.Gutter
	painter *renderer.Renderer
	message statusline.Message
	watcher *filewatch.Watcher

	// Cursor position: cy is the document row, cx the raw byte index.
	cx, cy int

	quitTimes   int
	showWelcome bool

	// now is the clock; tests substitute a fixed one.
	now func() time.Time
}

// New creates an editor on the given backend. The backend must not be
// initialized yet.
func New(cfg config.Config, b backend.Backend, log *Logger) (*Editor, error) {
	registry := highlight.NewRegistry()
	if cfg.SyntaxDir != "" {
		if err := registry.LoadDir(cfg.SyntaxDir); err != nil {
			return nil, err
		}
	}

	g := gutter.New(cfg.LineNumbers)
	e := &Editor{
		cfg:       cfg,
		log:       log,
		backend:   b,
		registry:  registry,
		doc:       buffer.NewDocument(buffer.WithTabWidth(cfg.TabWidth)),
		view:      viewport.New(1, 1),
		gutter:    g,
		painter:   renderer.New(b, renderer.DefaultTheme(), g),
		quitTimes: cfg.QuitTimes,
		now:       time.Now,
	}
	return e, nil
}

// OpenFile loads the named file into the editor. A nonexistent file
// opens as a new, empty document carrying the name.
func (e *Editor) OpenFile(path string) error {
	opts := []buffer.Option{
		buffer.WithTabWidth(e.cfg.TabWidth),
		buffer.WithProfile(e.registry.Match(path)),
	}

	existed := true
	doc, err := buffer.Load(path, opts...)
	if errors.Is(err, fs.ErrNotExist) {
		doc = buffer.NewDocument(opts...)
		doc.SetFilename(path)
		existed = false
		err = nil
	}
	if err != nil {
		return err
	}

	e.doc = doc
	e.cx, e.cy = 0, 0
	e.log.Info("opened %s (%d rows)", path, doc.NumRows())

	if e.cfg.WatchFile && existed {
		e.startWatcher(path)
	}
	return nil
}

func (e *Editor) startWatcher(path string) {
	w, err := filewatch.New(path, func(name string) {
		e.backend.PostEvent(backend.Event{
			Type:   backend.EventNotice,
			Notice: fmt.Sprintf("Warning: %s changed on disk", name),
		})
	})
	if err != nil {
		e.log.Warn("file watch unavailable: %v", err)
		return
	}
	e.watcher = w
}

// Run initializes the terminal and drives the event loop until quit.
func (e *Editor) Run() error {
	if err := e.backend.Init(); err != nil {
		return err
	}
	defer e.backend.Shutdown()
	defer e.closeWatcher()

	e.showWelcome = e.doc.NumRows() == 0 && !e.doc.Dirty()
	e.message.Set(e.now(), helpMessage)

	for {
		e.refresh()
		ev := e.backend.PollEvent()
		if err := e.handleEvent(ev); err != nil {
			if errors.Is(err, ErrQuit) {
				e.log.Info("quit")
				return nil
			}
			return err
		}
	}
}

func (e *Editor) closeWatcher() {
	if e.watcher != nil {
		e.watcher.Close()
		e.watcher = nil
	}
}

// refresh lays out the screen and draws one frame.
func (e *Editor) refresh() {
	width, height := e.backend.Size()
	e.gutter.Update(e.doc.NumRows())
	e.view.Resize(width-e.gutter.Width(), height-2)

	rx := e.renderColumn()
	e.view.Follow(e.cy, rx)

	welcome := ""
	if e.showWelcome {
		welcome = fmt.Sprintf("shim editor -- version %s", Version)
	}

	e.painter.Draw(renderer.Frame{
		Doc:       e.doc,
		View:      e.view,
		CursorRow: e.cy,
		CursorCol: rx,
		Status:    e.status(),
		Message:   e.message.Text(e.now()),
		Welcome:   welcome,
	})
}

func (e *Editor) status() statusline.Status {
	fileType := ""
	if p := e.doc.Profile(); p != nil {
		fileType = p.Name
	}
	return statusline.Status{
		Filename:  e.doc.Filename(),
		FileType:  fileType,
		NumRows:   e.doc.NumRows(),
		CursorRow: e.cy,
		Dirty:     e.doc.Dirty(),
	}
}

// renderColumn maps the cursor's raw index to its render column.
func (e *Editor) renderColumn() int {
	row := e.doc.Row(e.cy)
	if row == nil {
		return 0
	}
	return e.doc.TabExpander().RawToRender(row.Raw, e.cx)
}

// rowLen returns the raw length of the cursor row, 0 past the end.
func (e *Editor) rowLen(at int) int {
	row := e.doc.Row(at)
	if row == nil {
		return 0
	}
	return len(row.Raw)
}

// save writes the document, prompting for a name if it has none.
func (e *Editor) save() {
	if e.doc.Filename() == "" {
		name, ok := e.prompt("Save as: %s (ESC to cancel)", nil)
		if !ok {
			e.message.Set(e.now(), "Save aborted")
			return
		}
		e.doc.SetFilename(name)
		e.doc.SetProfile(e.registry.Match(name))
	}

	if e.watcher != nil {
		e.watcher.Suspend()
		defer e.watcher.Resume()
	}

	n, err := e.doc.Save()
	if err != nil {
		e.log.Error("save failed: %v", err)
		e.message.Set(e.now(), "Can't save! I/O error: %v", err)
		return
	}
	e.log.Info("saved %s (%d bytes)", e.doc.Filename(), n)
	e.message.Set(e.now(), "%d bytes written to disk", n)
}
