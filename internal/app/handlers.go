package app

import "github.com/dshills/shim/internal/renderer/backend"

// handleEvent dispatches one event from the main loop.
func (e *Editor) handleEvent(ev backend.Event) error {
	switch ev.Type {
	case backend.EventKey:
		return e.handleKey(ev)
	case backend.EventResize:
		// The next refresh picks the new size up from the backend.
		return nil
	case backend.EventNotice:
		e.message.Set(e.now(), "%s", ev.Notice)
		return nil
	default:
		return nil
	}
}

func (e *Editor) handleKey(ev backend.Event) error {
	if ev.Key != backend.KeyCtrlQ {
		e.quitTimes = e.cfg.QuitTimes
	}

	switch ev.Key {
	case backend.KeyCtrlQ:
		return e.quit()
	case backend.KeyCtrlS:
		e.save()
	case backend.KeyCtrlF:
		e.find()
	case backend.KeyCtrlL, backend.KeyEscape:
		// Screen is redrawn every loop pass; nothing to do.
	case backend.KeyEnter:
		e.insertNewline()
	case backend.KeyBackspace, backend.KeyCtrlH:
		e.deleteLeft()
	case backend.KeyDelete:
		e.moveCursor(backend.KeyRight)
		e.deleteLeft()
	case backend.KeyTab:
		e.insertChar('\t')
	case backend.KeyRune:
		if ev.Rune < 128 {
			e.insertChar(byte(ev.Rune))
		}
	case backend.KeyUp, backend.KeyDown, backend.KeyLeft, backend.KeyRight:
		e.moveCursor(ev.Key)
	case backend.KeyHome:
		e.cx = 0
	case backend.KeyEnd:
		e.cx = e.rowLen(e.cy)
	case backend.KeyPageUp, backend.KeyPageDown:
		e.movePage(ev.Key)
	}
	return nil
}

func (e *Editor) quit() error {
	if e.doc.Dirty() && e.quitTimes > 0 {
		e.message.Set(e.now(),
			"WARNING!!! File has unsaved changes. Press Ctrl-Q %d more times to quit.",
			e.quitTimes)
		e.quitTimes--
		return nil
	}
	return ErrQuit
}

func (e *Editor) insertChar(c byte) {
	e.showWelcome = false
	if err := e.doc.InsertChar(e.cy, e.cx, c); err != nil {
		e.log.Error("insert: %v", err)
		return
	}
	e.cx++
}

func (e *Editor) insertNewline() {
	e.showWelcome = false
	if e.cy >= e.doc.NumRows() {
		if err := e.doc.InsertRow(e.doc.NumRows(), ""); err != nil {
			e.log.Error("newline: %v", err)
			return
		}
		e.cy++
		e.cx = 0
		return
	}

	tailLen := e.rowLen(e.cy) - e.cx
	if err := e.doc.InsertNewline(e.cy, e.cx, e.cfg.AutoIndent); err != nil {
		e.log.Error("newline: %v", err)
		return
	}
	e.cy++
	// The new row is indent + tail; land the cursor after the indent.
	e.cx = e.rowLen(e.cy) - tailLen
	if e.cx < 0 {
		e.cx = 0
	}
}

func (e *Editor) deleteLeft() {
	if e.cy >= e.doc.NumRows() {
		return
	}
	if e.cx == 0 && e.cy == 0 {
		return
	}

	if e.cx > 0 {
		if err := e.doc.DeleteChar(e.cy, e.cx-1); err != nil {
			e.log.Error("delete: %v", err)
			return
		}
		e.cx--
		return
	}

	// Fold this row into the previous one.
	prevLen := e.rowLen(e.cy - 1)
	row := e.doc.Row(e.cy)
	if err := e.doc.AppendToRow(e.cy-1, row.Raw); err != nil {
		e.log.Error("join: %v", err)
		return
	}
	if err := e.doc.DeleteRow(e.cy); err != nil {
		e.log.Error("join: %v", err)
		return
	}
	e.cy--
	e.cx = prevLen
}

// moveCursor applies one arrow key, wrapping left/right moves across
// row boundaries and snapping the column after vertical moves.
func (e *Editor) moveCursor(key backend.Key) {
	switch key {
	case backend.KeyLeft:
		if e.cx > 0 {
			e.cx--
		} else if e.cy > 0 {
			e.cy--
			e.cx = e.rowLen(e.cy)
		}
	case backend.KeyRight:
		if e.cx < e.rowLen(e.cy) {
			e.cx++
		} else if e.cy < e.doc.NumRows() {
			e.cy++
			e.cx = 0
		}
	case backend.KeyUp:
		if e.cy > 0 {
			e.cy--
		}
	case backend.KeyDown:
		if e.cy < e.doc.NumRows() {
			e.cy++
		}
	}

	if e.cx > e.rowLen(e.cy) {
		e.cx = e.rowLen(e.cy)
	}
}

func (e *Editor) movePage(key backend.Key) {
	if key == backend.KeyPageUp {
		e.cy = e.view.RowOffset()
	} else {
		e.cy = e.view.RowOffset() + e.view.Height() - 1
		if e.cy > e.doc.NumRows() {
			e.cy = e.doc.NumRows()
		}
	}

	dir := backend.KeyDown
	if key == backend.KeyPageUp {
		dir = backend.KeyUp
	}
	for i := 0; i < e.view.Height(); i++ {
		e.moveCursor(dir)
	}
}
