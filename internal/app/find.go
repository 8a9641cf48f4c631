package app

import (
	"github.com/dshills/shim/internal/renderer/backend"
	"github.com/dshills/shim/internal/search"
)

// find runs an incremental search. The cursor jumps to each hit as the
// query changes; arrows step through matches; Escape restores the cursor
// and scroll position from before the search.
func (e *Editor) find() {
	savedCx, savedCy := e.cx, e.cy
	savedView := *e.view

	session := search.NewSession(e.doc)

	_, confirmed := e.prompt("Search: %s (Use ESC/Arrows/Enter)", func(query string, ev backend.Event) {
		result, _ := session.Update(query, searchIntent(ev))
		if !result.Found {
			return
		}
		e.cy = result.Row
		e.cx = result.RawCol
		// Land the hit row at the top of the screen.
		e.view.ForcePastEnd(e.doc.NumRows())
	})

	if !confirmed {
		e.cx, e.cy = savedCx, savedCy
		*e.view = savedView
	}
}

// searchIntent maps a prompt keystroke to a search action.
func searchIntent(ev backend.Event) search.Intent {
	switch ev.Key {
	case backend.KeyRight, backend.KeyDown:
		return search.IntentNext
	case backend.KeyLeft, backend.KeyUp:
		return search.IntentPrevious
	case backend.KeyEnter:
		return search.IntentConfirm
	case backend.KeyEscape:
		return search.IntentCancel
	default:
		return search.IntentEdit
	}
}
