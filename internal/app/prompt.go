package app

import "github.com/dshills/shim/internal/renderer/backend"

// promptObserver is invoked after every keystroke of an interactive
// prompt with the input so far and the event that produced it.
// Incremental search hangs off this hook.
type promptObserver func(input string, ev backend.Event)

// prompt runs a single-line prompt on the message line. The format must
// contain one %s for the input so far. It returns the entered text and
// whether the prompt was confirmed rather than cancelled.
func (e *Editor) prompt(format string, observe promptObserver) (string, bool) {
	var buf []byte

	for {
		e.message.Set(e.now(), format, string(buf))
		e.refresh()

		ev := e.backend.PollEvent()
		if ev.Type != backend.EventKey {
			continue
		}

		switch ev.Key {
		case backend.KeyEnter:
			if len(buf) > 0 {
				e.message.Clear()
				if observe != nil {
					observe(string(buf), ev)
				}
				return string(buf), true
			}
		case backend.KeyEscape:
			e.message.Clear()
			if observe != nil {
				observe(string(buf), ev)
			}
			return "", false
		case backend.KeyBackspace, backend.KeyCtrlH, backend.KeyDelete:
			if len(buf) > 0 {
				buf = buf[:len(buf)-1]
			}
			if observe != nil {
				observe(string(buf), ev)
			}
		case backend.KeyRune:
			if ev.Rune >= 32 && ev.Rune < 127 {
				buf = append(buf, byte(ev.Rune))
			}
			if observe != nil {
				observe(string(buf), ev)
			}
		default:
			if observe != nil {
				observe(string(buf), ev)
			}
		}
	}
}
