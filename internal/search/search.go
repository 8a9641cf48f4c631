// Package search implements incremental, wrapping substring search over a
// document. A session tracks the last hit and the travel direction so
// repeated next/previous requests walk the matches, and it overlays the
// current hit with the match highlight class, restoring the row's original
// classes before every update.
package search

import (
	"strings"

	"github.com/dshills/shim/internal/engine/buffer"
	"github.com/dshills/shim/internal/engine/highlight"
)

// Intent describes what the caller wants from an update.
type Intent int

const (
	// IntentEdit restarts the search: the query text changed.
	IntentEdit Intent = iota
	// IntentNext advances to the following match.
	IntentNext
	// IntentPrevious moves back to the preceding match.
	IntentPrevious
	// IntentConfirm ends the session, keeping the cursor at the hit.
	IntentConfirm
	// IntentCancel ends the session; the caller restores the cursor.
	IntentCancel
)

// Result reports the location of a hit in both coordinate systems.
type Result struct {
	Found     bool
	Row       int
	RawCol    int
	RenderCol int
}

// Session is one interactive search over a document. Not safe for
// concurrent use.
type Session struct {
	doc       *buffer.Document
	lastMatch int
	direction int

	savedRow      int
	savedHL       []highlight.Class
	savedRevision uint64
}

// NewSession starts a search session over the document.
func NewSession(doc *buffer.Document) *Session {
	return &Session{doc: doc, lastMatch: -1, direction: 1, savedRow: -1}
}

// Update processes one search step. It restores any previous match
// overlay, then either ends the session (Confirm/Cancel) or looks for the
// next hit and overlays it. done reports that the session is over.
func (s *Session) Update(query string, intent Intent) (result Result, done bool) {
	s.restoreOverlay()

	switch intent {
	case IntentConfirm, IntentCancel:
		s.lastMatch = -1
		s.direction = 1
		return Result{}, true
	case IntentNext:
		s.direction = 1
	case IntentPrevious:
		s.direction = -1
	default:
		s.lastMatch = -1
		s.direction = 1
	}

	if query == "" {
		return Result{}, false
	}
	if s.lastMatch == -1 {
		s.direction = 1
	}

	current := s.lastMatch
	for i := 0; i < s.doc.NumRows(); i++ {
		current += s.direction
		if current < 0 {
			current = s.doc.NumRows() - 1
		} else if current >= s.doc.NumRows() {
			current = 0
		}

		row := s.doc.Row(current)
		at := strings.Index(row.Render, query)
		if at < 0 {
			continue
		}

		s.lastMatch = current
		s.applyOverlay(current, at, len(query))
		return Result{
			Found:     true,
			Row:       current,
			RawCol:    s.doc.TabExpander().RenderToRaw(row.Raw, at),
			RenderCol: at,
		}, false
	}
	return Result{}, false
}

// applyOverlay paints the hit with the match class, keeping a copy of the
// original classes for the next restore.
func (s *Session) applyOverlay(rowIdx, at, length int) {
	row := s.doc.Row(rowIdx)

	s.savedRow = rowIdx
	s.savedHL = make([]highlight.Class, len(row.HL))
	copy(s.savedHL, row.HL)
	s.savedRevision = s.doc.Revision()

	for i := at; i < at+length && i < len(row.HL); i++ {
		row.HL[i] = highlight.Match
	}
}

// restoreOverlay puts the saved classes back. A stale save (the document
// mutated since, which re-derives highlights anyway) is discarded.
func (s *Session) restoreOverlay() {
	if s.savedRow < 0 {
		return
	}
	row := s.doc.Row(s.savedRow)
	if row != nil && s.doc.Revision() == s.savedRevision && len(row.HL) == len(s.savedHL) {
		copy(row.HL, s.savedHL)
	}
	s.savedRow = -1
	s.savedHL = nil
}
