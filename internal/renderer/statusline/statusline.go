// Package statusline formats the two reserved lines at the bottom of the
// screen: the inverted status bar and the transient message line.
package statusline

import (
	"fmt"
	"strings"
	"time"
)

// MessageTTL is how long a status message stays visible.
const MessageTTL = 5 * time.Second

// Status carries the facts shown in the status bar.
type Status struct {
	Filename  string
	FileType  string
	NumRows   int
	CursorRow int // zero-based
	Dirty     bool
}

// FormatBar lays the status bar out to exactly width columns: file name,
// line count and modified marker on the left, file type and cursor
// position on the right.
func FormatBar(s Status, width int) string {
	name := s.Filename
	if name == "" {
		name = "[No Name]"
	}
	if len(name) > 20 {
		name = name[:20]
	}

	modified := ""
	if s.Dirty {
		modified = " (modified)"
	}
	left := fmt.Sprintf("%s - %d lines%s", name, s.NumRows, modified)

	fileType := s.FileType
	if fileType == "" {
		fileType = "no ft"
	}
	right := fmt.Sprintf("%s | %d/%d", fileType, s.CursorRow+1, s.NumRows)

	if len(left) > width {
		left = left[:width]
	}
	gap := width - len(left) - len(right)
	if gap < 0 {
		return left + strings.Repeat(" ", width-len(left))
	}
	return left + strings.Repeat(" ", gap) + right
}

// Message is the transient one-line notice below the status bar. A set
// message expires after MessageTTL.
type Message struct {
	text  string
	setAt time.Time
}

// Set replaces the message and restarts its expiry clock.
func (m *Message) Set(now time.Time, format string, args ...any) {
	m.text = fmt.Sprintf(format, args...)
	m.setAt = now
}

// Clear removes the message immediately.
func (m *Message) Clear() {
	m.text = ""
}

// Text returns the message, or "" once it has expired.
func (m *Message) Text(now time.Time) string {
	if m.text == "" || now.Sub(m.setAt) > MessageTTL {
		return ""
	}
	return m.text
}
