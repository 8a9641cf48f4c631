package app

import "errors"

// Application errors.
var (
	// ErrQuit signals that the editor should exit normally.
	ErrQuit = errors.New("quit requested")

	// ErrNoDocument indicates an operation needs an open document.
	ErrNoDocument = errors.New("no document open")
)
