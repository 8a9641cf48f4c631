// Package highlight provides per-row syntax highlighting for the editor.
//
// A row's render string is tokenized left to right into highlight classes,
// one class per render byte. Multi-line constructs (block comments) carry
// state across rows: the scanner reports whether a row ends inside an open
// block comment, and the document cascades re-scans into following rows
// when that state changes.
package highlight

// Class is a categorical style tag attached to each rendered byte.
// It is purely a rendering annotation and is never persisted.
type Class uint8

const (
	Normal Class = iota
	Comment
	BlockComment
	Keyword1
	Keyword2
	String
	Number
	Match
	Special
	Error
)

// String returns the class name for debugging and test output.
func (c Class) String() string {
	switch c {
	case Normal:
		return "normal"
	case Comment:
		return "comment"
	case BlockComment:
		return "block-comment"
	case Keyword1:
		return "keyword1"
	case Keyword2:
		return "keyword2"
	case String:
		return "string"
	case Number:
		return "number"
	case Match:
		return "match"
	case Special:
		return "special"
	case Error:
		return "error"
	default:
		return "unknown"
	}
}
