package highlight

import (
	"path/filepath"
	"strings"
)

// Flags selects which highlight categories a profile enables.
type Flags uint8

const (
	// FlagNumbers enables numeric literal highlighting.
	FlagNumbers Flags = 1 << iota
	// FlagStrings enables string literal highlighting.
	FlagStrings
	// FlagSpecials enables special-token (e.g. preprocessor) highlighting.
	FlagSpecials
)

// Has returns true if the flag set contains the given flag.
func (f Flags) Has(flag Flags) bool {
	return f&flag != 0
}

// Profile is the static rule set for one file type: comment delimiters,
// keyword tiers, special tokens, and category flags. A profile is selected
// once per opened file and is immutable thereafter.
type Profile struct {
	// Name is the file type shown in the status bar (e.g. "c").
	Name string

	// FileMatch holds filename patterns. A pattern starting with '.' matches
	// the file extension; any other pattern matches as a substring.
	FileMatch []string

	// Keywords is the first-tier keyword list.
	Keywords []string

	// Types is the second-tier keyword list (type names and modifiers).
	Types []string

	// Specials lists special tokens recognized after SpecialStart
	// (e.g. preprocessor directive names after '#').
	Specials []string

	// SpecialStart is the introducer character for special runs.
	SpecialStart byte

	// LineComment is the single-line comment marker ("" disables).
	LineComment string

	// BlockCommentStart and BlockCommentEnd delimit multi-line comments
	// ("" disables).
	BlockCommentStart string
	BlockCommentEnd   string

	// Flags selects the active highlight categories.
	Flags Flags
}

// MatchesFile reports whether the profile applies to the given filename.
func (p *Profile) MatchesFile(filename string) bool {
	if filename == "" {
		return false
	}
	ext := filepath.Ext(filename)
	for _, pattern := range p.FileMatch {
		if strings.HasPrefix(pattern, ".") {
			if ext == pattern {
				return true
			}
		} else if strings.Contains(filepath.Base(filename), pattern) {
			return true
		}
	}
	return false
}

// separators is the fixed punctuation set that terminates tokens.
const separators = ",.()+-/*!?=~%<>[]{}:;&|^\"'\\"

// IsSeparator reports whether c is a token boundary: whitespace, NUL,
// or a punctuation character.
func IsSeparator(c byte) bool {
	switch c {
	case 0, ' ', '\t', '\n', '\v', '\f', '\r':
		return true
	}
	return strings.IndexByte(separators, c) >= 0
}

// CProfile returns the built-in profile for C and C++ sources.
func CProfile() *Profile {
	return &Profile{
		Name:      "c",
		FileMatch: []string{".c", ".h", ".cpp", ".hpp", ".cc"},
		Keywords: []string{
			"switch", "if", "do", "while", "for", "break", "continue", "return",
			"else", "goto", "struct", "union", "typedef", "enum", "class",
			"case", "default", "sizeof",
		},
		Types: []string{
			"int", "long", "double", "float", "short", "char", "unsigned",
			"signed", "const", "static", "void", "auto", "bool", "register",
			"extern", "volatile", "size_t", "ptrdiff_t",
		},
		Specials: []string{
			"include", "define", "undef", "if", "ifdef", "ifndef",
			"else", "elif", "endif", "pragma",
		},
		SpecialStart:      '#',
		LineComment:       "//",
		BlockCommentStart: "/*",
		BlockCommentEnd:   "*/",
		Flags:             FlagNumbers | FlagStrings | FlagSpecials,
	}
}
