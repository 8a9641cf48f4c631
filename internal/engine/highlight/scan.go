package highlight

// Scan tokenizes one row's render string into a class per byte.
// startsInComment is the previous row's exit state; the returned
// endsInComment must be propagated to the next row by the caller.
//
// A nil profile disables highlighting: every byte is Normal.
func Scan(render []byte, startsInComment bool, profile *Profile) (classes []Class, endsInComment bool) {
	classes = make([]Class, len(render))
	if profile == nil {
		return classes, false
	}

	s := scanner{
		render:    render,
		classes:   classes,
		profile:   profile,
		prevSep:   true,
		inComment: startsInComment,
	}
	s.run()
	return classes, s.inComment
}

// scanner walks a single render string left to right.
type scanner struct {
	render  []byte
	classes []Class
	profile *Profile

	i         int
	prevSep   bool
	inString  byte // the open quote character, or 0
	inComment bool
	inSpecial bool
}

func (s *scanner) run() {
	for s.i < len(s.render) {
		c := s.render[s.i]

		if s.lineComment(c) {
			return
		}
		if s.blockComment() {
			continue
		}
		if s.profile.Flags.Has(FlagSpecials) && s.special(c) {
			continue
		}
		if s.profile.Flags.Has(FlagStrings) && s.stringLiteral(c) {
			continue
		}
		if s.profile.Flags.Has(FlagNumbers) && s.number(c) {
			continue
		}
		if s.prevSep && s.keyword() {
			continue
		}

		s.prevSep = IsSeparator(c)
		s.i++
	}
}

// lineComment classifies the rest of the row when a single-line comment
// starts here. Returns true to stop the scan.
func (s *scanner) lineComment(c byte) bool {
	marker := s.profile.LineComment
	if marker == "" || s.inString != 0 || s.inComment {
		return false
	}
	if !s.hasPrefix(marker) {
		return false
	}
	s.fill(s.i, len(s.render), Comment)
	return true
}

// blockComment handles both being inside a block comment and entering one.
func (s *scanner) blockComment() bool {
	start, end := s.profile.BlockCommentStart, s.profile.BlockCommentEnd
	if start == "" || end == "" || s.inString != 0 {
		return false
	}

	if s.inComment {
		if s.hasPrefix(end) {
			s.fill(s.i, s.i+len(end), BlockComment)
			s.i += len(end)
			s.inComment = false
			s.prevSep = true
		} else {
			s.classes[s.i] = BlockComment
			s.i++
		}
		return true
	}

	if s.hasPrefix(start) {
		s.fill(s.i, s.i+len(start), BlockComment)
		s.i += len(start)
		s.inComment = true
		return true
	}
	return false
}

// special classifies preprocessor-style runs. Once a special run has been
// recognized, every following non-whitespace run on the row stays Special
// (the whole directive, arguments included).
func (s *scanner) special(c byte) bool {
	if s.inSpecial {
		if isSpace(c) {
			return false
		}
		for s.i < len(s.render) && !isSpace(s.render[s.i]) {
			s.classes[s.i] = Special
			s.i++
		}
		s.prevSep = true
		return true
	}

	if s.inString != 0 || c != s.profile.SpecialStart || s.profile.SpecialStart == 0 {
		return false
	}

	// Look ahead: optional whitespace, then a recognized special token
	// terminated by a separator.
	j := s.i + 1
	for j < len(s.render) && isSpace(s.render[j]) {
		j++
	}
	for _, token := range s.profile.Specials {
		if !matchToken(s.render, j, token) {
			continue
		}
		s.classes[s.i] = Special
		s.fill(j, j+len(token), Special)
		s.i = j + len(token)
		s.inSpecial = true
		s.prevSep = false
		return true
	}
	return false
}

// stringLiteral handles quote-delimited strings with backslash escapes.
func (s *scanner) stringLiteral(c byte) bool {
	if s.inString != 0 {
		s.classes[s.i] = String
		s.i++
		if c == '\\' && s.i < len(s.render) {
			// The escaped character never closes the string.
			s.classes[s.i] = String
			s.i++
			return true
		}
		if c == s.inString {
			s.inString = 0
		}
		s.prevSep = true
		return true
	}

	if c == '"' || c == '\'' {
		s.inString = c
		s.classes[s.i] = String
		s.i++
		return true
	}
	return false
}

// number classifies a numeric run: decimal with at most one decimal point,
// leading-zero octal, or 0x/0X hexadecimal. A malformed tail (second
// decimal point, invalid digit for the base) is classified Error from the
// offending byte to the end of the run.
func (s *scanner) number(c byte) bool {
	if !s.prevSep {
		return false
	}
	if !isDigit(c) && !(c == '.' && s.i+1 < len(s.render) && isDigit(s.render[s.i+1])) {
		return false
	}

	start := s.i
	const (
		baseDecimal = iota
		baseOctal
		baseHex
	)
	base := baseDecimal
	if c == '0' && s.i+1 < len(s.render) {
		switch next := s.render[s.i+1]; {
		case next == 'x' || next == 'X':
			base = baseHex
			s.i += 2
		case isDigit(next):
			base = baseOctal
			s.i++
		}
	}

	dots := 0
	errAt := -1
	for s.i < len(s.render) {
		c = s.render[s.i]
		// A '.' continues the run even though it is in the separator set.
		if IsSeparator(c) && c != '.' {
			break
		}

		valid := false
		switch base {
		case baseHex:
			valid = isHexDigit(c)
		case baseOctal:
			valid = c >= '0' && c <= '7'
		default:
			if c == '.' {
				dots++
				valid = dots == 1
			} else {
				valid = isDigit(c)
			}
		}

		if !valid && errAt < 0 {
			errAt = s.i
		}
		s.i++
	}

	if errAt < 0 {
		s.fill(start, s.i, Number)
	} else {
		s.fill(start, errAt, Number)
		s.fill(errAt, s.i, Error)
	}
	s.prevSep = false
	return true
}

// keyword matches the two keyword tiers at a separator boundary.
func (s *scanner) keyword() bool {
	for _, kw := range s.profile.Keywords {
		if matchToken(s.render, s.i, kw) {
			s.fill(s.i, s.i+len(kw), Keyword1)
			s.i += len(kw)
			s.prevSep = false
			return true
		}
	}
	for _, kw := range s.profile.Types {
		if matchToken(s.render, s.i, kw) {
			s.fill(s.i, s.i+len(kw), Keyword2)
			s.i += len(kw)
			s.prevSep = false
			return true
		}
	}
	return false
}

func (s *scanner) hasPrefix(prefix string) bool {
	if s.i+len(prefix) > len(s.render) {
		return false
	}
	return string(s.render[s.i:s.i+len(prefix)]) == prefix
}

func (s *scanner) fill(from, to int, class Class) {
	for i := from; i < to && i < len(s.classes); i++ {
		s.classes[i] = class
	}
}

// matchToken reports whether token occurs at position i and is followed by
// a separator (end of row counts as a separator).
func matchToken(render []byte, i int, token string) bool {
	if i+len(token) > len(render) {
		return false
	}
	if string(render[i:i+len(token)]) != token {
		return false
	}
	end := i + len(token)
	return end == len(render) || IsSeparator(render[end])
}

func isSpace(c byte) bool {
	switch c {
	case ' ', '\t', '\n', '\v', '\f', '\r':
		return true
	}
	return false
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

func isHexDigit(c byte) bool {
	return isDigit(c) || (c >= 'a' && c <= 'f') || (c >= 'A' && c <= 'F')
}
