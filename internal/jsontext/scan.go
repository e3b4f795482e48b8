package jsontext

// State tracks whether a character-by-character walk over JSON text is
// currently inside a string literal or immediately after a backslash.
// Every routine in this package that needs to distinguish structural
// characters from string content feeds bytes through the same State logic,
// so a brace inside a quoted value is never mistaken for a real delimiter.
//
// The zero value is ready to use.
type State struct {
	inString   bool
	escapeNext bool
}

// InString reports whether the scanner is currently inside a string literal.
func (s *State) InString() bool {
	return s.inString
}

// Step consumes one byte and reports whether it is structural: outside any
// string literal and not part of an escape sequence. Quotes and backslashes
// themselves are never structural, they only move the scanner between states.
func (s *State) Step(c byte) bool {
	if s.escapeNext {
		s.escapeNext = false
		return false
	}
	if c == '\\' && s.inString {
		s.escapeNext = true
		return false
	}
	if c == '"' {
		s.inString = !s.inString
		return false
	}
	return !s.inString
}

// FirstDelimiter returns the index of the first structural '{' or '[' in s,
// or -1 when the text contains no container opener outside string literals.
func FirstDelimiter(s string) int {
	var st State
	for i := 0; i < len(s); i++ {
		c := s[i]
		if st.Step(c) && (c == '{' || c == '[') {
			return i
		}
	}
	return -1
}

// openClosers rescans s and returns the closing characters for every
// container still open at the end, innermost first, ready to be appended.
func openClosers(s string) []byte {
	var st State
	var stack []byte
	for i := 0; i < len(s); i++ {
		c := s[i]
		if !st.Step(c) {
			continue
		}
		switch c {
		case '{':
			stack = append(stack, '}')
		case '[':
			stack = append(stack, ']')
		case '}', ']':
			if len(stack) > 0 && stack[len(stack)-1] == c {
				stack = stack[:len(stack)-1]
			}
		}
	}
	out := make([]byte, len(stack))
	for i := range stack {
		out[i] = stack[len(stack)-1-i]
	}
	return out
}
