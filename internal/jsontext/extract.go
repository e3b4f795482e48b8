package jsontext

// ExtractBalanced returns the first balanced JSON container found in s,
// scanning from the first structural '{' or '['. Braces and brackets inside
// string literals are ignored. It reports false when no container opens or
// the one that does never closes, which is the usual signature of a
// truncated response.
func ExtractBalanced(s string) (string, bool) {
	start := FirstDelimiter(s)
	if start == -1 {
		return "", false
	}
	var st State
	var stack []byte
	for i := start; i < len(s); i++ {
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
			if len(stack) == 0 || stack[len(stack)-1] != c {
				return "", false
			}
			stack = stack[:len(stack)-1]
			if len(stack) == 0 {
				return s[start : i+1], true
			}
		}
	}
	return "", false
}

// Tail returns s from the first structural container opener onward, or the
// empty string when none exists. It is the working span when balanced
// extraction fails: everything before the opener is prose, everything after
// may still be repairable.
func Tail(s string) string {
	start := FirstDelimiter(s)
	if start == -1 {
		return ""
	}
	return s[start:]
}
