package jsontext

import "strings"

// SalvageArray rebuilds a well-formed array from a broken one by collecting
// the object elements at the top level of the array that closed completely.
// A trailing element cut off by truncation, and any noise between elements,
// is simply left out. It reports false when s contains no array opener or
// no complete element survives.
func SalvageArray(s string) (string, bool) {
	var st State
	start := -1
	for i := 0; i < len(s); i++ {
		c := s[i]
		if st.Step(c) && c == '[' {
			start = i
			break
		}
	}
	if start == -1 {
		return "", false
	}

	var elems []string
	depth := 1
	objStart := -1
scan:
	for i := start + 1; i < len(s); i++ {
		c := s[i]
		if !st.Step(c) {
			continue
		}
		switch c {
		case '{', '[':
			if depth == 1 && c == '{' && objStart == -1 {
				objStart = i
			}
			depth++
		case '}', ']':
			depth--
			if depth == 1 && objStart != -1 {
				elems = append(elems, s[objStart:i+1])
				objStart = -1
			}
			if depth == 0 {
				// The array itself closed.
				break scan
			}
		}
	}
	if len(elems) == 0 {
		return "", false
	}
	return "[" + strings.Join(elems, ",") + "]", true
}
