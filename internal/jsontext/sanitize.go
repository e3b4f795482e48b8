package jsontext

import (
	"fmt"
	"strings"
)

// Sanitize makes two mechanical fixes that encoding/json has no tolerance
// for: raw control characters inside string literals are rewritten as their
// escape sequences, and trailing commas before a closing brace or bracket
// are removed. Stray control characters between tokens, which whitespace
// aside can never be part of valid JSON, are removed rather than kept.
// Text that is already valid passes through unchanged.
func Sanitize(s string) string {
	return stripTrailingCommas(escapeControls(s))
}

// escapeControls replaces raw control characters that appear inside string
// literals with their JSON escape sequences. Common whitespace controls get
// their short form, anything else becomes a \u00XX escape. Control
// characters outside string literals other than JSON whitespace are dropped.
func escapeControls(s string) string {
	var b strings.Builder
	b.Grow(len(s) + 16)
	var st State
	for i := 0; i < len(s); i++ {
		c := s[i]
		inStr := st.InString()
		st.Step(c)
		if c >= 0x20 {
			b.WriteByte(c)
			continue
		}
		if !inStr {
			if c == '\t' || c == '\n' || c == '\r' {
				b.WriteByte(c)
			}
			continue
		}
		switch c {
		case '\n':
			b.WriteString(`\n`)
		case '\r':
			b.WriteString(`\r`)
		case '\t':
			b.WriteString(`\t`)
		case '\b':
			b.WriteString(`\b`)
		case '\f':
			b.WriteString(`\f`)
		default:
			fmt.Fprintf(&b, `\u%04x`, c)
		}
	}
	return b.String()
}

// stripTrailingCommas removes structural commas that directly precede a
// closing brace or bracket, allowing for whitespace in between.
func stripTrailingCommas(s string) string {
	buf := make([]byte, 0, len(s))
	var st State
	for i := 0; i < len(s); i++ {
		c := s[i]
		structural := st.Step(c)
		if structural && (c == '}' || c == ']') {
			j := len(buf)
			for j > 0 && isJSONSpace(buf[j-1]) {
				j--
			}
			if j > 0 && buf[j-1] == ',' {
				buf = append(buf[:j-1], buf[j:]...)
			}
		}
		buf = append(buf, c)
	}
	return string(buf)
}

func isJSONSpace(c byte) bool {
	return c == ' ' || c == '\t' || c == '\n' || c == '\r'
}
