package jsontext

import "strings"

// StripFences removes a markdown code fence wrapped around s, if any.
// An optional language tag on the opening fence line (```json, ```JSON, a
// bare ```) is discarded, and a missing closing fence is tolerated because
// truncated responses frequently lose it. Backticks are only treated as a
// fence when they start a line before the payload begins; backticks
// mentioned inside the payload are content, not a wrapper, so text without
// a real fence is returned trimmed but otherwise untouched.
func StripFences(s string) string {
	trimmed := strings.TrimSpace(s)
	start := openingFence(trimmed)
	if start == -1 {
		return trimmed
	}
	rest := trimmed[start+3:]
	if nl := strings.IndexByte(rest, '\n'); nl != -1 {
		if isFenceTag(strings.TrimSpace(rest[:nl])) {
			rest = rest[nl+1:]
		}
	} else if isFenceTag(strings.TrimSpace(rest)) {
		// Opening fence with nothing after it.
		return ""
	}
	rest = trimClosingFence(rest)

	out := strings.TrimSpace(rest)
	if FirstDelimiter(out) == -1 && FirstDelimiter(trimmed) != -1 {
		// Stripping lost the only container, so the backticks were part
		// of the payload after all.
		return trimmed
	}
	return out
}

// openingFence returns the index of an opening fence in s, or -1. A fence
// only counts when it starts a line and the payload has not already begun,
// i.e. no structural delimiter precedes it.
func openingFence(s string) int {
	idx := strings.Index(s, "```")
	if idx == -1 {
		return -1
	}
	if idx > 0 && s[idx-1] != '\n' {
		return -1
	}
	if d := FirstDelimiter(s); d != -1 && d < idx {
		return -1
	}
	return idx
}

// trimClosingFence cuts s at a closing fence on its own line, or at a
// trailing fence when the whole block sits on one line.
func trimClosingFence(s string) string {
	if end := strings.Index(s, "\n```"); end != -1 {
		return s[:end]
	}
	t := strings.TrimSpace(s)
	if strings.HasSuffix(t, "```") {
		return t[:len(t)-3]
	}
	return s
}

// isFenceTag reports whether s looks like a fence language identifier
// rather than actual payload that happened to share the opening line.
func isFenceTag(s string) bool {
	if len(s) > 16 {
		return false
	}
	for i := 0; i < len(s); i++ {
		c := s[i]
		if !('a' <= c && c <= 'z' || 'A' <= c && c <= 'Z' || '0' <= c && c <= '9') {
			return false
		}
	}
	return true
}
