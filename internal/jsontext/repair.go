package jsontext

import (
	"encoding/json"
	"strings"
)

// RepairTruncated completes a JSON container that was cut off mid-stream.
// It keeps every complete unit at the top level of the outermost container,
// discards the incomplete trailing unit rather than inventing content for
// it, and then closes the still-open frames in last-opened-first-closed
// order. The one exception is a string value of the outermost object that
// was truncated mid-way: its quote is closed so the partial text survives.
//
// Input that is already balanced, or that contains no container at all, is
// returned unchanged apart from trailing whitespace.
func RepairTruncated(s string) string {
	trimmed := strings.TrimRight(s, " \t\n\r")
	openIdx := FirstDelimiter(trimmed)
	if openIdx == -1 {
		return trimmed
	}

	var st State
	var stack []byte
	lastComma, lastColon := -1, -1
	for i := openIdx; i < len(trimmed); i++ {
		c := trimmed[i]
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
		case ',':
			if len(stack) == 1 {
				lastComma = i
			}
		case ':':
			if len(stack) == 1 {
				lastColon = i
			}
		}
	}
	if len(stack) == 0 && !st.InString() {
		return trimmed
	}

	mark := openIdx
	if lastComma > mark {
		mark = lastComma
	}
	if lastColon > mark {
		mark = lastColon
	}
	tail := strings.TrimSpace(trimmed[mark+1:])

	var base string
	switch {
	case tail != "" && json.Valid([]byte(tail)):
		// The trailing unit is complete, only the closers were lost.
		base = trimmed
	case st.InString() && lastColon > lastComma:
		// Mid-string truncation of a value in the outermost object: keep
		// the partial text and close its quote.
		base = trimmed + `"`
	case lastComma > -1:
		base = trimmed[:lastComma]
	default:
		base = trimmed[:openIdx+1]
	}

	return base + string(openClosers(base))
}
