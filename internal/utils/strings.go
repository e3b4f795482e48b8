package utils

import (
	"encoding/json"
	"fmt"
)

// DefaultMaxStringLength caps raw payload excerpts embedded in log output.
const DefaultMaxStringLength = 500

// JSONToString serializes v to JSON and returns it as a string. Passing
// indent=true pretty-prints with two-space indentation. A marshalling
// failure yields a JSON-formatted error string instead of panicking, so the
// result is always safe to embed in log output.
func JSONToString(v any, indent ...bool) string {
	var encoded []byte
	var err error
	if len(indent) > 0 && indent[0] {
		encoded, err = json.MarshalIndent(v, "", "  ")
	} else {
		encoded, err = json.Marshal(v)
	}
	if err != nil {
		return fmt.Sprintf(`{"error": %q}`, "failed to marshal to JSON: "+err.Error())
	}
	return string(encoded)
}

// TruncateString shortens s to at most maxLen bytes, appending a marker
// with the original length so readers know data was omitted. A maxLen of
// zero or less falls back to [DefaultMaxStringLength].
func TruncateString(s string, maxLen int) string {
	if maxLen <= 0 {
		maxLen = DefaultMaxStringLength
	}
	if len(s) <= maxLen {
		return s
	}
	return fmt.Sprintf("%s... (%d chars total)", s[:maxLen], len(s))
}

// TruncateStringDefault truncates s to [DefaultMaxStringLength].
func TruncateStringDefault(s string) string {
	return TruncateString(s, DefaultMaxStringLength)
}
