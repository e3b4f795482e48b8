package recovery

import (
	"strings"

	"github.com/kaptinlin/jsonrepair"

	"github.com/draftloop/structout/internal/jsontext"
)

// strategy is one transform-then-parse attempt. A strategy with ok=false is
// skipped entirely and does not show up in the failure diagnostics.
type strategy struct {
	name string
	text string
	ok   bool
}

// buildStrategies assembles the ordered attempt list for one input, from
// least invasive to most aggressive.
func buildStrategies(raw string) []strategy {
	stripped := jsontext.StripFences(raw)

	span, balanced := jsontext.ExtractBalanced(stripped)
	if !balanced {
		span = jsontext.Tail(stripped)
	}
	sanitized := jsontext.Sanitize(span)
	isArray := strings.HasPrefix(span, "[")

	salvaged, salvageOK := "", false
	if isArray {
		salvaged, salvageOK = jsontext.SalvageArray(sanitized)
	}
	// The salvager falls back to the unsalvaged text so that the combined
	// strategy can still close open frames over it.
	salvageBase := sanitized
	if salvageOK {
		salvageBase = salvaged
	}

	strategies := []strategy{
		{name: "direct", text: stripped, ok: stripped != ""},
		{name: "balanced_span", text: span, ok: span != ""},
		{name: "sanitize", text: sanitized, ok: span != ""},
		{name: "close_frames", text: jsontext.RepairTruncated(sanitized), ok: span != ""},
		{name: "salvage", text: salvaged, ok: salvageOK},
		{name: "salvage_close_frames", text: jsontext.RepairTruncated(salvageBase), ok: isArray},
	}

	if repaired, err := jsonrepair.JSONRepair(stripped); err == nil {
		// Accept the external repairer's output only when it still looks
		// like a container; a bare string means the input was prose.
		first := strings.TrimSpace(repaired)
		if strings.HasPrefix(first, "{") || strings.HasPrefix(first, "[") {
			strategies = append(strategies, strategy{name: "jsonrepair", text: repaired, ok: true})
		}
	}

	return strategies
}
