package normalize

import (
	"context"
	"strconv"
	"strings"

	"github.com/draftloop/structout/providers/observability"
)

// Kind declares how a field value is coerced.
type Kind int

const (
	// String coerces the value to a single string.
	String Kind = iota
	// StringArray coerces the value to a list of strings, promoting a bare
	// string to a one-element list.
	StringArray
	// Number coerces the value to a float64, parsing numeric strings.
	Number
	// Enum coerces the value to a string and clamps it to the allowed set,
	// matching case-insensitively.
	Enum
)

// Field declares one canonical field of a record schema.
type Field struct {
	// Name is the canonical field name in the normalized record.
	Name string
	// Aliases are alternative input names accepted for this field,
	// checked in order after Name.
	Aliases []string
	// Kind selects the coercion applied to the raw value.
	Kind Kind
	// Default is used when the value is absent or cannot be coerced.
	Default any
	// Enum lists the allowed values in their canonical spelling.
	// Only consulted when Kind is Enum.
	Enum []string
}

// Spec is the declarative schema of one record kind.
type Spec struct {
	// Kind names the record type for diagnostics, e.g. "feature".
	Kind string
	// Fields holds the full set of canonical fields. Input fields not
	// declared here are ignored.
	Fields []Field
}

// Normalizer applies a [Spec] to generic records.
type Normalizer struct {
	spec     Spec
	observer observability.Provider
	htmlToMD bool
}

// New creates a Normalizer for the given spec.
func New(spec Spec, opts ...Option) *Normalizer {
	n := &Normalizer{
		spec:     spec,
		observer: observability.Nop(),
	}
	for _, opt := range opts {
		opt(n)
	}
	return n
}

// Apply maps one generic record onto the spec's schema. The result always
// contains every declared field; it never fails.
func (n *Normalizer) Apply(ctx context.Context, record map[string]any) map[string]any {
	out := make(map[string]any, len(n.spec.Fields))
	for _, field := range n.spec.Fields {
		raw, found := lookup(record, field)
		if !found {
			out[field.Name] = field.Default
			continue
		}
		out[field.Name] = n.coerce(field, raw)
	}

	n.observer.Debug(ctx, "Record normalized",
		observability.String("event", observability.EventNormalizeApplied),
		observability.String(observability.AttrRecordKind, n.spec.Kind),
	)
	return out
}

// ApplyAll normalizes a batch of records, preserving order.
func (n *Normalizer) ApplyAll(ctx context.Context, records []map[string]any) []map[string]any {
	out := make([]map[string]any, 0, len(records))
	for _, record := range records {
		out = append(out, n.Apply(ctx, record))
	}
	return out
}

// lookup finds the raw value under the canonical name first, then under
// each alias in order.
func lookup(record map[string]any, field Field) (any, bool) {
	if v, ok := record[field.Name]; ok {
		return v, true
	}
	for _, alias := range field.Aliases {
		if v, ok := record[alias]; ok {
			return v, true
		}
	}
	return nil, false
}

func (n *Normalizer) coerce(field Field, raw any) any {
	switch field.Kind {
	case String:
		if s, ok := n.toString(raw); ok {
			return s
		}
	case StringArray:
		if arr, ok := n.toStringArray(raw); ok {
			return arr
		}
	case Number:
		if f, ok := toNumber(raw); ok {
			return f
		}
	case Enum:
		if s, ok := n.toString(raw); ok {
			for _, allowed := range field.Enum {
				if strings.EqualFold(s, allowed) {
					return allowed
				}
			}
		}
	}
	return field.Default
}

func (n *Normalizer) toString(raw any) (string, bool) {
	switch v := raw.(type) {
	case string:
		if n.htmlToMD {
			return htmlToMarkdown(v), true
		}
		return v, true
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64), true
	case bool:
		return strconv.FormatBool(v), true
	default:
		return "", false
	}
}

func (n *Normalizer) toStringArray(raw any) ([]string, bool) {
	switch v := raw.(type) {
	case []any:
		out := make([]string, 0, len(v))
		for _, elem := range v {
			if s, ok := n.toString(elem); ok {
				out = append(out, s)
			}
		}
		return out, true
	case string:
		if v == "" {
			return []string{}, true
		}
		s, _ := n.toString(v)
		return []string{s}, true
	default:
		return nil, false
	}
}

func toNumber(raw any) (float64, bool) {
	switch v := raw.(type) {
	case float64:
		return v, true
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
		if err != nil {
			return 0, false
		}
		return f, true
	case bool:
		if v {
			return 1, true
		}
		return 0, true
	default:
		return 0, false
	}
}
