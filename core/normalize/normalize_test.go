package normalize

import (
	"context"
	"reflect"
	"testing"
)

var featureSpec = Spec{
	Kind: "feature",
	Fields: []Field{
		{Name: "title", Kind: String, Default: "Untitled Feature"},
		{Name: "description", Kind: String, Default: ""},
		{Name: "priority", Kind: Enum, Default: "medium", Enum: []string{"low", "medium", "high"}},
		{Name: "estimatedEffort", Aliases: []string{"estimated_effort", "effort"}, Kind: Enum,
			Default: "medium", Enum: []string{"small", "medium", "large"}},
		{Name: "tags", Aliases: []string{"keywords"}, Kind: StringArray, Default: []string{}},
	},
}

func TestNormalizerApply(t *testing.T) {
	tests := []struct {
		name  string
		input map[string]any
		want  map[string]any
	}{
		{
			name: "complete record passes through",
			input: map[string]any{
				"title":           "Login",
				"description":     "Allow users to sign in",
				"priority":        "high",
				"estimatedEffort": "large",
				"tags":            []any{"auth", "ui"},
			},
			want: map[string]any{
				"title":           "Login",
				"description":     "Allow users to sign in",
				"priority":        "high",
				"estimatedEffort": "large",
				"tags":            []string{"auth", "ui"},
			},
		},
		{
			name:  "empty record gets every default",
			input: map[string]any{},
			want: map[string]any{
				"title":           "Untitled Feature",
				"description":     "",
				"priority":        "medium",
				"estimatedEffort": "medium",
				"tags":            []string{},
			},
		},
		{
			name: "enum clamped case insensitively",
			input: map[string]any{
				"title":    "A",
				"priority": "HIGH",
			},
			want: map[string]any{
				"title":           "A",
				"description":     "",
				"priority":        "high",
				"estimatedEffort": "medium",
				"tags":            []string{},
			},
		},
		{
			name: "unknown enum value falls back to default",
			input: map[string]any{
				"title":    "A",
				"priority": "urgent",
			},
			want: map[string]any{
				"title":           "A",
				"description":     "",
				"priority":        "medium",
				"estimatedEffort": "medium",
				"tags":            []string{},
			},
		},
		{
			name: "aliases resolved in order",
			input: map[string]any{
				"title":            "A",
				"estimated_effort": "small",
				"keywords":         []any{"x"},
			},
			want: map[string]any{
				"title":           "A",
				"description":     "",
				"priority":        "medium",
				"estimatedEffort": "small",
				"tags":            []string{"x"},
			},
		},
		{
			name: "bare string promoted to array",
			input: map[string]any{
				"title": "A",
				"tags":  "solo",
			},
			want: map[string]any{
				"title":           "A",
				"description":     "",
				"priority":        "medium",
				"estimatedEffort": "medium",
				"tags":            []string{"solo"},
			},
		},
		{
			name: "unrecognized fields ignored",
			input: map[string]any{
				"title":        "A",
				"unknownField": float64(123),
			},
			want: map[string]any{
				"title":           "A",
				"description":     "",
				"priority":        "medium",
				"estimatedEffort": "medium",
				"tags":            []string{},
			},
		},
		{
			name: "number coerced to string title",
			input: map[string]any{
				"title": float64(42),
			},
			want: map[string]any{
				"title":           "42",
				"description":     "",
				"priority":        "medium",
				"estimatedEffort": "medium",
				"tags":            []string{},
			},
		},
	}

	n := New(featureSpec)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := n.Apply(context.Background(), tt.input)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Apply() = %#v, want %#v", got, tt.want)
			}
		})
	}
}

func TestNormalizerNumberField(t *testing.T) {
	spec := Spec{
		Kind: "task",
		Fields: []Field{
			{Name: "estimatedHours", Aliases: []string{"hours"}, Kind: Number, Default: float64(0)},
		},
	}
	n := New(spec)

	tests := []struct {
		name  string
		input map[string]any
		want  float64
	}{
		{name: "number value", input: map[string]any{"estimatedHours": float64(4.5)}, want: 4.5},
		{name: "numeric string", input: map[string]any{"estimatedHours": "8"}, want: 8},
		{name: "alias", input: map[string]any{"hours": float64(2)}, want: 2},
		{name: "garbage falls back", input: map[string]any{"estimatedHours": "soon"}, want: 0},
		{name: "absent falls back", input: map[string]any{}, want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := n.Apply(context.Background(), tt.input)
			if got["estimatedHours"] != tt.want {
				t.Errorf("estimatedHours = %v, want %v", got["estimatedHours"], tt.want)
			}
		})
	}
}

func TestNormalizerApplyAll(t *testing.T) {
	n := New(featureSpec)
	got := n.ApplyAll(context.Background(), []map[string]any{
		{"title": "A"},
		{"title": "B"},
	})
	if len(got) != 2 {
		t.Fatalf("ApplyAll() = %d records, want 2", len(got))
	}
	if got[0]["title"] != "A" || got[1]["title"] != "B" {
		t.Errorf("ApplyAll() lost ordering: %v", got)
	}
}

func TestNormalizerHTMLToMarkdown(t *testing.T) {
	spec := Spec{
		Kind: "section",
		Fields: []Field{
			{Name: "description", Kind: String, Default: ""},
		},
	}
	n := New(spec, WithHTMLToMarkdown())

	got := n.Apply(context.Background(), map[string]any{
		"description": "<p>Use <strong>bold</strong> text</p>",
	})
	desc, _ := got["description"].(string)
	if desc == "" || desc == "<p>Use <strong>bold</strong> text</p>" {
		t.Errorf("expected markdown conversion, got %q", desc)
	}

	// Plain text must pass through untouched.
	got = n.Apply(context.Background(), map[string]any{"description": "5 < 10"})
	if got["description"] != "5 < 10" {
		t.Errorf("plain text changed: %q", got["description"])
	}
}
