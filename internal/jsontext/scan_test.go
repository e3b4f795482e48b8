package jsontext

import "testing"

func TestStateStep(t *testing.T) {
	tests := []struct {
		name  string
		input string
		// want holds the expected structural flag for each byte of input.
		want []bool
	}{
		{
			name:  "plain structural characters",
			input: `{}`,
			want:  []bool{true, true},
		},
		{
			name:  "quotes toggle string state",
			input: `"a"`,
			want:  []bool{false, false, false},
		},
		{
			name:  "brace inside string is not structural",
			input: `"{"`,
			want:  []bool{false, false, false},
		},
		{
			name:  "escaped quote stays inside string",
			input: `"a\"b"c`,
			want:  []bool{false, false, false, false, false, false, true},
		},
		{
			name:  "escaped backslash ends the escape",
			input: `"\\"x`,
			want:  []bool{false, false, false, false, true},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var st State
			for i := 0; i < len(tt.input); i++ {
				got := st.Step(tt.input[i])
				if got != tt.want[i] {
					t.Errorf("Step(%q) at %d = %v, want %v", tt.input[i], i, got, tt.want[i])
				}
			}
		})
	}
}

func TestFirstDelimiter(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  int
	}{
		{
			name:  "object at start",
			input: `{"a":1}`,
			want:  0,
		},
		{
			name:  "array after prose",
			input: `Sure, here you go: [1,2]`,
			want:  19,
		},
		{
			name:  "opener inside string is skipped",
			input: `"not { this" {"a":1}`,
			want:  13,
		},
		{
			name:  "no delimiter",
			input: `plain text`,
			want:  -1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FirstDelimiter(tt.input); got != tt.want {
				t.Errorf("FirstDelimiter() = %d, want %d", got, tt.want)
			}
		})
	}
}
