package css

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "single declaration",
			input: "color: red",
			want:  "color: red;",
		},
		{
			name:  "order and duplicates",
			input: "color: red; font-family: monospace; color: blue;",
			want:  "color: red;font-family: monospace;color: blue;",
		},
		{
			name:  "multi-token value",
			input: "border: 1px solid #ccc",
			want:  "border: 1px solid #ccc;",
		},
		{
			name:  "function value",
			input: "width: calc(100% - 2em)",
			want:  "width: calc(100% - 2em);",
		},
		{
			name:  "custom property",
			input: "--brand: #0af",
			want:  "--brand: #0af;",
		},
		{
			name:  "comments and empty declarations",
			input: "/* theme */ color: red;; ;margin: 0",
			want:  "color: red;margin: 0;",
		},
		{
			name:  "empty",
			input: "  ",
			want:  "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			style, err := Parse(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.want, style.String())
		})
	}
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{name: "missing colon", input: "color red"},
		{name: "missing name", input: ": red"},
		{name: "empty value", input: "color:;"},
		{name: "second declaration", input: "color: red; margin"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse(tt.input)
			require.ErrorIs(t, err, ErrMalformedDeclaration)
		})
	}
}

func TestParseDeclarationIndex(t *testing.T) {
	_, err := Parse("color: red; margin")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "declaration 2")
}
