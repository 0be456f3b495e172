package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExpandEnv(t *testing.T) {
	t.Setenv("TEST_API_KEY", "secret-123")
	t.Setenv("TEST_HOST", "db.internal")
	t.Setenv("TEST_PORT", "5432")

	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "single variable",
			input:    "api_key: {{.TEST_API_KEY}}",
			expected: "api_key: secret-123",
		},
		{
			name:     "multiple variables on one line",
			input:    "dsn: {{.TEST_HOST}}:{{.TEST_PORT}}",
			expected: "dsn: db.internal:5432",
		},
		{
			name:     "missing variable expands to empty",
			input:    "value: '{{.TEST_DOES_NOT_EXIST}}'",
			expected: "value: ''",
		},
		{
			name:     "literal dollar signs are preserved",
			input:    `pattern: "^price\\$[0-9]+$"`,
			expected: `pattern: "^price\\$[0-9]+$"`,
		},
		{
			name:     "no template syntax passes through",
			input:    "plain: value",
			expected: "plain: value",
		},
		{
			name:     "malformed template returns original",
			input:    "broken: {{.UNCLOSED",
			expected: "broken: {{.UNCLOSED",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, string(ExpandEnv([]byte(tt.input))))
		})
	}
}
