package utils

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSanitizeFilename(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "removes invalid characters",
			input:    `file<>:"/\|?*name`,
			expected: "filename",
		},
		{
			name:     "whitespace becomes dashes",
			input:    "lectio backup\t1.1.8\n2026-10-18",
			expected: "lectio-backup-1.1.8-2026-10-18",
		},
		{
			name:     "collapses runs of whitespace",
			input:    "lectio   backup",
			expected: "lectio-backup",
		},
		{
			name:     "trims whitespace",
			input:    "  backup  ",
			expected: "backup",
		},
		{
			name:     "keeps accented letters",
			input:    "Génesis 1",
			expected: "Génesis-1",
		},
		{
			name:     "returns untitled for empty",
			input:    "",
			expected: "untitled",
		},
		{
			name:     "returns untitled for only special chars",
			input:    "<>:?*",
			expected: "untitled",
		},
		{
			name:     "truncates long names",
			input:    strings.Repeat("a", 250),
			expected: strings.Repeat("a", 200),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, SanitizeFilename(tt.input))
		})
	}
}
