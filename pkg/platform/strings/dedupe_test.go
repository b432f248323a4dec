package strings

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDedupeAndTrim(t *testing.T) {
	tests := []struct {
		name     string
		input    []string
		expected []string
	}{
		{name: "nil slice", input: nil, expected: nil},
		{name: "empty slice", input: []string{}, expected: []string{}},
		{name: "keeps order", input: []string{"987654321", "123456789"}, expected: []string{"987654321", "123456789"}},
		{name: "drops repeats", input: []string{"123456789", " 123456789 ", "987654321", "123456789"}, expected: []string{"123456789", "987654321"}},
		{name: "drops blanks", input: []string{"", "  ", "123456789"}, expected: []string{"123456789"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, DedupeAndTrim(tt.input))
		})
	}
}
