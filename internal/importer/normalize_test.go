package importer

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "rejoins split email",
			input:    "Contact: jane.doe at example.com",
			expected: "Contact: jane.doe@example.com",
		},
		{
			name:     "rejoins phone digits split across lines",
			input:    "555\n123\n4567",
			expected: "555-123-4567",
		},
		{
			name:     "rejoins phone digits split by spaces",
			input:    "Call 555 123 4567 today",
			expected: "Call 555-123-4567 today",
		},
		{
			name:     "upper-cases known header words",
			input:    "Education\nexperience\nSkills",
			expected: "EDUCATION\nEXPERIENCE\nSKILLS",
		},
		{
			name:     "isolates header glued to previous paragraph",
			input:    "end of paragraph.EDUCATION",
			expected: "end of paragraph.\n\nEDUCATION",
		},
		{
			name:     "leaves clean text unchanged",
			input:    "Jane Doe\nSoftware Engineer at Acme\n",
			expected: "Jane Doe\nSoftware Engineer at Acme\n",
		},
		{
			name:     "empty input",
			input:    "",
			expected: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Normalize(tt.input))
		})
	}
}

func TestNormalizeIsTotal(t *testing.T) {
	// Normalization never fails; a second pass over already-normalized text
	// must be a no-op.
	input := "Jane Doe\njane at example.com\n555\n123\n4567\n\neducation"
	once := Normalize(input)
	assert.Equal(t, once, Normalize(once))
}
