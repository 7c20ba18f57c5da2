package linkedin

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatDate(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"month and year", "01/2019", "2019-01"},
		{"unpadded month", "3/2021", "2021-03"},
		{"full date keeps month and year", "06/15/2018", "2018-06"},
		{"empty input", "", ""},
		{"already normalized passes through", "2019-01", "2019-01"},
		{"month out of range passes through", "13/2019", "13/2019"},
		{"non numeric passes through", "Jan/2019", "Jan/2019"},
		{"short year passes through", "01/19", "01/19"},
		{"surrounding whitespace", " 01/2019 ", "2019-01"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, formatDate(tt.input))
		})
	}
}
