package python

import (
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
)

func TestSnippet(t *testing.T) {
	tests := []struct {
		description string
		text        string
		limit       int
		expect      string
	}{
		{description: "short", text: "class A(", limit: 40, expect: "class A("},
		{description: "ascii", text: strings.Repeat("a", 45), limit: 40, expect: strings.Repeat("a", 40) + "..."},
		{description: "multi byte", text: strings.Repeat("生存", 25), limit: 40, expect: strings.Repeat("生存", 20) + "..."},
	}
	for _, tc := range tests {
		t.Run(tc.description, func(t *testing.T) {
			actual := snippet(tc.text, tc.limit)
			assert.Equal(t, tc.expect, actual)
			assert.True(t, utf8.ValidString(actual))
		})
	}
}
