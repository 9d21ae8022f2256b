package cli

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfirm(t *testing.T) {
	tests := []struct {
		name     string
		answer   string
		expected bool
	}{
		{name: "yes", answer: "y\n", expected: true},
		{name: "yes full word", answer: "Yes\n", expected: true},
		{name: "no", answer: "n\n", expected: false},
		{name: "empty defaults to no", answer: "\n", expected: false},
		{name: "garbage defaults to no", answer: "sure why not\n", expected: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out strings.Builder
			c := NewConfirmer(strings.NewReader(tt.answer), &out)

			ok, err := c.Confirm("Delete this transaction?")
			require.NoError(t, err)
			assert.Equal(t, tt.expected, ok)
			assert.Contains(t, out.String(), "Delete this transaction? [y/N]:")
		})
	}

	t.Run("closed input is an error", func(t *testing.T) {
		var out strings.Builder
		c := NewConfirmer(strings.NewReader(""), &out)

		_, err := c.Confirm("Proceed?")
		assert.Error(t, err)
	})

	t.Run("answer without trailing newline still counts", func(t *testing.T) {
		var out strings.Builder
		c := NewConfirmer(strings.NewReader("y"), &out)

		ok, err := c.Confirm("Proceed?")
		require.NoError(t, err)
		assert.True(t, ok)
	})
}
