package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseAmount(t *testing.T) {
	t.Run("Should parse plain amounts", func(t *testing.T) {
		v, err := ParseAmount("123.45")
		require.NoError(t, err)
		assert.Equal(t, 123.45, v)
	})

	t.Run("Should strip thousands separators", func(t *testing.T) {
		v, err := ParseAmount("1,234,567.89")
		require.NoError(t, err)
		assert.Equal(t, 1234567.89, v)
	})

	t.Run("Should fail on empty input", func(t *testing.T) {
		_, err := ParseAmount("   ")
		assert.Error(t, err)
	})

	t.Run("Should fail on non-numeric input", func(t *testing.T) {
		_, err := ParseAmount("N/A")
		assert.Error(t, err)
	})
}

func TestRoundFloat(t *testing.T) {
	assert.Equal(t, 12.35, RoundFloat(12.3456, 2))
	assert.Equal(t, 13.0, RoundFloat(12.5, 0))
}
