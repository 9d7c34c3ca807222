package panna

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMotarNumbers(t *testing.T) {
	t.Run("plain ascending digits", func(t *testing.T) {
		got, err := MotarNumbers("1234")
		require.NoError(t, err)
		assert.Equal(t, []string{"123", "124", "134", "234"}, got)
	})

	t.Run("zero only closes a pana", func(t *testing.T) {
		got, err := MotarNumbers("102")
		require.NoError(t, err)
		assert.Equal(t, []string{"120"}, got)
	})

	t.Run("zero mixes with larger sets", func(t *testing.T) {
		got, err := MotarNumbers("1023")
		require.NoError(t, err)
		assert.Equal(t, []string{"120", "123", "130", "230"}, got)
	})

	t.Run("repeated digits collapse", func(t *testing.T) {
		got, err := MotarNumbers("1122334")
		require.NoError(t, err)
		assert.Equal(t, []string{"123", "124", "134", "234"}, got)
	})

	t.Run("too few distinct digits is empty, not an error", func(t *testing.T) {
		got, err := MotarNumbers("5555")
		require.NoError(t, err)
		assert.Empty(t, got)
	})

	t.Run("full digit set", func(t *testing.T) {
		got, err := MotarNumbers("0123456789")
		require.NoError(t, err)
		assert.Len(t, got, 120)
		for _, n := range got {
			assert.NotEqual(t, byte('0'), n[0], "zero may not lead: %q", n)
			assert.NotEqual(t, byte('0'), n[1], "zero may not sit second: %q", n)
			assert.True(t, motarRank(n[0]) < motarRank(n[1]) && motarRank(n[1]) < motarRank(n[2]), n)
		}
	})
}

func TestMotarNumbersValidation(t *testing.T) {
	var verr *ValidationError

	_, err := MotarNumbers("123")
	assert.ErrorAs(t, err, &verr, "too short")

	_, err = MotarNumbers("01234567890")
	assert.ErrorAs(t, err, &verr, "too long")

	_, err = MotarNumbers("12x4")
	assert.ErrorAs(t, err, &verr, "non-digit")
}
