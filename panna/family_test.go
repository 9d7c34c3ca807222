package panna

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFindFamilyGroup(t *testing.T) {
	g, ok := FindFamilyGroup("678")
	require.True(t, ok)
	assert.Equal(t, "G1", g.Name)
	assert.Equal(t, []string{"678", "123", "137", "268", "236", "178", "128", "367"}, g.Numbers)

	// Every member of a group resolves to that same group.
	for _, n := range g.Numbers {
		got, ok := FindFamilyGroup(n)
		require.True(t, ok, n)
		assert.Equal(t, "G1", got.Name, n)
	}

	g, ok = FindFamilyGroup("000")
	require.True(t, ok)
	assert.Equal(t, "G2", g.Name)
}

func TestFindFamilyGroupNotFound(t *testing.T) {
	_, ok := FindFamilyGroup("999")
	assert.False(t, ok)

	_, ok = FindFamilyGroup("abc")
	assert.False(t, ok)
}
