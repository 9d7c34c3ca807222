package panna

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMainChartShape(t *testing.T) {
	require.Len(t, MainChart, NumColumns)
	for i, col := range MainChart {
		require.Len(t, col, ColumnSize, "column %d", i+1)
		for _, n := range col {
			assert.True(t, IsPana(n), "column %d entry %q", i+1, n)
		}
	}
}

func TestChartEntriesAreCanonical(t *testing.T) {
	// Digits of every pana ascend under the 1..9,0 ordering.
	for i, col := range MainChart {
		for _, n := range col {
			assert.True(t, isCanonicalPana(n), "column %d entry %q", i+1, n)
		}
	}
}

func isCanonicalPana(n string) bool {
	return motarRank(n[0]) <= motarRank(n[1]) && motarRank(n[1]) <= motarRank(n[2])
}

func TestAuxiliaryChartShapes(t *testing.T) {
	require.Len(t, JodiVagarChart, NumColumns)
	for i, col := range JodiVagarChart {
		assert.Len(t, col, 12, "jodi vagar column %d", i+1)
	}

	assert.Len(t, DadarNumbers, 10)
	assert.Len(t, EkiNumbers, 10)
	assert.Len(t, BekiNumbers, 10)

	require.Len(t, AbrCutChart, NumColumns)
	require.Len(t, JodiPanelChart, NumColumns)
	for i := 0; i < NumColumns; i++ {
		assert.Len(t, AbrCutChart[i], AbrCutChartSize, "abr cut column %d", i+1)
		assert.Len(t, JodiPanelChart[i], JodiPanelChartSize, "jodi panel column %d", i+1)
	}
}

func TestAbrCutColumnsHaveNoDuplicates(t *testing.T) {
	for i, col := range AbrCutChart {
		seen := map[string]bool{}
		for _, n := range col {
			assert.False(t, seen[n], "column %d repeats %q", i+1, n)
			seen[n] = true
		}
	}
}

func TestAbrCutIsTheCutOfTheMainColumn(t *testing.T) {
	for i := 0; i < NumColumns; i++ {
		for j := 0; j < AbrCutChartSize; j++ {
			assert.Equal(t, cutPana(MainChart[i][j]), AbrCutChart[i][j],
				"column %d position %d", i+1, j)
		}
	}
}

// cutPana shifts every digit by five and rewrites the result in canonical
// pana order.
func cutPana(n string) string {
	digits := []byte{
		(n[0]-'0'+5)%10 + '0',
		(n[1]-'0'+5)%10 + '0',
		(n[2]-'0'+5)%10 + '0',
	}
	sort.Slice(digits, func(a, b int) bool {
		return motarRank(digits[a]) < motarRank(digits[b])
	})
	return string(digits)
}

func TestJodiPanelIsAPrefixOfJodiVagar(t *testing.T) {
	for i := 0; i < NumColumns; i++ {
		assert.Equal(t, JodiVagarChart[i][:JodiPanelChartSize], JodiPanelChart[i],
			"column %d", i+1)
	}
}

func TestFamilyGroupsAreDisjoint(t *testing.T) {
	require.Len(t, FamilyGroups, 35)
	owner := map[string]string{}
	total := 0
	for _, g := range FamilyGroups {
		require.NotEmpty(t, g.Numbers, g.Name)
		assert.LessOrEqual(t, len(g.Numbers), 8, g.Name)
		for _, n := range g.Numbers {
			require.True(t, IsPana(n), "%s member %q", g.Name, n)
			prev, dup := owner[n]
			assert.False(t, dup, "%s already in %s and %s", n, prev, g.Name)
			owner[n] = g.Name
			total++
		}
	}
	assert.Equal(t, 219, total)
	_, found := owner["999"]
	assert.False(t, found)
}
