package swisspeak

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tools4origins/swisspeak/grid"
)

func TestRestrict(t *testing.T) {
	g := gridFromRows(t, [][]float64{
		{1, 2, 3},
		{4, 5, 6},
	})
	mask := gridFromRows(t, [][]float64{
		{7, noData, 7},
		{noData, 7, noData},
	})

	out, err := Restrict(g, mask)
	require.NoError(t, err)

	assert.Equal(t, [][]float64{
		{1, noData, 3},
		{noData, 5, noData},
	}, out.Cells)
	assert.Equal(t, noData, out.NoData)
}

// The mask only decides presence; the output sentinel always comes from the
// first grid, even when the two disagree.
func TestRestrictUsesFirstGridSentinel(t *testing.T) {
	g := gridFromRows(t, [][]float64{{1, 2}})
	mask := grid.New(2, 1, -1)
	mask.Set(0, 0, 9)

	out, err := Restrict(g, mask)
	require.NoError(t, err)

	assert.Equal(t, [][]float64{{1, noData}}, out.Cells)
}

func TestRestrictDimensionMismatch(t *testing.T) {
	g := gridFromRows(t, [][]float64{{1, 2}})
	mask := gridFromRows(t, [][]float64{{1}, {2}})

	_, err := Restrict(g, mask)
	var mismatch *grid.DimensionMismatchError
	require.ErrorAs(t, err, &mismatch)
	assert.Contains(t, err.Error(), "1x2 vs 2x1")
}
