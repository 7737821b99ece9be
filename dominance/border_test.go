package dominance

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tools4origins/swisspeak/grid"
)

func gridFromRows(t *testing.T, noData float64, rows [][]float64) *grid.Grid {
	t.Helper()
	require.NotEmpty(t, rows)

	g := grid.New(len(rows[0]), len(rows), noData)
	for r, row := range rows {
		require.Len(t, row, g.NCols)
		for c, v := range row {
			g.Set(r, c, v)
		}
	}
	return g
}

func TestHigherBorderEmptyWhenNothingHigher(t *testing.T) {
	g := gridFromRows(t, -9999, [][]float64{
		{5, 5, 5},
		{5, 10, 5},
		{5, 5, 5},
	})

	assert.Empty(t, HigherBorder(g, 10))
}

func TestHigherBorderStrictThreshold(t *testing.T) {
	g := gridFromRows(t, -9999, [][]float64{
		{7, 7},
		{7, 7},
	})

	// Cells exactly equal to the threshold are not higher.
	assert.Empty(t, HigherBorder(g, 7))
	assert.Len(t, HigherBorder(g, 6), 4)
}

func TestHigherBorderExcludesInteriorCells(t *testing.T) {
	// A 4x4 block of higher cells in a 6x6 grid: the 12 ring cells are
	// border, the 4 center cells are fully surrounded and are not.
	g := gridFromRows(t, -9999, [][]float64{
		{1, 1, 1, 1, 1, 1},
		{1, 9, 9, 9, 9, 1},
		{1, 9, 9, 9, 9, 1},
		{1, 9, 9, 9, 9, 1},
		{1, 9, 9, 9, 9, 1},
		{1, 1, 1, 1, 1, 1},
	})

	border := HigherBorder(g, 5)
	assert.Len(t, border, 12)
	assert.NotContains(t, border, grid.Cell{Row: 2, Col: 2})
	assert.NotContains(t, border, grid.Cell{Row: 2, Col: 3})
	assert.NotContains(t, border, grid.Cell{Row: 3, Col: 2})
	assert.NotContains(t, border, grid.Cell{Row: 3, Col: 3})
	assert.Contains(t, border, grid.Cell{Row: 1, Col: 1})
	assert.Contains(t, border, grid.Cell{Row: 4, Col: 4})
}

func TestHigherBorderGridEdgeIsBorder(t *testing.T) {
	// Every cell is higher, so only the outer ring touches out-of-bounds
	// neighbors.
	g := gridFromRows(t, -9999, [][]float64{
		{9, 9, 9},
		{9, 9, 9},
		{9, 9, 9},
	})

	border := HigherBorder(g, 0)
	assert.Len(t, border, 8)
	assert.NotContains(t, border, grid.Cell{Row: 1, Col: 1})
}

func TestHigherBorderNoDataNeighborIsBorder(t *testing.T) {
	g := gridFromRows(t, -9999, [][]float64{
		{9, 9, 9, 9, 9},
		{9, 9, 9, 9, 9},
		{9, 9, -9999, 9, 9},
		{9, 9, 9, 9, 9},
		{9, 9, 9, 9, 9},
	})

	border := HigherBorder(g, 0)
	// In a 5x5 grid every valid cell either touches the edge or the hole,
	// so all 24 of them are border; the no-data cell itself never is.
	assert.Len(t, border, 24)
	assert.NotContains(t, border, grid.Cell{Row: 2, Col: 2})
	assert.Contains(t, border, grid.Cell{Row: 1, Col: 1})
	assert.Contains(t, border, grid.Cell{Row: 3, Col: 3})
}
