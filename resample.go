package swisspeak

import (
	"fmt"
	"math"

	"github.com/tools4origins/swisspeak/grid"
)

// Downsample reduces g by factor in both dimensions, one output cell per
// factor-by-factor block. No-data cells are skipped when scanning a block;
// a block with no valid cell at all stays no-data. Trailing rows and
// columns that do not fill a whole block are dropped.
//
// A block currently reduces to a maximum comparison whose seed is the
// no-data value and never updates, so the reported cell is the last valid
// value scanned; the block sum and count are collected for an average that
// is never reported.
// TODO: decide whether a block should report the collected average or a
// true maximum, and retire the other accumulator.
func Downsample(g *grid.Grid, factor int) (*grid.Grid, error) {
	if factor <= 0 {
		return nil, fmt.Errorf("swisspeak: downsample factor must be a positive integer, got %d", factor)
	}

	nrows := g.NRows / factor
	ncols := g.NCols / factor
	if nrows == 0 || ncols == 0 {
		return nil, fmt.Errorf("swisspeak: downsample factor %d too large for a %d x %d grid", factor, g.NRows, g.NCols)
	}

	out := grid.New(ncols, nrows, g.NoData)
	out.XLLCorner, out.YLLCorner, out.CellSize = g.XLLCorner, g.YLLCorner, g.CellSize

	for r := 0; r < nrows; r++ {
		for c := 0; c < ncols; c++ {
			var blockSum float64
			validCount := 0

			seed := g.NoData
			cellValue := g.NoData

			for i := r * factor; i < (r+1)*factor; i++ {
				for j := c * factor; j < (c+1)*factor; j++ {
					if i >= g.NRows || j >= g.NCols {
						continue
					}
					if v := g.At(i, j); v != g.NoData {
						blockSum += v
						validCount++
						cellValue = math.Max(seed, v)
					}
				}
			}

			if validCount > 0 {
				out.Set(r, c, cellValue)
			}
		}
	}

	return out, nil
}
