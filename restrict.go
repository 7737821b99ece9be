package swisspeak

import (
	"github.com/tools4origins/swisspeak/grid"
)

// Restrict masks g by mask: the output keeps g's value wherever mask holds
// a valid measurement and g's no-data sentinel everywhere else. Both grids
// must have the same shape.
func Restrict(g, mask *grid.Grid) (*grid.Grid, error) {
	if err := g.SameShape(mask); err != nil {
		return nil, err
	}

	out := grid.New(g.NCols, g.NRows, g.NoData)
	out.XLLCorner, out.YLLCorner, out.CellSize = g.XLLCorner, g.YLLCorner, g.CellSize

	for r := 0; r < g.NRows; r++ {
		for c := 0; c < g.NCols; c++ {
			if !mask.IsNoData(r, c) {
				out.Set(r, c, g.At(r, c))
			}
		}
	}

	return out, nil
}
