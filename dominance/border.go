package dominance

import "github.com/tools4origins/swisspeak/grid"

// The eight neighbor offsets, horizontal, vertical and diagonal.
var neighborOffsets = [8][2]int{
	{-1, -1}, {-1, 0}, {-1, 1},
	{0, -1}, {0, 1},
	{1, -1}, {1, 0}, {1, 1},
}

// HigherBorder returns every cell strictly higher than threshold that sits
// on the border of its higher region: at least one of its eight neighbors is
// out of bounds, no-data, or not higher than threshold. Cells equal to the
// threshold are never higher. The result is empty when no cell exceeds the
// threshold.
//
// Single pass over the grid, up to eight comparisons per cell: O(W*H).
func HigherBorder(g *grid.Grid, threshold float64) []grid.Cell {
	var border []grid.Cell

	for r := 0; r < g.NRows; r++ {
		for c := 0; c < g.NCols; c++ {
			if g.IsNoData(r, c) || g.At(r, c) <= threshold {
				continue
			}

			for _, d := range neighborOffsets {
				nr, nc := r+d[0], c+d[1]
				if !g.InBounds(nr, nc) || g.IsNoData(nr, nc) || g.At(nr, nc) <= threshold {
					border = append(border, grid.Cell{Row: r, Col: c})
					break
				}
			}
		}
	}

	return border
}
