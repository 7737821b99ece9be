package dominance

import (
	"math"

	"github.com/tools4origins/swisspeak/grid"
)

// Manhattan returns the rectilinear distance between two cells. It is an
// upper bound on the Euclidean distance, which makes it a cheap pre-filter:
// a cell whose Manhattan distance already exceeds a Euclidean bound cannot
// be inside it.
func Manhattan(a, b grid.Cell) int {
	dr := a.Row - b.Row
	if dr < 0 {
		dr = -dr
	}
	dc := a.Col - b.Col
	if dc < 0 {
		dc = -dc
	}
	return dr + dc
}

// Euclidean returns the straight-line distance between two cells.
func Euclidean(a, b grid.Cell) float64 {
	dr := float64(a.Row - b.Row)
	dc := float64(a.Col - b.Col)
	return math.Sqrt(dr*dr + dc*dc)
}
