/*
Package grid implements the ASCII grid decoder and encoder.

The format is a six line text header of whitespace-separated key/value pairs
followed by one line per row of whitespace-separated cell values. The
recognized header keys are ncols, nrows and NODATA_value; xllcorner,
yllcorner and cellsize are accepted and carried through untouched. Cells
equal to the NODATA_value are sentinel markers for missing measurements.
*/
package grid

import (
	"fmt"
)

// headerLines is the fixed number of header lines preceding the data rows.
const headerLines = 6

// DefaultNoData is assumed when a header carries no NODATA_value key.
const DefaultNoData = -9999.0

// Cell is a (row, col) grid coordinate. Row is the slow axis and increases
// downward to match storage order.
type Cell struct {
	Row, Col int
}

// Grid is an in-memory raster of float cells with a no-data sentinel.
// The corner and cell size header fields are opaque passthrough metadata.
type Grid struct {
	NCols, NRows int
	NoData       float64

	XLLCorner, YLLCorner, CellSize string

	Cells [][]float64
}

// New returns a grid of the given dimensions with every cell set to noData.
func New(ncols, nrows int, noData float64) *Grid {
	cells := make([][]float64, nrows)
	for r := range cells {
		row := make([]float64, ncols)
		for c := range row {
			row[c] = noData
		}
		cells[r] = row
	}
	return &Grid{
		NCols:  ncols,
		NRows:  nrows,
		NoData: noData,
		Cells:  cells,
	}
}

// At returns the value at (row, col). It will panic if the coordinate is out
// of bounds for the grid.
func (g *Grid) At(row, col int) float64 {
	return g.Cells[row][col]
}

// Set stores v at (row, col).
func (g *Grid) Set(row, col int, v float64) {
	g.Cells[row][col] = v
}

// InBounds reports whether (row, col) lies inside the grid.
func (g *Grid) InBounds(row, col int) bool {
	return row >= 0 && row < g.NRows && col >= 0 && col < g.NCols
}

// IsNoData reports whether the cell at (row, col) holds the sentinel.
func (g *Grid) IsNoData(row, col int) bool {
	return g.Cells[row][col] == g.NoData
}

// SameShape returns a DimensionMismatchError unless o has the same
// dimensions as g.
func (g *Grid) SameShape(o *Grid) error {
	if g.NCols != o.NCols || g.NRows != o.NRows {
		return &DimensionMismatchError{
			Rows1: g.NRows, Cols1: g.NCols,
			Rows2: o.NRows, Cols2: o.NCols,
		}
	}
	return nil
}

// FormatError reports a malformed grid file. Line is 1-based, or 0 when the
// problem is not tied to a single line.
type FormatError struct {
	Line int
	Msg  string
}

func (e *FormatError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("grid: line %d: %s", e.Line, e.Msg)
	}
	return fmt.Sprintf("grid: %s", e.Msg)
}

// DimensionMismatchError reports two grids whose shapes disagree.
type DimensionMismatchError struct {
	Rows1, Cols1, Rows2, Cols2 int
}

func (e *DimensionMismatchError) Error() string {
	return fmt.Sprintf("grid: dimensions differ: %dx%d vs %dx%d",
		e.Rows1, e.Cols1, e.Rows2, e.Cols2)
}
