package dominance

import (
	"context"
	"math"

	"github.com/tools4origins/swisspeak/grid"
)

// Classify builds the dominance grid for g relative to the peak. Border must
// be the result of HigherBorder(g, g.At(peak)); it is only ever read.
//
// Each output cell holds the no-data sentinel (the cell is no-data, or is
// the peak itself), the negated cell value (dominated by the peak), or the
// unchanged cell value (a higher border cell lies closer than the peak).
// A peak sitting on a no-data cell dominates nothing: every valid cell is
// reported as not dominated.
//
// Rows are classified independently, fanned out across workers goroutines;
// workers <= 1 runs the plain sequential scan. The output is identical
// either way.
func Classify(ctx context.Context, g *grid.Grid, peak grid.Cell, border []grid.Cell, workers int) (*grid.Grid, error) {
	if !g.InBounds(peak.Row, peak.Col) {
		return nil, &PeakError{
			Row: peak.Row, Col: peak.Col,
			NRows: g.NRows, NCols: g.NCols,
		}
	}

	out := grid.New(g.NCols, g.NRows, g.NoData)
	out.XLLCorner, out.YLLCorner, out.CellSize = g.XLLCorner, g.YLLCorner, g.CellSize

	// A no-data peak dominates nothing; skip the scan entirely.
	if g.IsNoData(peak.Row, peak.Col) {
		for r := 0; r < g.NRows; r++ {
			for c := 0; c < g.NCols; c++ {
				if !g.IsNoData(r, c) {
					out.Set(r, c, g.At(r, c))
				}
			}
		}
		return out, nil
	}

	if workers <= 1 {
		for r := 0; r < g.NRows; r++ {
			if err := ctx.Err(); err != nil {
				return nil, err
			}
			classifyRow(g, out, r, peak, border)
		}
		return out, nil
	}

	rows, errc := feedRows(ctx, g.NRows)
	errcList := []<-chan error{errc}

	for i := 0; i < workers; i++ {
		errcList = append(errcList, rowWorker(ctx, g, out, peak, border, rows))
	}

	if err := waitForPipeline(errcList...); err != nil {
		return nil, err
	}

	return out, nil
}

// classifyRow writes one output row. No other worker touches this row, so
// no locking is needed.
func classifyRow(g, out *grid.Grid, r int, peak grid.Cell, border []grid.Cell) {
	for c := 0; c < g.NCols; c++ {
		out.Set(r, c, classifyCell(g, r, c, peak, border))
	}
}

func classifyCell(g *grid.Grid, r, c int, peak grid.Cell, border []grid.Cell) float64 {
	v := g.At(r, c)

	if v == g.NoData {
		return g.NoData
	}

	// The peak does not classify itself.
	if r == peak.Row && c == peak.Col {
		return g.NoData
	}

	cell := grid.Cell{Row: r, Col: c}
	peakDist := Euclidean(cell, peak)

	// No higher region exists anywhere, the peak wins by default.
	if len(border) == 0 {
		return -v
	}

	// Euclidean distance never exceeds Manhattan distance, so any border
	// cell whose Manhattan distance is beyond ceil(peakDist) cannot be
	// closer than the peak; it is skipped without taking a square root.
	manhattanSup := int(math.Ceil(peakDist))

	for _, b := range border {
		if Manhattan(cell, b) > manhattanSup {
			continue
		}
		if Euclidean(cell, b) < peakDist {
			return v
		}
	}

	return -v
}
