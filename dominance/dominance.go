/*
Package dominance classifies grid cells against a chosen peak.

A cell is dominated by the peak when no cell with a strictly higher value
than the peak lies geometrically closer to it than the peak does. Rather
than comparing against every higher cell, the classifier only considers the
border cells of the higher regions: the nearest higher cell to any point
outside a region is always on that region's border.
*/
package dominance

import "fmt"

// PeakError reports a peak coordinate outside the grid bounds.
type PeakError struct {
	Row, Col     int
	NRows, NCols int
}

func (e *PeakError) Error() string {
	return fmt.Sprintf("dominance: peak (%d, %d) out of bounds for %d rows x %d columns",
		e.Row, e.Col, e.NRows, e.NCols)
}
