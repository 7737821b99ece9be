package grid

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
)

// Format selects how cell values are rendered on output.
type Format int

const (
	// FormatFloat writes cells with three decimal places.
	FormatFloat Format = iota
	// FormatInt writes cells truncated to integers, for grids whose values
	// are sign-encoded magnitudes or flags.
	FormatInt
)

type encoder struct {
	w      *bufio.Writer
	format Format
}

func (e *encoder) writeHeader(g *Grid) error {
	corner := func(s string) string {
		if s == "" {
			return "N/A"
		}
		return s
	}

	if _, err := fmt.Fprintf(e.w, "ncols        %d\n", g.NCols); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(e.w, "nrows        %d\n", g.NRows); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(e.w, "NODATA_value %s\n", strconv.FormatFloat(g.NoData, 'g', -1, 64)); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(e.w, "xllcorner %s\n", corner(g.XLLCorner)); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(e.w, "yllcorner %s\n", corner(g.YLLCorner)); err != nil {
		return err
	}
	_, err := fmt.Fprintf(e.w, "cellsize %s\n", corner(g.CellSize))
	return err
}

func (e *encoder) writeCell(v float64) error {
	var err error
	switch e.format {
	case FormatInt:
		_, err = e.w.WriteString(strconv.Itoa(int(v)))
	default:
		_, err = fmt.Fprintf(e.w, "%.3f", v)
	}
	return err
}

func (e *encoder) encode(g *Grid) error {
	if err := e.writeHeader(g); err != nil {
		return err
	}

	for _, row := range g.Cells {
		for i, v := range row {
			if i > 0 {
				if err := e.w.WriteByte(' '); err != nil {
					return err
				}
			}
			if err := e.writeCell(v); err != nil {
				return err
			}
		}
		if err := e.w.WriteByte('\n'); err != nil {
			return err
		}
	}

	return e.w.Flush()
}

// Encode writes g to w in the ASCII grid format.
func Encode(w io.Writer, g *Grid, format Format) error {
	e := encoder{w: bufio.NewWriter(w), format: format}
	return e.encode(g)
}
