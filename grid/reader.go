package grid

import (
	"bufio"
	"fmt"
	"io"
	"log"
	"strconv"
	"strings"
)

type decoder struct {
	scanner *bufio.Scanner
	logger  *log.Logger

	line int

	ncols, nrows                   int
	noData                         float64
	xllcorner, yllcorner, cellsize string
}

// Decoder reads a grid from an ASCII stream.
type Decoder struct {
	r      io.Reader
	logger *log.Logger
}

// NewDecoder returns a decoder reading from r. Warnings about unrecognized
// header keys go to logger; a nil logger discards them.
func NewDecoder(r io.Reader, logger *log.Logger) *Decoder {
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	return &Decoder{r: r, logger: logger}
}

// Decode reads a complete grid. It returns a FormatError and no grid when
// the header is malformed or the data rows disagree with the declared
// dimensions.
func (d *Decoder) Decode() (*Grid, error) {
	dec := &decoder{
		scanner: bufio.NewScanner(d.r),
		logger:  d.logger,
		noData:  DefaultNoData,
	}
	dec.scanner.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)
	return dec.decode()
}

func (d *decoder) decode() (*Grid, error) {
	if err := d.readHeader(); err != nil {
		return nil, err
	}
	if d.ncols <= 0 || d.nrows <= 0 {
		return nil, &FormatError{Msg: fmt.Sprintf("dimensions must be positive, got ncols=%d nrows=%d", d.ncols, d.nrows)}
	}

	g := &Grid{
		NCols:     d.ncols,
		NRows:     d.nrows,
		NoData:    d.noData,
		XLLCorner: d.xllcorner,
		YLLCorner: d.yllcorner,
		CellSize:  d.cellsize,
		Cells:     make([][]float64, 0, d.nrows),
	}

	for d.scanner.Scan() {
		d.line++
		row, err := d.parseRow(d.scanner.Text())
		if err != nil {
			return nil, err
		}
		g.Cells = append(g.Cells, row)
	}
	if err := d.scanner.Err(); err != nil {
		return nil, fmt.Errorf("grid: read: %w", err)
	}

	if len(g.Cells) != d.nrows {
		return nil, &FormatError{Msg: fmt.Sprintf("expected %d data rows, got %d", d.nrows, len(g.Cells))}
	}

	return g, nil
}

func (d *decoder) readHeader() error {
	for i := 0; i < headerLines; i++ {
		if !d.scanner.Scan() {
			if err := d.scanner.Err(); err != nil {
				return fmt.Errorf("grid: read: %w", err)
			}
			return &FormatError{Msg: "incomplete header"}
		}
		d.line++

		text := strings.TrimSpace(d.scanner.Text())
		if text == "" {
			return &FormatError{Line: d.line, Msg: "incomplete header"}
		}

		parts := strings.Fields(text)
		if len(parts) < 2 {
			return &FormatError{Line: d.line, Msg: fmt.Sprintf("malformed header line %q", text)}
		}
		key, value := parts[0], parts[1]

		var err error
		switch key {
		case "ncols":
			d.ncols, err = strconv.Atoi(value)
		case "nrows":
			d.nrows, err = strconv.Atoi(value)
		case "NODATA_value":
			d.noData, err = strconv.ParseFloat(value, 64)
		case "xllcorner":
			d.xllcorner = value
		case "yllcorner":
			d.yllcorner = value
		case "cellsize":
			d.cellsize = value
		default:
			d.logger.Printf("warning: unrecognized header key %q in line %q", key, text)
		}
		if err != nil {
			return &FormatError{Line: d.line, Msg: fmt.Sprintf("header %s: unparseable value %q", key, value)}
		}
	}
	return nil
}

func (d *decoder) parseRow(text string) ([]float64, error) {
	fields := strings.Fields(text)
	if len(fields) != d.ncols {
		return nil, &FormatError{Line: d.line, Msg: fmt.Sprintf("expected %d values in row, got %d", d.ncols, len(fields))}
	}
	row := make([]float64, len(fields))
	for i, f := range fields {
		v, err := strconv.ParseFloat(f, 64)
		if err != nil {
			return nil, &FormatError{Line: d.line, Msg: fmt.Sprintf("unparseable cell value %q", f)}
		}
		row[i] = v
	}
	return row, nil
}
