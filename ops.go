package swisspeak

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/tools4origins/swisspeak/dominance"
	"github.com/tools4origins/swisspeak/grid"
	"github.com/tools4origins/swisspeak/render"
)

func (a *App) loadGrid(path string) (*grid.Grid, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("swisspeak: opening %s: %w", path, err)
	}
	defer f.Close()

	g, err := grid.NewDecoder(f, a.logger).Decode()
	if err != nil {
		return nil, fmt.Errorf("swisspeak: %s: %w", path, err)
	}

	a.logger.Printf("read %d rows x %d columns from %s", g.NRows, g.NCols, path)
	return g, nil
}

func (a *App) storeGrid(path string, g *grid.Grid, format grid.Format) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("swisspeak: creating %s: %w", path, err)
	}

	if err := grid.Encode(f, g, format); err != nil {
		f.Close()
		return fmt.Errorf("swisspeak: writing %s: %w", path, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("swisspeak: writing %s: %w", path, err)
	}

	a.logger.Printf("wrote %d rows x %d columns to %s", g.NRows, g.NCols, path)
	return nil
}

// Dominance classifies every cell of the grid at in against the peak at
// (peakRow, peakCol) and writes the resulting grid to out.
func (a *App) Dominance(ctx context.Context, in, out string, peakCol, peakRow int) error {
	g, err := a.loadGrid(in)
	if err != nil {
		return err
	}

	peak := grid.Cell{Row: peakRow, Col: peakCol}
	if !g.InBounds(peak.Row, peak.Col) {
		return &dominance.PeakError{
			Row: peak.Row, Col: peak.Col,
			NRows: g.NRows, NCols: g.NCols,
		}
	}

	var border []grid.Cell
	if g.IsNoData(peak.Row, peak.Col) {
		a.logger.Printf("warning: peak at (%d, %d) is a no-data cell; it dominates nothing", peak.Row, peak.Col)
	} else {
		peakValue := g.At(peak.Row, peak.Col)
		a.logger.Printf("peak at (row=%d, col=%d) with value %v", peak.Row, peak.Col, peakValue)
		border = dominance.HigherBorder(g, peakValue)
		a.logger.Printf("%d border cells higher than %v", len(border), peakValue)
	}

	result, err := dominance.Classify(ctx, g, peak, border, a.cfg.Processing.Workers)
	if err != nil {
		return err
	}

	return a.storeGrid(out, result, grid.FormatInt)
}

// Downsample reduces the grid at in by factor and writes the result to out.
// A non-positive factor falls back to the configured default.
func (a *App) Downsample(in, out string, factor int) error {
	if factor <= 0 {
		factor = a.cfg.Downsample.Factor
	}

	g, err := a.loadGrid(in)
	if err != nil {
		return err
	}

	result, err := Downsample(g, factor)
	if err != nil {
		return err
	}

	return a.storeGrid(out, result, grid.FormatFloat)
}

// Restrict masks the grid at in by the grid at mask and writes the result
// to out.
func (a *App) Restrict(in, mask, out string) error {
	g, err := a.loadGrid(in)
	if err != nil {
		return err
	}

	m, err := a.loadGrid(mask)
	if err != nil {
		return err
	}

	result, err := Restrict(g, m)
	if err != nil {
		return err
	}

	return a.storeGrid(out, result, grid.FormatFloat)
}

// ToImage renders the grid at in as an image at out; the extension picks
// the encoding, PNG unless it is .gif.
func (a *App) ToImage(in, out string) error {
	g, err := a.loadGrid(in)
	if err != nil {
		return err
	}

	opts := render.Options{
		Gap: a.cfg.Render.Gap,
		Min: a.cfg.Render.Min,
		Max: a.cfg.Render.Max,
	}

	f, err := os.Create(out)
	if err != nil {
		return fmt.Errorf("swisspeak: creating %s: %w", out, err)
	}

	if filepath.Ext(out) == ".gif" {
		err = render.EncodeGIF(f, g, opts)
	} else {
		err = render.EncodePNG(f, g, opts)
	}
	if err != nil {
		f.Close()
		return fmt.Errorf("swisspeak: writing %s: %w", out, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("swisspeak: writing %s: %w", out, err)
	}

	a.logger.Printf("rendered %s to %s", in, out)
	return nil
}

// FromImage converts the image at in to a presence grid at out: opaque
// pixels become 1, fully transparent pixels no-data.
func (a *App) FromImage(in, out string) error {
	f, err := os.Open(in)
	if err != nil {
		return fmt.Errorf("swisspeak: opening %s: %w", in, err)
	}
	defer f.Close()

	g, err := render.Decode(f)
	if err != nil {
		return fmt.Errorf("swisspeak: %s: %w", in, err)
	}

	return a.storeGrid(out, g, grid.FormatInt)
}
