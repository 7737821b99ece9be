package render

import (
	"image"
	"image/color"
	"image/draw"
	"image/gif"
	"image/png"
	"io"
	"math"

	"github.com/ericpauley/go-quantize/quantize"
	"gonum.org/v1/gonum/floats"

	"github.com/tools4origins/swisspeak/grid"
)

// noDataColor marks cells holding the no-data sentinel.
var noDataColor = color.RGBA{255, 255, 255, 255}

// magnitudeRange returns the smallest and largest absolute values of the
// valid cells. ok is false when the grid holds no valid cell at all.
func magnitudeRange(g *grid.Grid) (min, max float64, ok bool) {
	var valid []float64
	for r := 0; r < g.NRows; r++ {
		for c := 0; c < g.NCols; c++ {
			if !g.IsNoData(r, c) {
				valid = append(valid, math.Abs(g.At(r, c)))
			}
		}
	}
	if len(valid) == 0 {
		return 0, 0, false
	}
	return floats.Min(valid), floats.Max(valid), true
}

func clamp(v int) uint8 {
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return uint8(v)
}

// mapColor maps one cell value onto the ramp. The magnitude is normalized
// against [min, max] with the configured gap; the sign of the value picks
// the channel.
func mapColor(v, min, max, noData, gap float64) color.RGBA {
	if v == noData {
		return noDataColor
	}

	if max == min {
		return color.RGBA{0, 255, 0, 255}
	}

	var normalized float64
	switch m := math.Abs(v); {
	case m <= min:
		normalized = 0
	case m >= max:
		normalized = 1
	default:
		normalized = gap + (m-min)/(max-min)*(1-gap)
	}

	if v >= 0 {
		return color.RGBA{R: clamp(int((1 - normalized) * 255)), A: 255}
	}
	return color.RGBA{G: clamp(int(normalized * 255)), A: 255}
}

// Image renders g as an RGBA image, one pixel per cell. A grid with no
// valid cells renders as a solid black image.
func Image(g *grid.Grid, opts Options) *image.RGBA {
	m := image.NewRGBA(image.Rect(0, 0, g.NCols, g.NRows))

	min, max, ok := magnitudeRange(g)
	if !ok {
		draw.Draw(m, m.Bounds(), image.NewUniform(color.Black), image.Point{}, draw.Src)
		return m
	}
	if opts.Min != nil {
		min = *opts.Min
	}
	if opts.Max != nil {
		max = *opts.Max
	}

	gap := opts.gap()
	for r := 0; r < g.NRows; r++ {
		for c := 0; c < g.NCols; c++ {
			m.SetRGBA(c, r, mapColor(g.At(r, c), min, max, g.NoData, gap))
		}
	}

	return m
}

// EncodePNG writes g to w as a PNG image.
func EncodePNG(w io.Writer, g *grid.Grid, opts Options) error {
	return png.Encode(w, Image(g, opts))
}

// EncodeGIF writes g to w as a GIF image, quantizing the ramp down to a
// 256-color palette.
func EncodeGIF(w io.Writer, g *grid.Grid, opts Options) error {
	m := Image(g, opts)

	q := quantize.MedianCutQuantizer{}
	pm := image.NewPaletted(m.Bounds(), q.Quantize(make(color.Palette, 0, 256), m))
	draw.Draw(pm, m.Bounds(), m, m.Bounds().Min, draw.Src)

	return gif.Encode(w, pm, nil)
}
