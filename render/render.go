/*
Package render converts grids to color-coded raster images and back.

A grid maps to one pixel per cell. No-data cells get a fixed sentinel color
and valid cells a color ramp scaled by magnitude: non-negative values shade
the red channel, negative values the green channel. The reverse conversion
only recovers presence: a fully transparent pixel becomes no-data, anything
else becomes the value 1.
*/
package render

// DefaultGap is the fraction of the ramp reserved below the first
// above-minimum magnitude, so that even barely-above-minimum cells are
// visibly separated from the minimum.
const DefaultGap = 0.35

// Options control the value-to-color mapping.
type Options struct {
	// Gap in [0, 1); zero means DefaultGap.
	Gap float64

	// Min and Max override the measured magnitude range when non-nil,
	// pinning the ramp to a fixed window across several grids.
	Min, Max *float64
}

func (o Options) gap() float64 {
	if o.Gap == 0 {
		return DefaultGap
	}
	return o.Gap
}
