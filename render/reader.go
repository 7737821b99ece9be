package render

import (
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"io"

	"github.com/tools4origins/swisspeak/grid"
)

// Decode reads an image in any registered format and converts it to a grid:
// fully transparent pixels become no-data, every other pixel the value 1.
func Decode(r io.Reader) (*grid.Grid, error) {
	m, _, err := image.Decode(r)
	if err != nil {
		return nil, err
	}

	b := m.Bounds()
	g := grid.New(b.Dx(), b.Dy(), grid.DefaultNoData)

	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			if _, _, _, a := m.At(x, y).RGBA(); a != 0 {
				g.Set(y-b.Min.Y, x-b.Min.X, 1)
			}
		}
	}

	return g, nil
}
