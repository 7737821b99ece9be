package swisspeak

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tools4origins/swisspeak/dominance"
	"github.com/tools4origins/swisspeak/grid"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func readGrid(t *testing.T, path string) *grid.Grid {
	t.Helper()
	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()

	g, err := grid.NewDecoder(f, nil).Decode()
	require.NoError(t, err)
	return g
}

const rowGrid = `ncols        5
nrows        1
NODATA_value -9999
xllcorner N/A
yllcorner N/A
cellsize N/A
1 1 20 1 1
`

func TestAppDominance(t *testing.T) {
	dir := t.TempDir()
	in := writeFile(t, dir, "in.asc", rowGrid)
	out := filepath.Join(dir, "out.asc")

	a := New(nil, nil)
	require.NoError(t, a.Dominance(context.Background(), in, out, 0, 0))

	g := readGrid(t, out)
	assert.Equal(t, [][]float64{{-9999, -1, 20, 1, 1}}, g.Cells)
}

func TestAppDominancePeakOutOfBounds(t *testing.T) {
	dir := t.TempDir()
	in := writeFile(t, dir, "in.asc", rowGrid)
	out := filepath.Join(dir, "out.asc")

	a := New(nil, nil)
	err := a.Dominance(context.Background(), in, out, 9, 0)

	var perr *dominance.PeakError
	require.ErrorAs(t, err, &perr)
	assert.NoFileExists(t, out, "no output on failure")
}

func TestAppDominanceMissingInput(t *testing.T) {
	a := New(nil, nil)
	err := a.Dominance(context.Background(), "does-not-exist.asc", "out.asc", 0, 0)
	assert.ErrorContains(t, err, "does-not-exist.asc")
}

func TestAppDownsample(t *testing.T) {
	dir := t.TempDir()
	in := writeFile(t, dir, "in.asc", `ncols        2
nrows        2
NODATA_value -9999
xllcorner N/A
yllcorner N/A
cellsize N/A
1 2
3 4
`)
	out := filepath.Join(dir, "out.asc")

	a := New(nil, nil)
	require.NoError(t, a.Downsample(in, out, 2))

	g := readGrid(t, out)
	assert.Equal(t, [][]float64{{4}}, g.Cells)
}

func TestAppRestrict(t *testing.T) {
	dir := t.TempDir()
	in := writeFile(t, dir, "in.asc", rowGrid)
	mask := writeFile(t, dir, "mask.asc", `ncols        5
nrows        1
NODATA_value -9999
xllcorner N/A
yllcorner N/A
cellsize N/A
1 -9999 1 -9999 1
`)
	out := filepath.Join(dir, "out.asc")

	a := New(nil, nil)
	require.NoError(t, a.Restrict(in, mask, out))

	g := readGrid(t, out)
	assert.Equal(t, [][]float64{{1, -9999, 20, -9999, 1}}, g.Cells)
}

func TestAppImageRoundTrip(t *testing.T) {
	dir := t.TempDir()
	in := writeFile(t, dir, "in.asc", rowGrid)
	img := filepath.Join(dir, "out.png")
	back := filepath.Join(dir, "back.asc")

	a := New(nil, nil)
	require.NoError(t, a.ToImage(in, img))
	require.NoError(t, a.FromImage(img, back))

	// The image only preserves presence: every cell was valid, so the
	// parsed grid is all ones.
	g := readGrid(t, back)
	assert.Equal(t, [][]float64{{1, 1, 1, 1, 1}}, g.Cells)
}

func TestAppToImageGIF(t *testing.T) {
	dir := t.TempDir()
	in := writeFile(t, dir, "in.asc", rowGrid)
	out := filepath.Join(dir, "out.gif")

	a := New(nil, nil)
	require.NoError(t, a.ToImage(in, out))
	assert.FileExists(t, out)
}
