package region_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/gridlab/grid"
	"github.com/katalvlaran/gridlab/region"
)

// rectangle returns the clockwise perimeter of the w×h box at the origin.
func rectangle(w, h int) []grid.Point {
	var path []grid.Point
	for x := 0; x < w; x++ {
		path = append(path, grid.Point{X: x, Y: 0})
	}
	for y := 1; y < h; y++ {
		path = append(path, grid.Point{X: w - 1, Y: y})
	}
	for x := w - 2; x >= 0; x-- {
		path = append(path, grid.Point{X: x, Y: h - 1})
	}
	for y := h - 2; y >= 1; y-- {
		path = append(path, grid.Point{X: 0, Y: y})
	}

	return path
}

// TestClassify_SimpleLoop uses a 5×5 grid with a loop around the top four rows.
//
//	# # # # #
//	# I I I #
//	# I I I #
//	# # # # #
//	O O O O O
func TestClassify_SimpleLoop(t *testing.T) {
	bounds, _ := grid.Filled(5, 5, 0)
	loop, link, err := region.FromCycle(rectangle(5, 4))
	require.NoError(t, err)

	res, err := region.Classify(bounds, loop, link)
	require.NoError(t, err)
	assert.Equal(t, 14, res.Count(region.Boundary))
	assert.Equal(t, 6, res.Count(region.Enclosed))
	assert.Equal(t, 5, res.Count(region.Outside))
	assert.Equal(t, 0, res.Count(region.Unvisited))

	want := "#####\n#III#\n#III#\n#####\nOOOOO\n"
	assert.Equal(t, want, res.Labels.Render(region.Label.Glyph))
}

// squeezePath is an 8×6 loop with a zero-width notch rising from the bottom
// edge between columns 3 and 4 into a two-cell chamber.
//
//	# # # # # # # #
//	# I I I I I I #
//	# I # # # # I #
//	# I # O O # I #
//	# I # # # # I #
//	# # # # # # # #
//
// The notch walls at (3,4)/(4,4) and (3,5)/(4,5) touch but are not joined,
// so the chamber is reachable from outside.
var squeezePath = []grid.Point{
	{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 2, Y: 0}, {X: 3, Y: 0}, {X: 4, Y: 0}, {X: 5, Y: 0}, {X: 6, Y: 0}, {X: 7, Y: 0},
	{X: 7, Y: 1}, {X: 7, Y: 2}, {X: 7, Y: 3}, {X: 7, Y: 4}, {X: 7, Y: 5},
	{X: 6, Y: 5}, {X: 5, Y: 5}, {X: 4, Y: 5},
	{X: 4, Y: 4}, {X: 5, Y: 4}, {X: 5, Y: 3}, {X: 5, Y: 2}, {X: 4, Y: 2}, {X: 3, Y: 2}, {X: 2, Y: 2}, {X: 2, Y: 3}, {X: 2, Y: 4}, {X: 3, Y: 4},
	{X: 3, Y: 5}, {X: 2, Y: 5}, {X: 1, Y: 5}, {X: 0, Y: 5},
	{X: 0, Y: 4}, {X: 0, Y: 3}, {X: 0, Y: 2}, {X: 0, Y: 1},
}

// TestClassify_DiagonalSqueeze checks that the squeezed chamber is Outside.
func TestClassify_DiagonalSqueeze(t *testing.T) {
	bounds, _ := grid.Filled(8, 6, 0)
	loop, link, err := region.FromCycle(squeezePath)
	require.NoError(t, err)

	res, err := region.Classify(bounds, loop, link)
	require.NoError(t, err)
	assert.Equal(t, 34, res.Count(region.Boundary))
	assert.Equal(t, 12, res.Count(region.Enclosed))
	assert.Equal(t, []grid.Point{{X: 3, Y: 3}, {X: 4, Y: 3}}, res.Cells(region.Outside))
}

// TestClassify_NilLinkJoinsEverything shows the single-resolution reading:
// with every adjacent pair joined, the notch seals and the chamber is Enclosed.
func TestClassify_NilLinkJoinsEverything(t *testing.T) {
	bounds, _ := grid.Filled(8, 6, 0)
	loop, _, err := region.FromCycle(squeezePath)
	require.NoError(t, err)

	res, err := region.Classify(bounds, loop, nil)
	require.NoError(t, err)
	assert.Equal(t, 14, res.Count(region.Enclosed))
	assert.Equal(t, 0, res.Count(region.Outside))
}

// TestClassify_Errors covers invalid inputs.
func TestClassify_Errors(t *testing.T) {
	_, err := region.Classify(nil, nil, nil)
	assert.ErrorIs(t, err, region.ErrNilBounds)

	bounds, _ := grid.Filled(2, 2, 0)
	loop, link, err := region.FromCycle(rectangle(3, 3))
	require.NoError(t, err)
	_, err = region.Classify(bounds, loop, link)
	assert.ErrorIs(t, err, grid.ErrOutOfBounds)

	_, _, err = region.FromCycle([]grid.Point{{X: 0, Y: 0}, {X: 1, Y: 0}})
	assert.ErrorIs(t, err, region.ErrShortCycle)

	_, _, err = region.FromCycle([]grid.Point{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 1, Y: 1}, {X: 0, Y: 2}})
	assert.ErrorIs(t, err, region.ErrBrokenCycle)
}

// TestClassify_EmptyLoop labels every cell Outside.
func TestClassify_EmptyLoop(t *testing.T) {
	bounds, _ := grid.Filled(3, 2, 0)
	res, err := region.Classify(bounds, map[grid.Point]struct{}{}, nil)
	require.NoError(t, err)
	assert.Equal(t, 6, res.Count(region.Outside))
	assert.Equal(t, "Outside", region.Outside.String())
}
