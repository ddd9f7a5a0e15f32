package pipes_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/gridlab/grid"
	"github.com/katalvlaran/gridlab/pipes"
	"github.com/katalvlaran/gridlab/region"
)

const squareLoop = `
.....
.S-7.
.|.|.
.L-J.
.....
`

// strayPipes surrounds the same square with pipes that never join it.
const strayPipes = `
-L|F7
7S-7|
L|7||
-L-J|
L|-JF
`

const windingLoop = `
..F7.
.FJ|.
SJ.L7
|F--J
LJ...
`

const openPocket = `
...........
.S-------7.
.|F-----7|.
.||.....||.
.||.....||.
.|L-7.F-J|.
.|..|.|..|.
.L--J.L--J.
...........
`

// squeezedPocket closes the gap of openPocket with two touching pipes,
// which still does not seal the pocket.
const squeezedPocket = `
..........
.S------7.
.|F----7|.
.||....||.
.||....||.
.|L-7F-J|.
.|..||..|.
.L--JL--J.
..........
`

// strayIntoStart points an unrelated pipe at the start from the left.
const strayIntoStart = `
.....
-S-7.
.|.|.
.L-J.
.....
`

// twoLoops meets the start with four pipes forming two separate loops.
const twoLoops = `
F7.
LS7
.LJ
`

func TestParse_ResolvesStart(t *testing.T) {
	m, err := pipes.Parse(squareLoop)
	require.NoError(t, err)
	assert.Equal(t, grid.Point{X: 1, Y: 1}, m.Start())
	assert.Equal(t, pipes.SouthEast, m.Tiles().At(m.Start()))

	m, err = pipes.Parse(windingLoop)
	require.NoError(t, err)
	assert.Equal(t, grid.Point{X: 0, Y: 2}, m.Start())
	assert.Equal(t, 'F', m.Tiles().At(m.Start()).Rune())
}

func TestParse_IgnoresStrayPipeAtStart(t *testing.T) {
	m, err := pipes.Parse(strayIntoStart)
	require.NoError(t, err)
	assert.Equal(t, pipes.SouthEast, m.Tiles().At(m.Start()))
	assert.Equal(t, 4, m.Furthest())

	enclosed, err := m.Enclosed()
	require.NoError(t, err)
	assert.Equal(t, 1, enclosed)
	assert.False(t, m.Linked(m.Start(), grid.Point{X: 0, Y: 1}))
}

func TestParse_Errors(t *testing.T) {
	_, err := pipes.Parse("...\n.x.\n...")
	assert.ErrorIs(t, err, grid.ErrMalformedInput)
	assert.ErrorIs(t, err, pipes.ErrUnknownTile)

	_, err = pipes.Parse("F7\nLJ")
	assert.ErrorIs(t, err, pipes.ErrNoStart)

	_, err = pipes.Parse("S7\nLS")
	assert.ErrorIs(t, err, pipes.ErrMultipleStarts)

	_, err = pipes.Parse("...\n.S.\n...")
	assert.ErrorIs(t, err, pipes.ErrAmbiguousStart)

	// Four neighbors open towards the start but every pipe dead-ends.
	_, err = pipes.Parse(".|.\n-S-\n.|.")
	assert.ErrorIs(t, err, pipes.ErrAmbiguousStart)

	// Two shapes each close a loop.
	_, err = pipes.Parse(twoLoops)
	assert.ErrorIs(t, err, pipes.ErrAmbiguousStart)

	// The only candidate shape leads into a dead end.
	_, err = pipes.Parse("S-.\n|..")
	assert.ErrorIs(t, err, pipes.ErrAmbiguousStart)
}

func TestFurthest(t *testing.T) {
	cases := []struct {
		name  string
		input string
		want  int
	}{
		{"square", squareLoop, 4},
		{"stray pipes ignored", strayPipes, 4},
		{"winding", windingLoop, 8},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			m, err := pipes.Parse(tc.input)
			require.NoError(t, err)
			assert.Equal(t, tc.want, m.Furthest())
		})
	}
}

func TestLoop_VisitsOnlyJoinedPipes(t *testing.T) {
	m, err := pipes.Parse(strayPipes)
	require.NoError(t, err)
	loop := m.Loop()
	assert.Len(t, loop, 8)
	assert.Equal(t, 0, loop[m.Start()])
	_, ok := loop[grid.Point{X: 2, Y: 2}]
	assert.False(t, ok, "centre '7' is not part of the loop")
}

func TestEnclosed(t *testing.T) {
	cases := []struct {
		name  string
		input string
		want  int
	}{
		{"square", squareLoop, 1},
		{"stray pipes count as enclosed ground", strayPipes, 1},
		{"open pocket", openPocket, 4},
		{"squeezed pocket", squeezedPocket, 4},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			m, err := pipes.Parse(tc.input)
			require.NoError(t, err)
			got, err := m.Enclosed()
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestClassify_SqueezedCellsAreOutside(t *testing.T) {
	m, err := pipes.Parse(squeezedPocket)
	require.NoError(t, err)
	res, err := m.Classify()
	require.NoError(t, err)

	// Interior of the left lobe, directly below the squeeze.
	assert.Equal(t, region.Enclosed, res.Labels.At(grid.Point{X: 2, Y: 6}))
	// Cells in the middle column between the touching pipes.
	assert.Equal(t, region.Outside, res.Labels.At(grid.Point{X: 4, Y: 3}))
	assert.Equal(t, region.Boundary, res.Labels.At(m.Start()))
}

func TestPipe_Opens(t *testing.T) {
	assert.True(t, pipes.NorthEast.Opens(grid.Up))
	assert.True(t, pipes.NorthEast.Opens(grid.Right))
	assert.False(t, pipes.NorthEast.Opens(grid.Down))
	assert.False(t, pipes.Ground.Opens(grid.Left))
	assert.False(t, pipes.Pipe(99).Opens(grid.Up))
}
