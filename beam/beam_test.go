package beam_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/gridlab/beam"
	"github.com/katalvlaran/gridlab/grid"
)

const contraption = `
.|...\....
|.-.\.....
.....|-...
........|.
..........
.........\
..../.\\..
.-.-/..|..
.|....-|.\
..//.|....
`

func TestEnergized_Sample(t *testing.T) {
	c, err := beam.Parse(contraption)
	require.NoError(t, err)
	got := c.Energized(beam.Light{Pos: grid.Point{}, Dir: grid.Right})
	assert.Equal(t, 46, got)
}

func TestEnergized_StartTileDeflects(t *testing.T) {
	c, err := beam.Parse("\\..\n...\n...")
	require.NoError(t, err)
	assert.Equal(t, 3, c.Energized(beam.Light{Dir: grid.Right}))
}

func TestEnergized_MirrorLoopTerminates(t *testing.T) {
	c, err := beam.Parse("/.\\\n...\n\\./")
	require.NoError(t, err)
	got := c.Energized(beam.Light{Pos: grid.Point{X: 1, Y: 0}, Dir: grid.Right})
	assert.Equal(t, 8, got)
}

func TestEnergized_OutOfBounds(t *testing.T) {
	c, err := beam.Parse("..")
	require.NoError(t, err)
	assert.Zero(t, c.Energized(beam.Light{Pos: grid.Point{X: 5, Y: 0}, Dir: grid.Left}))
}

func TestDeflect(t *testing.T) {
	cases := []struct {
		tile beam.Tile
		in   grid.Direction
		want []grid.Direction
	}{
		{beam.Empty, grid.Left, []grid.Direction{grid.Left}},
		{beam.MirrorSlash, grid.Right, []grid.Direction{grid.Up}},
		{beam.MirrorSlash, grid.Down, []grid.Direction{grid.Left}},
		{beam.MirrorBackslash, grid.Right, []grid.Direction{grid.Down}},
		{beam.MirrorBackslash, grid.Up, []grid.Direction{grid.Left}},
		{beam.SplitVertical, grid.Up, []grid.Direction{grid.Up}},
		{beam.SplitVertical, grid.Left, []grid.Direction{grid.Up, grid.Down}},
		{beam.SplitHorizontal, grid.Right, []grid.Direction{grid.Right}},
		{beam.SplitHorizontal, grid.Down, []grid.Direction{grid.Left, grid.Right}},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, beam.Deflect(tc.tile, tc.in), "tile %d heading %v", tc.tile, tc.in)
	}
}

func TestEntries(t *testing.T) {
	c, err := beam.Parse("...\n...")
	require.NoError(t, err)
	entries := c.Entries()
	assert.Len(t, entries, 2*(3+2))
	assert.Equal(t, beam.Light{Pos: grid.Point{X: 0, Y: 0}, Dir: grid.Down}, entries[0])
	assert.Equal(t, beam.Light{Pos: grid.Point{X: 0, Y: 1}, Dir: grid.Right}, entries[len(entries)-1])
}

func TestMaxEnergized(t *testing.T) {
	c, err := beam.Parse(contraption)
	require.NoError(t, err)

	for _, workers := range []int{0, 1, 4} {
		best, err := c.MaxEnergized(context.Background(), workers)
		require.NoError(t, err)
		assert.Equal(t, 51, best.Energized, "workers=%d", workers)
		assert.Equal(t, 51, c.Energized(best.From))
	}
}

func TestMaxEnergized_Errors(t *testing.T) {
	c, err := beam.Parse(contraption)
	require.NoError(t, err)

	_, err = c.MaxEnergized(context.Background(), -1)
	assert.ErrorIs(t, err, beam.ErrBadWorkers)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = c.MaxEnergized(ctx, 2)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestParse_UnknownTile(t *testing.T) {
	_, err := beam.Parse("..x")
	assert.ErrorIs(t, err, grid.ErrMalformedInput)
	assert.ErrorIs(t, err, beam.ErrUnknownTile)
}
