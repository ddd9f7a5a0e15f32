// Package beam traces light beams through a contraption of mirrors and
// splitters and counts the tiles they energize.
//
// Tiles:
//
//	.  empty space, beams pass straight through
//	/  mirror, turns Right↔Up and Left↔Down
//	\  mirror, turns Right↔Down and Left↔Up
//	|  splitter, passes vertical beams, splits horizontal ones Up and Down
//	-  splitter, passes horizontal beams, splits vertical ones Left and Right
//
// A beam is a (position, direction) state. Beams never interact, so the
// simulation is a breadth-first walk over states with a visited set; loops
// between mirrors terminate because each state is expanded once.
package beam

import (
	"context"
	"errors"
	"fmt"
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/gridlab/grid"
)

// Sentinel errors for contraptions.
var (
	// ErrUnknownTile indicates a rune that is not a contraption tile.
	ErrUnknownTile = errors.New("beam: unknown tile")
	// ErrBadWorkers indicates a negative worker limit.
	ErrBadWorkers = errors.New("beam: worker limit cannot be negative")
)

// Tile is the closed set of contraption tiles.
type Tile uint8

const (
	// Empty lets beams pass straight through ('.').
	Empty Tile = iota
	// MirrorSlash reflects Right to Up and Left to Down ('/').
	MirrorSlash
	// MirrorBackslash reflects Right to Down and Left to Up ('\').
	MirrorBackslash
	// SplitVertical splits horizontal beams Up and Down ('|').
	SplitVertical
	// SplitHorizontal splits vertical beams Left and Right ('-').
	SplitHorizontal
)

// Decode maps an input rune to its Tile.
func Decode(r rune) (Tile, error) {
	switch r {
	case '.':
		return Empty, nil
	case '/':
		return MirrorSlash, nil
	case '\\':
		return MirrorBackslash, nil
	case '|':
		return SplitVertical, nil
	case '-':
		return SplitHorizontal, nil
	default:
		return Empty, fmt.Errorf("%w: %q", ErrUnknownTile, r)
	}
}

// Light is a beam front: the tile it occupies and the way it travels.
type Light struct {
	Pos grid.Point
	Dir grid.Direction
}

// Deflect returns the directions a beam travelling in d leaves tile t with.
func Deflect(t Tile, d grid.Direction) []grid.Direction {
	switch t {
	case MirrorSlash:
		// Right→Up, Up→Right, Left→Down, Down→Left.
		if d.Horizontal() {
			return []grid.Direction{d.TurnLeft()}
		}
		return []grid.Direction{d.TurnRight()}
	case MirrorBackslash:
		if d.Horizontal() {
			return []grid.Direction{d.TurnRight()}
		}
		return []grid.Direction{d.TurnLeft()}
	case SplitVertical:
		if d.Horizontal() {
			return []grid.Direction{grid.Up, grid.Down}
		}
	case SplitHorizontal:
		if !d.Horizontal() {
			return []grid.Direction{grid.Left, grid.Right}
		}
	}

	return []grid.Direction{d}
}

// Contraption is an immutable tile layout. It is safe for concurrent use.
type Contraption struct {
	tiles *grid.Grid[Tile]
}

// Parse reads a contraption layout. Unknown tiles and ragged lines are
// reported as grid.ErrMalformedInput.
func Parse(text string) (*Contraption, error) {
	tiles, err := grid.Parse(text, Decode)
	if err != nil {
		return nil, err
	}

	return &Contraption{tiles: tiles}, nil
}

// Width returns the number of columns.
func (c *Contraption) Width() int { return c.tiles.Width() }

// Height returns the number of rows.
func (c *Contraption) Height() int { return c.tiles.Height() }

// Energized returns how many tiles at least one beam passes through when a
// beam enters at from. The tile at from.Pos acts on the entering beam like
// any other tile. An out-of-bounds entry energizes nothing.
//
// Time and memory: O(4·W·H) states.
func (c *Contraption) Energized(from Light) int {
	if !c.tiles.InBounds(from.Pos) || !from.Dir.Valid() {
		return 0
	}
	w := c.tiles.Width()
	stateIndex := func(l Light) int { return c.tiles.Index(l.Pos)*4 + int(l.Dir) }

	seen := make([]bool, w*c.tiles.Height()*4)
	lit := make([]bool, w*c.tiles.Height())
	count := 0

	seen[stateIndex(from)] = true
	queue := []Light{from}
	for qi := 0; qi < len(queue); qi++ {
		l := queue[qi]
		if i := c.tiles.Index(l.Pos); !lit[i] {
			lit[i] = true
			count++
		}
		for _, d := range Deflect(c.tiles.At(l.Pos), l.Dir) {
			q, ok := c.tiles.Step(l.Pos, d)
			if !ok {
				continue
			}
			next := Light{Pos: q, Dir: d}
			if si := stateIndex(next); !seen[si] {
				seen[si] = true
				queue = append(queue, next)
			}
		}
	}

	return count
}

// Entries lists every border tile paired with the inward direction, so a
// corner appears twice. Order: top row, right column, bottom row, left column.
func (c *Contraption) Entries() []Light {
	w, h := c.tiles.Width(), c.tiles.Height()
	out := make([]Light, 0, 2*(w+h))
	for x := 0; x < w; x++ {
		out = append(out, Light{Pos: grid.Point{X: x, Y: 0}, Dir: grid.Down})
	}
	for y := 0; y < h; y++ {
		out = append(out, Light{Pos: grid.Point{X: w - 1, Y: y}, Dir: grid.Left})
	}
	for x := 0; x < w; x++ {
		out = append(out, Light{Pos: grid.Point{X: x, Y: h - 1}, Dir: grid.Up})
	}
	for y := 0; y < h; y++ {
		out = append(out, Light{Pos: grid.Point{X: 0, Y: y}, Dir: grid.Right})
	}

	return out
}

// Best is the winning entry of MaxEnergized.
type Best struct {
	From      Light
	Energized int
}

// MaxEnergized probes every entry from Entries concurrently, with at most
// workers probes in flight (0 means runtime.GOMAXPROCS), and returns the entry
// that energizes the most tiles. Ties go to the earliest entry in Entries
// order. Cancelling ctx stops scheduling new probes and returns ctx.Err().
func (c *Contraption) MaxEnergized(ctx context.Context, workers int) (Best, error) {
	if workers < 0 {
		return Best{}, fmt.Errorf("%w: %d", ErrBadWorkers, workers)
	}
	if workers == 0 {
		workers = runtime.GOMAXPROCS(0)
	}

	entries := c.Entries()
	counts := make([]int, len(entries))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for i, e := range entries {
		if gctx.Err() != nil {
			break
		}
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			counts[i] = c.Energized(e)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return Best{}, err
	}
	if err := ctx.Err(); err != nil {
		return Best{}, err
	}

	best := Best{Energized: -1}
	for i, n := range counts {
		if n > best.Energized {
			best = Best{From: entries[i], Energized: n}
		}
	}

	return best, nil
}
