// Package platform simulates rounded rocks rolling on a tilting platform.
//
// Rounded rocks ('O') roll as far as they can in the tilt direction, stopping
// at the platform edge, a cube rock ('#') or another rounded rock. Cube rocks
// never move, so every Platform derived from a parsed one shares the same
// immutable wall grid and differs only in its rounded-rock bitset.
package platform

import (
	"encoding/binary"
	"errors"
	"fmt"
	"math/bits"

	"github.com/katalvlaran/gridlab/cycle"
	"github.com/katalvlaran/gridlab/grid"
)

// ErrUnknownCell indicates a rune other than 'O', '#' or '.'.
var ErrUnknownCell = errors.New("platform: unknown cell")

// cell is the parsed content of one position.
type cell uint8

const (
	open cell = iota
	wall
	rock
)

func decode(r rune) (cell, error) {
	switch r {
	case '.':
		return open, nil
	case '#':
		return wall, nil
	case 'O':
		return rock, nil
	default:
		return open, fmt.Errorf("%w: %q", ErrUnknownCell, r)
	}
}

// Platform is one immutable arrangement of rounded rocks.
type Platform struct {
	walls *grid.Grid[bool] // shared, never written after Parse
	rocks []uint64         // bit i set when cell index i holds a rounded rock
}

// Parse reads a platform layout. Unknown runes and ragged lines are reported
// as grid.ErrMalformedInput.
func Parse(text string) (*Platform, error) {
	cells, err := grid.Parse(text, decode)
	if err != nil {
		return nil, err
	}
	walls := grid.Map(cells, func(_ grid.Point, c cell) bool { return c == wall })
	p := &Platform{walls: walls, rocks: newBitset(walls)}
	for pt, c := range cells.All() {
		if c == rock {
			p.set(walls.Index(pt))
		}
	}

	return p, nil
}

func newBitset(g *grid.Grid[bool]) []uint64 {
	return make([]uint64, (g.Width()*g.Height()+63)/64)
}

func (p *Platform) has(i int) bool { return p.rocks[i/64]&(1<<(i%64)) != 0 }
func (p *Platform) set(i int)      { p.rocks[i/64] |= 1 << (i % 64) }

// Width returns the number of columns.
func (p *Platform) Width() int { return p.walls.Width() }

// Height returns the number of rows.
func (p *Platform) Height() int { return p.walls.Height() }

// Rocks returns the number of rounded rocks; tilting never changes it.
func (p *Platform) Rocks() int {
	n := 0
	for _, w := range p.rocks {
		n += bits.OnesCount64(w)
	}

	return n
}

// laneCell returns the k-th cell of lane i counted from the edge rocks roll towards.
func (p *Platform) laneCell(d grid.Direction, i, k int) grid.Point {
	w, h := p.walls.Width(), p.walls.Height()
	switch d {
	case grid.Up:
		return grid.Point{X: i, Y: k}
	case grid.Down:
		return grid.Point{X: i, Y: h - 1 - k}
	case grid.Left:
		return grid.Point{X: k, Y: i}
	default:
		return grid.Point{X: w - 1 - k, Y: i}
	}
}

// Tilt returns the platform after every rounded rock has rolled towards d.
// An invalid direction returns p unchanged.
//
// Each lane parallel to d is scanned from its leading edge, keeping the
// next free slot; a cube rock moves that slot just past itself.
// Time: O(W·H).
func (p *Platform) Tilt(d grid.Direction) *Platform {
	if !d.Valid() {
		return p
	}
	lanes, length := p.walls.Height(), p.walls.Width()
	if !d.Horizontal() {
		lanes, length = length, lanes
	}

	out := &Platform{walls: p.walls, rocks: newBitset(p.walls)}
	for i := 0; i < lanes; i++ {
		free := 0
		for k := 0; k < length; k++ {
			pt := p.laneCell(d, i, k)
			switch {
			case p.walls.At(pt):
				free = k + 1
			case p.has(p.walls.Index(pt)):
				out.set(p.walls.Index(p.laneCell(d, i, free)))
				free++
			}
		}
	}

	return out
}

// Spin tilts north, west, south and east in that order.
func (p *Platform) Spin() *Platform {
	return spin(p)
}

var spin = cycle.Compose[*Platform](
	func(p *Platform) *Platform { return p.Tilt(grid.Up) },
	func(p *Platform) *Platform { return p.Tilt(grid.Left) },
	func(p *Platform) *Platform { return p.Tilt(grid.Down) },
	func(p *Platform) *Platform { return p.Tilt(grid.Right) },
)

// Load returns the total load on the north support beams: each rounded rock
// weighs the number of rows from it to the south edge, inclusive.
func (p *Platform) Load() int {
	h, load := p.walls.Height(), 0
	for pt := range p.walls.All() {
		if p.has(p.walls.Index(pt)) {
			load += h - pt.Y
		}
	}

	return load
}

// Encode returns the canonical byte form of the rounded-rock arrangement.
// Walls are omitted since all platforms derived from one Parse share them.
func (p *Platform) Encode() []byte {
	out := make([]byte, 0, 8*len(p.rocks))
	for _, w := range p.rocks {
		out = binary.LittleEndian.AppendUint64(out, w)
	}

	return out
}

// SpinLoad returns the north load after n spin cycles together with the
// period the simulator detected, without simulating every cycle.
func (p *Platform) SpinLoad(n uint64) (int, cycle.Cycle, error) {
	sim, err := cycle.New(spin, (*Platform).Encode)
	if err != nil {
		return 0, cycle.Cycle{}, err
	}
	final, c := sim.Run(p, n)

	return final.Load(), c, nil
}

// String renders the platform in its input format.
func (p *Platform) String() string {
	view := grid.Map(p.walls, func(pt grid.Point, isWall bool) rune {
		switch {
		case isWall:
			return '#'
		case p.has(p.walls.Index(pt)):
			return 'O'
		default:
			return '.'
		}
	})

	return view.Render(func(r rune) rune { return r })
}
