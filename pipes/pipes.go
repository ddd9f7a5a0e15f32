// Package pipes traces the single closed loop of connected pipe tiles that
// passes through a start tile, and measures it.
//
// Tiles:
//
//	|  vertical        -  horizontal
//	L  north-east      J  north-west
//	7  south-west      F  south-east
//	.  ground          S  start (shape inferred from its neighbors)
//
// Two adjacent tiles are linked when each opens towards the other.
package pipes

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/gridlab/grid"
	"github.com/katalvlaran/gridlab/region"
)

// Sentinel errors for pipe maps.
var (
	// ErrNoStart indicates the map has no 'S' tile.
	ErrNoStart = errors.New("pipes: no start tile")
	// ErrMultipleStarts indicates more than one 'S' tile.
	ErrMultipleStarts = errors.New("pipes: more than one start tile")
	// ErrAmbiguousStart indicates that no shape, or more than one, lets the
	// start tile close a loop.
	ErrAmbiguousStart = errors.New("pipes: start tile must close exactly one loop")
	// ErrUnknownTile indicates a rune that is not a pipe tile.
	ErrUnknownTile = errors.New("pipes: unknown tile")
)

// Pipe is the closed set of tile kinds.
type Pipe uint8

const (
	// Ground has no openings.
	Ground Pipe = iota
	// Vertical connects north and south ('|').
	Vertical
	// Horizontal connects east and west ('-').
	Horizontal
	// NorthEast connects north and east ('L').
	NorthEast
	// NorthWest connects north and west ('J').
	NorthWest
	// SouthWest connects south and west ('7').
	SouthWest
	// SouthEast connects south and east ('F').
	SouthEast
	// Start is the unresolved 'S' tile; Parse replaces it with a real shape.
	Start
)

// openings is indexed by Pipe, then by grid.Direction (Up, Right, Down, Left).
var openings = [...][4]bool{
	Ground:     {false, false, false, false},
	Vertical:   {true, false, true, false},
	Horizontal: {false, true, false, true},
	NorthEast:  {true, true, false, false},
	NorthWest:  {true, false, false, true},
	SouthWest:  {false, false, true, true},
	SouthEast:  {false, true, true, false},
	Start:      {true, true, true, true},
}

// Opens reports whether p has an opening towards d.
func (p Pipe) Opens(d grid.Direction) bool {
	if int(p) >= len(openings) || !d.Valid() {
		return false
	}

	return openings[p][d]
}

// Decode maps an input rune to its Pipe.
func Decode(r rune) (Pipe, error) {
	switch r {
	case '|':
		return Vertical, nil
	case '-':
		return Horizontal, nil
	case 'L':
		return NorthEast, nil
	case 'J':
		return NorthWest, nil
	case '7':
		return SouthWest, nil
	case 'F':
		return SouthEast, nil
	case '.':
		return Ground, nil
	case 'S':
		return Start, nil
	default:
		return Ground, fmt.Errorf("%w: %q", ErrUnknownTile, r)
	}
}

// Rune returns the input glyph of p.
func (p Pipe) Rune() rune {
	switch p {
	case Vertical:
		return '|'
	case Horizontal:
		return '-'
	case NorthEast:
		return 'L'
	case NorthWest:
		return 'J'
	case SouthWest:
		return '7'
	case SouthEast:
		return 'F'
	case Start:
		return 'S'
	default:
		return '.'
	}
}

// shapeOf returns the pipe opening exactly towards a and b.
func shapeOf(a, b grid.Direction) (Pipe, bool) {
	for p := Vertical; p <= SouthEast; p++ {
		if p.Opens(a) && p.Opens(b) {
			return p, true
		}
	}

	return Ground, false
}

// Map is a parsed pipe field with the start tile resolved to its real shape.
type Map struct {
	tiles *grid.Grid[Pipe]
	start grid.Point
}

// Parse reads a pipe field and resolves the start tile's shape.
//
// Every pair of neighbors opening towards the start is tried as the start's
// shape; stray pipes pointing at the start are ignored as long as exactly one
// pair closes a loop back onto it.
//
// Returns grid.ErrMalformedInput for unknown tiles or ragged lines,
// ErrNoStart / ErrMultipleStarts for a missing or repeated 'S', and
// ErrAmbiguousStart if no pair, or more than one, closes a loop.
func Parse(text string) (*Map, error) {
	tiles, err := grid.Parse(text, Decode)
	if err != nil {
		return nil, err
	}
	isStart := func(p Pipe) bool { return p == Start }
	switch tiles.Count(isStart) {
	case 0:
		return nil, ErrNoStart
	case 1:
	default:
		return nil, ErrMultipleStarts
	}
	start, _ := tiles.Find(isStart)

	var dirs []grid.Direction
	for _, n := range tiles.Neighbors(start) {
		if tiles.At(n.Point).Opens(n.Dir.Opposite()) {
			dirs = append(dirs, n.Dir)
		}
	}

	var found *Map
	closing := 0
	for i := 0; i < len(dirs); i++ {
		for j := i + 1; j < len(dirs); j++ {
			shape, _ := shapeOf(dirs[i], dirs[j])
			resolved, err := tiles.With(start, shape)
			if err != nil {
				return nil, err
			}
			m := &Map{tiles: resolved, start: start}
			if m.closes(dirs[i]) {
				found = m
				closing++
			}
		}
	}
	if closing != 1 {
		return nil, fmt.Errorf("%w: start %v links to %d neighbors, %d shapes close a loop",
			ErrAmbiguousStart, start, len(dirs), closing)
	}

	return found, nil
}

// closes follows the pipe leaving the start towards d and reports whether it
// returns to the start without dead-ending.
// Time: O(L) for a path of L cells, capped at W·H steps.
func (m *Map) closes(d grid.Direction) bool {
	cur, heading := m.start, d
	for steps := 0; steps < m.tiles.Width()*m.tiles.Height(); steps++ {
		next, ok := m.tiles.Step(cur, heading)
		if !ok || !m.Linked(cur, next) {
			return false
		}
		if next == m.start {
			return true
		}
		cur = next
		for _, out := range grid.Directions {
			if out != heading.Opposite() && m.tiles.At(cur).Opens(out) {
				heading = out
				break
			}
		}
	}

	return false
}

// Start returns the start coordinate.
func (m *Map) Start() grid.Point { return m.start }

// Tiles returns the resolved tile grid.
func (m *Map) Tiles() *grid.Grid[Pipe] { return m.tiles }

// Linked reports whether adjacent cells a and b are joined by pipe openings.
func (m *Map) Linked(a, b grid.Point) bool {
	if !m.tiles.InBounds(a) || !m.tiles.InBounds(b) {
		return false
	}
	for _, d := range grid.Directions {
		if a.Move(d) == b {
			return m.tiles.At(a).Opens(d) && m.tiles.At(b).Opens(d.Opposite())
		}
	}

	return false
}

// Loop walks the pipes linked to the start tile breadth-first and returns
// each loop cell's step distance from the start.
// Time and memory: O(L) for a loop of L cells.
func (m *Map) Loop() map[grid.Point]int {
	dist := map[grid.Point]int{m.start: 0}
	queue := []grid.Point{m.start}
	for qi := 0; qi < len(queue); qi++ {
		u := queue[qi]
		for _, n := range m.tiles.Neighbors(u) {
			if _, seen := dist[n.Point]; seen || !m.Linked(u, n.Point) {
				continue
			}
			dist[n.Point] = dist[u] + 1
			queue = append(queue, n.Point)
		}
	}

	return dist
}

// Furthest returns the largest step distance from the start to any loop cell.
func (m *Map) Furthest() int {
	best := 0
	for _, d := range m.Loop() {
		best = max(best, d)
	}

	return best
}

// Enclosed classifies every tile against the loop and returns the number of
// tiles the loop encloses. Tiles that merely sit between two touching pipes
// are reachable from outside and are not counted.
func (m *Map) Enclosed() (int, error) {
	res, err := m.Classify()
	if err != nil {
		return 0, err
	}

	return res.Count(region.Enclosed), nil
}

// Classify labels every tile Boundary, Enclosed or Outside relative to the loop.
func (m *Map) Classify() (*region.Result, error) {
	dist := m.Loop()
	loop := make(map[grid.Point]struct{}, len(dist))
	for p := range dist {
		loop[p] = struct{}{}
	}

	return region.Classify(m.tiles, loop, m.Linked)
}
