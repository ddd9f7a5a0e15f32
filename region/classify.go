package region

import (
	"fmt"

	"github.com/katalvlaran/gridlab/grid"
)

// Classify labels every cell of a bounds-sized grid as Boundary (in loop),
// Outside (reachable from the border without crossing a linked loop segment),
// or Enclosed.
//
// Behavior:
//  1. Build an overlay of (2W+1)×(2H+1) nodes: original cell (x,y) sits at
//     (2x+1, 2y+1); the nodes between cells stand for the gaps between them.
//  2. Mark each loop cell's node Boundary, and the gap node between two
//     adjacent loop cells Boundary when link reports them joined.
//  3. Flood from the overlay's outer ring through Unvisited nodes, marking Outside.
//  4. Original cells whose node stayed Unvisited are Enclosed.
//
// The doubling is what lets the flood slip between two parallel loop segments
// that touch without being joined; a single-resolution fill would report those
// cells as enclosed.
//
// Returns ErrNilBounds if b is nil and grid.ErrOutOfBounds for loop cells
// outside b. A nil link joins every pair of adjacent loop cells.
//
// Time:   O(W·H).
// Memory: O(W·H) for the overlay.
func Classify(b grid.Bounds, loop map[grid.Point]struct{}, link LinkFunc) (*Result, error) {
	if b == nil {
		return nil, ErrNilBounds
	}
	w, h := b.Width(), b.Height()
	ow, oh := 2*w+1, 2*h+1
	at := func(q grid.Point) int { return q.Y*ow + q.X }
	marks := make([]Label, ow*oh)

	// 1) Boundary nodes for loop cells and the joints between linked neighbors.
	for p := range loop {
		if p.X < 0 || p.X >= w || p.Y < 0 || p.Y >= h {
			return nil, fmt.Errorf("%w: loop cell %v in %dx%d grid", grid.ErrOutOfBounds, p, w, h)
		}
		o := toOverlay(p)
		marks[at(o)] = Boundary
		for _, d := range [2]grid.Direction{grid.Right, grid.Down} {
			q := p.Move(d)
			if _, ok := loop[q]; !ok {
				continue
			}
			if link != nil && !link(p, q) {
				continue
			}
			marks[at(o.Move(d))] = Boundary
		}
	}

	// 2) Flood the overlay from its outer ring; the ring never holds loop nodes.
	overlay, err := grid.FromSlice(ow, oh, marks)
	if err != nil {
		return nil, err
	}
	reached := overlay.Flood(overlay.Border(), func(_ grid.Point, l Label) bool {
		return l == Unvisited
	})
	for _, q := range reached {
		marks[at(q)] = Outside
	}

	// 3) Project back onto original cells.
	res := &Result{}
	rows := make([][]Label, h)
	for y := 0; y < h; y++ {
		rows[y] = make([]Label, w)
		for x := 0; x < w; x++ {
			l := marks[at(toOverlay(grid.Point{X: x, Y: y}))]
			if l == Unvisited {
				l = Enclosed
			}
			rows[y][x] = l
			res.counts[l]++
		}
	}
	res.Labels, err = grid.New(rows)
	if err != nil {
		return nil, err
	}

	return res, nil
}

// toOverlay maps an original cell to its node in the doubled overlay.
func toOverlay(p grid.Point) grid.Point {
	return grid.Point{X: 2*p.X + 1, Y: 2*p.Y + 1}
}

// FromCycle turns an ordered closed path (the last point links back to the
// first) into a loop set and a LinkFunc joining only consecutive points.
// Returns ErrShortCycle for fewer than four points and ErrBrokenCycle when
// consecutive points are not orthogonal neighbors.
func FromCycle(path []grid.Point) (map[grid.Point]struct{}, LinkFunc, error) {
	if len(path) < 4 {
		return nil, nil, fmt.Errorf("%w: got %d", ErrShortCycle, len(path))
	}
	type edge struct{ a, b grid.Point }
	loop := make(map[grid.Point]struct{}, len(path))
	links := make(map[edge]struct{}, len(path))
	for i, p := range path {
		q := path[(i+1)%len(path)]
		if !adjacent(p, q) {
			return nil, nil, fmt.Errorf("%w: %v and %v", ErrBrokenCycle, p, q)
		}
		loop[p] = struct{}{}
		links[edge{p, q}] = struct{}{}
		links[edge{q, p}] = struct{}{}
	}

	return loop, func(a, b grid.Point) bool {
		_, ok := links[edge{a, b}]
		return ok
	}, nil
}

func adjacent(p, q grid.Point) bool {
	dx, dy := p.X-q.X, p.Y-q.Y

	return dx*dx+dy*dy == 1
}
