package grid

// Flood returns every cell reachable from starts by orthogonal steps through
// cells for which accept returns true. Starts that are out of bounds or not
// accepted are skipped. The result lists cells in breadth-first order.
//
// The traversal uses an explicit queue slice rather than recursion, so its
// depth is bounded only by memory.
//
// Time:   O(W·H).
// Memory: O(W·H) for visited flags and output.
func (g *Grid[T]) Flood(starts []Point, accept func(Point, T) bool) []Point {
	seen := make([]bool, len(g.cells))
	queue := make([]Point, 0, len(starts))
	for _, s := range starts {
		if !g.InBounds(s) {
			continue
		}
		i := g.Index(s)
		if seen[i] || !accept(s, g.cells[i]) {
			continue
		}
		seen[i] = true
		queue = append(queue, s)
	}

	for qi := 0; qi < len(queue); qi++ {
		u := queue[qi]
		for _, d := range Directions {
			v, ok := g.Step(u, d)
			if !ok {
				continue
			}
			vi := g.Index(v)
			if seen[vi] || !accept(v, g.cells[vi]) {
				continue
			}
			seen[vi] = true
			queue = append(queue, v)
		}
	}

	return queue
}

// Border returns every cell on the outer edge of g, each exactly once,
// top row first, then bottom row, then the left and right columns.
func (g *Grid[T]) Border() []Point {
	out := make([]Point, 0, 2*(g.width+g.height))
	for x := 0; x < g.width; x++ {
		out = append(out, Point{X: x, Y: 0})
	}
	if g.height > 1 {
		for x := 0; x < g.width; x++ {
			out = append(out, Point{X: x, Y: g.height - 1})
		}
	}
	for y := 1; y < g.height-1; y++ {
		out = append(out, Point{X: 0, Y: y})
		if g.width > 1 {
			out = append(out, Point{X: g.width - 1, Y: y})
		}
	}

	return out
}
