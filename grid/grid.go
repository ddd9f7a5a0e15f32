package grid

import (
	"fmt"
	"iter"
	"strings"
)

// New constructs a Grid from a non-empty, rectangular 2D slice indexed [y][x].
// It deep-copies the input so later changes to rows are not observed.
// Returns ErrEmptyGrid if rows has no rows or no columns,
// ErrNonRectangular if any row length differs.
// Complexity: O(W×H) time and memory.
func New[T any](rows [][]T) (*Grid[T], error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	h, w := len(rows), len(rows[0])
	cells := make([]T, 0, w*h)
	for y, row := range rows {
		if len(row) != w {
			return nil, fmt.Errorf("%w: row %d has %d cells, want %d", ErrNonRectangular, y, len(row), w)
		}
		cells = append(cells, row...)
	}

	return &Grid[T]{width: w, height: h, cells: cells}, nil
}

// Filled constructs a width×height Grid with every cell set to v.
func Filled[T any](width, height int, v T) (*Grid[T], error) {
	if width <= 0 || height <= 0 {
		return nil, ErrEmptyGrid
	}
	cells := make([]T, width*height)
	for i := range cells {
		cells[i] = v
	}

	return &Grid[T]{width: width, height: height, cells: cells}, nil
}

// FromSlice constructs a width×height Grid from row-major cells, copying them.
// Returns ErrEmptyGrid for non-positive dimensions and ErrNonRectangular when
// len(cells) != width*height.
func FromSlice[T any](width, height int, cells []T) (*Grid[T], error) {
	if width <= 0 || height <= 0 {
		return nil, ErrEmptyGrid
	}
	if len(cells) != width*height {
		return nil, fmt.Errorf("%w: %d cells for %dx%d grid", ErrNonRectangular, len(cells), width, height)
	}
	own := make([]T, len(cells))
	copy(own, cells)

	return &Grid[T]{width: width, height: height, cells: own}, nil
}

// Width returns the number of columns.
func (g *Grid[T]) Width() int { return g.width }

// Height returns the number of rows.
func (g *Grid[T]) Height() int { return g.height }

// InBounds reports whether p lies within the grid boundaries.
// Complexity: O(1).
func (g *Grid[T]) InBounds(p Point) bool {
	return p.X >= 0 && p.X < g.width && p.Y >= 0 && p.Y < g.height
}

// Get returns the cell at p, or ErrOutOfBounds if either coordinate is invalid.
func (g *Grid[T]) Get(p Point) (T, error) {
	if !g.InBounds(p) {
		var zero T
		return zero, fmt.Errorf("%w: %v in %dx%d grid", ErrOutOfBounds, p, g.width, g.height)
	}

	return g.cells[g.Index(p)], nil
}

// At returns the cell at p without a bounds check.
// Callers must have established InBounds(p); otherwise At panics.
func (g *Grid[T]) At(p Point) T {
	return g.cells[g.Index(p)]
}

// Index returns the row-major index of p.
func (g *Grid[T]) Index(p Point) int {
	return p.Y*g.width + p.X
}

// Coordinate converts a row-major index back to a Point.
func (g *Grid[T]) Coordinate(i int) Point {
	return Point{X: i % g.width, Y: i / g.width}
}

// Step returns the cell adjacent to p in direction d and whether it is in bounds.
func (g *Grid[T]) Step(p Point, d Direction) (Point, bool) {
	q := p.Move(d)

	return q, g.InBounds(q)
}

// Neighbors returns up to four in-bounds cells adjacent to p, clockwise from Up.
// Out-of-bounds neighbors are omitted; p itself need not be checked by the caller.
// Complexity: O(1).
func (g *Grid[T]) Neighbors(p Point) []Neighbor {
	out := make([]Neighbor, 0, len(Directions))
	for _, d := range Directions {
		if q, ok := g.Step(p, d); ok {
			out = append(out, Neighbor{Point: q, Dir: d})
		}
	}

	return out
}

// With returns a copy of g whose cell at p is v. g itself is unchanged.
func (g *Grid[T]) With(p Point, v T) (*Grid[T], error) {
	if !g.InBounds(p) {
		return nil, fmt.Errorf("%w: %v in %dx%d grid", ErrOutOfBounds, p, g.width, g.height)
	}
	cells := make([]T, len(g.cells))
	copy(cells, g.cells)
	cells[g.Index(p)] = v

	return &Grid[T]{width: g.width, height: g.height, cells: cells}, nil
}

// All yields every cell in row-major order together with its coordinate.
func (g *Grid[T]) All() iter.Seq2[Point, T] {
	return func(yield func(Point, T) bool) {
		for i, v := range g.cells {
			if !yield(g.Coordinate(i), v) {
				return
			}
		}
	}
}

// Find returns the first cell in row-major order satisfying match.
func (g *Grid[T]) Find(match func(T) bool) (Point, bool) {
	for i, v := range g.cells {
		if match(v) {
			return g.Coordinate(i), true
		}
	}

	return Point{}, false
}

// Count returns how many cells satisfy match.
func (g *Grid[T]) Count(match func(T) bool) int {
	n := 0
	for _, v := range g.cells {
		if match(v) {
			n++
		}
	}

	return n
}

// Map builds a new grid of the same shape by applying fn to every cell.
func Map[T, U any](g *Grid[T], fn func(Point, T) U) *Grid[U] {
	cells := make([]U, len(g.cells))
	for i, v := range g.cells {
		cells[i] = fn(g.Coordinate(i), v)
	}

	return &Grid[U]{width: g.width, height: g.height, cells: cells}
}

// Render draws g one line per row using glyph for each cell.
func (g *Grid[T]) Render(glyph func(T) rune) string {
	var b strings.Builder
	b.Grow((g.width + 1) * g.height)
	for y := 0; y < g.height; y++ {
		for x := 0; x < g.width; x++ {
			b.WriteRune(glyph(g.cells[y*g.width+x]))
		}
		b.WriteByte('\n')
	}

	return b.String()
}
