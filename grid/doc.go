// Package grid provides an immutable, rectangular 2D surface of typed cells
// with four-directional adjacency.
//
// What:
//
//   - Grid[T] wraps a row-major slice of cells; it is never mutated after
//     construction. With returns a modified copy instead.
//   - Point and Direction address cells and describe orthogonal movement.
//   - Parse turns a text block into a Grid through a caller-supplied rune decoder.
//   - Flood performs an iterative breadth-first fill from one or more seeds.
//
// Why:
//
//   - Every grid puzzle solver in this module (pipes, beams, crucibles,
//     platforms) shares the same bounds checks and neighbor enumeration.
//   - Immutability lets independent workers read the same Grid concurrently
//     without locking.
//
// Complexity:
//
//   - Get, InBounds, Step: O(1).
//   - Neighbors:           O(1) (at most four results).
//   - Parse, New:          O(W×H) time and memory.
//   - Flood:               O(W×H) time and memory.
//
// Errors:
//
//   - ErrEmptyGrid: input has no rows or no columns.
//   - ErrNonRectangular: rows have differing lengths.
//   - ErrOutOfBounds: coordinate lies outside the grid.
//   - ErrMalformedInput: text could not be decoded into cells.
package grid
