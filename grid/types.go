package grid

import (
	"errors"
	"fmt"
)

// Sentinel errors for grid operations.
var (
	// ErrEmptyGrid indicates the input has no rows or no columns.
	ErrEmptyGrid = errors.New("grid: input must have at least one row and one column")
	// ErrNonRectangular indicates rows of differing lengths.
	ErrNonRectangular = errors.New("grid: all rows must have the same length")
	// ErrOutOfBounds indicates a coordinate outside the grid extents.
	ErrOutOfBounds = errors.New("grid: coordinate out of bounds")
	// ErrMalformedInput indicates text that could not be decoded into cells.
	ErrMalformedInput = errors.New("grid: malformed input")
)

// Point addresses a single cell; X grows to the right, Y grows downwards.
type Point struct {
	X, Y int
}

// Add returns p translated by (dx, dy).
func (p Point) Add(dx, dy int) Point {
	return Point{X: p.X + dx, Y: p.Y + dy}
}

// Move returns the point one step away from p in direction d.
func (p Point) Move(d Direction) Point {
	dx, dy := d.Delta()

	return p.Add(dx, dy)
}

// String formats p as "(x,y)".
func (p Point) String() string {
	return fmt.Sprintf("(%d,%d)", p.X, p.Y)
}

// Direction is one of the four orthogonal headings.
type Direction uint8

const (
	// Up moves towards smaller Y.
	Up Direction = iota
	// Right moves towards larger X.
	Right
	// Down moves towards larger Y.
	Down
	// Left moves towards smaller X.
	Left
)

// Directions lists every heading in clockwise order starting at Up.
var Directions = [4]Direction{Up, Right, Down, Left}

// deltas is indexed by Direction.
var deltas = [4][2]int{{0, -1}, {1, 0}, {0, 1}, {-1, 0}}

// Delta returns the (dx, dy) unit offset for d.
func (d Direction) Delta() (dx, dy int) {
	off := deltas[d&3]

	return off[0], off[1]
}

// Opposite returns the heading rotated by 180 degrees.
func (d Direction) Opposite() Direction { return (d + 2) & 3 }

// TurnRight returns the heading rotated clockwise by 90 degrees.
func (d Direction) TurnRight() Direction { return (d + 1) & 3 }

// TurnLeft returns the heading rotated counter-clockwise by 90 degrees.
func (d Direction) TurnLeft() Direction { return (d + 3) & 3 }

// Horizontal reports whether d is Left or Right.
func (d Direction) Horizontal() bool { return d == Left || d == Right }

// Valid reports whether d is one of the four declared headings.
func (d Direction) Valid() bool { return d <= Left }

// String returns the heading name.
func (d Direction) String() string {
	switch d {
	case Up:
		return "Up"
	case Right:
		return "Right"
	case Down:
		return "Down"
	case Left:
		return "Left"
	default:
		return fmt.Sprintf("Direction(%d)", uint8(d))
	}
}

// Neighbor pairs an adjacent in-bounds cell with the heading that reaches it.
type Neighbor struct {
	Point Point
	Dir   Direction
}

// Bounds is satisfied by anything with fixed rectangular extents.
type Bounds interface {
	Width() int
	Height() int
}

// Grid is an immutable rectangular surface of cells stored row-major.
// The zero value is not usable; build one with New, Filled or Parse.
type Grid[T any] struct {
	width, height int
	cells         []T
}
