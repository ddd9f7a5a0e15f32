// Package region defines labels and results for classifying grid cells
// against a closed boundary loop.
package region

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/gridlab/grid"
)

// Sentinel errors for region classification.
var (
	// ErrNilBounds indicates no grid extents were supplied.
	ErrNilBounds = errors.New("region: bounds are nil")
	// ErrShortCycle indicates a path too short to enclose anything.
	ErrShortCycle = errors.New("region: cycle needs at least four points")
	// ErrBrokenCycle indicates consecutive cycle points that are not orthogonal neighbors.
	ErrBrokenCycle = errors.New("region: consecutive cycle points are not adjacent")
)

// Label classifies a single cell.
type Label uint8

const (
	// Unvisited marks cells no pass has reached yet. It never survives
	// a completed classification.
	Unvisited Label = iota
	// Boundary marks cells that belong to the loop.
	Boundary
	// Enclosed marks cells the flood from the border could not reach.
	Enclosed
	// Outside marks cells reachable from the border without crossing the loop.
	Outside
)

// String returns the label name.
func (l Label) String() string {
	switch l {
	case Unvisited:
		return "Unvisited"
	case Boundary:
		return "Boundary"
	case Enclosed:
		return "Enclosed"
	case Outside:
		return "Outside"
	default:
		return fmt.Sprintf("Label(%d)", uint8(l))
	}
}

// Glyph returns a one-rune rendering: '?', '#', 'I', 'O'.
func (l Label) Glyph() rune {
	switch l {
	case Boundary:
		return '#'
	case Enclosed:
		return 'I'
	case Outside:
		return 'O'
	default:
		return '?'
	}
}

// LinkFunc reports whether two orthogonally adjacent loop cells are joined
// by a loop segment. Adjacent loop cells that are not linked leave a gap
// the flood can squeeze through.
type LinkFunc func(a, b grid.Point) bool

// Result holds one label per original cell.
type Result struct {
	Labels *grid.Grid[Label]
	counts [4]int
}

// Count returns how many original cells carry label l.
func (r *Result) Count(l Label) int {
	if int(l) >= len(r.counts) {
		return 0
	}

	return r.counts[l]
}

// Cells returns the coordinates carrying label l in row-major order.
func (r *Result) Cells(l Label) []grid.Point {
	out := make([]grid.Point, 0, r.Count(l))
	for p, v := range r.Labels.All() {
		if v == l {
			out = append(out, p)
		}
	}

	return out
}
