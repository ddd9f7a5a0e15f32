package search

import (
	"fmt"

	"github.com/katalvlaran/gridlab/grid"
)

// RunBounds limits how far an agent travels straight.
//
//	Min – moves required along the current heading before a turn is allowed.
//	Max – moves allowed along the current heading before a turn is forced.
type RunBounds struct {
	Min int `yaml:"min_run" validate:"gte=0"`
	Max int `yaml:"max_run" validate:"gte=1,gtefield=Min"`
}

// Validate rejects inconsistent bounds with ErrConfiguration.
func (b RunBounds) Validate() error {
	switch {
	case b.Min < 0:
		return fmt.Errorf("%w: minimum straight run cannot be negative (%d)", ErrConfiguration, b.Min)
	case b.Max < 1:
		return fmt.Errorf("%w: maximum straight run must be at least 1 (%d)", ErrConfiguration, b.Max)
	case b.Min > b.Max:
		return fmt.Errorf("%w: minimum straight run %d exceeds maximum %d", ErrConfiguration, b.Min, b.Max)
	}

	return nil
}

// CanStop reports whether an agent with the given run may end its journey.
func (b RunBounds) CanStop(run int) bool { return run >= b.Min }

// StraightRun builds the move rule for agents that must travel at least
// b.Min and at most b.Max cells along a heading before turning, and may never
// reverse. Every move advances exactly one cell; turning resets Run to 1.
// A seed with Run 0 may turn immediately only when b.Min is 0.
func StraightRun[T any](g *grid.Grid[T], b RunBounds) (MoveFunc, error) {
	if g == nil {
		return nil, fmt.Errorf("%w: grid is nil", ErrConfiguration)
	}
	if err := b.Validate(); err != nil {
		return nil, err
	}

	return func(s State) []State {
		out := make([]State, 0, 3)
		if s.Run < b.Max {
			if q, ok := g.Step(s.Pos, s.Facing); ok {
				out = append(out, State{Pos: q, Facing: s.Facing, Run: s.Run + 1})
			}
		}
		if s.Run >= b.Min {
			for _, d := range [2]grid.Direction{s.Facing.TurnLeft(), s.Facing.TurnRight()} {
				if q, ok := g.Step(s.Pos, d); ok {
					out = append(out, State{Pos: q, Facing: d, Run: 1})
				}
			}
		}

		return out
	}, nil
}

// Adjacent builds an unconstrained four-way move rule: any in-bounds
// neighbor whose cell satisfies passable may be entered. A nil passable
// accepts every cell. No straight-run rule applies, so successors carry
// Run 0 and at most 4·W·H distinct states exist.
func Adjacent[T any](g *grid.Grid[T], passable func(T) bool) (MoveFunc, error) {
	if g == nil {
		return nil, fmt.Errorf("%w: grid is nil", ErrConfiguration)
	}

	return func(s State) []State {
		out := make([]State, 0, 4)
		for _, n := range g.Neighbors(s.Pos) {
			if passable != nil && !passable(g.At(n.Point)) {
				continue
			}
			out = append(out, State{Pos: n.Point, Facing: n.Dir})
		}

		return out
	}, nil
}

// CellCost charges the weight of the cell being entered.
func CellCost(g *grid.Grid[int]) CostFunc {
	return func(_, to State) int64 {
		return int64(g.At(to.Pos))
	}
}

// UnitCost charges 1 per move.
func UnitCost(_, _ State) int64 { return 1 }

// AtPoint returns a goal predicate satisfied by any state standing on p.
func AtPoint(p grid.Point) GoalFunc {
	return func(s State) bool { return s.Pos == p }
}
