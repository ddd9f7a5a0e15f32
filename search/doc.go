// Package search finds minimum-cost routes across a grid when the legal moves
// depend on more than position.
//
// An agent is a State: position, facing, straight-run length and accumulated
// cost. The Engine pops the cheapest frontier State, stops on the first one
// that satisfies the goal, and otherwise asks the caller's MoveFunc for
// successors and the caller's CostFunc for their prices.
//
// Identity:
//
//	Two states are the same search node when their Key matches:
//	(position, facing, run clamped to RunCap). Cost is not part of the Key;
//	the engine keeps the cheapest cost per Key and discards the rest.
//
// Move rules shipped with the package:
//
//   - StraightRun(g, RunBounds{Min, Max}): at least Min and at most Max cells
//     straight before turning, never reversing.
//   - Adjacent(g, passable): unconstrained four-way moves over passable cells.
//
// Options:
//
//   - WithRunCap(n):      clamp Run in identity (state count × (n+1)).
//   - WithIgnoreFacing(): drop facing from identity.
//   - WithMaxCost(c):     abandon frontier states costlier than c.
//   - WithReturnPath():   populate Result.Path.
//
// Errors (sentinel):
//
//   - ErrConfiguration: nil rule/cost, bad option, or inconsistent RunBounds.
//   - ErrNoSeeds, ErrNilGoal: missing search inputs.
//   - ErrNegativeCost: the cost function returned a negative price.
//   - ErrUnreachable: no state satisfying the goal could be reached.
//
// Example usage:
//
//	moves, err := search.StraightRun(heat, search.RunBounds{Min: 4, Max: 10})
//	if err != nil {
//	    return err
//	}
//	eng, err := search.NewEngine(moves, search.CellCost(heat), search.WithRunCap(10))
//	if err != nil {
//	    return err
//	}
//	res, err := eng.ShortestPath(seeds, goal)
//	if errors.Is(err, search.ErrUnreachable) {
//	    // no route exists
//	}
package search
