// Package crucible routes a crucible across a heat-loss map from the
// top-left to the bottom-right block under straight-run constraints.
//
// Entering a block costs its digit. The crucible starts at (0,0) facing
// Right or Down without having moved, may not reverse, and must respect the
// configured minimum and maximum run along a heading.
package crucible

import (
	"fmt"

	"github.com/katalvlaran/gridlab/grid"
	"github.com/katalvlaran/gridlab/search"
)

// HeatMap is the parsed city block grid.
type HeatMap struct {
	blocks *grid.Grid[int]
}

// ParseHeatMap reads a grid of decimal digits.
// Non-digits and ragged lines are reported as grid.ErrMalformedInput.
func ParseHeatMap(text string) (*HeatMap, error) {
	blocks, err := grid.Parse(text, grid.Digits)
	if err != nil {
		return nil, err
	}

	return &HeatMap{blocks: blocks}, nil
}

// Blocks returns the underlying grid.
func (h *HeatMap) Blocks() *grid.Grid[int] { return h.blocks }

// Factory is the bottom-right block, the destination of every route.
func (h *HeatMap) Factory() grid.Point {
	return grid.Point{X: h.blocks.Width() - 1, Y: h.blocks.Height() - 1}
}

// MinHeatLoss returns the least total heat lost on any legal route.
// Returns search.ErrConfiguration for invalid bounds and
// search.ErrUnreachable when no route can stop on the factory.
func (h *HeatMap) MinHeatLoss(b search.RunBounds) (int64, error) {
	res, err := h.route(b)
	if err != nil {
		return 0, err
	}

	return res.Cost, nil
}

// Route is MinHeatLoss with the winning path attached, seed first.
func (h *HeatMap) Route(b search.RunBounds) (search.Result, error) {
	return h.route(b, search.WithReturnPath())
}

func (h *HeatMap) route(b search.RunBounds, extra ...search.Option) (search.Result, error) {
	moves, err := search.StraightRun(h.blocks, b)
	if err != nil {
		return search.Result{}, err
	}
	opts := append([]search.Option{search.WithRunCap(b.Max)}, extra...)
	engine, err := search.NewEngine(moves, search.CellCost(h.blocks), opts...)
	if err != nil {
		return search.Result{}, err
	}

	factory := h.Factory()
	seeds := []search.State{
		{Pos: grid.Point{}, Facing: grid.Right},
		{Pos: grid.Point{}, Facing: grid.Down},
	}
	res, err := engine.ShortestPath(seeds, func(s search.State) bool {
		return s.Pos == factory && b.CanStop(s.Run)
	})
	if err != nil {
		return search.Result{}, fmt.Errorf("route %v to %v with runs %d..%d: %w",
			grid.Point{}, factory, b.Min, b.Max, err)
	}

	return res, nil
}
