package main

import (
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/gridlab/beam"
	"github.com/katalvlaran/gridlab/crucible"
	"github.com/katalvlaran/gridlab/grid"
	"github.com/katalvlaran/gridlab/pipes"
	"github.com/katalvlaran/gridlab/platform"
	"github.com/katalvlaran/gridlab/pulse"
)

// both runs the two parts concurrently; each part only reads shared state.
func both(p1, p2 func() (any, error)) (part1, part2 any, err error) {
	var g errgroup.Group
	g.Go(func() (err error) { part1, err = p1(); return err })
	g.Go(func() (err error) { part2, err = p2(); return err })
	if err := g.Wait(); err != nil {
		return nil, nil, err
	}

	return part1, part2, nil
}

func (a *app) solvePipes(_ *cobra.Command, text string) (any, any, error) {
	m, err := pipes.Parse(text)
	if err != nil {
		return nil, nil, err
	}
	a.log.Debug().Stringer("start", m.Start()).Msg("start resolved")

	return both(
		func() (any, error) { return m.Furthest(), nil },
		func() (any, error) { return m.Enclosed() },
	)
}

func (a *app) solveBeam(cmd *cobra.Command, text string) (any, any, error) {
	c, err := beam.Parse(text)
	if err != nil {
		return nil, nil, err
	}
	part1 := c.Energized(beam.Light{Pos: grid.Point{}, Dir: grid.Right})
	best, err := c.MaxEnergized(cmd.Context(), a.cfg.Beam.Workers)
	if err != nil {
		return nil, nil, err
	}
	a.log.Debug().Stringer("entry", best.From.Pos).Stringer("heading", best.From.Dir).Msg("best entry")

	return part1, best.Energized, nil
}

func (a *app) solveCrucible(_ *cobra.Command, text string) (any, any, error) {
	h, err := crucible.ParseHeatMap(text)
	if err != nil {
		return nil, nil, err
	}

	return both(
		func() (any, error) { return h.MinHeatLoss(a.cfg.Crucible.Normal) },
		func() (any, error) { return h.MinHeatLoss(a.cfg.Crucible.Ultra) },
	)
}

func (a *app) solvePlatform(_ *cobra.Command, text string) (any, any, error) {
	p, err := platform.Parse(text)
	if err != nil {
		return nil, nil, err
	}
	load, c, err := p.SpinLoad(a.cfg.Platform.Cycles)
	if err != nil {
		return nil, nil, err
	}
	a.log.Debug().Stringer("period", c).Msg("spin cycle")

	return p.Tilt(grid.Up).Load(), load, nil
}

func (a *app) solvePulse(_ *cobra.Command, text string) (any, any, error) {
	n, err := pulse.Parse(text)
	if err != nil {
		return nil, nil, err
	}
	low, high := n.Count(a.cfg.Pulse.Presses)
	presses, err := n.PressesUntilLow(a.cfg.Pulse.Target, a.cfg.Pulse.MaxPresses)
	if err != nil {
		return nil, nil, err
	}

	return low * high, presses, nil
}
