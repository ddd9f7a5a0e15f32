// Package gridlab is a toolkit for simulating and searching 2D grids.
//
// What is in the box?
//
//	grid/        immutable generic Grid[T], points, directions, parsing, flood fill
//	search/      best-first search over (position, facing, run) states with
//	             straight-run constraints and FIFO tie-breaking
//	cycle/       whole-state simulator that detects a repeat and fast-forwards
//	             to step n
//	region/      Boundary / Enclosed / Outside classification against a loop,
//	             on a doubled-resolution overlay so squeezed gaps leak
//
// Solvers built on top:
//
//	pipes/       pipe loop: furthest distance, enclosed tiles
//	beam/        light beams through mirrors and splitters
//	crucible/    least heat loss under min/max straight runs
//	platform/    rolling rocks: tilt, spin cycle, north load
//	pulse/       pulse propagation network and button presses
//
// Support:
//
//	config/        YAML run parameters with validation
//	input/         plain or zstd-compressed puzzle text
//	cmd/gridlab/   CLI with one sub-command per solver
//
// Quick example (crucible):
//
//	h, _ := crucible.ParseHeatMap(text)
//	loss, err := h.MinHeatLoss(search.RunBounds{Min: 4, Max: 10})
//
// No package panics on bad input; every failure is a sentinel error wrapped
// with context, to be matched with errors.Is.
package gridlab
