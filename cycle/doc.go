// Package cycle applies a deterministic whole-state transform many times,
// detecting when the sequence of states becomes periodic and skipping ahead.
//
// What:
//
//   - Arena interns canonical state encodings into small integer IDs, so the
//     memo table compares integers instead of whole grids.
//   - Simulator.Run(initial, n) returns the state after n steps, simulating
//     only until the first repeated state.
//   - Compose glues sub-steps (for example four tilts) into one step.
//
// Why:
//
//   - Iteration counts like one billion are infeasible to simulate, but most
//     deterministic grid transforms settle into a short cycle quickly.
//
// Invariants:
//
//   - The step function is pure; the encoder is canonical (equal states give
//     equal bytes, independent of construction order).
//   - A missing cycle is not an error: Run falls back to direct simulation.
//
// Complexity:
//
//   - Run: O(min(n, μ+λ)·(C_step + C_encode)), where μ is the first index of the
//     periodic segment and λ its length.
//   - Memory: O(μ+λ) retained states plus their encodings.
package cycle
