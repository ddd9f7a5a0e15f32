package cycle

import (
	"errors"
	"fmt"
)

// Sentinel errors for simulator construction.
var (
	// ErrNilStep indicates the step function is nil.
	ErrNilStep = errors.New("cycle: step function is nil")
	// ErrNilEncoder indicates the state encoder is nil.
	ErrNilEncoder = errors.New("cycle: state encoder is nil")
)

// StepFunc advances a whole-grid state by one application. It must be a pure
// function of its argument; hidden counters make cycle detection unsound.
type StepFunc[S any] func(S) S

// EncodeFunc returns a canonical encoding of a state. Structurally equal
// states must encode to equal bytes, and distinct states to distinct bytes.
type EncodeFunc[S any] func(S) []byte

// Cycle describes the periodic tail discovered during a Run.
//
//	Start  – step index at which the repeating segment begins.
//	Length – number of steps in one period.
//	Found  – false when the run finished before any state repeated.
type Cycle struct {
	Start  uint64
	Length uint64
	Found  bool
}

// Simulator applies a deterministic step repeatedly, fast-forwarding through
// periodic behavior instead of materializing every step.
type Simulator[S any] struct {
	step   StepFunc[S]
	encode EncodeFunc[S]
}

// New validates step and encode and returns a Simulator.
func New[S any](step StepFunc[S], encode EncodeFunc[S]) (*Simulator[S], error) {
	if step == nil {
		return nil, ErrNilStep
	}
	if encode == nil {
		return nil, ErrNilEncoder
	}

	return &Simulator[S]{step: step, encode: encode}, nil
}

// Run returns the state after exactly n applications of step to initial.
//
// Behavior:
//  1. Intern every produced state, remembering the index where it first appeared.
//  2. When step produces a state already seen at index first, the states
//     first..i form one period of length i+1-first; stop simulating.
//  3. Index n ≥ first maps to first + (n-first) mod length within that period.
//
// If no state repeats within n steps, the directly simulated state is returned
// and Cycle.Found is false. Memoization is local to this call.
//
// Complexity: O(min(n, μ+λ)) steps, where μ is the cycle start and λ its length.
func (s *Simulator[S]) Run(initial S, n uint64) (S, Cycle) {
	arena := NewArena()
	arena.Intern(s.encode(initial))
	history := []S{initial} // history[id] is the state first produced at step id

	for i := uint64(0); i < n; i++ {
		next := s.step(history[i])
		id, seen := arena.Intern(s.encode(next))
		if !seen {
			history = append(history, next)
			continue
		}

		first := uint64(id)
		c := Cycle{Start: first, Length: i + 1 - first, Found: true}

		return history[first+(n-first)%c.Length], c
	}

	return history[n], Cycle{}
}

// Trace returns the first n+1 states (indices 0..n) by direct simulation,
// without any cycle shortcut. Useful for verifying Run on small inputs.
func (s *Simulator[S]) Trace(initial S, n uint64) []S {
	out := make([]S, 0, n+1)
	out = append(out, initial)
	for i := uint64(0); i < n; i++ {
		out = append(out, s.step(out[i]))
	}

	return out
}

// Compose chains sub-steps into one step applied left to right,
// e.g. Compose(tiltNorth, tiltWest, tiltSouth, tiltEast).
func Compose[S any](steps ...StepFunc[S]) StepFunc[S] {
	return func(v S) S {
		for _, st := range steps {
			v = st(v)
		}

		return v
	}
}

// String formats c for logs.
func (c Cycle) String() string {
	if !c.Found {
		return "no cycle"
	}

	return fmt.Sprintf("cycle of length %d from step %d", c.Length, c.Start)
}
