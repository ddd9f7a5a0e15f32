// Package search defines the traversal state, options and sentinel errors
// for the constrained best-first search engine.
package search

import (
	"errors"
	"fmt"
	"math"

	"github.com/katalvlaran/gridlab/grid"
)

// Sentinel errors returned by the search engine.
var (
	// ErrConfiguration indicates inconsistent engine constraints, detected
	// before any search work begins.
	ErrConfiguration = errors.New("search: invalid configuration")

	// ErrNoSeeds indicates ShortestPath was called without any seed state.
	ErrNoSeeds = errors.New("search: at least one seed state is required")

	// ErrNilGoal indicates ShortestPath was called without a goal predicate.
	ErrNilGoal = errors.New("search: goal predicate is nil")

	// ErrNegativeCost indicates the cost function returned a negative value.
	ErrNegativeCost = errors.New("search: negative edge cost encountered")

	// ErrUnreachable indicates the frontier was exhausted before any state
	// satisfied the goal predicate.
	ErrUnreachable = errors.New("search: goal unreachable")
)

// State is one agent mid-traversal: where it stands, which way it faces,
// how many consecutive moves it has made in that direction, and what it
// has paid so far.
type State struct {
	Pos    grid.Point
	Facing grid.Direction
	Run    int   // consecutive moves along Facing, ≥ 0
	Cost   int64 // accumulated cost from the seed, ≥ 0
}

// Key is the deduplication identity of a State. Cost is excluded because
// the engine keeps only the cheapest cost seen per Key.
type Key struct {
	Pos    grid.Point
	Facing grid.Direction
	Run    int
}

// MoveFunc lists the legal successors of s. Implementations set Pos, Facing
// and Run on each successor; the engine fills in Cost.
type MoveFunc func(s State) []State

// CostFunc returns the non-negative cost of moving from one state to the next.
type CostFunc func(from, to State) int64

// GoalFunc reports whether s satisfies the search target.
type GoalFunc func(s State) bool

// Result is the outcome of a successful search.
//
//   - Cost:     minimum accumulated cost of any goal state.
//   - Goal:     the goal state that was reached first.
//   - Path:     seed → goal sequence when WithReturnPath was set, nil otherwise.
//   - Expanded: number of states popped and expanded.
type Result struct {
	Cost     int64
	Goal     State
	Path     []State
	Expanded int
}

// Options configures the behavior of an Engine.
//
// RunCap       – Run values above this are clamped in Key (≥ 0). Default math.MaxInt.
// IgnoreFacing – drop Facing from Key, for rules where heading does not constrain moves.
// MaxCost      – frontier states costlier than this are abandoned (≥ 0). Default math.MaxInt64.
// ReturnPath   – record predecessors and return the full path in Result.
type Options struct {
	RunCap       int
	IgnoreFacing bool
	MaxCost      int64
	ReturnPath   bool

	// internal error recorded during option parsing
	err error
}

// Option represents a functional option for configuring an Engine.
// Invalid values are recorded and surfaced as ErrConfiguration by NewEngine.
type Option func(*Options)

// DefaultOptions returns the defaults: no run clamping, facing included in
// identity, no cost cap, no path recording.
func DefaultOptions() Options {
	return Options{
		RunCap:       math.MaxInt,
		IgnoreFacing: false,
		MaxCost:      math.MaxInt64,
		ReturnPath:   false,
	}
}

// WithRunCap clamps Run to n when deriving a state's Key.
// n < 0 is invalid.
func WithRunCap(n int) Option {
	return func(o *Options) {
		if n < 0 {
			o.err = fmt.Errorf("%w: RunCap cannot be negative (%d)", ErrConfiguration, n)
			return
		}
		o.RunCap = n
	}
}

// WithIgnoreFacing removes Facing from the deduplication identity.
func WithIgnoreFacing() Option {
	return func(o *Options) {
		o.IgnoreFacing = true
	}
}

// WithMaxCost abandons frontier states whose cost exceeds c.
// c < 0 is invalid.
func WithMaxCost(c int64) Option {
	return func(o *Options) {
		if c < 0 {
			o.err = fmt.Errorf("%w: MaxCost cannot be negative (%d)", ErrConfiguration, c)
			return
		}
		o.MaxCost = c
	}
}

// WithReturnPath enables predecessor tracking so Result.Path is populated.
func WithReturnPath() Option {
	return func(o *Options) {
		o.ReturnPath = true
	}
}
