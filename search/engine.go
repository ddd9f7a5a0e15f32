// Package search implements a generic best-first (Dijkstra-style) search over
// traversal states whose legal moves and edge costs are supplied by the caller.
//
// The engine is agnostic to puzzle rules: a MoveFunc decides which successors
// a state may have ("at least four straight before turning", "never reverse",
// "walls are impassable"), and a CostFunc prices each move.
//
// Complexity:
//
//   - Time:  O(E log V) over the expanded state graph, where V is bounded by
//     positions × facings × (RunCap+1), not by positions alone.
//   - Space: O(V + E) for the best-known map and the lazy heap.
//
// Notes on implementation choices:
//
//   - Lazy decrease-key: improved states are pushed again; stale heap entries
//     are skipped when popped.
//   - The first goal state popped is optimal, because states leave the heap in
//     non-decreasing cost order.
//   - Equal costs are popped in insertion order, which keeps results stable.
package search

import (
	"container/heap"
	"fmt"
)

// Engine runs constrained shortest-path searches. It is immutable once built,
// and all per-search bookkeeping is local to a ShortestPath call, so one Engine
// may serve concurrent callers.
type Engine struct {
	moves   MoveFunc
	cost    CostFunc
	options Options
}

// NewEngine validates the move rule, cost function and options.
// Returns ErrConfiguration if moves or cost is nil or any Option was invalid.
func NewEngine(moves MoveFunc, cost CostFunc, opts ...Option) (*Engine, error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.err != nil {
		return nil, cfg.err
	}
	if moves == nil {
		return nil, fmt.Errorf("%w: move function is nil", ErrConfiguration)
	}
	if cost == nil {
		return nil, fmt.Errorf("%w: cost function is nil", ErrConfiguration)
	}

	return &Engine{moves: moves, cost: cost, options: cfg}, nil
}

// Key derives the deduplication identity of s under the engine's options.
func (e *Engine) Key(s State) Key {
	k := Key{Pos: s.Pos, Facing: s.Facing, Run: s.Run}
	if k.Run > e.options.RunCap {
		k.Run = e.options.RunCap
	}
	if e.options.IgnoreFacing {
		k.Facing = 0
	}

	return k
}

// ShortestPath returns the minimum accumulated cost from any seed to a state
// satisfying goal. Seeds are entered at cost 0 regardless of their Cost field.
//
// Errors:
//
//   - ErrNoSeeds if seeds is empty; ErrNilGoal if goal is nil.
//   - ErrNegativeCost if the cost function prices any move below zero.
//   - ErrUnreachable if the frontier empties (or exceeds MaxCost) first.
func (e *Engine) ShortestPath(seeds []State, goal GoalFunc) (Result, error) {
	if len(seeds) == 0 {
		return Result{}, ErrNoSeeds
	}
	if goal == nil {
		return Result{}, ErrNilGoal
	}

	r := &runner{
		engine: e,
		goal:   goal,
		best:   make(map[Key]int64),
		done:   make(map[Key]bool),
		pq:     make(statePQ, 0, len(seeds)),
	}
	if e.options.ReturnPath {
		r.parent = make(map[Key]State)
	}
	r.init(seeds)

	return r.process()
}

// runner holds the mutable state for a single search execution.
type runner struct {
	engine *Engine
	goal   GoalFunc
	best   map[Key]int64 // Key → cheapest cost pushed so far
	done   map[Key]bool  // Key → cost finalized (expanded)
	parent map[Key]State // Key → predecessor state, only with ReturnPath
	pq     statePQ
	seq    uint64
	result Result
}

// init seeds the heap with every seed state at cost 0.
func (r *runner) init(seeds []State) {
	heap.Init(&r.pq)
	for _, s := range seeds {
		s.Cost = 0
		k := r.engine.Key(s)
		if _, seen := r.best[k]; seen {
			continue
		}
		r.best[k] = 0
		r.push(s)
	}
}

// process is the main loop: pop the cheapest state, stop on the goal,
// otherwise relax its successors.
func (r *runner) process() (Result, error) {
	maxCost := r.engine.options.MaxCost
	for r.pq.Len() > 0 {
		item := heap.Pop(&r.pq).(*stateItem)
		s := item.state
		k := r.engine.Key(s)

		// 1) Stale entry: a cheaper state with this identity was already finalized,
		//    or a cheaper copy is still queued.
		if r.done[k] || s.Cost > r.best[k] {
			continue
		}

		// 2) Everything left in the heap is at least this expensive.
		if s.Cost > maxCost {
			break
		}

		r.done[k] = true
		r.result.Expanded++

		// 3) First goal pop is optimal.
		if r.goal(s) {
			r.result.Cost = s.Cost
			r.result.Goal = s
			if r.parent != nil {
				r.result.Path = r.pathTo(s)
			}

			return r.result, nil
		}

		if err := r.relax(s); err != nil {
			return Result{}, err
		}
	}

	return Result{}, ErrUnreachable
}

// relax prices every legal successor of s and pushes the ones that improve
// on the best cost known for their identity.
func (r *runner) relax(s State) error {
	for _, next := range r.engine.moves(s) {
		w := r.engine.cost(s, next)
		if w < 0 {
			return fmt.Errorf("%w: %v→%v cost=%d", ErrNegativeCost, s.Pos, next.Pos, w)
		}
		next.Cost = s.Cost + w
		if next.Cost > r.engine.options.MaxCost {
			continue
		}
		k := r.engine.Key(next)
		if r.done[k] {
			continue
		}
		if old, seen := r.best[k]; seen && next.Cost >= old {
			continue
		}
		r.best[k] = next.Cost
		if r.parent != nil {
			r.parent[k] = s
		}
		r.push(next)
	}

	return nil
}

// pathTo walks predecessor links back to a seed and returns seed → s.
func (r *runner) pathTo(s State) []State {
	path := []State{s}
	for {
		prev, ok := r.parent[r.engine.Key(path[len(path)-1])]
		if !ok {
			break
		}
		path = append(path, prev)
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path
}

func (r *runner) push(s State) {
	heap.Push(&r.pq, &stateItem{state: s, seq: r.seq})
	r.seq++
}

// stateItem is a heap entry; seq breaks cost ties in insertion order.
type stateItem struct {
	state State
	seq   uint64
}

// statePQ is a min-heap of *stateItem ordered by (Cost, seq).
type statePQ []*stateItem

func (pq statePQ) Len() int { return len(pq) }

func (pq statePQ) Less(i, j int) bool {
	if pq[i].state.Cost != pq[j].state.Cost {
		return pq[i].state.Cost < pq[j].state.Cost
	}

	return pq[i].seq < pq[j].seq
}

func (pq statePQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

func (pq *statePQ) Push(x interface{}) { *pq = append(*pq, x.(*stateItem)) }

func (pq *statePQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	old[n-1] = nil
	*pq = old[:n-1]

	return item
}
