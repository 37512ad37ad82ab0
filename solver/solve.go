package solver

import (
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/amphipod/burrow"
)

// outcome is a memoized result: the best completion cost, or ok == false
// when no completion was found from that state.
type outcome struct {
	cost int
	ok   bool
}

// searcher encapsulates state during one search.
// memo is owned by the searcher for the lifetime of the call. onPath holds
// the keys of the states on the current recursion path: a key is added when a
// state is expanded and removed when it returns, so sibling branches never
// observe each other's entries.
type searcher struct {
	opts   Options
	memo   map[burrow.Key]outcome
	onPath map[burrow.Key]struct{}
	stats  Stats
}

// Solve returns the minimum total cost to bring every token of s home.
//
// The search is a depth-first recursion over burrow.State.LegalMoves:
//   - a complete state costs 0;
//   - a state whose key is memoized returns the stored outcome;
//   - a state whose key is already on the current path is a cycle and
//     counts as unreachable for that branch only;
//   - otherwise every successor is solved, the move cost added, and the
//     first minimum kept and memoized. No legal moves means unreachable.
//
// Errors: ErrUnsolvable, ErrDepthLimit, the context error, or any error
// returned by the OnVisit hook.
func Solve(s burrow.State, opts ...Option) (Result, error) {
	// 1) Apply options
	sopts := DefaultOptions()
	var fn Option
	for _, fn = range opts {
		fn(&sopts)
	}

	// 2) Run
	w := &searcher{
		opts:   sopts,
		memo:   make(map[burrow.Key]outcome),
		onPath: make(map[burrow.Key]struct{}),
	}
	cost, ok, err := w.solve(s, 0)
	w.stats.States = len(w.memo)
	res := Result{Cost: cost, Stats: w.stats}
	if err != nil {
		return res, err
	}

	// 3) Report
	w.opts.Logger.WithFields(logrus.Fields{
		"depth":      s.Depth(),
		"cost":       cost,
		"solved":     ok,
		"states":     w.stats.States,
		"visited":    w.stats.Visited,
		"cache_hits": w.stats.CacheHits,
		"cycle_hits": w.stats.CycleHits,
		"max_depth":  w.stats.MaxDepth,
	}).Debug("solver: search finished")

	if !ok {
		return res, ErrUnsolvable
	}

	return res, nil
}

// solve returns the best completion cost of s, reached depth moves below the root.
func (w *searcher) solve(s burrow.State, depth int) (int, bool, error) {
	// 1) Cancellation check
	select {
	case <-w.opts.Ctx.Done():
		return 0, false, w.opts.Ctx.Err()
	default:
	}

	// 2) Depth limit
	if w.opts.MaxDepth >= 0 && depth > w.opts.MaxDepth {
		return 0, false, fmt.Errorf("%w: %d", ErrDepthLimit, w.opts.MaxDepth)
	}

	// 3) Terminal, memoized, or already on the path
	key := s.Hash()
	if s.IsComplete() {
		w.memo[key] = outcome{cost: 0, ok: true}
		return 0, true, nil
	}
	if o, hit := w.memo[key]; hit {
		w.stats.CacheHits++
		return o.cost, o.ok, nil
	}
	if _, cyc := w.onPath[key]; cyc {
		w.stats.CycleHits++
		return 0, false, nil
	}

	// 4) Expand
	w.stats.Visited++
	if depth > w.stats.MaxDepth {
		w.stats.MaxDepth = depth
	}
	if w.opts.OnVisit != nil {
		if err := w.opts.OnVisit(s, depth); err != nil {
			return 0, false, fmt.Errorf("solver: OnVisit at depth %d: %w", depth, err)
		}
	}
	w.onPath[key] = struct{}{}

	best, found := 0, false
	var m burrow.Move
	for _, m = range s.LegalMoves() {
		cost, ok, err := w.solve(s.Apply(m), depth+1)
		if err != nil {
			return 0, false, err
		}
		if !ok {
			continue
		}
		if cost += m.Cost; !found || cost < best {
			best, found = cost, true
		}
	}

	// 5) Leave the path and remember the outcome
	delete(w.onPath, key)
	w.memo[key] = outcome{cost: best, ok: found}

	return best, found, nil
}
