package solver_test

import (
	"context"
	"errors"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/amphipod/burrow"
	"github.com/katalvlaran/amphipod/solver"
)

func TestSolve_AlreadySolved(t *testing.T) {
	for depth := 1; depth <= burrow.MaxDepth; depth++ {
		res, err := solver.Solve(burrow.MustState(depth, solved(depth)))
		require.NoError(t, err, "depth %d", depth)
		assert.Equal(t, 0, res.Cost)
		assert.Equal(t, 0, res.Stats.Visited)
		assert.Equal(t, 1, res.Stats.States)
	}
}

func TestSolve_KnownAnswers(t *testing.T) {
	cases := []struct {
		name string
		s    burrow.State
		want int
	}{
		// One Amber/Bronze pair swapped costs the same at every depth: the
		// Amber steps aside by one cell while the Bronze walks over.
		{"swap AB depth 1", swapTops(1, A, B), 46},
		{"swap AB depth 2", swapTops(2, A, B), 46},
		{"swap AB depth 4", swapTops(4, A, B), 46},
		{"swap CD depth 2", swapTops(2, C, D), 4600},
		{"swap CD depth 4", swapTops(4, C, D), 4600},
		{"swap AB backs depth 2", relabel(2, map[int]burrow.Kind{0: B, 2: A}), 112},
		{"rooms B and C exchanged", relabel(2, map[int]burrow.Kind{2: C, 3: C, 4: B, 5: B}), 1140},
		{"rotation depth 1", relabel(1, map[int]burrow.Kind{0: D, 1: A, 2: B, 3: C}), 8446},
		{"amber in hallway corner", burrow.MustState(1, []burrow.Token{
			burrow.Place(A, burrow.Hall(0)),
			burrow.Place(B, burrow.Room(B, 0)),
			burrow.Place(C, burrow.Room(C, 0)),
			burrow.Place(D, burrow.Room(D, 0)),
		}), 3},
		{"desert and amber facing in hallway", burrow.MustState(1, []burrow.Token{
			burrow.Place(D, burrow.Hall(3)),
			burrow.Place(A, burrow.Hall(5)),
			burrow.Place(B, burrow.Room(B, 0)),
			burrow.Place(C, burrow.Room(C, 0)),
		}), 6012},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			res, err := solver.Solve(tc.s)
			require.NoError(t, err)
			assert.Equal(t, tc.want, res.Cost)
		})
	}
}

func TestSolve_Example(t *testing.T) {
	if testing.Short() {
		t.Skip("explores a few hundred thousand states")
	}
	s, err := burrow.Parse(exampleDiagram)
	require.NoError(t, err)

	res, err := solver.Solve(s)
	require.NoError(t, err)
	assert.Equal(t, 12521, res.Cost)
}

func TestSolve_Deterministic(t *testing.T) {
	s := relabel(2, map[int]burrow.Kind{2: C, 3: C, 4: B, 5: B})
	first, err := solver.Solve(s)
	require.NoError(t, err)
	second, err := solver.Solve(s)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestSolve_Unsolvable(t *testing.T) {
	// Bronze steps out of room A onto its doorway between two hallway tokens:
	// it can neither go on nor back, and it must move next.
	s := burrow.MustState(1, []burrow.Token{
		burrow.Place(B, burrow.Room(A, 0)),
		burrow.Place(C, burrow.Hall(1)),
		burrow.Place(D, burrow.Hall(3)),
		burrow.Place(A, burrow.Room(B, 0)),
	})
	var out burrow.Move
	for _, m := range s.LegalMoves() {
		if m.Source.ID == 0 {
			out = m
		}
	}
	require.Equal(t, burrow.Hall(2), out.Dest.Pos)

	res, err := solver.Solve(s.Apply(out))
	assert.ErrorIs(t, err, solver.ErrUnsolvable)
	assert.Equal(t, 1, res.Stats.Visited)
}

func TestSolve_CycleGuardBoundsRecursion(t *testing.T) {
	var deepest int
	res, err := solver.Solve(swapTops(2, A, B), solver.WithOnVisit(func(_ burrow.State, depth int) error {
		if depth > deepest {
			deepest = depth
		}
		return nil
	}))
	require.NoError(t, err)

	// Hallway walks revisit states on the current path; the guard cuts them.
	assert.Positive(t, res.Stats.CycleHits)
	assert.Equal(t, deepest, res.Stats.MaxDepth)
	// Every level of the path is a distinct memoized state.
	assert.Less(t, res.Stats.MaxDepth, res.Stats.States)
	assert.LessOrEqual(t, res.Stats.Visited, res.Stats.States)
	assert.Positive(t, res.Stats.CacheHits)
}

func TestSolve_BackSlotTokensNeverMove(t *testing.T) {
	s := relabel(2, map[int]burrow.Kind{2: C, 3: C, 4: B, 5: B})
	_, err := solver.Solve(s, solver.WithOnVisit(func(st burrow.State, _ int) error {
		for _, m := range st.LegalMoves() {
			if m.Source.Pos == burrow.Room(m.Source.Kind, 0) {
				return errors.New("token left its back slot: " + m.String())
			}
		}
		return nil
	}))
	assert.NoError(t, err)
}

func TestSolve_MaxDepth(t *testing.T) {
	s := swapTops(2, A, B)

	// Any solution needs at least eight hops.
	_, err := solver.Solve(s, solver.WithMaxDepth(5))
	assert.ErrorIs(t, err, solver.ErrDepthLimit)

	free, err := solver.Solve(s)
	require.NoError(t, err)
	limited, err := solver.Solve(s, solver.WithMaxDepth(free.Stats.MaxDepth+1))
	require.NoError(t, err)
	assert.Equal(t, free, limited)
}

func TestSolve_ContextCanceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := solver.Solve(swapTops(2, A, B), solver.WithContext(ctx))
	assert.ErrorIs(t, err, context.Canceled)
}

func TestSolve_OnVisitError(t *testing.T) {
	stop := errors.New("stop here")
	_, err := solver.Solve(swapTops(2, A, B), solver.WithOnVisit(func(_ burrow.State, depth int) error {
		if depth == 3 {
			return stop
		}
		return nil
	}))
	assert.ErrorIs(t, err, stop)
}

func TestSolve_Logger(t *testing.T) {
	logger, hook := test.NewNullLogger()
	logger.SetLevel(logrus.DebugLevel)

	res, err := solver.Solve(swapTops(2, A, B), solver.WithLogger(logger))
	require.NoError(t, err)

	entry := hook.LastEntry()
	require.NotNil(t, entry)
	assert.Equal(t, logrus.DebugLevel, entry.Level)
	assert.Equal(t, "solver: search finished", entry.Message)
	assert.Equal(t, 46, entry.Data["cost"])
	assert.Equal(t, res.Stats.States, entry.Data["states"])
	assert.Equal(t, true, entry.Data["solved"])
}

func TestDefaultOptions(t *testing.T) {
	o := solver.DefaultOptions()
	assert.NotNil(t, o.Ctx)
	assert.NotNil(t, o.Logger)
	assert.Equal(t, -1, o.MaxDepth)
	assert.Nil(t, o.OnVisit)

	// nil arguments keep the defaults
	solver.WithContext(nil)(&o) //nolint:staticcheck
	solver.WithLogger(nil)(&o)
	assert.NotNil(t, o.Ctx)
	assert.NotNil(t, o.Logger)
}
