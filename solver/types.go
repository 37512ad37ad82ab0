package solver

import (
	"context"
	"errors"
	"io"

	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/amphipod/burrow"
)

var (
	// ErrUnsolvable is returned when no sequence of legal moves from the
	// initial State completes the burrow. For a valid puzzle instance this
	// signals a modelling error.
	ErrUnsolvable = errors.New("solver: no solution reachable")

	// ErrDepthLimit is returned when the recursion goes beyond MaxDepth.
	ErrDepthLimit = errors.New("solver: depth limit exceeded")
)

// Option configures optional behavior of Solve.
type Option func(*Options)

// Options holds the configurable parameters of a search.
type Options struct {
	// Ctx allows cancellation; defaults to context.Background().
	// It is checked once per visited state.
	Ctx context.Context

	// Logger receives one Debug record per search with its statistics.
	// Defaults to a logger that discards everything.
	Logger logrus.FieldLogger

	// MaxDepth, if non-negative, aborts the search with ErrDepthLimit as soon
	// as a state deeper than MaxDepth moves is reached. Default -1 (no limit).
	MaxDepth int

	// OnVisit, if non-nil, is called for every state the search expands
	// (pre-order), with its distance in moves from the root.
	// Returning an error aborts the search with that error.
	OnVisit func(s burrow.State, depth int) error
}

// DefaultOptions returns Options with a background context, a silent logger,
// no depth limit and no hook.
func DefaultOptions() Options {
	silent := logrus.New()
	silent.SetOutput(io.Discard)

	return Options{
		Ctx:      context.Background(),
		Logger:   silent,
		MaxDepth: -1,
		OnVisit:  nil,
	}
}

// WithContext sets the context checked during the search.
// Passing a nil context has no effect.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithLogger sets the logger for search diagnostics. nil keeps the default.
func WithLogger(l logrus.FieldLogger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

// WithMaxDepth limits the recursion to limit moves below the root.
func WithMaxDepth(limit int) Option {
	return func(o *Options) {
		o.MaxDepth = limit
	}
}

// WithOnVisit installs fn as a pre-order hook.
func WithOnVisit(fn func(s burrow.State, depth int) error) Option {
	return func(o *Options) {
		o.OnVisit = fn
	}
}

// Stats describes the work done by one search.
type Stats struct {
	// Visited counts the states expanded (move generation performed).
	Visited int

	// CacheHits counts lookups answered by the memo table.
	CacheHits int

	// CycleHits counts revisits of a state already on the current path.
	CycleHits int

	// States is the number of distinct state keys in the memo table.
	States int

	// MaxDepth is the deepest recursion level expanded; the root is 0.
	MaxDepth int
}

// Result is the outcome of Solve.
type Result struct {
	// Cost is the minimum total energy to complete the burrow.
	Cost int

	// Stats reports search diagnostics.
	Stats Stats
}
