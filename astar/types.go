package astar

import (
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/katalvlaran/gridpath/events"
	"github.com/katalvlaran/gridpath/grid"
)

// Sentinel errors returned by the search.
var (
	// ErrNilGrid indicates a nil *grid.Grid.
	ErrNilGrid = errors.New("astar: grid is nil")

	// ErrNeedEndpoints indicates the grid does not hold two endpoints.
	ErrNeedEndpoints = errors.New("astar: a start and a goal endpoint are required")

	// ErrNoPath indicates the goal is unreachable from the start.
	ErrNoPath = errors.New("astar: no path between endpoints")

	// ErrIterationLimit indicates the search stopped at the configured limit.
	ErrIterationLimit = errors.New("astar: iteration limit reached")

	// ErrFinished indicates Run was called again on a spent PathFinder.
	ErrFinished = errors.New("astar: search already ran")

	// ErrOptionViolation indicates an invalid Option value.
	ErrOptionViolation = errors.New("astar: invalid option supplied")
)

// Options configures a PathFinder.
type Options struct {
	// Sink receives the exploration and path batches. Defaults to events.Discard.
	Sink events.Sink

	// MaxIterations caps the number of expanded cells; 0 means no cap.
	MaxIterations int

	// SearchID tags every batch. A fresh random ID is used when zero.
	SearchID uuid.UUID

	err error
}

// Option is a functional option for New and FindPath.
type Option func(*Options)

// DefaultOptions returns Options with a discarding sink and no iteration cap.
func DefaultOptions() Options {
	return Options{
		Sink:          events.Discard,
		MaxIterations: 0,
	}
}

// WithSink routes batches to s. A nil sink is ignored.
func WithSink(s events.Sink) Option {
	return func(o *Options) {
		if s != nil {
			o.Sink = s
		}
	}
}

// WithMaxIterations stops the search after n expansions.
//
//	n > 0:  limit to n iterations
//	n == 0: explicit no limit
//	n < 0:  invalid option → ErrOptionViolation
func WithMaxIterations(n int) Option {
	return func(o *Options) {
		if n < 0 {
			o.err = fmt.Errorf("%w: MaxIterations cannot be negative (%d)", ErrOptionViolation, n)
			return
		}
		o.MaxIterations = n
	}
}

// WithSearchID tags batches with id instead of a random one.
func WithSearchID(id uuid.UUID) Option {
	return func(o *Options) {
		o.SearchID = id
	}
}

// Result is the outcome of one search.
type Result struct {
	// SearchID is the tag carried by every batch of this search.
	SearchID uuid.UUID
	// Found reports whether the goal was reached.
	Found bool
	// Path lists the cells from start to goal; nil unless Found.
	Path []grid.CellID
	// Cost is the goal's gCost; 0 unless Found.
	Cost int
	// Iterations counts the cells taken from the open set, the goal included.
	Iterations int
	// Explored counts the explored actions pushed.
	Explored int
	// Batches counts every batch pushed, path batch included.
	Batches int
}
