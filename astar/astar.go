package astar

import (
	"fmt"
	"slices"

	"github.com/google/uuid"
	"github.com/zyedidia/generic/mapset"

	"github.com/katalvlaran/gridpath/events"
	"github.com/katalvlaran/gridpath/grid"
)

// PathFinder holds the state of one search over a grid. Create one per
// search with New; it cannot be rerun.
type PathFinder struct {
	g           *grid.Grid
	start, goal *grid.Cell
	options     Options

	open   []*grid.Cell            // insertion order, used for selection
	inOpen mapset.Set[grid.CellID] // membership of open
	closed mapset.Set[grid.CellID] // finalised cells

	seq  int
	res  Result
	done bool
}

// New prepares a search between the grid's start (oldest) and goal (newest)
// endpoints.
//
// Validation, in order:
//  1. Options must be valid (ErrOptionViolation).
//  2. g must be non-nil (ErrNilGrid).
//  3. g must hold two endpoints (ErrNeedEndpoints).
//
// On failure the configured sink is closed with the error and receives no
// batches.
func New(g *grid.Grid, opts ...Option) (*PathFinder, error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	fail := func(err error) (*PathFinder, error) {
		cfg.Sink.Close(err)
		return nil, err
	}
	if cfg.err != nil {
		return fail(cfg.err)
	}
	if g == nil {
		return fail(ErrNilGrid)
	}
	endpoints := g.Endpoints()
	if len(endpoints) != 2 {
		return fail(fmt.Errorf("%w: have %d", ErrNeedEndpoints, len(endpoints)))
	}
	if cfg.SearchID == uuid.Nil {
		cfg.SearchID = uuid.New()
	}

	return &PathFinder{
		g:       g,
		start:   endpoints[0],
		goal:    endpoints[1],
		options: cfg,
		inOpen:  mapset.New[grid.CellID](),
		closed:  mapset.New[grid.CellID](),
		res:     Result{SearchID: cfg.SearchID},
	}, nil
}

// FindPath runs a complete search on g. It is New followed by Run.
func FindPath(g *grid.Grid, opts ...Option) (Result, error) {
	pf, err := New(g, opts...)
	if err != nil {
		return Result{}, err
	}
	return pf.Run()
}

// ID returns the search ID stamped on every batch.
func (pf *PathFinder) ID() uuid.UUID { return pf.res.SearchID }

// Start returns the start endpoint.
func (pf *PathFinder) Start() *grid.Cell { return pf.start }

// Goal returns the goal endpoint.
func (pf *PathFinder) Goal() *grid.Cell { return pf.goal }

// Run executes the search to completion and closes the sink with its
// outcome. Failures are ErrNoPath and ErrIterationLimit; a second call
// returns ErrFinished.
func (pf *PathFinder) Run() (Result, error) {
	if pf.done {
		return pf.res, ErrFinished
	}
	pf.done = true

	err := pf.search()
	pf.options.Sink.Close(err)
	return pf.res, err
}

// search is the A* main loop.
func (pf *PathFinder) search() error {
	pf.g.ResetCosts()
	pf.open = append(pf.open[:0], pf.start)
	pf.inOpen.Put(pf.start.ID())

	limit := pf.options.MaxIterations
	for len(pf.open) > 0 {
		if limit > 0 && pf.res.Iterations == limit {
			return fmt.Errorf("%w: %d", ErrIterationLimit, limit)
		}

		i := pf.selectCurrent()
		current := pf.open[i]
		pf.open = append(pf.open[:i], pf.open[i+1:]...)
		pf.inOpen.Remove(current.ID())
		pf.closed.Put(current.ID())
		pf.res.Iterations++

		if current == pf.goal {
			pf.retrace()
			return nil
		}
		pf.expand(current)
	}

	return ErrNoPath
}

// selectCurrent returns the index of the open cell to expand next. The
// running best starts at the oldest open cell and is replaced only by a
// candidate with fCost <= best and hCost < best.
func (pf *PathFinder) selectCurrent() int {
	best := 0
	for i := 1; i < len(pf.open); i++ {
		c, b := pf.open[i], pf.open[best]
		if c.FCost() <= b.FCost() && c.HCost() < b.HCost() {
			best = i
		}
	}
	return best
}

// expand relaxes the neighbours of current and pushes their explored batch.
func (pf *PathFinder) expand(current *grid.Cell) {
	batch := make([]events.Action, 0, 8)
	for n := range pf.g.Neighbors(current) {
		if n.State() == grid.Wall {
			continue
		}
		// Closed cells are still reported explored.
		batch = append(batch, events.Action{Kind: events.KindExplored, Cell: n.ID()})
		if pf.closed.Has(n.ID()) {
			continue
		}

		tentative := current.GCost() + current.DistanceTo(n)
		known := pf.inOpen.Has(n.ID())
		// A zero gCost also means "undiscovered", so discovery is governed
		// by membership, not by the comparison.
		if tentative < n.GCost() || !known {
			n.SetGCost(tentative)
			n.SetHCost(n.DistanceTo(pf.goal))
			n.SetParent(current.ID())
			if !known {
				pf.open = append(pf.open, n)
				pf.inOpen.Put(n.ID())
			}
		}
	}

	pf.res.Explored += len(batch)
	pf.push(events.KindExplored, batch)
}

// retrace walks the parent links from the goal back to the start and pushes
// the path batch in start→goal order.
func (pf *PathFinder) retrace() {
	var chain []grid.CellID
	for c := pf.goal; c != nil; {
		chain = append(chain, c.ID())
		parent, ok := c.Parent()
		if !ok {
			break
		}
		c = pf.g.Cell(parent)
	}
	slices.Reverse(chain)

	actions := make([]events.Action, len(chain))
	for i, id := range chain {
		actions[i] = events.Action{Kind: events.KindPath, Cell: id}
	}

	pf.res.Found = true
	pf.res.Path = chain
	pf.res.Cost = pf.goal.GCost()
	pf.push(events.KindPath, actions)
}

func (pf *PathFinder) push(kind events.Kind, actions []events.Action) {
	pf.options.Sink.Push(events.Batch{
		Search:  pf.res.SearchID,
		Seq:     pf.seq,
		Kind:    kind,
		Actions: actions,
	})
	pf.seq++
	pf.res.Batches++
}
