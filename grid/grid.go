package grid

import (
	"fmt"
	"iter"
)

// maxEndpoints is the capacity of the endpoint list.
const maxEndpoints = 2

// Grid owns a fixed set of cells on a lattice with a uniform step and the
// ordered list of designated endpoints.
type Grid struct {
	step      int
	cells     []*Cell
	index     map[Point]CellID
	endpoints []*Cell
}

// New returns an empty grid whose neighbours are step units apart.
// Populate it with CreateCell.
func New(step int) (*Grid, error) {
	if step <= 0 {
		return nil, fmt.Errorf("%w: %d", ErrBadStep, step)
	}
	return &Grid{
		step:      step,
		index:     make(map[Point]CellID),
		endpoints: make([]*Cell, 0, maxEndpoints),
	}, nil
}

// NewLattice builds a grid covering [0,Width)×[0,Height) in Step increments.
// Cells are created column by column (x outer, y inner).
// Complexity: O(W·H/Step²).
func NewLattice(opts ...Option) (*Grid, error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.err != nil {
		return nil, cfg.err
	}

	g, err := New(cfg.Step)
	if err != nil {
		return nil, err
	}
	for x := 0; x < cfg.Width; x += cfg.Step {
		for y := 0; y < cfg.Height; y += cfg.Step {
			if _, err = g.CreateCell(x, y, cfg.Step); err != nil {
				return nil, err
			}
		}
	}
	return g, nil
}

// CreateCell instantiates a Blank cell at (x,y) and indexes it.
// Returns ErrCellExists if the coordinate is already taken.
func (g *Grid) CreateCell(x, y, size int) (*Cell, error) {
	p := Point{X: x, Y: y}
	if _, ok := g.index[p]; ok {
		return nil, fmt.Errorf("%w: %s", ErrCellExists, p)
	}
	c := newCell(CellID(len(g.cells)), x, y, size)
	g.cells = append(g.cells, c)
	g.index[p] = c.id

	return c, nil
}

// Step returns the spacing between neighbouring cells.
func (g *Grid) Step() int { return g.step }

// Len returns the number of cells.
func (g *Grid) Len() int { return len(g.cells) }

// Cell returns the cell for id, or nil if id is out of range.
func (g *Grid) Cell(id CellID) *Cell {
	if id < 0 || int(id) >= len(g.cells) {
		return nil
	}
	return g.cells[id]
}

// Lookup returns the cell at (x,y), if any.
func (g *Grid) Lookup(x, y int) (*Cell, bool) {
	id, ok := g.index[Point{X: x, Y: y}]
	if !ok {
		return nil, false
	}
	return g.cells[id], true
}

// Cells yields every cell in creation order.
func (g *Grid) Cells() iter.Seq[*Cell] {
	return func(yield func(*Cell) bool) {
		for _, c := range g.cells {
			if !yield(c) {
				return
			}
		}
	}
}

// Bounds returns the smallest and largest coordinates in use.
// All four values are zero for an empty grid.
func (g *Grid) Bounds() (minX, minY, maxX, maxY int) {
	for i, c := range g.cells {
		if i == 0 {
			minX, maxX, minY, maxY = c.x, c.x, c.y, c.y
			continue
		}
		minX, maxX = min(minX, c.x), max(maxX, c.x)
		minY, maxY = min(minY, c.y), max(maxY, c.y)
	}
	return minX, minY, maxX, maxY
}

// neighborOffsets lists the neighbour directions in unit steps. The order is
// part of the search contract: it decides which of several equal candidates
// gets discovered first.
var neighborOffsets = [8][2]int{
	{1, 0}, {-1, 0}, {0, 1}, {0, -1},
	{1, 1}, {-1, 1}, {1, -1}, {-1, -1},
}

// Neighbors lazily yields the existing cells one step away from c, in the
// order +x, -x, +y, -y, (+x,+y), (-x,+y), (+x,-y), (-x,-y). Positions outside
// the grid are skipped.
func (g *Grid) Neighbors(c *Cell) iter.Seq[*Cell] {
	return func(yield func(*Cell) bool) {
		for _, d := range neighborOffsets {
			n, ok := g.Lookup(c.x+d[0]*g.step, c.y+d[1]*g.step)
			if !ok {
				continue
			}
			if !yield(n) {
				return
			}
		}
	}
}

// owns reports whether c is one of g's cells.
func (g *Grid) owns(c *Cell) bool {
	return c != nil && g.Cell(c.id) == c
}

// SetEndpoint toggles c as an endpoint.
//
//   - An endpoint already in the list goes back to Blank and leaves the list.
//   - A Wall is rejected with ErrWallEndpoint.
//   - Explored or Path cells are cleared to Blank first.
//   - With two endpoints already set, the oldest is evicted and set to Blank
//     before c is appended.
func (g *Grid) SetEndpoint(c *Cell) error {
	if !g.owns(c) {
		return ErrUnknownCell
	}
	if i := g.endpointIndex(c); i >= 0 {
		c.SwitchEndpointState()
		g.endpoints = append(g.endpoints[:i], g.endpoints[i+1:]...)
		return nil
	}

	switch c.state {
	case Wall:
		return fmt.Errorf("%w: %s", ErrWallEndpoint, c)
	case Explored, Path, Endpoint:
		// An Endpoint outside the list was set by hand; adopt it.
		c.state = Blank
	}

	if len(g.endpoints) == maxEndpoints {
		oldest := g.endpoints[0]
		oldest.state = Blank
		g.endpoints = append(g.endpoints[:0], g.endpoints[1:]...)
	}
	c.SwitchEndpointState()
	g.endpoints = append(g.endpoints, c)

	return nil
}

func (g *Grid) endpointIndex(c *Cell) int {
	for i, e := range g.endpoints {
		if e == c {
			return i
		}
	}
	return -1
}

// Endpoints returns a copy of the endpoint list, oldest first.
func (g *Grid) Endpoints() []*Cell {
	out := make([]*Cell, len(g.endpoints))
	copy(out, g.endpoints)
	return out
}

// Start returns the oldest endpoint, or nil if none is set.
func (g *Grid) Start() *Cell {
	if len(g.endpoints) == 0 {
		return nil
	}
	return g.endpoints[0]
}

// Goal returns the second endpoint, or nil if fewer than two are set.
func (g *Grid) Goal() *Cell {
	if len(g.endpoints) < maxEndpoints {
		return nil
	}
	return g.endpoints[1]
}

// ClearEndpoints sets every endpoint back to Blank and empties the list.
func (g *Grid) ClearEndpoints() {
	for _, e := range g.endpoints {
		e.state = Blank
	}
	g.endpoints = g.endpoints[:0]
}

// ResetAll calls Reset on every cell: explored and path marks are cleared,
// walls and endpoints stay, and all cost bookkeeping is zeroed.
func (g *Grid) ResetAll() {
	for _, c := range g.cells {
		c.Reset()
	}
}

// ResetCosts zeroes the costs and parent links of every cell and leaves the
// states as they are.
func (g *Grid) ResetCosts() {
	for _, c := range g.cells {
		c.ResetCosts()
	}
}
