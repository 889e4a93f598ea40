package grid

import "fmt"

// Cell is one lattice position. Its State is edited by the caller (walls,
// endpoints) and by applied search actions (explored, path); its costs and
// parent are written by the search and cleared by Reset.
type Cell struct {
	id     CellID
	x, y   int
	size   int
	state  State
	gCost  int
	hCost  int
	parent CellID
}

func newCell(id CellID, x, y, size int) *Cell {
	return &Cell{id: id, x: x, y: y, size: size, parent: NoCell}
}

// ID returns the cell handle within its grid.
func (c *Cell) ID() CellID { return c.id }

// X returns the x coordinate.
func (c *Cell) X() int { return c.x }

// Y returns the y coordinate.
func (c *Cell) Y() int { return c.y }

// Size returns the width and height of the cell in coordinate units.
func (c *Cell) Size() int { return c.size }

// Point returns the cell coordinate.
func (c *Cell) Point() Point { return Point{X: c.x, Y: c.y} }

// State returns the current traversal state.
func (c *Cell) State() State { return c.state }

// GCost is the accumulated cost from the start along the best known path.
func (c *Cell) GCost() int { return c.gCost }

// HCost is the heuristic estimate to the goal.
func (c *Cell) HCost() int { return c.hCost }

// FCost returns GCost+HCost, or 0 while either of them is still zero.
// A zero result therefore also means "not computed yet", and the search
// selection rule relies on that.
func (c *Cell) FCost() int {
	if c.gCost == 0 || c.hCost == 0 {
		return 0
	}
	return c.gCost + c.hCost
}

// Parent returns the predecessor handle on the best known path and whether
// one is set.
func (c *Cell) Parent() (CellID, bool) {
	return c.parent, c.parent != NoCell
}

// SetGCost sets the accumulated cost.
func (c *Cell) SetGCost(cost int) { c.gCost = cost }

// SetHCost sets the heuristic estimate.
func (c *Cell) SetHCost(cost int) { c.hCost = cost }

// SetParent links the cell to its predecessor. Pass NoCell to clear it.
func (c *Cell) SetParent(id CellID) { c.parent = id }

// ResetCosts zeroes both costs and clears the parent link without touching
// the state.
func (c *Cell) ResetCosts() {
	c.gCost = 0
	c.hCost = 0
	c.parent = NoCell
}

// DistanceTo returns the octile distance to other in coordinate units:
// diagonal moves weigh 0.14 per unit and straight moves 0.10, and the sum is
// truncated toward zero.
func (c *Cell) DistanceTo(other *Cell) int {
	dx := abs(c.x - other.x)
	dy := abs(c.y - other.y)
	lo, hi := dx, dy
	if lo > hi {
		lo, hi = hi, lo
	}
	// Explicit float64 conversions stop the compiler fusing the products
	// into the sum, which would change truncation on some architectures.
	diagonal := float64(0.14 * float64(lo))
	straight := float64(float64(hi-lo) * 0.10)
	return int(diagonal + straight)
}

// SwitchWallState toggles between Blank and Wall. Other states are left alone.
func (c *Cell) SwitchWallState() {
	switch c.state {
	case Blank:
		c.state = Wall
	case Wall:
		c.state = Blank
	}
}

// SwitchEndpointState toggles between Endpoint and Blank. Other states are
// left alone; the endpoint list is maintained by Grid.SetEndpoint.
func (c *Cell) SwitchEndpointState() {
	switch c.state {
	case Endpoint:
		c.state = Blank
	case Blank:
		c.state = Endpoint
	}
}

// MarkExplored sets the Explored state unless the cell is a Wall or Endpoint.
func (c *Cell) MarkExplored() {
	if !c.state.protected() {
		c.state = Explored
	}
}

// MarkPath sets the Path state unless the cell is an Endpoint.
func (c *Cell) MarkPath() {
	if c.state != Endpoint {
		c.state = Path
	}
}

// Reset returns an explored or path cell to Blank and clears the search
// bookkeeping. Walls and endpoints keep their state.
func (c *Cell) Reset() {
	if !c.state.protected() {
		c.state = Blank
	}
	c.ResetCosts()
}

// String renders the cell as "cell(x,y)".
func (c *Cell) String() string {
	return fmt.Sprintf("cell(%d,%d)", c.x, c.y)
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
