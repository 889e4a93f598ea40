package grid

import "fmt"

// State is the traversal state of a Cell.
type State int

const (
	// Blank is a traversable, unmarked cell.
	Blank State = iota
	// Wall blocks traversal.
	Wall
	// Endpoint is one of the two designated start/goal cells.
	Endpoint
	// Explored marks a cell the search has looked at.
	Explored
	// Path marks a cell on the reconstructed path.
	Path
)

// String returns the lower-case state name.
func (s State) String() string {
	switch s {
	case Blank:
		return "blank"
	case Wall:
		return "wall"
	case Endpoint:
		return "endpoint"
	case Explored:
		return "explored"
	case Path:
		return "path"
	default:
		return fmt.Sprintf("state(%d)", int(s))
	}
}

// protected reports whether the search must leave the state alone when
// marking cells explored.
func (s State) protected() bool {
	return s == Wall || s == Endpoint
}

// CellID is a handle to a Cell within its owning Grid.
type CellID int

// NoCell is the CellID used for "no cell", e.g. a missing parent link.
const NoCell CellID = -1

// Point is an integer lattice coordinate.
type Point struct {
	X, Y int
}

// String renders the point as "(x,y)".
func (p Point) String() string {
	return fmt.Sprintf("(%d,%d)", p.X, p.Y)
}

// Options configures NewLattice.
type Options struct {
	// Width and Height bound the lattice in coordinate units: cells are
	// created for x in [0,Width) and y in [0,Height).
	Width, Height int
	// Step is the spacing between neighbouring cells and the size of each cell.
	Step int

	err error
}

// Option is a functional option for NewLattice.
type Option func(*Options)

// DefaultOptions returns the 1280×720 lattice with 20-unit cells.
func DefaultOptions() Options {
	return Options{
		Width:  1280,
		Height: 720,
		Step:   20,
	}
}

// WithWidth sets the lattice width. Must be positive.
func WithWidth(w int) Option {
	return func(o *Options) {
		if w <= 0 {
			o.err = fmt.Errorf("%w: width must be positive (%d)", ErrOptionViolation, w)
			return
		}
		o.Width = w
	}
}

// WithHeight sets the lattice height. Must be positive.
func WithHeight(h int) Option {
	return func(o *Options) {
		if h <= 0 {
			o.err = fmt.Errorf("%w: height must be positive (%d)", ErrOptionViolation, h)
			return
		}
		o.Height = h
	}
}

// WithStep sets the cell size and lattice spacing. Must be positive.
func WithStep(step int) Option {
	return func(o *Options) {
		if step <= 0 {
			o.err = fmt.Errorf("%w: step must be positive (%d)", ErrOptionViolation, step)
			return
		}
		o.Step = step
	}
}
