package grid

import "errors"

var (
	// ErrBadStep indicates a non-positive lattice step.
	ErrBadStep = errors.New("grid: step must be positive")
	// ErrCellExists indicates a cell already occupies the coordinate.
	ErrCellExists = errors.New("grid: cell already exists at coordinate")
	// ErrEmptyGrid indicates the input map has no rows or no columns.
	ErrEmptyGrid = errors.New("grid: input map must have at least one row and one column")
	// ErrNonRectangular indicates map rows of differing lengths.
	ErrNonRectangular = errors.New("grid: all rows must have the same length")
	// ErrBadGlyph indicates an unknown character in an ASCII map.
	ErrBadGlyph = errors.New("grid: unknown map glyph")
	// ErrTooManyEndpoints indicates a map names the same endpoint glyph twice.
	ErrTooManyEndpoints = errors.New("grid: endpoint glyph used more than once")
	// ErrWallEndpoint indicates an attempt to make a wall cell an endpoint.
	ErrWallEndpoint = errors.New("grid: a wall cannot be an endpoint")
	// ErrOptionViolation indicates an invalid lattice option.
	ErrOptionViolation = errors.New("grid: invalid option supplied")
)

// ErrUnknownCell indicates a nil cell or one that belongs to another grid.
var ErrUnknownCell = errors.New("grid: cell does not belong to this grid")
