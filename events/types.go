package events

import (
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/katalvlaran/gridpath/grid"
)

var (
	// ErrClosed is returned by reads once the producer has closed the queue
	// and every batch has been drained. Outcome reports how the search ended.
	ErrClosed = errors.New("events: queue closed")
	// ErrUnknownCell indicates an action addressing a cell the grid does not have.
	ErrUnknownCell = errors.New("events: action addresses an unknown cell")
	// ErrUnknownKind indicates an action of an unrecognised kind.
	ErrUnknownKind = errors.New("events: unknown action kind")
)

// Kind tells the consumer how to mark a cell.
type Kind int

const (
	// KindExplored marks a cell as looked at by the search.
	KindExplored Kind = iota
	// KindPath marks a cell as part of the final path.
	KindPath
)

// String returns "explored" or "path".
func (k Kind) String() string {
	switch k {
	case KindExplored:
		return "explored"
	case KindPath:
		return "path"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

// Action is one presentation step: apply Kind's marking to Cell.
type Action struct {
	Kind Kind
	Cell grid.CellID
}

// Apply performs the marking on g.
func (a Action) Apply(g *grid.Grid) error {
	c := g.Cell(a.Cell)
	if c == nil {
		return fmt.Errorf("%w: %d", ErrUnknownCell, a.Cell)
	}
	switch a.Kind {
	case KindExplored:
		c.MarkExplored()
	case KindPath:
		c.MarkPath()
	default:
		return fmt.Errorf("%w: %s", ErrUnknownKind, a.Kind)
	}
	return nil
}

// Batch is the ordered group of actions produced by one step of a search.
// Seq numbers the batches of a search from 0.
type Batch struct {
	Search  uuid.UUID
	Seq     int
	Kind    Kind
	Actions []Action
}

// Cells returns the addressed cell handles in order.
func (b Batch) Cells() []grid.CellID {
	out := make([]grid.CellID, len(b.Actions))
	for i, a := range b.Actions {
		out[i] = a.Cell
	}
	return out
}

// Sink receives the batches of one search. Push must not block the
// producer. Close is called exactly once when the search ends, with nil on
// success or the error that ended it.
type Sink interface {
	Push(b Batch)
	Close(err error)
}
