package events

import (
	"context"
	"errors"
	"time"
)

// Source is the read side of a stream, as implemented by Queue.
type Source interface {
	Next(ctx context.Context) (Action, error)
	Outcome() error
}

// Play drains src one action per tick and hands each to apply. With a
// non-positive interval it drains as fast as actions arrive.
//
// It returns the producer's outcome once the stream is exhausted, the first
// error returned by apply, or the context error if ctx ends first. Actions
// not yet applied when Play stops stay in src.
func Play(ctx context.Context, src Source, interval time.Duration, apply func(Action) error) error {
	var tick <-chan time.Time
	if interval > 0 {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		tick = ticker.C
	}

	for {
		if tick != nil {
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-tick:
			}
		}

		a, err := src.Next(ctx)
		if errors.Is(err, ErrClosed) {
			return src.Outcome()
		}
		if err != nil {
			return err
		}
		if err = apply(a); err != nil {
			return err
		}
	}
}
