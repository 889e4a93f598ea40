package events

import (
	"context"
	"sync"
)

// Queue is a finite, ordered, producer-terminated buffer of batches.
//
// Push and Close never block. Reads block until a batch is available, the
// queue is closed and drained, or the context is done. One producer and any
// number of consumers may use a Queue concurrently; each action is handed
// to exactly one reader.
type Queue struct {
	mu      sync.Mutex
	batches []Batch
	offset  int // actions of batches[0] already handed out by Next
	closed  bool
	outcome error
	wake    chan struct{} // closed and replaced on every state change
}

// NewQueue returns an empty, open queue.
func NewQueue() *Queue {
	return &Queue{wake: make(chan struct{})}
}

// Push appends b. Batches pushed after Close are dropped.
func (q *Queue) Push(b Batch) {
	q.mu.Lock()
	defer q.mu.Unlock()
	if q.closed {
		return
	}
	q.batches = append(q.batches, b)
	q.broadcast()
}

// Close marks the end of the stream and records the producer outcome.
// Only the first call has any effect.
func (q *Queue) Close(err error) {
	q.mu.Lock()
	defer q.mu.Unlock()
	if q.closed {
		return
	}
	q.closed = true
	q.outcome = err
	q.broadcast()
}

// broadcast wakes every blocked reader. Caller holds q.mu.
func (q *Queue) broadcast() {
	close(q.wake)
	q.wake = make(chan struct{})
}

// Closed reports whether the producer has closed the queue.
func (q *Queue) Closed() bool {
	q.mu.Lock()
	defer q.mu.Unlock()
	return q.closed
}

// Outcome returns the error the producer closed the queue with. It is nil
// while the queue is open and after a successful search.
func (q *Queue) Outcome() error {
	q.mu.Lock()
	defer q.mu.Unlock()
	return q.outcome
}

// Len returns the number of batches not yet fully consumed.
func (q *Queue) Len() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return len(q.batches)
}

// Purge drops every pending batch and returns how many actions were
// discarded. A consumer uses it to abandon a running animation; the queue
// stays open or closed as it was.
func (q *Queue) Purge() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	dropped := -q.offset
	for _, b := range q.batches {
		dropped += len(b.Actions)
	}
	q.batches = nil
	q.offset = 0
	q.broadcast()
	return dropped
}

// NextBatch removes and returns the next batch. If Next already consumed
// part of it, only the remaining actions are returned.
// It returns ErrClosed once the queue is closed and empty.
func (q *Queue) NextBatch(ctx context.Context) (Batch, error) {
	for {
		q.mu.Lock()
		if len(q.batches) > 0 {
			b := q.batches[0]
			b.Actions = b.Actions[q.offset:]
			q.popLocked()
			q.mu.Unlock()
			return b, nil
		}
		if q.closed {
			q.mu.Unlock()
			return Batch{}, ErrClosed
		}
		wake := q.wake
		q.mu.Unlock()

		select {
		case <-ctx.Done():
			return Batch{}, ctx.Err()
		case <-wake:
		}
	}
}

// Next removes and returns the next action, skipping empty batches.
// It returns ErrClosed once the queue is closed and empty.
func (q *Queue) Next(ctx context.Context) (Action, error) {
	for {
		q.mu.Lock()
		for len(q.batches) > 0 {
			b := q.batches[0]
			if q.offset < len(b.Actions) {
				a := b.Actions[q.offset]
				q.offset++
				if q.offset == len(b.Actions) {
					q.popLocked()
				}
				q.mu.Unlock()
				return a, nil
			}
			q.popLocked()
		}
		if q.closed {
			q.mu.Unlock()
			return Action{}, ErrClosed
		}
		wake := q.wake
		q.mu.Unlock()

		select {
		case <-ctx.Done():
			return Action{}, ctx.Err()
		case <-wake:
		}
	}
}

// popLocked drops the head batch. Caller holds q.mu.
func (q *Queue) popLocked() {
	q.batches[0] = Batch{}
	q.batches = q.batches[1:]
	q.offset = 0
}
