package events

import "sync"

// Recorder is a Sink that keeps every batch in memory.
type Recorder struct {
	mu      sync.Mutex
	batches []Batch
	closed  bool
	err     error
}

// Push stores b.
func (r *Recorder) Push(b Batch) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.batches = append(r.batches, b)
}

// Close records the outcome. Only the first call has any effect.
func (r *Recorder) Close(err error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.closed {
		return
	}
	r.closed = true
	r.err = err
}

// Batches returns a copy of the recorded batches in push order.
func (r *Recorder) Batches() []Batch {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]Batch, len(r.batches))
	copy(out, r.batches)
	return out
}

// Of returns the recorded batches of kind k.
func (r *Recorder) Of(k Kind) []Batch {
	var out []Batch
	for _, b := range r.Batches() {
		if b.Kind == k {
			out = append(out, b)
		}
	}
	return out
}

// Actions flattens every recorded batch into one ordered slice.
func (r *Recorder) Actions() []Action {
	var out []Action
	for _, b := range r.Batches() {
		out = append(out, b.Actions...)
	}
	return out
}

// Closed reports whether Close was called.
func (r *Recorder) Closed() bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.closed
}

// Err returns the outcome passed to Close.
func (r *Recorder) Err() error {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.err
}

type discard struct{}

func (discard) Push(Batch)  {}
func (discard) Close(error) {}

// Discard is a Sink that drops everything.
var Discard Sink = discard{}

// Tee forwards every batch and the outcome to each of sinks in order.
func Tee(sinks ...Sink) Sink {
	return tee(sinks)
}

type tee []Sink

func (t tee) Push(b Batch) {
	for _, s := range t {
		s.Push(b)
	}
}

func (t tee) Close(err error) {
	for _, s := range t {
		s.Close(err)
	}
}
