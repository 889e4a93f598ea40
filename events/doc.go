// Package events carries search progress from the astar engine to whoever
// displays it.
//
// The engine pushes complete, ordered batches of actions: one batch of
// "mark explored" actions per search iteration and, on success, one batch of
// "mark path" actions. It never waits for the consumer. A consumer drains
// the actions at its own pace, typically one per display tick, and applies
// them to the grid.
//
// Sinks:
//
//   - Queue: unbounded, ordered, producer-terminated buffer with blocking,
//     context-aware reads. Use it to decouple search speed from display speed.
//   - Recorder: keeps every batch in memory, for tests and logging.
//   - Discard: drops everything.
//
// Play drains a Queue on a ticker, replacing a timer callback loop.
//
// Every batch carries the search ID it came from, so a consumer sharing one
// display across searches can tell stale batches apart.
package events
