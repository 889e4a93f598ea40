// Package astar finds a path between the two endpoints of a grid.Grid with
// A* and the octile heuristic of grid.Cell.DistanceTo, and reports its
// progress as batches on an events.Sink.
//
// Overview:
//
//   - The open set is kept in insertion order. Each iteration selects the
//     cell with the lowest fCost, preferring a lower hCost: a candidate
//     replaces the running best only when its fCost is <= and its hCost is <.
//     This is not a total order; which cell wins depends on the open-set order,
//     and the explored sequence depends on that in turn.
//   - Neighbours are visited in grid.Grid.Neighbors order. Walls are skipped.
//     Every other neighbour gets an "explored" action, closed or not.
//   - A neighbour is updated when the new cost is lower or when it is not in
//     the open set yet.
//   - On reaching the goal the parent links are walked back to the start and
//     one "path" batch is pushed in start→goal order.
//
// Events:
//
//   - One KindExplored batch per iteration that expands a cell (possibly empty).
//   - One KindPath batch, only on success.
//   - Sink.Close(nil) on success, Sink.Close(err) on any failure.
//
// The search is synchronous and single-threaded and never waits on the sink.
// Cell states are not changed by the search; consumers apply the actions.
// Cell costs and parents are reset at the start of each run.
//
// Errors (sentinel):
//
//   - ErrNilGrid:         the grid pointer is nil.
//   - ErrNeedEndpoints:   fewer than two endpoints are set; nothing runs.
//   - ErrNoPath:          the open set ran dry before reaching the goal.
//   - ErrIterationLimit:  WithMaxIterations was exceeded.
//   - ErrOptionViolation: an option was given an invalid value.
//   - ErrFinished:        Run was called twice on one PathFinder.
//
// Complexity:
//
//   - Time:  O(V²) worst case, since selection scans the open set.
//   - Space: O(V) for the open and closed sets.
//
// Example:
//
//	g, _ := grid.FromRows([]string{"S.#", "..G"}, 20)
//	res, err := astar.FindPath(g)
//	if errors.Is(err, astar.ErrNoPath) {
//	    // show "no route"
//	}
//	_ = res.Path // start → goal cell handles
package astar
