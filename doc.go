// Package gridpath is a grid path-finding engine: A* over a square lattice
// with eight-way movement, reporting its exploration as an ordered stream of
// events that a display can replay at its own pace.
//
// Packages:
//
//   - grid: cells, their traversal states and costs, the lattice with its
//     neighbour order and the two-slot endpoint list, ASCII maps.
//   - astar: the search. One PathFinder per search, functional options,
//     sentinel errors, a Result summary.
//   - events: actions, batches and sinks. Queue decouples the search from
//     the display; Play drains it on a ticker.
//   - cmd/gridpath: a terminal program that animates one search.
//
// Quick start:
//
//	g, _ := grid.FromRows([]string{
//	    "S#G",
//	    "...",
//	}, 100)
//	q := events.NewQueue()
//	res, err := astar.FindPath(g, astar.WithSink(q))
//	// res.Path is start -> goal; q holds the batches to animate.
//	_ = events.Play(ctx, q, 15*time.Millisecond, func(a events.Action) error {
//	    return a.Apply(g)
//	})
//
// The engine never draws and never waits on its consumer. Grids are not safe
// for concurrent mutation; finish the search before applying its actions.
package gridpath
