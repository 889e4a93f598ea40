// Command gridpath runs one A* search over an ASCII map and animates the
// exploration in the terminal.
//
// Configuration comes from the environment, or a .env file in the working
// directory:
//
//	GRIDPATH_MAP       rows separated by '/', e.g. "S.#/..G"
//	GRIDPATH_STEP      cell size (default 20)
//	GRIDPATH_TICK      delay between actions (default 15ms, 0 for none)
//	GRIDPATH_FRAMES    print a frame every N actions (default 1)
//	GRIDPATH_MAX_ITER  iteration cap (default 0, none)
//
// Exit status is 0 when a path is found, 1 when the search fails and 2 on a
// configuration error.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"

	"github.com/katalvlaran/gridpath/astar"
	"github.com/katalvlaran/gridpath/events"
	"github.com/katalvlaran/gridpath/grid"
)

const (
	exitOK     = 0
	exitFailed = 1
	exitConfig = 2
)

func main() {
	cfg, err := loadConfig()
	if err != nil {
		log.Printf("[APP] [ERROR] %v", err)
		os.Exit(exitConfig)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	os.Exit(run(ctx, cfg, os.Stdout))
}

// run executes the search described by cfg and writes frames to w. It
// returns the process exit status.
func run(ctx context.Context, cfg Config, w io.Writer) int {
	g, err := grid.FromRows(cfg.Rows, cfg.Step)
	if err != nil {
		log.Printf("[APP] [ERROR] Invalid map: %v", err)
		return exitConfig
	}
	g.ResetAll()

	q := events.NewQueue()
	rec := &events.Recorder{}
	opts := []astar.Option{astar.WithSink(events.Tee(q, rec))}
	if cfg.MaxIterations > 0 {
		opts = append(opts, astar.WithMaxIterations(cfg.MaxIterations))
	}

	pf, err := astar.New(g, opts...)
	if err != nil {
		log.Printf("[APP] [ERROR] Cannot start search: %v", err)
		return exitConfig
	}
	log.Printf("[APP] [INFO] Search %s from %s to %s", pf.ID(), pf.Start(), pf.Goal())

	// The search completes before playback starts: Play mutates cell states
	// that the search reads.
	res, searchErr := pf.Run()
	log.Printf("[APP] [INFO] Queued %d batches (%d explored)", q.Len(), len(rec.Of(events.KindExplored)))

	applied := 0
	playErr := events.Play(ctx, q, cfg.Tick, func(a events.Action) error {
		if err := a.Apply(g); err != nil {
			return err
		}
		applied++
		if applied%cfg.Frames == 0 {
			fmt.Fprintf(w, "%s\n", g.Render())
		}
		return nil
	})
	if ctx.Err() != nil {
		log.Printf("[APP] [INFO] Interrupted, dropped %d pending actions", q.Purge())
	}

	if applied == 0 || applied%cfg.Frames != 0 {
		fmt.Fprintf(w, "%s\n", g.Render())
	}
	switch {
	case searchErr == nil && playErr == nil:
		log.Printf("[APP] [INFO] Path found: %d cells, cost %d, %d iterations, %d cells explored",
			len(res.Path), res.Cost, res.Iterations, res.Explored)
		return exitOK
	case errors.Is(searchErr, astar.ErrNoPath):
		log.Printf("[APP] [INFO] No path after %d iterations", res.Iterations)
	case searchErr != nil:
		log.Printf("[APP] [ERROR] Search failed: %v", searchErr)
	default:
		log.Printf("[APP] [ERROR] Playback stopped: %v", playErr)
	}
	return exitFailed
}
