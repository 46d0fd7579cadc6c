package walker

import (
	"context"
	"slices"
	"sync"

	"github.com/zyedidia/generic/mapset"
	"golang.org/x/sync/errgroup"

	"github.com/PanoramicPanda/gridkit/grid"
)

// LoopObstacles returns every cell on the unobstructed patrol (start
// excluded) that traps the agent in a loop when turned into an obstacle.
//
// Behavior:
//  1. Run the unobstructed patrol once, without OnStep, to collect
//     candidate cells.
//  2. Evaluate each candidate with Simulate; runs share only the read-only
//     map and are spread over at most Options.Workers goroutines.
//  3. Merge hits into a set and return them sorted row-major, so the result
//     does not depend on execution order.
//
// Returns ctx.Err() if ctx is cancelled before the sweep completes.
func (w *Walker) LoopObstacles(ctx context.Context) ([]grid.Coordinate, error) {
	// OnStep belongs to the caller's Walk, not to the candidate scan.
	candidates := w.run(overlay{}, true, false).Visited

	var mu sync.Mutex
	found := mapset.New[grid.Coordinate]()

	eg, gctx := errgroup.WithContext(ctx)
	eg.SetLimit(w.opts.Workers)
	for _, c := range candidates {
		if c == w.start.Position {
			continue
		}
		if gctx.Err() != nil {
			break
		}
		eg.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			if w.Simulate(c) == Loop {
				mu.Lock()
				found.Put(c)
				mu.Unlock()
			}
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	out := make([]grid.Coordinate, 0, found.Size())
	found.Each(func(c grid.Coordinate) {
		out = append(out, c)
	})
	slices.SortFunc(out, grid.Compare)
	return out, nil
}
