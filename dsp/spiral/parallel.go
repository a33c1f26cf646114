package spiral

import (
	"context"
	"runtime"

	"golang.org/x/sync/errgroup"
)

// cancelCheckInterval is the number of frequencies a worker evaluates between
// context checks.
const cancelCheckInterval = 256

// PositionsContext is like [Calculator.Positions] but splits batches of at
// least the parallel threshold into chunks evaluated concurrently. The result
// is identical to Positions. It stops early and returns ctx.Err() when ctx is
// cancelled.
func (c *Calculator) PositionsContext(ctx context.Context, freqs []float64) ([]Coordinate, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	n := len(freqs)
	if n < c.cfg.parallelThreshold {
		return c.Positions(freqs)
	}

	workers := runtime.GOMAXPROCS(0)
	chunk := (n + workers - 1) / workers
	if chunk < c.cfg.parallelThreshold/workers {
		chunk = c.cfg.parallelThreshold / workers
	}
	if chunk < 1 {
		chunk = 1
	}

	out := make([]Coordinate, n)
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)

	for lo := 0; lo < n; lo += chunk {
		hi := min(lo+chunk, n)
		g.Go(func() error {
			for start := lo; start < hi; start += cancelCheckInterval {
				if err := gctx.Err(); err != nil {
					return err
				}
				end := min(start+cancelCheckInterval, hi)
				if err := c.fill(out[start:end], freqs[start:end], start); err != nil {
					return err
				}
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	// Every chunk may have finished before observing a late cancellation.
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return out, nil
}
