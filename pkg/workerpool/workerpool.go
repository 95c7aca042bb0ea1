// Package workerpool provides simple concurrent processing utilities.
package workerpool

import (
	"context"
	"runtime"

	"golang.org/x/sync/errgroup"
)

// Process runs process for every item on at most workerCount goroutines.
// The first error cancels the context seen by the remaining calls, calls onCancel once
// (when not nil) and is returned. A non-positive workerCount uses one worker per CPU.
func Process[T any](
	ctx context.Context,
	workerCount int,
	items []T,
	process func(context.Context, T) error,
	onCancel func(),
) error {
	if workerCount <= 0 {
		workerCount = runtime.NumCPU()
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workerCount)

	for _, item := range items {
		if gctx.Err() != nil {
			break
		}
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			return process(gctx, item)
		})
	}

	err := g.Wait()
	if err != nil && onCancel != nil {
		onCancel()
	}
	if err != nil {
		return err
	}
	return ctx.Err()
}
