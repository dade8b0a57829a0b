package session

import (
	"context"

	"golang.org/x/sync/errgroup"
)

// WaitAll runs every task concurrently and returns once all have finished.
// The first failure cancels the context passed to the others, and that
// failure is returned.
func WaitAll(ctx context.Context, tasks ...func(context.Context) error) error {
	g, gctx := errgroup.WithContext(ctx)
	for _, task := range tasks {
		task := task
		g.Go(func() error {
			return task(gctx)
		})
	}
	return g.Wait()
}
