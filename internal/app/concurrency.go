package app

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"
)

// ForEach runs fn for every item with at most limit calls in flight.
// The first error cancels the remaining calls and is returned.
// A limit below one means no bound.
func ForEach[T any](ctx context.Context, limit int, items []T, fn func(context.Context, T) error) error {
	g, ctx := errgroup.WithContext(ctx)
	if limit > 0 {
		g.SetLimit(limit)
	}

	for _, item := range items {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}

			return fn(ctx, item)
		})
	}

	if err := g.Wait(); err != nil {
		return fmt.Errorf("parallel execution failed: %w", err)
	}

	return nil
}
