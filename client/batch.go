package client

import (
	"context"

	"github.com/avast/retry-go/v4"

	"github.com/semtisem/dracoon-go/pkg/errgroup"
)

// DefaultBatchSize bounds concurrent in-flight requests per batch, matched
// to the API rate limits.
const DefaultBatchSize = 3

// Batch runs jobs with at most limit of them in flight. The first failure
// cancels the batch context: queued jobs never start, running ones see a
// cancelled context. limit <= 0 falls back to DefaultBatchSize.
func (c *Client) Batch(ctx context.Context, limit int, jobs ...func(ctx context.Context) error) error {
	if limit <= 0 {
		limit = DefaultBatchSize
	}
	g, _ := errgroup.NewGroupWithContext(ctx, limit, retry.Attempts(1))
	for _, job := range jobs {
		g.Go(job)
	}
	return g.Wait()
}

// Gather is Batch for jobs that produce a value. Results keep the order of
// jobs. On failure the partial results are dropped.
func Gather[T any](ctx context.Context, limit int, jobs []func(ctx context.Context) (T, error)) ([]T, error) {
	if limit <= 0 {
		limit = DefaultBatchSize
	}
	out := make([]T, len(jobs))
	g, _ := errgroup.NewGroupWithContext(ctx, limit, retry.Attempts(1))
	for i, job := range jobs {
		g.Go(func(ctx context.Context) error {
			v, err := job(ctx)
			if err != nil {
				return err
			}
			out[i] = v
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return out, nil
}
