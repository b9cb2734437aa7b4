package client

import (
	"context"
	"errors"
	"fmt"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBatchBoundsInFlightRequests(t *testing.T) {
	c, err := New(testConfig("https://dracoon.example"))
	require.NoError(t, err)

	var inFlight, peak int32
	var jobs []func(ctx context.Context) error
	for i := 0; i < 10; i++ {
		jobs = append(jobs, func(ctx context.Context) error {
			n := atomic.AddInt32(&inFlight, 1)
			for {
				old := atomic.LoadInt32(&peak)
				if n <= old || atomic.CompareAndSwapInt32(&peak, old, n) {
					break
				}
			}
			time.Sleep(2 * time.Millisecond)
			atomic.AddInt32(&inFlight, -1)
			return nil
		})
	}

	require.NoError(t, c.Batch(context.Background(), 0, jobs...))
	assert.LessOrEqual(t, atomic.LoadInt32(&peak), int32(DefaultBatchSize))
}

func TestBatchPropagatesFirstError(t *testing.T) {
	c, err := New(testConfig("https://dracoon.example"))
	require.NoError(t, err)

	boom := errors.New("boom")
	err = c.Batch(context.Background(), 2,
		func(ctx context.Context) error { return boom },
		func(ctx context.Context) error {
			<-ctx.Done()
			return ctx.Err()
		},
	)
	assert.ErrorIs(t, err, boom)
}

func TestGatherKeepsOrder(t *testing.T) {
	var jobs []func(ctx context.Context) (string, error)
	for i := 0; i < 7; i++ {
		jobs = append(jobs, func(ctx context.Context) (string, error) {
			return fmt.Sprintf("page-%d", i), nil
		})
	}

	out, err := Gather(context.Background(), 3, jobs)
	require.NoError(t, err)
	require.Len(t, out, 7)
	for i, v := range out {
		assert.Equal(t, fmt.Sprintf("page-%d", i), v)
	}
}

func TestGatherDropsResultsOnFailure(t *testing.T) {
	boom := errors.New("boom")
	out, err := Gather(context.Background(), 2, []func(ctx context.Context) (int, error){
		func(ctx context.Context) (int, error) { return 1, nil },
		func(ctx context.Context) (int, error) { return 0, boom },
	})
	assert.ErrorIs(t, err, boom)
	assert.Nil(t, out)
}
