package services

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type blockingFeedback struct {
	release chan struct{}
	active  atomic.Int32
	peak    atomic.Int32
}

func (b *blockingFeedback) GenerateFeedback(ctx context.Context, resumeText, role string) (string, error) {
	n := b.active.Add(1)
	defer b.active.Add(-1)
	for {
		p := b.peak.Load()
		if n <= p || b.peak.CompareAndSwap(p, n) {
			break
		}
	}

	select {
	case <-b.release:
	case <-ctx.Done():
		return "", ctx.Err()
	}
	return role + ": " + resumeText, nil
}

func TestFeedbackPoolSubmit(t *testing.T) {
	svc := &blockingFeedback{release: make(chan struct{})}
	close(svc.release)

	pool := NewFeedbackPool(svc, 2, zap.NewNop())
	pool.Start()
	defer pool.Stop()

	got, err := pool.Submit(context.Background(), "resume", "General")

	require.NoError(t, err)
	assert.Equal(t, "General: resume", got)
}

func TestFeedbackPoolBoundsConcurrency(t *testing.T) {
	svc := &blockingFeedback{release: make(chan struct{})}
	pool := NewFeedbackPool(svc, 2, zap.NewNop())
	pool.Start()
	defer pool.Stop()

	var wg sync.WaitGroup
	for i := 0; i < 6; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := pool.Submit(context.Background(), "resume", "General")
			assert.NoError(t, err)
		}()
	}

	require.Eventually(t, func() bool { return svc.active.Load() == 2 }, time.Second, 5*time.Millisecond)
	close(svc.release)
	wg.Wait()

	assert.Equal(t, int32(2), svc.peak.Load())
}

func TestFeedbackPoolContextCancelled(t *testing.T) {
	svc := &blockingFeedback{release: make(chan struct{})}
	pool := NewFeedbackPool(svc, 1, zap.NewNop())
	pool.Start()
	defer func() {
		close(svc.release)
		pool.Stop()
	}()

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	_, err := pool.Submit(ctx, "resume", "General")
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}

func TestFeedbackPoolStopped(t *testing.T) {
	svc := &blockingFeedback{release: make(chan struct{})}
	close(svc.release)

	pool := NewFeedbackPool(svc, 1, zap.NewNop())
	pool.Start()
	pool.Stop()
	pool.Stop()

	_, err := pool.Submit(context.Background(), "resume", "General")
	assert.ErrorIs(t, err, ErrPoolStopped)
}

func TestFeedbackPoolStopDrainsQueuedJobs(t *testing.T) {
	svc := &blockingFeedback{release: make(chan struct{})}
	pool := NewFeedbackPool(svc, 1, zap.NewNop()).(*feedbackPool)
	pool.Start()

	const jobs = 4
	results := make([]string, jobs)
	errs := make([]error, jobs)

	var wg sync.WaitGroup
	for i := 0; i < jobs; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			results[i], errs[i] = pool.Submit(context.Background(), fmt.Sprintf("resume-%d", i), "General")
		}(i)
	}

	// One job running, the rest queued.
	require.Eventually(t, func() bool {
		return svc.active.Load() == 1 && len(pool.jobQueue) == jobs-1
	}, time.Second, 5*time.Millisecond)

	stopped := make(chan struct{})
	go func() {
		pool.Stop()
		close(stopped)
	}()

	require.Eventually(t, func() bool {
		pool.mu.RLock()
		defer pool.mu.RUnlock()
		return pool.stopped
	}, time.Second, 5*time.Millisecond)

	_, err := pool.Submit(context.Background(), "late", "General")
	assert.ErrorIs(t, err, ErrPoolStopped)

	close(svc.release)
	wg.Wait()
	<-stopped

	for i := 0; i < jobs; i++ {
		require.NoError(t, errs[i])
		assert.Equal(t, fmt.Sprintf("General: resume-%d", i), results[i])
	}
}
