package services

import (
	"context"
	"errors"
	"sync"

	"go.uber.org/zap"
)

var ErrPoolStopped = errors.New("feedback pool stopped")

// FeedbackPool runs feedback calls on a fixed number of goroutines so slow
// provider round trips queue instead of piling up.
type FeedbackPool interface {
	Start()
	Stop()
	Submit(ctx context.Context, resumeText, role string) (string, error)
}

type feedbackOutcome struct {
	text string
	err  error
}

type feedbackJob struct {
	ctx        context.Context
	resumeText string
	role       string
	reply      chan feedbackOutcome
}

type feedbackPool struct {
	feedbackService FeedbackService
	jobQueue        chan feedbackJob
	concurrency     int
	wg              sync.WaitGroup
	mu              sync.RWMutex
	stopped         bool
	log             *zap.Logger
}

func NewFeedbackPool(feedbackService FeedbackService, concurrency int, log *zap.Logger) FeedbackPool {
	if concurrency < 1 {
		concurrency = 1
	}

	return &feedbackPool{
		feedbackService: feedbackService,
		jobQueue:        make(chan feedbackJob, concurrency*16),
		concurrency:     concurrency,
		log:             log,
	}
}

// Start implements FeedbackPool.
func (p *feedbackPool) Start() {
	p.log.Info("🚀 Starting feedback workers", zap.Int("concurrency", p.concurrency))

	for i := 0; i < p.concurrency; i++ {
		p.wg.Add(1)
		go p.processJobs(i + 1)
	}
}

// Stop implements FeedbackPool. New submissions are rejected, and Stop
// returns once every job already queued has been answered.
func (p *feedbackPool) Stop() {
	p.mu.Lock()
	if p.stopped {
		p.mu.Unlock()
		return
	}
	p.stopped = true
	close(p.jobQueue)
	p.mu.Unlock()

	p.log.Info("🛑 Draining feedback workers...")
	p.wg.Wait()
	p.log.Info("✅ Feedback workers stopped")
}

// Submit implements FeedbackPool. Once queued, a job is always answered by a
// worker; the caller stops waiting only if its context ends first.
func (p *feedbackPool) Submit(ctx context.Context, resumeText, role string) (string, error) {
	job := feedbackJob{
		ctx:        ctx,
		resumeText: resumeText,
		role:       role,
		reply:      make(chan feedbackOutcome, 1),
	}

	if err := p.enqueue(ctx, job); err != nil {
		return "", err
	}

	select {
	case out := <-job.reply:
		return out.text, out.err
	case <-ctx.Done():
		return "", ctx.Err()
	}
}

// enqueue holds the read lock so Stop cannot close the queue mid-send.
func (p *feedbackPool) enqueue(ctx context.Context, job feedbackJob) error {
	p.mu.RLock()
	defer p.mu.RUnlock()

	if p.stopped {
		return ErrPoolStopped
	}

	select {
	case p.jobQueue <- job:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (p *feedbackPool) processJobs(workerID int) {
	defer p.wg.Done()
	p.log.Debug("👷 Feedback worker started", zap.Int("worker", workerID))

	for job := range p.jobQueue {
		if err := job.ctx.Err(); err != nil {
			job.reply <- feedbackOutcome{err: err}
			continue
		}

		text, err := p.feedbackService.GenerateFeedback(job.ctx, job.resumeText, job.role)
		job.reply <- feedbackOutcome{text: text, err: err}
	}

	p.log.Debug("👷 Feedback worker stopped", zap.Int("worker", workerID))
}
