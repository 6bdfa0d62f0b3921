package service

import (
	"context"
	"sync"
	"time"
)

// RefreshJob periodically rebuilds the application snapshot in the
// background so the list stays current without user interaction.
type RefreshJob interface {
	// Start launches the background refresh loop. A running job is stopped
	// first, so Start doubles as a restart with a new interval.
	Start(ctx context.Context, interval time.Duration)

	// Stop cancels the loop and blocks until it has fully exited. Safe to
	// call when the job is not running.
	Stop()
}

type refreshJob struct {
	orchestrator WorkflowOrchestrator

	mu     sync.Mutex
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

// NewRefreshJob creates a refreshJob that calls the orchestrator's Refresh
// on a ticker. The job is idle until Start is called.
func NewRefreshJob(orchestrator WorkflowOrchestrator) RefreshJob {
	return &refreshJob{orchestrator: orchestrator}
}

// Start implements [RefreshJob]. If interval is zero or negative it defaults
// to 30 seconds. The goroutine exits when ctx is cancelled or Stop is
// called. Refresh errors are swallowed here: the orchestrator already
// classifies and reports them.
func (j *refreshJob) Start(ctx context.Context, interval time.Duration) {
	if interval <= 0 {
		interval = 30 * time.Second
	}

	j.Stop()

	j.mu.Lock()
	jobCtx, cancel := context.WithCancel(ctx)
	j.cancel = cancel
	j.wg.Add(1)
	j.mu.Unlock()

	go func() {
		defer j.wg.Done()
		t := time.NewTicker(interval)
		defer t.Stop()

		for {
			select {
			case <-jobCtx.Done():
				return
			case <-t.C:
				_ = j.orchestrator.Refresh(jobCtx)
			}
		}
	}()
}

// Stop implements [RefreshJob].
func (j *refreshJob) Stop() {
	j.mu.Lock()
	cancel := j.cancel
	j.cancel = nil
	j.mu.Unlock()

	if cancel != nil {
		cancel()
	}
	j.wg.Wait()
}
