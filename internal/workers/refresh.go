package workers

import (
	"context"
	"time"

	"github.com/MKhiriev/go-help-crypt/internal/service"
)

// refreshWorker starts the periodic application snapshot refresh.
type refreshWorker struct {
	ctx      context.Context
	job      service.RefreshJob
	interval time.Duration
}

// NewRefreshWorker wraps a [service.RefreshJob] as a [Worker]. The job runs
// until ctx is cancelled or the job is stopped explicitly.
func NewRefreshWorker(ctx context.Context, job service.RefreshJob, interval time.Duration) Worker {
	return &refreshWorker{
		ctx:      ctx,
		job:      job,
		interval: interval,
	}
}

func (w *refreshWorker) Run() {
	w.job.Start(w.ctx, w.interval)
}
