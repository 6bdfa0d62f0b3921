package workers

import (
	"context"
	"sync/atomic"
	"testing"
	"time"
)

// mockWorker is a test implementation of the Worker interface
// that tracks how many times Run was called.
type mockWorker struct {
	runCount int
}

func (m *mockWorker) Run() {
	m.runCount++
}

func TestWorkers_Run_AllWorkersAreCalled(t *testing.T) {
	w1 := &mockWorker{}
	w2 := &mockWorker{}
	w3 := &mockWorker{}

	ws := &Workers{workers: []Worker{w1, w2, w3}}
	ws.Run()

	for i, w := range []*mockWorker{w1, w2, w3} {
		if w.runCount != 1 {
			t.Errorf("worker[%d]: expected runCount=1, got %d", i, w.runCount)
		}
	}
}

func TestWorkers_Run_Empty(t *testing.T) {
	ws := &Workers{workers: []Worker{}}

	// Should not panic on empty workers list
	ws.Run()
}

func TestWorkers_Run_Nil(t *testing.T) {
	ws := &Workers{}

	// Should not panic when workers field is nil
	ws.Run()
}

func TestWorkers_Run_Order(t *testing.T) {
	order := []int{}

	// orderWorker records its index into the shared order slice
	newOrderWorker := func(id int) Worker {
		return &orderWorker{id: id, order: &order}
	}

	ws := &Workers{workers: []Worker{
		newOrderWorker(1),
		newOrderWorker(2),
		newOrderWorker(3),
	}}
	ws.Run()

	expected := []int{1, 2, 3}
	for i, v := range expected {
		if order[i] != v {
			t.Errorf("expected order[%d]=%d, got %d", i, v, order[i])
		}
	}
}

func TestNewRefreshWorker_RunStartsJob(t *testing.T) {
	job := &stubRefreshJob{}
	w := NewRefreshWorker(context.Background(), job, 42*time.Millisecond)

	w.Run()

	if got := job.startCalls.Load(); got != 1 {
		t.Errorf("expected Start to be called once, got %d", got)
	}
	if job.lastInterval != 42*time.Millisecond {
		t.Errorf("expected interval to be passed through, got %v", job.lastInterval)
	}
}

// orderWorker is a helper that appends its ID to a shared slice on Run.
type orderWorker struct {
	id    int
	order *[]int
}

func (o *orderWorker) Run() {
	*o.order = append(*o.order, o.id)
}

// stubRefreshJob records Start invocations without spawning anything.
type stubRefreshJob struct {
	startCalls   atomic.Int64
	lastInterval time.Duration
}

func (s *stubRefreshJob) Start(_ context.Context, interval time.Duration) {
	s.lastInterval = interval
	s.startCalls.Add(1)
}

func (s *stubRefreshJob) Stop() {}
