package worker

import (
	"log/slog"
	"sync"

	"github.com/baharkarakas/blog-backend/internal/metrics"
)

type task func()

// Pool runs submitted tasks on a fixed number of goroutines.
type Pool struct {
	wg      sync.WaitGroup
	jobs    chan task
	mu      sync.RWMutex
	stopped bool
}

const defaultQueueSize = 1024

func NewPool(n int) *Pool {
	return NewPoolWithQueue(n, defaultQueueSize)
}

// NewPoolWithQueue starts n workers behind a queue holding up to size tasks.
func NewPoolWithQueue(n, size int) *Pool {
	if n <= 0 {
		n = 1
	}
	if size < 0 {
		size = 0
	}
	p := &Pool{jobs: make(chan task, size)}
	for i := 0; i < n; i++ {
		p.wg.Add(1)
		go func() {
			defer p.wg.Done()
			for job := range p.jobs {
				metrics.WorkerQueueDepth.Dec()
				run(job)
			}
		}()
	}
	return p
}

func run(job task) {
	defer func() {
		if rec := recover(); rec != nil {
			slog.Error("worker task panic", "err", rec)
		}
	}()
	job()
}

// Submit queues f without blocking and reports whether it was accepted. A
// stopped pool or a full queue rejects the task.
func (p *Pool) Submit(f func()) bool {
	p.mu.RLock()
	defer p.mu.RUnlock()
	if p.stopped {
		metrics.WorkerTasksDropped.WithLabelValues("stopped").Inc()
		return false
	}
	metrics.WorkerQueueDepth.Inc()
	select {
	case p.jobs <- f:
		return true
	default:
		metrics.WorkerQueueDepth.Dec()
		metrics.WorkerTasksDropped.WithLabelValues("queue_full").Inc()
		return false
	}
}

// Stop drains queued tasks and waits for the workers to exit.
func (p *Pool) Stop() {
	p.mu.Lock()
	if p.stopped {
		p.mu.Unlock()
		return
	}
	p.stopped = true
	close(p.jobs)
	p.mu.Unlock()
	p.wg.Wait()
}
