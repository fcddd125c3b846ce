// Package dispatcher manages worker fan-out over the task queue.
package dispatcher

import (
	"context"
	"sync"

	"github.com/JakeFAU/linkprobe/internal/worker"
)

// Pool fans queue work out to a fixed set of workers.
type Pool struct {
	workers []*worker.Worker
}

// New creates a Pool.
func New(workers []*worker.Worker) *Pool {
	return &Pool{workers: workers}
}

// Size returns the number of workers in the pool.
func (p *Pool) Size() int {
	return len(p.workers)
}

// Run starts all workers and blocks until every one of them has exited,
// which happens when the task queue is closed or the context finishes.
func (p *Pool) Run(ctx context.Context) {
	var wg sync.WaitGroup
	for _, w := range p.workers {
		wg.Add(1)
		go func(wk *worker.Worker) {
			defer wg.Done()
			wk.Run(ctx)
		}(w)
	}
	wg.Wait()
}
