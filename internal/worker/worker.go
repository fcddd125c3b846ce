// Package worker implements the fetch execution loop.
package worker

import (
	"context"

	"go.uber.org/zap"

	"github.com/JakeFAU/linkprobe/internal/crawler"
	"github.com/JakeFAU/linkprobe/internal/metrics"
)

// Worker consumes tasks from the shared queue, fetches them, and publishes
// results to the shared sink. Workers share no mutable state beyond the
// queue and the results channel.
type Worker struct {
	queue   crawler.TaskQueue
	fetcher crawler.Fetcher
	results chan<- crawler.Result
	logger  *zap.Logger
}

// New constructs a Worker.
func New(queue crawler.TaskQueue, fetcher crawler.Fetcher, results chan<- crawler.Result, logger *zap.Logger) *Worker {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Worker{
		queue:   queue,
		fetcher: fetcher,
		results: results,
		logger:  logger,
	}
}

// Run blocks, consuming tasks until the queue closes or the context ends.
func (w *Worker) Run(ctx context.Context) {
	for {
		task, err := w.queue.Dequeue(ctx)
		if err != nil {
			// context end or queue closed; either way the pool is
			// shutting down
			w.logger.Debug("worker stopping", zap.Error(err))
			return
		}
		w.process(ctx, task)
	}
}

func (w *Worker) process(ctx context.Context, task crawler.Task) {
	metrics.IncActiveWorkers()
	defer metrics.DecActiveWorkers()

	result := w.fetcher.Fetch(ctx, task)
	metrics.ObserveFetch(task.URL, result.Status, result.Err != "")
	w.logger.Debug("task processed",
		zap.String("url", task.URL),
		zap.Int("status", result.Status),
		zap.Int("links", len(result.Links)),
	)

	select {
	case <-ctx.Done():
	case w.results <- result:
	}
}
