// Package coordinator owns the crawl frontier and drives fetch rounds.
//
// All frontier mutation and every enqueue decision happen on the single
// goroutine running Run, so the frontier needs no locking. Workers only
// touch the task queue and the results channel.
package coordinator

import (
	"context"
	"fmt"
	"sync"

	"go.uber.org/zap"

	"github.com/JakeFAU/linkprobe/internal/crawler"
	"github.com/JakeFAU/linkprobe/internal/metrics"
)

// Coordinator seeds the crawl, drains fetch results, expands newly
// discovered links into tasks, and detects termination.
type Coordinator struct {
	queue    crawler.TaskQueue
	results  <-chan crawler.Result
	seed     string
	rootURL  string
	frontier *crawler.Frontier
	logger   *zap.Logger

	dispatchWG sync.WaitGroup
}

// New constructs a Coordinator for an already-canonicalized seed URL. The
// root domain used for crawl-vs-probe classification is derived here, once.
func New(queue crawler.TaskQueue, results <-chan crawler.Result, seed string, logger *zap.Logger) *Coordinator {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Coordinator{
		queue:    queue,
		results:  results,
		seed:     seed,
		rootURL:  crawler.RootDomain(seed),
		frontier: crawler.NewFrontier(),
		logger:   logger,
	}
}

// Run executes the crawl loop: seed, then alternate draining a round's
// outstanding results against expanding them into new tasks, until a full
// round produces nothing unseen. The queue is closed on the way out so the
// worker pool drains and exits.
//
// The barrier is counted: a round waits for exactly as many results as it
// enqueued tasks, not for an empty queue, since results can still be in
// flight while the queue looks idle.
func (c *Coordinator) Run(ctx context.Context) (*crawler.Frontier, error) {
	defer func() {
		c.dispatchWG.Wait()
		c.queue.Close()
	}()

	c.logger.Info("crawl starting",
		zap.String("seed", c.seed),
		zap.String("root", c.rootURL),
	)
	c.frontier.Admit(c.seed)
	if err := c.queue.Enqueue(ctx, crawler.Task{URL: c.seed, CollectLinks: true}); err != nil {
		return c.frontier, fmt.Errorf("enqueue seed: %w", err)
	}
	pending := 1

	for round := 1; pending > 0; round++ {
		batch := make([]crawler.Result, 0, pending)
		for len(batch) < pending {
			select {
			case <-ctx.Done():
				return c.frontier, fmt.Errorf("crawl canceled: %w", ctx.Err())
			case res := <-c.results:
				batch = append(batch, res)
			}
		}

		var next []crawler.Task
		for _, res := range batch {
			next = append(next, c.expand(res)...)
		}
		pending = len(next)

		metrics.SetFrontierSize(c.frontier.Len())
		c.logger.Debug("round complete",
			zap.Int("round", round),
			zap.Int("drained", len(batch)),
			zap.Int("enqueued", pending),
			zap.Int("frontier", c.frontier.Len()),
		)

		if pending > 0 {
			c.dispatchWG.Add(1)
			go c.dispatch(ctx, next)
		}
	}

	c.logger.Info("crawl complete",
		zap.Int("discovered", c.frontier.Len()),
		zap.Int("fetched", c.frontier.Resolved()),
	)
	return c.frontier, nil
}

// dispatch enqueues a round's tasks off the coordinator goroutine so the
// barrier loop stays free to drain results; otherwise a small queue plus a
// large round could deadlock against busy workers.
func (c *Coordinator) dispatch(ctx context.Context, tasks []crawler.Task) {
	defer c.dispatchWG.Done()
	for _, t := range tasks {
		if err := c.queue.Enqueue(ctx, t); err != nil {
			// only happens when the context ended; Run notices the
			// same cancellation on its own select
			c.logger.Debug("dispatch stopped", zap.Error(err))
			return
		}
	}
}

// expand records a result in the frontier and returns tasks for every newly
// discovered link. First discovery wins: a URL already present in any state
// is never fetched again and never has its CollectLinks decision revised.
func (c *Coordinator) expand(res crawler.Result) []crawler.Task {
	c.frontier.Resolve(res.RequestedURL, res.Outcome())

	base := res.RequestedURL
	if res.FinalURL != "" && res.FinalURL != res.RequestedURL {
		// remember the redirect target so a later direct link to it
		// counts as already seen
		c.frontier.MarkRedirectTarget(res.FinalURL)
		// relative links on a redirected page resolve against where
		// the page actually came from
		base = res.FinalURL
	}

	var tasks []crawler.Task
	for _, raw := range res.Links {
		link := crawler.StripFragment(raw)
		if crawler.SkipLink(link) {
			continue
		}
		if crawler.IsRelative(link) {
			link = crawler.Resolve(link, base)
		}
		if !c.frontier.Admit(link) {
			continue
		}
		tasks = append(tasks, crawler.Task{
			URL:          link,
			CollectLinks: crawler.SameHost(link, c.rootURL),
		})
	}
	return tasks
}
