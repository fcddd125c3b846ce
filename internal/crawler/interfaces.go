package crawler

import "context"

// Fetcher retrieves one page. Implementations report failures through the
// Result rather than an error: a broken link is data, not a crash.
type Fetcher interface {
	Fetch(ctx context.Context, task Task) Result
}

// Extractor pulls raw anchor hrefs out of page markup, in document order.
// Hrefs are returned exactly as written; resolution against the page URL is
// the caller's concern.
type Extractor interface {
	Links(body []byte) []string
}

// TaskQueue is the shared task source consumed by the worker pool.
type TaskQueue interface {
	Enqueue(ctx context.Context, task Task) error
	Dequeue(ctx context.Context) (Task, error)
	Close()
}
