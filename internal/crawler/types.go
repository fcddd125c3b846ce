// Package crawler defines core types shared across subsystems.
package crawler

import "net/http"

// Task describes one URL to retrieve and whether its links should be
// extracted. Tasks are immutable once created: the coordinator creates one
// per first-discovered URL and exactly one worker consumes it.
type Task struct {
	URL          string
	CollectLinks bool
}

// Outcome records how a fetched URL resolved. A zero Status means the fetch
// never produced an HTTP status (transport failure).
type Outcome struct {
	Status int
	Err    string
}

// Failed reports whether the outcome belongs in the failure report: any
// error text, a missing status, or a status in the error range.
func (o Outcome) Failed() bool {
	return o.Err != "" || o.Status == 0 || o.Status >= http.StatusBadRequest
}

// Result is produced by a Fetcher for exactly one Task and consumed exactly
// once by the coordinator.
type Result struct {
	RequestedURL string
	Status       int
	Err          string
	Links        []string
	// FinalURL is set only when the client ended on a different URL than
	// requested, i.e. a redirect chain was followed.
	FinalURL string
}

// Outcome extracts the per-URL outcome recorded in the frontier.
func (r Result) Outcome() Outcome {
	return Outcome{Status: r.Status, Err: r.Err}
}
