package crawler

// entryState tracks the lifecycle of a frontier entry.
type entryState int

const (
	// statePending: discovered and scheduled, fetch not yet resolved.
	statePending entryState = iota
	// stateResolved: fetch completed, outcome recorded.
	stateResolved
	// statePlaceholder: known only as a redirect target, never
	// independently fetched.
	statePlaceholder
)

type frontierEntry struct {
	state   entryState
	outcome Outcome
}

// Frontier is the set of every URL discovered during a crawl, each tagged
// pending, resolved, or redirect placeholder. Entries are only ever added
// or promoted, never removed, and insertion order is preserved so reports
// are deterministic.
//
// The frontier is exclusively owned by the coordinator goroutine and is not
// safe for concurrent use.
type Frontier struct {
	entries map[string]frontierEntry
	order   []string
}

// NewFrontier returns an empty frontier.
func NewFrontier() *Frontier {
	return &Frontier{entries: make(map[string]frontierEntry)}
}

// Admit inserts url as pending if it has never been seen, in any state.
// It returns false for an already-present URL, which is what guarantees at
// most one Task is ever created per URL.
func (f *Frontier) Admit(url string) bool {
	if _, ok := f.entries[url]; ok {
		return false
	}
	f.entries[url] = frontierEntry{state: statePending}
	f.order = append(f.order, url)
	return true
}

// Seen reports whether url has been discovered in any state.
func (f *Frontier) Seen(url string) bool {
	_, ok := f.entries[url]
	return ok
}

// MarkRedirectTarget records url as a known redirect destination without
// scheduling a fetch, so a later direct link to it is treated as already
// seen. Existing entries keep their state.
func (f *Frontier) MarkRedirectTarget(url string) {
	if _, ok := f.entries[url]; ok {
		return
	}
	f.entries[url] = frontierEntry{state: statePlaceholder}
	f.order = append(f.order, url)
}

// Resolve stores the outcome for url, promoting whatever state it was in.
func (f *Frontier) Resolve(url string, outcome Outcome) {
	if _, ok := f.entries[url]; !ok {
		f.order = append(f.order, url)
	}
	f.entries[url] = frontierEntry{state: stateResolved, outcome: outcome}
}

// Len returns the number of URLs ever discovered.
func (f *Frontier) Len() int {
	return len(f.entries)
}

// Failure pairs a URL with the outcome that put it in the report.
type Failure struct {
	URL     string
	Outcome Outcome
}

// Failures returns, in discovery order, every resolved URL whose outcome
// failed. Pending entries and redirect placeholders are skipped.
func (f *Frontier) Failures() []Failure {
	var out []Failure
	for _, u := range f.order {
		e := f.entries[u]
		if e.state != stateResolved {
			continue
		}
		if e.outcome.Failed() {
			out = append(out, Failure{URL: u, Outcome: e.outcome})
		}
	}
	return out
}

// Resolved returns the number of entries with a recorded outcome.
func (f *Frontier) Resolved() int {
	n := 0
	for _, e := range f.entries {
		if e.state == stateResolved {
			n++
		}
	}
	return n
}
