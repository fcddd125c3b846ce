// Package report renders the final crawl outcome.
package report

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/JakeFAU/linkprobe/internal/crawler"
)

// WriteText prints the header line followed by one line per failing URL.
// Redirect placeholders that were never independently fetched are skipped.
func WriteText(w io.Writer, frontier *crawler.Frontier) error {
	if _, err := fmt.Fprintln(w, "Bad or broken links:"); err != nil {
		return fmt.Errorf("write report header: %w", err)
	}
	for _, f := range frontier.Failures() {
		_, err := fmt.Fprintf(w, "%q status:%d error:%s\n", f.URL, f.Outcome.Status, f.Outcome.Err)
		if err != nil {
			return fmt.Errorf("write report line: %w", err)
		}
	}
	return nil
}

// Output is the machine-readable report format for CI consumption.
type Output struct {
	Summary Summary  `json:"summary"`
	Results []Result `json:"results"`
}

// Summary contains aggregate statistics for one run.
type Summary struct {
	Discovered int `json:"discovered"`
	Checked    int `json:"checked"`
	Broken     int `json:"broken"`
	OK         int `json:"ok"`
}

// Result represents a single failing URL.
type Result struct {
	URL    string `json:"url"`
	Status int    `json:"status"`
	Error  string `json:"error,omitempty"`
}

// Build assembles the JSON-facing view of a finished frontier.
func Build(frontier *crawler.Frontier) Output {
	failures := frontier.Failures()
	out := Output{
		Summary: Summary{
			Discovered: frontier.Len(),
			Checked:    frontier.Resolved(),
			Broken:     len(failures),
			OK:         frontier.Resolved() - len(failures),
		},
		Results: make([]Result, 0, len(failures)),
	}
	for _, f := range failures {
		out.Results = append(out.Results, Result{
			URL:    f.URL,
			Status: f.Outcome.Status,
			Error:  f.Outcome.Err,
		})
	}
	return out
}

// WriteJSON emits the report as indented JSON.
func WriteJSON(w io.Writer, frontier *crawler.Frontier) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(Build(frontier)); err != nil {
		return fmt.Errorf("encode report: %w", err)
	}
	return nil
}
