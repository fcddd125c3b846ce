// Package metrics exposes Prometheus collectors for the crawl engine.
package metrics

import (
	"net/url"
	"strconv"
	"strings"
	"sync"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	fetchesTotal  *prometheus.CounterVec
	activeWorkers prometheus.Gauge
	frontierSize  prometheus.Gauge

	once sync.Once
)

// Init initializes the Prometheus metrics collectors.
// It is safe to call this function multiple times.
func Init() {
	once.Do(func() {
		fetchesTotal = promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "linkprobe_fetches_total",
				Help: "Total fetch attempts, labeled by site and status class.",
			},
			[]string{"site", "status_class"},
		)

		activeWorkers = promauto.NewGauge(
			prometheus.GaugeOpts{
				Name: "linkprobe_active_workers",
				Help: "Number of workers currently executing a fetch.",
			},
		)

		frontierSize = promauto.NewGauge(
			prometheus.GaugeOpts{
				Name: "linkprobe_frontier_urls",
				Help: "Number of distinct URLs discovered so far.",
			},
		)
	})
}

// SanitizeSite sanitizes a URL to extract a lowercase hostname.
// It returns "unknown" if the URL is invalid.
func SanitizeSite(rawURL string) string {
	if !strings.HasPrefix(rawURL, "http") {
		rawURL = "http://" + rawURL
	}
	u, err := url.Parse(rawURL)
	if err != nil || u.Hostname() == "" {
		return "unknown"
	}
	return strings.ToLower(u.Hostname())
}

// StatusClass buckets an HTTP status for labeling; transport failures fall
// into "error".
func StatusClass(status int, transportErr bool) string {
	if transportErr || status == 0 {
		return "error"
	}
	return strconv.Itoa(status/100) + "xx"
}

// ObserveFetch increments the fetch counter for one completed attempt.
func ObserveFetch(site string, status int, transportErr bool) {
	Init()
	fetchesTotal.WithLabelValues(SanitizeSite(site), StatusClass(status, transportErr)).Inc()
}

// SetFrontierSize records the current frontier cardinality.
func SetFrontierSize(n int) {
	Init()
	frontierSize.Set(float64(n))
}

// IncActiveWorkers increments the active workers gauge.
func IncActiveWorkers() {
	Init()
	activeWorkers.Inc()
}

// DecActiveWorkers decrements the active workers gauge.
func DecActiveWorkers() {
	Init()
	activeWorkers.Dec()
}
