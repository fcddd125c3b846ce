package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/require"
)

func TestSanitizeSite(t *testing.T) {
	t.Parallel()

	tests := []struct {
		input string
		want  string
	}{
		{input: "http://Example.COM/path", want: "example.com"},
		{input: "https://a.b.example.com:8080/x", want: "a.b.example.com"},
		{input: "example.com/no-scheme", want: "example.com"},
		{input: "", want: "unknown"},
		{input: "http://", want: "unknown"},
	}
	for _, tt := range tests {
		if got := SanitizeSite(tt.input); got != tt.want {
			t.Fatalf("SanitizeSite(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}

func TestStatusClass(t *testing.T) {
	t.Parallel()

	tests := []struct {
		status       int
		transportErr bool
		want         string
	}{
		{status: 200, want: "2xx"},
		{status: 301, want: "3xx"},
		{status: 404, want: "4xx"},
		{status: 503, want: "5xx"},
		{status: 0, want: "error"},
		{status: 200, transportErr: true, want: "error"},
	}
	for _, tt := range tests {
		if got := StatusClass(tt.status, tt.transportErr); got != tt.want {
			t.Fatalf("StatusClass(%d, %v) = %q, want %q", tt.status, tt.transportErr, got, tt.want)
		}
	}
}

func TestObserveFetch(t *testing.T) {
	Init()

	before := testutil.ToFloat64(fetchesTotal.WithLabelValues("example.com", "4xx"))
	ObserveFetch("http://example.com/missing", 404, false)
	ObserveFetch("http://example.com/also-missing", 404, false)
	after := testutil.ToFloat64(fetchesTotal.WithLabelValues("example.com", "4xx"))
	require.Equal(t, before+2, after)

	errBefore := testutil.ToFloat64(fetchesTotal.WithLabelValues("down.example.org", "error"))
	ObserveFetch("http://down.example.org/", 0, true)
	errAfter := testutil.ToFloat64(fetchesTotal.WithLabelValues("down.example.org", "error"))
	require.Equal(t, errBefore+1, errAfter)
}

func TestWorkerAndFrontierGauges(t *testing.T) {
	Init()

	IncActiveWorkers()
	IncActiveWorkers()
	DecActiveWorkers()
	require.GreaterOrEqual(t, testutil.ToFloat64(activeWorkers), float64(1))
	DecActiveWorkers()

	SetFrontierSize(42)
	require.Equal(t, float64(42), testutil.ToFloat64(frontierSize))
}
