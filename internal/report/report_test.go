package report

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/JakeFAU/linkprobe/internal/crawler"
)

func finishedFrontier() *crawler.Frontier {
	f := crawler.NewFrontier()
	f.Admit("http://example.com/")
	f.Resolve("http://example.com/", crawler.Outcome{Status: 200})
	f.Admit("http://example.com/dead")
	f.Resolve("http://example.com/dead", crawler.Outcome{Status: 404})
	f.Admit("http://down.example.org/")
	f.Resolve("http://down.example.org/", crawler.Outcome{Err: "Network error: connection refused"})
	f.MarkRedirectTarget("http://example.com/landing")
	return f
}

func TestWriteText(t *testing.T) {
	t.Parallel()

	var buf strings.Builder
	require.NoError(t, WriteText(&buf, finishedFrontier()))

	want := "Bad or broken links:\n" +
		"\"http://example.com/dead\" status:404 error:\n" +
		"\"http://down.example.org/\" status:0 error:Network error: connection refused\n"
	require.Equal(t, want, buf.String())
}

func TestWriteTextNoFailures(t *testing.T) {
	t.Parallel()

	f := crawler.NewFrontier()
	f.Admit("http://example.com/")
	f.Resolve("http://example.com/", crawler.Outcome{Status: 200})

	var buf strings.Builder
	require.NoError(t, WriteText(&buf, f))
	require.Equal(t, "Bad or broken links:\n", buf.String())
}

func TestBuildSummary(t *testing.T) {
	t.Parallel()

	out := Build(finishedFrontier())

	// the redirect placeholder counts as discovered but not checked
	require.Equal(t, 4, out.Summary.Discovered)
	require.Equal(t, 3, out.Summary.Checked)
	require.Equal(t, 2, out.Summary.Broken)
	require.Equal(t, 1, out.Summary.OK)

	require.Len(t, out.Results, 2)
	require.Equal(t, "http://example.com/dead", out.Results[0].URL)
	require.Equal(t, 404, out.Results[0].Status)
	require.Equal(t, "http://down.example.org/", out.Results[1].URL)
	require.Equal(t, "Network error: connection refused", out.Results[1].Error)
}

func TestWriteJSON(t *testing.T) {
	t.Parallel()

	var buf strings.Builder
	require.NoError(t, WriteJSON(&buf, finishedFrontier()))

	var out Output
	require.NoError(t, json.Unmarshal([]byte(buf.String()), &out))
	require.Equal(t, 2, out.Summary.Broken)
	require.Len(t, out.Results, 2)

	// omitempty keeps status-only failures free of an error field
	require.Contains(t, buf.String(), `"status": 404`)
	raw, err := json.Marshal(out.Results[0])
	require.NoError(t, err)
	require.NotContains(t, string(raw), `"error"`)
}
