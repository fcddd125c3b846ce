// Package collyfetcher implements crawler.Fetcher using gocolly.
package collyfetcher

import (
	"context"
	"net"
	"net/http"
	"time"

	"github.com/gocolly/colly/v2"
	"go.uber.org/zap"

	"github.com/JakeFAU/linkprobe/internal/crawler"
)

// DefaultUserAgent mimics a desktop browser; some sites refuse the Go
// default agent outright.
const DefaultUserAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36"

// Config controls collector behavior.
type Config struct {
	UserAgent string
	Timeout   time.Duration
}

// Fetcher implements crawler.Fetcher using the Colly collector. Each Fetch
// clones the base collector so per-task callbacks never leak between tasks.
type Fetcher struct {
	cfg           Config
	extractor     crawler.Extractor
	logger        *zap.Logger
	baseCollector *colly.Collector
}

// New builds a Fetcher. The extractor is the collaborator used to pull raw
// hrefs out of pages whose task asks for link collection.
func New(cfg Config, extractor crawler.Extractor, logger *zap.Logger) *Fetcher {
	if cfg.UserAgent == "" {
		cfg.UserAgent = DefaultUserAgent
	}
	if cfg.Timeout == 0 {
		cfg.Timeout = 15 * time.Second
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	c := colly.NewCollector(colly.Async(false))
	c.UserAgent = cfg.UserAgent
	// robots.txt handling is out of scope for this tool
	c.IgnoreRobotsTxt = true
	// 4xx/5xx responses are outcomes to record, not exceptions
	c.ParseHTTPErrorResponse = true
	// the frontier owns dedup; the collector must not second-guess it
	c.AllowURLRevisit = true
	c.SetRequestTimeout(cfg.Timeout)
	c.WithTransport(newHTTPTransport())

	return &Fetcher{
		cfg:           cfg,
		extractor:     extractor,
		logger:        logger,
		baseCollector: c,
	}
}

// Fetch executes a single GET, following redirects. Transport failures come
// back with no status and a "Network error" message; HTTP error statuses
// come back with the status itself. FinalURL is set whenever the client
// ended somewhere other than the requested URL, error pages included.
func (f *Fetcher) Fetch(ctx context.Context, task crawler.Task) crawler.Result {
	result := crawler.Result{RequestedURL: task.URL}
	collector := f.baseCollector.Clone()

	collector.OnRequest(func(r *colly.Request) {
		select {
		case <-ctx.Done():
			r.Abort()
		default:
		}
	})

	collector.OnResponse(func(r *colly.Response) {
		result.Status = r.StatusCode
		if final := r.Request.URL.String(); final != task.URL {
			result.FinalURL = final
		}
		if task.CollectLinks && r.StatusCode < http.StatusBadRequest {
			result.Links = f.extractor.Links(r.Body)
		}
	})

	err := collector.Visit(task.URL)
	if ctx.Err() != nil {
		return crawler.Result{
			RequestedURL: task.URL,
			Err:          "Network error: " + ctx.Err().Error(),
		}
	}
	if err != nil && result.Status == 0 {
		result.Err = "Network error: " + err.Error()
		f.logger.Debug("fetch failed",
			zap.String("url", task.URL),
			zap.Error(err),
		)
	}
	return result
}

func newHTTPTransport() *http.Transport {
	return &http.Transport{
		Proxy: http.ProxyFromEnvironment,
		DialContext: (&net.Dialer{
			Timeout:   10 * time.Second,
			KeepAlive: 30 * time.Second,
		}).DialContext,
		TLSHandshakeTimeout:   15 * time.Second,
		ExpectContinueTimeout: 1 * time.Second,
		MaxIdleConns:          100,
		IdleConnTimeout:       90 * time.Second,
	}
}
