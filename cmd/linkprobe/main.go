// Package main wires together the linkprobe binary.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/JakeFAU/linkprobe/internal/config"
	"github.com/JakeFAU/linkprobe/internal/coordinator"
	"github.com/JakeFAU/linkprobe/internal/crawler"
	"github.com/JakeFAU/linkprobe/internal/dispatcher"
	"github.com/JakeFAU/linkprobe/internal/extractor"
	collyfetcher "github.com/JakeFAU/linkprobe/internal/fetcher/colly"
	"github.com/JakeFAU/linkprobe/internal/logging"
	"github.com/JakeFAU/linkprobe/internal/metrics"
	queuememory "github.com/JakeFAU/linkprobe/internal/queue/memory"
	"github.com/JakeFAU/linkprobe/internal/report"
	"github.com/JakeFAU/linkprobe/internal/worker"
)

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	fs := flag.NewFlagSet("linkprobe", flag.ExitOnError)
	cfgPath := fs.String("config", "", "Path to config file")
	jsonOut := fs.Bool("json", false, "Emit the report as JSON")
	if err := fs.Parse(args); err != nil {
		return 1
	}

	cfg, err := config.Load(*cfgPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "load config failed: %v\n", err)
		return 1
	}
	if *jsonOut {
		cfg.Report.JSON = true
	}

	logger, err := logging.New(cfg.Logging.Development)
	if err != nil {
		fmt.Fprintf(os.Stderr, "logger init failed: %v\n", err)
		return 1
	}
	defer func() {
		_ = logger.Sync()
	}()
	logger = logger.With(zap.String("run_id", uuid.NewString()))
	zap.ReplaceGlobals(logger)

	seed := cfg.Crawler.Seed
	if fs.NArg() > 0 {
		seed = fs.Arg(0)
	}
	canonical, err := crawler.CanonicalizeSeed(seed)
	if err != nil {
		logger.Error("unusable seed url", zap.String("seed", seed), zap.Error(err))
		fmt.Fprintf(os.Stderr, "Incorrect url - %s\n", seed)
		return 1
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	metrics.Init()
	if cfg.Metrics.ListenAddr != "" {
		metrics.Serve(ctx, cfg.Metrics.ListenAddr, logger.Named("metrics"))
	}

	queue := queuememory.NewQueue(cfg.Crawler.QueueDepth)
	results := make(chan crawler.Result, cfg.Crawler.QueueDepth)
	fetch := collyfetcher.New(collyfetcher.Config{
		UserAgent: cfg.Crawler.UserAgent,
		Timeout:   cfg.HTTPTimeout(),
	}, extractor.NewHTML(), logger.Named("fetcher"))

	workers := make([]*worker.Worker, 0, cfg.Crawler.Concurrency)
	for i := 0; i < cfg.Crawler.Concurrency; i++ {
		workers = append(workers, worker.New(
			queue,
			fetch,
			results,
			logger.Named("worker").With(zap.Int("index", i)),
		))
	}
	pool := dispatcher.New(workers)

	poolDone := make(chan struct{})
	go func() {
		pool.Run(ctx)
		close(poolDone)
	}()

	coord := coordinator.New(queue, results, canonical, logger.Named("coordinator"))
	frontier, err := coord.Run(ctx)
	<-poolDone
	if err != nil {
		logger.Error("crawl aborted", zap.Error(err))
		return 1
	}

	if cfg.Report.JSON {
		err = report.WriteJSON(os.Stdout, frontier)
	} else {
		err = report.WriteText(os.Stdout, frontier)
	}
	if err != nil {
		logger.Error("write report failed", zap.Error(err))
		return 1
	}
	return 0
}
