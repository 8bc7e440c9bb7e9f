package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/osse101/BlendBot_Go/internal/domain"
	"github.com/osse101/BlendBot_Go/internal/logger"
	"github.com/osse101/BlendBot_Go/internal/optimizer"
)

// solve runs one search to completion from a JSON request file. Progress and
// logs go to stderr; the result is the only thing written to stdout, so the
// output can be piped.
func main() {
	requestPath := flag.String("f", "", "path to the JSON search request")
	workers := flag.Int("workers", domain.MaxSearchThreads, "concurrent search goroutines")
	logLevel := flag.String("log-level", "warn", "log level (debug, info, warn, error)")
	asJSON := flag.Bool("json", false, "emit the raw result as JSON instead of a summary")
	flag.Parse()

	if *requestPath == "" && flag.NArg() > 0 {
		*requestPath = flag.Arg(0)
	}
	if *requestPath == "" {
		fmt.Fprintln(os.Stderr, "usage: solve [-workers n] [-json] <request.json>")
		os.Exit(2)
	}

	logger.InitWithWriter(logger.Config{
		Level:       *logLevel,
		Format:      logger.LogFormatText,
		ServiceName: "solve",
		Version:     "dev",
	}, os.Stderr)

	req, err := loadRequest(*requestPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "solve: %v\n", err)
		os.Exit(1)
	}

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	req.ReportProgress = true

	svc := optimizer.NewService(*workers)
	result, err := svc.FindBestMix(ctx, *req, optimizer.Callbacks{
		OnProgress: printProgress,
		OnBestMix:  printBestMix,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "solve: %v\n", err)
		os.Exit(1)
	}

	if *asJSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		if err := enc.Encode(result); err != nil {
			fmt.Fprintf(os.Stderr, "solve: encode result: %v\n", err)
			os.Exit(1)
		}
		return
	}

	printSummary(os.Stdout, req, result)
}

func loadRequest(path string) (*optimizer.Request, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read request: %w", err)
	}

	var req optimizer.Request
	if err := json.Unmarshal(data, &req); err != nil {
		return nil, fmt.Errorf("parse request: %w", err)
	}
	return &req, nil
}

func printProgress(sample domain.ProgressSample) {
	fmt.Fprintf(os.Stderr, "depth %d: %d / %d states (%.1f%%) in %s\n",
		sample.Depth,
		sample.ProcessedCount,
		sample.EstimatedTotal,
		percent(sample.ProcessedCount, sample.EstimatedTotal),
		sample.Elapsed.Round(roundElapsedTo))
}

func printBestMix(best domain.SearchResult) {
	fmt.Fprintf(os.Stderr, "new best: %v profit %s\n", best.Mix, dollars(best.ProfitCents))
}

func percent(processed, total int64) float64 {
	if total <= 0 {
		return 0
	}
	return float64(processed) / float64(total) * 100
}
