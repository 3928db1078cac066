package detect

import (
	"context"
	"sync"
	"time"

	"golang.org/x/time/rate"
)

// Fetcher supplies documents to the runner; the fetch mechanism itself
// lives outside the engine.
type Fetcher interface {
	Fetch(ctx context.Context, url string) (Document, error)
}

// AuditFunc is an optional callback invoked after each completed
// analysis, for audit logging or telemetry.
type AuditFunc func(url string, report AnalysisReport, duration time.Duration)

// Runner analyzes many URLs concurrently: one goroutine per audited
// URL behind a semaphore, with a global rate limit on fetches.
// Documents share nothing but the read-only catalog.
type Runner struct {
	Engine      *Engine
	Fetcher     Fetcher
	Concurrency int
	RateLimit   int // fetches per second, global
	Timeout     time.Duration
}

// RunResult pairs a URL with its report or fetch error.
type RunResult struct {
	URL    string         `json:"url"`
	Report AnalysisReport `json:"report"`
	Err    string         `json:"error,omitempty"`
}

// Run analyzes every target and returns results in target order.
func (r *Runner) Run(ctx context.Context, targets []string, auditFn AuditFunc) []RunResult {
	concurrency := r.Concurrency
	if concurrency < 1 {
		concurrency = 1
	}
	rateLimit := r.RateLimit
	if rateLimit < 1 {
		rateLimit = 1
	}
	timeout := r.Timeout
	if timeout <= 0 {
		timeout = 60 * time.Second
	}

	limiter := rate.NewLimiter(rate.Limit(rateLimit), rateLimit)
	sem := make(chan struct{}, concurrency)
	var wg sync.WaitGroup

	results := make([]RunResult, len(targets))
	for i, target := range targets {
		wg.Add(1)
		go func(idx int, url string) {
			defer wg.Done()

			sem <- struct{}{}
			defer func() { <-sem }()

			_ = limiter.Wait(ctx)

			start := time.Now()
			runCtx, cancel := context.WithTimeout(ctx, timeout)
			defer cancel()

			doc, err := r.Fetcher.Fetch(runCtx, url)
			if err != nil {
				results[idx] = RunResult{URL: url, Err: err.Error()}
				return
			}

			report := r.Engine.Analyze(runCtx, doc)
			results[idx] = RunResult{URL: url, Report: report}

			if auditFn != nil {
				auditFn(url, report, time.Since(start))
			}
		}(i, target)
	}

	wg.Wait()
	return results
}
