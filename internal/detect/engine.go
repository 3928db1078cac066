package detect

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"
)

// pipelineState is the engine's two-state escalation machine. A run
// starts in statePatternOnly and makes at most one transition, decided
// by the escalation policy; completion or analyzer failure is terminal.
type pipelineState int

const (
	statePatternOnly pipelineState = iota
	statePatternWithAI
)

// Engine runs the full detection pipeline for one document: identify
// platform, pattern scan, escalation decision, optional AI analysis,
// merge, categorize. Engines are safe for concurrent use; the catalog
// is read-only and all per-run state is local.
type Engine struct {
	catalog   *Catalog
	analyzer  Analyzer
	aiTimeout time.Duration
	logger    *zap.SugaredLogger
}

// EngineOption customizes an Engine.
type EngineOption func(*Engine)

// WithAnalyzer wires the external AI analyzer. Without one the engine
// never escalates past pattern matching.
func WithAnalyzer(a Analyzer) EngineOption {
	return func(e *Engine) { e.analyzer = a }
}

// WithAITimeout bounds the analyzer call. Zero keeps the default.
func WithAITimeout(d time.Duration) EngineOption {
	return func(e *Engine) {
		if d > 0 {
			e.aiTimeout = d
		}
	}
}

// WithLogger attaches a logger for analyzer fallback diagnostics.
func WithLogger(l *zap.SugaredLogger) EngineOption {
	return func(e *Engine) { e.logger = l }
}

const defaultAITimeout = 30 * time.Second

// NewEngine builds an engine over a loaded catalog.
func NewEngine(catalog *Catalog, opts ...EngineOption) *Engine {
	e := &Engine{
		catalog:   catalog,
		aiTimeout: defaultAITimeout,
		logger:    zap.NewNop().Sugar(),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Analyze runs the pipeline for one document. It never fails on
// detection problems: analyzer errors downgrade the report to
// pattern-only output and the worst case is an empty low-confidence
// report. Cancelling ctx cancels a pending analyzer call.
func (e *Engine) Analyze(ctx context.Context, doc Document) AnalysisReport {
	start := time.Now()

	platform := IdentifyPlatform(doc.HTML, doc.Headers)

	patternStart := time.Now()
	patternFindings := Match(doc, e.catalog.ForPlatform(platform))
	patternMs := time.Since(patternStart).Milliseconds()

	decision := ShouldEscalate(patternFindings, platform, doc.Size())

	state := statePatternOnly
	if decision.InvokeAI && e.analyzer != nil {
		state = statePatternWithAI
	}

	method := MethodPatternOnly
	var aiFindings []Finding
	var aiMs int64

	if state == statePatternWithAI {
		aiStart := time.Now()
		found, err := e.runAnalyzer(ctx, platform, doc)
		aiMs = time.Since(aiStart).Milliseconds()

		switch {
		case err != nil:
			// Terminal for this run: no retry, downgrade to the
			// pattern results we already have.
			e.logger.Warnw("analyzer failed, falling back to pattern results",
				"url", doc.URL, "platform", platform, "error", err)
			if len(patternFindings) == 0 {
				method = MethodPatternOnly
			} else {
				method = MethodFallback
			}
		case len(patternFindings) == 0:
			aiFindings = found
			method = MethodAIOnly
		default:
			aiFindings = found
			method = MethodPatternWithAI
		}
	}

	merged := Merge(patternFindings, aiFindings)

	metrics := Metrics{
		PatternMs: patternMs,
		AIMs:      aiMs,
		TotalMs:   time.Since(start).Milliseconds(),
	}

	report := BuildReport(platform, merged, method, metrics)
	report.URL = doc.URL
	report.EscalationReason = decision.Reason
	return report
}

// runAnalyzer executes the bounded analyzer call and normalizes every
// failure to a typed *AnalyzerError.
func (e *Engine) runAnalyzer(ctx context.Context, platform Platform, doc Document) ([]Finding, error) {
	aiCtx, cancel := context.WithTimeout(ctx, e.aiTimeout)
	defer cancel()

	findings, err := e.analyzer.Analyze(aiCtx, AnalyzerRequest{
		Platform: platform,
		URL:      doc.URL,
		Excerpts: BuildExcerpts(doc),
	})
	if err != nil {
		var aerr *AnalyzerError
		if errors.As(err, &aerr) {
			return nil, aerr
		}
		if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
			return nil, &AnalyzerError{Kind: AnalyzerTimeout, Err: err}
		}
		return nil, &AnalyzerError{Kind: AnalyzerProtocolError, Err: err}
	}
	return findings, nil
}
