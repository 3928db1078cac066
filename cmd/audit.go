package cmd

import (
	"bufio"
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/stackprobe/stackprobe-cli/internal/analyzer"
	"github.com/stackprobe/stackprobe-cli/internal/detect"
	"github.com/stackprobe/stackprobe-cli/internal/fetch"
	"github.com/stackprobe/stackprobe-cli/internal/store"
)

var auditHeader = []string{
	"timestamp",
	"target",
	"platform",
	"method",
	"total_found",
	"overall_confidence",
	"escalation_reason",
	"error",
	"duration_seconds",
}

var auditCmd = &cobra.Command{
	Use:   "audit [targets...]",
	Short: "Detect the technology stack of one or more websites",
	Long: `Fetch each target page and run the detection pipeline:
platform identification, signature matching, optional AI escalation,
categorized report. Reports are saved under the results directory.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		targetsFile, _ := cmd.Flags().GetString("targets-file")
		noAI, _ := cmd.Flags().GetBool("no-ai")

		targets, err := collectTargets(args, targetsFile)
		if err != nil {
			return err
		}
		if len(targets) == 0 {
			return fmt.Errorf("no targets given (pass URLs as arguments or use --targets-file)")
		}

		catalog, err := detect.LoadCatalog()
		if err != nil {
			return fmt.Errorf("load signature catalog: %w", err)
		}

		opts := []detect.EngineOption{detect.WithLogger(logger)}
		if !noAI && cliConfig.AI.Enabled {
			if cliConfig.AI.APIKey == "" {
				return fmt.Errorf("ai.enabled is set but ai.api_key is missing from config")
			}
			gem, err := analyzer.NewGemini(cmd.Context(), cliConfig.AI.APIKey, cliConfig.AI.Model)
			if err != nil {
				return fmt.Errorf("initialize AI analyzer: %w", err)
			}
			defer func() { _ = gem.Close() }()
			opts = append(opts,
				detect.WithAnalyzer(gem),
				detect.WithAITimeout(time.Duration(cliConfig.AI.TimeoutSecs)*time.Second),
			)
		}
		engine := detect.NewEngine(catalog, opts...)

		runner := &detect.Runner{
			Engine:      engine,
			Fetcher:     fetch.NewClient(time.Duration(cliConfig.Audit.TimeoutSecs) * time.Second),
			Concurrency: cliConfig.Audit.Concurrency,
			RateLimit:   cliConfig.Audit.RateLimit,
			Timeout:     time.Duration(cliConfig.Audit.TimeoutSecs+cliConfig.AI.TimeoutSecs) * time.Second,
		}

		var progress *progressPrinter
		if cliConfig.Audit.ProgressEnabled {
			progress = newProgressPrinter(len(targets), "audit")
			progress.Start()
		}

		auditFn := func(url string, report detect.AnalysisReport, duration time.Duration) {
			if err := appendAuditRow(resultsDir, url, report, "", duration.Seconds()); err != nil {
				logger.Warnw("audit row append failed", "url", url, "error", err)
			}
			if progress != nil {
				aiUsed := report.Method == detect.MethodPatternWithAI || report.Method == detect.MethodAIOnly
				progress.Increment(true, aiUsed, duration.Seconds())
			}
		}

		start := time.Now()
		results := runner.Run(cmd.Context(), targets, auditFn)
		elapsed := time.Since(start)

		if progress != nil {
			for _, r := range results {
				if r.Err != "" {
					progress.Increment(false, false, 0)
				}
			}
			progress.Stop()
		}

		repo, err := store.NewRepository(resultsDir)
		if err != nil {
			return err
		}

		for _, r := range results {
			if r.Err != "" {
				if aerr := appendAuditRow(resultsDir, r.URL, detect.AnalysisReport{}, r.Err, 0); aerr != nil {
					logger.Warnw("audit row append failed", "url", r.URL, "error", aerr)
				}
				continue
			}
			if cliConfig.Audit.SaveReports {
				report := r.Report
				if _, err := repo.Save(&report); err != nil {
					logger.Warnw("report save failed", "url", r.URL, "error", err)
				}
			}
		}

		if cliConfig.Audit.TelemetryEnabled {
			if err := recordTelemetry(resultsDir, "audit", results, elapsed); err != nil {
				logger.Warnw("telemetry append failed", "error", err)
			}
		}

		printAuditSummary(os.Stdout, results)
		return nil
	},
}

func init() {
	auditCmd.Flags().String("targets-file", "", "file with one target URL per line")
	auditCmd.Flags().IntVar(&cliConfig.Audit.Concurrency, "concurrency", defaultConcurrency, "concurrent audits")
	auditCmd.Flags().IntVar(&cliConfig.Audit.RateLimit, "rate-limit", defaultRateLimit, "fetches per second")
	auditCmd.Flags().IntVar(&cliConfig.Audit.TimeoutSecs, "timeout", defaultFetchTimeoutSeconds, "per-target fetch timeout in seconds")
	auditCmd.Flags().Bool("no-ai", false, "disable AI escalation even when configured")
	auditCmd.Flags().BoolVar(&cliConfig.Audit.ProgressEnabled, "progress", true, "show live progress")
	auditCmd.Flags().BoolVar(&cliConfig.Audit.TelemetryEnabled, "telemetry", false, "append aggregate run stats to telemetry.jsonl")
	auditCmd.Flags().BoolVar(&cliConfig.Audit.SaveReports, "save", true, "save each report to the results directory")
}

// collectTargets merges CLI arguments with an optional targets file,
// preserving order and dropping blanks, comments and duplicates.
func collectTargets(args []string, targetsFile string) ([]string, error) {
	var targets []string
	seen := make(map[string]struct{})

	add := func(raw string) {
		t := strings.TrimSpace(raw)
		if t == "" || strings.HasPrefix(t, "#") {
			return
		}
		t = fetch.NormalizeURL(t)
		if _, dup := seen[t]; dup {
			return
		}
		seen[t] = struct{}{}
		targets = append(targets, t)
	}

	for _, a := range args {
		add(a)
	}

	if targetsFile != "" {
		f, err := os.Open(targetsFile)
		if err != nil {
			return nil, fmt.Errorf("open targets file: %w", err)
		}
		defer f.Close()

		scanner := bufio.NewScanner(f)
		for scanner.Scan() {
			add(scanner.Text())
		}
		if err := scanner.Err(); err != nil {
			return nil, fmt.Errorf("read targets file: %w", err)
		}
	}

	return targets, nil
}

// appendAuditRow appends a single row to <resultsDir>/audit.csv.
func appendAuditRow(dir, target string, report detect.AnalysisReport, errMsg string, durationSeconds float64) error {
	auditPath := filepath.Join(dir, "audit.csv")
	exists := true
	if _, err := os.Stat(auditPath); os.IsNotExist(err) {
		exists = false
	}

	f, err := os.OpenFile(auditPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return fmt.Errorf("open audit file failed: %w", err)
	}
	defer f.Close()

	writer := csv.NewWriter(f)
	defer writer.Flush()

	if !exists {
		_ = writer.Write(auditHeader)
		writer.Flush()
	}

	row := []string{
		time.Now().UTC().Format(time.RFC3339),
		target,
		string(report.Platform),
		string(report.Method),
		fmt.Sprintf("%d", report.TotalFound),
		string(report.OverallConfidence),
		report.EscalationReason,
		errMsg,
		fmt.Sprintf("%.3f", durationSeconds),
	}

	_ = writer.Write(row)
	writer.Flush()

	return writer.Error()
}

func printAuditSummary(w io.Writer, results []detect.RunResult) {
	fmt.Fprintln(w, colorSuccess("Audit complete."))
	for _, r := range results {
		if r.Err != "" {
			fmt.Fprintf(w, "  %s %s: %s\n", formatStatusWithColor("failed"), r.URL, r.Err)
			continue
		}
		fmt.Fprintf(w, "  %s %s: platform=%s findings=%d confidence=%s method=%s\n",
			formatStatusWithColor("ok"),
			r.URL,
			colorInfo(string(r.Report.Platform)),
			r.Report.TotalFound,
			formatConfidenceWithColor(string(r.Report.OverallConfidence)),
			r.Report.Method,
		)
	}
	fmt.Fprintf(w, "%s %s\n", colorInfo("Results dir:"), resultsDir)
}
