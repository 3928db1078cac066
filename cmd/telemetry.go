package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/stackprobe/stackprobe-cli/internal/detect"
	consts "github.com/stackprobe/stackprobe-cli/internal/shared/constants"
)

type telemetryRecord struct {
	Timestamp            time.Time `json:"timestamp"`
	Command              string    `json:"command"`
	TargetCount          int       `json:"target_count"`
	SuccessCount         int       `json:"success_count"`
	ErrorCount           int       `json:"error_count"`
	SuccessRate          float64   `json:"success_rate"`
	AIInvocations        int       `json:"ai_invocations"`
	PatternMs            int64     `json:"pattern_ms"`
	AIMs                 int64     `json:"ai_ms"`
	DurationSeconds      float64   `json:"duration_seconds"`
	AvgDurationPerTarget float64   `json:"avg_duration_per_target"`
}

// recordTelemetry appends one aggregate line to telemetry.jsonl in the
// results directory. Nothing leaves the machine.
func recordTelemetry(dir string, command string, results []detect.RunResult, duration time.Duration) error {
	okCount, errorCount, aiCount := summarizeResults(results)
	total := len(results)

	var patternMs, aiMs int64
	for _, r := range results {
		if r.Err != "" {
			continue
		}
		patternMs += r.Report.Metrics.PatternMs
		aiMs += r.Report.Metrics.AIMs
	}

	successRate := 0.0
	if total > 0 {
		successRate = (float64(okCount) / float64(total)) * 100
	}

	avgDuration := 0.0
	if total > 0 {
		avgDuration = duration.Seconds() / float64(total)
	}

	record := telemetryRecord{
		Timestamp:            time.Now().UTC(),
		Command:              command,
		TargetCount:          total,
		SuccessCount:         okCount,
		ErrorCount:           errorCount,
		SuccessRate:          successRate,
		AIInvocations:        aiCount,
		PatternMs:            patternMs,
		AIMs:                 aiMs,
		DurationSeconds:      duration.Seconds(),
		AvgDurationPerTarget: avgDuration,
	}

	data, err := json.Marshal(record)
	if err != nil {
		return fmt.Errorf("marshal telemetry: %w", err)
	}

	telemetryPath := filepath.Join(dir, "telemetry.jsonl")
	f, err := os.OpenFile(telemetryPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, consts.DefaultFilePerm)
	if err != nil {
		return fmt.Errorf("open telemetry file: %w", err)
	}
	defer f.Close()

	if _, err := f.Write(append(data, '\n')); err != nil {
		return fmt.Errorf("write telemetry: %w", err)
	}

	return nil
}

func summarizeResults(results []detect.RunResult) (okCount, errorCount, aiCount int) {
	for _, r := range results {
		if r.Err != "" {
			errorCount++
			continue
		}
		okCount++
		switch r.Report.Method {
		case detect.MethodPatternWithAI, detect.MethodAIOnly:
			aiCount++
		}
	}
	return okCount, errorCount, aiCount
}
