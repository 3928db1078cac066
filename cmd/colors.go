package cmd

import (
	"strings"

	"github.com/fatih/color"
)

var (
	colorSuccess = color.New(color.FgGreen).SprintFunc()
	colorInfo    = color.New(color.FgCyan).SprintFunc()
	colorWarn    = color.New(color.FgYellow).SprintFunc()
	colorError   = color.New(color.FgRed).SprintFunc()
)

func formatConfidenceWithColor(confidence string) string {
	switch strings.ToLower(confidence) {
	case "high":
		return colorSuccess(confidence)
	case "medium":
		return colorWarn(confidence)
	case "low":
		return colorInfo(confidence)
	default:
		return confidence
	}
}

func formatRiskWithColor(risk string) string {
	switch strings.ToLower(risk) {
	case "critical", "high":
		return colorError(risk)
	case "medium":
		return colorWarn(risk)
	case "low":
		return colorInfo(risk)
	default:
		return risk
	}
}

func formatStatusWithColor(status string) string {
	switch strings.ToLower(status) {
	case "ok", "success", "pass":
		return colorSuccess(status)
	case "error", "fail", "failed":
		return colorError(status)
	default:
		return status
	}
}
