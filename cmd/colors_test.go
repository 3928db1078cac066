package cmd

import (
	"testing"

	"github.com/fatih/color"
)

func TestColorFormattersPassThroughText(t *testing.T) {
	orig := color.NoColor
	color.NoColor = true
	defer func() { color.NoColor = orig }()

	tests := []struct {
		fn   func(string) string
		in   string
		name string
	}{
		{formatConfidenceWithColor, "high", "confidence high"},
		{formatConfidenceWithColor, "medium", "confidence medium"},
		{formatConfidenceWithColor, "unexpected", "confidence unknown"},
		{formatRiskWithColor, "critical", "risk critical"},
		{formatRiskWithColor, "none", "risk none"},
		{formatStatusWithColor, "ok", "status ok"},
		{formatStatusWithColor, "error", "status error"},
		{formatStatusWithColor, "pending", "status other"},
	}
	for _, tt := range tests {
		if got := tt.fn(tt.in); got != tt.in {
			t.Errorf("%s: formatter changed text to %q, want %q with colors disabled", tt.name, got, tt.in)
		}
	}
}
