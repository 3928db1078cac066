package cmd

import (
	"testing"

	"github.com/spf13/viper"
)

func TestApplyConfigDefaultsMergesValues(t *testing.T) {
	t.Cleanup(func() {
		viper.Reset()
		*cliConfig = *newCLIConfig()
	})

	viper.Set("defaults.timeout_secs", 42)
	viper.Set("defaults.concurrency", 8)
	viper.Set("defaults.telemetry", true)
	viper.Set("ai.api_key", "test-key")
	viper.Set("ai.model", "gemini-1.5-pro")

	applyConfigDefaults(rootCmd)

	if cliConfig.Audit.TimeoutSecs != 42 {
		t.Errorf("TimeoutSecs = %d, want 42 from config", cliConfig.Audit.TimeoutSecs)
	}
	if cliConfig.Audit.Concurrency != 8 {
		t.Errorf("Concurrency = %d, want 8 from config", cliConfig.Audit.Concurrency)
	}
	if !cliConfig.Audit.TelemetryEnabled {
		t.Error("TelemetryEnabled = false, want true from config")
	}
	if cliConfig.AI.APIKey != "test-key" || cliConfig.AI.Model != "gemini-1.5-pro" {
		t.Errorf("AI config = %+v, want values from config file", cliConfig.AI)
	}
	if !cliConfig.AI.Enabled {
		t.Error("AI.Enabled = false, want true when api_key is present")
	}
}

func TestApplyConfigDefaultsFlagWins(t *testing.T) {
	t.Cleanup(func() {
		viper.Reset()
		*cliConfig = *newCLIConfig()
		if f := auditCmd.Flags().Lookup("timeout"); f != nil {
			f.Changed = false
		}
	})

	if err := auditCmd.Flags().Set("timeout", "5"); err != nil {
		t.Fatalf("set flag: %v", err)
	}
	viper.Set("defaults.timeout_secs", 42)

	applyConfigDefaults(rootCmd)

	if cliConfig.Audit.TimeoutSecs != 5 {
		t.Errorf("TimeoutSecs = %d, want 5 (explicit flag beats config default)", cliConfig.Audit.TimeoutSecs)
	}
}

func TestAIDisabledWithoutKey(t *testing.T) {
	t.Cleanup(func() {
		viper.Reset()
		*cliConfig = *newCLIConfig()
	})

	applyConfigDefaults(rootCmd)

	if cliConfig.AI.Enabled {
		t.Error("AI.Enabled = true, want false when no api_key configured")
	}
}
