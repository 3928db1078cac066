package cmd

import (
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const (
	defaultFetchTimeoutSeconds = 10
	defaultAITimeoutSeconds    = 30
	defaultConcurrency         = 1
	defaultRateLimit           = 1
)

// CLIConfig captures runtime configuration shared across commands.
type CLIConfig struct {
	Audit AuditRuntimeConfig
	AI    AIConfig
}

// AuditRuntimeConfig consolidates flag-driven settings for the audit command.
type AuditRuntimeConfig struct {
	Concurrency      int
	RateLimit        int
	TimeoutSecs      int
	TelemetryEnabled bool
	ProgressEnabled  bool
	SaveReports      bool
}

// AIConfig holds the optional AI analyzer settings, typically sourced from
// the config file so API keys stay out of shell history.
type AIConfig struct {
	Enabled     bool
	APIKey      string
	Model       string
	TimeoutSecs int
}

type defaultOverrides struct {
	TimeoutSecs      *int
	Concurrency      *int
	RateLimit        *int
	TelemetryEnabled *bool
}

var cliConfig = newCLIConfig()

func newCLIConfig() *CLIConfig {
	return &CLIConfig{
		Audit: AuditRuntimeConfig{
			Concurrency:      defaultConcurrency,
			RateLimit:        defaultRateLimit,
			TimeoutSecs:      defaultFetchTimeoutSeconds,
			TelemetryEnabled: false,
			ProgressEnabled:  true,
			SaveReports:      true,
		},
		AI: AIConfig{
			TimeoutSecs: defaultAITimeoutSeconds,
		},
	}
}

func loadDefaultOverrides() defaultOverrides {
	overrides := defaultOverrides{}

	if viper.IsSet("defaults.timeout_secs") {
		val := viper.GetInt("defaults.timeout_secs")
		overrides.TimeoutSecs = &val
	}

	if viper.IsSet("defaults.concurrency") {
		val := viper.GetInt("defaults.concurrency")
		overrides.Concurrency = &val
	}

	if viper.IsSet("defaults.rate_limit") {
		val := viper.GetInt("defaults.rate_limit")
		overrides.RateLimit = &val
	}

	if viper.IsSet("defaults.telemetry") {
		val := viper.GetBool("defaults.telemetry")
		overrides.TelemetryEnabled = &val
	}

	return overrides
}

// applyConfigDefaults merges config file defaults into the runtime config when
// the user did not explicitly override the corresponding flag. AI settings
// live only in the config file, so they are read unconditionally.
func applyConfigDefaults(cmd *cobra.Command) {
	overrides := loadDefaultOverrides()

	if overrides.TimeoutSecs != nil {
		applyIntDefault(auditCmd.Flags(), "timeout", *overrides.TimeoutSecs, func(v int) {
			cliConfig.Audit.TimeoutSecs = v
		})
	}

	if overrides.Concurrency != nil {
		applyIntDefault(auditCmd.Flags(), "concurrency", *overrides.Concurrency, func(v int) {
			cliConfig.Audit.Concurrency = v
		})
	}

	if overrides.RateLimit != nil {
		applyIntDefault(auditCmd.Flags(), "rate-limit", *overrides.RateLimit, func(v int) {
			cliConfig.Audit.RateLimit = v
		})
	}

	if overrides.TelemetryEnabled != nil {
		applyBoolDefault(auditCmd.Flags(), "telemetry", *overrides.TelemetryEnabled, func(v bool) {
			cliConfig.Audit.TelemetryEnabled = v
		})
	}

	cliConfig.AI.APIKey = viper.GetString("ai.api_key")
	cliConfig.AI.Model = viper.GetString("ai.model")
	if viper.IsSet("ai.enabled") {
		cliConfig.AI.Enabled = viper.GetBool("ai.enabled")
	} else {
		cliConfig.AI.Enabled = cliConfig.AI.APIKey != ""
	}
	if viper.IsSet("ai.timeout_secs") {
		cliConfig.AI.TimeoutSecs = viper.GetInt("ai.timeout_secs")
	}
}

func applyIntDefault(flags *pflag.FlagSet, name string, value int, setter func(int)) {
	if flags == nil || setter == nil {
		return
	}
	flag := flags.Lookup(name)
	if flag != nil && flag.Changed {
		return
	}
	setter(value)
}

func applyBoolDefault(flags *pflag.FlagSet, name string, value bool, setter func(bool)) {
	if flags == nil || setter == nil {
		return
	}
	flag := flags.Lookup(name)
	if flag != nil && flag.Changed {
		return
	}
	setter(value)
}
