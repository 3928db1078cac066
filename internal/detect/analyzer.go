package detect

import (
	"context"
	"fmt"
	"strings"
)

// AnalyzerErrorKind classifies analyzer failures. Every kind is
// recovered locally: the pipeline falls back to pattern-only output
// and the audit itself never fails on an analyzer error.
type AnalyzerErrorKind string

const (
	AnalyzerTimeout       AnalyzerErrorKind = "timeout"
	AnalyzerProtocolError AnalyzerErrorKind = "protocol"
	AnalyzerQuotaError    AnalyzerErrorKind = "quota"
)

// AnalyzerError is the typed failure the adapter boundary returns. A
// caller never receives a partially-filled result treated as success.
type AnalyzerError struct {
	Kind AnalyzerErrorKind
	Err  error
}

func (e *AnalyzerError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("analyzer %s error", e.Kind)
	}
	return fmt.Sprintf("analyzer %s error: %v", e.Kind, e.Err)
}

func (e *AnalyzerError) Unwrap() error {
	return e.Err
}

// ContentExcerpts is the bounded payload shipped to the analyzer
// instead of the whole page: the head section, external asset names,
// meta tags, server headers, and a fixed markup prefix.
type ContentExcerpts struct {
	HeadSection       string   `json:"head_section,omitempty"`
	ScriptSourceNames []string `json:"script_source_names,omitempty"`
	LinkSourceNames   []string `json:"link_source_names,omitempty"`
	MetaTags          []string `json:"meta_tags,omitempty"`
	ServerHeaders     []string `json:"server_headers,omitempty"`
	HTMLPrefix        string   `json:"html_prefix,omitempty"`
}

// AnalyzerRequest is the adapter's input boundary.
type AnalyzerRequest struct {
	Platform Platform        `json:"platform"`
	URL      string          `json:"url"`
	Excerpts ContentExcerpts `json:"excerpts"`
}

// Analyzer is the external large-model analyzer, consumed as an opaque
// capability: given a platform and content excerpts it returns
// findings tagged SourceAI, or a typed *AnalyzerError.
type Analyzer interface {
	Analyze(ctx context.Context, req AnalyzerRequest) ([]Finding, error)
	Name() string
}

// RawFinding is the untrusted duck-typed shape an analyzer response
// decodes into before validation.
type RawFinding struct {
	Name              string   `json:"name"`
	Category          string   `json:"category"`
	Subcategory       string   `json:"subcategory"`
	Confidence        string   `json:"confidence"`
	RiskLevel         string   `json:"risk_level"`
	PerformanceImpact string   `json:"performance_impact"`
	Evidence          []string `json:"evidence"`
	Description       string   `json:"description"`
	Version           string   `json:"version"`
}

// CoerceFindings validates raw analyzer entries against the closed
// enums and drops or repairs anything malformed. Entries without a
// name are dropped; out-of-enum ordinal fields are coerced to their
// conservative defaults rather than propagated.
func CoerceFindings(raw []RawFinding, platform Platform) []Finding {
	out := make([]Finding, 0, len(raw))
	for _, r := range raw {
		name := strings.TrimSpace(r.Name)
		if name == "" {
			continue
		}

		confidence := Confidence(strings.ToLower(strings.TrimSpace(r.Confidence)))
		if !confidence.IsValid() {
			confidence = ConfidenceLow
		}
		risk := RiskLevel(strings.ToLower(strings.TrimSpace(r.RiskLevel)))
		if !risk.IsValid() {
			risk = RiskNone
		}
		impact := Impact(strings.ToLower(strings.TrimSpace(r.PerformanceImpact)))
		if !impact.IsValid() {
			impact = ImpactNone
		}

		out = append(out, Finding{
			Name:              name,
			Platform:          platform,
			Category:          ParseCategory(r.Category),
			Subcategory:       strings.TrimSpace(r.Subcategory),
			Confidence:        confidence,
			RiskLevel:         risk,
			PerformanceImpact: impact,
			Evidence:          r.Evidence,
			Description:       strings.TrimSpace(r.Description),
			Source:            SourceAI,
			Version:           strings.TrimSpace(r.Version),
		})
	}
	return out
}
