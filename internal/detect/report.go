package detect

// Method records which detection path actually produced the report.
type Method string

const (
	MethodPatternOnly   Method = "pattern-only"
	MethodPatternWithAI Method = "pattern-with-ai"
	MethodAIOnly        Method = "ai-only"
	MethodFallback      Method = "fallback"
)

// Metrics carries wall-clock timings for observability and cost
// dashboards, in milliseconds.
type Metrics struct {
	PatternMs int64 `json:"pattern_ms"`
	AIMs      int64 `json:"ai_ms"`
	TotalMs   int64 `json:"total_ms"`
}

// AnalysisReport is the engine's output boundary for one document.
// Every finding appears exactly once across FindingsByCategory and
// TotalFound equals the flattened count. SecurityRisks and
// PerformanceHeavy are views over the same findings, not copies with
// independent lifecycles.
type AnalysisReport struct {
	URL                string                 `json:"url,omitempty"`
	Platform           Platform               `json:"platform"`
	TotalFound         int                    `json:"total_found"`
	FindingsByCategory map[Category][]Finding `json:"findings_by_category"`
	SecurityRisks      []Finding              `json:"security_risks,omitempty"`
	PerformanceHeavy   []Finding              `json:"performance_heavy,omitempty"`
	Recommendations    []string               `json:"recommendations,omitempty"`
	OverallConfidence  Confidence             `json:"overall_confidence"`
	Method             Method                 `json:"method"`
	EscalationReason   string                 `json:"escalation_reason,omitempty"`
	Metrics            Metrics                `json:"metrics"`
}

// Findings flattens the categorized findings back into the merged
// order: confidence rank, then name.
func (r *AnalysisReport) Findings() []Finding {
	out := make([]Finding, 0, r.TotalFound)
	for _, list := range r.FindingsByCategory {
		out = append(out, list...)
	}
	sortFindings(out)
	return out
}

// BuildReport categorizes and scores a merged finding list. Pure and
// total: any merged list yields a complete report.
func BuildReport(platform Platform, merged []Finding, method Method, metrics Metrics) AnalysisReport {
	byCategory := make(map[Category][]Finding)
	var securityRisks, performanceHeavy []Finding

	for _, f := range merged {
		byCategory[f.Category] = append(byCategory[f.Category], f)
		if f.RiskLevel == RiskHigh || f.RiskLevel == RiskCritical {
			securityRisks = append(securityRisks, f)
		}
		if f.PerformanceImpact == ImpactMedium || f.PerformanceImpact == ImpactHigh {
			performanceHeavy = append(performanceHeavy, f)
		}
	}

	return AnalysisReport{
		Platform:           platform,
		TotalFound:         len(merged),
		FindingsByCategory: byCategory,
		SecurityRisks:      securityRisks,
		PerformanceHeavy:   performanceHeavy,
		Recommendations:    Recommend(merged),
		OverallConfidence:  overallConfidence(merged),
		Method:             method,
		Metrics:            metrics,
	}
}

// overallConfidence bands the whole report on the strength of its
// evidence: high needs at least three high-confidence findings, medium
// needs any finding at medium or better, anything else is low.
func overallConfidence(findings []Finding) Confidence {
	high, medium := 0, 0
	for _, f := range findings {
		switch f.Confidence {
		case ConfidenceHigh:
			high++
		case ConfidenceMedium:
			medium++
		}
	}
	switch {
	case high >= 3:
		return ConfidenceHigh
	case high > 0 || medium > 0:
		return ConfidenceMedium
	default:
		return ConfidenceLow
	}
}

// categoryGapAdvice is the fixed recommendation table keyed on absent
// categories. Wording is advisory; identifiers are stable.
var categoryGapAdvice = []struct {
	category Category
	advice   string
}{
	{CategorySEO, "no SEO tooling detected; consider adding sitemap and metadata management"},
	{CategorySecurity, "no security layer detected; consider a firewall or hardening extension"},
	{CategoryPerformance, "no caching layer detected; consider a page cache or CDN"},
	{CategoryBackup, "no backup solution detected; automated backups reduce recovery time"},
	{CategoryForms, "no form handling detected; contact forms usually need spam protection"},
}

// Recommend derives advisory strings from category gaps in the merged
// list, plus cross-cutting conflict checks.
func Recommend(findings []Finding) []string {
	present := make(map[Category]int, len(findings))
	for _, f := range findings {
		present[f.Category]++
	}

	var out []string
	for _, rule := range categoryGapAdvice {
		if present[rule.category] == 0 {
			out = append(out, rule.advice)
		}
	}
	if present[CategoryPageBuilder] > 1 {
		out = append(out, "multiple page builders detected; concurrent builders conflict and slow editing")
	}
	return out
}
