package detect

import "strings"

// Category classifies what a detected technology is for.
type Category string

const (
	CategorySecurity    Category = "security"
	CategoryPerformance Category = "performance"
	CategorySEO         Category = "seo"
	CategoryEcommerce   Category = "ecommerce"
	CategoryAnalytics   Category = "analytics"
	CategorySocial      Category = "social"
	CategoryBackup      Category = "backup"
	CategoryForms       Category = "forms"
	CategoryPageBuilder Category = "page-builder"
	CategoryContent     Category = "content"
	CategoryPayment     Category = "payment"
	CategoryMarketing   Category = "marketing"
	CategoryIntegration Category = "integration"
	CategoryUtility     Category = "utility"
	CategoryCDN         Category = "cdn"
	CategoryFramework   Category = "framework"
	CategoryHosting     Category = "hosting"
	CategoryTheme       Category = "theme"
	CategoryOther       Category = "other"
)

var validCategories = map[Category]struct{}{
	CategorySecurity: {}, CategoryPerformance: {}, CategorySEO: {},
	CategoryEcommerce: {}, CategoryAnalytics: {}, CategorySocial: {},
	CategoryBackup: {}, CategoryForms: {}, CategoryPageBuilder: {},
	CategoryContent: {}, CategoryPayment: {}, CategoryMarketing: {},
	CategoryIntegration: {}, CategoryUtility: {}, CategoryCDN: {},
	CategoryFramework: {}, CategoryHosting: {}, CategoryTheme: {},
	CategoryOther: {},
}

// IsValid reports whether c is one of the closed category set.
func (c Category) IsValid() bool {
	_, ok := validCategories[c]
	return ok
}

// ParseCategory normalizes a free-form category string to a known
// Category, falling back to CategoryOther for anything unrecognized.
func ParseCategory(s string) Category {
	c := Category(strings.ToLower(strings.TrimSpace(s)))
	if c.IsValid() {
		return c
	}
	return CategoryOther
}

// Confidence is the ordinal certainty band of a finding.
type Confidence string

const (
	ConfidenceHigh   Confidence = "high"
	ConfidenceMedium Confidence = "medium"
	ConfidenceLow    Confidence = "low"
)

// Rank orders confidence bands: high < medium < low for sorting.
func (c Confidence) Rank() int {
	switch c {
	case ConfidenceHigh:
		return 0
	case ConfidenceMedium:
		return 1
	default:
		return 2
	}
}

// IsValid reports whether c is a known confidence band.
func (c Confidence) IsValid() bool {
	return c == ConfidenceHigh || c == ConfidenceMedium || c == ConfidenceLow
}

// RiskLevel grades the security exposure a technology carries.
type RiskLevel string

const (
	RiskNone     RiskLevel = "none"
	RiskLow      RiskLevel = "low"
	RiskMedium   RiskLevel = "medium"
	RiskHigh     RiskLevel = "high"
	RiskCritical RiskLevel = "critical"
)

// IsValid reports whether r is a known risk level.
func (r RiskLevel) IsValid() bool {
	switch r {
	case RiskNone, RiskLow, RiskMedium, RiskHigh, RiskCritical:
		return true
	}
	return false
}

// Impact grades how heavily a technology weighs on page performance.
type Impact string

const (
	ImpactNone   Impact = "none"
	ImpactLow    Impact = "low"
	ImpactMedium Impact = "medium"
	ImpactHigh   Impact = "high"
)

// IsValid reports whether i is a known performance impact grade.
func (i Impact) IsValid() bool {
	switch i {
	case ImpactNone, ImpactLow, ImpactMedium, ImpactHigh:
		return true
	}
	return false
}

// Source identifies which detection path produced a finding.
type Source string

const (
	SourcePattern Source = "pattern"
	SourceAI      Source = "ai"
)

// PatternSet holds the match patterns of one signature, grouped by the
// location they are tested against. Groups are tested in descending
// specificity: paths, headers, html, css, js.
type PatternSet struct {
	HTML    []string `json:"html,omitempty"`
	Headers []string `json:"headers,omitempty"`
	JS      []string `json:"js,omitempty"`
	CSS     []string `json:"css,omitempty"`
	Paths   []string `json:"paths,omitempty"`
}

// Empty reports whether the set carries no patterns at all.
func (p PatternSet) Empty() bool {
	return len(p.HTML) == 0 && len(p.Headers) == 0 && len(p.JS) == 0 &&
		len(p.CSS) == 0 && len(p.Paths) == 0
}

// Signature is one static detection rule for a named technology.
// Signatures are immutable after catalog load and identified by
// (Platform, Name).
type Signature struct {
	Name              string     `json:"name"`
	Platform          Platform   `json:"platform"`
	Category          Category   `json:"category"`
	Subcategory       string     `json:"subcategory,omitempty"`
	Patterns          PatternSet `json:"patterns"`
	ConfidenceTier    Confidence `json:"confidence_tier"`
	RiskLevel         RiskLevel  `json:"risk_level"`
	PerformanceImpact Impact     `json:"performance_impact"`
	Description       string     `json:"description,omitempty"`
}

// Finding is one detected technology instance. Findings live for a
// single analysis run; the merger may enrich one exactly once when an
// AI result deduplicates onto it.
type Finding struct {
	Name              string     `json:"name"`
	Platform          Platform   `json:"platform"`
	Category          Category   `json:"category"`
	Subcategory       string     `json:"subcategory,omitempty"`
	Confidence        Confidence `json:"confidence"`
	RiskLevel         RiskLevel  `json:"risk_level"`
	PerformanceImpact Impact     `json:"performance_impact"`
	Evidence          []string   `json:"evidence,omitempty"`
	Description       string     `json:"description,omitempty"`
	Source            Source     `json:"source"`
	Version           string     `json:"version,omitempty"`
	Enriched          bool       `json:"enriched,omitempty"`
}
