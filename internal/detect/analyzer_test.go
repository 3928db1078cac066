package detect

import "testing"

func TestCoerceFindings_DropsNamelessEntries(t *testing.T) {
	raw := []RawFinding{
		{Name: "", Category: "security"},
		{Name: "   ", Category: "security"},
		{Name: "Wordfence", Category: "security", Confidence: "high", RiskLevel: "none", PerformanceImpact: "medium"},
	}
	got := CoerceFindings(raw, PlatformWordPress)
	if len(got) != 1 {
		t.Fatalf("expected 1 coerced finding, got %d", len(got))
	}
	if got[0].Name != "Wordfence" || got[0].Source != SourceAI {
		t.Errorf("unexpected finding %+v", got[0])
	}
}

func TestCoerceFindings_CoercesOutOfEnumValues(t *testing.T) {
	raw := []RawFinding{{
		Name:              "Mystery Widget",
		Category:          "gadgets",
		Confidence:        "certain",
		RiskLevel:         "terrifying",
		PerformanceImpact: "enormous",
	}}
	got := CoerceFindings(raw, PlatformCustom)
	if len(got) != 1 {
		t.Fatalf("expected coercion, not a drop; got %d findings", len(got))
	}

	f := got[0]
	if f.Category != CategoryOther {
		t.Errorf("unknown category must coerce to other, got %s", f.Category)
	}
	if f.Confidence != ConfidenceLow {
		t.Errorf("unknown confidence must coerce to low, got %s", f.Confidence)
	}
	if f.RiskLevel != RiskNone {
		t.Errorf("unknown risk must coerce to none, got %s", f.RiskLevel)
	}
	if f.PerformanceImpact != ImpactNone {
		t.Errorf("unknown impact must coerce to none, got %s", f.PerformanceImpact)
	}
}

func TestCoerceFindings_NormalizesCaseAndWhitespace(t *testing.T) {
	raw := []RawFinding{{
		Name:              "  Klaviyo  ",
		Category:          " Marketing ",
		Confidence:        "HIGH",
		RiskLevel:         "Low",
		PerformanceImpact: "Medium",
		Version:           " 2.1 ",
	}}
	got := CoerceFindings(raw, PlatformShopify)
	if len(got) != 1 {
		t.Fatalf("expected 1 finding, got %d", len(got))
	}

	f := got[0]
	if f.Name != "Klaviyo" {
		t.Errorf("name must be trimmed, got %q", f.Name)
	}
	if f.Category != CategoryMarketing || f.Confidence != ConfidenceHigh || f.RiskLevel != RiskLow || f.PerformanceImpact != ImpactMedium {
		t.Errorf("enum normalization failed: %+v", f)
	}
	if f.Version != "2.1" {
		t.Errorf("version must be trimmed, got %q", f.Version)
	}
	if f.Platform != PlatformShopify {
		t.Errorf("platform must come from the request, got %s", f.Platform)
	}
}

func TestAnalyzerError_Unwrap(t *testing.T) {
	inner := &AnalyzerError{Kind: AnalyzerQuotaError}
	if inner.Error() == "" {
		t.Error("error string must not be empty")
	}
	wrapped := &AnalyzerError{Kind: AnalyzerProtocolError, Err: inner}
	if wrapped.Unwrap() != inner {
		t.Error("Unwrap must expose the inner error")
	}
}
