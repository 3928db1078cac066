package detect

import "strings"

// Match runs the tiered pattern scan for one document against a
// signature subset. The scan is deterministic and performs no I/O:
// findings come back in signature order, one per matched signature,
// with evidence naming the substrings that triggered the match.
//
// Tiers are tested in descending specificity and the first satisfied
// tier wins, so a signature can never match twice:
//
//	paths:   one substring hit in content or headers -> high
//	headers: one substring hit in headers            -> high
//	html:    min(2, len) distinct content hits       -> medium
//	css:     one content hit                         -> medium
//	js:      one content hit                         -> low
func Match(doc Document, signatures []Signature) []Finding {
	lowerHTML := strings.ToLower(doc.HTML)
	headerBlob := flattenHeaders(doc.Headers)

	findings := make([]Finding, 0, 8)
	for _, sig := range signatures {
		if f, ok := matchSignature(sig, lowerHTML, headerBlob); ok {
			findings = append(findings, f)
		}
	}
	return findings
}

func matchSignature(sig Signature, lowerHTML, headerBlob string) (Finding, bool) {
	if hits := matchAny(sig.Patterns.Paths, lowerHTML, headerBlob); len(hits) > 0 {
		return newPatternFinding(sig, ConfidenceHigh, hits), true
	}
	if hits := matchAny(sig.Patterns.Headers, headerBlob); len(hits) > 0 {
		return newPatternFinding(sig, ConfidenceHigh, hits), true
	}
	if required := htmlHitsRequired(len(sig.Patterns.HTML)); required > 0 {
		if hits := matchAny(sig.Patterns.HTML, lowerHTML); len(hits) >= required {
			return newPatternFinding(sig, ConfidenceMedium, hits), true
		}
	}
	if hits := matchAny(sig.Patterns.CSS, lowerHTML); len(hits) > 0 {
		return newPatternFinding(sig, ConfidenceMedium, hits), true
	}
	if hits := matchAny(sig.Patterns.JS, lowerHTML); len(hits) > 0 {
		return newPatternFinding(sig, ConfidenceLow, hits), true
	}
	return Finding{}, false
}

// htmlHitsRequired is min(2, n): single generic markup substrings are
// too weak alone, but a signature that only defines one pattern is
// allowed to match on it.
func htmlHitsRequired(n int) int {
	if n == 0 {
		return 0
	}
	if n == 1 {
		return 1
	}
	return 2
}

// matchAny returns the distinct patterns found as substrings in any of
// the given haystacks. Patterns are compared case-insensitively.
func matchAny(patterns []string, haystacks ...string) []string {
	if len(patterns) == 0 {
		return nil
	}
	var hits []string
	for _, p := range patterns {
		needle := strings.ToLower(p)
		for _, h := range haystacks {
			if h != "" && strings.Contains(h, needle) {
				hits = append(hits, p)
				break
			}
		}
	}
	return hits
}

func newPatternFinding(sig Signature, confidence Confidence, evidence []string) Finding {
	return Finding{
		Name:              sig.Name,
		Platform:          sig.Platform,
		Category:          sig.Category,
		Subcategory:       sig.Subcategory,
		Confidence:        confidence,
		RiskLevel:         sig.RiskLevel,
		PerformanceImpact: sig.PerformanceImpact,
		Evidence:          evidence,
		Description:       sig.Description,
		Source:            SourcePattern,
	}
}
