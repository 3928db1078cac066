package detect

import (
	"sort"
	"strings"
)

// SameFinding is the engine's fuzzy identity rule: two findings name
// the same technology when either name contains the other, compared
// case-insensitively. This tolerates naming drift between the catalog
// and the analyzer ("WP Rocket" vs "wp-rocket") at the cost of false
// merges on very short names.
func SameFinding(a, b string) bool {
	la := strings.ToLower(strings.TrimSpace(a))
	lb := strings.ToLower(strings.TrimSpace(b))
	if la == "" || lb == "" {
		return false
	}
	return strings.Contains(la, lb) || strings.Contains(lb, la)
}

// Merge folds pattern and AI findings into one list whose identities
// are pairwise distinct under SameFinding. A finding that fuzzy-matches
// an earlier entry enriches it in place (evidence union, description
// fill-in, version fill-in) instead of adding a second entry. Pattern
// findings fold against each other too: the catalog carries containment
// pairs like "WooCommerce" and "WooCommerce Stripe Gateway", and a page
// matching both must still produce one entry per identity. The merged
// list comes back sorted by confidence rank, then name: that ordering
// is the contract for everything downstream.
func Merge(patternFindings, aiFindings []Finding) []Finding {
	merged := make([]Finding, 0, len(patternFindings)+len(aiFindings))
	for _, f := range patternFindings {
		merged = foldIn(merged, f)
	}
	for _, f := range aiFindings {
		merged = foldIn(merged, f)
	}

	sortFindings(merged)
	return merged
}

// foldIn appends f unless it fuzzy-matches an existing entry, which
// then absorbs it. The first-seen finding keeps its identity.
func foldIn(merged []Finding, f Finding) []Finding {
	for i := range merged {
		if SameFinding(merged[i].Name, f.Name) {
			enrich(&merged[i], f)
			return merged
		}
	}
	return append(merged, f)
}

// sortFindings applies the downstream rendering contract: confidence
// rank first, then lexicographic name. Stable across runs.
func sortFindings(findings []Finding) {
	sort.SliceStable(findings, func(i, j int) bool {
		ri, rj := findings[i].Confidence.Rank(), findings[j].Confidence.Rank()
		if ri != rj {
			return ri < rj
		}
		return findings[i].Name < findings[j].Name
	})
}

// enrich applies the one permitted mutation of a finding's lifecycle:
// union in the duplicate's evidence and fill gaps the pattern source
// could not know.
func enrich(existing *Finding, dup Finding) {
	existing.Evidence = unionEvidence(existing.Evidence, dup.Evidence)
	if existing.Description == "" && dup.Description != "" {
		existing.Description = dup.Description
	}
	if existing.Version == "" && dup.Version != "" {
		existing.Version = dup.Version
	}
	if existing.Subcategory == "" && dup.Subcategory != "" {
		existing.Subcategory = dup.Subcategory
	}
	existing.Enriched = true
}

func unionEvidence(a, b []string) []string {
	seen := make(map[string]struct{}, len(a)+len(b))
	out := make([]string, 0, len(a)+len(b))
	for _, v := range a {
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		out = append(out, v)
	}
	for _, v := range b {
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		out = append(out, v)
	}
	return out
}
