package detect

import (
	"reflect"
	"testing"
)

func testSignature(name string, patterns PatternSet) Signature {
	return Signature{
		Name:              name,
		Platform:          PlatformWordPress,
		Category:          CategoryUtility,
		Patterns:          patterns,
		ConfidenceTier:    ConfidenceHigh,
		RiskLevel:         RiskNone,
		PerformanceImpact: ImpactNone,
	}
}

func TestMatch_PathHitYieldsHighConfidence(t *testing.T) {
	doc := NewDocument("https://example.com", `<script src="/wp-content/plugins/demo/app.js"></script>`, nil)
	sigs := []Signature{testSignature("Demo", PatternSet{Paths: []string{"/wp-content/plugins/demo/"}})}

	findings := Match(doc, sigs)
	if len(findings) != 1 {
		t.Fatalf("expected 1 finding, got %d", len(findings))
	}
	if findings[0].Confidence != ConfidenceHigh {
		t.Errorf("expected high confidence for path hit, got %s", findings[0].Confidence)
	}
	if findings[0].Source != SourcePattern {
		t.Errorf("expected pattern source, got %s", findings[0].Source)
	}
	if len(findings[0].Evidence) != 1 || findings[0].Evidence[0] != "/wp-content/plugins/demo/" {
		t.Errorf("expected triggering substring in evidence, got %v", findings[0].Evidence)
	}
}

func TestMatch_PathPatternMatchesHeaders(t *testing.T) {
	doc := NewDocument("https://example.com", "<html><body></body></html>",
		map[string]string{"link": "</wp-content/uploads/x.css>; rel=preload"})
	sigs := []Signature{testSignature("Demo", PatternSet{Paths: []string{"/wp-content/uploads/"}})}

	if got := Match(doc, sigs); len(got) != 1 || got[0].Confidence != ConfidenceHigh {
		t.Fatalf("expected high-confidence finding from header path hit, got %+v", got)
	}
}

func TestMatch_HeaderHitYieldsHighConfidence(t *testing.T) {
	doc := NewDocument("https://example.com", "<html></html>",
		map[string]string{"x-litespeed-cache": "hit"})
	sigs := []Signature{testSignature("LS", PatternSet{Headers: []string{"x-litespeed-cache"}})}

	findings := Match(doc, sigs)
	if len(findings) != 1 || findings[0].Confidence != ConfidenceHigh {
		t.Fatalf("expected high confidence header finding, got %+v", findings)
	}
}

func TestMatch_HTMLRequiresTwoDistinctHits(t *testing.T) {
	sigs := []Signature{testSignature("Widget", PatternSet{HTML: []string{"widget-alpha", "widget-beta", "widget-gamma"}})}

	oneHit := NewDocument("u", `<div class="widget-alpha"></div>`, nil)
	if got := Match(oneHit, sigs); len(got) != 0 {
		t.Errorf("one html hit should not match, got %+v", got)
	}

	twoHits := NewDocument("u", `<div class="widget-alpha widget-beta"></div>`, nil)
	got := Match(twoHits, sigs)
	if len(got) != 1 {
		t.Fatalf("two html hits should match, got %d findings", len(got))
	}
	if got[0].Confidence != ConfidenceMedium {
		t.Errorf("expected medium confidence for html match, got %s", got[0].Confidence)
	}
	if len(got[0].Evidence) != 2 {
		t.Errorf("expected 2 evidence entries, got %v", got[0].Evidence)
	}
}

func TestMatch_SingleHTMLPatternMatchesAlone(t *testing.T) {
	sigs := []Signature{testSignature("Solo", PatternSet{HTML: []string{"very-specific-token"}})}
	doc := NewDocument("u", `<div id="very-specific-token"></div>`, nil)

	if got := Match(doc, sigs); len(got) != 1 || got[0].Confidence != ConfidenceMedium {
		t.Fatalf("single-pattern html signature should match on one hit, got %+v", got)
	}
}

func TestMatch_CSSAndJSConfidence(t *testing.T) {
	sigs := []Signature{
		testSignature("CSSThing", PatternSet{CSS: []string{"fl-builder"}}),
		testSignature("JSThing", PatternSet{JS: []string{"wordfence_loghuman"}}),
	}
	doc := NewDocument("u", `<div class="fl-builder"></div><script>wordfence_logHuman();</script>`, nil)

	findings := Match(doc, sigs)
	if len(findings) != 2 {
		t.Fatalf("expected 2 findings, got %d", len(findings))
	}
	if findings[0].Confidence != ConfidenceMedium {
		t.Errorf("css match should be medium, got %s", findings[0].Confidence)
	}
	if findings[1].Confidence != ConfidenceLow {
		t.Errorf("js match should be low, got %s", findings[1].Confidence)
	}
}

func TestMatch_FirstTierWins(t *testing.T) {
	// A signature with both a path and a js pattern present in the
	// document must match once, at the path tier.
	sigs := []Signature{testSignature("Both", PatternSet{
		Paths: []string{"/plugins/both/"},
		JS:    []string{"bothinit("},
	})}
	doc := NewDocument("u", `<script src="/plugins/both/a.js"></script><script>bothInit();</script>`, nil)

	findings := Match(doc, sigs)
	if len(findings) != 1 {
		t.Fatalf("signature must not match twice, got %d findings", len(findings))
	}
	if findings[0].Confidence != ConfidenceHigh {
		t.Errorf("path tier should win, got %s", findings[0].Confidence)
	}
}

func TestMatch_CaseInsensitive(t *testing.T) {
	sigs := []Signature{testSignature("Caps", PatternSet{Paths: []string{"/WP-Content/Plugins/Caps/"}})}
	doc := NewDocument("u", `<script src="/wp-content/plugins/caps/a.js"></script>`, nil)

	if got := Match(doc, sigs); len(got) != 1 {
		t.Fatalf("matching must be case-insensitive, got %+v", got)
	}
}

func TestMatch_Deterministic(t *testing.T) {
	catalog, err := LoadCatalog()
	if err != nil {
		t.Fatalf("catalog load failed: %v", err)
	}
	doc := NewDocument("https://shop.example",
		`<script src="https://cdn.shopify.com/s/theme.js"></script>
		 <script src="https://static.klaviyo.com/onsite/js/klaviyo.js"></script>
		 <link href="https://fonts.googleapis.com/css2?family=Inter">`,
		map[string]string{"cf-ray": "8abc-IAD"})

	first := Match(doc, catalog.ForPlatform(PlatformShopify))
	for i := 0; i < 5; i++ {
		again := Match(doc, catalog.ForPlatform(PlatformShopify))
		if !reflect.DeepEqual(first, again) {
			t.Fatalf("matcher not deterministic on run %d:\nfirst=%+v\nagain=%+v", i, first, again)
		}
	}
	if len(first) == 0 {
		t.Fatal("expected findings from shopify document")
	}
}
