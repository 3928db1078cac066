package detect

import (
	"strings"
	"testing"
)

func TestBuildExcerpts_ExtractsAssetNames(t *testing.T) {
	doc := NewDocument("https://example.com", `<html><head>
		<title>shop</title>
		<meta name="generator" content="Shopify">
		<link rel="stylesheet" href="/assets/theme.css">
		<link rel="preconnect" href="https://fonts.googleapis.com">
	</head><body>
		<script src="https://cdn.shopify.com/s/theme.js"></script>
		<script src="https://static.klaviyo.com/onsite/js/klaviyo.js"></script>
		<script src="data:text/javascript;base64,Zm9v"></script>
	</body></html>`, map[string]string{
		"server":       "cloudflare",
		"cf-ray":       "8abc",
		"content-type": "text/html",
	})

	ex := BuildExcerpts(doc)

	if len(ex.ScriptSourceNames) != 2 {
		t.Errorf("expected 2 script sources (data: URIs skipped), got %v", ex.ScriptSourceNames)
	}
	if len(ex.LinkSourceNames) != 2 {
		t.Errorf("expected 2 link hrefs, got %v", ex.LinkSourceNames)
	}
	if !strings.Contains(ex.HeadSection, "<title>shop</title>") {
		t.Errorf("head section missing title, got %q", ex.HeadSection)
	}
	if len(ex.MetaTags) != 1 {
		t.Errorf("expected 1 meta tag, got %v", ex.MetaTags)
	}

	foundServer, foundRay := false, false
	for _, h := range ex.ServerHeaders {
		if h == "server: cloudflare" {
			foundServer = true
		}
		if h == "cf-ray: 8abc" {
			foundRay = true
		}
	}
	if !foundServer || !foundRay {
		t.Errorf("fingerprint headers missing: %v", ex.ServerHeaders)
	}
	for _, h := range ex.ServerHeaders {
		if strings.HasPrefix(h, "content-type:") {
			t.Errorf("content-type is not a fingerprint header: %v", ex.ServerHeaders)
		}
	}
}

func TestBuildExcerpts_BoundsPayloadSize(t *testing.T) {
	big := strings.Repeat("<p>filler</p>", 10_000)
	doc := NewDocument("u", "<html><head>"+strings.Repeat("<meta charset=\"utf-8\">", 100)+"</head><body>"+big+"</body></html>", nil)

	ex := BuildExcerpts(doc)
	if len(ex.HTMLPrefix) > htmlPrefixBudget {
		t.Errorf("html prefix exceeds budget: %d", len(ex.HTMLPrefix))
	}
	if len(ex.HeadSection) > headSectionBudget {
		t.Errorf("head section exceeds budget: %d", len(ex.HeadSection))
	}
	if len(ex.MetaTags) > maxMetaTags {
		t.Errorf("meta tags exceed cap: %d", len(ex.MetaTags))
	}
}

func TestBuildExcerpts_DeduplicatesAssets(t *testing.T) {
	doc := NewDocument("u", strings.Repeat(`<script src="/app.js"></script>`, 5), nil)
	ex := BuildExcerpts(doc)
	if len(ex.ScriptSourceNames) != 1 {
		t.Errorf("expected deduplicated script list, got %v", ex.ScriptSourceNames)
	}
}

func TestBuildExcerpts_Deterministic(t *testing.T) {
	doc := NewDocument("u", `<script src="/a.js"></script><link href="/b.css">`,
		map[string]string{"server": "nginx", "x-powered-by": "php", "via": "1.1 varnish"})

	first := BuildExcerpts(doc)
	for i := 0; i < 3; i++ {
		again := BuildExcerpts(doc)
		if strings.Join(first.ServerHeaders, "|") != strings.Join(again.ServerHeaders, "|") {
			t.Fatal("server header order not deterministic")
		}
	}
}
