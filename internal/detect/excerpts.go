package detect

import (
	"regexp"
	"sort"
	"strings"
)

const (
	htmlPrefixBudget  = 4096
	headSectionBudget = 2048
	maxAssetNames     = 40
	maxMetaTags       = 20
)

var (
	scriptSrcPattern = regexp.MustCompile(`(?i)<script[^>]+src=["']([^"']+)["']`)
	linkHrefPattern  = regexp.MustCompile(`(?i)<link[^>]+href=["']([^"']+)["']`)
	metaTagPattern   = regexp.MustCompile(`(?i)<meta[^>]*>`)
	headPattern      = regexp.MustCompile(`(?is)<head[^>]*>(.*?)</head>`)
)

// interestingHeaders are the response headers worth showing the
// analyzer; fingerprint-bearing headers, not the whole map.
var interestingHeaders = []string{
	"server", "x-powered-by", "x-generator", "via", "x-cache",
	"cf-ray", "x-shopify-stage", "x-drupal-cache", "x-litespeed-cache",
	"x-varnish", "link", "set-cookie",
}

// BuildExcerpts distills one document into the bounded payload the
// analyzer receives. Deterministic: asset and meta lists are deduped
// and capped in document order, headers in a fixed order.
func BuildExcerpts(doc Document) ContentExcerpts {
	return ContentExcerpts{
		HeadSection:       extractHead(doc.HTML),
		ScriptSourceNames: extractAttr(scriptSrcPattern, doc.HTML, maxAssetNames),
		LinkSourceNames:   extractAttr(linkHrefPattern, doc.HTML, maxAssetNames),
		MetaTags:          extractMetaTags(doc.HTML),
		ServerHeaders:     extractServerHeaders(doc.Headers),
		HTMLPrefix:        truncate(doc.HTML, htmlPrefixBudget),
	}
}

func extractHead(html string) string {
	m := headPattern.FindStringSubmatch(html)
	if len(m) != 2 {
		return ""
	}
	return truncate(strings.TrimSpace(m[1]), headSectionBudget)
}

func extractAttr(pattern *regexp.Regexp, html string, limit int) []string {
	matches := pattern.FindAllStringSubmatch(html, -1)
	if len(matches) == 0 {
		return nil
	}
	seen := make(map[string]struct{}, len(matches))
	out := make([]string, 0, len(matches))
	for _, m := range matches {
		if len(m) < 2 {
			continue
		}
		src := strings.TrimSpace(m[1])
		if src == "" || strings.HasPrefix(src, "data:") {
			continue
		}
		if _, ok := seen[src]; ok {
			continue
		}
		seen[src] = struct{}{}
		out = append(out, src)
		if len(out) == limit {
			break
		}
	}
	return out
}

func extractMetaTags(html string) []string {
	tags := metaTagPattern.FindAllString(html, maxMetaTags)
	out := make([]string, 0, len(tags))
	for _, t := range tags {
		out = append(out, strings.TrimSpace(t))
	}
	return out
}

func extractServerHeaders(headers map[string]string) []string {
	if len(headers) == 0 {
		return nil
	}
	var out []string
	for _, name := range interestingHeaders {
		if v, ok := headers[name]; ok && v != "" {
			out = append(out, name+": "+v)
		}
	}
	sort.Strings(out)
	return out
}

func truncate(s string, limit int) string {
	if len(s) <= limit {
		return s
	}
	return s[:limit]
}
