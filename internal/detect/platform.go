package detect

import (
	"regexp"
	"strings"
)

// Platform is the closed set of content platforms the engine knows how
// to specialize detection for.
type Platform string

const (
	PlatformWordPress   Platform = "wordpress"
	PlatformDrupal      Platform = "drupal"
	PlatformJoomla      Platform = "joomla"
	PlatformShopify     Platform = "shopify"
	PlatformMagento     Platform = "magento"
	PlatformPrestaShop  Platform = "prestashop"
	PlatformWix         Platform = "wix"
	PlatformSquarespace Platform = "squarespace"
	PlatformWebflow     Platform = "webflow"
	PlatformUniversal   Platform = "universal"
	PlatformCustom      Platform = "custom"
	PlatformUnknown     Platform = "unknown"
)

// IsValid reports whether p is one of the closed platform set.
func (p Platform) IsValid() bool {
	switch p {
	case PlatformWordPress, PlatformDrupal, PlatformJoomla, PlatformShopify,
		PlatformMagento, PlatformPrestaShop, PlatformWix, PlatformSquarespace,
		PlatformWebflow, PlatformUniversal, PlatformCustom, PlatformUnknown:
		return true
	}
	return false
}

// Recognized reports whether p names an actual catalogued platform, as
// opposed to the custom/unknown fallbacks or the universal pseudo set.
func (p Platform) Recognized() bool {
	return p.IsValid() && p != PlatformCustom && p != PlatformUnknown && p != PlatformUniversal
}

var generatorMetaPattern = regexp.MustCompile(`(?i)<meta[^>]+name=["']generator["'][^>]*content=["']([^"']+)["']`)
var generatorMetaPatternRev = regexp.MustCompile(`(?i)<meta[^>]+content=["']([^"']+)["'][^>]*name=["']generator["']`)

// generatorTag maps a lower-cased substring of the generator meta tag
// content to a platform. Checked in slice order.
var generatorTags = []struct {
	marker   string
	platform Platform
}{
	{"wordpress", PlatformWordPress},
	{"drupal", PlatformDrupal},
	{"joomla", PlatformJoomla},
	{"shopify", PlatformShopify},
	{"magento", PlatformMagento},
	{"prestashop", PlatformPrestaShop},
	{"wix.com", PlatformWix},
	{"squarespace", PlatformSquarespace},
	{"webflow", PlatformWebflow},
}

// pathMarkers lists per-platform substrings unique enough to identify
// the platform from page source or headers. Order matters: WordPress
// markers are tested before the generic CMS ones so a WooCommerce shop
// never classifies as Magento off a shared asset path.
var pathMarkers = []struct {
	platform Platform
	markers  []string
}{
	{PlatformWordPress, []string{"/wp-content/", "/wp-includes/", "wp-json", "/wp-admin/"}},
	{PlatformShopify, []string{"cdn.shopify.com", "myshopify.com", "shopify.theme", "/cdn/shop/"}},
	{PlatformWix, []string{"static.wixstatic.com", "wix-code", "_wixCIDX"}},
	{PlatformSquarespace, []string{"static1.squarespace.com", "squarespace-cdn.com", "sqs-block"}},
	{PlatformWebflow, []string{"assets.website-files.com", "w-webflow-badge", "data-wf-site"}},
	{PlatformDrupal, []string{"/sites/default/files/", "drupal.js", "drupal-settings-json", "/core/misc/drupal"}},
	{PlatformJoomla, []string{"/media/jui/", "/components/com_", "joomla-script-options"}},
	{PlatformMagento, []string{"/static/frontend/", "mage/cookies", "magento_", "/mage/"}},
	{PlatformPrestaShop, []string{"/modules/ps_", "prestashop.com", "var prestashop"}},
}

// minMeaningfulDocument is how many bytes of markup a page needs before
// a no-evidence result means "custom site" rather than "nothing there".
const minMeaningfulDocument = 256

// IdentifyPlatform classifies one document into exactly one platform
// tag. It is pure and total: any (html, headers) input yields a tag and
// it never fails. Priority: recognized generator meta tag, then path
// markers in fixed platform order, then custom for non-trivial pages.
func IdentifyPlatform(html string, headers map[string]string) Platform {
	lower := strings.ToLower(html)

	if m := generatorMetaPattern.FindStringSubmatch(html); len(m) == 2 {
		if p, ok := platformFromGenerator(m[1]); ok {
			return p
		}
	}
	if m := generatorMetaPatternRev.FindStringSubmatch(html); len(m) == 2 {
		if p, ok := platformFromGenerator(m[1]); ok {
			return p
		}
	}

	headerBlob := flattenHeaders(headers)
	for _, entry := range pathMarkers {
		for _, marker := range entry.markers {
			if strings.Contains(lower, marker) || strings.Contains(headerBlob, marker) {
				return entry.platform
			}
		}
	}

	if len(strings.TrimSpace(html)) >= minMeaningfulDocument {
		return PlatformCustom
	}
	return PlatformUnknown
}

func platformFromGenerator(content string) (Platform, bool) {
	lower := strings.ToLower(content)
	for _, g := range generatorTags {
		if strings.Contains(lower, g.marker) {
			return g.platform, true
		}
	}
	return PlatformUnknown, false
}

// flattenHeaders folds a lower-cased header map into one searchable
// "key: value" blob. Callers normalize keys; values are lowered here.
func flattenHeaders(headers map[string]string) string {
	if len(headers) == 0 {
		return ""
	}
	var b strings.Builder
	for k, v := range headers {
		b.WriteString(strings.ToLower(k))
		b.WriteString(": ")
		b.WriteString(strings.ToLower(v))
		b.WriteString("\n")
	}
	return b.String()
}
