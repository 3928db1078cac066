package detect

import (
	"strings"
	"testing"
)

func TestIdentifyPlatform_GeneratorMetaWins(t *testing.T) {
	// Generator declaration takes priority over path markers.
	html := `<html><head>
		<meta name="generator" content="Drupal 10 (https://www.drupal.org)" />
	</head><body><script src="/wp-content/plugins/foo/foo.js"></script></body></html>`

	got := IdentifyPlatform(html, nil)
	if got != PlatformDrupal {
		t.Errorf("expected drupal from generator tag, got %s", got)
	}
}

func TestIdentifyPlatform_GeneratorReversedAttributeOrder(t *testing.T) {
	html := `<html><head><meta content="Joomla! - Open Source Content Management" name="generator" /></head><body></body></html>`

	got := IdentifyPlatform(html, nil)
	if got != PlatformJoomla {
		t.Errorf("expected joomla, got %s", got)
	}
}

func TestIdentifyPlatform_PathMarkers(t *testing.T) {
	cases := []struct {
		name string
		html string
		want Platform
	}{
		{"wordpress content dir", `<link rel="stylesheet" href="/wp-content/themes/twentytwentyfour/style.css">`, PlatformWordPress},
		{"shopify cdn", `<script src="https://cdn.shopify.com/s/files/1/0001/assets/theme.js"></script>`, PlatformShopify},
		{"wix static", `<img src="https://static.wixstatic.com/media/abc.jpg">`, PlatformWix},
		{"squarespace cdn", `<img src="https://static1.squarespace.com/static/img.png">`, PlatformSquarespace},
		{"webflow assets", `<link href="https://assets.website-files.com/site.css" rel="stylesheet">`, PlatformWebflow},
		{"drupal files", `<img src="/sites/default/files/hero.jpg">`, PlatformDrupal},
		{"joomla component", `<a href="/components/com_content/view">read</a>`, PlatformJoomla},
		{"magento static", `<script src="/static/frontend/Vendor/theme/en_US/mage/bootstrap.js"></script>`, PlatformMagento},
		{"prestashop module", `<script src="/modules/ps_shoppingcart/cart.js"></script>`, PlatformPrestaShop},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := IdentifyPlatform(tc.html, nil); got != tc.want {
				t.Errorf("expected %s, got %s", tc.want, got)
			}
		})
	}
}

func TestIdentifyPlatform_WordPressBeforeGenericMarkers(t *testing.T) {
	// A WooCommerce shop carrying generic commerce markup must
	// classify as WordPress off its wp-content paths.
	html := `<html><body>
		<link href="/wp-content/plugins/woocommerce/assets/css/woocommerce.css">
		<script src="/static/frontend/some/other/path.js"></script>
	</body></html>`

	if got := IdentifyPlatform(html, nil); got != PlatformWordPress {
		t.Errorf("expected wordpress priority over magento marker, got %s", got)
	}
}

func TestIdentifyPlatform_HeaderMarkers(t *testing.T) {
	headers := map[string]string{"link": "<https://example.com/wp-json/>; rel=\"https://api.w.org/\""}

	if got := IdentifyPlatform("<html><body>hi</body></html>", headers); got != PlatformWordPress {
		t.Errorf("expected wordpress from wp-json header, got %s", got)
	}
}

func TestIdentifyPlatform_CustomForNonTrivialDocument(t *testing.T) {
	html := "<html><head><title>corp</title></head><body>" +
		strings.Repeat("<p>hand rolled corporate site</p>", 20) + "</body></html>"

	if got := IdentifyPlatform(html, nil); got != PlatformCustom {
		t.Errorf("expected custom for non-trivial document, got %s", got)
	}
}

func TestIdentifyPlatform_UnknownForTrivialDocument(t *testing.T) {
	if got := IdentifyPlatform("", nil); got != PlatformUnknown {
		t.Errorf("expected unknown for empty document, got %s", got)
	}
	if got := IdentifyPlatform("<html></html>", nil); got != PlatformUnknown {
		t.Errorf("expected unknown for trivial document, got %s", got)
	}
}

func TestIdentifyPlatform_AlwaysReturnsValidTag(t *testing.T) {
	inputs := []string{
		"",
		"plain text, no markup at all",
		`<meta name="generator" content="SomeUnknownCMS 1.0">`,
		strings.Repeat("x", 10_000),
	}
	for _, html := range inputs {
		got := IdentifyPlatform(html, map[string]string{"server": "nginx"})
		if !got.IsValid() {
			t.Errorf("IdentifyPlatform(%.20q) returned invalid tag %q", html, got)
		}
	}
}
