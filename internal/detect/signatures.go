package detect

// Built-in signature tables, one slice per platform plus the universal
// set applied to every document. Keep entries alphabetized by name
// within each table; catalog_test.go validates the integrity of every
// entry at load time.

func builtinSignatures() []Signature {
	total := len(wordpressSignatures) + len(drupalSignatures) + len(joomlaSignatures) +
		len(shopifySignatures) + len(magentoSignatures) + len(prestashopSignatures) +
		len(wixSignatures) + len(squarespaceSignatures) + len(webflowSignatures) +
		len(universalSignatures)
	out := make([]Signature, 0, total)
	out = append(out, wordpressSignatures...)
	out = append(out, drupalSignatures...)
	out = append(out, joomlaSignatures...)
	out = append(out, shopifySignatures...)
	out = append(out, magentoSignatures...)
	out = append(out, prestashopSignatures...)
	out = append(out, wixSignatures...)
	out = append(out, squarespaceSignatures...)
	out = append(out, webflowSignatures...)
	out = append(out, universalSignatures...)
	return out
}

var wordpressSignatures = []Signature{
	{
		Name: "Advanced Custom Fields", Platform: PlatformWordPress, Category: CategoryContent,
		Subcategory: "custom-fields",
		Patterns: PatternSet{
			Paths: []string{"/wp-content/plugins/advanced-custom-fields/"},
			HTML:  []string{"acf-field", "acf-input"},
		},
		ConfidenceTier: ConfidenceHigh, RiskLevel: RiskLow, PerformanceImpact: ImpactLow,
		Description: "Custom field management for editors and developers",
	},
	{
		Name: "Akismet", Platform: PlatformWordPress, Category: CategorySecurity,
		Subcategory: "anti-spam",
		Patterns: PatternSet{
			Paths: []string{"/wp-content/plugins/akismet/"},
			JS:    []string{"akismet_comment_nonce"},
		},
		ConfidenceTier: ConfidenceHigh, RiskLevel: RiskNone, PerformanceImpact: ImpactLow,
		Description: "Comment spam filtering service",
	},
	{
		Name: "All in One SEO", Platform: PlatformWordPress, Category: CategorySEO,
		Patterns: PatternSet{
			Paths: []string{"/wp-content/plugins/all-in-one-seo-pack/"},
			HTML:  []string{"aioseo-schema", "all in one seo"},
		},
		ConfidenceTier: ConfidenceHigh, RiskLevel: RiskLow, PerformanceImpact: ImpactLow,
		Description: "Search engine optimization toolkit",
	},
	{
		Name: "Autoptimize", Platform: PlatformWordPress, Category: CategoryPerformance,
		Subcategory: "asset-optimization",
		Patterns: PatternSet{
			Paths: []string{"/wp-content/cache/autoptimize/"},
			HTML:  []string{"autoptimize_", "ao_optimized"},
		},
		ConfidenceTier: ConfidenceHigh, RiskLevel: RiskNone, PerformanceImpact: ImpactLow,
		Description: "CSS/JS aggregation and minification",
	},
	{
		Name: "BackupBuddy", Platform: PlatformWordPress, Category: CategoryBackup,
		Patterns: PatternSet{
			Paths: []string{"/wp-content/plugins/backupbuddy/"},
		},
		ConfidenceTier: ConfidenceHigh, RiskLevel: RiskMedium, PerformanceImpact: ImpactMedium,
		Description: "Scheduled site backup and migration",
	},
	{
		Name: "bbPress", Platform: PlatformWordPress, Category: CategorySocial,
		Subcategory: "forum",
		Patterns: PatternSet{
			Paths: []string{"/wp-content/plugins/bbpress/"},
			CSS:   []string{"bbp-forums", "bbp-topic"},
		},
		ConfidenceTier: ConfidenceHigh, RiskLevel: RiskLow, PerformanceImpact: ImpactMedium,
		Description: "Forum software for WordPress",
	},
	{
		Name: "Beaver Builder", Platform: PlatformWordPress, Category: CategoryPageBuilder,
		Patterns: PatternSet{
			Paths: []string{"/wp-content/plugins/bb-plugin/"},
			CSS:   []string{"fl-builder", "fl-row"},
		},
		ConfidenceTier: ConfidenceHigh, RiskLevel: RiskLow, PerformanceImpact: ImpactHigh,
		Description: "Drag-and-drop page builder",
	},
	{
		Name: "BuddyPress", Platform: PlatformWordPress, Category: CategorySocial,
		Subcategory: "community",
		Patterns: PatternSet{
			Paths: []string{"/wp-content/plugins/buddypress/"},
			CSS:   []string{"buddypress-wrap"},
		},
		ConfidenceTier: ConfidenceHigh, RiskLevel: RiskMedium, PerformanceImpact: ImpactHigh,
		Description: "Community and member profile features",
	},
	{
		Name: "Contact Form 7", Platform: PlatformWordPress, Category: CategoryForms,
		Patterns: PatternSet{
			Paths: []string{"/wp-content/plugins/contact-form-7/"},
			HTML:  []string{"wpcf7", "wpcf7-form"},
		},
		ConfidenceTier: ConfidenceHigh, RiskLevel: RiskLow, PerformanceImpact: ImpactLow,
		Description: "Contact form management",
	},
	{
		Name: "Divi Builder", Platform: PlatformWordPress, Category: CategoryPageBuilder,
		Patterns: PatternSet{
			Paths: []string{"/wp-content/themes/divi/", "/wp-content/plugins/divi-builder/"},
			CSS:   []string{"et_pb_section", "et_pb_row"},
		},
		ConfidenceTier: ConfidenceHigh, RiskLevel: RiskLow, PerformanceImpact: ImpactHigh,
		Description: "Divi theme visual builder",
	},
	{
		Name: "Duplicator", Platform: PlatformWordPress, Category: CategoryBackup,
		Subcategory: "migration",
		Patterns: PatternSet{
			Paths: []string{"/wp-content/plugins/duplicator/"},
		},
		ConfidenceTier: ConfidenceHigh, RiskLevel: RiskHigh, PerformanceImpact: ImpactLow,
		Description: "Site duplication and migration; installer leftovers are a known exposure",
	},
	{
		Name: "Easy Digital Downloads", Platform: PlatformWordPress, Category: CategoryEcommerce,
		Patterns: PatternSet{
			Paths: []string{"/wp-content/plugins/easy-digital-downloads/"},
			HTML:  []string{"edd-cart", "edd_download"},
		},
		ConfidenceTier: ConfidenceHigh, RiskLevel: RiskMedium, PerformanceImpact: ImpactMedium,
		Description: "Digital product sales",
	},
	{
		Name: "Elementor", Platform: PlatformWordPress, Category: CategoryPageBuilder,
		Patterns: PatternSet{
			Paths: []string{"/wp-content/plugins/elementor/"},
			CSS:   []string{"elementor-widget", "elementor-section"},
		},
		ConfidenceTier: ConfidenceHigh, RiskLevel: RiskLow, PerformanceImpact: ImpactHigh,
		Description: "Visual page builder",
	},
	{
		Name: "Elementor Pro", Platform: PlatformWordPress, Category: CategoryPageBuilder,
		Patterns: PatternSet{
			Paths: []string{"/wp-content/plugins/elementor-pro/"},
		},
		ConfidenceTier: ConfidenceHigh, RiskLevel: RiskLow, PerformanceImpact: ImpactHigh,
		Description: "Elementor premium widgets and theme builder",
	},
	{
		Name: "Gravity Forms", Platform: PlatformWordPress, Category: CategoryForms,
		Patterns: PatternSet{
			Paths: []string{"/wp-content/plugins/gravityforms/"},
			HTML:  []string{"gform_wrapper", "gform_fields"},
		},
		ConfidenceTier: ConfidenceHigh, RiskLevel: RiskLow, PerformanceImpact: ImpactMedium,
		Description: "Advanced form builder",
	},
	{
		Name: "iThemes Security", Platform: PlatformWordPress, Category: CategorySecurity,
		Subcategory: "hardening",
		Patterns: PatternSet{
			Paths: []string{"/wp-content/plugins/better-wp-security/"},
		},
		ConfidenceTier: ConfidenceHigh, RiskLevel: RiskNone, PerformanceImpact: ImpactLow,
		Description: "Login protection and file change detection",
	},
	{
		Name: "Jetpack", Platform: PlatformWordPress, Category: CategoryUtility,
		Patterns: PatternSet{
			Paths: []string{"/wp-content/plugins/jetpack/"},
			HTML:  []string{"jetpack-lazy-image", "stats.wp.com"},
			JS:    []string{"jetpack-boost"},
		},
		ConfidenceTier: ConfidenceHigh, RiskLevel: RiskLow, PerformanceImpact: ImpactMedium,
		Description: "WordPress.com feature bundle",
	},
	{
		Name: "LiteSpeed Cache", Platform: PlatformWordPress, Category: CategoryPerformance,
		Subcategory: "caching",
		Patterns: PatternSet{
			Paths:   []string{"/wp-content/plugins/litespeed-cache/"},
			Headers: []string{"x-litespeed-cache"},
			HTML:    []string{"litespeed-cache", "data-lazyloaded"},
		},
		ConfidenceTier: ConfidenceHigh, RiskLevel: RiskNone, PerformanceImpact: ImpactLow,
		Description: "Server-level page cache for LiteSpeed",
	},
	{
		Name: "MailChimp for WordPress", Platform: PlatformWordPress, Category: CategoryMarketing,
		Subcategory: "email",
		Patterns: PatternSet{
			Paths: []string{"/wp-content/plugins/mailchimp-for-wp/"},
			HTML:  []string{"mc4wp-form"},
		},
		ConfidenceTier: ConfidenceHigh, RiskLevel: RiskLow, PerformanceImpact: ImpactLow,
		Description: "Newsletter signup forms",
	},
	{
		Name: "MonsterInsights", Platform: PlatformWordPress, Category: CategoryAnalytics,
		Patterns: PatternSet{
			Paths: []string{"/wp-content/plugins/google-analytics-for-wordpress/"},
			JS:    []string{"monsterinsights_frontend"},
		},
		ConfidenceTier: ConfidenceHigh, RiskLevel: RiskLow, PerformanceImpact: ImpactLow,
		Description: "Google Analytics integration",
	},
	{
		Name: "Ninja Forms", Platform: PlatformWordPress, Category: CategoryForms,
		Patterns: PatternSet{
			Paths: []string{"/wp-content/plugins/ninja-forms/"},
			HTML:  []string{"nf-form-cont", "ninja-forms-field"},
		},
		ConfidenceTier: ConfidenceHigh, RiskLevel: RiskLow, PerformanceImpact: ImpactMedium,
		Description: "Drag-and-drop form builder",
	},
	{
		Name: "Rank Math", Platform: PlatformWordPress, Category: CategorySEO,
		Patterns: PatternSet{
			Paths: []string{"/wp-content/plugins/seo-by-rank-math/"},
			HTML:  []string{"rank math", "rank-math-schema"},
		},
		ConfidenceTier: ConfidenceHigh, RiskLevel: RiskLow, PerformanceImpact: ImpactLow,
		Description: "SEO suite with schema markup",
	},
	{
		Name: "Really Simple SSL", Platform: PlatformWordPress, Category: CategorySecurity,
		Subcategory: "tls",
		Patterns: PatternSet{
			Paths: []string{"/wp-content/plugins/really-simple-ssl/"},
		},
		ConfidenceTier: ConfidenceHigh, RiskLevel: RiskNone, PerformanceImpact: ImpactNone,
		Description: "Mixed-content fixing and SSL redirect",
	},
	{
		Name: "Redirection", Platform: PlatformWordPress, Category: CategorySEO,
		Subcategory: "redirects",
		Patterns: PatternSet{
			Paths: []string{"/wp-content/plugins/redirection/"},
		},
		ConfidenceTier: ConfidenceHigh, RiskLevel: RiskLow, PerformanceImpact: ImpactLow,
		Description: "301 redirect and 404 management",
	},
	{
		Name: "Slider Revolution", Platform: PlatformWordPress, Category: CategoryContent,
		Subcategory: "slider",
		Patterns: PatternSet{
			Paths: []string{"/wp-content/plugins/revslider/"},
			CSS:   []string{"rev_slider", "tp-caption"},
		},
		ConfidenceTier: ConfidenceHigh, RiskLevel: RiskHigh, PerformanceImpact: ImpactHigh,
		Description: "Slide and animation builder with a history of disclosed vulnerabilities",
	},
	{
		Name: "Smush", Platform: PlatformWordPress, Category: CategoryPerformance,
		Subcategory: "images",
		Patterns: PatternSet{
			Paths: []string{"/wp-content/plugins/wp-smushit/"},
			HTML:  []string{"smush-lazy-load"},
		},
		ConfidenceTier: ConfidenceHigh, RiskLevel: RiskNone, PerformanceImpact: ImpactLow,
		Description: "Image compression and lazy loading",
	},
	{
		Name: "Sucuri Security", Platform: PlatformWordPress, Category: CategorySecurity,
		Subcategory: "firewall",
		Patterns: PatternSet{
			Paths:   []string{"/wp-content/plugins/sucuri-scanner/"},
			Headers: []string{"x-sucuri-id", "x-sucuri-cache"},
		},
		ConfidenceTier: ConfidenceHigh, RiskLevel: RiskNone, PerformanceImpact: ImpactLow,
		Description: "Malware scanning and firewall",
	},
	{
		Name: "The Events Calendar", Platform: PlatformWordPress, Category: CategoryContent,
		Subcategory: "events",
		Patterns: PatternSet{
			Paths: []string{"/wp-content/plugins/the-events-calendar/"},
			CSS:   []string{"tribe-events", "tribe-common"},
		},
		ConfidenceTier: ConfidenceHigh, RiskLevel: RiskLow, PerformanceImpact: ImpactMedium,
		Description: "Event listing and calendar views",
	},
	{
		Name: "UpdraftPlus", Platform: PlatformWordPress, Category: CategoryBackup,
		Patterns: PatternSet{
			Paths: []string{"/wp-content/plugins/updraftplus/"},
		},
		ConfidenceTier: ConfidenceHigh, RiskLevel: RiskMedium, PerformanceImpact: ImpactMedium,
		Description: "Scheduled backups to remote storage",
	},
	{
		Name: "W3 Total Cache", Platform: PlatformWordPress, Category: CategoryPerformance,
		Subcategory: "caching",
		Patterns: PatternSet{
			Paths:   []string{"/wp-content/plugins/w3-total-cache/"},
			Headers: []string{"w3tc"},
			HTML:    []string{"w3 total cache", "w3tc_"},
		},
		ConfidenceTier: ConfidenceHigh, RiskLevel: RiskLow, PerformanceImpact: ImpactLow,
		Description: "Page, object and browser caching",
	},
	{
		Name: "WooCommerce", Platform: PlatformWordPress, Category: CategoryEcommerce,
		Patterns: PatternSet{
			Paths: []string{"/wp-content/plugins/woocommerce/"},
			HTML:  []string{"woocommerce-page", "wc-ajax"},
			CSS:   []string{"woocommerce"},
		},
		ConfidenceTier: ConfidenceHigh, RiskLevel: RiskMedium, PerformanceImpact: ImpactHigh,
		Description: "E-commerce storefront and checkout",
	},
	{
		Name: "WooCommerce PayPal Payments", Platform: PlatformWordPress, Category: CategoryPayment,
		Patterns: PatternSet{
			Paths: []string{"/wp-content/plugins/woocommerce-paypal-payments/"},
		},
		ConfidenceTier: ConfidenceHigh, RiskLevel: RiskMedium, PerformanceImpact: ImpactLow,
		Description: "PayPal checkout for WooCommerce",
	},
	{
		Name: "WooCommerce Stripe Gateway", Platform: PlatformWordPress, Category: CategoryPayment,
		Patterns: PatternSet{
			Paths: []string{"/wp-content/plugins/woocommerce-gateway-stripe/"},
			JS:    []string{"wc_stripe_params"},
		},
		ConfidenceTier: ConfidenceHigh, RiskLevel: RiskMedium, PerformanceImpact: ImpactLow,
		Description: "Stripe card payments for WooCommerce",
	},
	{
		Name: "Wordfence", Platform: PlatformWordPress, Category: CategorySecurity,
		Subcategory: "firewall",
		Patterns: PatternSet{
			Paths: []string{"/wp-content/plugins/wordfence/"},
			JS:    []string{"wordfence_logHuman"},
		},
		ConfidenceTier: ConfidenceHigh, RiskLevel: RiskNone, PerformanceImpact: ImpactMedium,
		Description: "Web application firewall and malware scanner",
	},
	{
		Name: "WP Fastest Cache", Platform: PlatformWordPress, Category: CategoryPerformance,
		Subcategory: "caching",
		Patterns: PatternSet{
			Paths: []string{"/wp-content/plugins/wp-fastest-cache/"},
			HTML:  []string{"wp fastest cache"},
		},
		ConfidenceTier: ConfidenceHigh, RiskLevel: RiskNone, PerformanceImpact: ImpactLow,
		Description: "Static page cache",
	},
	{
		Name: "WP Rocket", Platform: PlatformWordPress, Category: CategoryPerformance,
		Subcategory: "caching",
		Patterns: PatternSet{
			Paths:   []string{"/wp-content/plugins/wp-rocket/", "/wp-content/cache/wp-rocket/"},
			Headers: []string{"x-rocket-nginx"},
			HTML:    []string{"wp-rocket", "rocket-lazyload"},
		},
		ConfidenceTier: ConfidenceHigh, RiskLevel: RiskNone, PerformanceImpact: ImpactLow,
		Description: "Premium page caching and asset optimization",
	},
	{
		Name: "WPBakery Page Builder", Platform: PlatformWordPress, Category: CategoryPageBuilder,
		Patterns: PatternSet{
			Paths: []string{"/wp-content/plugins/js_composer/"},
			CSS:   []string{"vc_row", "wpb_wrapper"},
		},
		ConfidenceTier: ConfidenceHigh, RiskLevel: RiskMedium, PerformanceImpact: ImpactHigh,
		Description: "Shortcode-based page builder",
	},
	{
		Name: "WPForms", Platform: PlatformWordPress, Category: CategoryForms,
		Patterns: PatternSet{
			Paths: []string{"/wp-content/plugins/wpforms-lite/", "/wp-content/plugins/wpforms/"},
			HTML:  []string{"wpforms-container", "wpforms-form"},
		},
		ConfidenceTier: ConfidenceHigh, RiskLevel: RiskLow, PerformanceImpact: ImpactLow,
		Description: "Beginner-oriented form builder",
	},
	{
		Name: "WPML", Platform: PlatformWordPress, Category: CategoryContent,
		Subcategory: "multilingual",
		Patterns: PatternSet{
			Paths: []string{"/wp-content/plugins/sitepress-multilingual-cms/"},
			HTML:  []string{"wpml-ls-item", "icl_current_language"},
		},
		ConfidenceTier: ConfidenceHigh, RiskLevel: RiskLow, PerformanceImpact: ImpactHigh,
		Description: "Multilingual content management",
	},
	{
		Name: "Yoast SEO", Platform: PlatformWordPress, Category: CategorySEO,
		Patterns: PatternSet{
			Paths: []string{"/wp-content/plugins/wordpress-seo/"},
			HTML:  []string{"yoast seo", "yoast-schema-graph"},
		},
		ConfidenceTier: ConfidenceHigh, RiskLevel: RiskLow, PerformanceImpact: ImpactLow,
		Description: "SEO metadata, sitemaps and schema graph",
	},
}

var drupalSignatures = []Signature{
	{
		Name: "Admin Toolbar", Platform: PlatformDrupal, Category: CategoryUtility,
		Patterns: PatternSet{
			Paths: []string{"/modules/contrib/admin_toolbar/"},
		},
		ConfidenceTier: ConfidenceHigh, RiskLevel: RiskLow, PerformanceImpact: ImpactLow,
		Description: "Improved administration menu",
	},
	{
		Name: "BigPipe", Platform: PlatformDrupal, Category: CategoryPerformance,
		Patterns: PatternSet{
			HTML: []string{"big_pipe", "data-big-pipe"},
		},
		ConfidenceTier: ConfidenceMedium, RiskLevel: RiskNone, PerformanceImpact: ImpactLow,
		Description: "Progressive page streaming",
	},
	{
		Name: "CKEditor", Platform: PlatformDrupal, Category: CategoryContent,
		Subcategory: "editor",
		Patterns: PatternSet{
			Paths: []string{"/core/assets/vendor/ckeditor5/", "/libraries/ckeditor/"},
			JS:    []string{"ckeditor"},
		},
		ConfidenceTier: ConfidenceMedium, RiskLevel: RiskMedium, PerformanceImpact: ImpactMedium,
		Description: "Rich text editor",
	},
	{
		Name: "Drupal Cache", Platform: PlatformDrupal, Category: CategoryPerformance,
		Subcategory: "caching",
		Patterns: PatternSet{
			Headers: []string{"x-drupal-cache", "x-drupal-dynamic-cache"},
		},
		ConfidenceTier: ConfidenceHigh, RiskLevel: RiskNone, PerformanceImpact: ImpactLow,
		Description: "Core page and dynamic page cache",
	},
	{
		Name: "Metatag", Platform: PlatformDrupal, Category: CategorySEO,
		Patterns: PatternSet{
			Paths: []string{"/modules/contrib/metatag/"},
		},
		ConfidenceTier: ConfidenceHigh, RiskLevel: RiskLow, PerformanceImpact: ImpactLow,
		Description: "Meta tag management",
	},
	{
		Name: "Paragraphs", Platform: PlatformDrupal, Category: CategoryContent,
		Patterns: PatternSet{
			Paths: []string{"/modules/contrib/paragraphs/"},
			CSS:   []string{"paragraph--type"},
		},
		ConfidenceTier: ConfidenceHigh, RiskLevel: RiskLow, PerformanceImpact: ImpactMedium,
		Description: "Structured content components",
	},
	{
		Name: "Pathauto", Platform: PlatformDrupal, Category: CategorySEO,
		Subcategory: "urls",
		Patterns: PatternSet{
			Paths: []string{"/modules/contrib/pathauto/"},
		},
		ConfidenceTier: ConfidenceHigh, RiskLevel: RiskLow, PerformanceImpact: ImpactLow,
		Description: "Automatic URL alias generation",
	},
	{
		Name: "Views", Platform: PlatformDrupal, Category: CategoryContent,
		Patterns: PatternSet{
			CSS: []string{"view-content", "views-row"},
		},
		ConfidenceTier: ConfidenceMedium, RiskLevel: RiskLow, PerformanceImpact: ImpactMedium,
		Description: "Content listing engine",
	},
	{
		Name: "Webform", Platform: PlatformDrupal, Category: CategoryForms,
		Patterns: PatternSet{
			Paths: []string{"/modules/contrib/webform/"},
			CSS:   []string{"webform-submission-form"},
		},
		ConfidenceTier: ConfidenceHigh, RiskLevel: RiskLow, PerformanceImpact: ImpactMedium,
		Description: "Form and survey builder",
	},
}

var joomlaSignatures = []Signature{
	{
		Name: "Akeeba Backup", Platform: PlatformJoomla, Category: CategoryBackup,
		Patterns: PatternSet{
			Paths: []string{"/components/com_akeebabackup/", "/components/com_akeeba/"},
		},
		ConfidenceTier: ConfidenceHigh, RiskLevel: RiskMedium, PerformanceImpact: ImpactLow,
		Description: "Site backup component",
	},
	{
		Name: "JCE Editor", Platform: PlatformJoomla, Category: CategoryContent,
		Subcategory: "editor",
		Patterns: PatternSet{
			Paths: []string{"/components/com_jce/"},
		},
		ConfidenceTier: ConfidenceHigh, RiskLevel: RiskMedium, PerformanceImpact: ImpactLow,
		Description: "Extended WYSIWYG editor",
	},
	{
		Name: "K2", Platform: PlatformJoomla, Category: CategoryContent,
		Patterns: PatternSet{
			Paths: []string{"/components/com_k2/"},
			CSS:   []string{"itemview", "k2container"},
		},
		ConfidenceTier: ConfidenceHigh, RiskLevel: RiskMedium, PerformanceImpact: ImpactMedium,
		Description: "Content construction kit",
	},
	{
		Name: "RSForm", Platform: PlatformJoomla, Category: CategoryForms,
		Patterns: PatternSet{
			Paths: []string{"/components/com_rsform/"},
		},
		ConfidenceTier: ConfidenceHigh, RiskLevel: RiskLow, PerformanceImpact: ImpactLow,
		Description: "Form builder component",
	},
	{
		Name: "sh404SEF", Platform: PlatformJoomla, Category: CategorySEO,
		Subcategory: "urls",
		Patterns: PatternSet{
			Paths: []string{"/components/com_sh404sef/"},
		},
		ConfidenceTier: ConfidenceHigh, RiskLevel: RiskLow, PerformanceImpact: ImpactLow,
		Description: "Search-engine-friendly URL rewriting",
	},
	{
		Name: "VirtueMart", Platform: PlatformJoomla, Category: CategoryEcommerce,
		Patterns: PatternSet{
			Paths: []string{"/components/com_virtuemart/"},
			CSS:   []string{"vm-product", "virtuemart"},
		},
		ConfidenceTier: ConfidenceHigh, RiskLevel: RiskMedium, PerformanceImpact: ImpactHigh,
		Description: "E-commerce component",
	},
}

var shopifySignatures = []Signature{
	{
		Name: "Bold Upsell", Platform: PlatformShopify, Category: CategoryEcommerce,
		Subcategory: "upsell",
		Patterns: PatternSet{
			JS: []string{"boldupsell", "bold-upsell"},
		},
		ConfidenceTier: ConfidenceMedium, RiskLevel: RiskLow, PerformanceImpact: ImpactMedium,
		Description: "Upsell and cross-sell offers",
	},
	{
		Name: "Judge.me", Platform: PlatformShopify, Category: CategoryEcommerce,
		Subcategory: "reviews",
		Patterns: PatternSet{
			Paths: []string{"cdn.judge.me"},
			HTML:  []string{"jdgm-widget", "jdgm-rev"},
		},
		ConfidenceTier: ConfidenceHigh, RiskLevel: RiskLow, PerformanceImpact: ImpactMedium,
		Description: "Product review widgets",
	},
	{
		Name: "Klaviyo", Platform: PlatformShopify, Category: CategoryMarketing,
		Subcategory: "email",
		Patterns: PatternSet{
			Paths: []string{"static.klaviyo.com"},
			JS:    []string{"klaviyo.js", "_learnq"},
		},
		ConfidenceTier: ConfidenceHigh, RiskLevel: RiskLow, PerformanceImpact: ImpactMedium,
		Description: "Email and SMS marketing automation",
	},
	{
		Name: "Loox", Platform: PlatformShopify, Category: CategoryEcommerce,
		Subcategory: "reviews",
		Patterns: PatternSet{
			Paths: []string{"loox.io"},
			HTML:  []string{"loox-rating", "loox-reviews"},
		},
		ConfidenceTier: ConfidenceHigh, RiskLevel: RiskLow, PerformanceImpact: ImpactMedium,
		Description: "Photo review widgets",
	},
	{
		Name: "Privy", Platform: PlatformShopify, Category: CategoryMarketing,
		Subcategory: "popups",
		Patterns: PatternSet{
			Paths: []string{"widget.privy.com"},
			JS:    []string{"privy("},
		},
		ConfidenceTier: ConfidenceHigh, RiskLevel: RiskLow, PerformanceImpact: ImpactMedium,
		Description: "Exit-intent popups and email capture",
	},
	{
		Name: "Rebuy", Platform: PlatformShopify, Category: CategoryEcommerce,
		Subcategory: "personalization",
		Patterns: PatternSet{
			Paths: []string{"rebuyengine.com"},
			JS:    []string{"rebuy.js"},
		},
		ConfidenceTier: ConfidenceHigh, RiskLevel: RiskLow, PerformanceImpact: ImpactMedium,
		Description: "Personalized product recommendations",
	},
	{
		Name: "Recharge", Platform: PlatformShopify, Category: CategoryPayment,
		Subcategory: "subscriptions",
		Patterns: PatternSet{
			Paths: []string{"rechargecdn.com", "static.rechargecdn.com"},
			JS:    []string{"recharge"},
		},
		ConfidenceTier: ConfidenceHigh, RiskLevel: RiskMedium, PerformanceImpact: ImpactMedium,
		Description: "Subscription billing",
	},
	{
		Name: "Shop Pay", Platform: PlatformShopify, Category: CategoryPayment,
		Patterns: PatternSet{
			HTML: []string{"shop-pay-button", "shop_pay"},
		},
		ConfidenceTier: ConfidenceMedium, RiskLevel: RiskLow, PerformanceImpact: ImpactLow,
		Description: "Accelerated checkout",
	},
	{
		Name: "Shopify Storefront", Platform: PlatformShopify, Category: CategoryEcommerce,
		Subcategory: "platform",
		Patterns: PatternSet{
			Paths:   []string{"cdn.shopify.com"},
			Headers: []string{"x-shopid", "x-shopify-stage"},
			HTML:    []string{"shopify.shop", "shopify-section"},
		},
		ConfidenceTier: ConfidenceHigh, RiskLevel: RiskNone, PerformanceImpact: ImpactLow,
		Description: "Shopify storefront runtime",
	},
	{
		Name: "Yotpo", Platform: PlatformShopify, Category: CategoryEcommerce,
		Subcategory: "reviews",
		Patterns: PatternSet{
			Paths: []string{"staticw2.yotpo.com"},
			HTML:  []string{"yotpo-widget", "yotpo bottomline"},
		},
		ConfidenceTier: ConfidenceHigh, RiskLevel: RiskLow, PerformanceImpact: ImpactMedium,
		Description: "Reviews and loyalty widgets",
	},
}

var magentoSignatures = []Signature{
	{
		Name: "Amasty Extensions", Platform: PlatformMagento, Category: CategoryUtility,
		Patterns: PatternSet{
			Paths: []string{"/amasty/"},
			JS:    []string{"amasty"},
		},
		ConfidenceTier: ConfidenceMedium, RiskLevel: RiskLow, PerformanceImpact: ImpactMedium,
		Description: "Amasty extension suite",
	},
	{
		Name: "Fishpig WordPress Integration", Platform: PlatformMagento, Category: CategoryIntegration,
		Patterns: PatternSet{
			Paths: []string{"/fishpig/"},
		},
		ConfidenceTier: ConfidenceHigh, RiskLevel: RiskMedium, PerformanceImpact: ImpactMedium,
		Description: "Embedded WordPress blog",
	},
	{
		Name: "Magento Checkout", Platform: PlatformMagento, Category: CategoryEcommerce,
		Subcategory: "platform",
		Patterns: PatternSet{
			Paths: []string{"/static/frontend/"},
			HTML:  []string{"magento_", "mage-init"},
			JS:    []string{"mage/cookies"},
		},
		ConfidenceTier: ConfidenceHigh, RiskLevel: RiskNone, PerformanceImpact: ImpactMedium,
		Description: "Magento storefront runtime",
	},
	{
		Name: "Magento PageSpeed", Platform: PlatformMagento, Category: CategoryPerformance,
		Patterns: PatternSet{
			Headers: []string{"x-magento-cache-control", "x-magento-cache-debug"},
		},
		ConfidenceTier: ConfidenceHigh, RiskLevel: RiskNone, PerformanceImpact: ImpactLow,
		Description: "Full page cache headers",
	},
	{
		Name: "Mirasvit SEO", Platform: PlatformMagento, Category: CategorySEO,
		Patterns: PatternSet{
			Paths: []string{"/mirasvit/"},
		},
		ConfidenceTier: ConfidenceMedium, RiskLevel: RiskLow, PerformanceImpact: ImpactLow,
		Description: "SEO extension suite",
	},
}

var prestashopSignatures = []Signature{
	{
		Name: "PrestaShop Core", Platform: PlatformPrestaShop, Category: CategoryEcommerce,
		Subcategory: "platform",
		Patterns: PatternSet{
			Paths: []string{"/modules/ps_"},
			JS:    []string{"var prestashop"},
		},
		ConfidenceTier: ConfidenceHigh, RiskLevel: RiskNone, PerformanceImpact: ImpactMedium,
		Description: "PrestaShop storefront runtime",
	},
	{
		Name: "PrestaShop Faceted Search", Platform: PlatformPrestaShop, Category: CategoryEcommerce,
		Subcategory: "search",
		Patterns: PatternSet{
			Paths: []string{"/modules/ps_facetedsearch/"},
		},
		ConfidenceTier: ConfidenceHigh, RiskLevel: RiskLow, PerformanceImpact: ImpactHigh,
		Description: "Layered navigation filters",
	},
	{
		Name: "PrestaShop Newsletter", Platform: PlatformPrestaShop, Category: CategoryMarketing,
		Subcategory: "email",
		Patterns: PatternSet{
			Paths: []string{"/modules/ps_emailsubscription/"},
		},
		ConfidenceTier: ConfidenceHigh, RiskLevel: RiskLow, PerformanceImpact: ImpactLow,
		Description: "Newsletter subscription block",
	},
}

var wixSignatures = []Signature{
	{
		Name: "Wix Runtime", Platform: PlatformWix, Category: CategoryFramework,
		Subcategory: "platform",
		Patterns: PatternSet{
			Paths:   []string{"static.wixstatic.com", "static.parastorage.com"},
			Headers: []string{"x-wix-request-id"},
		},
		ConfidenceTier: ConfidenceHigh, RiskLevel: RiskNone, PerformanceImpact: ImpactMedium,
		Description: "Wix hosted site runtime",
	},
	{
		Name: "Wix Stores", Platform: PlatformWix, Category: CategoryEcommerce,
		Patterns: PatternSet{
			HTML: []string{"wixstores", "wix-ecommerce"},
		},
		ConfidenceTier: ConfidenceMedium, RiskLevel: RiskLow, PerformanceImpact: ImpactMedium,
		Description: "Wix e-commerce module",
	},
}

var squarespaceSignatures = []Signature{
	{
		Name: "Squarespace Commerce", Platform: PlatformSquarespace, Category: CategoryEcommerce,
		Patterns: PatternSet{
			HTML: []string{"sqs-add-to-cart-button", "squarespace-commerce"},
		},
		ConfidenceTier: ConfidenceMedium, RiskLevel: RiskLow, PerformanceImpact: ImpactMedium,
		Description: "Squarespace store module",
	},
	{
		Name: "Squarespace Runtime", Platform: PlatformSquarespace, Category: CategoryFramework,
		Subcategory: "platform",
		Patterns: PatternSet{
			Paths: []string{"static1.squarespace.com", "squarespace-cdn.com"},
		},
		ConfidenceTier: ConfidenceHigh, RiskLevel: RiskNone, PerformanceImpact: ImpactMedium,
		Description: "Squarespace hosted runtime",
	},
}

var webflowSignatures = []Signature{
	{
		Name: "Webflow Ecommerce", Platform: PlatformWebflow, Category: CategoryEcommerce,
		Patterns: PatternSet{
			HTML: []string{"w-commerce", "data-commerce"},
		},
		ConfidenceTier: ConfidenceMedium, RiskLevel: RiskLow, PerformanceImpact: ImpactMedium,
		Description: "Webflow store module",
	},
	{
		Name: "Webflow Interactions", Platform: PlatformWebflow, Category: CategoryContent,
		Subcategory: "animation",
		Patterns: PatternSet{
			HTML: []string{"data-w-id", "w-anim"},
		},
		ConfidenceTier: ConfidenceMedium, RiskLevel: RiskNone, PerformanceImpact: ImpactMedium,
		Description: "IX2 animation runtime",
	},
	{
		Name: "Webflow Runtime", Platform: PlatformWebflow, Category: CategoryFramework,
		Subcategory: "platform",
		Patterns: PatternSet{
			Paths: []string{"assets.website-files.com"},
			HTML:  []string{"data-wf-site", "data-wf-page"},
		},
		ConfidenceTier: ConfidenceHigh, RiskLevel: RiskNone, PerformanceImpact: ImpactLow,
		Description: "Webflow hosted runtime",
	},
}

// universalSignatures apply to every document regardless of platform:
// CDNs, analytics, tag managers and front-end frameworks.
var universalSignatures = []Signature{
	{
		Name: "Akamai", Platform: PlatformUniversal, Category: CategoryCDN,
		Patterns: PatternSet{
			Headers: []string{"x-akamai-transformed", "akamaighost"},
		},
		ConfidenceTier: ConfidenceHigh, RiskLevel: RiskNone, PerformanceImpact: ImpactNone,
		Description: "Akamai edge delivery",
	},
	{
		Name: "Alpine.js", Platform: PlatformUniversal, Category: CategoryFramework,
		Patterns: PatternSet{
			HTML: []string{"x-data=", "x-init="},
			JS:   []string{"alpinejs"},
		},
		ConfidenceTier: ConfidenceMedium, RiskLevel: RiskNone, PerformanceImpact: ImpactLow,
		Description: "Lightweight reactive framework",
	},
	{
		Name: "Amazon CloudFront", Platform: PlatformUniversal, Category: CategoryCDN,
		Patterns: PatternSet{
			Headers: []string{"x-amz-cf-id", "x-amz-cf-pop"},
		},
		ConfidenceTier: ConfidenceHigh, RiskLevel: RiskNone, PerformanceImpact: ImpactNone,
		Description: "AWS edge delivery",
	},
	{
		Name: "Bootstrap", Platform: PlatformUniversal, Category: CategoryFramework,
		Subcategory: "css",
		Patterns: PatternSet{
			Paths: []string{"bootstrap.min.css", "cdn.jsdelivr.net/npm/bootstrap"},
			CSS:   []string{"navbar-toggler"},
		},
		ConfidenceTier: ConfidenceMedium, RiskLevel: RiskNone, PerformanceImpact: ImpactLow,
		Description: "CSS component framework",
	},
	{
		Name: "Cloudflare", Platform: PlatformUniversal, Category: CategoryCDN,
		Patterns: PatternSet{
			Headers: []string{"cf-ray", "cf-cache-status"},
		},
		ConfidenceTier: ConfidenceHigh, RiskLevel: RiskNone, PerformanceImpact: ImpactNone,
		Description: "Cloudflare proxy and edge cache",
	},
	{
		Name: "Crisp Chat", Platform: PlatformUniversal, Category: CategoryIntegration,
		Subcategory: "chat",
		Patterns: PatternSet{
			Paths: []string{"client.crisp.chat"},
			JS:    []string{"$crisp"},
		},
		ConfidenceTier: ConfidenceHigh, RiskLevel: RiskLow, PerformanceImpact: ImpactMedium,
		Description: "Live chat widget",
	},
	{
		Name: "Facebook Pixel", Platform: PlatformUniversal, Category: CategoryAnalytics,
		Subcategory: "advertising",
		Patterns: PatternSet{
			Paths: []string{"connect.facebook.net"},
			JS:    []string{"fbq(", "fbevents.js"},
		},
		ConfidenceTier: ConfidenceHigh, RiskLevel: RiskLow, PerformanceImpact: ImpactMedium,
		Description: "Meta conversion tracking",
	},
	{
		Name: "Fastly", Platform: PlatformUniversal, Category: CategoryCDN,
		Patterns: PatternSet{
			Headers: []string{"x-served-by: cache-", "x-fastly-request-id"},
		},
		ConfidenceTier: ConfidenceHigh, RiskLevel: RiskNone, PerformanceImpact: ImpactNone,
		Description: "Fastly edge delivery",
	},
	{
		Name: "Google Analytics", Platform: PlatformUniversal, Category: CategoryAnalytics,
		Patterns: PatternSet{
			Paths: []string{"google-analytics.com/analytics.js", "googletagmanager.com/gtag/js"},
			JS:    []string{"gtag(", "ga('create'"},
		},
		ConfidenceTier: ConfidenceHigh, RiskLevel: RiskLow, PerformanceImpact: ImpactLow,
		Description: "Google traffic analytics",
	},
	{
		Name: "Google Fonts", Platform: PlatformUniversal, Category: CategoryUtility,
		Subcategory: "fonts",
		Patterns: PatternSet{
			Paths: []string{"fonts.googleapis.com", "fonts.gstatic.com"},
		},
		ConfidenceTier: ConfidenceHigh, RiskLevel: RiskNone, PerformanceImpact: ImpactLow,
		Description: "Hosted web fonts",
	},
	{
		Name: "Google Tag Manager", Platform: PlatformUniversal, Category: CategoryAnalytics,
		Subcategory: "tag-management",
		Patterns: PatternSet{
			Paths: []string{"googletagmanager.com/gtm.js"},
			JS:    []string{"datalayer", "gtm.start"},
		},
		ConfidenceTier: ConfidenceHigh, RiskLevel: RiskLow, PerformanceImpact: ImpactMedium,
		Description: "Tag container",
	},
	{
		Name: "Hotjar", Platform: PlatformUniversal, Category: CategoryAnalytics,
		Subcategory: "behavior",
		Patterns: PatternSet{
			Paths: []string{"static.hotjar.com"},
			JS:    []string{"hj(", "hjsettings"},
		},
		ConfidenceTier: ConfidenceHigh, RiskLevel: RiskLow, PerformanceImpact: ImpactMedium,
		Description: "Session recording and heatmaps",
	},
	{
		Name: "HubSpot", Platform: PlatformUniversal, Category: CategoryMarketing,
		Subcategory: "crm",
		Patterns: PatternSet{
			Paths: []string{"js.hs-scripts.com", "js.hsforms.net"},
			JS:    []string{"_hsq"},
		},
		ConfidenceTier: ConfidenceHigh, RiskLevel: RiskLow, PerformanceImpact: ImpactMedium,
		Description: "Marketing automation and CRM embeds",
	},
	{
		Name: "Intercom", Platform: PlatformUniversal, Category: CategoryIntegration,
		Subcategory: "chat",
		Patterns: PatternSet{
			Paths: []string{"widget.intercom.io"},
			JS:    []string{"intercomsettings"},
		},
		ConfidenceTier: ConfidenceHigh, RiskLevel: RiskLow, PerformanceImpact: ImpactMedium,
		Description: "Customer messaging widget",
	},
	{
		Name: "jQuery", Platform: PlatformUniversal, Category: CategoryFramework,
		Subcategory: "javascript",
		Patterns: PatternSet{
			Paths: []string{"jquery.min.js", "code.jquery.com"},
			JS:    []string{"jquery"},
		},
		ConfidenceTier: ConfidenceMedium, RiskLevel: RiskLow, PerformanceImpact: ImpactLow,
		Description: "DOM utility library",
	},
	{
		Name: "Matomo", Platform: PlatformUniversal, Category: CategoryAnalytics,
		Patterns: PatternSet{
			Paths: []string{"matomo.js", "piwik.js"},
			JS:    []string{"_paq"},
		},
		ConfidenceTier: ConfidenceHigh, RiskLevel: RiskNone, PerformanceImpact: ImpactLow,
		Description: "Self-hosted analytics",
	},
	{
		Name: "Next.js", Platform: PlatformUniversal, Category: CategoryFramework,
		Subcategory: "javascript",
		Patterns: PatternSet{
			Paths:   []string{"/_next/static/"},
			Headers: []string{"x-nextjs-cache"},
			HTML:    []string{"__next_data__", "next-head-count"},
		},
		ConfidenceTier: ConfidenceHigh, RiskLevel: RiskNone, PerformanceImpact: ImpactLow,
		Description: "React meta-framework",
	},
	{
		Name: "Nuxt", Platform: PlatformUniversal, Category: CategoryFramework,
		Subcategory: "javascript",
		Patterns: PatternSet{
			Paths: []string{"/_nuxt/"},
			HTML:  []string{"__nuxt", "nuxt-link"},
		},
		ConfidenceTier: ConfidenceHigh, RiskLevel: RiskNone, PerformanceImpact: ImpactLow,
		Description: "Vue meta-framework",
	},
	{
		Name: "React", Platform: PlatformUniversal, Category: CategoryFramework,
		Subcategory: "javascript",
		Patterns: PatternSet{
			HTML: []string{"data-reactroot", "react-dom"},
			JS:   []string{"react.production.min.js"},
		},
		ConfidenceTier: ConfidenceMedium, RiskLevel: RiskNone, PerformanceImpact: ImpactLow,
		Description: "UI rendering library",
	},
	{
		Name: "reCAPTCHA", Platform: PlatformUniversal, Category: CategorySecurity,
		Subcategory: "bot-protection",
		Patterns: PatternSet{
			Paths: []string{"www.google.com/recaptcha/"},
			CSS:   []string{"g-recaptcha"},
		},
		ConfidenceTier: ConfidenceHigh, RiskLevel: RiskNone, PerformanceImpact: ImpactMedium,
		Description: "Bot challenge widget",
	},
	{
		Name: "Segment", Platform: PlatformUniversal, Category: CategoryAnalytics,
		Subcategory: "pipeline",
		Patterns: PatternSet{
			Paths: []string{"cdn.segment.com"},
			JS:    []string{"analytics.load("},
		},
		ConfidenceTier: ConfidenceHigh, RiskLevel: RiskLow, PerformanceImpact: ImpactMedium,
		Description: "Event collection pipeline",
	},
	{
		Name: "Sentry", Platform: PlatformUniversal, Category: CategoryUtility,
		Subcategory: "monitoring",
		Patterns: PatternSet{
			Paths: []string{"browser.sentry-cdn.com"},
			JS:    []string{"sentry.init"},
		},
		ConfidenceTier: ConfidenceHigh, RiskLevel: RiskNone, PerformanceImpact: ImpactLow,
		Description: "Front-end error tracking",
	},
	{
		Name: "Stripe.js", Platform: PlatformUniversal, Category: CategoryPayment,
		Patterns: PatternSet{
			Paths: []string{"js.stripe.com"},
			JS:    []string{"stripe("},
		},
		ConfidenceTier: ConfidenceHigh, RiskLevel: RiskMedium, PerformanceImpact: ImpactLow,
		Description: "Card payment elements",
	},
	{
		Name: "Tailwind CSS", Platform: PlatformUniversal, Category: CategoryFramework,
		Subcategory: "css",
		Patterns: PatternSet{
			HTML: []string{"tailwindcss", "tw-"},
		},
		ConfidenceTier: ConfidenceLow, RiskLevel: RiskNone, PerformanceImpact: ImpactNone,
		Description: "Utility-first CSS framework",
	},
	{
		Name: "TikTok Pixel", Platform: PlatformUniversal, Category: CategoryAnalytics,
		Subcategory: "advertising",
		Patterns: PatternSet{
			Paths: []string{"analytics.tiktok.com"},
			JS:    []string{"ttq.load"},
		},
		ConfidenceTier: ConfidenceHigh, RiskLevel: RiskLow, PerformanceImpact: ImpactMedium,
		Description: "TikTok conversion tracking",
	},
	{
		Name: "Varnish", Platform: PlatformUniversal, Category: CategoryPerformance,
		Subcategory: "caching",
		Patterns: PatternSet{
			Headers: []string{"x-varnish", "via: 1.1 varnish"},
		},
		ConfidenceTier: ConfidenceHigh, RiskLevel: RiskNone, PerformanceImpact: ImpactNone,
		Description: "Reverse proxy cache",
	},
	{
		Name: "Vue.js", Platform: PlatformUniversal, Category: CategoryFramework,
		Subcategory: "javascript",
		Patterns: PatternSet{
			HTML: []string{"data-v-", "v-cloak"},
			JS:   []string{"vue.global.prod.js"},
		},
		ConfidenceTier: ConfidenceMedium, RiskLevel: RiskNone, PerformanceImpact: ImpactLow,
		Description: "Progressive UI framework",
	},
	{
		Name: "Zendesk Widget", Platform: PlatformUniversal, Category: CategoryIntegration,
		Subcategory: "support",
		Patterns: PatternSet{
			Paths: []string{"static.zdassets.com"},
			JS:    []string{"zesettings", "zdonload"},
		},
		ConfidenceTier: ConfidenceHigh, RiskLevel: RiskLow, PerformanceImpact: ImpactMedium,
		Description: "Support chat widget",
	},
}
