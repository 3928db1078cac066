package detect

import (
	"fmt"
	"sort"
)

// ParseError reports a malformed signature definition. Catalog
// corruption is fatal: commands refuse to start on it rather than run
// with a partial rule set.
type ParseError struct {
	Platform Platform
	Name     string
	Reason   string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("signature catalog: %s/%s: %s", e.Platform, e.Name, e.Reason)
}

type signatureKey struct {
	platform Platform
	name     string
}

// Catalog is the loaded, validated signature database. It is built
// once at startup and read-only afterwards, so concurrent analyses may
// share it without synchronization.
type Catalog struct {
	byPlatform map[Platform][]Signature
	byKey      map[signatureKey]Signature
}

// LoadCatalog validates and indexes the built-in signature tables.
// Any malformed definition aborts the load with a *ParseError.
func LoadCatalog() (*Catalog, error) {
	return buildCatalog(builtinSignatures())
}

func buildCatalog(signatures []Signature) (*Catalog, error) {
	c := &Catalog{
		byPlatform: make(map[Platform][]Signature),
		byKey:      make(map[signatureKey]Signature, len(signatures)),
	}

	for _, sig := range signatures {
		if err := validateSignature(sig); err != nil {
			return nil, err
		}
		key := signatureKey{platform: sig.Platform, name: sig.Name}
		if _, dup := c.byKey[key]; dup {
			return nil, &ParseError{Platform: sig.Platform, Name: sig.Name, Reason: "duplicate signature"}
		}
		c.byKey[key] = sig
		c.byPlatform[sig.Platform] = append(c.byPlatform[sig.Platform], sig)
	}

	return c, nil
}

func validateSignature(sig Signature) error {
	fail := func(reason string) error {
		return &ParseError{Platform: sig.Platform, Name: sig.Name, Reason: reason}
	}

	if sig.Name == "" {
		return fail("empty name")
	}
	if !sig.Platform.IsValid() || sig.Platform == PlatformCustom || sig.Platform == PlatformUnknown {
		return fail("invalid platform")
	}
	if !sig.Category.IsValid() {
		return fail(fmt.Sprintf("invalid category %q", sig.Category))
	}
	if !sig.ConfidenceTier.IsValid() {
		return fail(fmt.Sprintf("invalid confidence tier %q", sig.ConfidenceTier))
	}
	if !sig.RiskLevel.IsValid() {
		return fail(fmt.Sprintf("invalid risk level %q", sig.RiskLevel))
	}
	if !sig.PerformanceImpact.IsValid() {
		return fail(fmt.Sprintf("invalid performance impact %q", sig.PerformanceImpact))
	}
	if sig.Patterns.Empty() {
		return fail("signature has no patterns")
	}
	for _, group := range [][]string{sig.Patterns.HTML, sig.Patterns.Headers, sig.Patterns.JS, sig.Patterns.CSS, sig.Patterns.Paths} {
		for _, p := range group {
			if p == "" {
				return fail("empty pattern string")
			}
		}
	}
	return nil
}

// ForPlatform returns the signature subset for one platform plus the
// universal set that applies to every document. The returned slice is
// freshly allocated; the catalog itself is never mutated.
func (c *Catalog) ForPlatform(p Platform) []Signature {
	platformSigs := c.byPlatform[p]
	universal := c.byPlatform[PlatformUniversal]

	out := make([]Signature, 0, len(platformSigs)+len(universal))
	out = append(out, platformSigs...)
	if p != PlatformUniversal {
		out = append(out, universal...)
	}
	return out
}

// Lookup returns the signature identified by (platform, name).
func (c *Catalog) Lookup(p Platform, name string) (Signature, bool) {
	sig, ok := c.byKey[signatureKey{platform: p, name: name}]
	return sig, ok
}

// Platforms lists every platform with at least one signature, in a
// stable order matching the built-in table order.
func (c *Catalog) Platforms() []Platform {
	order := []Platform{
		PlatformWordPress, PlatformDrupal, PlatformJoomla, PlatformShopify,
		PlatformMagento, PlatformPrestaShop, PlatformWix, PlatformSquarespace,
		PlatformWebflow, PlatformUniversal,
	}
	out := make([]Platform, 0, len(order))
	for _, p := range order {
		if len(c.byPlatform[p]) > 0 {
			out = append(out, p)
		}
	}
	return out
}

// Categories lists the distinct categories covered by p's own
// signatures, sorted alphabetically.
func (c *Catalog) Categories(p Platform) []Category {
	seen := make(map[Category]struct{})
	for _, sig := range c.byPlatform[p] {
		seen[sig.Category] = struct{}{}
	}
	out := make([]Category, 0, len(seen))
	for cat := range seen {
		out = append(out, cat)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// Count returns how many signatures the catalog holds for p.
func (c *Catalog) Count(p Platform) int {
	return len(c.byPlatform[p])
}

// Total returns the catalog-wide signature count.
func (c *Catalog) Total() int {
	return len(c.byKey)
}
