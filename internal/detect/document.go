package detect

import "strings"

// Document is the engine's input boundary: one fetched page. Header
// keys are expected lower-cased; NewDocument normalizes them so a
// caller handing over raw net/http headers still gets correct matches.
type Document struct {
	URL     string            `json:"url"`
	HTML    string            `json:"html"`
	Headers map[string]string `json:"headers"`
}

// NewDocument builds a Document with normalized header keys.
func NewDocument(url, html string, headers map[string]string) Document {
	normalized := make(map[string]string, len(headers))
	for k, v := range headers {
		normalized[strings.ToLower(k)] = v
	}
	return Document{URL: url, HTML: html, Headers: normalized}
}

// Size returns the document's markup size in bytes; the escalation
// policy uses it as a proxy for page information density.
func (d Document) Size() int {
	return len(d.HTML)
}
