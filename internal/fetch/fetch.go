// Package fetch retrieves documents for the detection engine. It is
// the only place that touches the network on the pattern path; the
// engine itself never fetches.
package fetch

import (
	"context"
	"crypto/tls"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/stackprobe/stackprobe-cli/internal/detect"
	"github.com/stackprobe/stackprobe-cli/internal/shared/constants"
)

// Client fetches one page and normalizes it into the engine's input
// boundary: markup, lower-cased headers and the final URL.
type Client struct {
	Timeout   time.Duration
	UserAgent string
	MaxBody   int64
}

// NewClient applies conservative defaults.
func NewClient(timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &Client{
		Timeout:   timeout,
		UserAgent: constants.DefaultUserAgent,
		MaxBody:   constants.MaxDocumentBytes,
	}
}

// Fetch implements detect.Fetcher.
func (c *Client) Fetch(ctx context.Context, target string) (detect.Document, error) {
	u := NormalizeURL(target)

	client := &http.Client{
		Timeout: c.Timeout,
		Transport: &http.Transport{
			TLSClientConfig: &tls.Config{
				InsecureSkipVerify: false,
				MinVersion:         tls.VersionTLS12,
			},
		},
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return detect.Document{}, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("User-Agent", c.UserAgent)
	req.Header.Set("Accept", "text/html,application/xhtml+xml")

	resp, err := client.Do(req)
	if err != nil {
		return detect.Document{}, fmt.Errorf("fetch %s: %w", u, err)
	}
	defer resp.Body.Close()

	maxBody := c.MaxBody
	if maxBody <= 0 {
		maxBody = constants.MaxDocumentBytes
	}
	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBody))
	if err != nil {
		return detect.Document{}, fmt.Errorf("read body from %s: %w", u, err)
	}

	headers := make(map[string]string, len(resp.Header))
	for name, values := range resp.Header {
		if len(values) == 0 {
			continue
		}
		// Multi-valued headers (Set-Cookie, Link) collapse into one
		// searchable value.
		headers[strings.ToLower(name)] = strings.Join(values, "; ")
	}

	finalURL := u
	if resp.Request != nil && resp.Request.URL != nil {
		finalURL = resp.Request.URL.String()
	}

	return detect.NewDocument(finalURL, string(body), headers), nil
}

// NormalizeURL defaults bare hosts to https.
func NormalizeURL(target string) string {
	t := strings.TrimSpace(target)
	if strings.HasPrefix(t, "http://") || strings.HasPrefix(t, "https://") {
		return t
	}
	return "https://" + t
}
