// Package analyzer provides the Gemini-backed implementation of the
// detection engine's external analyzer boundary.
package analyzer

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/googleapi"
	"google.golang.org/api/option"

	"github.com/stackprobe/stackprobe-cli/internal/detect"
)

const defaultModel = "gemini-1.5-flash"

// Gemini analyzes content excerpts with a Google generative model and
// normalizes the response into engine findings. The response shape is
// never trusted: entries are validated and coerced, and any transport
// or decoding problem surfaces as a typed *detect.AnalyzerError.
type Gemini struct {
	client *genai.Client
	model  *genai.GenerativeModel
}

// NewGemini builds the analyzer. modelName falls back to a default
// when empty. Temperature is pinned to zero: detection should be
// reproducible, not creative.
func NewGemini(ctx context.Context, apiKey, modelName string) (*Gemini, error) {
	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("create genai client: %w", err)
	}

	if modelName == "" {
		modelName = defaultModel
	}

	model := client.GenerativeModel(modelName)
	model.SetTemperature(0)
	model.ResponseMIMEType = "application/json"

	return &Gemini{client: client, model: model}, nil
}

// Name identifies the analyzer in logs and reports.
func (g *Gemini) Name() string { return "gemini" }

// Close releases the underlying client.
func (g *Gemini) Close() error { return g.client.Close() }

// Analyze implements detect.Analyzer.
func (g *Gemini) Analyze(ctx context.Context, req detect.AnalyzerRequest) ([]detect.Finding, error) {
	prompt := buildPrompt(req)

	resp, err := g.model.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		return nil, classifyErr(err)
	}

	text, err := extractText(resp)
	if err != nil {
		return nil, err
	}

	raw, err := decodeFindings(text)
	if err != nil {
		return nil, err
	}
	return detect.CoerceFindings(raw, req.Platform), nil
}

// buildPrompt serializes the bounded excerpts into a JSON-only
// instruction. The closed enums are spelled out so the model's output
// survives coercion instead of being dropped.
func buildPrompt(req detect.AnalyzerRequest) string {
	var b strings.Builder
	fmt.Fprintf(&b, "You are a website technology auditor. The site %s runs on the %q platform.\n", req.URL, req.Platform)
	b.WriteString("Identify the extensions, plugins, apps and third-party technologies in the evidence below.\n\n")

	ex := req.Excerpts
	if ex.HeadSection != "" {
		fmt.Fprintf(&b, "HEAD SECTION:\n%s\n\n", ex.HeadSection)
	}
	if len(ex.ScriptSourceNames) > 0 {
		fmt.Fprintf(&b, "SCRIPT SOURCES:\n%s\n\n", strings.Join(ex.ScriptSourceNames, "\n"))
	}
	if len(ex.LinkSourceNames) > 0 {
		fmt.Fprintf(&b, "LINK HREFS:\n%s\n\n", strings.Join(ex.LinkSourceNames, "\n"))
	}
	if len(ex.MetaTags) > 0 {
		fmt.Fprintf(&b, "META TAGS:\n%s\n\n", strings.Join(ex.MetaTags, "\n"))
	}
	if len(ex.ServerHeaders) > 0 {
		fmt.Fprintf(&b, "RESPONSE HEADERS:\n%s\n\n", strings.Join(ex.ServerHeaders, "\n"))
	}
	if ex.HTMLPrefix != "" {
		fmt.Fprintf(&b, "HTML PREFIX:\n%s\n\n", ex.HTMLPrefix)
	}

	b.WriteString(`Respond with JSON only, matching exactly:
{"findings":[{"name":"","category":"","subcategory":"","confidence":"","risk_level":"","performance_impact":"","evidence":[""],"description":"","version":""}]}
category must be one of: security, performance, seo, ecommerce, analytics, social, backup, forms, page-builder, content, payment, marketing, integration, utility, cdn, framework, hosting, theme, other.
confidence must be one of: high, medium, low.
risk_level must be one of: none, low, medium, high, critical.
performance_impact must be one of: none, low, medium, high.
Report only technologies supported by the evidence. No prose, no markdown fences.`)

	return b.String()
}

// extractText pulls the first candidate's text parts, failing as a
// protocol error when the model returned nothing usable.
func extractText(resp *genai.GenerateContentResponse) (string, error) {
	if resp == nil || len(resp.Candidates) == 0 {
		return "", &detect.AnalyzerError{Kind: detect.AnalyzerProtocolError, Err: errors.New("no response candidates")}
	}

	var text strings.Builder
	cand := resp.Candidates[0]
	if cand.Content != nil {
		for _, part := range cand.Content.Parts {
			if t, ok := part.(genai.Text); ok {
				text.WriteString(string(t))
			}
		}
	}
	if text.Len() == 0 {
		return "", &detect.AnalyzerError{Kind: detect.AnalyzerProtocolError, Err: errors.New("empty candidate content")}
	}
	return text.String(), nil
}

type findingsEnvelope struct {
	Findings []detect.RawFinding `json:"findings"`
}

// decodeFindings parses the model output, tolerating markdown fences
// and a bare top-level array, but treating anything else malformed as
// a protocol error.
func decodeFindings(text string) ([]detect.RawFinding, error) {
	cleaned := stripFences(text)

	var envelope findingsEnvelope
	if err := json.Unmarshal([]byte(cleaned), &envelope); err == nil {
		return envelope.Findings, nil
	}

	var bare []detect.RawFinding
	if err := json.Unmarshal([]byte(cleaned), &bare); err == nil {
		return bare, nil
	}

	return nil, &detect.AnalyzerError{
		Kind: detect.AnalyzerProtocolError,
		Err:  fmt.Errorf("unparseable analyzer response (%d bytes)", len(text)),
	}
}

// stripFences removes a leading/trailing markdown code fence pair,
// which some models emit despite JSON-only instructions.
func stripFences(s string) string {
	s = strings.TrimSpace(s)
	if !strings.HasPrefix(s, "```") {
		return s
	}
	s = strings.TrimPrefix(s, "```json")
	s = strings.TrimPrefix(s, "```")
	s = strings.TrimSuffix(strings.TrimSpace(s), "```")
	return strings.TrimSpace(s)
}

// classifyErr maps transport failures onto the engine's analyzer error
// taxonomy: deadline/cancel to timeout, HTTP 429/quota to quota,
// everything else to protocol.
func classifyErr(err error) *detect.AnalyzerError {
	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
		return &detect.AnalyzerError{Kind: detect.AnalyzerTimeout, Err: err}
	}

	var gerr *googleapi.Error
	if errors.As(err, &gerr) {
		switch gerr.Code {
		case http.StatusTooManyRequests:
			return &detect.AnalyzerError{Kind: detect.AnalyzerQuotaError, Err: err}
		case http.StatusUnauthorized, http.StatusForbidden:
			return &detect.AnalyzerError{Kind: detect.AnalyzerQuotaError, Err: err}
		}
	}
	if strings.Contains(strings.ToLower(err.Error()), "quota") {
		return &detect.AnalyzerError{Kind: detect.AnalyzerQuotaError, Err: err}
	}

	return &detect.AnalyzerError{Kind: detect.AnalyzerProtocolError, Err: err}
}
