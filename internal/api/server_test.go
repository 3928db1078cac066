package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"go.uber.org/zap/zaptest"

	"github.com/stackprobe/stackprobe-cli/internal/detect"
	sharedErrors "github.com/stackprobe/stackprobe-cli/internal/shared/errors"
	"github.com/stackprobe/stackprobe-cli/internal/store"
)

type stubAnalyzeService struct {
	report *detect.AnalysisReport
	err    error
	gotURL string
}

func (s *stubAnalyzeService) Analyze(_ context.Context, target string) (*detect.AnalysisReport, error) {
	s.gotURL = target
	if s.err != nil {
		return nil, s.err
	}
	return s.report, nil
}

type stubReportService struct {
	latest  *store.StoredReport
	entries []store.Entry
	err     error
}

func (s *stubReportService) Latest(host string) (*store.StoredReport, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.latest, nil
}

func (s *stubReportService) List() ([]store.Entry, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.entries, nil
}

func newTestServer(t *testing.T, cfg Config) *Server {
	t.Helper()
	if cfg.Logger == nil {
		cfg.Logger = zaptest.NewLogger(t)
	}
	return NewServer(cfg)
}

func TestHealthNoAuthRequired(t *testing.T) {
	srv := newTestServer(t, Config{AuthToken: "secret"})

	rr := httptest.NewRecorder()
	srv.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/api/v1/health", nil))

	if rr.Code != http.StatusOK {
		t.Fatalf("health status = %d, want 200", rr.Code)
	}
	if !strings.Contains(rr.Body.String(), `"status":"ok"`) {
		t.Errorf("unexpected health body: %s", rr.Body.String())
	}
}

func TestAnalyzeHappyPath(t *testing.T) {
	svc := &stubAnalyzeService{
		report: &detect.AnalysisReport{
			URL:      "https://example.com",
			Platform: detect.PlatformWordPress,
			Method:   detect.MethodPatternOnly,
		},
	}
	srv := newTestServer(t, Config{Analyze: svc})

	body := strings.NewReader(`{"url":"https://example.com"}`)
	rr := httptest.NewRecorder()
	srv.ServeHTTP(rr, httptest.NewRequest(http.MethodPost, "/api/v1/analyze", body))

	if rr.Code != http.StatusOK {
		t.Fatalf("analyze status = %d, want 200 (body %s)", rr.Code, rr.Body.String())
	}
	if svc.gotURL != "https://example.com" {
		t.Errorf("service received URL %q, want request URL", svc.gotURL)
	}

	var report detect.AnalysisReport
	if err := json.Unmarshal(rr.Body.Bytes(), &report); err != nil {
		t.Fatalf("response is not a report: %v", err)
	}
	if report.Platform != detect.PlatformWordPress {
		t.Errorf("report platform = %q, want wordpress", report.Platform)
	}
}

func TestAnalyzeRejectsBadRequests(t *testing.T) {
	srv := newTestServer(t, Config{Analyze: &stubAnalyzeService{}})

	tests := []struct {
		name   string
		method string
		body   string
		want   int
	}{
		{"malformed json", http.MethodPost, `{"url":`, http.StatusBadRequest},
		{"empty url", http.MethodPost, `{"url":"  "}`, http.StatusBadRequest},
		{"wrong method", http.MethodGet, "", http.StatusMethodNotAllowed},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rr := httptest.NewRecorder()
			srv.ServeHTTP(rr, httptest.NewRequest(tt.method, "/api/v1/analyze", strings.NewReader(tt.body)))
			if rr.Code != tt.want {
				t.Errorf("status = %d, want %d", rr.Code, tt.want)
			}
		})
	}
}

func TestAnalyzeServiceFailure(t *testing.T) {
	srv := newTestServer(t, Config{Analyze: &stubAnalyzeService{err: errors.New("fetch failed")}})

	rr := httptest.NewRecorder()
	srv.ServeHTTP(rr, httptest.NewRequest(http.MethodPost, "/api/v1/analyze", strings.NewReader(`{"url":"https://down.example"}`)))

	if rr.Code != http.StatusBadGateway {
		t.Fatalf("status = %d, want 502", rr.Code)
	}
	if !strings.Contains(rr.Body.String(), "fetch failed") {
		t.Errorf("expected upstream error in body, got %s", rr.Body.String())
	}
}

func TestBearerAuth(t *testing.T) {
	srv := newTestServer(t, Config{
		AuthToken: "secret-token",
		Reports:   &stubReportService{},
	})

	tests := []struct {
		name   string
		header string
		want   int
	}{
		{"missing token", "", http.StatusUnauthorized},
		{"wrong token", "Bearer nope", http.StatusUnauthorized},
		{"no bearer prefix", "secret-token", http.StatusUnauthorized},
		{"valid token", "Bearer secret-token", http.StatusOK},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/api/v1/reports", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			rr := httptest.NewRecorder()
			srv.ServeHTTP(rr, req)
			if rr.Code != tt.want {
				t.Errorf("status = %d, want %d", rr.Code, tt.want)
			}
		})
	}
}

func TestListReportsEmptyIsArray(t *testing.T) {
	srv := newTestServer(t, Config{Reports: &stubReportService{}})

	rr := httptest.NewRecorder()
	srv.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/api/v1/reports", nil))

	if rr.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rr.Code)
	}
	if got := strings.TrimSpace(rr.Body.String()); got != "[]" {
		t.Errorf("empty list body = %s, want []", got)
	}
}

func TestReportByHost(t *testing.T) {
	stored := &store.StoredReport{
		Host:   "example.com",
		Report: &detect.AnalysisReport{URL: "https://example.com", Platform: detect.PlatformShopify},
	}
	srv := newTestServer(t, Config{Reports: &stubReportService{latest: stored}})

	rr := httptest.NewRecorder()
	srv.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/api/v1/reports/example.com", nil))

	if rr.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rr.Code)
	}
	var got store.StoredReport
	if err := json.Unmarshal(rr.Body.Bytes(), &got); err != nil {
		t.Fatalf("response is not a stored report: %v", err)
	}
	if got.Host != "example.com" || got.Report.Platform != detect.PlatformShopify {
		t.Errorf("unexpected stored report: %+v", got)
	}
}

func TestReportByHostNotFound(t *testing.T) {
	srv := newTestServer(t, Config{Reports: &stubReportService{err: sharedErrors.ErrReportNotFound}})

	rr := httptest.NewRecorder()
	srv.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/api/v1/reports/unknown.example", nil))

	if rr.Code != http.StatusNotFound {
		t.Errorf("status = %d, want 404", rr.Code)
	}
}

func TestRateLimitExceeded(t *testing.T) {
	srv := newTestServer(t, Config{
		Reports:   &stubReportService{},
		RateLimit: 1,
		RateBurst: 1,
	})

	first := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/reports", nil)
	req.RemoteAddr = "203.0.113.7:51234"
	srv.ServeHTTP(first, req)
	if first.Code != http.StatusOK {
		t.Fatalf("first request status = %d, want 200", first.Code)
	}

	second := httptest.NewRecorder()
	req2 := httptest.NewRequest(http.MethodGet, "/api/v1/reports", nil)
	req2.RemoteAddr = "203.0.113.7:51235"
	srv.ServeHTTP(second, req2)
	if second.Code != http.StatusTooManyRequests {
		t.Errorf("second request status = %d, want 429", second.Code)
	}
}

func TestInternalErrorsAreSanitized(t *testing.T) {
	srv := newTestServer(t, Config{Reports: &stubReportService{err: errors.New("disk corrupted at /var/data")}})

	rr := httptest.NewRecorder()
	srv.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/api/v1/reports", nil))

	if rr.Code != http.StatusInternalServerError {
		t.Fatalf("status = %d, want 500", rr.Code)
	}
	if strings.Contains(rr.Body.String(), "/var/data") {
		t.Errorf("internal detail leaked to client: %s", rr.Body.String())
	}
	if !strings.Contains(rr.Body.String(), "internal server error") {
		t.Errorf("expected sanitized message, got %s", rr.Body.String())
	}
}

func TestRequestIDHeaderSet(t *testing.T) {
	srv := newTestServer(t, Config{})

	rr := httptest.NewRecorder()
	srv.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/api/v1/health", nil))

	if rr.Header().Get("X-Request-ID") == "" {
		t.Error("expected X-Request-ID header on response")
	}
}
