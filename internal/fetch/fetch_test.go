package fetch

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"
)

func TestFetchBuildsDocument(t *testing.T) {
	var gotUA string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotUA = r.Header.Get("User-Agent")
		w.Header().Set("X-Powered-By", "PHP/8.2")
		w.Header().Add("Link", "<https://example.com/a>; rel=preload")
		w.Header().Add("Link", "<https://example.com/b>; rel=preload")
		_, _ = w.Write([]byte("<html><body>hello</body></html>"))
	}))
	defer srv.Close()

	client := NewClient(5 * time.Second)
	doc, err := client.Fetch(context.Background(), srv.URL)
	if err != nil {
		t.Fatalf("Fetch() error = %v", err)
	}

	if !strings.Contains(doc.HTML, "hello") {
		t.Errorf("document HTML missing body content: %q", doc.HTML)
	}
	if doc.Headers["x-powered-by"] != "PHP/8.2" {
		t.Errorf("header keys not lower-cased: %v", doc.Headers)
	}
	if got := doc.Headers["link"]; !strings.Contains(got, "/a") || !strings.Contains(got, "/b") {
		t.Errorf("multi-valued header not collapsed: %q", got)
	}
	if gotUA == "" || !strings.Contains(gotUA, "stackprobe") {
		t.Errorf("request User-Agent = %q, want stackprobe identifier", gotUA)
	}
	if doc.URL != srv.URL {
		t.Errorf("document URL = %q, want %q", doc.URL, srv.URL)
	}
}

func TestFetchFollowsRedirects(t *testing.T) {
	var finalURL string
	mux := http.NewServeMux()
	srv := httptest.NewServer(mux)
	defer srv.Close()

	mux.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		http.Redirect(w, r, srv.URL+"/landing", http.StatusMovedPermanently)
	})
	mux.HandleFunc("/landing", func(w http.ResponseWriter, r *http.Request) {
		finalURL = srv.URL + "/landing"
		_, _ = w.Write([]byte("<html>landed</html>"))
	})

	client := NewClient(5 * time.Second)
	doc, err := client.Fetch(context.Background(), srv.URL)
	if err != nil {
		t.Fatalf("Fetch() error = %v", err)
	}
	if doc.URL != finalURL {
		t.Errorf("document URL = %q, want final redirect target %q", doc.URL, finalURL)
	}
}

func TestFetchCapsBodySize(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(strings.Repeat("x", 4096)))
	}))
	defer srv.Close()

	client := NewClient(5 * time.Second)
	client.MaxBody = 1024
	doc, err := client.Fetch(context.Background(), srv.URL)
	if err != nil {
		t.Fatalf("Fetch() error = %v", err)
	}
	if doc.Size() != 1024 {
		t.Errorf("document size = %d, want capped at 1024", doc.Size())
	}
}

func TestFetchHonorsContextCancellation(t *testing.T) {
	release := make(chan struct{})
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-release
	}))
	defer srv.Close()
	defer close(release)

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	client := NewClient(5 * time.Second)
	if _, err := client.Fetch(ctx, srv.URL); err == nil {
		t.Error("Fetch() with expired context succeeded, want error")
	}
}

func TestNormalizeURL(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"example.com", "https://example.com"},
		{"  example.com  ", "https://example.com"},
		{"http://example.com", "http://example.com"},
		{"https://example.com/path", "https://example.com/path"},
	}
	for _, tt := range tests {
		if got := NormalizeURL(tt.in); got != tt.want {
			t.Errorf("NormalizeURL(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
