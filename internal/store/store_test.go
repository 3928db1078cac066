package store

import (
	"errors"
	"testing"
	"time"

	"github.com/stackprobe/stackprobe-cli/internal/detect"
	sharedErrors "github.com/stackprobe/stackprobe-cli/internal/shared/errors"
)

func testReport(url string) *detect.AnalysisReport {
	return &detect.AnalysisReport{
		URL:        url,
		Platform:   detect.PlatformWordPress,
		TotalFound: 1,
		FindingsByCategory: map[detect.Category][]detect.Finding{
			detect.CategorySEO: {{
				Name:       "Yoast SEO",
				Category:   detect.CategorySEO,
				Confidence: detect.ConfidenceHigh,
				Source:     detect.SourcePattern,
			}},
		},
		OverallConfidence: detect.ConfidenceMedium,
		Method:            detect.MethodPatternOnly,
	}
}

func newTestRepository(t *testing.T) *Repository {
	t.Helper()
	repo, err := NewRepository(t.TempDir())
	if err != nil {
		t.Fatalf("NewRepository() error = %v", err)
	}
	return repo
}

func TestSaveAndLoadRoundTrip(t *testing.T) {
	repo := newTestRepository(t)

	name, err := repo.Save(testReport("https://example.com/"))
	if err != nil {
		t.Fatalf("Save() error = %v", err)
	}

	stored, err := repo.Load(name)
	if err != nil {
		t.Fatalf("Load(%q) error = %v", name, err)
	}
	if stored.Host != "example.com" {
		t.Errorf("Host = %q, want %q", stored.Host, "example.com")
	}
	if stored.Report.URL != "https://example.com/" {
		t.Errorf("Report.URL = %q, want original URL", stored.Report.URL)
	}
	if stored.Report.TotalFound != 1 {
		t.Errorf("Report.TotalFound = %d, want 1", stored.Report.TotalFound)
	}
}

func TestSaveRejectsInvalidReports(t *testing.T) {
	repo := newTestRepository(t)

	if _, err := repo.Save(nil); !errors.Is(err, sharedErrors.ErrEmptyReport) {
		t.Errorf("Save(nil) error = %v, want ErrEmptyReport", err)
	}
	if _, err := repo.Save(&detect.AnalysisReport{}); !errors.Is(err, sharedErrors.ErrInvalidReportURL) {
		t.Errorf("Save(report without URL) error = %v, want ErrInvalidReportURL", err)
	}
}

func TestLatestPicksNewestReportForHost(t *testing.T) {
	repo := newTestRepository(t)

	base := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	clock := base
	repo.now = func() time.Time { return clock }

	older := testReport("https://example.com/")
	older.TotalFound = 1
	if _, err := repo.Save(older); err != nil {
		t.Fatalf("Save(older) error = %v", err)
	}

	clock = base.Add(time.Minute)
	newer := testReport("https://example.com/")
	newer.TotalFound = 7
	if _, err := repo.Save(newer); err != nil {
		t.Fatalf("Save(newer) error = %v", err)
	}

	clock = base.Add(2 * time.Minute)
	if _, err := repo.Save(testReport("https://other.example.org/")); err != nil {
		t.Fatalf("Save(other host) error = %v", err)
	}

	stored, err := repo.Latest("example.com")
	if err != nil {
		t.Fatalf("Latest() error = %v", err)
	}
	if stored.Report.TotalFound != 7 {
		t.Errorf("Latest() returned TotalFound = %d, want 7 (newest report)", stored.Report.TotalFound)
	}
}

func TestLatestUnknownHost(t *testing.T) {
	repo := newTestRepository(t)

	if _, err := repo.Latest("never-audited.example"); !errors.Is(err, sharedErrors.ErrReportNotFound) {
		t.Errorf("Latest() error = %v, want ErrReportNotFound", err)
	}
	if _, err := repo.Latest(""); !errors.Is(err, sharedErrors.ErrEmptyHost) {
		t.Errorf("Latest(\"\") error = %v, want ErrEmptyHost", err)
	}
}

func TestListSortsNewestFirst(t *testing.T) {
	repo := newTestRepository(t)

	base := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	clock := base
	repo.now = func() time.Time { return clock }

	hosts := []string{"https://a.example/", "https://b.example/", "https://c.example/"}
	for i, target := range hosts {
		clock = base.Add(time.Duration(i) * time.Minute)
		if _, err := repo.Save(testReport(target)); err != nil {
			t.Fatalf("Save(%q) error = %v", target, err)
		}
	}

	entries, err := repo.List()
	if err != nil {
		t.Fatalf("List() error = %v", err)
	}
	if len(entries) != 3 {
		t.Fatalf("List() returned %d entries, want 3", len(entries))
	}
	want := []string{"c.example", "b.example", "a.example"}
	for i, entry := range entries {
		if entry.Host != want[i] {
			t.Errorf("entries[%d].Host = %q, want %q", i, entry.Host, want[i])
		}
	}
}

func TestLoadMissingFile(t *testing.T) {
	repo := newTestRepository(t)

	if _, err := repo.Load("example.com-20260101-000000.json"); !errors.Is(err, sharedErrors.ErrReportNotFound) {
		t.Errorf("Load(missing) error = %v, want ErrReportNotFound", err)
	}
}

func TestLoadRejectsPathTraversal(t *testing.T) {
	repo := newTestRepository(t)

	if _, err := repo.Load("../../etc/passwd"); err == nil {
		t.Error("Load() with traversal path succeeded, want error")
	}
}

func TestHostLabel(t *testing.T) {
	tests := []struct {
		rawURL string
		want   string
	}{
		{"https://example.com/shop", "example.com"},
		{"https://Sub.Example.COM", "sub.example.com"},
		{"https://my-site.co.uk:8443/", "my-site.co.uk"},
		{"not a url at all", "not_a_url_at_all"},
		{"", "unknown"},
	}
	for _, tt := range tests {
		if got := HostLabel(tt.rawURL); got != tt.want {
			t.Errorf("HostLabel(%q) = %q, want %q", tt.rawURL, got, tt.want)
		}
	}
}
