// Package store persists analysis reports as JSON files on disk.
//
// Reports live under <resultsDir>/reports/<host>-<timestamp>.json so that
// repeated audits of the same site accumulate a history instead of
// overwriting each other. The package is the single writer for that
// directory; cmd/report and the HTTP API read through it.
package store

import (
	"encoding/json"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/stackprobe/stackprobe-cli/internal/detect"
	"github.com/stackprobe/stackprobe-cli/internal/shared/constants"
	sharedErrors "github.com/stackprobe/stackprobe-cli/internal/shared/errors"
	"github.com/stackprobe/stackprobe-cli/internal/shared/security"
)

const (
	reportsSubdir    = "reports"
	timestampLayout  = "20060102-150405"
	reportFileSuffix = ".json"
	// storeFormat versions the on-disk envelope for future migrations.
	storeFormat = 1
)

// StoredReport wraps an analysis report with the persistence metadata the
// report itself does not carry.
type StoredReport struct {
	Format      int                    `json:"format"`
	Host        string                 `json:"host"`
	GeneratedAt time.Time              `json:"generated_at"`
	Report      *detect.AnalysisReport `json:"report"`
}

// Entry describes one saved report file without loading its contents.
type Entry struct {
	Name        string    `json:"name"`
	Host        string    `json:"host"`
	GeneratedAt time.Time `json:"generated_at"`
	Path        string    `json:"-"`
}

// Repository is a JSON-file backed store for analysis reports.
type Repository struct {
	resultsDir string
	mu         sync.RWMutex
	now        func() time.Time
}

// NewRepository creates a report repository rooted at resultsDir, creating
// the reports directory if needed.
func NewRepository(resultsDir string) (*Repository, error) {
	if resultsDir == "" {
		return nil, fmt.Errorf("results directory cannot be empty")
	}

	reportsDir := filepath.Join(resultsDir, reportsSubdir)
	if err := os.MkdirAll(reportsDir, constants.DefaultDirPerm); err != nil {
		return nil, fmt.Errorf("failed to create reports directory: %w", err)
	}

	return &Repository{
		resultsDir: resultsDir,
		now:        time.Now,
	}, nil
}

// Save persists a report and returns the name of the file it was written to.
func (r *Repository) Save(report *detect.AnalysisReport) (string, error) {
	if report == nil {
		return "", sharedErrors.ErrEmptyReport
	}
	if report.URL == "" {
		return "", sharedErrors.ErrInvalidReportURL
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	host := HostLabel(report.URL)
	generatedAt := r.now().UTC()
	name := fmt.Sprintf("%s-%s%s", host, generatedAt.Format(timestampLayout), reportFileSuffix)

	path, err := security.ResolveWithin(r.resultsDir, reportsSubdir, name)
	if err != nil {
		return "", fmt.Errorf("resolve report path: %w", err)
	}

	stored := StoredReport{
		Format:      storeFormat,
		Host:        host,
		GeneratedAt: generatedAt,
		Report:      report,
	}

	data, err := json.MarshalIndent(stored, "", "  ")
	if err != nil {
		return "", fmt.Errorf("%w: %v", sharedErrors.ErrSerializationFailed, err)
	}

	if err := os.WriteFile(path, data, constants.DefaultFilePerm); err != nil {
		return "", fmt.Errorf("failed to save report: %w", err)
	}

	return name, nil
}

// Load reads a single stored report by file name.
func (r *Repository) Load(name string) (*StoredReport, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	path, err := security.ResolveWithin(r.resultsDir, reportsSubdir, name)
	if err != nil {
		return nil, fmt.Errorf("resolve report path: %w", err)
	}

	return loadFromFile(path)
}

// Latest returns the most recently saved report for the given host, or
// ErrReportNotFound when the host has never been audited.
func (r *Repository) Latest(host string) (*StoredReport, error) {
	if host == "" {
		return nil, sharedErrors.ErrEmptyHost
	}

	entries, err := r.List()
	if err != nil {
		return nil, err
	}

	// List sorts newest first, so the first matching entry wins.
	for _, entry := range entries {
		if entry.Host == host {
			return loadFromFile(entry.Path)
		}
	}

	return nil, sharedErrors.ErrReportNotFound
}

// List enumerates all saved reports, newest first.
func (r *Repository) List() ([]Entry, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	reportsDir := filepath.Join(r.resultsDir, reportsSubdir)
	dirEntries, err := os.ReadDir(reportsDir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to read reports directory: %w", err)
	}

	var entries []Entry
	for _, de := range dirEntries {
		if de.IsDir() || !strings.HasSuffix(de.Name(), reportFileSuffix) {
			continue
		}
		host, generatedAt, ok := parseReportName(de.Name())
		if !ok {
			continue
		}
		entries = append(entries, Entry{
			Name:        de.Name(),
			Host:        host,
			GeneratedAt: generatedAt,
			Path:        filepath.Join(reportsDir, de.Name()),
		})
	}

	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].GeneratedAt.After(entries[j].GeneratedAt)
	})

	return entries, nil
}

// HostLabel derives the filename-safe host label for a target URL. URLs that
// do not parse fall back to a sanitized copy of the raw string so a report is
// never lost over a naming problem.
func HostLabel(rawURL string) string {
	label := rawURL
	if u, err := url.Parse(rawURL); err == nil && u.Hostname() != "" {
		label = u.Hostname()
	}
	return sanitizeLabel(label)
}

func sanitizeLabel(label string) string {
	var b strings.Builder
	for _, r := range strings.ToLower(label) {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9', r == '.', r == '-':
			b.WriteRune(r)
		default:
			b.WriteRune('_')
		}
	}
	out := b.String()
	if out == "" {
		out = "unknown"
	}
	return out
}

func loadFromFile(path string) (*StoredReport, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, sharedErrors.ErrReportNotFound
		}
		return nil, fmt.Errorf("failed to read report: %w", err)
	}

	var stored StoredReport
	if err := json.Unmarshal(data, &stored); err != nil {
		return nil, fmt.Errorf("%w: %v", sharedErrors.ErrDeserializationFailed, err)
	}
	if stored.Report == nil {
		return nil, fmt.Errorf("%w: report payload missing", sharedErrors.ErrDeserializationFailed)
	}

	return &stored, nil
}

// parseReportName splits "<host>-<timestamp>.json" back into its parts.
func parseReportName(name string) (string, time.Time, bool) {
	base := strings.TrimSuffix(name, reportFileSuffix)
	idx := strings.LastIndex(base, "-")
	if idx <= 0 {
		return "", time.Time{}, false
	}
	// The timestamp itself contains one dash, so split one dash earlier.
	idx = strings.LastIndex(base[:idx], "-")
	if idx <= 0 {
		return "", time.Time{}, false
	}
	host := base[:idx]
	ts, err := time.Parse(timestampLayout, base[idx+1:])
	if err != nil {
		return "", time.Time{}, false
	}
	return host, ts, true
}
