// Package constants centralizes configuration defaults shared across
// the CLI. Keeping permissions, payload limits and timeouts in one
// place prevents magic numbers from scattering across cmd/ and
// internal/ without introducing import cycles.
package constants

import (
	"io/fs"
	"time"
)

const (
	// DefaultDirPerm is the default permission used when creating directories.
	DefaultDirPerm fs.FileMode = 0o755
	// DefaultFilePerm is the default permission used when creating files.
	DefaultFilePerm fs.FileMode = 0o644
)

const (
	// MaxDocumentBytes caps how much of a response body the fetcher reads.
	MaxDocumentBytes = 2 * 1024 * 1024
	// DefaultUserAgent identifies the auditor to the sites it fetches.
	DefaultUserAgent = "stackprobe/1.0 (+https://github.com/stackprobe/stackprobe-cli)"
	// DefaultFetchTimeout bounds one page fetch.
	DefaultFetchTimeout = 10 * time.Second
	// DefaultAnalyzerTimeout bounds one AI analyzer call.
	DefaultAnalyzerTimeout = 30 * time.Second
)
