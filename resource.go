package ansimd

import (
	"net/url"
	"path/filepath"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
)

// LocalOnly is a ResourceAccess predicate that permits only file:// URLs
// whose path, relative to baseDir, matches one of patterns (or every local
// path, when patterns is empty). It rejects every non-file URL, so remote
// images never trigger a network fetch — the concrete instance of the
// abstract "local only" predicate named in §6's configuration table.
type LocalOnly struct {
	baseDir  string
	patterns []string
}

// NewLocalOnly returns a LocalOnly predicate rooted at baseDir. patterns
// are doublestar glob patterns (e.g. "images/**/*.png"); a nil or empty
// slice permits any local path under baseDir.
func NewLocalOnly(baseDir string, patterns ...string) LocalOnly {
	return LocalOnly{baseDir: baseDir, patterns: patterns}
}

// Permits reports whether raw resolves to a local path under l.baseDir
// matching one of l.patterns.
func (l LocalOnly) Permits(raw string) bool {
	u, err := url.Parse(raw)
	if err != nil || u.Scheme != "file" {
		return false
	}
	rel, err := filepath.Rel(l.baseDir, u.Path)
	if err != nil || strings.HasPrefix(rel, "..") {
		return false
	}
	if len(l.patterns) == 0 {
		return true
	}
	relSlash := filepath.ToSlash(rel)
	for _, pattern := range l.patterns {
		if ok, _ := doublestar.Match(pattern, relSlash); ok {
			return true
		}
	}
	return false
}

var _ ResourceAccess = LocalOnly{}
