package ansimd

import (
	"net/url"
	"path/filepath"
)

// ResolveReference implements §6's reference-resolution rule: attempt a
// direct URL parse; on failure, join dest against baseDir and produce a
// file:// URL; if that also fails to yield an absolute path, report
// failure so the caller treats the link as unresolvable (falls back to a
// plain reference, or an image falls back to its annotation).
func ResolveReference(dest, baseDir string) (*url.URL, bool) {
	if u, err := url.Parse(dest); err == nil && u.IsAbs() {
		return u, true
	}

	joined := dest
	if !filepath.IsAbs(dest) {
		joined = filepath.Join(baseDir, dest)
	}
	abs, err := filepath.Abs(joined)
	if err != nil {
		return nil, false
	}
	return &url.URL{Scheme: "file", Path: filepath.ToSlash(abs)}, true
}
