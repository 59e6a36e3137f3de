package server

import (
	"net/http"
	"os"
	"path"
	"strings"

	"github.com/hypertext-dev/hypertext/pkg/site"
)

// serveAsset serves a non-page file from the source directory. It reports
// false when urlPath does not name one.
func (s *Server) serveAsset(w http.ResponseWriter, r *http.Request) bool {
	file, ok := site.ResolveAsset(s.config.SourceDir, r.URL.Path)
	if !ok {
		return false
	}

	f, err := os.Open(file)
	if err != nil {
		return false
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil || info.IsDir() {
		return false
	}

	s.applyCacheHeaders(w, file)
	w.Header().Set("Content-Type", site.ContentType(file))
	http.ServeContent(w, r, info.Name(), info.ModTime(), f)
	return true
}

// applyCacheHeaders sets Cache-Control for an asset. While live reload is on
// nothing is cached.
func (s *Server) applyCacheHeaders(w http.ResponseWriter, filePath string) {
	switch {
	case s.hub != nil:
		w.Header().Set("Cache-Control", "no-store, no-cache, must-revalidate")
	case isFingerprinted(filePath):
		w.Header().Set("Cache-Control", "public, max-age=31536000, immutable")
	default:
		w.Header().Set("Cache-Control", "public, max-age=3600, must-revalidate")
	}
}

// isFingerprinted checks if a file path appears to be fingerprinted,
// e.g. "app.a1b2c3d4.css".
func isFingerprinted(filePath string) bool {
	parts := strings.Split(path.Base(filePath), ".")
	if len(parts) < 3 {
		return false
	}

	// Hashes are 8+ hex characters before the extension.
	hash := parts[len(parts)-2]
	if len(hash) < 8 {
		return false
	}
	for _, c := range hash {
		if !((c >= '0' && c <= '9') || (c >= 'a' && c <= 'f') || (c >= 'A' && c <= 'F')) {
			return false
		}
	}

	return true
}
