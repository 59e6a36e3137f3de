package site

import (
	"io/fs"
	"mime"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/hypertext-dev/hypertext/internal/errors"
)

// DiscoverAssets returns the slash-separated paths of every non-page file
// under dir in lexical order. Hidden names are skipped as in Discover.
func DiscoverAssets(dir string) ([]string, error) {
	var assets []string
	err := filepath.WalkDir(dir, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if p != dir && isHidden(d.Name()) {
			if d.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}
		if d.IsDir() || isPageSource(d.Name()) {
			return nil
		}
		rel, err := filepath.Rel(dir, p)
		if err != nil {
			return err
		}
		assets = append(assets, filepath.ToSlash(rel))
		return nil
	})
	if err != nil {
		return nil, errors.New("H030").WithDetail(dir).Wrap(err)
	}
	return assets, nil
}

// CopyAsset copies srcDir/rel to outDir/rel.
func CopyAsset(srcDir, rel, outDir string) (Output, error) {
	src := filepath.Join(srcDir, filepath.FromSlash(rel))
	data, err := os.ReadFile(src)
	if err != nil {
		return Output{}, errors.New("H030").WithDetail(src).Wrap(err)
	}
	return writeOutput(outDir, rel, ContentType(rel), data)
}

// within reports whether file lies inside dir.
func within(dir, file string) bool {
	absDir, err := filepath.Abs(dir)
	if err != nil {
		return false
	}
	absFile, err := filepath.Abs(file)
	if err != nil {
		return false
	}
	rel, err := filepath.Rel(absDir, absFile)
	return err == nil && rel != ".." && !strings.HasPrefix(rel, ".."+string(filepath.Separator))
}

// ContentType returns the MIME type for a file name, falling back to
// application/octet-stream.
func ContentType(name string) string {
	if strings.EqualFold(path.Ext(name), ".html") {
		return ContentTypeHTML
	}
	if t := mime.TypeByExtension(path.Ext(name)); t != "" {
		return t
	}
	return "application/octet-stream"
}

// ResolveAsset maps a URL path to a non-page file under dir. Hidden names,
// dot segments, and page sources are never resolved.
func ResolveAsset(dir, urlPath string) (string, bool) {
	rel, ok := cleanRelPath(urlPath)
	if !ok || isPageSource(rel) {
		return "", false
	}
	for _, seg := range strings.Split(rel, "/") {
		if isHidden(seg) {
			return "", false
		}
	}

	file := filepath.Join(dir, filepath.FromSlash(rel))
	info, err := os.Stat(file)
	if err != nil || info.IsDir() {
		return "", false
	}
	return file, true
}

// cleanRelPath returns a sanitized relative path for a request path. It
// rejects traversal and absolute-path tricks so a lookup cannot escape the
// source directory.
func cleanRelPath(urlPath string) (string, bool) {
	rel := strings.TrimPrefix(urlPath, "/")
	if rel == "" {
		return "", false
	}

	// %00 decodes to NUL.
	if strings.IndexByte(rel, 0) != -1 {
		return "", false
	}

	if strings.Contains(rel, "\\") {
		return "", false
	}

	// "//etc/passwd" still starts with a slash after trimming one.
	if strings.HasPrefix(rel, "/") {
		return "", false
	}

	// Reject dot segments before cleaning so traversal is refused rather
	// than silently rewritten.
	for _, seg := range strings.Split(rel, "/") {
		if seg == "." || seg == ".." {
			return "", false
		}
	}

	clean := path.Clean(rel)
	if clean == "." || clean == ".." || strings.HasPrefix(clean, "../") {
		return "", false
	}

	osPath := filepath.FromSlash(clean)
	if filepath.IsAbs(osPath) || filepath.VolumeName(osPath) != "" {
		return "", false
	}

	return clean, true
}
