// Package site turns a directory of page sources into rendered HTML.
//
// Pages are YAML documents (.yaml, .yml) decoded by package document, or
// Markdown files (.md) wrapped in a minimal HTML document. A page's path is
// its slash-separated location relative to the source directory without the
// extension; "index" pages serve their directory.
package site

import (
	"bytes"
	"context"
	"crypto/sha256"
	"encoding/hex"
	"io/fs"
	"log/slog"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/hypertext-dev/hypertext/el"
	"github.com/hypertext-dev/hypertext/internal/errors"
	"github.com/hypertext-dev/hypertext/pkg/document"
	"github.com/hypertext-dev/hypertext/pkg/markdown"
	"github.com/hypertext-dev/hypertext/pkg/render"
)

// Extensions lists the recognised page source extensions in lookup order.
var Extensions = []string{".yaml", ".yml", ".md"}

// Page is a page source discovered in a source directory.
type Page struct {
	// Path is the slash-separated page path without extension, e.g. "docs/intro".
	Path string

	// Source is the file system path of the page source.
	Source string
}

// OutputName returns the slash-separated output file name of the page.
func (p Page) OutputName() string {
	return p.Path + ".html"
}

// ContentTypeHTML is the content type of rendered pages.
const ContentTypeHTML = "text/html; charset=utf-8"

// Output describes one file written by a build.
type Output struct {
	// Page is the page the file was rendered from. It is zero for assets.
	Page Page

	// Path is the slash-separated location of the file inside the output
	// directory, e.g. "docs/intro.html" or "css/site.css".
	Path string

	// File is the file system path the output was written to.
	File string

	// ContentType is the MIME type the file should be served with.
	ContentType string

	// Bytes is the size of the file.
	Bytes int

	// Digest is the hex SHA-256 of the file contents.
	Digest string
}

// Result is the outcome of a build.
type Result struct {
	// Outputs are the rendered pages.
	Outputs []Output

	// Assets are the non-page files copied verbatim.
	Assets []Output
}

// All returns pages followed by assets.
func (r *Result) All() []Output {
	all := make([]Output, 0, len(r.Outputs)+len(r.Assets))
	all = append(all, r.Outputs...)
	return append(all, r.Assets...)
}

// TotalBytes returns the combined size of all pages and assets.
func (r *Result) TotalBytes() int {
	n := 0
	for _, o := range r.All() {
		n += o.Bytes
	}
	return n
}

func isPageSource(name string) bool {
	ext := strings.ToLower(filepath.Ext(name))
	for _, e := range Extensions {
		if ext == e {
			return true
		}
	}
	return false
}

// isHidden reports whether a file or directory name is excluded from a site.
func isHidden(name string) bool {
	return strings.HasPrefix(name, ".") || strings.HasPrefix(name, "_")
}

// Discover walks dir and returns every page source in lexical order.
// Files and directories whose names start with "." or "_" are skipped.
func Discover(dir string) ([]Page, error) {
	var pages []Page
	err := filepath.WalkDir(dir, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		name := d.Name()
		if p != dir && isHidden(name) {
			if d.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}
		if d.IsDir() || !isPageSource(name) {
			return nil
		}
		rel, err := filepath.Rel(dir, p)
		if err != nil {
			return err
		}
		rel = filepath.ToSlash(rel)
		pages = append(pages, Page{
			Path:   strings.TrimSuffix(rel, path.Ext(rel)),
			Source: p,
		})
		return nil
	})
	if err != nil {
		return nil, errors.New("H030").WithDetail(dir).Wrap(err)
	}
	return pages, nil
}

// LoadPage reads the page source at file and returns its markup tree.
func LoadPage(file string) (render.Renderable, error) {
	if strings.ToLower(filepath.Ext(file)) != ".md" {
		return document.ParseFile(file)
	}

	data, err := os.ReadFile(file)
	if err != nil {
		return nil, errors.New("H030").WithDetail(file).Wrap(err)
	}
	md := markdown.New(string(data))
	title := md.Title()
	if title == "" {
		title = strings.TrimSuffix(filepath.Base(file), filepath.Ext(file))
	}
	return Shell(title, md), nil
}

// Shell wraps body in a minimal HTML5 document.
func Shell(title string, body any) render.Renderable {
	return el.Group(
		el.Doctype(),
		el.Html(
			el.Head(
				el.Meta().Charset("utf-8"),
				el.Meta().Name("viewport").Content("width=device-width, initial-scale=1"),
				el.Title(title),
			),
			el.Body(body),
		).Lang("en"),
	)
}

// Resolve maps a URL path to a page source in dir. "/" and paths ending in
// "/" resolve to index pages. It reports false when no source exists or the
// path escapes dir.
func Resolve(dir, urlPath string) (Page, bool) {
	clean := path.Clean("/" + urlPath)
	if strings.HasSuffix(urlPath, "/") || clean == "/" {
		clean = path.Join(clean, "index")
	}
	clean = strings.TrimSuffix(clean, ".html")
	rel := strings.TrimPrefix(clean, "/")
	if rel == "" {
		return Page{}, false
	}
	for _, seg := range strings.Split(rel, "/") {
		if isHidden(seg) {
			return Page{}, false
		}
	}

	if page, ok := resolveExact(dir, rel); ok {
		return page, true
	}
	// /guide serves guide/index when there is no guide page.
	if path.Base(rel) != "index" {
		return resolveExact(dir, rel+"/index")
	}
	return Page{}, false
}

func resolveExact(dir, rel string) (Page, bool) {
	for _, ext := range Extensions {
		file := filepath.Join(dir, filepath.FromSlash(rel)+ext)
		if info, err := os.Stat(file); err == nil && !info.IsDir() {
			return Page{Path: rel, Source: file}, true
		}
	}
	return Page{}, false
}

// Build renders every page in srcDir to outDir, mirroring the directory
// structure. It stops at the first failing page or when ctx is cancelled.
func Build(ctx context.Context, srcDir, outDir string, logger *slog.Logger) (*Result, error) {
	if logger == nil {
		logger = slog.Default().With("component", "site")
	}

	pages, err := Discover(srcDir)
	if err != nil {
		return nil, err
	}

	result := &Result{Outputs: make([]Output, 0, len(pages))}
	for _, page := range pages {
		if err := ctx.Err(); err != nil {
			return result, err
		}

		out, err := BuildPage(page, outDir)
		if err != nil {
			return result, err
		}
		logger.Debug("rendered page", "page", page.Path, "bytes", out.Bytes)
		result.Outputs = append(result.Outputs, out)
	}

	assets, err := DiscoverAssets(srcDir)
	if err != nil {
		return result, err
	}
	for _, rel := range assets {
		if err := ctx.Err(); err != nil {
			return result, err
		}
		if within(outDir, filepath.Join(srcDir, filepath.FromSlash(rel))) {
			continue
		}

		out, err := CopyAsset(srcDir, rel, outDir)
		if err != nil {
			return result, err
		}
		logger.Debug("copied asset", "asset", rel, "bytes", out.Bytes)
		result.Assets = append(result.Assets, out)
	}

	logger.Info("build complete",
		"pages", len(result.Outputs),
		"assets", len(result.Assets),
		"bytes", result.TotalBytes(),
		"output", outDir,
	)
	return result, nil
}

// BuildPage renders a single page into outDir.
func BuildPage(page Page, outDir string) (Output, error) {
	tree, err := LoadPage(page.Source)
	if err != nil {
		return Output{}, err
	}

	var buf bytes.Buffer
	if err := render.To(&buf, tree); err != nil {
		return Output{}, err
	}

	out, err := writeOutput(outDir, page.OutputName(), ContentTypeHTML, buf.Bytes())
	if err != nil {
		return Output{}, err
	}
	out.Page = page
	return out, nil
}

func writeOutput(outDir, rel, contentType string, data []byte) (Output, error) {
	file := filepath.Join(outDir, filepath.FromSlash(rel))
	if err := os.MkdirAll(filepath.Dir(file), 0755); err != nil {
		return Output{}, errors.New("H031").WithDetail(file).Wrap(err)
	}
	if err := os.WriteFile(file, data, 0644); err != nil {
		return Output{}, errors.New("H031").WithDetail(file).Wrap(err)
	}

	sum := sha256.Sum256(data)
	return Output{
		Path:        rel,
		File:        file,
		ContentType: contentType,
		Bytes:       len(data),
		Digest:      hex.EncodeToString(sum[:]),
	}, nil
}
