package templates

import (
	"bytes"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"text/template"

	"github.com/hypertext-dev/hypertext/internal/config"
	"github.com/hypertext-dev/hypertext/internal/errors"
)

// Config contains template configuration.
type Config struct {
	// Name is the name of the site.
	Name string

	// Description is a short site description.
	Description string

	// Source is the page source directory. Defaults to config.DefaultSource.
	Source string

	// Output is the build output directory. Defaults to config.DefaultOutput.
	Output string
}

// Template represents a starter site.
type Template struct {
	// Name is the template name.
	Name string

	// Description describes the template.
	Description string

	// Files maps slash-separated paths to file contents. A leading
	// "{{.Source}}/" segment places the file in the page source directory.
	Files map[string]string
}

// Available templates.
var templates = map[string]*Template{
	"minimal": minimalTemplate(),
	"docs":    docsTemplate(),
}

// Get returns a template by name.
func Get(name string) (*Template, error) {
	tmpl, ok := templates[name]
	if !ok {
		return nil, errors.New("H060").
			WithDetail("Template '" + name + "' not found").
			WithSuggestion("Available templates: " + strings.Join(List(), ", "))
	}
	return tmpl, nil
}

// List returns all available template names, sorted.
func List() []string {
	names := make([]string, 0, len(templates))
	for name := range templates {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Create writes the site configuration and the template files into dir and
// returns the created paths relative to dir. Existing files are never
// overwritten: if any target already exists nothing is written.
func (t *Template) Create(dir string, cfg Config) ([]string, error) {
	cfg = cfg.withDefaults(dir)

	paths := make([]string, 0, len(t.Files))
	for relPath := range t.Files {
		paths = append(paths, relPath)
	}
	sort.Strings(paths)

	type file struct {
		rel  string
		data []byte
	}
	files := make([]file, 0, len(paths))
	for _, relPath := range paths {
		rel, err := execute(relPath+":path", relPath, cfg)
		if err != nil {
			return nil, err
		}
		data, err := execute(relPath, t.Files[relPath], cfg)
		if err != nil {
			return nil, err
		}
		files = append(files, file{rel: filepath.FromSlash(string(rel)), data: data})
	}

	targets := []string{config.ConfigFileName}
	for _, f := range files {
		targets = append(targets, f.rel)
	}
	for _, rel := range targets {
		if _, err := os.Stat(filepath.Join(dir, rel)); err == nil {
			return nil, errors.New("H060").
				WithDetail(rel + " already exists").
				WithSuggestion("Run init in an empty directory")
		}
	}

	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, errors.New("H060").WithDetail(dir).Wrap(err)
	}
	site := config.New()
	site.Name = cfg.Name
	site.Source = cfg.Source
	site.Output = cfg.Output
	if err := site.SaveTo(filepath.Join(dir, config.ConfigFileName)); err != nil {
		return nil, errors.New("H060").WithDetail(config.ConfigFileName).Wrap(err)
	}
	created := []string{config.ConfigFileName}

	for _, f := range files {
		fullPath := filepath.Join(dir, f.rel)
		if err := os.MkdirAll(filepath.Dir(fullPath), 0755); err != nil {
			return created, errors.New("H060").WithDetail(fullPath).Wrap(err)
		}
		if err := os.WriteFile(fullPath, f.data, 0644); err != nil {
			return created, errors.New("H060").WithDetail(fullPath).Wrap(err)
		}
		created = append(created, filepath.ToSlash(f.rel))
	}
	return created, nil
}

func execute(name, content string, cfg Config) ([]byte, error) {
	tmpl, err := template.New(name).Option("missingkey=error").Parse(content)
	if err != nil {
		return nil, errors.Newf(errors.CategoryCLI, "invalid template %s: %v", name, err)
	}
	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, cfg); err != nil {
		return nil, errors.Newf(errors.CategoryCLI, "template execute error %s: %v", name, err)
	}
	return buf.Bytes(), nil
}

func (c Config) withDefaults(dir string) Config {
	if c.Name == "" {
		c.Name = filepath.Base(filepath.Clean(dir))
	}
	if c.Description == "" {
		c.Description = "A site built with hypertext"
	}
	if c.Source == "" {
		c.Source = config.DefaultSource
	}
	if c.Output == "" {
		c.Output = config.DefaultOutput
	}
	return c
}

func minimalTemplate() *Template {
	return &Template{
		Name:        "minimal",
		Description: "A config file and a single page",
		Files: map[string]string{
			"{{.Source}}/index.yaml": `- doctype: true
- tag: html
  attrs:
    lang: en
  children:
    - tag: head
      children:
        - tag: meta
          attrs:
            charset: utf-8
        - tag: title
          children: {{printf "%q" .Name}}
    - tag: body
      children:
        - tag: h1
          children: {{printf "%q" .Name}}
        - tag: p
          children: {{printf "%q" .Description}}
`,
		},
	}
}

func docsTemplate() *Template {
	return &Template{
		Name:        "docs",
		Description: "A home page, Markdown guides and a stylesheet",
		Files: map[string]string{
			"{{.Source}}/index.yaml": `- doctype: true
- tag: html
  attrs:
    lang: en
  children:
    - tag: head
      children:
        - tag: meta
          attrs:
            charset: utf-8
        - tag: title
          children: {{printf "%q" .Name}}
        - tag: link
          attrs:
            rel: stylesheet
            href: /site.css
    - tag: body
      children:
        - tag: header
          children:
            - tag: h1
              children: {{printf "%q" .Name}}
            - tag: p
              children: {{printf "%q" .Description}}
        - tag: nav
          children:
            - tag: a
              attrs:
                href: /guide
              children: Guide
        - tag: main
          children:
            markdown: |
              Pages live in ` + "`{{.Source}}/`" + ` as YAML element trees or Markdown.
              Run ` + "`hypertext serve`" + ` to preview with live reload.
`,
			"{{.Source}}/guide/index.md": `# Guide

Start with [writing pages](/guide/pages).
`,
			"{{.Source}}/guide/pages.md": `# Writing pages

Every ` + "`.yaml`" + `, ` + "`.yml`" + ` and ` + "`.md`" + ` file under ` + "`{{.Source}}/`" + ` becomes a page.
Files whose names start with ` + "`_`" + ` are skipped, so use them for drafts.

Run ` + "`hypertext build`" + ` to write the site to ` + "`{{.Output}}/`" + `.
`,
			"{{.Source}}/site.css": `body { font-family: system-ui, sans-serif; max-width: 48rem; margin: 0 auto; padding: 2rem; }
h1 { color: #2563eb; }
`,
		},
	}
}
