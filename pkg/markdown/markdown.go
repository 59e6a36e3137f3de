// Package markdown renders Markdown source as part of a markup tree.
//
// A Markdown value is a render.Renderable: it converts its source with
// goldmark while the surrounding tree is rendered. The converted HTML is
// written verbatim. Raw HTML embedded in the source is dropped unless the
// converter is built with WithUnsafeHTML.
package markdown

import (
	"bytes"
	"io"
	"strings"
	"sync"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/renderer/html"
	"github.com/yuin/goldmark/text"
)

// Option configures a converter.
type Option func(*options)

type options struct {
	gfm       bool
	headingID bool
	unsafe    bool
}

// WithGFM enables GitHub Flavored Markdown (tables, strikethrough, task
// lists and autolinks).
func WithGFM() Option {
	return func(o *options) { o.gfm = true }
}

// WithHeadingIDs generates id attributes for headings.
func WithHeadingIDs() Option {
	return func(o *options) { o.headingID = true }
}

// WithUnsafeHTML keeps raw HTML found in the source.
func WithUnsafeHTML() Option {
	return func(o *options) { o.unsafe = true }
}

// NewConverter builds a goldmark converter with the given options.
func NewConverter(opts ...Option) goldmark.Markdown {
	var o options
	for _, opt := range opts {
		opt(&o)
	}

	var gmOpts []goldmark.Option
	if o.gfm {
		gmOpts = append(gmOpts, goldmark.WithExtensions(extension.GFM))
	}
	if o.headingID {
		gmOpts = append(gmOpts, goldmark.WithParserOptions(parser.WithAutoHeadingID()))
	}
	if o.unsafe {
		gmOpts = append(gmOpts, goldmark.WithRendererOptions(html.WithUnsafe()))
	}
	return goldmark.New(gmOpts...)
}

var (
	defaultOnce      sync.Once
	defaultConverter goldmark.Markdown
)

// Default returns the shared converter used by New: GFM with heading IDs,
// raw HTML dropped.
func Default() goldmark.Markdown {
	defaultOnce.Do(func() {
		defaultConverter = NewConverter(WithGFM(), WithHeadingIDs())
	})
	return defaultConverter
}

// Markdown is a renderable Markdown document.
type Markdown struct {
	source    []byte
	converter goldmark.Markdown
}

// New creates a Markdown leaf converted with the default converter.
func New(source string) *Markdown {
	return &Markdown{source: []byte(source)}
}

// NewWith creates a Markdown leaf converted with converter.
func NewWith(converter goldmark.Markdown, source string) *Markdown {
	return &Markdown{source: []byte(source), converter: converter}
}

// Source returns the Markdown source text.
func (m *Markdown) Source() string {
	return string(m.source)
}

// Render implements render.Renderable.
func (m *Markdown) Render(w io.Writer) error {
	return m.conv().Convert(m.source, w)
}

// HTML converts the source and returns the resulting markup.
func (m *Markdown) HTML() (string, error) {
	var buf bytes.Buffer
	if err := m.Render(&buf); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// Title returns the text of the first level-one heading, or "" if there is
// none.
func (m *Markdown) Title() string {
	doc := m.conv().Parser().Parse(text.NewReader(m.source))

	var title string
	ast.Walk(doc, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		if h, ok := n.(*ast.Heading); ok && h.Level == 1 {
			title = strings.TrimSpace(string(h.Text(m.source)))
			return ast.WalkStop, nil
		}
		return ast.WalkContinue, nil
	})
	return title
}

func (m *Markdown) conv() goldmark.Markdown {
	if m.converter != nil {
		return m.converter
	}
	return Default()
}
