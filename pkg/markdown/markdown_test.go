package markdown

import (
	"errors"
	"strings"
	"testing"

	"github.com/hypertext-dev/hypertext/pkg/render"
)

func TestRenderInsideElement(t *testing.T) {
	got := render.String(render.NewElement("article", New("# Hello\n\nSome *text*.")))

	if !strings.HasPrefix(got, "<article>") || !strings.HasSuffix(got, "</article>") {
		t.Fatalf("markdown not wrapped: %q", got)
	}
	if !strings.Contains(got, `<h1 id="hello">Hello</h1>`) {
		t.Errorf("missing heading in %q", got)
	}
	if !strings.Contains(got, "<p>Some <em>text</em>.</p>") {
		t.Errorf("missing paragraph in %q", got)
	}
}

func TestRawHTMLDroppedByDefault(t *testing.T) {
	out, err := New("<script>alert(1)</script>\n\nok").HTML()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if strings.Contains(out, "<script>") {
		t.Errorf("raw HTML should be dropped, got %q", out)
	}
	if !strings.Contains(out, "<p>ok</p>") {
		t.Errorf("got %q", out)
	}
}

func TestUnsafeConverterKeepsHTML(t *testing.T) {
	conv := NewConverter(WithUnsafeHTML())
	out, err := NewWith(conv, "<b>bold</b>").HTML()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(out, "<b>bold</b>") {
		t.Errorf("got %q", out)
	}
}

func TestGFMTables(t *testing.T) {
	src := "| a | b |\n|---|---|\n| 1 | 2 |\n"

	out, err := New(src).HTML()
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out, "<table>") {
		t.Errorf("default converter should render tables, got %q", out)
	}

	plain, err := NewWith(NewConverter(), src).HTML()
	if err != nil {
		t.Fatal(err)
	}
	if strings.Contains(plain, "<table>") {
		t.Errorf("plain converter should not render tables, got %q", plain)
	}
}

func TestTitle(t *testing.T) {
	tests := []struct {
		src  string
		want string
	}{
		{"# Getting Started\n\nbody", "Getting Started"},
		{"intro\n\n## Sub\n\n# Main", "Main"},
		{"no headings", ""},
		{"", ""},
	}
	for _, tt := range tests {
		if got := New(tt.src).Title(); got != tt.want {
			t.Errorf("Title(%q) = %q, want %q", tt.src, got, tt.want)
		}
	}
}

var errWrite = errors.New("write failed")

type failWriter struct{}

func (failWriter) Write([]byte) (int, error) { return 0, errWrite }

func TestRenderPropagatesWriteError(t *testing.T) {
	err := New("# x").Render(failWriter{})
	if !errors.Is(err, errWrite) {
		t.Errorf("err = %v, want %v", err, errWrite)
	}
}

func TestSource(t *testing.T) {
	if got := New("*x*").Source(); got != "*x*" {
		t.Errorf("Source() = %q", got)
	}
}
