package templates

import (
	"context"
	stderrors "errors"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/hypertext-dev/hypertext/internal/config"
	"github.com/hypertext-dev/hypertext/internal/errors"
	"github.com/hypertext-dev/hypertext/pkg/site"
)

func TestGet(t *testing.T) {
	tests := []struct {
		name    string
		wantErr bool
	}{
		{"minimal", false},
		{"docs", false},
		{"nonexistent", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tmpl, err := Get(tt.name)
			if tt.wantErr {
				if !stderrors.Is(err, errors.New("H060")) {
					t.Errorf("err = %v, want H060", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("Unexpected error: %v", err)
			}
			if tmpl.Name != tt.name {
				t.Errorf("Name = %q, want %q", tmpl.Name, tt.name)
			}
		})
	}
}

func TestList(t *testing.T) {
	if diff := cmp.Diff([]string{"docs", "minimal"}, List()); diff != "" {
		t.Errorf("List() mismatch (-want +got):\n%s", diff)
	}
}

func TestCreateMinimal(t *testing.T) {
	dir := t.TempDir()
	tmpl, _ := Get("minimal")

	created, err := tmpl.Create(dir, Config{Name: "test-site", Description: "A test site"})
	if err != nil {
		t.Fatalf("Create error: %v", err)
	}
	if diff := cmp.Diff([]string{"hypertext.yaml", "pages/index.yaml"}, created); diff != "" {
		t.Errorf("created mismatch (-want +got):\n%s", diff)
	}

	cfg, err := config.Load(dir)
	if err != nil {
		t.Fatalf("config.Load: %v", err)
	}
	if cfg.Name != "test-site" || cfg.Source != "pages" || cfg.Output != "dist" {
		t.Errorf("config = %+v", cfg)
	}

	page, _ := os.ReadFile(filepath.Join(dir, "pages", "index.yaml"))
	if !strings.Contains(string(page), `"A test site"`) {
		t.Errorf("description not substituted:\n%s", page)
	}
}

func TestCreateDocsBuilds(t *testing.T) {
	dir := t.TempDir()
	tmpl, _ := Get("docs")

	if _, err := tmpl.Create(dir, Config{Source: "content", Output: "public"}); err != nil {
		t.Fatalf("Create error: %v", err)
	}

	cfg, err := config.Load(dir)
	if err != nil {
		t.Fatalf("config.Load: %v", err)
	}
	if cfg.Name != filepath.Base(dir) {
		t.Errorf("Name = %q, want directory name %q", cfg.Name, filepath.Base(dir))
	}

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	result, err := site.Build(context.Background(), cfg.SourcePath(), cfg.OutputPath(), logger)
	if err != nil {
		t.Fatalf("Build: %v", err)
	}

	var pages []string
	for _, out := range result.Outputs {
		pages = append(pages, out.Path)
	}
	if diff := cmp.Diff([]string{"guide/index.html", "guide/pages.html", "index.html"}, pages); diff != "" {
		t.Errorf("pages mismatch (-want +got):\n%s", diff)
	}
	if len(result.Assets) != 1 || result.Assets[0].Path != "site.css" {
		t.Errorf("assets = %+v, want site.css", result.Assets)
	}

	index, err := os.ReadFile(filepath.Join(dir, "public", "index.html"))
	if err != nil {
		t.Fatal(err)
	}
	for _, want := range []string{
		"<!DOCTYPE html>",
		`<link rel="stylesheet" href="/site.css">`,
		"<code>content/</code>",
	} {
		if !strings.Contains(string(index), want) {
			t.Errorf("index.html missing %q:\n%s", want, index)
		}
	}
}

func TestCreateRefusesToOverwrite(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "hypertext.yaml"), []byte("name: keep\n"), 0644); err != nil {
		t.Fatal(err)
	}

	tmpl, _ := Get("docs")
	created, err := tmpl.Create(dir, Config{})
	if !stderrors.Is(err, errors.New("H060")) {
		t.Fatalf("err = %v, want H060", err)
	}
	if len(created) != 0 {
		t.Errorf("created = %v, want nothing", created)
	}
	if _, err := os.Stat(filepath.Join(dir, "pages")); !os.IsNotExist(err) {
		t.Error("pages directory should not have been written")
	}
	data, _ := os.ReadFile(filepath.Join(dir, "hypertext.yaml"))
	if string(data) != "name: keep\n" {
		t.Errorf("existing config overwritten: %q", data)
	}
}
