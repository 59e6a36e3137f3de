package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/hypertext-dev/hypertext/internal/errors"
)

func writeFile(t *testing.T, dir, rel, content string) string {
	t.Helper()
	file := filepath.Join(dir, filepath.FromSlash(rel))
	if err := os.MkdirAll(filepath.Dir(file), 0755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(file, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	return file
}

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	c := &cli{stdout: &stdout, stderr: &stderr}
	cmd := c.rootCmd()
	cmd.SetArgs(args)
	err := cmd.Execute()
	return stdout.String(), err
}

func newProject(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	writeFile(t, dir, "hypertext.yaml", "name: docs\npublish:\n  bucket: docs-bucket\n  region: eu-west-1\n")
	writeFile(t, dir, "pages/index.yaml", "- doctype: true\n- tag: html\n  children:\n    - tag: body\n      children: hi\n")
	writeFile(t, dir, "pages/guide/intro.md", "# Intro\n")
	return dir
}

func TestRenderToStdout(t *testing.T) {
	dir := t.TempDir()
	page := writeFile(t, dir, "page.yaml", "tag: a\nattrs:\n  href: /x?a=1&b=2\nchildren: go\n")

	out, err := run(t, "render", page)
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if want := `<a href="/x?a=1&amp;b=2">go</a>`; out != want {
		t.Errorf("output = %q, want %q", out, want)
	}
}

func TestRenderToFile(t *testing.T) {
	dir := t.TempDir()
	page := writeFile(t, dir, "page.md", "# Title\n")
	target := filepath.Join(dir, "page.html")

	if _, err := run(t, "render", page, "-o", target); err != nil {
		t.Fatalf("render: %v", err)
	}
	data, err := os.ReadFile(target)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(data), "<title>Title</title>") {
		t.Errorf("file = %q", data)
	}
}

func TestRenderInvalidPage(t *testing.T) {
	dir := t.TempDir()
	page := writeFile(t, dir, "bad.yaml", "tag: p\nbogus: 1\n")

	_, err := run(t, "render", page)
	if !errors.HasCode(err, "H011") {
		t.Fatalf("render error = %v, want H011", err)
	}
}

func TestRenderRequiresArgument(t *testing.T) {
	if _, err := run(t, "render"); err == nil {
		t.Fatal("render without a page should fail")
	}
}

func TestBuild(t *testing.T) {
	dir := newProject(t)

	out, err := run(t, "build", "--config", dir)
	if err != nil {
		t.Fatalf("build: %v", err)
	}
	if !strings.Contains(out, "Built 2 pages and 0 assets") {
		t.Errorf("output = %q", out)
	}

	index, err := os.ReadFile(filepath.Join(dir, "dist", "index.html"))
	if err != nil {
		t.Fatal(err)
	}
	if string(index) != "<!DOCTYPE html><html><body>hi</body></html>" {
		t.Errorf("index.html = %q", index)
	}
	if _, err := os.Stat(filepath.Join(dir, "dist", "guide", "intro.html")); err != nil {
		t.Errorf("guide/intro.html missing: %v", err)
	}
}

func TestBuildCleanAndOutputOverride(t *testing.T) {
	dir := newProject(t)
	stale := writeFile(t, dir, "public/stale.html", "old")

	if _, err := run(t, "build", "--config", dir, "--output", "public", "--clean"); err != nil {
		t.Fatalf("build: %v", err)
	}
	if _, err := os.Stat(stale); !os.IsNotExist(err) {
		t.Error("--clean should remove stale output")
	}
	if _, err := os.Stat(filepath.Join(dir, "public", "index.html")); err != nil {
		t.Errorf("index.html missing from overridden output: %v", err)
	}
}

func TestBuildWithoutConfigUsesDefaults(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "pages/index.yaml", "tag: p\n")

	if _, err := run(t, "build", "-c", dir); err != nil {
		t.Fatalf("build: %v", err)
	}
	if _, err := os.Stat(filepath.Join(dir, "dist", "index.html")); err != nil {
		t.Errorf("index.html missing: %v", err)
	}
}

func TestPublishDryRun(t *testing.T) {
	dir := newProject(t)
	aws := t.TempDir()
	t.Setenv("AWS_CONFIG_FILE", filepath.Join(aws, "config"))
	t.Setenv("AWS_SHARED_CREDENTIALS_FILE", filepath.Join(aws, "credentials"))
	t.Setenv("AWS_PROFILE", "")

	out, err := run(t, "publish", "--config", dir, "--dry-run")
	if err != nil {
		t.Fatalf("publish: %v", err)
	}
	if !strings.Contains(out, "Would upload 2 files to s3://docs-bucket (0 unchanged)") {
		t.Errorf("output = %q", out)
	}
}

func TestPublishRequiresBucket(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "pages/index.yaml", "tag: p\n")

	_, err := run(t, "publish", "--config", dir, "--dry-run")
	if !errors.HasCode(err, "H022") {
		t.Fatalf("publish error = %v, want H022", err)
	}
}

func TestServeRejectsInvalidPort(t *testing.T) {
	dir := newProject(t)

	_, err := run(t, "serve", "--config", dir, "--port", "70000", "--watch=false")
	if !errors.HasCode(err, "H022") {
		t.Fatalf("serve error = %v, want H022", err)
	}
}

func TestVersion(t *testing.T) {
	out, err := run(t, "version", "-s")
	if err != nil {
		t.Fatal(err)
	}
	if strings.TrimSpace(out) != version {
		t.Errorf("version -s = %q, want %q", out, version)
	}

	out, err = run(t, "version")
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out, "Go version:") {
		t.Errorf("version = %q", out)
	}
}

func TestFormatBytes(t *testing.T) {
	tests := []struct {
		in   int64
		want string
	}{
		{512, "512 B"},
		{1536, "1.5 KB"},
		{5 << 20, "5.0 MB"},
	}
	for _, tt := range tests {
		if got := formatBytes(tt.in); got != tt.want {
			t.Errorf("formatBytes(%d) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestInitThenBuild(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "handbook")

	out, err := run(t, "init", dir, "--template", "docs", "--name", "Team Handbook")
	if err != nil {
		t.Fatalf("init: %v", err)
	}
	if !strings.Contains(out, "Created docs site") || !strings.Contains(out, "pages/guide/pages.md") {
		t.Errorf("output = %q", out)
	}

	out, err = run(t, "build", "--config", dir)
	if err != nil {
		t.Fatalf("build: %v", err)
	}
	if !strings.Contains(out, "Built 3 pages and 1 assets") {
		t.Errorf("output = %q", out)
	}
	index, err := os.ReadFile(filepath.Join(dir, "dist", "index.html"))
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(index), "<title>Team Handbook</title>") {
		t.Errorf("index.html = %s", index)
	}
}

func TestInitUnknownTemplate(t *testing.T) {
	_, err := run(t, "init", t.TempDir(), "--template", "blog")
	if !errors.HasCode(err, "H060") {
		t.Errorf("err = %v, want H060", err)
	}
}
