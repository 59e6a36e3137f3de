package config

import (
	stderrors "errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/hypertext-dev/hypertext/internal/errors"
)

func TestNew(t *testing.T) {
	cfg := New()

	if cfg.Dev.Port != DefaultPort {
		t.Errorf("Dev.Port = %d, want %d", cfg.Dev.Port, DefaultPort)
	}
	if cfg.Dev.Host != DefaultHost {
		t.Errorf("Dev.Host = %q, want %q", cfg.Dev.Host, DefaultHost)
	}
	if !cfg.Dev.Watch {
		t.Error("Dev.Watch should default to true")
	}
	if cfg.Source != DefaultSource {
		t.Errorf("Source = %q, want %q", cfg.Source, DefaultSource)
	}
	if cfg.Output != DefaultOutput {
		t.Errorf("Output = %q, want %q", cfg.Output, DefaultOutput)
	}
	if cfg.Metrics.Namespace != DefaultNamespace {
		t.Errorf("Metrics.Namespace = %q", cfg.Metrics.Namespace)
	}
	if cfg.Publish.Cache != DefaultPublishCache {
		t.Errorf("Publish.Cache = %q", cfg.Publish.Cache)
	}
}

func TestLoad(t *testing.T) {
	tmpDir := t.TempDir()

	_, err := Load(tmpDir)
	if err == nil {
		t.Fatal("Expected error for missing config")
	}
	if !stderrors.Is(err, errors.New("H020")) {
		t.Errorf("missing config error = %v, want H020", err)
	}

	configYAML := `name: docs
source: content
dev:
  port: 8080
  watch: false
metrics:
  enabled: true
publish:
  bucket: docs-bucket
  prefix: v1/
  region: eu-west-1
`
	configPath := filepath.Join(tmpDir, ConfigFileName)
	if err := os.WriteFile(configPath, []byte(configYAML), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(tmpDir)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if cfg.Name != "docs" {
		t.Errorf("Name = %q", cfg.Name)
	}
	if cfg.Source != "content" {
		t.Errorf("Source = %q", cfg.Source)
	}
	if cfg.Output != DefaultOutput {
		t.Errorf("Output = %q, want default", cfg.Output)
	}
	if cfg.Dev.Port != 8080 {
		t.Errorf("Dev.Port = %d", cfg.Dev.Port)
	}
	if cfg.Dev.Host != DefaultHost {
		t.Errorf("Dev.Host = %q, want default", cfg.Dev.Host)
	}
	if cfg.Dev.Watch {
		t.Error("Dev.Watch should be false")
	}
	if !cfg.Metrics.Enabled || cfg.Metrics.Path != DefaultMetricsPath {
		t.Errorf("Metrics = %+v", cfg.Metrics)
	}
	if cfg.Publish.Bucket != "docs-bucket" || cfg.Publish.Prefix != "v1/" {
		t.Errorf("Publish = %+v", cfg.Publish)
	}
	if cfg.Path() != configPath {
		t.Errorf("Path() = %q", cfg.Path())
	}
	if cfg.Dir() != tmpDir {
		t.Errorf("Dir() = %q", cfg.Dir())
	}
	if cfg.SourcePath() != filepath.Join(tmpDir, "content") {
		t.Errorf("SourcePath() = %q", cfg.SourcePath())
	}
	if cfg.PublishCachePath() != filepath.Join(tmpDir, DefaultPublishCache) {
		t.Errorf("PublishCachePath() = %q", cfg.PublishCachePath())
	}
}

func TestLoadInvalidYAML(t *testing.T) {
	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, ConfigFileName)
	if err := os.WriteFile(path, []byte("dev: [unclosed"), 0644); err != nil {
		t.Fatal(err)
	}

	_, err := LoadFile(path)
	if !stderrors.Is(err, errors.New("H021")) {
		t.Errorf("err = %v, want H021", err)
	}
}

func TestSaveAndReload(t *testing.T) {
	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, ConfigFileName)

	cfg := New()
	cfg.Name = "saved"
	cfg.Dev.Port = 4000
	cfg.Publish.Bucket = "b"
	if err := cfg.SaveTo(path); err != nil {
		t.Fatalf("SaveTo failed: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(data), "name: saved") {
		t.Errorf("saved file missing name:\n%s", data)
	}

	loaded, err := LoadFile(path)
	if err != nil {
		t.Fatalf("LoadFile failed: %v", err)
	}
	if loaded.Name != "saved" || loaded.Dev.Port != 4000 || loaded.Publish.Bucket != "b" {
		t.Errorf("reloaded config = %+v", loaded)
	}
}

func TestSaveKeepsWatchDisabled(t *testing.T) {
	path := filepath.Join(t.TempDir(), ConfigFileName)

	cfg := New()
	cfg.Dev.Watch = false
	cfg.Publish.Profile = "publisher"
	if err := cfg.SaveTo(path); err != nil {
		t.Fatalf("SaveTo failed: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(data), "watch: false") {
		t.Errorf("saved file missing watch: false:\n%s", data)
	}

	loaded, err := LoadFile(path)
	if err != nil {
		t.Fatalf("LoadFile failed: %v", err)
	}
	if loaded.Dev.Watch {
		t.Error("saved watch=false, loaded watch=true")
	}
	if loaded.Publish.Profile != "publisher" {
		t.Errorf("Profile = %q, want publisher", loaded.Publish.Profile)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		modify  func(*Config)
		wantErr bool
	}{
		{"defaults", func(*Config) {}, false},
		{"negative port", func(c *Config) { c.Dev.Port = -1 }, true},
		{"port too large", func(c *Config) { c.Dev.Port = 70000 }, true},
		{"empty source", func(c *Config) { c.Source = "" }, true},
		{"empty output", func(c *Config) { c.Output = "" }, true},
		{"same directories", func(c *Config) { c.Output = "pages/" }, true},
		{"relative metrics path", func(c *Config) { c.Metrics.Path = "metrics" }, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := New()
			tt.modify(cfg)
			err := cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestValidatePublish(t *testing.T) {
	cfg := New()
	if err := cfg.ValidatePublish(); err == nil {
		t.Error("missing bucket should fail")
	}

	cfg.Publish.Bucket = "b"
	if err := cfg.ValidatePublish(); err == nil {
		t.Error("missing region and endpoint should fail")
	}

	cfg.Publish.Endpoint = "http://localhost:9000"
	if err := cfg.ValidatePublish(); err != nil {
		t.Errorf("ValidatePublish() = %v", err)
	}
}

func TestDevAddress(t *testing.T) {
	cfg := New()
	cfg.Dev.Host = "0.0.0.0"
	cfg.Dev.Port = 8080

	if got := cfg.DevAddress(); got != "0.0.0.0:8080" {
		t.Errorf("DevAddress() = %q", got)
	}
	if got := cfg.DevURL(); got != "http://0.0.0.0:8080" {
		t.Errorf("DevURL() = %q", got)
	}
}

func TestLoadOrDefault(t *testing.T) {
	dir := t.TempDir()

	cfg, err := LoadOrDefault(dir)
	if err != nil {
		t.Fatalf("LoadOrDefault() on empty dir = %v", err)
	}
	if cfg.Dir() != dir {
		t.Errorf("Dir() = %q, want %q", cfg.Dir(), dir)
	}
	if got, want := cfg.SourcePath(), filepath.Join(dir, DefaultSource); got != want {
		t.Errorf("SourcePath() = %q, want %q", got, want)
	}

	if err := os.WriteFile(filepath.Join(dir, ConfigFileName), []byte("source: content\n"), 0644); err != nil {
		t.Fatal(err)
	}
	cfg, err = LoadOrDefault(dir)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Source != "content" {
		t.Errorf("Source = %q, want content", cfg.Source)
	}

	if err := os.WriteFile(filepath.Join(dir, ConfigFileName), []byte("source: [\n"), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadOrDefault(dir); err == nil {
		t.Error("invalid config must still fail")
	}
}
