package config

import (
	"os"
	"path/filepath"
	"strconv"

	"gopkg.in/yaml.v3"

	"github.com/hypertext-dev/hypertext/internal/errors"
)

const (
	// ConfigFileName is the name of the configuration file.
	ConfigFileName = "hypertext.yaml"

	// DefaultPort is the default development server port.
	DefaultPort = 3000

	// DefaultHost is the default development server host.
	DefaultHost = "localhost"

	// DefaultSource is the default page source directory.
	DefaultSource = "pages"

	// DefaultOutput is the default build output directory.
	DefaultOutput = "dist"

	// DefaultNamespace is the default Prometheus metrics namespace.
	DefaultNamespace = "hypertext"

	// DefaultMetricsPath is the default metrics endpoint.
	DefaultMetricsPath = "/metrics"

	// DefaultPublishCache is the default location of the publish digest cache.
	DefaultPublishCache = ".hypertext/publish.db"
)

// Config represents the complete hypertext.yaml configuration.
type Config struct {
	// Name is the project name.
	Name string `yaml:"name,omitempty"`

	// Source is the directory containing page sources.
	Source string `yaml:"source,omitempty"`

	// Output is the directory rendered pages are written to.
	Output string `yaml:"output,omitempty"`

	// Dev contains development server configuration.
	Dev DevConfig `yaml:"dev,omitempty"`

	// Metrics contains Prometheus metrics configuration.
	Metrics MetricsConfig `yaml:"metrics,omitempty"`

	// Publish contains S3 publishing configuration.
	Publish PublishConfig `yaml:"publish,omitempty"`

	// configPath stores the path where the config was loaded from.
	configPath string
}

// DevConfig contains development server settings.
type DevConfig struct {
	// Host is the host to bind to.
	Host string `yaml:"host,omitempty"`

	// Port is the port to run the dev server on.
	Port int `yaml:"port,omitempty"`

	// Watch enables file watching and live reload. It defaults to true, so
	// it is always written out.
	Watch bool `yaml:"watch"`

	// Paths are extra files or directories to watch besides the source
	// directory. Relative entries are resolved against the project directory.
	Paths []string `yaml:"paths,omitempty"`
}

// MetricsConfig contains Prometheus settings for the server.
type MetricsConfig struct {
	// Enabled exposes metrics and records page renders.
	Enabled bool `yaml:"enabled,omitempty"`

	// Namespace is the metrics namespace.
	Namespace string `yaml:"namespace,omitempty"`

	// Path is the URL path of the metrics endpoint.
	Path string `yaml:"path,omitempty"`
}

// PublishConfig contains S3 publishing settings.
type PublishConfig struct {
	// Bucket is the destination bucket.
	Bucket string `yaml:"bucket,omitempty"`

	// Prefix is prepended to every object key.
	Prefix string `yaml:"prefix,omitempty"`

	// Region is the AWS region of the bucket.
	Region string `yaml:"region,omitempty"`

	// Endpoint overrides the S3 endpoint for S3-compatible stores.
	Endpoint string `yaml:"endpoint,omitempty"`

	// Profile selects a named profile from the shared AWS config files.
	Profile string `yaml:"profile,omitempty"`

	// Cache is the path of the digest cache used to skip unchanged pages.
	Cache string `yaml:"cache,omitempty"`
}

// New creates a new Config with default values.
func New() *Config {
	return &Config{
		Source: DefaultSource,
		Output: DefaultOutput,
		Dev: DevConfig{
			Host:  DefaultHost,
			Port:  DefaultPort,
			Watch: true,
		},
		Metrics: MetricsConfig{
			Namespace: DefaultNamespace,
			Path:      DefaultMetricsPath,
		},
		Publish: PublishConfig{
			Cache: DefaultPublishCache,
		},
	}
}

// Load reads configuration from the specified directory.
// It looks for hypertext.yaml in the directory.
func Load(dir string) (*Config, error) {
	return LoadFile(filepath.Join(dir, ConfigFileName))
}

// LoadOrDefault is like Load but returns the defaults, anchored at dir,
// when dir has no configuration file.
func LoadOrDefault(dir string) (*Config, error) {
	path := filepath.Join(dir, ConfigFileName)
	cfg, err := LoadFile(path)
	if err == nil {
		return cfg, nil
	}
	if !errors.HasCode(err, "H020") {
		return nil, err
	}
	cfg = New()
	cfg.configPath = path
	return cfg, nil
}

// LoadFile reads configuration from the specified file path.
func LoadFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.New("H020").
				WithDetail("No " + ConfigFileName + " found in " + filepath.Dir(path)).
				WithSuggestion("Create " + ConfigFileName + " or pass --config with the project directory")
		}
		return nil, errors.New("H021").Wrap(err)
	}

	cfg := New()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, errors.New("H021").
			WithDetail("Failed to parse " + ConfigFileName).
			WithSuggestion("Check that " + ConfigFileName + " is valid YAML").
			Wrap(err)
	}

	cfg.configPath = path
	cfg.applyDefaults()

	return cfg, nil
}

// SaveTo writes the configuration to the specified path.
func (c *Config) SaveTo(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return errors.New("H021").Wrap(err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return errors.New("H021").Wrap(err)
	}

	c.configPath = path
	return nil
}

// Path returns the path where the config was loaded from.
func (c *Config) Path() string {
	return c.configPath
}

// Dir returns the directory containing the config file.
func (c *Config) Dir() string {
	if c.configPath == "" {
		return ""
	}
	return filepath.Dir(c.configPath)
}

// applyDefaults fills in default values for empty fields.
func (c *Config) applyDefaults() {
	if c.Source == "" {
		c.Source = DefaultSource
	}
	if c.Output == "" {
		c.Output = DefaultOutput
	}
	if c.Dev.Host == "" {
		c.Dev.Host = DefaultHost
	}
	if c.Dev.Port == 0 {
		c.Dev.Port = DefaultPort
	}
	if c.Metrics.Namespace == "" {
		c.Metrics.Namespace = DefaultNamespace
	}
	if c.Metrics.Path == "" {
		c.Metrics.Path = DefaultMetricsPath
	}
	if c.Publish.Cache == "" {
		c.Publish.Cache = DefaultPublishCache
	}
}

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	if c.Dev.Port < 0 || c.Dev.Port > 65535 {
		return errors.New("H022").
			WithDetail("dev.port must be between 0 and 65535")
	}
	if c.Source == "" {
		return errors.New("H022").WithDetail("source must not be empty")
	}
	if c.Output == "" {
		return errors.New("H022").WithDetail("output must not be empty")
	}
	if filepath.Clean(c.SourcePath()) == filepath.Clean(c.OutputPath()) {
		return errors.New("H022").
			WithDetail("source and output must be different directories")
	}
	if c.Metrics.Path != "" && c.Metrics.Path[0] != '/' {
		return errors.New("H022").WithDetail("metrics.path must start with /")
	}
	return nil
}

// ValidatePublish checks the settings required by the publish command.
func (c *Config) ValidatePublish() error {
	if err := c.Validate(); err != nil {
		return err
	}
	if c.Publish.Bucket == "" {
		return errors.New("H022").
			WithDetail("publish.bucket is required").
			WithSuggestion("Add a publish section with the destination bucket to " + ConfigFileName)
	}
	if c.Publish.Region == "" && c.Publish.Endpoint == "" {
		return errors.New("H022").
			WithDetail("publish.region or publish.endpoint is required")
	}
	return nil
}

// DevAddress returns the address string for the dev server.
func (c *Config) DevAddress() string {
	return c.Dev.Host + ":" + strconv.Itoa(c.Dev.Port)
}

// DevURL returns the full URL for the dev server.
func (c *Config) DevURL() string {
	return "http://" + c.DevAddress()
}

// SourcePath returns the absolute path to the page source directory.
func (c *Config) SourcePath() string {
	return c.resolve(c.Source)
}

// OutputPath returns the absolute path to the build output directory.
func (c *Config) OutputPath() string {
	return c.resolve(c.Output)
}

// PublishCachePath returns the absolute path to the publish digest cache.
func (c *Config) PublishCachePath() string {
	return c.resolve(c.Publish.Cache)
}

func (c *Config) resolve(path string) string {
	if filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(c.Dir(), path)
}
