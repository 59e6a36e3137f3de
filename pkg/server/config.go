package server

import "time"

// Config holds the server configuration.
type Config struct {
	// Addr is the address to listen on.
	// Default: "localhost:3000"
	Addr string

	// SourceDir is the page source directory.
	// Default: "pages"
	SourceDir string

	// ShutdownTimeout bounds graceful shutdown once the context is done.
	// Default: 10 seconds.
	ShutdownTimeout time.Duration

	// ReadHeaderTimeout is the time allowed to read request headers.
	// Default: 5 seconds.
	ReadHeaderTimeout time.Duration

	// IdleTimeout is the keep-alive timeout.
	// Default: 60 seconds.
	IdleTimeout time.Duration
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() Config {
	return Config{
		Addr:              "localhost:3000",
		SourceDir:         "pages",
		ShutdownTimeout:   10 * time.Second,
		ReadHeaderTimeout: 5 * time.Second,
		IdleTimeout:       60 * time.Second,
	}
}

func (c Config) withDefaults() Config {
	defaults := DefaultConfig()
	if c.Addr == "" {
		c.Addr = defaults.Addr
	}
	if c.SourceDir == "" {
		c.SourceDir = defaults.SourceDir
	}
	if c.ShutdownTimeout == 0 {
		c.ShutdownTimeout = defaults.ShutdownTimeout
	}
	if c.ReadHeaderTimeout == 0 {
		c.ReadHeaderTimeout = defaults.ReadHeaderTimeout
	}
	if c.IdleTimeout == 0 {
		c.IdleTimeout = defaults.IdleTimeout
	}
	return c
}
