package dev

import (
	"path/filepath"

	"github.com/hypertext-dev/hypertext/internal/config"
)

// CollectWatchPaths returns a normalized list of watch paths for the project:
// the page source directory, the config file and any dev.paths entries.
func CollectWatchPaths(cfg *config.Config) []string {
	projectDir := cfg.Dir()
	paths := []string{
		cfg.SourcePath(),
		cfg.Path(),
	}

	for _, p := range cfg.Dev.Paths {
		paths = append(paths, resolvePath(projectDir, p))
	}

	unique := make([]string, 0, len(paths))
	seen := make(map[string]struct{}, len(paths))
	for _, p := range paths {
		if p == "" {
			continue
		}
		clean := filepath.Clean(p)
		if _, ok := seen[clean]; ok {
			continue
		}
		seen[clean] = struct{}{}
		unique = append(unique, clean)
	}

	return unique
}

// WatchConfig returns the watcher configuration for the project: the paths
// from CollectWatchPaths with the build output excluded.
func WatchConfig(cfg *config.Config) WatcherConfig {
	return WatcherConfig{
		Paths:   CollectWatchPaths(cfg),
		Exclude: []string{cfg.OutputPath()},
	}
}

func resolvePath(projectDir, path string) string {
	if path == "" {
		return ""
	}
	if filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(projectDir, path)
}
