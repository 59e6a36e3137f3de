package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/hypertext-dev/hypertext/internal/config"
	"github.com/hypertext-dev/hypertext/internal/errors"
)

// Version information set at build time.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

// cli carries the global flags and output streams shared by all commands.
type cli struct {
	configDir string
	verbose   bool

	stdout io.Writer
	stderr io.Writer
	color  bool
	logger *slog.Logger
}

func main() {
	c := &cli{
		stdout: os.Stdout,
		stderr: os.Stderr,
		color:  isatty.IsTerminal(os.Stdout.Fd()) || isatty.IsCygwinTerminal(os.Stdout.Fd()),
	}
	if err := c.rootCmd().Execute(); err != nil {
		errors.Print(os.Stderr, err)
		os.Exit(1)
	}
}

func (c *cli) rootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "hypertext",
		Short: "Render HTML pages from Go, YAML and Markdown",
		Long: `hypertext renders HTML documents from trees of elements.

Pages are written as YAML element trees or Markdown files in a source
directory. hypertext can render a single page, build the whole site to
static HTML, serve it with live reload while editing, and publish the
build to S3.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			c.setupLogging()
		},
	}

	rootCmd.PersistentFlags().StringVarP(&c.configDir, "config", "c", ".", "Project directory containing "+config.ConfigFileName)
	rootCmd.PersistentFlags().BoolVarP(&c.verbose, "verbose", "v", false, "Enable debug logging")

	rootCmd.AddCommand(
		c.initCmd(),
		c.renderCmd(),
		c.buildCmd(),
		c.serveCmd(),
		c.publishCmd(),
		c.versionCmd(),
	)
	rootCmd.SetOut(c.stdout)
	rootCmd.SetErr(c.stderr)

	return rootCmd
}

func (c *cli) setupLogging() {
	level := slog.LevelInfo
	if c.verbose {
		level = slog.LevelDebug
	}
	c.logger = slog.New(slog.NewTextHandler(c.stderr, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(c.logger)
}

func (c *cli) loadConfig() (*config.Config, error) {
	cfg, err := config.LoadOrDefault(c.configDir)
	if err != nil {
		return nil, err
	}
	c.logger.Debug("config loaded", "path", cfg.Path(), "source", cfg.SourcePath(), "output", cfg.OutputPath())
	return cfg, nil
}

// success prints a success message.
func (c *cli) success(format string, args ...any) {
	mark := "✓"
	if c.color {
		mark = "\033[32m✓\033[0m"
	}
	fmt.Fprintf(c.stdout, "%s %s\n", mark, fmt.Sprintf(format, args...))
}

// info prints an info message.
func (c *cli) info(format string, args ...any) {
	fmt.Fprintf(c.stdout, "  %s\n", fmt.Sprintf(format, args...))
}

// formatBytes formats bytes as a human-readable string.
func formatBytes(b int64) string {
	const unit = 1024
	if b < unit {
		return fmt.Sprintf("%d B", b)
	}
	div, exp := int64(unit), 0
	for n := b / unit; n >= unit; n /= unit {
		div *= unit
		exp++
	}
	return fmt.Sprintf("%.1f %cB", float64(b)/float64(div), "KMGTPE"[exp])
}
