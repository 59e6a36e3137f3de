package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/hypertext-dev/hypertext/internal/config"
	"github.com/hypertext-dev/hypertext/internal/errors"
	"github.com/hypertext-dev/hypertext/pkg/site"
)

func (c *cli) buildCmd() *cobra.Command {
	var (
		output string
		clean  bool
	)

	cmd := &cobra.Command{
		Use:   "build",
		Short: "Render every page to static HTML",
		Long: `Render every page in the source directory to the output directory.

Each page becomes <output>/<path>.html. Files and directories whose
names start with "." or "_" are skipped.

Examples:
  hypertext build
  hypertext build --output=public --clean`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := c.loadConfig()
			if err != nil {
				return err
			}
			if output != "" {
				cfg.Output = output
			}
			ctx, cancel := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer cancel()
			_, err = c.runBuild(ctx, cfg, clean)
			return err
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "Output directory (default from "+config.ConfigFileName+")")
	cmd.Flags().BoolVar(&clean, "clean", false, "Clean output directory before build")

	return cmd
}

func (c *cli) runBuild(ctx context.Context, cfg *config.Config, clean bool) (*site.Result, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	if clean {
		c.info("Cleaning %s...", cfg.OutputPath())
		if err := os.RemoveAll(cfg.OutputPath()); err != nil {
			return nil, errors.New("H031").WithDetail(cfg.OutputPath()).Wrap(err)
		}
	}

	start := time.Now()
	result, err := site.Build(ctx, cfg.SourcePath(), cfg.OutputPath(), c.logger.With("component", "site"))
	if err != nil {
		return nil, err
	}

	c.success("Built %d pages and %d assets (%s) in %s", len(result.Outputs), len(result.Assets), formatBytes(int64(result.TotalBytes())), time.Since(start).Round(time.Millisecond))
	c.info("Output: %s", cfg.OutputPath())
	return result, nil
}
