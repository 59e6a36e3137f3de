package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/hypertext-dev/hypertext/internal/config"
	"github.com/hypertext-dev/hypertext/pkg/publish"
)

func (c *cli) publishCmd() *cobra.Command {
	var (
		dryRun bool
		bucket string
		force  bool
	)

	cmd := &cobra.Command{
		Use:   "publish",
		Short: "Build and upload the site to S3",
		Long: `Build the site, then upload every page whose content changed since the
last publish to the configured bucket.

Credentials come from the standard AWS chain: environment variables,
~/.aws/credentials and ~/.aws/config (publish.profile selects a profile),
SSO, then instance roles. Set publish.endpoint to target an S3-compatible
store.

Examples:
  hypertext publish
  hypertext publish --dry-run
  hypertext publish --bucket=staging-docs --force`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := c.loadConfig()
			if err != nil {
				return err
			}
			if bucket != "" {
				cfg.Publish.Bucket = bucket
			}
			if err := cfg.ValidatePublish(); err != nil {
				return err
			}

			ctx, cancel := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer cancel()
			return c.runPublish(ctx, cfg, dryRun, force)
		},
	}

	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "Report what would be uploaded without uploading")
	cmd.Flags().StringVar(&bucket, "bucket", "", "Destination bucket (default from "+config.ConfigFileName+")")
	cmd.Flags().BoolVar(&force, "force", false, "Upload every file even if unchanged, then refresh the digest cache")

	return cmd
}

func (c *cli) runPublish(ctx context.Context, cfg *config.Config, dryRun, force bool) error {
	result, err := c.runBuild(ctx, cfg, false)
	if err != nil {
		return err
	}

	client, err := publish.NewS3Client(ctx, cfg.Publish)
	if err != nil {
		return err
	}
	cache, err := publish.OpenCache(cfg.PublishCachePath())
	if err != nil {
		return err
	}
	defer cache.Close()

	p := &publish.Publisher{
		Client: client,
		Bucket: cfg.Publish.Bucket,
		Prefix: cfg.Publish.Prefix,
		Cache:  cache,
		DryRun: dryRun,
		Force:  force,
		Logger: c.logger.With("component", "publish"),
	}

	report, err := p.Publish(ctx, result.All())
	if err != nil {
		return err
	}

	verb := "Uploaded"
	if dryRun {
		verb = "Would upload"
	}
	c.success("%s %d files to s3://%s (%d unchanged)", verb, len(report.Uploaded), cfg.Publish.Bucket, len(report.Skipped))
	return nil
}
