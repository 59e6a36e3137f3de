package main

import (
	"context"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"

	"github.com/hypertext-dev/hypertext/internal/config"
	"github.com/hypertext-dev/hypertext/internal/dev"
	"github.com/hypertext-dev/hypertext/pkg/middleware"
	"github.com/hypertext-dev/hypertext/pkg/server"
)

func (c *cli) serveCmd() *cobra.Command {
	var (
		port    int
		host    string
		watch   bool
		metrics bool
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve pages with live reload",
		Long: `Serve the source directory, rendering each page on request.

With --watch, edits to page sources reload connected browsers and render
errors are shown in an overlay.

Examples:
  hypertext serve
  hypertext serve --port=8080 --watch=false
  hypertext serve --host=0.0.0.0 --metrics`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := c.loadConfig()
			if err != nil {
				return err
			}
			if port > 0 {
				cfg.Dev.Port = port
			}
			if host != "" {
				cfg.Dev.Host = host
			}
			if cmd.Flags().Changed("watch") {
				cfg.Dev.Watch = watch
			}
			if cmd.Flags().Changed("metrics") {
				cfg.Metrics.Enabled = metrics
			}
			if err := cfg.Validate(); err != nil {
				return err
			}

			ctx, cancel := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer cancel()
			return c.runServe(ctx, cfg)
		},
	}

	cmd.Flags().IntVarP(&port, "port", "p", 0, "Port to run on (default from "+config.ConfigFileName+")")
	cmd.Flags().StringVarP(&host, "host", "H", "", "Host to bind to (default from "+config.ConfigFileName+")")
	cmd.Flags().BoolVarP(&watch, "watch", "w", true, "Watch sources and reload browsers")
	cmd.Flags().BoolVar(&metrics, "metrics", false, "Expose Prometheus metrics")

	return cmd
}

func (c *cli) runServe(ctx context.Context, cfg *config.Config) error {
	opts := []server.Option{
		server.WithLogger(c.logger.With("component", "server")),
		server.WithMiddleware(middleware.OpenTelemetry()),
	}

	if cfg.Metrics.Enabled {
		opts = append(opts,
			server.WithMiddleware(middleware.Prometheus(middleware.WithNamespace(cfg.Metrics.Namespace))),
			server.WithMetrics(cfg.Metrics.Path, prometheus.DefaultGatherer),
		)
		c.info("Metrics: %s%s", cfg.DevURL(), cfg.Metrics.Path)
	}

	if cfg.Dev.Watch {
		hub, err := c.startWatch(ctx, cfg)
		if err != nil {
			return err
		}
		opts = append(opts, server.WithReload(hub))
	}

	srv := server.New(server.Config{
		Addr:      cfg.DevAddress(),
		SourceDir: cfg.SourcePath(),
	}, opts...)

	c.success("Serving %s at %s", cfg.SourcePath(), cfg.DevURL())
	return srv.ListenAndServe(ctx)
}

func (c *cli) startWatch(ctx context.Context, cfg *config.Config) (*dev.Hub, error) {
	hub := dev.NewHub()
	hub.OnBroadcast(func(m dev.Message) {
		if m.Type == dev.MessageReload || m.Type == dev.MessageCSS {
			middleware.RecordReload()
		}
	})

	watchCfg := dev.WatchConfig(cfg)
	watcher, err := dev.NewWatcher(watchCfg)
	if err != nil {
		return nil, err
	}
	watcher.OnChange(func(changes []dev.Change) {
		if dev.OnlyCSS(changes) {
			for _, ch := range changes {
				hub.NotifyCSS(filepath.Base(ch.Path))
			}
			return
		}
		c.logger.Info("reloading", "changed", len(changes), "first", changes[0].Path, "clients", hub.ClientCount())
		hub.NotifyReload()
	})

	go func() {
		defer watcher.Close()
		if err := watcher.Start(ctx); err != nil && err != context.Canceled {
			c.logger.Error("watcher stopped", "error", err)
		}
	}()

	c.info("Watching %d paths", len(watchCfg.Paths))
	return hub, nil
}
