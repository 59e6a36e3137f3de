// Package middleware provides HTTP middleware for serving hypertext pages.
//
// Every middleware has the standard shape func(http.Handler) http.Handler so
// it composes with chi, net/http and the hypertext server alike.
//
// # Prometheus Metrics
//
// The Prometheus middleware counts rendered pages and observes how long each
// render took and how many bytes it produced:
//   - hypertext_page_renders_total: Counter of responses by status class
//   - hypertext_page_render_duration_seconds: Histogram of render duration
//   - hypertext_page_bytes: Histogram of response body sizes
//   - hypertext_reloads_total: Counter of live-reload broadcasts
//
// Install it on the server:
//
//	srv := server.New(cfg, server.WithMiddleware(
//	    middleware.Prometheus(middleware.WithNamespace("docs")),
//	))
//
// Expose the registry with promhttp:
//
//	http.Handle("/metrics", promhttp.Handler())
//
// # OpenTelemetry
//
// The OpenTelemetry middleware starts a "page.render" span per request and
// stores it on the request context. Incoming W3C trace headers are honored
// through the globally configured propagator.
//
//	middleware.OpenTelemetry(
//	    middleware.WithTracerName("docs"),
//	    middleware.WithFilter(func(r *http.Request) bool {
//	        return r.URL.Path != "/healthz"
//	    }),
//	)
package middleware
