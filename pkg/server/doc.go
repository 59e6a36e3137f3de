// Package server serves a directory of hypertext pages over HTTP.
//
// Every request path is resolved to a page source, rendered on the fly and
// written as HTML, so edits show up on the next request without a build:
//
//	srv := server.New(server.Config{Addr: ":3000", SourceDir: "pages"})
//	if err := srv.ListenAndServe(ctx); err != nil {
//	    log.Fatal(err)
//	}
//
// Handler returns the router for mounting under another mux. Options add
// middleware, a Prometheus endpoint and the live-reload hub used by
// "hypertext serve --watch".
package server
