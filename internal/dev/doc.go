// Package dev provides file watching and live reload for the development
// server.
//
// This package implements:
//   - File watching on the page source directory via fsnotify
//   - WebSocket-based browser refresh
//   - Error overlay in the browser when a page fails to render
//
// # Usage
//
//	hub := dev.NewHub()
//	w, err := dev.NewWatcher(dev.WatcherConfig{Paths: dev.CollectWatchPaths(cfg)})
//	if err != nil {
//	    return err
//	}
//	w.OnChange(func(changes []dev.Change) { hub.NotifyReload() })
//	go w.Start(ctx)
//
// # Reload Protocol
//
// The browser connects to /_hypertext/reload via WebSocket.
// Messages are JSON-encoded:
//
//	{"type": "reload"}                // Triggers full page reload
//	{"type": "css", "file": "..."}    // Triggers stylesheet reload
//	{"type": "error", "error": "..."} // Shows error overlay
//	{"type": "clear"}                 // Clears error overlay
package dev
