// Package config provides configuration parsing for hypertext projects.
//
// The configuration is stored in hypertext.yaml at the project root.
// This package handles loading, saving, and validating configuration.
//
// # Configuration File Structure
//
//	name: my-site
//	source: pages
//	output: dist
//	dev:
//	  host: localhost
//	  port: 3000
//	  watch: true
//	metrics:
//	  enabled: true
//	  namespace: hypertext
//	  path: /metrics
//	publish:
//	  bucket: my-bucket
//	  prefix: site/
//	  region: us-east-1
//	  cache: .hypertext/publish.db
//
// Relative paths are resolved against the directory holding the file.
//
// # Usage
//
//	cfg, err := config.Load(".")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	fmt.Println("Port:", cfg.Dev.Port)
package config
