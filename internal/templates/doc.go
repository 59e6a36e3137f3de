// Package templates provides starter sites for "hypertext init".
//
// # Available Templates
//
//   - minimal: a config file and a single YAML page
//   - docs: a home page, Markdown guides and a stylesheet
//
// # Usage
//
//	tmpl, err := templates.Get("docs")
//	if err != nil {
//	    return err
//	}
//	created, err := tmpl.Create(projectDir, templates.Config{Name: "handbook"})
//
// # Template Variables
//
// File contents are executed with text/template:
//
//	{{.Name}}         - Name of the site
//	{{.Description}}  - One-line description
//	{{.Source}}       - Page source directory
//	{{.Output}}       - Build output directory
package templates
