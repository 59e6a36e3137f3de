package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/hypertext-dev/hypertext/internal/templates"
)

func (c *cli) initCmd() *cobra.Command {
	var (
		template    string
		name        string
		description string
	)

	cmd := &cobra.Command{
		Use:   "init [directory]",
		Short: "Create a new site",
		Long: fmt.Sprintf(`Create a starter site in the given directory (default ".").

Existing files are never overwritten.

Templates: %s

Examples:
  hypertext init
  hypertext init handbook --template=docs --name="Team Handbook"`, strings.Join(templates.List(), ", ")),
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dir := "."
			if len(args) == 1 {
				dir = args[0]
			}
			return c.runInit(dir, template, templates.Config{Name: name, Description: description})
		},
	}

	cmd.Flags().StringVarP(&template, "template", "t", "minimal", "Starter template")
	cmd.Flags().StringVar(&name, "name", "", "Site name (default directory name)")
	cmd.Flags().StringVar(&description, "description", "", "One-line site description")

	return cmd
}

func (c *cli) runInit(dir, name string, cfg templates.Config) error {
	tmpl, err := templates.Get(name)
	if err != nil {
		return err
	}
	created, err := tmpl.Create(dir, cfg)
	if err != nil {
		return err
	}
	for _, file := range created {
		c.info("%s", file)
	}
	c.success("Created %s site in %s", tmpl.Name, dir)
	return nil
}
