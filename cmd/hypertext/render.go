package main

import (
	"bufio"
	"os"

	"github.com/spf13/cobra"

	"github.com/hypertext-dev/hypertext/internal/errors"
	"github.com/hypertext-dev/hypertext/pkg/render"
	"github.com/hypertext-dev/hypertext/pkg/site"
)

func (c *cli) renderCmd() *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "render <page>",
		Short: "Render one page to HTML",
		Long: `Render a single .yaml, .yml or .md page and print the HTML.

Examples:
  hypertext render pages/index.yaml
  hypertext render README.md -o readme.html`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runRender(args[0], output)
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "Write to file instead of stdout")

	return cmd
}

func (c *cli) runRender(file, output string) error {
	tree, err := site.LoadPage(file)
	if err != nil {
		return err
	}

	if output == "" {
		w := bufio.NewWriter(c.stdout)
		if err := render.To(w, tree); err != nil {
			return err
		}
		return w.Flush()
	}

	f, err := os.Create(output)
	if err != nil {
		return errors.New("H031").WithDetail(output).Wrap(err)
	}
	w := bufio.NewWriter(f)
	if err := render.To(w, tree); err != nil {
		f.Close()
		return err
	}
	if err := w.Flush(); err != nil {
		f.Close()
		return errors.New("H031").WithDetail(output).Wrap(err)
	}
	if err := f.Close(); err != nil {
		return errors.New("H031").WithDetail(output).Wrap(err)
	}
	c.logger.Debug("rendered", "page", file, "output", output)
	return nil
}
