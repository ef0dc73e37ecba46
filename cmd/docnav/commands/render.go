package commands

import (
	"context"

	"git.home.luguber.info/inful/docnav/internal/generate"
)

// RenderCmd implements the 'render' command.
type RenderCmd struct {
	Format  string `short:"f" help:"Output format (meta, hugo, markdown, html, text)"`
	Output  string `short:"o" help:"Output file (default: stdout or output.path from config)"`
	Source  string `short:"s" help:"YAML menu source (defaults to the built-in table)"`
	BaseURL string `name:"base-url" help:"Route prefix for entry links"`
}

// Run renders the menu once.
func (r *RenderCmd) Run(g *Global, root *CLI) error {
	cfg, err := root.loadConfig()
	if err != nil {
		return err
	}
	if r.Format != "" {
		cfg.Output.Format = r.Format
	}
	if r.Output != "" {
		cfg.Output.Path = r.Output
	}
	if r.Source != "" {
		cfg.Menu.Source = r.Source
	}
	if r.BaseURL != "" {
		cfg.Menu.BaseURL = r.BaseURL
	}
	return generate.New(cfg, g.logger()).Generate(context.Background(), g.out())
}
