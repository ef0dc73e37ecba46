package commands

import (
	"fmt"

	derrors "git.home.luguber.info/inful/docnav/internal/errors"
	"git.home.luguber.info/inful/docnav/internal/generate"
	"git.home.luguber.info/inful/docnav/internal/lint"
)

// LintCmd implements the 'lint' command.
type LintCmd struct {
	Format string `short:"f" default:"text" help:"Output format (text or json)" enum:"text,json"`
	Quiet  bool   `short:"q" help:"Quiet mode: only show errors, suppress warnings"`
	Source string `short:"s" help:"YAML menu source (defaults to the built-in table)"`

	ContentDir string `arg:"" optional:"" help:"Content directory holding the menu's pages (default: lint.content_dir from config)"`
}

// Run checks the menu against the content directory.
func (lc *LintCmd) Run(g *Global, root *CLI) error {
	cfg, err := root.loadConfig()
	if err != nil {
		return err
	}
	if lc.Source != "" {
		cfg.Menu.Source = lc.Source
	}
	if lc.ContentDir != "" {
		cfg.Lint.ContentDir = lc.ContentDir
	}

	m, err := generate.New(cfg, g.logger()).LoadMenu()
	if err != nil {
		return err
	}

	result, err := lint.NewLinter(cfg.Lint.ContentDir, lc.Quiet).Lint(m)
	if err != nil {
		return derrors.FileSystemError("lint", cfg.Lint.ContentDir, err)
	}
	if err := lint.NewFormatter(lc.Format).Format(g.out(), result); err != nil {
		return err
	}
	if result.HasErrors() {
		return derrors.ValidationFailed("menu", fmt.Sprintf("%d lint errors", result.ErrorCount())).
			WithContext("menu", result.Menu)
	}
	return nil
}
