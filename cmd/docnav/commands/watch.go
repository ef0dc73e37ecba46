package commands

import (
	"context"
	"errors"
	"os/signal"
	"syscall"

	derrors "git.home.luguber.info/inful/docnav/internal/errors"
	"git.home.luguber.info/inful/docnav/internal/generate"
	"git.home.luguber.info/inful/docnav/internal/logfields"
	"git.home.luguber.info/inful/docnav/internal/watch"
)

// WatchCmd implements the 'watch' command.
type WatchCmd struct {
	Source string `short:"s" help:"YAML menu source to watch (default: menu.source from config)"`
	Output string `short:"o" help:"Output file (default: output.path from config)"`
	Format string `short:"f" help:"Output format (meta, hugo, markdown, html, text)"`
}

// Run renders once, then again after every change until interrupted.
func (w *WatchCmd) Run(g *Global, root *CLI) error {
	cfg, err := root.loadConfig()
	if err != nil {
		return err
	}
	if w.Source != "" {
		cfg.Menu.Source = w.Source
	}
	if w.Output != "" {
		cfg.Output.Path = w.Output
	}
	if w.Format != "" {
		cfg.Output.Format = w.Format
	}
	if cfg.Menu.Source == "" {
		return derrors.ValidationFailed("menu.source", "watch needs a menu source file")
	}
	if cfg.Output.Path == "" {
		return derrors.ValidationFailed("output.path", "watch needs an output file")
	}

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	gen := generate.New(cfg, g.logger())
	if err := gen.Generate(ctx, g.out()); err != nil && !errors.Is(err, context.Canceled) {
		// Keep watching: the editor may be mid-change.
		g.logger().Error("Initial render failed", logfields.Source(cfg.Menu.Source), logfields.Error(err))
	}

	watcher, err := watch.New(cfg.Menu.Source, cfg.Watch.Debounce, func(ctx context.Context) error {
		return gen.Generate(ctx, g.out())
	}, g.logger())
	if err != nil {
		return err
	}
	return watcher.Run(ctx)
}
