package commands

import (
	"io"
	"log/slog"
	"os"

	"github.com/alecthomas/kong"

	"git.home.luguber.info/inful/docnav/internal/config"
)

// Global context passed to subcommands.
type Global struct {
	Logger *slog.Logger
	Out    io.Writer
}

// CLI definition & global flags.
type CLI struct {
	Config  string           `short:"c" help:"Configuration file path" default:"docnav.yaml"`
	Verbose bool             `short:"v" help:"Enable verbose logging"`
	Version kong.VersionFlag `name:"version" help:"Show version and exit"`

	List   ListCmd   `cmd:"" help:"List menu entries in order"`
	Render RenderCmd `cmd:"" help:"Render the menu for a documentation framework"`
	Lint   LintCmd   `cmd:"" help:"Check that every menu key resolves to a content page"`
	Watch  WatchCmd  `cmd:"" help:"Re-render the menu whenever its source file changes"`
}

// AfterApply runs after flag parsing; setup logging once.
// nolint:unparam // AfterApply currently never returns an error.
func (c *CLI) AfterApply() error {
	level := slog.LevelInfo
	if c.Verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)
	return nil
}

// loadConfig reads the configuration selected by --config.
func (c *CLI) loadConfig() (*config.Config, error) {
	return config.Load(c.Config)
}

func (g *Global) out() io.Writer {
	if g.Out == nil {
		return os.Stdout
	}
	return g.Out
}

func (g *Global) logger() *slog.Logger {
	if g.Logger == nil {
		return slog.Default()
	}
	return g.Logger
}
