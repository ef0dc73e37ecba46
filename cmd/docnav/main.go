package main

import (
	"log/slog"
	"os"

	"github.com/alecthomas/kong"

	"git.home.luguber.info/inful/docnav/cmd/docnav/commands"
	derrors "git.home.luguber.info/inful/docnav/internal/errors"
	"git.home.luguber.info/inful/docnav/internal/version"
)

func main() {
	cli := &commands.CLI{}
	parser := kong.Parse(cli,
		kong.Name("docnav"),
		kong.Description("Render and check documentation navigation menus"),
		kong.Vars{"version": version.String()},
		kong.UsageOnError(),
	)

	g := &commands.Global{Logger: slog.Default(), Out: os.Stdout}
	if err := parser.Run(g, cli); err != nil {
		adapter := derrors.NewCLIErrorAdapter(cli.Verbose, slog.Default())
		os.Exit(adapter.HandleError(err))
	}
}
