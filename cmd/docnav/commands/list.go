package commands

import (
	"fmt"
	"text/tabwriter"

	"git.home.luguber.info/inful/docnav/internal/generate"
)

// ListCmd implements the 'list' command.
type ListCmd struct {
	Source string `short:"s" help:"YAML menu source (defaults to the built-in table)"`
}

// Run prints position, key and label for each entry.
func (l *ListCmd) Run(g *Global, root *CLI) error {
	cfg, err := root.loadConfig()
	if err != nil {
		return err
	}
	if l.Source != "" {
		cfg.Menu.Source = l.Source
	}

	m, err := generate.New(cfg, g.logger()).LoadMenu()
	if err != nil {
		return err
	}

	tw := tabwriter.NewWriter(g.out(), 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "#\tKEY\tLABEL")
	for i, e := range m.Entries() {
		fmt.Fprintf(tw, "%d\t%s\t%s\n", i, e.Key, e.Label)
	}
	return tw.Flush()
}
