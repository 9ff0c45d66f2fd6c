package commands

import (
	"context"
	"fmt"
	"text/tabwriter"
	"time"

	"git.home.luguber.info/inful/langpages/internal/routestore"
)

// HistoryCmd implements the 'history' command.
type HistoryCmd struct {
	DB    string `name:"db" required:"" help:"SQLite route history database" type:"existingfile"`
	Limit int    `short:"n" default:"10" help:"Maximum number of runs to list"`
}

func (h *HistoryCmd) Run(g *Global, _ *CLI) error {
	ctx := context.Background()
	store, err := routestore.NewSQLiteStore(h.DB)
	if err != nil {
		return err
	}
	defer func() { _ = store.Close() }()

	runs, err := store.History(ctx, h.Limit)
	if err != nil {
		return err
	}

	tw := tabwriter.NewWriter(g.out(), 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "RUN\tTIME\tROUTES\tHASH")
	for _, r := range runs {
		fmt.Fprintf(tw, "%s\t%s\t%d\t%s\n", r.ID, r.Timestamp.Format(time.RFC3339), r.Routes, shortHash(r.Hash))
	}
	return tw.Flush()
}

func shortHash(h string) string {
	if len(h) > 12 {
		return h[:12]
	}
	return h
}
