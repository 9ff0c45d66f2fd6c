package main

import (
	"log/slog"
	"os"

	"github.com/alecthomas/kong"

	"git.home.luguber.info/inful/langpages/cmd/langpages/commands"
	"git.home.luguber.info/inful/langpages/internal/foundation/errors"
	"git.home.luguber.info/inful/langpages/internal/version"
)

func main() {
	cli := &commands.CLI{}
	parser := kong.Parse(cli,
		kong.Name("langpages"),
		kong.Description("Compute the paginated, per-language route table of a Hexo blog."),
		kong.UsageOnError(),
		kong.Vars{"version": version.Version},
	)

	global := &commands.Global{Logger: slog.Default(), Out: os.Stdout, Err: os.Stderr}
	if err := parser.Run(global, cli); err != nil {
		adapter := errors.NewCLIErrorAdapter(cli.Verbose, global.Logger)
		os.Exit(adapter.Report(err))
	}
}
