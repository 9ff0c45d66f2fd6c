package commands

import (
	"io"
	"log/slog"
	"os"

	"github.com/alecthomas/kong"

	"git.home.luguber.info/inful/langpages/internal/config"
)

// Global context passed to subcommands. When Err is set the logger is
// rebuilt on it once the site configuration is loaded.
type Global struct {
	Logger *slog.Logger
	Out    io.Writer
	Err    io.Writer
}

// CLI definition & global flags.
type CLI struct {
	Config    string           `short:"c" help:"Site configuration file (YAML, or TOML by extension)" default:"_config.yml" type:"path"`
	Source    string           `short:"s" help:"Posts directory (overrides source_dir from the configuration)" type:"path"`
	Verbose   bool             `short:"v" help:"Enable verbose logging"`
	LogFormat string           `name:"log-format" help:"Log output format (text or json); defaults to log.format from the configuration"`
	Version   kong.VersionFlag `name:"version" help:"Show version and exit"`

	Routes  RoutesCmd  `cmd:"" default:"1" help:"Generate and print the route table"`
	Check   CheckCmd   `cmd:"" help:"Validate configuration and content and print group counts"`
	Watch   WatchCmd   `cmd:"" help:"Regenerate the route table whenever posts or configuration change"`
	History HistoryCmd `cmd:"" help:"List runs recorded in a route history database"`
	Init    InitCmd    `cmd:"" help:"Write an example site configuration"`
}

// AfterApply runs after flag parsing; setup logging once.
// nolint:unparam // AfterApply currently never returns an error.
func (c *CLI) AfterApply() error {
	logger := config.LogConfig{Format: c.LogFormat}.NewLogger(os.Stderr, c.Verbose)
	slog.SetDefault(logger)
	return nil
}

// applyLogConfig rebuilds the logger from the configuration's log section.
// --verbose and --log-format win over the file.
func (g *Global) applyLogConfig(root *CLI, lc config.LogConfig) {
	if g == nil || g.Err == nil {
		return
	}
	if root.LogFormat != "" {
		lc.Format = root.LogFormat
	}
	g.Logger = lc.NewLogger(g.Err, root.Verbose)
}

func (g *Global) logger() *slog.Logger {
	if g == nil || g.Logger == nil {
		return slog.Default()
	}
	return g.Logger
}

func (g *Global) out() io.Writer {
	if g == nil || g.Out == nil {
		return os.Stdout
	}
	return g.Out
}
