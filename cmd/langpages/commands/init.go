package commands

import (
	"fmt"

	"git.home.luguber.info/inful/langpages/internal/config"
	"git.home.luguber.info/inful/langpages/internal/logfields"
)

// InitCmd implements the 'init' command.
type InitCmd struct {
	Force bool `help:"Overwrite existing configuration file"`
}

func (i *InitCmd) Run(g *Global, root *CLI) error {
	g.logger().Info("Initializing configuration", logfields.Config(root.Config), logfields.Force(i.Force))
	if err := config.Init(root.Config, i.Force); err != nil {
		return err
	}
	fmt.Fprintf(g.out(), "Wrote %s\n", root.Config)
	return nil
}
