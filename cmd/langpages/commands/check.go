package commands

import (
	"context"
	"fmt"
	"slices"
	"strings"

	"git.home.luguber.info/inful/langpages/internal/foundation/errors"
	"git.home.luguber.info/inful/langpages/internal/logfields"
	"git.home.luguber.info/inful/langpages/internal/metrics"
	"git.home.luguber.info/inful/langpages/internal/pageset"
)

// CheckCmd implements the 'check' command.
type CheckCmd struct {
	Strict bool `help:"Fail when posts use languages that are not configured"`
}

func (c *CheckCmd) Run(g *Global, root *CLI) error {
	return c.run(context.Background(), g, root)
}

func (c *CheckCmd) run(ctx context.Context, g *Global, root *CLI) error {
	res, err := generate(ctx, g, root, metrics.NoopRecorder{})
	if err != nil {
		return err
	}

	out := g.out()
	fmt.Fprintf(out, "Posts: %d  Categories: %d  Tags: %d\n",
		res.site.Posts.Len(), len(res.site.Categories), len(res.site.Tags))
	for _, v := range pageset.Views {
		groups, pages := 0, 0
		for _, d := range res.descriptors {
			if d.View != v {
				continue
			}
			pages++
			if d.Current == 1 {
				groups++
			}
		}
		fmt.Fprintf(out, "%-9s groups=%d pages=%d\n", v, groups, pages)
	}

	var unconfigured []string
	for _, lang := range res.site.Languages() {
		if !slices.Contains(res.opts.Languages, lang) {
			unconfigured = append(unconfigured, lang)
		}
	}
	if len(unconfigured) == 0 {
		fmt.Fprintln(out, "OK")
		return nil
	}

	g.logger().Warn("Posts use languages that are not configured and get no pages",
		logfields.Languages(unconfigured))
	if c.Strict {
		return errors.ValidationError("posts use languages that are not configured").
			WithContext("languages", strings.Join(unconfigured, ",")).
			Build()
	}
	return nil
}
