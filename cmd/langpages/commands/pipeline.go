package commands

import (
	"context"
	"path/filepath"
	"time"

	"git.home.luguber.info/inful/langpages/internal/config"
	"git.home.luguber.info/inful/langpages/internal/content"
	"git.home.luguber.info/inful/langpages/internal/logfields"
	"git.home.luguber.info/inful/langpages/internal/metrics"
	"git.home.luguber.info/inful/langpages/internal/pageset"
)

// run is the outcome of loading a site and generating its route table.
type run struct {
	cfg         *config.SiteConfig
	opts        pageset.Options
	site        *content.Site
	descriptors []pageset.Descriptor
	duration    time.Duration
}

// sourceDir resolves the posts directory. Relative source_dir values are
// taken from the configuration file's directory, like Hexo does.
func sourceDir(root *CLI, cfg *config.SiteConfig) string {
	if root.Source != "" {
		return root.Source
	}
	if filepath.IsAbs(cfg.SourceDir) {
		return cfg.SourceDir
	}
	return filepath.Join(filepath.Dir(root.Config), cfg.SourceDir)
}

// generate loads configuration and content and runs every view. The
// configuration's log settings replace g's logger before anything is logged.
func generate(ctx context.Context, g *Global, root *CLI, rec metrics.Recorder) (*run, error) {
	start := time.Now()

	cfg, err := config.Load(root.Config)
	if err != nil {
		return nil, err
	}
	g.applyLogConfig(root, cfg.Log)
	logger := g.logger()

	opts, err := cfg.Resolve()
	if err != nil {
		return nil, err
	}
	loc, err := cfg.Location()
	if err != nil {
		return nil, err
	}
	logger.Debug("Configuration resolved",
		logfields.Config(root.Config),
		logfields.Hash(cfg.Hash()),
		logfields.Languages(opts.Languages))

	src := sourceDir(root, cfg)
	site, err := content.NewLoader(src, content.WithLogger(logger), content.WithLocation(loc)).Load(ctx)
	if err != nil {
		return nil, err
	}

	gen := pageset.NewGenerator(opts, pageset.WithLogger(logger), pageset.WithRecorder(rec))
	ds, err := gen.Generate(ctx, site.Input())
	if err != nil {
		return nil, err
	}

	return &run{
		cfg:         cfg,
		opts:        opts,
		site:        site,
		descriptors: ds,
		duration:    time.Since(start),
	}, nil
}
