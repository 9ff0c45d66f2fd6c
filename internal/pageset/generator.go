package pageset

import (
	"context"
	"log/slog"
	"time"

	"golang.org/x/sync/errgroup"

	"git.home.luguber.info/inful/langpages/internal/foundation/errors"
	"git.home.luguber.info/inful/langpages/internal/logfields"
	"git.home.luguber.info/inful/langpages/internal/metrics"
	"git.home.luguber.info/inful/langpages/internal/util/sets"
)

// Generator produces the complete route table from a post collection.
type Generator struct {
	opts     Options
	logger   *slog.Logger
	recorder metrics.Recorder
}

// Option configures a Generator.
type Option func(*Generator)

// WithLogger sets the logger used for per-view and summary lines.
func WithLogger(l *slog.Logger) Option {
	return func(g *Generator) {
		if l != nil {
			g.logger = l
		}
	}
}

// WithRecorder sets the metrics recorder.
func WithRecorder(r metrics.Recorder) Option {
	return func(g *Generator) {
		if r != nil {
			g.recorder = r
		}
	}
}

// NewGenerator returns a generator for opts. Options are validated on every
// Generate call so a bad configuration fails before any page is built.
func NewGenerator(opts Options, options ...Option) *Generator {
	g := &Generator{
		opts:     opts,
		logger:   slog.Default(),
		recorder: metrics.NoopRecorder{},
	}
	for _, o := range options {
		o(g)
	}
	return g
}

// Options returns the options the generator was built with.
func (g *Generator) Options() Options { return g.opts }

type viewFunc func(Input, Options) ([]Descriptor, error)

var viewFuncs = map[View]viewFunc{
	ViewIndex:    func(in Input, o Options) ([]Descriptor, error) { return Index(in.Posts, o) },
	ViewArchive:  func(in Input, o Options) ([]Descriptor, error) { return Archive(in.Posts, o) },
	ViewCategory: func(in Input, o Options) ([]Descriptor, error) { return Categories(in.Categories, o) },
	ViewTag:      func(in Input, o Options) ([]Descriptor, error) { return Tags(in.Tags, o) },
}

// Generate runs all four views and returns their descriptors concatenated in
// index, archive, category, tag order. Views run concurrently; the first
// failure fails the whole run and no partial table is returned.
func (g *Generator) Generate(ctx context.Context, in Input) ([]Descriptor, error) {
	start := time.Now()
	out, err := g.generate(ctx, in)
	g.recorder.ObserveGenerationDuration(time.Since(start))

	switch {
	case err == nil:
		g.recorder.IncGenerationOutcome(metrics.OutcomeSuccess)
		g.logger.Info("Route table generated",
			logfields.Pages(len(out)),
			logfields.Posts(in.Posts.Len()),
			logfields.DurationMS(float64(time.Since(start).Microseconds())/1000))
	case ctx.Err() != nil:
		g.recorder.IncGenerationOutcome(metrics.OutcomeCanceled)
	default:
		g.recorder.IncGenerationOutcome(metrics.OutcomeFailed)
	}
	return out, err
}

func (g *Generator) generate(ctx context.Context, in Input) ([]Descriptor, error) {
	if err := g.opts.Validate(); err != nil {
		return nil, err
	}

	results := make([][]Descriptor, len(Views))
	eg, egCtx := errgroup.WithContext(ctx)
	for i, v := range Views {
		eg.Go(func() error {
			if err := egCtx.Err(); err != nil {
				return errors.WrapError(err, errors.CategoryRuntime, "generation canceled").
					WithContext("view", string(v)).
					Build()
			}
			start := time.Now()
			ds, err := viewFuncs[v](in, g.opts)
			if err != nil {
				g.logger.Debug("View failed", logfields.View(string(v)), logfields.Error(err))
				return err
			}
			elapsed := time.Since(start)
			groups := countGroups(ds)
			g.recorder.ObserveViewDuration(string(v), elapsed)
			g.recorder.AddViewPages(string(v), len(ds))
			g.recorder.AddViewGroups(string(v), groups)
			g.logger.Debug("View generated",
				logfields.View(string(v)),
				logfields.Groups(groups),
				logfields.Pages(len(ds)),
				logfields.DurationMS(float64(elapsed.Microseconds())/1000))
			results[i] = ds
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, err
	}

	var total int
	for _, ds := range results {
		total += len(ds)
	}
	out := make([]Descriptor, 0, total)
	for _, ds := range results {
		out = append(out, ds...)
	}
	if err := checkUniquePaths(out); err != nil {
		return nil, err
	}
	return out, nil
}

func countGroups(ds []Descriptor) int {
	n := 0
	for _, d := range ds {
		if d.Current == 1 {
			n++
		}
	}
	return n
}

// checkUniquePaths guards the composition rules. Validated options and feeds
// cannot produce a duplicate, so a hit here is a bug.
func checkUniquePaths(ds []Descriptor) error {
	seen := sets.New[string]()
	for _, d := range ds {
		if seen.Has(d.Path) {
			return errors.InternalError("duplicate output path in route table").
				WithContext("path", d.Path).
				WithContext("view", string(d.View)).
				Build()
		}
		seen.Add(d.Path)
	}
	return nil
}
