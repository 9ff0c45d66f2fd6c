package commands

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
	"text/tabwriter"

	prom "github.com/prometheus/client_golang/prometheus"

	"git.home.luguber.info/inful/langpages/internal/foundation/errors"
	"git.home.luguber.info/inful/langpages/internal/logfields"
	"git.home.luguber.info/inful/langpages/internal/manifest"
	"git.home.luguber.info/inful/langpages/internal/metrics"
	"git.home.luguber.info/inful/langpages/internal/pageset"
	"git.home.luguber.info/inful/langpages/internal/routestore"
)

// RoutesCmd implements the 'routes' command.
type RoutesCmd struct {
	Format      string `short:"f" default:"text" help:"Output format (text or json)" enum:"text,json"`
	Manifest    string `short:"m" help:"Write a route manifest (JSON) to this file" type:"path"`
	DB          string `name:"db" help:"Record the run in this SQLite route history database" type:"path"`
	MetricsFile string `name:"metrics-file" help:"Write Prometheus metrics to this textfile" type:"path"`
}

func (r *RoutesCmd) Run(g *Global, root *CLI) error {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()
	return r.run(ctx, g, root)
}

func (r *RoutesCmd) run(ctx context.Context, g *Global, root *CLI) error {
	registry := prom.NewRegistry()
	rec := metrics.NewPrometheusRecorder(registry)

	res, genErr := generate(ctx, g, root, rec)
	logger := g.logger()
	if r.MetricsFile != "" {
		// Failed runs are still worth exporting.
		if err := metrics.WriteTextfile(r.MetricsFile, registry); err != nil {
			logger.Warn("Failed to write metrics textfile", logfields.Path(r.MetricsFile), logfields.Error(err))
		}
	}
	if genErr != nil {
		return genErr
	}

	m := manifest.New(res.descriptors, res.opts.Languages, res.cfg.Hash())
	m.Source = sourceDir(root, res.cfg)
	m.Duration = res.duration.Milliseconds()

	out := g.out()
	switch r.Format {
	case "json":
		if err := writeJSON(out, m.Routes); err != nil {
			return err
		}
	default:
		if err := writeTable(out, res.descriptors); err != nil {
			return err
		}
	}

	if r.Manifest != "" {
		if err := writeManifest(r.Manifest, m); err != nil {
			return err
		}
		logger.Info("Route manifest written", logfields.Path(r.Manifest))
	}

	if r.DB != "" {
		return recordRun(ctx, g, r.DB, m)
	}
	return nil
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return errors.WrapError(err, errors.CategoryInternal, "encode routes").Build()
	}
	return nil
}

// writeTable prints one line per page in table order.
func writeTable(w io.Writer, ds []pageset.Descriptor) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "PATH\tVIEW\tLANG\tPAGE\tPOSTS\tLABEL")
	for _, d := range ds {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%d/%d\t%d\t%s\n",
			d.Path, d.View, d.Lang, d.Current, d.Total, d.Posts.Len(), label(d))
	}
	return tw.Flush()
}

func label(d pageset.Descriptor) string {
	switch {
	case d.Category != "":
		return d.Category
	case d.Tag != "":
		return d.Tag
	case d.Month != 0:
		return fmt.Sprintf("%d-%02d", d.Year, d.Month)
	case d.Year != 0:
		return fmt.Sprintf("%d", d.Year)
	}
	return ""
}

func writeManifest(path string, m *manifest.RouteManifest) error {
	data, err := m.ToJSON()
	if err != nil {
		return errors.WrapError(err, errors.CategoryInternal, "serialize manifest").Build()
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return errors.WrapError(err, errors.CategoryFileSystem, "write manifest").
			WithContext("path", path).
			Build()
	}
	return nil
}

// recordRun stores the run and reports how the table moved since the last one.
func recordRun(ctx context.Context, g *Global, dbPath string, m *manifest.RouteManifest) error {
	store, err := routestore.NewSQLiteStore(dbPath)
	if err != nil {
		return err
	}
	defer func() { _ = store.Close() }()

	prev, err := store.Latest(ctx)
	if err != nil {
		return err
	}
	run, err := store.Record(ctx, m)
	if err != nil {
		return err
	}

	logger := g.logger()
	if prev == nil {
		logger.Info("Recorded first run", logfields.Hash(run.Hash), logfields.Pages(run.Routes))
		return nil
	}
	if prev.Hash == run.Hash {
		logger.Info("Route table unchanged since previous run", logfields.Hash(run.Hash))
		return nil
	}

	prevPaths, err := store.Paths(ctx, prev.ID)
	if err != nil {
		return err
	}
	added, removed := routestore.Diff(prevPaths, m.Paths())
	logger.Info("Route table changed since previous run",
		logfields.Hash(run.Hash),
		logfields.Added(len(added)),
		logfields.Removed(len(removed)))
	for _, p := range added {
		logger.Debug("Route added", logfields.Path(p))
	}
	for _, p := range removed {
		logger.Debug("Route removed", logfields.Path(p))
	}
	return nil
}
