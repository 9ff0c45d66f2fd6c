package commands

import (
	"context"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"sync"
	"syscall"
	"time"

	"github.com/fsnotify/fsnotify"

	"git.home.luguber.info/inful/langpages/internal/foundation/errors"
	"git.home.luguber.info/inful/langpages/internal/logfields"
	"git.home.luguber.info/inful/langpages/internal/manifest"
	"git.home.luguber.info/inful/langpages/internal/metrics"
)

// WatchCmd implements the 'watch' command.
type WatchCmd struct {
	Debounce time.Duration `default:"300ms" help:"Quiet period after the last change before regenerating"`
	Manifest string        `short:"m" help:"Rewrite a route manifest (JSON) to this file after each run" type:"path"`
	DB       string        `name:"db" help:"Record every run in this SQLite route history database" type:"path"`
}

func (w *WatchCmd) Run(g *Global, root *CLI) error {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()
	return w.run(ctx, g, root)
}

func (w *WatchCmd) run(ctx context.Context, g *Global, root *CLI) error {
	// The source directory must resolve once up front so it can be watched.
	res, err := generate(ctx, g, root, metrics.NoopRecorder{})
	if err != nil {
		return err
	}
	logger := g.logger()
	src := sourceDir(root, res.cfg)
	w.publish(ctx, g, root, res)

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return errors.WrapError(err, errors.CategoryRuntime, "create file watcher").Build()
	}
	defer func() { _ = watcher.Close() }()

	if err := addDirsRecursive(watcher, src); err != nil {
		return err
	}
	if err := watcher.Add(filepath.Dir(root.Config)); err != nil {
		return errors.WrapError(err, errors.CategoryFileSystem, "watch configuration directory").
			WithContext("path", root.Config).
			Build()
	}
	logger.Info("Watching for changes", logfields.Source(src), logfields.Config(root.Config))

	rebuildReq, trigger := newDebouncer(w.Debounce)
	for {
		select {
		case <-ctx.Done():
			logger.Info("Stopping watch")
			return nil
		case ev, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if !relevant(ev.Name, src, root.Config) {
				continue
			}
			if ev.Op&fsnotify.Create == fsnotify.Create {
				if fi, err := os.Stat(ev.Name); err == nil && fi.IsDir() {
					_ = addDirsRecursive(watcher, ev.Name)
				}
			}
			logger.Debug("File change detected", logfields.Path(ev.Name), logfields.Op(ev.Op.String()))
			trigger()
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			logger.Warn("Watcher error", logfields.Error(err))
		case <-rebuildReq:
			res, err := generate(ctx, g, root, metrics.NoopRecorder{})
			logger = g.logger()
			if err != nil {
				// Keep watching; the next edit may fix it.
				logger.Warn("Regeneration failed", logfields.Error(err))
				continue
			}
			w.publish(ctx, g, root, res)
		}
	}
}

// publish writes the configured outputs of a successful run.
func (w *WatchCmd) publish(ctx context.Context, g *Global, root *CLI, res *run) {
	logger := g.logger()
	m := manifest.New(res.descriptors, res.opts.Languages, res.cfg.Hash())
	m.Source = sourceDir(root, res.cfg)
	m.Duration = res.duration.Milliseconds()

	if w.Manifest != "" {
		if err := writeManifest(w.Manifest, m); err != nil {
			logger.Warn("Failed to write route manifest", logfields.Error(err))
		}
	}
	if w.DB != "" {
		if err := recordRun(ctx, g, w.DB, m); err != nil {
			logger.Warn("Failed to record run", logfields.Error(err))
		}
	}
}

// newDebouncer returns a request channel and a trigger that fires one
// request after delay has passed without further triggers.
func newDebouncer(delay time.Duration) (<-chan struct{}, func()) {
	var mu sync.Mutex
	var timer *time.Timer
	req := make(chan struct{}, 1)

	trigger := func() {
		mu.Lock()
		defer mu.Unlock()
		if timer != nil {
			timer.Stop()
		}
		timer = time.AfterFunc(delay, func() {
			select {
			case req <- struct{}{}:
			default:
			}
		})
	}
	return req, trigger
}

func addDirsRecursive(w *fsnotify.Watcher, root string) error {
	return filepath.WalkDir(root, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return errors.WrapError(err, errors.CategoryFileSystem, "walk watched directory").
				WithContext("path", path).
				Build()
		}
		if !d.IsDir() {
			return nil
		}
		if path != root && strings.HasPrefix(d.Name(), ".") {
			return filepath.SkipDir
		}
		if err := w.Add(path); err != nil {
			return errors.WrapError(err, errors.CategoryFileSystem, "watch directory").
				WithContext("path", path).
				Build()
		}
		return nil
	})
}

// relevant reports whether an event path can change the route table: the
// configuration file itself, or a non-hidden, non-temporary file under the
// source directory.
func relevant(path, src, configPath string) bool {
	if filepath.Clean(path) == filepath.Clean(configPath) {
		return true
	}
	rel, err := filepath.Rel(src, path)
	if err != nil || rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return false
	}
	base := filepath.Base(path)
	switch {
	case strings.HasPrefix(base, "."),
		strings.HasPrefix(base, "#"),
		strings.HasSuffix(base, "~"),
		strings.HasSuffix(base, ".swp"),
		strings.HasSuffix(base, ".swx"):
		return false
	}
	return true
}
