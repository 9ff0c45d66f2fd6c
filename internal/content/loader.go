package content

import (
	"context"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"time"

	"github.com/inful/mdfp"

	"git.home.luguber.info/inful/langpages/internal/foundation/errors"
	"git.home.luguber.info/inful/langpages/internal/frontmatter"
	"git.home.luguber.info/inful/langpages/internal/logfields"
	"git.home.luguber.info/inful/langpages/internal/pageset"
	"git.home.luguber.info/inful/langpages/internal/post"
	"git.home.luguber.info/inful/langpages/internal/util/sets"
)

var markdownExts = []string{".md", ".markdown"}

// Site is everything the loader found under a source directory.
type Site struct {
	Posts      post.Collection
	Categories []post.Feed
	Tags       []post.Feed
}

// Input adapts the site for the page generator.
func (s *Site) Input() pageset.Input {
	return pageset.Input{Posts: s.Posts, Categories: s.Categories, Tags: s.Tags}
}

// Languages returns the distinct post languages, sorted.
func (s *Site) Languages() []string {
	langs := sets.New[string]()
	for _, p := range s.Posts {
		if p.Lang != "" {
			langs.Add(p.Lang)
		}
	}
	return sets.Sorted(langs)
}

// Loader reads posts from a directory tree.
type Loader struct {
	root     string
	location *time.Location
	logger   *slog.Logger
}

// LoaderOption configures a Loader.
type LoaderOption func(*Loader)

// WithLogger sets the loader's logger.
func WithLogger(l *slog.Logger) LoaderOption {
	return func(ld *Loader) {
		if l != nil {
			ld.logger = l
		}
	}
}

// WithLocation sets the zone used for dates written without an offset.
// The default is UTC.
func WithLocation(loc *time.Location) LoaderOption {
	return func(ld *Loader) {
		if loc != nil {
			ld.location = loc
		}
	}
}

// NewLoader creates a loader rooted at dir.
func NewLoader(dir string, opts ...LoaderOption) *Loader {
	ld := &Loader{root: dir, location: time.UTC, logger: slog.Default()}
	for _, opt := range opts {
		opt(ld)
	}
	return ld
}

// Load walks the source directory in lexical order and parses every
// Markdown file. Files whose frontmatter cannot be decoded, or whose date
// cannot be parsed, fail the load with a content error. Missing lang or
// date values are left empty for the generator to report.
func (l *Loader) Load(ctx context.Context) (*Site, error) {
	info, err := os.Stat(l.root)
	if err != nil || !info.IsDir() {
		return nil, errors.FileSystemError("source directory not found").
			WithContext("path", l.root).
			Build()
	}

	var posts post.Collection
	err = filepath.WalkDir(l.root, func(path string, d fs.DirEntry, walkErr error) error {
		if walkErr != nil {
			return errors.WrapError(walkErr, errors.CategoryFileSystem, "walk source directory").
				WithContext("path", path).
				Build()
		}
		if err := ctx.Err(); err != nil {
			return errors.WrapError(err, errors.CategoryRuntime, "loading canceled").Build()
		}
		if d.IsDir() {
			if path != l.root && strings.HasPrefix(d.Name(), ".") {
				return filepath.SkipDir
			}
			return nil
		}
		if !slices.Contains(markdownExts, strings.ToLower(filepath.Ext(path))) {
			return nil
		}

		p, err := l.loadFile(path)
		if err != nil {
			return err
		}
		posts = append(posts, p)
		return nil
	})
	if err != nil {
		return nil, err
	}

	site := &Site{
		Posts:      posts,
		Categories: l.buildFeeds(posts, func(p *post.Post) []post.Term { return p.Categories }),
		Tags:       l.buildFeeds(posts, func(p *post.Post) []post.Term { return p.Tags }),
	}
	l.logger.Debug("Loaded posts",
		logfields.Source(l.root),
		logfields.Posts(len(posts)),
		logfields.Categories(len(site.Categories)),
		logfields.Tags(len(site.Tags)))
	return site, nil
}

func (l *Loader) loadFile(path string) (*post.Post, error) {
	rel, err := filepath.Rel(l.root, path)
	if err != nil {
		rel = path
	}
	rel = filepath.ToSlash(rel)

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.WrapError(err, errors.CategoryFileSystem, "read post").
			WithContext("path", rel).
			Build()
	}

	raw, body, format, err := frontmatter.Split(data)
	if err != nil {
		return nil, contentError(err, "split frontmatter", rel)
	}
	fields, err := frontmatter.Parse(raw, format)
	if err != nil {
		return nil, contentError(err, "decode frontmatter", rel)
	}

	var dateText string
	if format == frontmatter.FormatYAML {
		dateText = yamlScalar(raw, keyDate)
	}
	date, err := dateField(fields[keyDate], dateText, l.location)
	if err != nil {
		return nil, contentError(err, "parse date", rel)
	}

	p := &post.Post{
		ID:          stringField(fields, keyUID),
		Date:        date,
		Lang:        stringField(fields, keyLang),
		Categories:  termsField(fields, keyCategories),
		Tags:        termsField(fields, keyTags),
		Title:       stringField(fields, keyTitle),
		Source:      rel,
		Fingerprint: mdfp.CalculateFingerprintFromParts(strings.TrimRight(string(raw), "\r\n"), string(body)),
	}
	if p.ID == "" {
		p.ID = rel
	}
	if p.Title == "" {
		p.Title = firstHeading(body)
	}
	if p.MissingAttribute() != "" {
		l.logger.Debug("Post lacks a required attribute",
			logfields.Path(rel),
			logfields.Attribute(p.MissingAttribute()))
	}
	return p, nil
}

func contentError(err error, msg, rel string) error {
	return errors.WrapError(err, errors.CategoryContent, msg).
		Fatal().
		UserAction().
		WithContext("path", rel).
		Build()
}

// buildFeeds groups posts by term slug. Feeds are sorted by slug and keep
// the first name seen for each slug; posts keep load order. Distinct names
// that share a slug are merged with a warning.
func (l *Loader) buildFeeds(posts post.Collection, terms func(*post.Post) []post.Term) []post.Feed {
	index := make(map[string]int)
	merged := sets.New[post.Term]()
	var feeds []post.Feed
	for _, p := range posts {
		for _, t := range terms(p) {
			i, ok := index[t.Slug]
			if !ok {
				i = len(feeds)
				index[t.Slug] = i
				feeds = append(feeds, post.Feed{Term: t})
			} else if kept := feeds[i].Name; kept != t.Name && !merged.Has(t) {
				merged.Add(t)
				l.logger.Warn("Terms share a slug and are merged into one listing",
					logfields.Slug(t.Slug),
					logfields.Term(kept),
					logfields.MergedTerm(t.Name),
					logfields.Path(p.Source))
			}
			feeds[i].Posts = append(feeds[i].Posts, p)
		}
	}
	slices.SortFunc(feeds, func(a, b post.Feed) int { return strings.Compare(a.Slug, b.Slug) })
	return feeds
}
