package pageset

import (
	"strings"

	"git.home.luguber.info/inful/langpages/internal/foundation/errors"
	"git.home.luguber.info/inful/langpages/internal/pathing"
	"git.home.luguber.info/inful/langpages/internal/post"
	"git.home.luguber.info/inful/langpages/internal/util/sets"
)

// Categories builds one paginated listing per category and language.
func Categories(feeds []post.Feed, opts Options) ([]Descriptor, error) {
	return taxonomy(ViewCategory, opts.CategoryDir, feeds, opts, func(d *Descriptor, name string) {
		d.Category = name
	})
}

// Tags builds one paginated listing per tag and language.
func Tags(feeds []post.Feed, opts Options) ([]Descriptor, error) {
	return taxonomy(ViewTag, opts.TagDir, feeds, opts, func(d *Descriptor, name string) {
		d.Tag = name
	})
}

// taxonomy handles both term views. Languages are the outer loop and feeds
// keep the host's order. Terms without posts in a language are skipped.
func taxonomy(v View, root string, feeds []post.Feed, opts Options, label func(*Descriptor, string)) ([]Descriptor, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	if err := checkFeeds(v, feeds); err != nil {
		return nil, err
	}

	var groups []group
	for _, lang := range opts.Languages {
		prefix := pathing.LanguagePrefix(lang, opts.DefaultLanguage())
		for _, feed := range feeds {
			langPosts := feed.Posts.ByLanguage(lang)
			if langPosts.Len() == 0 {
				continue
			}
			name := feed.Name
			groups = append(groups, group{
				view:     v,
				lang:     lang,
				base:     pathing.Compose(prefix, root, feed.Slug),
				posts:    langPosts,
				decorate: func(d *Descriptor) { label(d, name) },
			})
		}
	}
	return emitAll(groups, opts)
}

// checkFeeds rejects slugs that would break path composition and posts that
// lack required attributes.
func checkFeeds(v View, feeds []post.Feed) error {
	seen := sets.New[string]()
	for _, feed := range feeds {
		slug := feed.Slug
		if slug == "" || slug == "." || slug == ".." || strings.ContainsAny(slug, "/\\") {
			return errors.ValidationError("invalid term slug").
				WithContext("view", string(v)).
				WithContext("name", feed.Name).
				WithContext("slug", slug).
				Build()
		}
		if seen.Has(slug) {
			return errors.ValidationError("term slug used by more than one feed").
				WithContext("view", string(v)).
				WithContext("slug", slug).
				Build()
		}
		seen.Add(slug)
		if err := checkPosts(v, feed.Posts); err != nil {
			return err
		}
	}
	return nil
}
