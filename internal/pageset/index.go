package pageset

import (
	"git.home.luguber.info/inful/langpages/internal/pathing"
	"git.home.luguber.info/inful/langpages/internal/post"
)

// Index builds the paginated home page of every language.
func Index(posts post.Collection, opts Options) ([]Descriptor, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	if err := checkPosts(ViewIndex, posts); err != nil {
		return nil, err
	}

	groups := make([]group, 0, len(opts.Languages))
	for _, lang := range opts.Languages {
		groups = append(groups, group{
			view:  ViewIndex,
			lang:  lang,
			base:  pathing.Compose(pathing.LanguagePrefix(lang, opts.DefaultLanguage()), ""),
			posts: posts.ByLanguage(lang),
		})
	}
	return emitAll(groups, opts)
}
