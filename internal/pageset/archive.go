package pageset

import (
	"git.home.luguber.info/inful/langpages/internal/pathing"
	"git.home.luguber.info/inful/langpages/internal/post"
)

// Archive builds the chronological archives of every language: the all-time
// listing, then each year (newest first) followed by that year's months.
func Archive(posts post.Collection, opts Options) ([]Descriptor, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	if err := checkPosts(ViewArchive, posts); err != nil {
		return nil, err
	}

	var groups []group
	for _, lang := range opts.Languages {
		prefix := pathing.LanguagePrefix(lang, opts.DefaultLanguage())
		langPosts := posts.ByLanguage(lang)

		groups = append(groups, group{
			view:     ViewArchive,
			lang:     lang,
			base:     pathing.Compose(prefix, opts.ArchiveDir),
			posts:    langPosts,
			decorate: func(d *Descriptor) { d.Archive = true },
		})

		for _, yg := range langPosts.ByYear() {
			year := yg.Year
			groups = append(groups, group{
				view:  ViewArchive,
				lang:  lang,
				base:  pathing.Compose(prefix, opts.ArchiveDir, pathing.Year(year)),
				posts: yg.Posts,
				decorate: func(d *Descriptor) {
					d.Archive = true
					d.Year = year
				},
			})

			for _, mg := range yg.Posts.ByMonth() {
				month := mg.Month
				groups = append(groups, group{
					view:  ViewArchive,
					lang:  lang,
					base:  pathing.Compose(prefix, opts.ArchiveDir, pathing.Year(year), pathing.Month(month)),
					posts: mg.Posts,
					decorate: func(d *Descriptor) {
						d.Archive = true
						d.Year = year
						d.Month = month
					},
				})
			}
		}
	}
	return emitAll(groups, opts)
}
