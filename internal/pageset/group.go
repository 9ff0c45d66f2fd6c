package pageset

import (
	"git.home.luguber.info/inful/langpages/internal/paginate"
	"git.home.luguber.info/inful/langpages/internal/pathing"
	"git.home.luguber.info/inful/langpages/internal/post"
)

// group is one page set: a language, a base path and the posts it lists.
// decorate attaches the view-specific descriptive fields.
type group struct {
	view     View
	lang     string
	base     string
	posts    post.Collection
	decorate func(*Descriptor)
}

// emit sorts the group, paginates it and builds one descriptor per page.
func (g group) emit(opts Options) ([]Descriptor, error) {
	sorted := g.posts.SortByDateDesc()
	pages, err := paginate.Paginate([]*post.Post(sorted), opts.PerPage.For(g.view))
	if err != nil {
		return nil, err
	}

	dir := opts.PaginationDir
	out := make([]Descriptor, 0, len(pages))
	for _, p := range pages {
		d := Descriptor{
			View:       g.view,
			Path:       pathing.Path(g.base, dir, p.Number),
			Lang:       g.lang,
			Base:       g.base,
			CurrentURL: pathing.Link(g.base, dir, p.Number),
			Total:      p.Total,
			Current:    p.Number,
			Posts:      post.Collection(p.Items),
			Prev:       p.Prev,
			PrevLink:   pathing.NeighbourLink(g.base, dir, p.Prev),
			Next:       p.Next,
			NextLink:   pathing.NeighbourLink(g.base, dir, p.Next),
			Layouts:    Layouts(g.view),
		}
		if g.decorate != nil {
			g.decorate(&d)
		}
		out = append(out, d)
	}
	return out, nil
}

// emitAll runs emit for every group in order and concatenates the results.
func emitAll(groups []group, opts Options) ([]Descriptor, error) {
	var out []Descriptor
	for _, g := range groups {
		ds, err := g.emit(opts)
		if err != nil {
			return nil, err
		}
		out = append(out, ds...)
	}
	return out, nil
}
