package pageset

import (
	"git.home.luguber.info/inful/langpages/internal/post"
)

// View identifies which generator produced a descriptor.
type View string

const (
	ViewIndex    View = "index"
	ViewArchive  View = "archive"
	ViewCategory View = "category"
	ViewTag      View = "tag"
)

// Views lists every view in route table order.
var Views = []View{ViewIndex, ViewArchive, ViewCategory, ViewTag}

// Template names offered to the renderer, most specific first.
const (
	LayoutHome     = "home"
	LayoutArchive  = "archive"
	LayoutCategory = "category"
	LayoutTag      = "tag"
)

var layouts = map[View][]string{
	ViewIndex:    {LayoutHome, LayoutArchive},
	ViewArchive:  {LayoutArchive, LayoutHome},
	ViewCategory: {LayoutCategory, LayoutArchive, LayoutHome},
	ViewTag:      {LayoutTag, LayoutArchive, LayoutHome},
}

// Layouts returns a fresh copy of the template candidates of a view.
func Layouts(v View) []string {
	return append([]string(nil), layouts[v]...)
}

// Input is everything the host supplies for one generation run.
type Input struct {
	// Posts is the full collection, used by the index and archive views.
	Posts post.Collection
	// Categories and Tags hold one feed per term, before language filtering.
	Categories []post.Feed
	Tags       []post.Feed
}

// Descriptor describes a single page of the route table.
type Descriptor struct {
	View       View   `json:"view"`
	Path       string `json:"path"`
	Lang       string `json:"lang"`
	Base       string `json:"base"`
	CurrentURL string `json:"current_url"`
	Total      int    `json:"total"`
	Current    int    `json:"current"`

	Archive  bool   `json:"archive,omitempty"`
	Category string `json:"category,omitempty"`
	Tag      string `json:"tag,omitempty"`
	Year     int    `json:"year,omitempty"`
	Month    int    `json:"month,omitempty"`

	Posts post.Collection `json:"-"`

	Prev     int    `json:"prev"`
	PrevLink string `json:"prev_link"`
	Next     int    `json:"next"`
	NextLink string `json:"next_link"`

	Layouts []string `json:"layouts"`
}
