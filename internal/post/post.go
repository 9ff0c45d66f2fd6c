// Package post defines the read-only post model consumed by page generation
// and the ordered-sequence abstraction used to partition it.
package post

import "time"

// Required attribute names reported when a post cannot be placed in a view.
const (
	AttrLang = "lang"
	AttrDate = "date"
)

// Term is a category or tag reference attached to a post.
type Term struct {
	Name string `json:"name" yaml:"name"`
	Slug string `json:"slug" yaml:"slug"`
}

// Post is a single published entry as supplied by the host's content store.
//
// Only ID, Date, Lang, Categories and Tags take part in page generation.
// Title, Source and Fingerprint are carried for hosts that export the route table.
type Post struct {
	ID         string    `json:"id"`
	Date       time.Time `json:"date"`
	Lang       string    `json:"lang"`
	Categories []Term    `json:"categories,omitempty"`
	Tags       []Term    `json:"tags,omitempty"`

	Title       string `json:"title,omitempty"`
	Source      string `json:"source,omitempty"`
	Fingerprint string `json:"fingerprint,omitempty"`
}

// Year returns the calendar year of the publication date in its own location.
func (p *Post) Year() int { return p.Date.Year() }

// Month returns the calendar month (1-12) of the publication date.
func (p *Post) Month() int { return int(p.Date.Month()) }

// MissingAttribute reports the first required attribute the post lacks, or "".
func (p *Post) MissingAttribute() string {
	if p.Lang == "" {
		return AttrLang
	}
	if p.Date.IsZero() {
		return AttrDate
	}
	return ""
}

// Feed is a category or tag together with every post carrying it,
// before any language filtering.
type Feed struct {
	Term
	Posts Collection
}
