package post

import (
	"cmp"
	"slices"
)

// Collection is an ordered sequence of posts. Operations never modify the
// receiver; they return new collections sharing the underlying posts.
type Collection []*Post

// Len returns the number of posts.
func (c Collection) Len() int { return len(c) }

// Filter returns the posts for which keep reports true, in order.
func (c Collection) Filter(keep func(*Post) bool) Collection {
	out := make(Collection, 0, len(c))
	for _, p := range c {
		if keep(p) {
			out = append(out, p)
		}
	}
	return out
}

// ByLanguage returns the posts whose language equals lang exactly.
func (c Collection) ByLanguage(lang string) Collection {
	return c.Filter(func(p *Post) bool { return p.Lang == lang })
}

// SortByDateDesc returns a copy ordered newest first. Posts sharing a
// timestamp are ordered by ID so the result does not depend on input order.
func (c Collection) SortByDateDesc() Collection {
	out := slices.Clone(c)
	slices.SortStableFunc(out, func(a, b *Post) int {
		if n := b.Date.Compare(a.Date); n != 0 {
			return n
		}
		return cmp.Compare(a.ID, b.ID)
	})
	return out
}

// IDs returns the post identifiers in order.
func (c Collection) IDs() []string {
	ids := make([]string, len(c))
	for i, p := range c {
		ids[i] = p.ID
	}
	return ids
}

// YearGroup holds the posts of one calendar year.
type YearGroup struct {
	Year  int
	Posts Collection
}

// MonthGroup holds the posts of one calendar month within a year.
type MonthGroup struct {
	Month int
	Posts Collection
}

// ByYear partitions the collection by calendar year, newest year first.
// Order within each group follows the receiver.
func (c Collection) ByYear() []YearGroup {
	idx := map[int]int{}
	var groups []YearGroup
	for _, p := range c {
		y := p.Year()
		i, ok := idx[y]
		if !ok {
			i = len(groups)
			idx[y] = i
			groups = append(groups, YearGroup{Year: y})
		}
		groups[i].Posts = append(groups[i].Posts, p)
	}
	slices.SortFunc(groups, func(a, b YearGroup) int { return cmp.Compare(b.Year, a.Year) })
	return groups
}

// ByMonth partitions the collection by calendar month, latest month first.
// Callers pass a single year's posts.
func (c Collection) ByMonth() []MonthGroup {
	idx := map[int]int{}
	var groups []MonthGroup
	for _, p := range c {
		m := p.Month()
		i, ok := idx[m]
		if !ok {
			i = len(groups)
			idx[m] = i
			groups = append(groups, MonthGroup{Month: m})
		}
		groups[i].Posts = append(groups[i].Posts, p)
	}
	slices.SortFunc(groups, func(a, b MonthGroup) int { return cmp.Compare(b.Month, a.Month) })
	return groups
}
