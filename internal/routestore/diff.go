package routestore

import "git.home.luguber.info/inful/langpages/internal/util/sets"

// Diff lists paths present only in next (added) and only in prev (removed).
// Both results are sorted.
func Diff(prev, next []string) (added, removed []string) {
	before := sets.New(prev...)
	after := sets.New(next...)

	addedSet := sets.New[string]()
	for _, p := range next {
		if !before.Has(p) {
			addedSet.Add(p)
		}
	}
	removedSet := sets.New[string]()
	for _, p := range prev {
		if !after.Has(p) {
			removedSet.Add(p)
		}
	}
	return sets.Sorted(addedSet), sets.Sorted(removedSet)
}
