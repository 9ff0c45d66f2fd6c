// Package paginate slices an ordered sequence into fixed-size pages.
package paginate

import (
	"git.home.luguber.info/inful/langpages/internal/foundation/errors"
)

// Page is one slice of an ordered sequence.
//
// Number is 1-based. Prev and Next hold the neighbouring page numbers, with 0
// meaning there is no such page.
type Page[T any] struct {
	Number int
	Total  int
	Items  []T
	Prev   int
	Next   int
}

// TotalPages returns ceil(count/size). It assumes size >= 1.
func TotalPages(count, size int) int {
	if count <= 0 {
		return 0
	}
	return (count + size - 1) / size
}

// Paginate splits items into pages of at most size elements.
//
// An empty input yields no pages. A size below 1 is a configuration error.
func Paginate[T any](items []T, size int) ([]Page[T], error) {
	if size < 1 {
		return nil, errors.ConfigError("page size must be at least 1").
			WithContext("per_page", size).
			Build()
	}

	total := TotalPages(len(items), size)
	pages := make([]Page[T], 0, total)
	for i := 1; i <= total; i++ {
		start := (i - 1) * size
		end := min(start+size, len(items))
		page := Page[T]{
			Number: i,
			Total:  total,
			Items:  items[start:end:end],
		}
		if i > 1 {
			page.Prev = i - 1
		}
		if i < total {
			page.Next = i + 1
		}
		pages = append(pages, page)
	}
	return pages, nil
}
