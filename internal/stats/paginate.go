package stats

import "dota-dashboard/internal/constants"

type Page[T any] struct {
	Items      []T
	Page       int
	TotalPages int
	TotalItems int
}

// Paginate slices an ordered sequence into a 1-indexed fixed-size page.
// Out-of-range page numbers clamp silently; an empty input still yields one
// (empty) page so pagination controls stay stable.
func Paginate[T any](items []T, pageSize, page int) Page[T] {
	if pageSize <= 0 {
		pageSize = constants.DefaultPageSize
	}

	totalPages := (len(items) + pageSize - 1) / pageSize
	if totalPages < 1 {
		totalPages = 1
	}
	if page < 1 {
		page = 1
	}
	if page > totalPages {
		page = totalPages
	}

	start := (page - 1) * pageSize
	if start > len(items) {
		start = len(items)
	}
	end := start + pageSize
	if end > len(items) {
		end = len(items)
	}

	return Page[T]{
		Items:      items[start:end],
		Page:       page,
		TotalPages: totalPages,
		TotalItems: len(items),
	}
}
