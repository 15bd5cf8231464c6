package stats

import (
	"sort"
	"strings"
)

type Order int

const (
	Asc Order = iota
	Desc
)

// SortByNumber returns a copy of items stably ordered by the selected metric.
// Descending order is the exact reverse of the stable ascending order, so
// toggling direction is deterministic and reversible for equal keys.
func SortByNumber[T any](items []T, metric func(T) float64, order Order) []T {
	out := make([]T, len(items))
	copy(out, items)
	sort.SliceStable(out, func(i, j int) bool {
		return metric(out[i]) < metric(out[j])
	})
	if order == Desc {
		reverse(out)
	}
	return out
}

// SortByString is SortByNumber for string metrics; comparison is
// case-insensitive.
func SortByString[T any](items []T, metric func(T) string, order Order) []T {
	out := make([]T, len(items))
	copy(out, items)
	sort.SliceStable(out, func(i, j int) bool {
		return strings.ToLower(metric(out[i])) < strings.ToLower(metric(out[j]))
	})
	if order == Desc {
		reverse(out)
	}
	return out
}

func reverse[T any](s []T) {
	for i, j := 0, len(s)-1; i < j; i, j = i+1, j-1 {
		s[i], s[j] = s[j], s[i]
	}
}

// TopN returns at most n leading items without copying the backing array.
func TopN[T any](items []T, n int) []T {
	if n < 0 || n > len(items) {
		n = len(items)
	}
	return items[:n]
}
