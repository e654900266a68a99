// internal/catalog/filter.go
package catalog

import "strings"

// Filter returns the items whose title, author, category, genre or
// publisher contain query, compared case-insensitively. An empty or
// whitespace-only query returns the input unchanged, and the relative
// order of items is always preserved.
func Filter(items []Item, query string) []Item {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return items
	}

	out := make([]Item, 0, len(items))
	for _, it := range items {
		if matchesQuery(it, q) {
			out = append(out, it)
		}
	}
	return out
}

// matchesQuery reports whether the lower-cased query appears in any of
// the item's searchable fields. Genre and publisher only count when set.
func matchesQuery(it Item, q string) bool {
	for _, field := range []string{it.Title, it.Author, it.Category, it.Genre, it.Publisher} {
		if field != "" && strings.Contains(strings.ToLower(field), q) {
			return true
		}
	}
	return false
}
