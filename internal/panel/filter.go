package panel

import (
	"strings"

	"github.com/lithammer/fuzzysearch/fuzzy"
)

// MatchFunc decides whether a record's search fields match a query.
// The query passed in is already trimmed and non-empty.
type MatchFunc func(fields []string, query string) bool

// SubstringMatch is the default matcher: a record matches when any
// field contains the query as a case-insensitive substring.
func SubstringMatch(fields []string, query string) bool {
	lower := strings.ToLower(query)
	for _, field := range fields {
		if field == "" {
			continue
		}
		if strings.Contains(strings.ToLower(field), lower) {
			return true
		}
	}
	return false
}

// FuzzyMatch matches with unicode-normalized case-folded fuzzy
// matching. Panels opt into it through settings; the substring matcher
// remains the default.
func FuzzyMatch(fields []string, query string) bool {
	for _, field := range fields {
		if field == "" {
			continue
		}
		if fuzzy.MatchNormalizedFold(query, field) {
			return true
		}
	}
	return false
}

// Filter returns the items matching the query with the default
// substring matcher.
func Filter[T Record](items []T, query string) []T {
	return FilterFunc(items, query, SubstringMatch)
}

// FilterFunc returns the items matching the query, preserving input
// order. An empty or whitespace-only query returns the input slice
// itself. It never errors: records with no usable fields simply don't
// match.
func FilterFunc[T Record](items []T, query string, match MatchFunc) []T {
	trimmed := strings.TrimSpace(query)
	if trimmed == "" {
		return items
	}
	if match == nil {
		match = SubstringMatch
	}
	filtered := make([]T, 0, len(items))
	for _, item := range items {
		if match(item.SearchFields(), trimmed) {
			filtered = append(filtered, item)
		}
	}
	return filtered
}

// Sectioner assigns an item to one of a panel's declared sections.
type Sectioner[T Record] func(T) int

// VisibleSections derives the per-section visible lists: items are
// filtered by the current query, then partitioned by the sectioner.
// Items mapped outside the declared range are dropped. This is a
// presentation-time computation; the reducer never filters.
func VisibleSections[T Record](s State[T], bySection Sectioner[T], match MatchFunc) [][]T {
	visible := make([][]T, len(s.Sections))
	for _, item := range FilterFunc(s.Items, s.Query, match) {
		idx := 0
		if bySection != nil {
			idx = bySection(item)
		}
		if idx < 0 || idx >= len(visible) {
			continue
		}
		visible[idx] = append(visible[idx], item)
	}
	return visible
}
