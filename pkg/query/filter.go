package query

import "strings"

// MatchesSearch reports whether any of the candidate values contains the
// search term, case-insensitively. A nil or empty search matches everything.
func MatchesSearch(search *string, values ...string) bool {
	if search == nil {
		return true
	}

	term := strings.ToLower(strings.TrimSpace(*search))
	if term == "" {
		return true
	}

	for _, v := range values {
		if strings.Contains(strings.ToLower(v), term) {
			return true
		}
	}
	return false
}

// Page returns the slice of items covered by offset and limit,
// clamped to the collection bounds.
func Page[T any](items []T, offset, limit int) []T {
	if offset < 0 {
		offset = 0
	}
	if offset >= len(items) {
		return []T{}
	}

	end := offset + limit
	if limit <= 0 || end > len(items) {
		end = len(items)
	}
	return items[offset:end]
}
