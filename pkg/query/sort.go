// Package query provides sort, search, and paging helpers for in-memory
// record collections.
package query

import (
	"sort"
	"strings"
)

// SortField identifies a field to order by and its direction.
type SortField struct {
	Field      string `json:"field"`
	Descending bool   `json:"descending"`
}

// ParseSortFields parses a comma-separated sort expression such as
// "product,-analyzed_at" into sort fields. A leading '-' marks descending.
func ParseSortFields(s string) []SortField {
	if strings.TrimSpace(s) == "" {
		return nil
	}

	var fields []SortField
	for _, part := range strings.Split(s, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}

		field := SortField{Field: part}
		if strings.HasPrefix(part, "-") {
			field.Field = part[1:]
			field.Descending = true
		}

		if field.Field != "" {
			fields = append(fields, field)
		}
	}
	return fields
}

// Comparator maps a sort field name to a three-way comparison for T.
// Unknown field names should return 0 so they are ignored.
type Comparator[T any] func(field string, a, b T) int

// Sort stably orders items by the given fields in priority order,
// using cmp to resolve each field.
func Sort[T any](items []T, fields []SortField, cmp Comparator[T]) {
	if len(fields) == 0 {
		return
	}

	sort.SliceStable(items, func(i, j int) bool {
		for _, f := range fields {
			c := cmp(f.Field, items[i], items[j])
			if c == 0 {
				continue
			}
			if f.Descending {
				return c > 0
			}
			return c < 0
		}
		return false
	})
}
