package query_test

import (
	"strings"
	"testing"

	"github.com/reviewlens/reviewlens/pkg/query"
)

type item struct {
	Name  string
	Score float64
}

func compareItems(field string, a, b item) int {
	switch field {
	case "name":
		return strings.Compare(a.Name, b.Name)
	case "score":
		switch {
		case a.Score < b.Score:
			return -1
		case a.Score > b.Score:
			return 1
		default:
			return 0
		}
	default:
		return 0
	}
}

func TestParseSortFields(t *testing.T) {
	fields := query.ParseSortFields("name,-score")

	if len(fields) != 2 {
		t.Fatalf("len = %d, want 2", len(fields))
	}
	if fields[0] != (query.SortField{Field: "name"}) {
		t.Errorf("fields[0] = %+v", fields[0])
	}
	if fields[1] != (query.SortField{Field: "score", Descending: true}) {
		t.Errorf("fields[1] = %+v", fields[1])
	}

	if got := query.ParseSortFields(""); len(got) != 0 {
		t.Errorf("empty input = %+v, want none", got)
	}
}

func TestSortMultipleFields(t *testing.T) {
	items := []item{
		{"b", 50},
		{"a", 90},
		{"a", 30},
		{"c", 70},
	}

	query.Sort(items, query.ParseSortFields("name,-score"), compareItems)

	want := []item{
		{"a", 90},
		{"a", 30},
		{"b", 50},
		{"c", 70},
	}
	for i := range want {
		if items[i] != want[i] {
			t.Errorf("items[%d] = %+v, want %+v", i, items[i], want[i])
		}
	}
}

func TestSortStable(t *testing.T) {
	items := []item{
		{"first", 10},
		{"second", 10},
		{"third", 10},
	}

	query.Sort(items, query.ParseSortFields("score"), compareItems)

	if items[0].Name != "first" || items[2].Name != "third" {
		t.Errorf("equal keys reordered: %+v", items)
	}
}

func TestMatchesSearch(t *testing.T) {
	term := "watch"

	if !query.MatchesSearch(&term, "Smartwatch Series X", "review text") {
		t.Error("should match substring ignoring case")
	}
	if query.MatchesSearch(&term, "Quantum Laptop Pro") {
		t.Error("should not match unrelated values")
	}
	if !query.MatchesSearch(nil, "anything") {
		t.Error("nil search matches everything")
	}
}

func TestPage(t *testing.T) {
	items := []int{1, 2, 3, 4, 5}

	tests := []struct {
		name   string
		offset int
		limit  int
		want   []int
	}{
		{"first page", 0, 2, []int{1, 2}},
		{"middle page", 2, 2, []int{3, 4}},
		{"partial last page", 4, 2, []int{5}},
		{"offset past end", 10, 2, nil},
		{"negative offset", -1, 2, []int{1, 2}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := query.Page(items, tt.offset, tt.limit)
			if len(got) != len(tt.want) {
				t.Fatalf("got %v, want %v", got, tt.want)
			}
			for i := range tt.want {
				if got[i] != tt.want[i] {
					t.Errorf("got %v, want %v", got, tt.want)
				}
			}
		})
	}
}
