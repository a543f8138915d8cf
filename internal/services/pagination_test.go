package services

import (
	"testing"
)

func TestTotalPages(t *testing.T) {
	cases := []struct {
		total int64
		limit int
		want  int
	}{
		{23, 10, 3},
		{20, 10, 2},
		{21, 10, 3},
		{1, 10, 1},
		{0, 10, 0},
		{5, 5, 1},
		{6, 5, 2},
		{10, 0, 0}, // limit 非法时不除零
	}
	for _, tc := range cases {
		if got := TotalPages(tc.total, tc.limit); got != tc.want {
			t.Errorf("TotalPages(%d, %d) = %d, want %d", tc.total, tc.limit, got, tc.want)
		}
	}
}

func TestListParamsOffset(t *testing.T) {
	p := NewListParams()
	if p.Offset() != 0 {
		t.Errorf("default offset = %d, want 0", p.Offset())
	}

	p.Page = 3
	p.Limit = 10
	if p.Offset() != 20 {
		t.Errorf("page 3 limit 10 offset = %d, want 20", p.Offset())
	}
}

func TestNewListParamsDefaults(t *testing.T) {
	p := NewListParams()
	if p.Limit != 10 {
		t.Errorf("default limit = %d, want 10", p.Limit)
	}
	if p.Page != 1 {
		t.Errorf("default page = %d, want 1", p.Page)
	}
	if p.SortBy != SortByPoints {
		t.Errorf("default sortBy = %s, want %s", p.SortBy, SortByPoints)
	}
	if p.Order != OrderDesc {
		t.Errorf("default order = %s, want %s", p.Order, OrderDesc)
	}
}

func TestOrderClause(t *testing.T) {
	cases := []struct {
		sortBy string
		order  string
		want   string
	}{
		{SortByPoints, OrderDesc, "points DESC, id ASC"},
		{SortByPoints, OrderAsc, "points ASC, id ASC"},
		{SortByRecent, OrderDesc, "created_at DESC, id ASC"},
		{SortByRecent, OrderAsc, "created_at ASC, id ASC"},
	}
	for _, tc := range cases {
		p := NewListParams()
		p.SortBy = tc.sortBy
		p.Order = tc.order
		if got := p.OrderClause(); got != tc.want {
			t.Errorf("OrderClause(%s, %s) = %q, want %q", tc.sortBy, tc.order, got, tc.want)
		}
	}
}
