package handlers

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"linknest/internal/services"

	"github.com/gin-gonic/gin"
)

func paramsForQuery(t *testing.T, query string) services.ListParams {
	t.Helper()
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/api/posts?"+query, nil)
	return ParseListParams(c)
}

func TestParseListParamsDefaults(t *testing.T) {
	p := paramsForQuery(t, "")
	if p.Limit != 10 || p.Page != 1 {
		t.Errorf("defaults = limit %d page %d, want 10/1", p.Limit, p.Page)
	}
	if p.SortBy != services.SortByPoints || p.Order != services.OrderDesc {
		t.Errorf("defaults = %s %s, want points desc", p.SortBy, p.Order)
	}
	if p.IncludeChildren {
		t.Error("includeChildren default should be false")
	}
}

func TestParseListParamsValues(t *testing.T) {
	p := paramsForQuery(t, "limit=5&page=3&sortBy=recent&order=asc&author=alice&site=https%3A%2F%2Fexample.com&includeChildren=true")
	if p.Limit != 5 || p.Page != 3 {
		t.Errorf("limit/page = %d/%d, want 5/3", p.Limit, p.Page)
	}
	if p.SortBy != services.SortByRecent || p.Order != services.OrderAsc {
		t.Errorf("sort = %s %s, want recent asc", p.SortBy, p.Order)
	}
	if p.Author != "alice" || p.Site != "https://example.com" {
		t.Errorf("filters = %q %q", p.Author, p.Site)
	}
	if !p.IncludeChildren {
		t.Error("includeChildren should be true")
	}
}

func TestParseListParamsRejectsInvalid(t *testing.T) {
	// 非法值一律回落默认
	p := paramsForQuery(t, "limit=0&page=-2&sortBy=bogus&order=sideways")
	if p.Limit != 10 || p.Page != 1 {
		t.Errorf("invalid limit/page = %d/%d, want defaults 10/1", p.Limit, p.Page)
	}
	if p.SortBy != services.SortByPoints || p.Order != services.OrderDesc {
		t.Errorf("invalid sort = %s %s, want defaults points desc", p.SortBy, p.Order)
	}
}
