package utils

import (
	"net/http/httptest"
	"testing"
)

func TestParseQueryOptions(t *testing.T) {
	cases := []struct {
		url    string
		page   int
		limit  int
		search string
	}{
		{"/api/trips", 1, 10, ""},
		{"/api/trips?page=3&limit=5", 3, 5, ""},
		{"/api/trips?page=0&limit=-2", 1, 10, ""},
		{"/api/trips?page=abc&limit=xyz", 1, 10, ""},
		{"/api/trips?search=bali", 1, 10, "bali"},
	}
	for _, c := range cases {
		req := httptest.NewRequest("GET", c.url, nil)
		opts := ParseQueryOptions(req)
		if opts.Page != c.page || opts.Limit != c.limit || opts.Search != c.search {
			t.Fatalf("%s: got %+v", c.url, opts)
		}
	}
}

func TestSkip(t *testing.T) {
	if got := (QueryOptions{Page: 1, Limit: 10}).Skip(); got != 0 {
		t.Fatalf("page 1: expected skip 0, got %d", got)
	}
	if got := (QueryOptions{Page: 4, Limit: 10}).Skip(); got != 30 {
		t.Fatalf("page 4: expected skip 30, got %d", got)
	}
}

func TestTotalPages(t *testing.T) {
	cases := []struct {
		total int64
		limit int
		want  int64
	}{
		{0, 10, 0},
		{1, 10, 1},
		{10, 10, 1},
		{11, 10, 2},
		{25, 10, 3},
		{5, 0, 0},
	}
	for _, c := range cases {
		if got := TotalPages(c.total, c.limit); got != c.want {
			t.Fatalf("TotalPages(%d, %d): expected %d, got %d", c.total, c.limit, c.want, got)
		}
	}
}
