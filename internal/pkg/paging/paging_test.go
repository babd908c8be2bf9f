package paging

import (
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func paramsForQuery(t *testing.T, rawQuery string) Params {
	t.Helper()
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest("GET", "/search?"+rawQuery, nil)
	return ParseParams(c)
}

func TestParseParamsDefaults(t *testing.T) {
	p := paramsForQuery(t, "")
	if p.Page != 1 || p.Limit != DefaultLimit {
		t.Fatalf("expected defaults page=1 limit=%d, got %+v", DefaultLimit, p)
	}
}

func TestParseParamsValid(t *testing.T) {
	p := paramsForQuery(t, "page=3&limit=20")
	if p.Page != 3 || p.Limit != 20 {
		t.Fatalf("unexpected params: %+v", p)
	}
}

func TestParseParamsRejectsZeroLimit(t *testing.T) {
	// A zero limit must never survive parsing, otherwise total-pages
	// math would divide by zero downstream.
	p := paramsForQuery(t, "page=1&limit=0")
	if p.Limit != DefaultLimit {
		t.Fatalf("limit=0 should fall back to default, got %d", p.Limit)
	}
}

func TestParseParamsRejectsGarbage(t *testing.T) {
	p := paramsForQuery(t, "page=abc&limit=-4")
	if p.Page != 1 || p.Limit != DefaultLimit {
		t.Fatalf("garbage params should fall back to defaults, got %+v", p)
	}
}

func TestParseParamsCapsLimit(t *testing.T) {
	p := paramsForQuery(t, "limit=5000")
	if p.Limit != DefaultLimit {
		t.Fatalf("oversized limit should fall back to default, got %d", p.Limit)
	}
}

func TestOffset(t *testing.T) {
	cases := []struct {
		page, limit int
		want        uint64
	}{
		{1, 5, 0},
		{2, 5, 5},
		{3, 10, 20},
		{7, 1, 6},
	}
	for _, tc := range cases {
		p := Params{Page: tc.page, Limit: tc.limit}
		if got := p.Offset(); got != tc.want {
			t.Fatalf("Offset(page=%d,limit=%d) = %d, want %d", tc.page, tc.limit, got, tc.want)
		}
	}
}

func TestTotalPages(t *testing.T) {
	cases := []struct {
		total int64
		limit int
		want  int
	}{
		{0, 5, 0},
		{1, 5, 1},
		{5, 5, 1},
		{6, 5, 2},
		{12, 5, 3},
		{100, 10, 10},
	}
	for _, tc := range cases {
		if got := TotalPages(tc.total, tc.limit); got != tc.want {
			t.Fatalf("TotalPages(%d, %d) = %d, want %d", tc.total, tc.limit, got, tc.want)
		}
	}
}

func TestTotalPagesZeroLimit(t *testing.T) {
	// Guard: even if a zero limit slips through, TotalPages must not panic.
	if got := TotalPages(12, 0); got != 3 {
		t.Fatalf("TotalPages(12, 0) with default limit fallback = %d, want 3", got)
	}
}

func TestNormalize(t *testing.T) {
	p := Params{Page: -2, Limit: 0}.Normalize()
	if p.Page != 1 || p.Limit != DefaultLimit {
		t.Fatalf("Normalize should repair invalid values, got %+v", p)
	}

	p = Params{Page: 4, Limit: 25}.Normalize()
	if p.Page != 4 || p.Limit != 25 {
		t.Fatalf("Normalize should keep valid values, got %+v", p)
	}
}

// TestPageMathConsistency checks the invariant that the number of rows a
// page can hold is min(limit, max(0, count-offset)) for the parameters
// the builder produces.
func TestPageMathConsistency(t *testing.T) {
	count := int64(12)
	limit := 5

	for page := 1; page <= 4; page++ {
		p := Params{Page: page, Limit: limit}
		offset := int64(p.Offset())

		expected := count - offset
		if expected < 0 {
			expected = 0
		}
		if expected > int64(limit) {
			expected = int64(limit)
		}

		// Page 1 and 2 are full, page 3 holds the remainder, page 4 is
		// past the end and must be empty rather than an error.
		switch page {
		case 1, 2:
			if expected != 5 {
				t.Fatalf("page %d expected 5 rows, got %d", page, expected)
			}
		case 3:
			if expected != 2 {
				t.Fatalf("page 3 expected 2 rows, got %d", expected)
			}
		case 4:
			if expected != 0 {
				t.Fatalf("page 4 expected 0 rows, got %d", expected)
			}
		}
	}

	if TotalPages(count, limit) != 3 {
		t.Fatalf("expected 3 total pages for count=12 limit=5")
	}
}
