package paging

import (
	"math"
	"strconv"

	"github.com/gin-gonic/gin"
)

const (
	DefaultLimit = 5
	MaxLimit     = 100
	DefaultPage  = 1 // pages are 1-based
)

// Params holds normalized pagination parameters.
type Params struct {
	Page  int
	Limit int
}

// ParseParams extracts and validates page/limit query parameters.
// Invalid or out-of-range values fall back to the defaults, so a zero
// limit can never reach the total-pages math.
func ParseParams(c *gin.Context) Params {
	page, err := strconv.Atoi(c.DefaultQuery("page", "1"))
	if err != nil || page < 1 {
		page = DefaultPage
	}

	limit, err := strconv.Atoi(c.DefaultQuery("limit", strconv.Itoa(DefaultLimit)))
	if err != nil || limit < 1 || limit > MaxLimit {
		limit = DefaultLimit
	}

	return Params{Page: page, Limit: limit}
}

// Normalize returns a copy with out-of-range values replaced by defaults.
func (p Params) Normalize() Params {
	if p.Page < 1 {
		p.Page = DefaultPage
	}
	if p.Limit < 1 || p.Limit > MaxLimit {
		p.Limit = DefaultLimit
	}
	return p
}

// Offset converts the 1-based page number to a row offset.
func (p Params) Offset() uint64 {
	return uint64((p.Page - 1) * p.Limit)
}

// TotalPages computes ceil(totalItems / limit).
func TotalPages(totalItems int64, limit int) int {
	if limit < 1 {
		limit = DefaultLimit
	}
	if totalItems <= 0 {
		return 0
	}
	return int(math.Ceil(float64(totalItems) / float64(limit)))
}
