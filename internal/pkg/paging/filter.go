package paging

import (
	"strings"

	"github.com/Masterminds/squirrel"
)

// Filter accumulates case-insensitive substring conditions for a search
// query. The same condition set must be applied to both the count query
// and the fetch query so reported totals stay consistent with page
// contents.
type Filter struct {
	conds squirrel.And
}

// NewFilter creates an empty filter, which matches every record.
func NewFilter() *Filter {
	return &Filter{}
}

// Contains adds a condition requiring column to contain text as a
// case-insensitive substring. Empty or blank text adds no condition.
// LIKE metacharacters in the user text are escaped, never interpreted.
func (f *Filter) Contains(column, text string) *Filter {
	text = strings.TrimSpace(text)
	if text == "" {
		return f
	}
	f.conds = append(f.conds, squirrel.ILike{column: "%" + escapeLike(text) + "%"})
	return f
}

// Empty reports whether no conditions were added.
func (f *Filter) Empty() bool {
	return len(f.conds) == 0
}

// Conditions returns the accumulated conditions for use in a WHERE
// clause. An empty squirrel.And renders as TRUE, matching all records.
func (f *Filter) Conditions() squirrel.And {
	return f.conds
}

// escapeLike escapes LIKE pattern metacharacters with a backslash,
// the default escape character in PostgreSQL.
func escapeLike(s string) string {
	r := strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)
	return r.Replace(s)
}
