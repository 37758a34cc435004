// Package listing derives the filtered, sorted and paginated view of an in-memory collection.
package listing

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

const DefaultPageSize = 10

// Record is anything whose attributes can be looked up by column key.
type Record interface {
	Field(key string) interface{}
}

// Column describes one table column.
type Column struct {
	Title    string
	Key      string
	Sortable bool
}

// SearchType is a user-selectable attribute a free-text query filters against.
type SearchType struct {
	Key   string
	Label string
}

type Query struct {
	Search   string
	SearchBy string
	SortBy   string
	Desc     bool
	Page     int
	PageSize int
}

// Clean trims the search text and drops a sort key or search type the listing does not offer.
func (q *Query) Clean(columns []Column, searchTypes []SearchType) {
	q.Search = strings.TrimSpace(q.Search)

	if q.SortBy != "" && !sortable(columns, q.SortBy) {
		q.SortBy = ""
		q.Desc = false
	}

	if !hasSearchType(searchTypes, q.SearchBy) {
		q.SearchBy = ""
		if len(searchTypes) > 0 {
			q.SearchBy = searchTypes[0].Key
		}
	}

	if q.PageSize <= 0 {
		q.PageSize = DefaultPageSize
	}
	if q.Page < 1 {
		q.Page = 1
	}
}

// Toggle returns the query sorted by key: descending when key is already sorted ascending, ascending otherwise.
// Toggling resets to the first page.
func (q Query) Toggle(key string) Query {
	if q.SortBy == key && !q.Desc {
		q.Desc = true
	} else {
		q.SortBy = key
		q.Desc = false
	}
	q.Page = 1
	return q
}

func sortable(columns []Column, key string) bool {
	for _, col := range columns {
		if col.Key == key {
			return col.Sortable
		}
	}
	return false
}

func hasSearchType(searchTypes []SearchType, key string) bool {
	for _, st := range searchTypes {
		if st.Key == key {
			return true
		}
	}
	return false
}

// Page is one slice of a filtered and sorted collection.
type Page[T any] struct {
	Items    []T
	Number   int // 1-based
	Size     int
	Total    int // filtered records
	NumPages int
}

// Numbers enumerates every page number.
func (p Page[T]) Numbers() []int {
	nums := make([]int, p.NumPages)
	for i := range nums {
		nums[i] = i + 1
	}
	return nums
}

func (p Page[T]) HasPrev() bool { return p.Number > 1 }
func (p Page[T]) HasNext() bool { return p.Number < p.NumPages }

// Apply filters, sorts then paginates records according to q.
// records is not modified.
func Apply[T Record](records []T, q Query) Page[T] {
	view := Filter(records, q.SearchBy, q.Search)
	if q.SortBy != "" {
		Sort(view, q.SortBy, q.Desc)
	}
	return Paginate(view, q.Page, q.PageSize)
}

// Filter keeps the records whose `by` attribute contains query, ignoring case.
// An empty query keeps everything. The result is always a new slice.
func Filter[T Record](records []T, by, query string) []T {
	out := make([]T, 0, len(records))
	needle := strings.ToLower(strings.TrimSpace(query))
	for _, rec := range records {
		if needle == "" || strings.Contains(strings.ToLower(Text(rec.Field(by))), needle) {
			out = append(out, rec)
		}
	}
	return out
}

// Sort orders records in place by their `key` attribute. Equal keys keep their relative order.
func Sort[T Record](records []T, key string, desc bool) {
	c := newComparer()
	sort.SliceStable(records, func(i, j int) bool {
		cmp := c.compare(records[i].Field(key), records[j].Field(key))
		if desc {
			return cmp > 0
		}
		return cmp < 0
	})
}

// Paginate returns the requested 1-based page; out of range page numbers are clamped.
func Paginate[T any](records []T, page, size int) Page[T] {
	if size <= 0 {
		size = DefaultPageSize
	}
	total := len(records)
	numPages := (total + size - 1) / size

	if page > numPages {
		page = numPages
	}
	if page < 1 {
		page = 1
	}

	start := (page - 1) * size
	end := start + size
	if start > total {
		start = total
	}
	if end > total {
		end = total
	}
	return Page[T]{
		Items:    records[start:end],
		Number:   page,
		Size:     size,
		Total:    total,
		NumPages: numPages,
	}
}

// Text renders an attribute the way it is searched and displayed.
func Text(v interface{}) string {
	switch val := v.(type) {
	case nil:
		return ""
	case string:
		return val
	case float64:
		return strconv.FormatFloat(val, 'f', -1, 64)
	case *float64:
		if val == nil {
			return ""
		}
		return strconv.FormatFloat(*val, 'f', -1, 64)
	case *int:
		if val == nil {
			return ""
		}
		return strconv.Itoa(*val)
	default:
		return fmt.Sprint(val)
	}
}

// Value unwraps optional numbers so spreadsheets keep them numeric; nil stays blank.
func Value(v interface{}) interface{} {
	switch val := v.(type) {
	case *float64:
		if val == nil {
			return nil
		}
		return *val
	case *int:
		if val == nil {
			return nil
		}
		return *val
	}
	return v
}

type comparer struct {
	coll *collate.Collator
}

// newComparer is not safe for concurrent use; build one per sort.
func newComparer() *comparer {
	return &comparer{coll: collate.New(language.Vietnamese, collate.IgnoreCase)}
}

// compare dispatches on the runtime type: numbers by value, strings by Vietnamese collation.
// nil sorts first; mixed types fall back to comparing their text.
func (c *comparer) compare(a, b interface{}) int {
	fa, aNum, aNil := number(a)
	fb, bNum, bNil := number(b)
	switch {
	case aNil && bNil:
		return 0
	case aNil:
		return -1
	case bNil:
		return 1
	case aNum && bNum:
		switch d := fa - fb; {
		case d < 0:
			return -1
		case d > 0:
			return 1
		}
		return 0
	}
	return c.coll.CompareString(Text(a), Text(b))
}

func number(v interface{}) (f float64, isNum, isNil bool) {
	switch val := v.(type) {
	case nil:
		return 0, false, true
	case int:
		return float64(val), true, false
	case int64:
		return float64(val), true, false
	case float64:
		return val, true, false
	case *float64:
		if val == nil {
			return 0, false, true
		}
		return *val, true, false
	case *int:
		if val == nil {
			return 0, false, true
		}
		return float64(*val), true, false
	}
	return 0, false, false
}
