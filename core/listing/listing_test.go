package listing

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

type person struct {
	ID    int
	Name  string
	Code  string
	Score *float64
}

func (p person) Field(key string) interface{} {
	switch key {
	case "id":
		return p.ID
	case "name":
		return p.Name
	case "code":
		return p.Code
	case "score":
		return p.Score
	}
	return nil
}

func score(f float64) *float64 { return &f }

func people(n int) []person {
	out := make([]person, n)
	for i := range out {
		out[i] = person{ID: i + 1, Name: fmt.Sprintf("Người %02d", i+1), Code: fmt.Sprintf("SV%03d", i+1)}
	}
	return out
}

func names(ps []person) []string {
	out := make([]string, len(ps))
	for i, p := range ps {
		out[i] = p.Name
	}
	return out
}

func TestPaginate(t *testing.T) {
	tests := []struct {
		name         string
		total        int
		page         int
		wantNumPages int
		wantNumber   int
		wantLen      int
	}{
		{name: "empty", total: 0, page: 1, wantNumPages: 0, wantNumber: 1, wantLen: 0},
		{name: "one short page", total: 3, page: 1, wantNumPages: 1, wantNumber: 1, wantLen: 3},
		{name: "exact pages", total: 20, page: 2, wantNumPages: 2, wantNumber: 2, wantLen: 10},
		{name: "last partial page", total: 23, page: 3, wantNumPages: 3, wantNumber: 3, wantLen: 3},
		{name: "page past the end is clamped", total: 23, page: 9, wantNumPages: 3, wantNumber: 3, wantLen: 3},
		{name: "page zero is clamped", total: 23, page: 0, wantNumPages: 3, wantNumber: 1, wantLen: 10},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := Paginate(people(tt.total), tt.page, 10)
			assert.Equal(t, tt.wantNumPages, p.NumPages)
			assert.Equal(t, tt.wantNumber, p.Number)
			assert.Len(t, p.Items, tt.wantLen)
			assert.Equal(t, tt.total, p.Total)
		})
	}
}

func TestPaginate_pagesCoverListOnce(t *testing.T) {
	for _, n := range []int{0, 1, 9, 10, 11, 57, 100} {
		records := people(n)
		first := Paginate(records, 1, 10)
		assert.Equal(t, (n+9)/10, first.NumPages, "n=%d", n)

		var all []person
		for _, num := range first.Numbers() {
			all = append(all, Paginate(records, num, 10).Items...)
		}
		if n == 0 {
			assert.Empty(t, all)
			continue
		}
		assert.Equal(t, records, all, "n=%d", n)
	}
}

func TestFilter(t *testing.T) {
	records := []person{
		{ID: 1, Name: "Nguyễn Văn An", Code: "SV001"},
		{ID: 2, Name: "Trần Thị Bình", Code: "SV002"},
		{ID: 3, Name: "Lê Văn Cường", Code: "GV010"},
	}
	tests := []struct {
		name  string
		by    string
		query string
		want  []int
	}{
		{name: "empty query keeps all", by: "name", query: "", want: []int{1, 2, 3}},
		{name: "case insensitive", by: "name", query: "VĂN", want: []int{1, 3}},
		{name: "substring", by: "code", query: "sv00", want: []int{1, 2}},
		{name: "numeric field", by: "id", query: "2", want: []int{2}},
		{name: "no match", by: "name", query: "xyz", want: []int{}},
		{name: "unknown field matches nothing", by: "nope", query: "a", want: []int{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Filter(records, tt.by, tt.query)
			ids := make([]int, 0, len(got))
			for _, p := range got {
				ids = append(ids, p.ID)
			}
			assert.Equal(t, tt.want, ids)
		})
	}
}

func TestSort(t *testing.T) {
	t.Run("strings use vietnamese collation", func(t *testing.T) {
		records := []person{{Name: "Đức"}, {Name: "Dung"}, {Name: "an"}, {Name: "Bình"}}
		Sort(records, "name", false)
		assert.Equal(t, []string{"an", "Bình", "Dung", "Đức"}, names(records))

		Sort(records, "name", true)
		assert.Equal(t, []string{"Đức", "Dung", "Bình", "an"}, names(records))
	})

	t.Run("numbers compare by value", func(t *testing.T) {
		records := []person{{ID: 10}, {ID: 2}, {ID: 33}}
		Sort(records, "id", false)
		assert.Equal(t, []int{2, 10, 33}, []int{records[0].ID, records[1].ID, records[2].ID})
	})

	t.Run("nil first and stable", func(t *testing.T) {
		records := []person{
			{ID: 1, Score: score(7)},
			{ID: 2},
			{ID: 3, Score: score(5)},
			{ID: 4, Score: score(7)},
		}
		Sort(records, "score", false)
		assert.Equal(t, []int{2, 3, 1, 4}, []int{records[0].ID, records[1].ID, records[2].ID, records[3].ID})
	})
}

func TestQuery_Clean(t *testing.T) {
	columns := []Column{{Title: "ID", Key: "id"}, {Title: "Tên", Key: "name", Sortable: true}}
	searchTypes := []SearchType{{Key: "name", Label: "Tên"}, {Key: "code", Label: "Mã"}}

	q := Query{Search: "  an ", SearchBy: "phone", SortBy: "id", Desc: true}
	q.Clean(columns, searchTypes)
	assert.Equal(t, Query{Search: "an", SearchBy: "name", Page: 1, PageSize: DefaultPageSize}, q)

	q = Query{SearchBy: "code", SortBy: "name", Desc: true, Page: 3, PageSize: 5}
	q.Clean(columns, searchTypes)
	assert.Equal(t, Query{SearchBy: "code", SortBy: "name", Desc: true, Page: 3, PageSize: 5}, q)
}

func TestQuery_Toggle(t *testing.T) {
	q := Query{Page: 4}
	q = q.Toggle("name")
	assert.Equal(t, "name", q.SortBy)
	assert.False(t, q.Desc)
	assert.Equal(t, 1, q.Page)

	q = q.Toggle("name")
	assert.True(t, q.Desc)

	q = q.Toggle("name")
	assert.False(t, q.Desc)

	q = q.Toggle("name").Toggle("code")
	assert.Equal(t, "code", q.SortBy)
	assert.False(t, q.Desc)
}

func TestApply(t *testing.T) {
	records := people(25)
	records[4].Name = "Zeta"

	p := Apply(records, Query{Search: "người", SearchBy: "name", SortBy: "name", Desc: true, Page: 1, PageSize: 10})
	assert.Equal(t, 24, p.Total)
	assert.Equal(t, 3, p.NumPages)
	assert.Equal(t, "Người 25", p.Items[0].Name)
	assert.Equal(t, "Zeta", records[4].Name, "input must not be reordered")
	assert.Equal(t, 1, records[0].ID)
}

func TestText(t *testing.T) {
	seven := 7
	var noScore *float64

	tests := []struct {
		in   interface{}
		want string
	}{
		{in: nil, want: ""},
		{in: "SV001", want: "SV001"},
		{in: 12500000.0, want: "12500000"},
		{in: 9800000.5, want: "9800000.5"},
		{in: score(8.25), want: "8.25"},
		{in: noScore, want: ""},
		{in: &seven, want: "7"},
		{in: 3, want: "3"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Text(tt.in), "%#v", tt.in)
	}
}

func TestValue(t *testing.T) {
	seven := 7
	var noScore *float64
	var noCount *int

	assert.Equal(t, 8.25, Value(score(8.25)))
	assert.Equal(t, 7, Value(&seven))
	assert.Nil(t, Value(noScore))
	assert.Nil(t, Value(noCount))
	assert.Equal(t, "SV001", Value("SV001"))
}
