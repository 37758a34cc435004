package main

import (
	"context"
	"sort"
	"strings"

	"github.com/pmezard/go-difflib/difflib"

	"github.com/nkminh14/uniconsole/core"
	"github.com/nkminh14/uniconsole/core/listing"
	"github.com/nkminh14/uniconsole/core/resource"
	"github.com/nkminh14/uniconsole/storage"
)

// suggestCutoff is the minimum similarity for a "did you mean" hint.
const suggestCutoff = 0.6

// table is an entity collection seen as rows of text.
type table struct {
	slug        string
	title       string
	noun        string
	columns     []listing.Column
	searchTypes []listing.SearchType

	page   func(ctx context.Context, q listing.Query) (listing.Page[[]string], error)
	sheet  func(ctx context.Context, q listing.Query) (core.Sheet, error)
	exists func(ctx context.Context, id int) error
	delete func(ctx context.Context, id int) error
}

func newTable[T resource.Entity](slug, title string, svc *resource.Service[T]) table {
	return table{
		slug:        slug,
		title:       title,
		noun:        svc.Name(),
		columns:     svc.Columns(),
		searchTypes: svc.SearchTypes(),
		page: func(ctx context.Context, q listing.Query) (listing.Page[[]string], error) {
			page, err := svc.Query(ctx, svc.CleanQuery(q))
			if err != nil {
				return listing.Page[[]string]{}, err
			}
			rows := make([][]string, 0, len(page.Items))
			for _, rec := range page.Items {
				row := make([]string, 0, len(svc.Columns()))
				for _, col := range svc.Columns() {
					row = append(row, listing.Text(rec.Field(col.Key)))
				}
				rows = append(rows, row)
			}
			return listing.Page[[]string]{
				Items:    rows,
				Number:   page.Number,
				Size:     page.Size,
				Total:    page.Total,
				NumPages: page.NumPages,
			}, nil
		},
		sheet: func(ctx context.Context, q listing.Query) (core.Sheet, error) {
			recs, err := svc.View(ctx, q)
			if err != nil {
				return core.Sheet{}, err
			}
			sheet := core.Sheet{Name: title}
			for _, col := range svc.Columns() {
				sheet.Headers = append(sheet.Headers, col.Title)
			}
			for _, rec := range recs {
				row := make([]interface{}, 0, len(svc.Columns()))
				for _, col := range svc.Columns() {
					row = append(row, listing.Value(rec.Field(col.Key)))
				}
				sheet.Rows = append(sheet.Rows, row)
			}
			return sheet, nil
		},
		exists: func(ctx context.Context, id int) error {
			_, err := svc.Get(ctx, id)
			return err
		},
		delete: svc.Delete,
	}
}

// newTables lists the collections the CLI manages, in menu order.
func newTables(svcs storage.Services) []table {
	return []table{
		newTable("students", "Sinh viên", svcs.Students),
		newTable("teachers", "Giảng viên", svcs.Teachers.Service),
		newTable("classes", "Lớp học", svcs.Classes),
		newTable("faculties", "Khoa", svcs.Faculties),
		newTable("subjects", "Môn học", svcs.Subjects),
		newTable("grades", "Điểm số", svcs.Grades),
		newTable("tuition", "Học phí", svcs.Tuitions),
	}
}

func slugs(tables []table) []string {
	names := make([]string, 0, len(tables))
	for _, tbl := range tables {
		names = append(names, tbl.slug)
	}
	return names
}

// suggest returns the known name closest to name, or "" when none is close enough.
func suggest(name string, known []string) string {
	name = strings.ToLower(strings.TrimSpace(name))
	type scored struct {
		name  string
		ratio float64
	}
	var candidates []scored
	for _, k := range known {
		m := difflib.NewMatcher(strings.Split(name, ""), strings.Split(k, ""))
		if r := m.Ratio(); r >= suggestCutoff {
			candidates = append(candidates, scored{name: k, ratio: r})
		}
	}
	if len(candidates) == 0 {
		return ""
	}
	sort.SliceStable(candidates, func(i, j int) bool { return candidates[i].ratio > candidates[j].ratio })
	return candidates[0].name
}
