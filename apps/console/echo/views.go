package echoconsole

import (
	"net/url"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/nkminh14/uniconsole/core/listing"
)

const (
	flashParam      = "flash"
	flashLevelParam = "level"

	levelSuccess = "success"
	levelError   = "error"
)

type section struct {
	Href   string
	Label  string
	Icon   string
	Active bool
}

var sections = []section{
	{Href: "/", Label: "Trang chủ", Icon: "🏠"},
	{Href: "/students", Label: "Sinh viên", Icon: "👨‍🎓"},
	{Href: "/teachers", Label: "Giảng viên", Icon: "👨‍🏫"},
	{Href: "/classes", Label: "Lớp học", Icon: "📚"},
	{Href: "/faculties", Label: "Khoa", Icon: "🏛️"},
	{Href: "/subjects", Label: "Môn học", Icon: "📖"},
	{Href: "/grades", Label: "Điểm số", Icon: "💯"},
	{Href: "/tuition", Label: "Học phí", Icon: "💰"},
}

// shell is the data every page hands to the layout.
type shell struct {
	AppName    string
	Title      string
	User       string
	Flash      string
	FlashLevel string
	Sections   []section
}

func (s *server) newShell(ctx echo.Context, title, href string) shell {
	secs := make([]section, len(sections))
	copy(secs, sections)
	for i := range secs {
		secs[i].Active = secs[i].Href == href
	}

	sh := shell{
		AppName:  s.deps.Conf.AppName,
		Title:    title,
		Sections: secs,
	}
	if claims, ok := contextClaims(ctx); ok {
		sh.User = claims.Username
	}
	if msg := ctx.QueryParam(flashParam); msg != "" {
		sh.Flash = msg
		sh.FlashLevel = levelSuccess
		if ctx.QueryParam(flashLevelParam) == levelError {
			sh.FlashLevel = levelError
		}
	}
	return sh
}

// withFlash appends a one-shot message to a redirect target.
func withFlash(target, msg, level string) string {
	v := url.Values{}
	v.Set(flashParam, msg)
	if level == levelError {
		v.Set(flashLevelParam, levelError)
	}
	return target + "?" + v.Encode()
}

type (
	columnView struct {
		Title    string
		Sortable bool
		Href     string
		Arrow    string
	}

	rowView struct {
		ID         int
		Cells      []string
		EditHref   string
		DeleteHref string
		Confirm    string
	}

	pageLink struct {
		Number  int
		Href    string
		Current bool
	}

	listView struct {
		shell
		Heading     string
		Slug        string
		Noun        string
		SearchTypes []listing.SearchType
		Query       listing.Query
		Columns     []columnView
		Rows        []rowView
		ColSpan     int
		Pages       []pageLink
		Prev        string
		Next        string
		Total       int
		Error       string
		ExportHref  string
	}

	field struct {
		Name        string
		Label       string
		Type        string // text, number, date, time, email, tel, select, textarea
		Value       string
		Placeholder string
		Options     []option
		ReadOnly    bool
		Reload      bool // changing the value re-renders the form
	}

	option struct {
		Value string
		Label string
	}

	formView struct {
		shell
		Heading string
		Action  string
		Cancel  string
		Fields  []field
		Errors  map[string]string
		Error   string
		Warning string
	}

	loginView struct {
		shell
		Username string
		Next     string
		Errors   map[string]string
		Error    string
	}

	errorView struct {
		shell
		Code    int
		Message string
	}
)

// Query string keys of a list page.
const (
	searchParam = "q"
	byParam     = "by"
	sortParam   = "sort"
	orderParam  = "order"
	pageParam   = "page"
)

func parseQuery(ctx echo.Context) listing.Query {
	page, _ := strconv.Atoi(ctx.QueryParam(pageParam))
	return listing.Query{
		Search:   ctx.QueryParam(searchParam),
		SearchBy: ctx.QueryParam(byParam),
		SortBy:   ctx.QueryParam(sortParam),
		Desc:     ctx.QueryParam(orderParam) == "desc",
		Page:     page,
	}
}

// queryHref links to the list page showing q.
func queryHref(base string, q listing.Query) string {
	v := url.Values{}
	if q.Search != "" {
		v.Set(searchParam, q.Search)
	}
	if q.SearchBy != "" {
		v.Set(byParam, q.SearchBy)
	}
	if q.SortBy != "" {
		v.Set(sortParam, q.SortBy)
		if q.Desc {
			v.Set(orderParam, "desc")
		} else {
			v.Set(orderParam, "asc")
		}
	}
	if q.Page > 1 {
		v.Set(pageParam, strconv.Itoa(q.Page))
	}
	if len(v) == 0 {
		return base
	}
	return base + "?" + v.Encode()
}

func columnViews(base string, columns []listing.Column, q listing.Query) []columnView {
	views := make([]columnView, 0, len(columns))
	for _, col := range columns {
		cv := columnView{Title: col.Title, Sortable: col.Sortable}
		if col.Sortable {
			cv.Href = queryHref(base, q.Toggle(col.Key))
			cv.Arrow = "↑"
			if q.SortBy == col.Key && q.Desc {
				cv.Arrow = "↓"
			}
		}
		views = append(views, cv)
	}
	return views
}

func pageLinks[T any](base string, q listing.Query, page listing.Page[T]) (links []pageLink, prev, next string) {
	for _, n := range page.Numbers() {
		pq := q
		pq.Page = n
		links = append(links, pageLink{Number: n, Href: queryHref(base, pq), Current: n == page.Number})
	}
	if page.HasPrev() {
		pq := q
		pq.Page = page.Number - 1
		prev = queryHref(base, pq)
	}
	if page.HasNext() {
		pq := q
		pq.Page = page.Number + 1
		next = queryHref(base, pq)
	}
	return links, prev, next
}
