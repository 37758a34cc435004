package echoconsole

import (
	"math"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/nkminh14/uniconsole/core/dashboard"
)

type (
	card struct {
		Title string
		Desc  string
		Count string
		Href  string
	}

	// bar is one line of a bar chart; Percent is relative to the chart total.
	bar struct {
		Label   string
		Count   int
		Percent int
	}

	homeView struct {
		shell
		Cards            []card
		TuitionStatus    []bar
		StudentsPerClass []dashboard.ClassCount
		SubjectAverages  []dashboard.SubjectAverage
		Histogram        []bar
		Error            string
	}
)

func (s *server) home(ctx echo.Context) error {
	view := homeView{shell: s.newShell(ctx, "Trang chủ", "/")}

	sum, err := dashboard.Build(ctx.Request().Context(), s.deps.Services.DashboardSources())
	if err != nil {
		s.deps.Logger.Error("building dashboard", err, contextPerson(ctx))
		view.Error = "Không thể tải số liệu tổng quan."
	}
	view.Cards = homeCards(sum.Counts, err == nil)
	if err != nil {
		return ctx.Render(http.StatusOK, "home", view)
	}

	total := 0
	for _, st := range sum.TuitionStatus {
		total += st.Count
	}
	for _, st := range sum.TuitionStatus {
		view.TuitionStatus = append(view.TuitionStatus, bar{Label: st.Label, Count: st.Count, Percent: percent(st.Count, total)})
	}
	if sum.OtherStatuses > 0 {
		view.TuitionStatus = append(view.TuitionStatus, bar{Label: "Khác", Count: sum.OtherStatuses, Percent: percent(sum.OtherStatuses, total+sum.OtherStatuses)})
	}

	view.StudentsPerClass = sum.StudentsPerClass
	view.SubjectAverages = sum.SubjectAverages

	graded := 0
	for _, n := range sum.ScoreHistogram {
		graded += n
	}
	for score, n := range sum.ScoreHistogram {
		view.Histogram = append(view.Histogram, bar{Label: strconv.Itoa(score), Count: n, Percent: percent(n, graded)})
	}

	return ctx.Render(http.StatusOK, "home", view)
}

func homeCards(c dashboard.Counts, ok bool) []card {
	count := func(n int) string {
		if !ok {
			return "-"
		}
		return strconv.Itoa(n)
	}
	return []card{
		{Title: "Quản lý Sinh viên", Desc: "Thêm, sửa, xóa và xem thông tin sinh viên.", Count: count(c.Students), Href: "/students"},
		{Title: "Quản lý Giảng viên", Desc: "Quản lý thông tin giảng viên và phân công giảng dạy.", Count: count(c.Teachers), Href: "/teachers"},
		{Title: "Quản lý Lớp học", Desc: "Tạo lớp, xếp lịch học và phòng học.", Count: count(c.Classes), Href: "/classes"},
		{Title: "Quản lý Khoa", Desc: "Quản lý các khoa và thông tin liên hệ.", Count: count(c.Faculties), Href: "/faculties"},
		{Title: "Quản lý Môn học", Desc: "Quản lý danh sách môn học và số tín chỉ.", Count: count(c.Subjects), Href: "/subjects"},
		{Title: "Quản lý Điểm", Desc: "Nhập và theo dõi điểm của sinh viên.", Count: count(c.Grades), Href: "/grades"},
		{Title: "Quản lý Học phí", Desc: "Theo dõi tình trạng đóng học phí.", Count: count(c.Tuitions), Href: "/tuition"},
	}
}

func percent(n, total int) int {
	if total == 0 {
		return 0
	}
	return int(math.Round(float64(n) * 100 / float64(total)))
}
