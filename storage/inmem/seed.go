package inmem

import (
	"context"

	"github.com/nkminh14/uniconsole/core/class"
	"github.com/nkminh14/uniconsole/core/faculty"
	"github.com/nkminh14/uniconsole/core/grade"
	"github.com/nkminh14/uniconsole/core/student"
	"github.com/nkminh14/uniconsole/core/subject"
	"github.com/nkminh14/uniconsole/core/teacher"
	"github.com/nkminh14/uniconsole/core/tuition"
)

func f64(f float64) *float64 { return &f }

// Seed fills db with a small demo university. Joined tables come first so read-only fields resolve.
func Seed(db *DB) {
	ctx := context.Background()
	must := func(_ interface{}, err error) {
		if err != nil {
			panic(err)
		}
	}

	for _, f := range []faculty.Faculty{
		{FacultyName: "Công nghệ thông tin", Dean: "PGS.TS Nguyễn Hải", Phone: "0243555001", Email: "cntt@uni.edu.vn", Address: "Nhà A1", Description: "Khoa CNTT"},
		{FacultyName: "Kinh tế", Dean: "TS Trần Mai", Phone: "0243555002", Email: "kinhte@uni.edu.vn", Address: "Nhà B2"},
		{FacultyName: "Ngoại ngữ", Dean: "ThS Lê Hương", Phone: "0243555003", Email: "nn@uni.edu.vn", Address: "Nhà C3"},
	} {
		must(db.Faculties.Create(ctx, f))
	}

	for _, s := range []subject.Subject{
		{SubjectName: "Cấu trúc dữ liệu", Credits: 3, FacultyID: 1, Description: "Danh sách, cây, đồ thị"},
		{SubjectName: "Cơ sở dữ liệu", Credits: 3, FacultyID: 1},
		{SubjectName: "Kinh tế vi mô", Credits: 2, FacultyID: 2},
		{SubjectName: "Tiếng Anh 1", Credits: 2, FacultyID: 3},
	} {
		must(db.Subjects.Create(ctx, s))
	}

	for _, t := range []teacher.Teacher{
		{Name: "Phạm Minh Đức", AcademicRank: "Tiến sĩ", Experience: 12, FacultyID: 1, Phone: "0912000001", Email: "duc.pm@uni.edu.vn"},
		{Name: "Đỗ Thu Hà", AcademicRank: "Thạc sĩ", Experience: 5, FacultyID: 1, Phone: "0912000002", Email: "ha.dt@uni.edu.vn"},
		{Name: "Vũ Quang Anh", AcademicRank: "Phó giáo sư", Experience: 20, FacultyID: 2, Phone: "0912000003", Email: "anh.vq@uni.edu.vn"},
		{Name: "Hoàng Lan", AcademicRank: "Thạc sĩ", Experience: 3.5, FacultyID: 3, Phone: "0912000004", Email: "lan.h@uni.edu.vn"},
	} {
		must(db.Teachers.Create(ctx, t))
	}

	for _, c := range []class.Class{
		{SubjectID: 1, TeacherID: 1, Semester: "Học kỳ 1", AcademicYear: "2026-2027", Room: "301", StudyDate: "2026-11-02", StartTime: "07:00:00", EndTime: "09:30:00"},
		{SubjectID: 2, TeacherID: 2, Semester: "Học kỳ 1", AcademicYear: "2026-2027", Room: "302", StudyDate: "2026-11-03", StartTime: "13:00:00", EndTime: "15:30:00"},
		{SubjectID: 3, TeacherID: 3, Semester: "Học kỳ 1", AcademicYear: "2026-2027", Room: "105", StudyDate: "2026-11-04", StartTime: "09:45:00", EndTime: "11:45:00"},
		{SubjectID: 4, TeacherID: 4, Semester: "Học kỳ 2", AcademicYear: "2026-2027", Room: "210", StudyDate: "2027-02-15", StartTime: "07:00:00", EndTime: "09:00:00"},
	} {
		must(db.Classes.Create(ctx, c))
	}

	for _, s := range []student.Student{
		{StudentCode: "SV001", Name: "Nguyễn Văn An", DateOfBirth: "2005-03-14", ClassID: 1, FacultyID: 1, Phone: "0987000001", Email: "an.nv@st.uni.edu.vn"},
		{StudentCode: "SV002", Name: "Trần Thị Bình", DateOfBirth: "2005-07-22", ClassID: 1, FacultyID: 1, Phone: "0987000002", Email: "binh.tt@st.uni.edu.vn"},
		{StudentCode: "SV003", Name: "Lê Văn Cường", DateOfBirth: "2004-11-02", ClassID: 2, FacultyID: 1, Phone: "0987000003", Email: "cuong.lv@st.uni.edu.vn"},
		{StudentCode: "SV004", Name: "Phạm Thu Dung", DateOfBirth: "2005-01-30", ClassID: 3, FacultyID: 2, Phone: "0987000004", Email: "dung.pt@st.uni.edu.vn"},
		{StudentCode: "SV005", Name: "Đặng Minh Đức", DateOfBirth: "2004-09-09", ClassID: 4, FacultyID: 3, Phone: "0987000005", Email: "duc.dm@st.uni.edu.vn"},
	} {
		must(db.Students.Create(ctx, s))
	}

	for _, g := range []grade.Grade{
		{StudentCode: "SV001", ClassID: 1, AttendanceScore: f64(10), MidtermScore: f64(8), FinalScore: f64(7.5)},
		{StudentCode: "SV002", ClassID: 1, AttendanceScore: f64(9), MidtermScore: f64(6.5)},
		{StudentCode: "SV003", ClassID: 2, AttendanceScore: f64(8), MidtermScore: f64(7), FinalScore: f64(8)},
		{StudentCode: "SV004", ClassID: 3, FinalScore: f64(5)},
	} {
		must(db.Grades.Create(ctx, g))
	}

	for _, t := range []tuition.Tuition{
		{StudentID: 1, Semester: "Học kỳ 1", Amount: 12500000, StartDate: "2026-09-01", EndDate: "2026-10-15", Status: tuition.StatusPaid},
		{StudentID: 2, Semester: "Học kỳ 1", Amount: 12500000, StartDate: "2026-09-01", EndDate: "2026-10-15", Status: tuition.StatusPartial},
		{StudentID: 3, Semester: "Học kỳ 1", Amount: 11000000, StartDate: "2026-09-01", EndDate: "2026-10-15", Status: tuition.StatusUnpaid},
		{StudentID: 4, Semester: "Học kỳ 1", Amount: 9800000.5, StartDate: "2026-09-01", EndDate: "2026-10-15", Status: tuition.StatusPaid},
	} {
		must(db.Tuitions.Create(ctx, t))
	}
}
