package echoconsole

import (
	"context"
	"sort"
	"strconv"

	"golang.org/x/sync/errgroup"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"

	"github.com/nkminh14/uniconsole/core"
	"github.com/nkminh14/uniconsole/core/class"
	"github.com/nkminh14/uniconsole/core/faculty"
	"github.com/nkminh14/uniconsole/core/grade"
	"github.com/nkminh14/uniconsole/core/resource"
	"github.com/nkminh14/uniconsole/core/student"
	"github.com/nkminh14/uniconsole/core/subject"
	"github.com/nkminh14/uniconsole/core/teacher"
	"github.com/nkminh14/uniconsole/core/tuition"
)

var moneyPrinter = message.NewPrinter(language.Vietnamese)

func (s *server) entityPages() []entityPage {
	return []entityPage{
		s.studentPage(),
		s.teacherPage(),
		s.classPage(),
		s.facultyPage(),
		s.subjectPage(),
		s.gradePage(),
		s.tuitionPage(),
	}
}

func (s *server) studentPage() entityPage {
	svcs := s.deps.Services
	return &crud[student.Student, student.Form, *student.Form]{
		s:          s,
		slug:       "students",
		title:      "Sinh viên",
		heading:    "📚 Trang Quản lý Sinh viên",
		noun:       "sinh viên",
		svc:        svcs.Students,
		blank:      func() student.Form { return student.Form{} },
		fromRecord: student.FormFrom,
		onEdit:     func(f *student.Form, orig student.Student) { f.KeepIdentity(orig) },
		fields: func(ctx context.Context, f *student.Form, editing bool) ([]field, error) {
			var classes map[int]class.Class
			var faculties map[int]faculty.Faculty
			var g errgroup.Group
			fetchSide(&g, ctx, svcs.Classes, &classes)
			fetchSide(&g, ctx, svcs.Faculties, &faculties)
			err := g.Wait()

			return []field{
				{Name: "studentCode", Label: "Mã số sinh viên", Type: "text", Value: f.StudentCode, ReadOnly: editing},
				{Name: "name", Label: "Tên", Type: "text", Value: f.Name},
				{Name: "dateOfBirth", Label: "Ngày sinh", Type: "date", Value: f.DateOfBirth, Placeholder: "YYYY-MM-DD"},
				{Name: "classId", Label: "Lớp", Type: "select", Value: f.ClassID, Options: options(classes, "-- Chọn lớp --", class.Class.Label)},
				{Name: "facultyId", Label: "Khoa", Type: "select", Value: f.FacultyID, Options: options(faculties, "-- Chọn khoa --", facultyName)},
				{Name: "phone", Label: "Số điện thoại", Type: "tel", Value: f.Phone},
				{Name: "email", Label: "Email", Type: "email", Value: f.Email},
			}, err
		},
		cells: func(ctx context.Context) map[string]cellFunc[student.Student] {
			var classes map[int]class.Class
			var faculties map[int]faculty.Faculty
			var g errgroup.Group
			fetchSide(&g, ctx, svcs.Classes, &classes)
			fetchSide(&g, ctx, svcs.Faculties, &faculties)
			s.warnSide("students", g.Wait())

			return map[string]cellFunc[student.Student]{
				"classId":   func(st student.Student) string { return lookupName(classes, st.ClassID, class.Class.Label) },
				"facultyId": func(st student.Student) string { return lookupName(faculties, st.FacultyID, facultyName) },
			}
		},
	}
}

func (s *server) teacherPage() entityPage {
	svcs := s.deps.Services
	return &crud[teacher.Teacher, teacher.Form, *teacher.Form]{
		s:          s,
		slug:       "teachers",
		title:      "Giảng viên",
		heading:    "📚 Trang Quản lý Giảng viên",
		noun:       "giảng viên",
		svc:        svcs.Teachers.Service,
		blank:      func() teacher.Form { return teacher.Form{} },
		fromRecord: teacher.FormFrom,
		fields: func(ctx context.Context, f *teacher.Form, _ bool) ([]field, error) {
			var faculties map[int]faculty.Faculty
			var g errgroup.Group
			fetchSide(&g, ctx, svcs.Faculties, &faculties)
			err := g.Wait()

			return []field{
				{Name: "name", Label: "Tên", Type: "text", Value: f.Name},
				{Name: "academicRank", Label: "Học hàm", Type: "text", Value: f.AcademicRank, Placeholder: "VD: Thạc sĩ"},
				{Name: "experience", Label: "Kinh nghiệm (năm)", Type: "number", Value: f.Experience},
				{Name: "facultyId", Label: "Khoa", Type: "select", Value: f.FacultyID, Options: options(faculties, "-- Chọn khoa --", facultyName)},
				{Name: "phone", Label: "Số điện thoại", Type: "tel", Value: f.Phone},
				{Name: "email", Label: "Email", Type: "email", Value: f.Email},
			}, err
		},
		cells: func(ctx context.Context) map[string]cellFunc[teacher.Teacher] {
			var faculties map[int]faculty.Faculty
			var g errgroup.Group
			fetchSide(&g, ctx, svcs.Faculties, &faculties)
			s.warnSide("teachers", g.Wait())

			return map[string]cellFunc[teacher.Teacher]{
				"facultyId": func(t teacher.Teacher) string { return lookupName(faculties, t.FacultyID, facultyName) },
			}
		},
	}
}

func (s *server) classPage() entityPage {
	svcs := s.deps.Services
	return &crud[class.Class, class.Form, *class.Form]{
		s:          s,
		slug:       "classes",
		title:      "Lớp học",
		heading:    "🏫 Trang Quản lý Lớp Học",
		noun:       "lớp học",
		svc:        svcs.Classes,
		blank:      func() class.Form { return class.Form{} },
		fromRecord: class.FormFrom,
		fields: func(ctx context.Context, f *class.Form, _ bool) ([]field, error) {
			var subjects map[int]subject.Subject
			var teachers []teacher.Teacher
			var g errgroup.Group
			fetchSide(&g, ctx, svcs.Subjects, &subjects)
			g.Go(func() (err error) {
				teachers, err = svcs.Teachers.BySubject(ctx, core.Atoi(f.SubjectID))
				return err
			})
			err := g.Wait()

			teacherOpts := []option{{Value: "", Label: "-- Chọn môn trước --"}}
			if f.SubjectID != "" {
				teacherOpts = []option{{Value: "", Label: "-- Chọn giảng viên --"}}
				for _, t := range teachers {
					teacherOpts = append(teacherOpts, option{Value: core.IDString(t.TeacherID), Label: t.Name})
				}
			}

			return []field{
				{Name: "subjectId", Label: "Môn học", Type: "select", Value: f.SubjectID, Reload: true, Options: options(subjects, "-- Chọn môn học --", subjectName)},
				{Name: "teacherId", Label: "Giảng viên", Type: "select", Value: f.TeacherID, Options: teacherOpts},
				{Name: "semester", Label: "Học kỳ", Type: "text", Value: f.Semester, Placeholder: "VD: Học kỳ 2"},
				{Name: "academicYear", Label: "Năm học", Type: "text", Value: f.AcademicYear, Placeholder: "VD: 2024-2025"},
				{Name: "room", Label: "Phòng học", Type: "text", Value: f.Room, Placeholder: "VD: 101"},
				{Name: "studyDate", Label: "Ngày học", Type: "date", Value: f.StudyDate},
				{Name: "startTime", Label: "Giờ bắt đầu", Type: "time", Value: f.StartTime},
				{Name: "endTime", Label: "Giờ kết thúc", Type: "time", Value: f.EndTime},
			}, err
		},
		reload: func(ctx context.Context, f *class.Form) error {
			teachers, err := svcs.Teachers.BySubject(ctx, core.Atoi(f.SubjectID))
			f.ChangeSubject(f.SubjectID, func(id int) bool { return teacher.Contains(teachers, id) })
			return err
		},
		cells: func(ctx context.Context) map[string]cellFunc[class.Class] {
			var subjects map[int]subject.Subject
			var teachers map[int]teacher.Teacher
			var g errgroup.Group
			fetchSide(&g, ctx, svcs.Subjects, &subjects)
			fetchSide(&g, ctx, svcs.Teachers.Service, &teachers)
			s.warnSide("classes", g.Wait())

			return map[string]cellFunc[class.Class]{
				"subjectName": func(c class.Class) string {
					if c.SubjectName != "" {
						return c.SubjectName
					}
					return lookupName(subjects, c.SubjectID, subjectName)
				},
				"teacherId": func(c class.Class) string { return lookupName(teachers, c.TeacherID, teacherName) },
			}
		},
	}
}

func (s *server) facultyPage() entityPage {
	return &crud[faculty.Faculty, faculty.Form, *faculty.Form]{
		s:          s,
		slug:       "faculties",
		title:      "Khoa",
		heading:    "📚 Trang Quản lý Khoa",
		noun:       "khoa",
		svc:        s.deps.Services.Faculties,
		blank:      func() faculty.Form { return faculty.Form{} },
		fromRecord: faculty.FormFrom,
		fields: func(_ context.Context, f *faculty.Form, _ bool) ([]field, error) {
			return []field{
				{Name: "facultyName", Label: "Tên khoa", Type: "text", Value: f.FacultyName},
				{Name: "dean", Label: "Tên trưởng khoa", Type: "text", Value: f.Dean},
				{Name: "phone", Label: "Số điện thoại", Type: "tel", Value: f.Phone},
				{Name: "email", Label: "Email", Type: "email", Value: f.Email},
				{Name: "address", Label: "Địa chỉ", Type: "text", Value: f.Address},
				{Name: "description", Label: "Mô tả", Type: "textarea", Value: f.Description},
			}, nil
		},
	}
}

func (s *server) subjectPage() entityPage {
	svcs := s.deps.Services
	return &crud[subject.Subject, subject.Form, *subject.Form]{
		s:          s,
		slug:       "subjects",
		title:      "Môn học",
		heading:    "📘 Trang Quản lý Môn học",
		noun:       "môn học",
		svc:        svcs.Subjects,
		blank:      func() subject.Form { return subject.Form{} },
		fromRecord: subject.FormFrom,
		fields: func(ctx context.Context, f *subject.Form, _ bool) ([]field, error) {
			var faculties map[int]faculty.Faculty
			var g errgroup.Group
			fetchSide(&g, ctx, svcs.Faculties, &faculties)
			err := g.Wait()

			return []field{
				{Name: "subjectName", Label: "Tên môn", Type: "text", Value: f.SubjectName},
				{Name: "credits", Label: "Số tín chỉ", Type: "number", Value: f.Credits},
				{Name: "facultyId", Label: "Khoa", Type: "select", Value: f.FacultyID, Options: options(faculties, "-- Chọn khoa --", facultyName)},
				{Name: "description", Label: "Mô tả", Type: "textarea", Value: f.Description},
			}, err
		},
		cells: func(ctx context.Context) map[string]cellFunc[subject.Subject] {
			var faculties map[int]faculty.Faculty
			var g errgroup.Group
			fetchSide(&g, ctx, svcs.Faculties, &faculties)
			s.warnSide("subjects", g.Wait())

			return map[string]cellFunc[subject.Subject]{
				"facultyId": func(sub subject.Subject) string {
					if sub.FacultyName != "" {
						return sub.FacultyName
					}
					return lookupName(faculties, sub.FacultyID, facultyName)
				},
			}
		},
	}
}

func (s *server) gradePage() entityPage {
	svcs := s.deps.Services
	return &crud[grade.Grade, grade.Form, *grade.Form]{
		s:          s,
		slug:       "grades",
		title:      "Điểm số",
		heading:    "📊 Trang Quản lý Điểm Sinh viên",
		noun:       "điểm",
		svc:        svcs.Grades,
		blank:      func() grade.Form { return grade.Form{} },
		fromRecord: grade.FormFrom,
		onEdit:     func(f *grade.Form, orig grade.Grade) { f.KeepIdentity(orig) },
		fields: func(ctx context.Context, f *grade.Form, editing bool) ([]field, error) {
			var students map[int]student.Student
			var classes map[int]class.Class
			var g errgroup.Group
			fetchSide(&g, ctx, svcs.Students, &students)
			fetchSide(&g, ctx, svcs.Classes, &classes)
			err := g.Wait()

			studentOpts := []option{{Value: "", Label: "-- Chọn sinh viên --"}}
			for _, id := range sortedIDs(students) {
				st := students[id]
				studentOpts = append(studentOpts, option{Value: st.StudentCode, Label: st.StudentCode + " - " + st.Name})
			}
			if f.StudentCode != "" && !hasOption(studentOpts, f.StudentCode) {
				studentOpts = append(studentOpts, option{Value: f.StudentCode, Label: f.StudentCode})
			}

			return []field{
				{Name: "studentCode", Label: "Mã sinh viên", Type: "select", Value: f.StudentCode, Options: studentOpts, ReadOnly: editing},
				{Name: "classId", Label: "Mã lớp", Type: "select", Value: f.ClassID, Options: options(classes, "-- Chọn lớp --", class.Class.Label)},
				{Name: "attendanceScore", Label: "Điểm chuyên cần", Type: "number", Value: f.AttendanceScore, Placeholder: "0 - 10"},
				{Name: "midtermScore", Label: "Điểm giữa kỳ", Type: "number", Value: f.MidtermScore, Placeholder: "0 - 10"},
				{Name: "finalScore", Label: "Điểm cuối kỳ", Type: "number", Value: f.FinalScore, Placeholder: "0 - 10"},
			}, err
		},
		cells: func(ctx context.Context) map[string]cellFunc[grade.Grade] {
			var classes map[int]class.Class
			var g errgroup.Group
			fetchSide(&g, ctx, svcs.Classes, &classes)
			s.warnSide("grades", g.Wait())

			return map[string]cellFunc[grade.Grade]{
				"classId": func(gr grade.Grade) string { return lookupName(classes, gr.ClassID, class.Class.Label) },
			}
		},
	}
}

func (s *server) tuitionPage() entityPage {
	svcs := s.deps.Services
	return &crud[tuition.Tuition, tuition.Form, *tuition.Form]{
		s:          s,
		slug:       "tuition",
		title:      "Học phí",
		heading:    "💰 Quản lý Học phí",
		noun:       "học phí",
		svc:        svcs.Tuitions,
		blank:      tuition.NewForm,
		fromRecord: tuition.FormFrom,
		fields: func(ctx context.Context, f *tuition.Form, _ bool) ([]field, error) {
			var students map[int]student.Student
			var g errgroup.Group
			fetchSide(&g, ctx, svcs.Students, &students)
			err := g.Wait()

			statusOpts := []option{{Value: "", Label: "-- Chọn trạng thái --"}}
			for _, status := range tuition.Statuses {
				statusOpts = append(statusOpts, option{Value: status, Label: tuition.StatusLabel(status)})
			}

			return []field{
				{Name: "studentId", Label: "Sinh viên", Type: "select", Value: f.StudentID, Options: options(students, "-- Chọn sinh viên --", studentLabel)},
				{Name: "semester", Label: "Học kỳ", Type: "text", Value: f.Semester, Placeholder: "VD: Học kỳ 1"},
				{Name: "amount", Label: "Số tiền", Type: "number", Value: f.Amount},
				{Name: "startDate", Label: "Ngày bắt đầu", Type: "date", Value: f.StartDate},
				{Name: "endDate", Label: "Ngày kết thúc", Type: "date", Value: f.EndDate},
				{Name: "status", Label: "Trạng thái", Type: "select", Value: f.Status, Options: statusOpts},
			}, err
		},
		cells: func(ctx context.Context) map[string]cellFunc[tuition.Tuition] {
			var students map[int]student.Student
			var g errgroup.Group
			fetchSide(&g, ctx, svcs.Students, &students)
			s.warnSide("tuition", g.Wait())

			return map[string]cellFunc[tuition.Tuition]{
				"studentCode": func(t tuition.Tuition) string {
					if t.StudentCode != "" {
						return t.StudentCode
					}
					return lookupName(students, t.StudentID, func(st student.Student) string { return st.StudentCode })
				},
				"studentName": func(t tuition.Tuition) string {
					if t.StudentName != "" {
						return t.StudentName
					}
					return lookupName(students, t.StudentID, func(st student.Student) string { return st.Name })
				},
				"amount": func(t tuition.Tuition) string { return formatMoney(t.Amount) },
				"status": func(t tuition.Tuition) string { return tuition.StatusLabel(t.Status) },
			}
		},
	}
}

// Side tables

// fetchSide loads one side table into dst, indexed by ID. A failed fetch leaves dst nil.
func fetchSide[T resource.Entity](g *errgroup.Group, ctx context.Context, svc *resource.Service[T], dst *map[int]T) {
	g.Go(func() error {
		recs, err := svc.All(ctx)
		if err != nil {
			return err
		}
		*dst = resource.Index(recs)
		return nil
	})
}

func (s *server) warnSide(page string, err error) {
	if err != nil {
		s.deps.Logger.Warn("loading side tables of "+page, err)
	}
}

// lookupName names the record id refers to, falling back to "#id" when it is unknown.
func lookupName[T any](m map[int]T, id int, name func(T) string) string {
	if id == 0 {
		return ""
	}
	if rec, ok := m[id]; ok {
		if n := name(rec); n != "" {
			return n
		}
	}
	return "#" + strconv.Itoa(id)
}

func options[T any](m map[int]T, prompt string, label func(T) string) []option {
	opts := make([]option, 0, len(m)+1)
	opts = append(opts, option{Value: "", Label: prompt})
	for _, id := range sortedIDs(m) {
		opts = append(opts, option{Value: strconv.Itoa(id), Label: label(m[id])})
	}
	return opts
}

func hasOption(opts []option, value string) bool {
	for _, o := range opts {
		if o.Value == value {
			return true
		}
	}
	return false
}

func sortedIDs[T any](m map[int]T) []int {
	ids := make([]int, 0, len(m))
	for id := range m {
		ids = append(ids, id)
	}
	sort.Ints(ids)
	return ids
}

func facultyName(f faculty.Faculty) string { return f.FacultyName }
func subjectName(s subject.Subject) string { return s.SubjectName }
func teacherName(t teacher.Teacher) string { return t.Name }

func studentLabel(st student.Student) string {
	if st.StudentCode == "" {
		return st.Name
	}
	return st.StudentCode + " - " + st.Name
}

// formatMoney groups thousands the Vietnamese way, e.g. "12.500.000 ₫".
func formatMoney(amount float64) string {
	return moneyPrinter.Sprint(number.Decimal(amount, number.MaxFractionDigits(2))) + " ₫"
}
