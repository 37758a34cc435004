// Package storage bundles the repositories of every collection the console manages.
package storage

import (
	"github.com/nkminh14/uniconsole/core/class"
	"github.com/nkminh14/uniconsole/core/dashboard"
	"github.com/nkminh14/uniconsole/core/faculty"
	"github.com/nkminh14/uniconsole/core/grade"
	"github.com/nkminh14/uniconsole/core/student"
	"github.com/nkminh14/uniconsole/core/subject"
	"github.com/nkminh14/uniconsole/core/teacher"
	"github.com/nkminh14/uniconsole/core/tuition"
)

type Repositories struct {
	Students  student.Repository
	Teachers  teacher.Repository
	Classes   class.Repository
	Faculties faculty.Repository
	Subjects  subject.Repository
	Grades    grade.Repository
	Tuitions  tuition.Repository
	Finder    teacher.SubjectFinder
}

// Services wires one service per collection.
type Services struct {
	Students  *student.Service
	Teachers  *teacher.Service
	Classes   *class.Service
	Faculties *faculty.Service
	Subjects  *subject.Service
	Grades    *grade.Service
	Tuitions  *tuition.Service
}

func NewServices(repos Repositories, pageSize int) Services {
	svcs := Services{
		Students:  student.NewService(repos.Students),
		Teachers:  teacher.NewService(repos.Teachers, repos.Finder),
		Classes:   class.NewService(repos.Classes),
		Faculties: faculty.NewService(repos.Faculties),
		Subjects:  subject.NewService(repos.Subjects),
		Grades:    grade.NewService(repos.Grades),
		Tuitions:  tuition.NewService(repos.Tuitions),
	}
	svcs.Students.WithPageSize(pageSize)
	svcs.Teachers.WithPageSize(pageSize)
	svcs.Classes.WithPageSize(pageSize)
	svcs.Faculties.WithPageSize(pageSize)
	svcs.Subjects.WithPageSize(pageSize)
	svcs.Grades.WithPageSize(pageSize)
	svcs.Tuitions.WithPageSize(pageSize)
	return svcs
}

// DashboardSources lists every collection for the dashboard.
func (svcs Services) DashboardSources() dashboard.Sources {
	return dashboard.Sources{
		Students:  dashboard.ListerFunc[student.Student](svcs.Students.All),
		Classes:   dashboard.ListerFunc[class.Class](svcs.Classes.All),
		Teachers:  dashboard.ListerFunc[teacher.Teacher](svcs.Teachers.All),
		Subjects:  dashboard.ListerFunc[subject.Subject](svcs.Subjects.All),
		Faculties: dashboard.ListerFunc[faculty.Faculty](svcs.Faculties.All),
		Tuitions:  dashboard.ListerFunc[tuition.Tuition](svcs.Tuitions.All),
		Grades:    dashboard.ListerFunc[grade.Grade](svcs.Grades.All),
	}
}
