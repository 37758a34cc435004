// Package dashboard derives the home page figures from every collection.
package dashboard

import (
	"context"
	"math"
	"sort"
	"strconv"

	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/nkminh14/uniconsole/core/class"
	"github.com/nkminh14/uniconsole/core/faculty"
	"github.com/nkminh14/uniconsole/core/grade"
	"github.com/nkminh14/uniconsole/core/student"
	"github.com/nkminh14/uniconsole/core/subject"
	"github.com/nkminh14/uniconsole/core/teacher"
	"github.com/nkminh14/uniconsole/core/tuition"
)

// Lister fetches a whole collection.
type Lister[T any] interface {
	List(ctx context.Context) ([]T, error)
}

// ListerFunc adapts a plain function to a Lister.
type ListerFunc[T any] func(ctx context.Context) ([]T, error)

func (f ListerFunc[T]) List(ctx context.Context) ([]T, error) { return f(ctx) }

type Sources struct {
	Students  Lister[student.Student]
	Classes   Lister[class.Class]
	Teachers  Lister[teacher.Teacher]
	Subjects  Lister[subject.Subject]
	Faculties Lister[faculty.Faculty]
	Tuitions  Lister[tuition.Tuition]
	Grades    Lister[grade.Grade]
}

type Counts struct {
	Students  int
	Classes   int
	Teachers  int
	Subjects  int
	Faculties int
	Tuitions  int
	Grades    int
}

type StatusCount struct {
	Status string
	Label  string
	Count  int
}

type ClassCount struct {
	ClassID int
	Label   string
	Count   int
}

type SubjectAverage struct {
	SubjectID   int
	SubjectName string
	Average     float64 // mean of the per-grade means
	Grades      int     // grades with at least one score
}

type Summary struct {
	Counts           Counts
	TuitionStatus    []StatusCount // PAID, UNPAID, PARTIAL
	OtherStatuses    int           // tuitions with an unknown status
	StudentsPerClass []ClassCount  // every class, by ID
	SubjectAverages  []SubjectAverage
	ScoreHistogram   [11]int // per-grade mean rounded to 0..10
}

// Build fetches every collection concurrently and aggregates them.
// Any failed fetch fails the whole dashboard.
func Build(ctx context.Context, src Sources) (Summary, error) {
	var data snapshot
	g, gctx := errgroup.WithContext(ctx)
	fetch(g, gctx, "students", src.Students, &data.students)
	fetch(g, gctx, "classes", src.Classes, &data.classes)
	fetch(g, gctx, "teachers", src.Teachers, &data.teachers)
	fetch(g, gctx, "subjects", src.Subjects, &data.subjects)
	fetch(g, gctx, "faculties", src.Faculties, &data.faculties)
	fetch(g, gctx, "tuitions", src.Tuitions, &data.tuitions)
	fetch(g, gctx, "grades", src.Grades, &data.grades)
	if err := g.Wait(); err != nil {
		return Summary{}, err
	}
	return Aggregate(data.students, data.classes, data.teachers, data.subjects, data.faculties, data.tuitions, data.grades), nil
}

type snapshot struct {
	students  []student.Student
	classes   []class.Class
	teachers  []teacher.Teacher
	subjects  []subject.Subject
	faculties []faculty.Faculty
	tuitions  []tuition.Tuition
	grades    []grade.Grade
}

func fetch[T any](g *errgroup.Group, ctx context.Context, name string, src Lister[T], dst *[]T) {
	g.Go(func() error {
		if src == nil {
			return errors.Errorf("fetching %s: no source", name)
		}
		recs, err := src.List(ctx)
		if err != nil {
			return errors.Wrapf(err, "fetching %s", name)
		}
		*dst = recs
		return nil
	})
}

// Aggregate computes the dashboard figures out of already fetched collections.
func Aggregate(
	students []student.Student,
	classes []class.Class,
	teachers []teacher.Teacher,
	subjects []subject.Subject,
	faculties []faculty.Faculty,
	tuitions []tuition.Tuition,
	grades []grade.Grade,
) Summary {
	sum := Summary{
		Counts: Counts{
			Students:  len(students),
			Classes:   len(classes),
			Teachers:  len(teachers),
			Subjects:  len(subjects),
			Faculties: len(faculties),
			Tuitions:  len(tuitions),
			Grades:    len(grades),
		},
	}

	// tuition status histogram
	byStatus := make(map[string]int, len(tuition.Statuses))
	for _, t := range tuitions {
		byStatus[t.Status]++
	}
	known := 0
	for _, status := range tuition.Statuses {
		sum.TuitionStatus = append(sum.TuitionStatus, StatusCount{Status: status, Label: tuition.StatusLabel(status), Count: byStatus[status]})
		known += byStatus[status]
	}
	sum.OtherStatuses = len(tuitions) - known

	// students per class
	perClass := make(map[int]int, len(classes))
	for _, s := range students {
		perClass[s.ClassID]++
	}
	sortedClasses := append([]class.Class(nil), classes...)
	sort.SliceStable(sortedClasses, func(i, j int) bool { return sortedClasses[i].ClassID < sortedClasses[j].ClassID })
	for _, c := range sortedClasses {
		sum.StudentsPerClass = append(sum.StudentsPerClass, ClassCount{ClassID: c.ClassID, Label: c.Label(), Count: perClass[c.ClassID]})
	}

	// per-subject averages and score histogram
	classSubject := make(map[int]int, len(classes))
	for _, c := range classes {
		classSubject[c.ClassID] = c.SubjectID
	}
	subjectNames := make(map[int]string, len(subjects))
	for _, s := range subjects {
		subjectNames[s.SubjectID] = s.SubjectName
	}
	for _, c := range classes {
		if _, ok := subjectNames[c.SubjectID]; !ok && c.SubjectName != "" {
			subjectNames[c.SubjectID] = c.SubjectName
		}
	}

	type acc struct {
		total float64
		n     int
	}
	perSubject := make(map[int]*acc)
	for _, g := range grades {
		mean, ok := g.Mean()
		if !ok {
			continue
		}
		sum.ScoreHistogram[bucket(mean)]++

		subjectID, ok := classSubject[g.ClassID]
		if !ok {
			continue
		}
		a := perSubject[subjectID]
		if a == nil {
			a = &acc{}
			perSubject[subjectID] = a
		}
		a.total += mean
		a.n++
	}
	for subjectID, a := range perSubject {
		name := subjectNames[subjectID]
		if name == "" {
			name = "#" + strconv.Itoa(subjectID)
		}
		sum.SubjectAverages = append(sum.SubjectAverages, SubjectAverage{
			SubjectID:   subjectID,
			SubjectName: name,
			Average:     round2(a.total / float64(a.n)),
			Grades:      a.n,
		})
	}
	coll := collate.New(language.Vietnamese, collate.IgnoreCase)
	sort.Slice(sum.SubjectAverages, func(i, j int) bool {
		if c := coll.CompareString(sum.SubjectAverages[i].SubjectName, sum.SubjectAverages[j].SubjectName); c != 0 {
			return c < 0
		}
		return sum.SubjectAverages[i].SubjectID < sum.SubjectAverages[j].SubjectID
	})
	return sum
}

// bucket rounds a score half up and clamps it into [0, 10].
func bucket(score float64) int {
	b := int(math.Floor(score + 0.5))
	if b < 0 {
		return 0
	}
	if b > 10 {
		return 10
	}
	return b
}

func round2(f float64) float64 {
	return math.Round(f*100) / 100
}
