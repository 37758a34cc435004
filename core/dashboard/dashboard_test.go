package dashboard

import (
	"context"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nkminh14/uniconsole/core/class"
	"github.com/nkminh14/uniconsole/core/faculty"
	"github.com/nkminh14/uniconsole/core/grade"
	"github.com/nkminh14/uniconsole/core/student"
	"github.com/nkminh14/uniconsole/core/subject"
	"github.com/nkminh14/uniconsole/core/teacher"
	"github.com/nkminh14/uniconsole/core/tuition"
)

type fixed[T any] struct {
	recs []T
	err  error
}

func (f fixed[T]) List(context.Context) ([]T, error) { return f.recs, f.err }

func f64(f float64) *float64 { return &f }

func fixtures() Sources {
	return Sources{
		Students: fixed[student.Student]{recs: []student.Student{
			{StudentID: 1, ClassID: 2}, {StudentID: 2, ClassID: 2}, {StudentID: 3, ClassID: 1}, {StudentID: 4, ClassID: 9},
		}},
		Classes: fixed[class.Class]{recs: []class.Class{
			{ClassID: 2, SubjectID: 20, SubjectName: "Giải tích"},
			{ClassID: 1, SubjectID: 10, SubjectName: "Đại số"},
			{ClassID: 3, SubjectID: 30},
		}},
		Teachers:  fixed[teacher.Teacher]{recs: []teacher.Teacher{{TeacherID: 1}}},
		Subjects:  fixed[subject.Subject]{recs: []subject.Subject{{SubjectID: 10, SubjectName: "Đại số"}, {SubjectID: 20, SubjectName: "Giải tích"}}},
		Faculties: fixed[faculty.Faculty]{recs: []faculty.Faculty{{FacultyID: 1}, {FacultyID: 2}}},
		Tuitions: fixed[tuition.Tuition]{recs: []tuition.Tuition{
			{Status: tuition.StatusPaid}, {Status: tuition.StatusPaid}, {Status: tuition.StatusPartial}, {Status: "LATE"},
		}},
		Grades: fixed[grade.Grade]{recs: []grade.Grade{
			{ClassID: 1, AttendanceScore: f64(10), MidtermScore: f64(8), FinalScore: f64(6)}, // 8
			{ClassID: 1, FinalScore: f64(5)},                                                 // 5
			{ClassID: 2, AttendanceScore: f64(9), MidtermScore: f64(8)},                      // 8.5 -> 9
			{ClassID: 3, FinalScore: f64(0.4)},                                               // 0.4 -> 0
			{ClassID: 2},                                                                     // no score
		}},
	}
}

func TestBuild(t *testing.T) {
	sum, err := Build(context.Background(), fixtures())
	require.NoError(t, err)

	assert.Equal(t, Counts{Students: 4, Classes: 3, Teachers: 1, Subjects: 2, Faculties: 2, Tuitions: 4, Grades: 5}, sum.Counts)

	assert.Equal(t, []StatusCount{
		{Status: tuition.StatusPaid, Label: "Đã đóng", Count: 2},
		{Status: tuition.StatusUnpaid, Label: "Chưa đóng", Count: 0},
		{Status: tuition.StatusPartial, Label: "Đóng một phần", Count: 1},
	}, sum.TuitionStatus)
	assert.Equal(t, 1, sum.OtherStatuses)

	assert.Equal(t, []ClassCount{
		{ClassID: 1, Label: "#1 - Đại số", Count: 1},
		{ClassID: 2, Label: "#2 - Giải tích", Count: 2},
		{ClassID: 3, Label: "#3", Count: 0},
	}, sum.StudentsPerClass)

	assert.Equal(t, []SubjectAverage{
		{SubjectID: 30, SubjectName: "#30", Average: 0.4, Grades: 1},
		{SubjectID: 10, SubjectName: "Đại số", Average: 6.5, Grades: 2},
		{SubjectID: 20, SubjectName: "Giải tích", Average: 8.5, Grades: 1},
	}, sum.SubjectAverages)

	var want [11]int
	want[0], want[5], want[8], want[9] = 1, 1, 1, 1
	assert.Equal(t, want, sum.ScoreHistogram)
}

func TestBuild_failedFetch(t *testing.T) {
	src := fixtures()
	src.Grades = fixed[grade.Grade]{err: errors.New("boom")}

	sum, err := Build(context.Background(), src)
	require.Error(t, err)
	assert.Equal(t, "fetching grades: boom", err.Error())
	assert.Equal(t, Summary{}, sum)
}

func TestBuild_missingSource(t *testing.T) {
	src := fixtures()
	src.Teachers = nil
	_, err := Build(context.Background(), src)
	assert.EqualError(t, err, "fetching teachers: no source")
}

func TestAggregate_empty(t *testing.T) {
	sum := Aggregate(nil, nil, nil, nil, nil, nil, nil)
	assert.Len(t, sum.TuitionStatus, 3)
	assert.Empty(t, sum.StudentsPerClass)
	assert.Empty(t, sum.SubjectAverages)
	assert.Equal(t, [11]int{}, sum.ScoreHistogram)
}

func TestBucket(t *testing.T) {
	tests := []struct {
		score float64
		want  int
	}{
		{0, 0}, {0.49, 0}, {0.5, 1}, {7.25, 7}, {8.5, 9}, {10, 10}, {12, 10}, {-1, 0},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, bucket(tt.score), "score %v", tt.score)
	}
}
