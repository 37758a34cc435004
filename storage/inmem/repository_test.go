package inmem

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nkminh14/uniconsole/core"
	"github.com/nkminh14/uniconsole/core/student"
	"github.com/nkminh14/uniconsole/core/subject"
	"github.com/nkminh14/uniconsole/core/tuition"
)

func TestTable_crud(t *testing.T) {
	ctx := context.Background()
	db := Open()

	created, err := db.Students.Create(ctx, student.Student{StudentCode: "SV001", Name: "An"})
	require.NoError(t, err)
	assert.Equal(t, 1, created.StudentID)

	explicit, err := db.Students.Create(ctx, student.Student{StudentID: 10, StudentCode: "SV010"})
	require.NoError(t, err)
	assert.Equal(t, 10, explicit.StudentID)

	next, err := db.Students.Create(ctx, student.Student{StudentCode: "SV011"})
	require.NoError(t, err)
	assert.Equal(t, 11, next.StudentID, "generated keys never collide with explicit ones")

	updated, err := db.Students.Update(ctx, 1, student.Student{StudentCode: "SV001", Name: "Nguyễn Văn An"})
	require.NoError(t, err)
	assert.Equal(t, 1, updated.StudentID)

	got, err := db.Students.Get(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, "Nguyễn Văn An", got.Name)

	require.NoError(t, db.Students.Delete(ctx, 10))
	assert.Equal(t, core.ErrNotFound, db.Students.Delete(ctx, 10))
	_, err = db.Students.Update(ctx, 10, student.Student{})
	assert.Equal(t, core.ErrNotFound, err)
	_, err = db.Students.Get(ctx, 10)
	assert.Equal(t, core.ErrNotFound, err)

	all, err := db.Students.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, []int{1, 11}, []int{all[0].StudentID, all[1].StudentID})
}

func TestTable_List_canceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := Open().Students.List(ctx)
	assert.Equal(t, context.Canceled, err)
}

func TestTable_concurrent(t *testing.T) {
	ctx := context.Background()
	db := Open()

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, _ = db.Subjects.Create(ctx, subject.Subject{SubjectName: "Môn"})
			_, _ = db.Subjects.List(ctx)
		}()
	}
	wg.Wait()
	assert.Equal(t, 50, db.Subjects.Len())
}

func TestSeed(t *testing.T) {
	ctx := context.Background()
	db := Open()
	Seed(db)

	classes, err := db.Classes.List(ctx)
	require.NoError(t, err)
	require.NotEmpty(t, classes)
	assert.Equal(t, "Cấu trúc dữ liệu", classes[0].SubjectName)

	subj, err := db.Subjects.Get(ctx, 3)
	require.NoError(t, err)
	assert.Equal(t, "Kinh tế", subj.FacultyName)

	tui, err := db.Tuitions.Get(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, "SV001", tui.StudentCode)
	assert.Equal(t, "Nguyễn Văn An", tui.StudentName)
	assert.Equal(t, tuition.StatusPaid, tui.Status)

	// joined fields follow updates
	c := classes[0]
	c.SubjectID = 2
	c, err = db.Classes.Update(ctx, c.ClassID, c)
	require.NoError(t, err)
	assert.Equal(t, "Cơ sở dữ liệu", c.SubjectName)
}

func TestDB_TeachersBySubject(t *testing.T) {
	ctx := context.Background()
	db := Open()
	Seed(db)

	teachers, err := db.TeachersBySubject(ctx, 1)
	require.NoError(t, err)
	names := make([]string, 0, len(teachers))
	for _, tch := range teachers {
		names = append(names, tch.Name)
	}
	assert.Equal(t, []string{"Phạm Minh Đức", "Đỗ Thu Hà"}, names)

	_, err = db.TeachersBySubject(ctx, 99)
	assert.Equal(t, core.ErrNotFound, err)
}
