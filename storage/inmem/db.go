package inmem

import (
	"context"

	"github.com/nkminh14/uniconsole/core/class"
	"github.com/nkminh14/uniconsole/core/faculty"
	"github.com/nkminh14/uniconsole/core/grade"
	"github.com/nkminh14/uniconsole/core/resource"
	"github.com/nkminh14/uniconsole/core/student"
	"github.com/nkminh14/uniconsole/core/subject"
	"github.com/nkminh14/uniconsole/core/teacher"
	"github.com/nkminh14/uniconsole/core/tuition"
	"github.com/nkminh14/uniconsole/storage"
)

var _ resource.Repository[student.Student] = (*Table[student.Student])(nil)

// DB holds one table per collection.
type DB struct {
	Students  *Table[student.Student]
	Teachers  *Table[teacher.Teacher]
	Classes   *Table[class.Class]
	Faculties *Table[faculty.Faculty]
	Subjects  *Table[subject.Subject]
	Grades    *Table[grade.Grade]
	Tuitions  *Table[tuition.Tuition]
}

func Open() *DB {
	db := &DB{
		Students:  NewTable(func(s student.Student, id int) student.Student { s.StudentID = id; return s }),
		Teachers:  NewTable(func(t teacher.Teacher, id int) teacher.Teacher { t.TeacherID = id; return t }),
		Classes:   NewTable(func(c class.Class, id int) class.Class { c.ClassID = id; return c }),
		Faculties: NewTable(func(f faculty.Faculty, id int) faculty.Faculty { f.FacultyID = id; return f }),
		Subjects:  NewTable(func(s subject.Subject, id int) subject.Subject { s.SubjectID = id; return s }),
		Grades:    NewTable(func(g grade.Grade, id int) grade.Grade { g.GradeID = id; return g }),
		Tuitions:  NewTable(func(t tuition.Tuition, id int) tuition.Tuition { t.TuitionID = id; return t }),
	}

	// joined read-only fields, as the backend fills them
	ctx := context.Background()
	db.Classes.OnWrite(func(c class.Class) class.Class {
		c.SubjectName = ""
		if subj, err := db.Subjects.Get(ctx, c.SubjectID); err == nil {
			c.SubjectName = subj.SubjectName
		}
		return c
	})
	db.Subjects.OnWrite(func(s subject.Subject) subject.Subject {
		s.FacultyName = ""
		if fac, err := db.Faculties.Get(ctx, s.FacultyID); err == nil {
			s.FacultyName = fac.FacultyName
		}
		return s
	})
	db.Tuitions.OnWrite(func(t tuition.Tuition) tuition.Tuition {
		t.StudentCode, t.StudentName = "", ""
		if st, err := db.Students.Get(ctx, t.StudentID); err == nil {
			t.StudentCode, t.StudentName = st.StudentCode, st.Name
		}
		return t
	})
	return db
}

func (db *DB) Repositories() storage.Repositories {
	return storage.Repositories{
		Students:  db.Students,
		Teachers:  db.Teachers,
		Classes:   db.Classes,
		Faculties: db.Faculties,
		Subjects:  db.Subjects,
		Grades:    db.Grades,
		Tuitions:  db.Tuitions,
		Finder:    db,
	}
}

// TeachersBySubject returns the teachers of the faculty owning the subject.
func (db *DB) TeachersBySubject(ctx context.Context, subjectID int) ([]teacher.Teacher, error) {
	subj, err := db.Subjects.Get(ctx, subjectID)
	if err != nil {
		return nil, err
	}
	all, err := db.Teachers.List(ctx)
	if err != nil {
		return nil, err
	}
	teachers := make([]teacher.Teacher, 0, len(all))
	for _, t := range all {
		if t.FacultyID == subj.FacultyID {
			teachers = append(teachers, t)
		}
	}
	return teachers, nil
}
