package restapi

import (
	"context"
	"net/http"
	"strconv"

	"github.com/nkminh14/uniconsole/core"
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

type repository[T resource.Entity] struct {
	client *Client
	path   string
}

var _ resource.Repository[student.Student] = (*repository[student.Student])(nil)

// NewRepository returns the repository of the backend collection at path, e.g. "/students".
func NewRepository[T resource.Entity](client *Client, path string) resource.Repository[T] {
	return &repository[T]{client: client, path: path}
}

func (repo *repository[T]) itemPath(id int) string {
	return repo.path + "/" + strconv.Itoa(id)
}

func (repo *repository[T]) List(ctx context.Context) ([]T, error) {
	recs := make([]T, 0)
	if err := repo.client.Do(ctx, http.MethodGet, repo.path, nil, &recs); err != nil {
		return nil, err
	}
	if recs == nil { // JSON null
		recs = make([]T, 0)
	}
	return recs, nil
}

// Get scans the collection; the backend only exposes list reads.
func (repo *repository[T]) Get(ctx context.Context, id int) (T, error) {
	var zero T
	recs, err := repo.List(ctx)
	if err != nil {
		return zero, err
	}
	for _, rec := range recs {
		if rec.ID() == id {
			return rec, nil
		}
	}
	return zero, core.ErrNotFound
}

func (repo *repository[T]) Create(ctx context.Context, rec T) (T, error) {
	created := rec
	if err := repo.client.Do(ctx, http.MethodPost, repo.path, rec, &created); err != nil {
		var zero T
		return zero, err
	}
	return created, nil
}

func (repo *repository[T]) Update(ctx context.Context, id int, rec T) (T, error) {
	updated := rec
	if err := repo.client.Do(ctx, http.MethodPut, repo.itemPath(id), rec, &updated); err != nil {
		var zero T
		return zero, err
	}
	return updated, nil
}

func (repo *repository[T]) Delete(ctx context.Context, id int) error {
	return repo.client.Do(ctx, http.MethodDelete, repo.itemPath(id), nil, nil)
}

// NewRepositories returns the repositories of every backend collection.
func NewRepositories(client *Client) storage.Repositories {
	return storage.Repositories{
		Students:  NewRepository[student.Student](client, student.Path),
		Teachers:  NewRepository[teacher.Teacher](client, teacher.Path),
		Classes:   NewRepository[class.Class](client, class.Path),
		Faculties: NewRepository[faculty.Faculty](client, faculty.Path),
		Subjects:  NewRepository[subject.Subject](client, subject.Path),
		Grades:    NewRepository[grade.Grade](client, grade.Path),
		Tuitions:  NewRepository[tuition.Tuition](client, tuition.Path),
		Finder:    &teacherFinder{client: client},
	}
}

type teacherFinder struct {
	client *Client
}

func (f *teacherFinder) TeachersBySubject(ctx context.Context, subjectID int) ([]teacher.Teacher, error) {
	teachers := make([]teacher.Teacher, 0)
	path := teacher.BySubjectPath + "/" + strconv.Itoa(subjectID)
	if err := f.client.Do(ctx, http.MethodGet, path, nil, &teachers); err != nil {
		return nil, err
	}
	if teachers == nil {
		teachers = make([]teacher.Teacher, 0)
	}
	return teachers, nil
}
