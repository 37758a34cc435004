package restapi

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nkminh14/uniconsole/core"
	"github.com/nkminh14/uniconsole/core/class"
	"github.com/nkminh14/uniconsole/core/student"
)

type recorded struct {
	method string
	path   string
	body   string
}

func newBackend(t *testing.T, handler http.HandlerFunc) (*Client, *[]recorded) {
	t.Helper()
	var calls []recorded
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		calls = append(calls, recorded{method: r.Method, path: r.URL.Path, body: string(body)})
		handler(w, r)
	}))
	t.Cleanup(srv.Close)
	return NewClientWithHTTP(srv.URL+"/", srv.Client()), &calls
}

func writeJSON(w http.ResponseWriter, code int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}

func TestRepository_List(t *testing.T) {
	client, calls := newBackend(t, func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, []student.Student{{StudentID: 1, Name: "An"}, {StudentID: 2, Name: "Bình"}})
	})
	repo := NewRepository[student.Student](client, student.Path)

	got, err := repo.List(context.Background())
	require.NoError(t, err)
	assert.Len(t, got, 2)
	assert.Equal(t, "Bình", got[1].Name)
	assert.Equal(t, []recorded{{method: http.MethodGet, path: "/students"}}, *calls)

	s, err := repo.Get(context.Background(), 2)
	require.NoError(t, err)
	assert.Equal(t, "Bình", s.Name)

	_, err = repo.Get(context.Background(), 3)
	assert.Equal(t, core.ErrNotFound, err)
}

func TestRepository_nullList(t *testing.T) {
	client, _ := newBackend(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("null"))
	})
	got, err := NewRepository[student.Student](client, student.Path).List(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestRepository_mutations(t *testing.T) {
	client, calls := newBackend(t, func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case http.MethodPost:
			writeJSON(w, http.StatusCreated, class.Class{ClassID: 10, SubjectID: 2, SubjectName: "Giải tích"})
		case http.MethodPut:
			w.WriteHeader(http.StatusNoContent)
		case http.MethodDelete:
			w.WriteHeader(http.StatusOK)
		}
	})
	repo := NewRepository[class.Class](client, class.Path)
	ctx := context.Background()

	created, err := repo.Create(ctx, class.Class{SubjectID: 2, StartTime: "07:00:00"})
	require.NoError(t, err)
	assert.Equal(t, 10, created.ClassID)
	assert.Equal(t, "Giải tích", created.SubjectName)

	updated, err := repo.Update(ctx, 10, class.Class{ClassID: 10, Room: "201"})
	require.NoError(t, err)
	assert.Equal(t, "201", updated.Room, "an empty answer keeps the sent record")

	require.NoError(t, repo.Delete(ctx, 10))

	require.Len(t, *calls, 3)
	assert.Equal(t, http.MethodPost, (*calls)[0].method)
	assert.Equal(t, "/classes", (*calls)[0].path)
	assert.JSONEq(t, `{"subjectId":2,"teacherId":0,"semester":"","academicYear":"","room":"","studyDate":"","startTime":"07:00:00","endTime":""}`, (*calls)[0].body)
	assert.Equal(t, recorded{method: http.MethodPut, path: "/classes/10", body: (*calls)[1].body}, (*calls)[1])
	assert.Equal(t, recorded{method: http.MethodDelete, path: "/classes/10"}, (*calls)[2])
}

func TestClient_errors(t *testing.T) {
	tests := []struct {
		name     string
		code     int
		body     string
		check    func(t *testing.T, err error)
		wantText string
	}{
		{
			name: "conflict with message", code: http.StatusConflict, body: `{"message":"Phòng 500 đã có lớp vào giờ này"}`,
			check: func(t *testing.T, err error) { assert.True(t, core.IsConflict(err)) },
			wantText: "Phòng 500 đã có lớp vào giờ này",
		},
		{
			name: "no message", code: http.StatusInternalServerError, body: `oops`,
			check:    func(t *testing.T, err error) { assert.False(t, core.IsConflict(err)) },
			wantText: "Internal Server Error",
		},
		{
			name: "not found", code: http.StatusNotFound,
			check:    func(t *testing.T, err error) { assert.Equal(t, core.ErrNotFound, errors.Cause(err)) },
			wantText: "not found",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client, _ := newBackend(t, func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.code)
				_, _ = w.Write([]byte(tt.body))
			})
			_, err := NewRepository[class.Class](client, class.Path).Create(context.Background(), class.Class{})
			require.Error(t, err)
			tt.check(t, err)
			assert.Equal(t, tt.wantText, err.Error())
		})
	}
}

func TestClient_timeout(t *testing.T) {
	done := make(chan struct{})
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-done:
		case <-time.After(2 * time.Second):
		}
	}))
	defer srv.Close()
	defer close(done)

	client := NewClientWithHTTP(srv.URL, &http.Client{Timeout: 50 * time.Millisecond})
	_, err := NewRepository[student.Student](client, student.Path).List(context.Background())
	assert.Error(t, err)
}

func TestTeacherFinder(t *testing.T) {
	client, calls := newBackend(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`[{"teacherId":4,"name":"Lê Cường","experience":3}]`))
	})
	repos := NewRepositories(client)

	teachers, err := repos.Finder.TeachersBySubject(context.Background(), 7)
	require.NoError(t, err)
	require.Len(t, teachers, 1)
	assert.Equal(t, 4, teachers[0].TeacherID)
	assert.Equal(t, "/teachers/subject/7", (*calls)[0].path)
}

func TestClient_WaitReady(t *testing.T) {
	var hits int
	client, _ := newBackend(t, func(w http.ResponseWriter, r *http.Request) {
		hits++
		if hits < 3 {
			w.WriteHeader(http.StatusServiceUnavailable)
			return
		}
		_, _ = w.Write([]byte("[]"))
	})
	require.NoError(t, client.WaitReady(context.Background(), student.Path, 5))
	assert.Equal(t, 3, hits)

	hits = -10
	assert.Error(t, client.WaitReady(context.Background(), student.Path, 2))
}
