package teacher

import (
	"context"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nkminh14/uniconsole/core"
)

func TestForm_Validate(t *testing.T) {
	validate, translator := core.NewValidator()

	valid := Form{Name: "Trần Bình", AcademicRank: "Tiến sĩ", Experience: "5", FacultyID: "2", Phone: "0912345678", Email: "binh@uni.edu.vn"}
	tests := []struct {
		name    string
		mutate  func(f *Form)
		wantErr map[string]string
	}{
		{name: "valid", mutate: func(f *Form) {}},
		{name: "decimal experience", mutate: func(f *Form) { f.Experience = "2.5" }},
		{name: "zero experience", mutate: func(f *Form) { f.Experience = "0" }},
		{name: "negative experience", mutate: func(f *Form) { f.Experience = "-1" }, wantErr: map[string]string{"experience": "Kinh nghiệm phải là một số không âm"}},
		{name: "text experience", mutate: func(f *Form) { f.Experience = "năm" }, wantErr: map[string]string{"experience": "Kinh nghiệm phải là một số không âm"}},
		{name: "phone not starting with 0", mutate: func(f *Form) { f.Phone = "1912345678" }, wantErr: map[string]string{"phone": "SĐT phải bắt đầu bằng 0 và có 10 chữ số"}},
		{name: "9 digit phone", mutate: func(f *Form) { f.Phone = "012345678" }, wantErr: map[string]string{"phone": "SĐT phải bắt đầu bằng 0 và có 10 chữ số"}},
		{
			name:   "required fields",
			mutate: func(f *Form) { f.Name = " "; f.AcademicRank = ""; f.FacultyID = "" },
			wantErr: map[string]string{
				"name":         "Tên không được để trống",
				"academicRank": "Học hàm không được để trống",
				"facultyId":    "Khoa không được để trống",
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := valid
			tt.mutate(&f)
			err := f.Validate(validate, translator)
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			var vErr *core.ValidationError
			require.True(t, errors.As(err, &vErr), "got %v", err)
			assert.Equal(t, tt.wantErr, vErr.Map())
		})
	}
}

func TestForm_roundTrip(t *testing.T) {
	tch := Teacher{TeacherID: 4, Name: "Lê Cường", AcademicRank: "Thạc sĩ", Experience: 3.5, FacultyID: 1, Phone: "0987654321", Email: "c@uni.edu.vn"}
	f := FormFrom(tch)
	assert.Equal(t, "3.5", f.Experience)
	assert.Equal(t, tch, f.Payload())
}

type finderFunc func(ctx context.Context, subjectID int) ([]Teacher, error)

func (fn finderFunc) TeachersBySubject(ctx context.Context, subjectID int) ([]Teacher, error) {
	return fn(ctx, subjectID)
}

func TestService_BySubject(t *testing.T) {
	var calls int
	svc := NewService(nil, finderFunc(func(ctx context.Context, subjectID int) ([]Teacher, error) {
		calls++
		if subjectID == 9 {
			return nil, errors.New("boom")
		}
		return []Teacher{{TeacherID: 1}, {TeacherID: 3}}, nil
	}))

	got, err := svc.BySubject(context.Background(), 0)
	require.NoError(t, err)
	assert.Empty(t, got)
	assert.Equal(t, 0, calls, "no subject must not hit the backend")

	got, err = svc.BySubject(context.Background(), 2)
	require.NoError(t, err)
	assert.True(t, Contains(got, 3))
	assert.False(t, Contains(got, 2))

	_, err = svc.BySubject(context.Background(), 9)
	assert.EqualError(t, err, "listing teachers of subject 9: boom")
}
