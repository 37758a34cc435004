package student

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nkminh14/uniconsole/core"
)

func validForm() Form {
	return Form{
		StudentCode: "SV001",
		Name:        "Nguyễn Văn An",
		DateOfBirth: "2003-05-14",
		ClassID:     "3",
		FacultyID:   "1",
		Phone:       "0912345678",
		Email:       "an@uni.edu.vn",
	}
}

func TestForm_Validate(t *testing.T) {
	validate, translator := core.NewValidator()
	InitValidators(validate, translator)

	tests := []struct {
		name    string
		mutate  func(f *Form)
		wantErr map[string]string
	}{
		{name: "valid", mutate: func(f *Form) {}},
		{name: "trimmed values are valid", mutate: func(f *Form) { f.Name = "  An  "; f.Phone = " 0912345678 " }},
		{
			name:   "everything missing",
			mutate: func(f *Form) { *f = Form{} },
			wantErr: map[string]string{
				"studentCode": "Mã số sinh viên không được để trống",
				"name":        "Tên không được để trống",
				"dateOfBirth": "Ngày sinh không được để trống",
				"classId":     "Lớp không được để trống",
				"facultyId":   "Khoa không được để trống",
				"phone":       "Số điện thoại không được để trống",
				"email":       "Email không được để trống",
			},
		},
		{name: "bad date", mutate: func(f *Form) { f.DateOfBirth = "14/05/2003" }, wantErr: map[string]string{"dateOfBirth": "Định dạng ngày sinh là YYYY-MM-DD"}},
		{name: "9 digit phone", mutate: func(f *Form) { f.Phone = "012345678" }, wantErr: map[string]string{"phone": "Số điện thoại phải có 10 chữ số"}},
		{name: "10 digit phone", mutate: func(f *Form) { f.Phone = "0123456789" }},
		{name: "bad email", mutate: func(f *Form) { f.Email = "an@" }, wantErr: map[string]string{"email": "Email không hợp lệ"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := validForm()
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

func TestForm_Payload(t *testing.T) {
	f := validForm()
	f.ID = 7
	f.Name = " Nguyễn Văn An "
	f.Clean()

	assert.Equal(t, Student{
		StudentID:   7,
		StudentCode: "SV001",
		Name:        "Nguyễn Văn An",
		DateOfBirth: "2003-05-14",
		ClassID:     3,
		FacultyID:   1,
		Phone:       "0912345678",
		Email:       "an@uni.edu.vn",
	}, f.Payload())

	assert.Equal(t, f, FormFrom(f.Payload()))
}

func TestForm_KeepIdentity(t *testing.T) {
	f := validForm()
	f.StudentCode = "SV999"
	f.KeepIdentity(Student{StudentCode: "SV001"})
	assert.Equal(t, "SV001", f.StudentCode)
}
