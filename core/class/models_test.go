package class

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nkminh14/uniconsole/core"
)

func validForm() Form {
	return Form{
		SubjectID:    "2",
		TeacherID:    "5",
		Semester:     "Học kỳ 1",
		AcademicYear: "2024-2025",
		Room:         "500",
		StudyDate:    "2024-09-10",
		StartTime:    "07:00",
		EndTime:      "09:30",
	}
}

func TestForm_Validate(t *testing.T) {
	NowFunc = func() time.Time { return time.Date(2024, 9, 5, 15, 0, 0, 0, time.Local) }
	defer func() { NowFunc = time.Now }()

	validate, translator := core.NewValidator()
	InitValidators(validate, translator)

	tests := []struct {
		name    string
		mutate  func(f *Form)
		wantErr map[string]string
	}{
		{name: "valid", mutate: func(f *Form) {}},
		{name: "semester ignores case", mutate: func(f *Form) { f.Semester = "học kỳ 2" }},
		{name: "bad semester", mutate: func(f *Form) { f.Semester = "HK2" }, wantErr: map[string]string{"semester": `Định dạng đúng: "Học kỳ 2"`}},
		{name: "academic year with spaces", mutate: func(f *Form) { f.AcademicYear = "2024 - 2025" }},
		{name: "academic year with slash", mutate: func(f *Form) { f.AcademicYear = "2024/2025" }, wantErr: map[string]string{"academicYear": "Năm học phải theo dạng 2024-2025"}},
		{name: "room too low", mutate: func(f *Form) { f.Room = "50" }, wantErr: map[string]string{"room": "Phòng học phải từ 100 đến 1000"}},
		{name: "room too high", mutate: func(f *Form) { f.Room = "1001" }, wantErr: map[string]string{"room": "Phòng học phải từ 100 đến 1000"}},
		{name: "room upper bound", mutate: func(f *Form) { f.Room = "1000" }},
		{name: "room with letters", mutate: func(f *Form) { f.Room = "A101" }, wantErr: map[string]string{"room": "Phòng học chỉ chứa số"}},
		{name: "study date today", mutate: func(f *Form) { f.StudyDate = "2024-09-05" }},
		{name: "study date in the past", mutate: func(f *Form) { f.StudyDate = "2024-09-04" }, wantErr: map[string]string{"studyDate": "Ngày học không được trước hôm nay"}},
		{name: "study date malformed", mutate: func(f *Form) { f.StudyDate = "10/09/2024" }, wantErr: map[string]string{"studyDate": "Ngày học phải có dạng YYYY-MM-DD"}},
		{
			name:    "start after end",
			mutate:  func(f *Form) { f.StartTime = "08:00"; f.EndTime = "07:00" },
			wantErr: map[string]string{"startTime": "Giờ bắt đầu phải trước giờ kết thúc"},
		},
		{
			name:    "start equals end with seconds",
			mutate:  func(f *Form) { f.StartTime = "08:00:00"; f.EndTime = "08:00" },
			wantErr: map[string]string{"startTime": "Giờ bắt đầu phải trước giờ kết thúc"},
		},
		{
			name:   "times missing",
			mutate: func(f *Form) { f.StartTime = ""; f.EndTime = "" },
			wantErr: map[string]string{
				"startTime": "Giờ bắt đầu không được để trống",
				"endTime":   "Giờ kết thúc không được để trống",
			},
		},
		{
			name:   "subject and teacher missing",
			mutate: func(f *Form) { f.SubjectID = ""; f.TeacherID = "" },
			wantErr: map[string]string{
				"subjectId": "Môn học không được để trống",
				"teacherId": "Giảng viên không được để trống",
			},
		},
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
			vErr, ok := err.(*core.ValidationError)
			require.True(t, ok, "got %T: %v", err, err)
			assert.Equal(t, tt.wantErr, vErr.Map())
		})
	}
}

func TestForm_Payload(t *testing.T) {
	f := validForm()
	f.ID = 12
	f.Room = " 500 "
	f.Clean()

	assert.Equal(t, Class{
		ClassID:      12,
		SubjectID:    2,
		TeacherID:    5,
		Semester:     "Học kỳ 1",
		AcademicYear: "2024-2025",
		Room:         "500",
		StudyDate:    "2024-09-10",
		StartTime:    "07:00:00",
		EndTime:      "09:30:00",
	}, f.Payload())

	assert.Equal(t, f, FormFrom(f.Payload()), "clock values are shortened back for the form")
}

func TestForm_ChangeSubject(t *testing.T) {
	qualified := func(ids ...int) func(int) bool {
		return func(id int) bool {
			for _, q := range ids {
				if q == id {
					return true
				}
			}
			return false
		}
	}

	f := validForm()
	f.ChangeSubject("3", qualified(5, 6))
	assert.Equal(t, "3", f.SubjectID)
	assert.Equal(t, "5", f.TeacherID, "a qualified teacher is kept")

	f.ChangeSubject("4", qualified(6))
	assert.Equal(t, "", f.TeacherID)

	f.TeacherID = "6"
	f.ChangeSubject("", qualified(6))
	assert.Equal(t, "", f.TeacherID, "no subject means no teacher")
}

func TestClass_Label(t *testing.T) {
	assert.Equal(t, "#3 - Giải tích", Class{ClassID: 3, SubjectName: "Giải tích"}.Label())
	assert.Equal(t, "#3", Class{ClassID: 3}.Label())
}
