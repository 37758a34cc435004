package student

import (
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"

	"github.com/nkminh14/uniconsole/core"
	"github.com/nkminh14/uniconsole/core/listing"
)

// Path is the backend collection of students.
const Path = "/students"

type Student struct {
	StudentID   int    `json:"studentId,omitempty"`
	StudentCode string `json:"studentCode"`
	Name        string `json:"name"`
	DateOfBirth string `json:"dateOfBirth"` // YYYY-MM-DD
	ClassID     int    `json:"classId"`
	FacultyID   int    `json:"facultyId"`
	Phone       string `json:"phone"`
	Email       string `json:"email"`
}

func (s Student) ID() int { return s.StudentID }

func (s Student) Field(key string) interface{} {
	switch key {
	case "studentId":
		return s.StudentID
	case "studentCode":
		return s.StudentCode
	case "name":
		return s.Name
	case "dateOfBirth":
		return s.DateOfBirth
	case "classId":
		return s.ClassID
	case "facultyId":
		return s.FacultyID
	case "phone":
		return s.Phone
	case "email":
		return s.Email
	}
	return nil
}

var (
	Columns = []listing.Column{
		{Title: "ID", Key: "studentId"},
		{Title: "MSSV", Key: "studentCode", Sortable: true},
		{Title: "Họ tên", Key: "name", Sortable: true},
		{Title: "Ngày sinh", Key: "dateOfBirth", Sortable: true},
		{Title: "Lớp", Key: "classId"},
		{Title: "Khoa", Key: "facultyId"},
		{Title: "SĐT", Key: "phone"},
		{Title: "Email", Key: "email"},
	}

	SearchTypes = []listing.SearchType{
		{Key: "name", Label: "Tìm theo tên"},
		{Key: "studentCode", Label: "Tìm theo MSSV"},
		{Key: "studentId", Label: "Tìm theo ID"},
	}
)

// Form holds the raw values of the add/edit student form.
type Form struct {
	ID          int    `json:"-" form:"-"`
	StudentCode string `json:"studentCode" form:"studentCode" label:"Mã số sinh viên" validate:"required"`
	Name        string `json:"name" form:"name" label:"Tên" validate:"required"`
	DateOfBirth string `json:"dateOfBirth" form:"dateOfBirth" label:"Ngày sinh" validate:"required,dob"`
	ClassID     string `json:"classId" form:"classId" label:"Lớp" validate:"required"`
	FacultyID   string `json:"facultyId" form:"facultyId" label:"Khoa" validate:"required"`
	Phone       string `json:"phone" form:"phone" label:"Số điện thoại" validate:"required,phone10"`
	Email       string `json:"email" form:"email" label:"Email" validate:"required,email"`
}

// FormFrom fills a form with an existing student.
func FormFrom(s Student) Form {
	return Form{
		ID:          s.StudentID,
		StudentCode: s.StudentCode,
		Name:        s.Name,
		DateOfBirth: s.DateOfBirth,
		ClassID:     core.IDString(s.ClassID),
		FacultyID:   core.IDString(s.FacultyID),
		Phone:       s.Phone,
		Email:       s.Email,
	}
}

func (f *Form) Clean() {
	f.StudentCode = core.CleanString(f.StudentCode)
	f.Name = core.CleanString(f.Name)
	f.DateOfBirth = core.CleanString(f.DateOfBirth)
	f.ClassID = core.CleanString(f.ClassID)
	f.FacultyID = core.CleanString(f.FacultyID)
	f.Phone = core.CleanString(f.Phone)
	f.Email = core.CleanString(f.Email)
}

func (f *Form) Validate(validate *validator.Validate, translator ut.Translator) error {
	f.Clean()
	return core.Check(validate, translator, f)
}

// KeepIdentity stops an edit from changing the student code.
func (f *Form) KeepIdentity(orig Student) {
	f.StudentCode = orig.StudentCode
}

func (f Form) Payload() Student {
	return Student{
		StudentID:   f.ID,
		StudentCode: f.StudentCode,
		Name:        f.Name,
		DateOfBirth: f.DateOfBirth,
		ClassID:     core.Atoi(f.ClassID),
		FacultyID:   core.Atoi(f.FacultyID),
		Phone:       f.Phone,
		Email:       f.Email,
	}
}
