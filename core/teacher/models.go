package teacher

import (
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"

	"github.com/nkminh14/uniconsole/core"
	"github.com/nkminh14/uniconsole/core/listing"
)

const (
	// Path is the backend collection of teachers.
	Path = "/teachers"
	// BySubjectPath lists the teachers able to teach one subject.
	BySubjectPath = "/teachers/subject"
)

type Teacher struct {
	TeacherID    int     `json:"teacherId,omitempty"`
	Name         string  `json:"name"`
	AcademicRank string  `json:"academicRank"`
	Experience   float64 `json:"experience"` // years
	FacultyID    int     `json:"facultyId"`
	Phone        string  `json:"phone"`
	Email        string  `json:"email"`
}

func (t Teacher) ID() int { return t.TeacherID }

func (t Teacher) Field(key string) interface{} {
	switch key {
	case "teacherId":
		return t.TeacherID
	case "name":
		return t.Name
	case "academicRank":
		return t.AcademicRank
	case "experience":
		return t.Experience
	case "facultyId":
		return t.FacultyID
	case "phone":
		return t.Phone
	case "email":
		return t.Email
	}
	return nil
}

var (
	Columns = []listing.Column{
		{Title: "ID", Key: "teacherId"},
		{Title: "Tên", Key: "name", Sortable: true},
		{Title: "Học hàm", Key: "academicRank", Sortable: true},
		{Title: "Kinh nghiệm", Key: "experience", Sortable: true},
		{Title: "Khoa", Key: "facultyId"},
		{Title: "SĐT", Key: "phone"},
		{Title: "Email", Key: "email"},
	}

	SearchTypes = []listing.SearchType{
		{Key: "name", Label: "Tìm theo tên"},
		{Key: "teacherId", Label: "Tìm theo ID"},
		{Key: "academicRank", Label: "Tìm theo học hàm"},
	}
)

type Form struct {
	ID           int    `json:"-" form:"-"`
	Name         string `json:"name" form:"name" label:"Tên" validate:"required"`
	AcademicRank string `json:"academicRank" form:"academicRank" label:"Học hàm" validate:"required"`
	Experience   string `json:"experience" form:"experience" label:"Kinh nghiệm" validate:"required,nonneg"`
	FacultyID    string `json:"facultyId" form:"facultyId" label:"Khoa" validate:"required"`
	Phone        string `json:"phone" form:"phone" label:"Số điện thoại" validate:"required,phone0"`
	Email        string `json:"email" form:"email" label:"Email" validate:"required,email"`
}

func FormFrom(t Teacher) Form {
	exp := t.Experience
	return Form{
		ID:           t.TeacherID,
		Name:         t.Name,
		AcademicRank: t.AcademicRank,
		Experience:   core.FloatString(&exp),
		FacultyID:    core.IDString(t.FacultyID),
		Phone:        t.Phone,
		Email:        t.Email,
	}
}

func (f *Form) Clean() {
	f.Name = core.CleanString(f.Name)
	f.AcademicRank = core.CleanString(f.AcademicRank)
	f.Experience = core.CleanString(f.Experience)
	f.FacultyID = core.CleanString(f.FacultyID)
	f.Phone = core.CleanString(f.Phone)
	f.Email = core.CleanString(f.Email)
}

func (f *Form) Validate(validate *validator.Validate, translator ut.Translator) error {
	f.Clean()
	return core.Check(validate, translator, f)
}

func (f Form) Payload() Teacher {
	return Teacher{
		TeacherID:    f.ID,
		Name:         f.Name,
		AcademicRank: f.AcademicRank,
		Experience:   core.ParseFloat(f.Experience),
		FacultyID:    core.Atoi(f.FacultyID),
		Phone:        f.Phone,
		Email:        f.Email,
	}
}
