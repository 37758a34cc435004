package subject

import (
	"strconv"

	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"

	"github.com/nkminh14/uniconsole/core"
	"github.com/nkminh14/uniconsole/core/listing"
	"github.com/nkminh14/uniconsole/core/resource"
)

// Path is the backend collection of subjects.
const Path = "/subjects"

type Subject struct {
	SubjectID   int    `json:"subjectId,omitempty"`
	SubjectName string `json:"subjectName"`
	Credits     int    `json:"credits"`
	Description string `json:"description"`
	FacultyID   int    `json:"facultyId"`
	FacultyName string `json:"facultyName,omitempty"` // read-only, filled by the backend
}

func (s Subject) ID() int { return s.SubjectID }

func (s Subject) Field(key string) interface{} {
	switch key {
	case "subjectId":
		return s.SubjectID
	case "subjectName":
		return s.SubjectName
	case "credits":
		return s.Credits
	case "description":
		return s.Description
	case "facultyId":
		return s.FacultyID
	case "facultyName":
		return s.FacultyName
	}
	return nil
}

var (
	Columns = []listing.Column{
		{Title: "ID", Key: "subjectId"},
		{Title: "Tên môn", Key: "subjectName", Sortable: true},
		{Title: "Số tín chỉ", Key: "credits", Sortable: true},
		{Title: "Khoa", Key: "facultyId"},
		{Title: "Mô tả", Key: "description"},
	}

	SearchTypes = []listing.SearchType{
		{Key: "subjectName", Label: "Tìm theo tên môn"},
		{Key: "subjectId", Label: "Tìm theo ID"},
	}
)

type Form struct {
	ID          int    `json:"-" form:"-"`
	SubjectName string `json:"subjectName" form:"subjectName" label:"Tên môn" validate:"required"`
	Credits     string `json:"credits" form:"credits" label:"Số tín chỉ" validate:"required,uint_"`
	Description string `json:"description" form:"description" label:"Mô tả"`
	FacultyID   string `json:"facultyId" form:"facultyId" label:"Khoa" validate:"required"`
}

func FormFrom(s Subject) Form {
	return Form{
		ID:          s.SubjectID,
		SubjectName: s.SubjectName,
		Credits:     strconv.Itoa(s.Credits),
		Description: s.Description,
		FacultyID:   core.IDString(s.FacultyID),
	}
}

func (f *Form) Clean() {
	f.SubjectName = core.CleanString(f.SubjectName)
	f.Credits = core.CleanString(f.Credits)
	f.Description = core.CleanString(f.Description)
	f.FacultyID = core.CleanString(f.FacultyID)
}

func (f *Form) Validate(validate *validator.Validate, translator ut.Translator) error {
	f.Clean()
	return core.Check(validate, translator, f)
}

func (f Form) Payload() Subject {
	return Subject{
		SubjectID:   f.ID,
		SubjectName: f.SubjectName,
		Credits:     core.Atoi(f.Credits),
		Description: f.Description,
		FacultyID:   core.Atoi(f.FacultyID),
	}
}

type (
	Repository = resource.Repository[Subject]
	Service    = resource.Service[Subject]
)

func NewService(repo Repository) *Service {
	return resource.NewService[Subject]("môn học", repo, Columns, SearchTypes)
}
