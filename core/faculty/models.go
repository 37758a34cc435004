package faculty

import (
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"

	"github.com/nkminh14/uniconsole/core"
	"github.com/nkminh14/uniconsole/core/listing"
	"github.com/nkminh14/uniconsole/core/resource"
)

// Path is the backend collection of faculties.
const Path = "/faculties"

type Faculty struct {
	FacultyID   int    `json:"facultyId,omitempty"`
	FacultyName string `json:"facultyName"`
	Dean        string `json:"dean"`
	Phone       string `json:"phone"`
	Email       string `json:"email"`
	Address     string `json:"address"`
	Description string `json:"description"`
}

func (f Faculty) ID() int { return f.FacultyID }

func (f Faculty) Field(key string) interface{} {
	switch key {
	case "facultyId":
		return f.FacultyID
	case "facultyName":
		return f.FacultyName
	case "dean":
		return f.Dean
	case "phone":
		return f.Phone
	case "email":
		return f.Email
	case "address":
		return f.Address
	case "description":
		return f.Description
	}
	return nil
}

var (
	Columns = []listing.Column{
		{Title: "ID", Key: "facultyId"},
		{Title: "Tên Khoa", Key: "facultyName", Sortable: true},
		{Title: "Trưởng Khoa", Key: "dean", Sortable: true},
		{Title: "SĐT", Key: "phone"},
		{Title: "Email", Key: "email"},
		{Title: "Địa chỉ", Key: "address"},
	}

	SearchTypes = []listing.SearchType{
		{Key: "facultyName", Label: "Tìm theo tên khoa"},
		{Key: "facultyId", Label: "Tìm theo ID"},
		{Key: "dean", Label: "Tìm theo trưởng khoa"},
	}
)

type Form struct {
	ID          int    `json:"-" form:"-"`
	FacultyName string `json:"facultyName" form:"facultyName" label:"Tên khoa" validate:"required"`
	Dean        string `json:"dean" form:"dean" label:"Tên trưởng khoa" validate:"required"`
	Phone       string `json:"phone" form:"phone" label:"Số điện thoại" validate:"required,phone0"`
	Email       string `json:"email" form:"email" label:"Email" validate:"required,email"`
	Address     string `json:"address" form:"address" label:"Địa chỉ"`
	Description string `json:"description" form:"description" label:"Mô tả"`
}

func FormFrom(f Faculty) Form {
	return Form{
		ID:          f.FacultyID,
		FacultyName: f.FacultyName,
		Dean:        f.Dean,
		Phone:       f.Phone,
		Email:       f.Email,
		Address:     f.Address,
		Description: f.Description,
	}
}

func (f *Form) Clean() {
	f.FacultyName = core.CleanString(f.FacultyName)
	f.Dean = core.CleanString(f.Dean)
	f.Phone = core.CleanString(f.Phone)
	f.Email = core.CleanString(f.Email)
	f.Address = core.CleanString(f.Address)
	f.Description = core.CleanString(f.Description)
}

func (f *Form) Validate(validate *validator.Validate, translator ut.Translator) error {
	f.Clean()
	return core.Check(validate, translator, f)
}

func (f Form) Payload() Faculty {
	return Faculty{
		FacultyID:   f.ID,
		FacultyName: f.FacultyName,
		Dean:        f.Dean,
		Phone:       f.Phone,
		Email:       f.Email,
		Address:     f.Address,
		Description: f.Description,
	}
}

type (
	Repository = resource.Repository[Faculty]
	Service    = resource.Service[Faculty]
)

func NewService(repo Repository) *Service {
	return resource.NewService[Faculty]("khoa", repo, Columns, SearchTypes)
}
