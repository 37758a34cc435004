package tuition

import (
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"

	"github.com/nkminh14/uniconsole/core"
	"github.com/nkminh14/uniconsole/core/listing"
	"github.com/nkminh14/uniconsole/core/resource"
)

// Path is the backend collection of tuition records.
const Path = "/tuitions"

// Payment statuses
const (
	StatusPaid    = "PAID"
	StatusUnpaid  = "UNPAID"
	StatusPartial = "PARTIAL"
)

var (
	Statuses = []string{StatusPaid, StatusUnpaid, StatusPartial}

	statusLabels = map[string]string{
		StatusPaid:    "Đã đóng",
		StatusUnpaid:  "Chưa đóng",
		StatusPartial: "Đóng một phần",
	}
)

// StatusLabel returns the human name of a status, or the status itself when unknown.
func StatusLabel(status string) string {
	if label, ok := statusLabels[status]; ok {
		return label
	}
	return status
}

type Tuition struct {
	TuitionID   int     `json:"tuitionId,omitempty"`
	StudentID   int     `json:"studentId"`
	StudentCode string  `json:"studentCode,omitempty"` // read-only
	StudentName string  `json:"studentName,omitempty"` // read-only
	Semester    string  `json:"semester"`
	Amount      float64 `json:"amount"`
	StartDate   string  `json:"startDate"` // YYYY-MM-DD
	EndDate     string  `json:"endDate"`   // YYYY-MM-DD
	Status      string  `json:"status"`
}

func (t Tuition) ID() int { return t.TuitionID }

func (t Tuition) Field(key string) interface{} {
	switch key {
	case "tuitionId":
		return t.TuitionID
	case "studentId":
		return t.StudentID
	case "studentCode":
		return t.StudentCode
	case "studentName":
		return t.StudentName
	case "semester":
		return t.Semester
	case "amount":
		return t.Amount
	case "startDate":
		return t.StartDate
	case "endDate":
		return t.EndDate
	case "status":
		return t.Status
	}
	return nil
}

var (
	Columns = []listing.Column{
		{Title: "ID", Key: "tuitionId"},
		{Title: "MSSV", Key: "studentCode", Sortable: true},
		{Title: "Sinh viên", Key: "studentName", Sortable: true},
		{Title: "Học kỳ", Key: "semester", Sortable: true},
		{Title: "Số tiền", Key: "amount", Sortable: true},
		{Title: "Ngày bắt đầu", Key: "startDate", Sortable: true},
		{Title: "Ngày kết thúc", Key: "endDate", Sortable: true},
		{Title: "Trạng thái", Key: "status", Sortable: true},
	}

	SearchTypes = []listing.SearchType{
		{Key: "studentCode", Label: "Tìm theo MSSV"},
		{Key: "studentName", Label: "Tìm theo tên"},
		{Key: "semester", Label: "Tìm theo học kỳ"},
		{Key: "status", Label: "Tìm theo trạng thái"},
	}
)

type Form struct {
	ID        int    `json:"-" form:"-"`
	StudentID string `json:"studentId" form:"studentId" label:"sinh viên" validate:"pick"`
	Semester  string `json:"semester" form:"semester" label:"Học kỳ" validate:"required"`
	Amount    string `json:"amount" form:"amount" label:"Số tiền" validate:"required,money,positive"`
	StartDate string `json:"startDate" form:"startDate" label:"Ngày bắt đầu" validate:"required,isodate"`
	EndDate   string `json:"endDate" form:"endDate" label:"Ngày kết thúc" validate:"required,isodate"`
	Status    string `json:"status" form:"status" label:"Trạng thái" validate:"status"`
}

// NewForm returns the blank form, defaulting to an unpaid record.
func NewForm() Form {
	return Form{Status: StatusUnpaid}
}

func FormFrom(t Tuition) Form {
	amount := t.Amount
	return Form{
		ID:        t.TuitionID,
		StudentID: core.IDString(t.StudentID),
		Semester:  t.Semester,
		Amount:    core.FloatString(&amount),
		StartDate: t.StartDate,
		EndDate:   t.EndDate,
		Status:    t.Status,
	}
}

func (f *Form) Clean() {
	f.StudentID = core.CleanString(f.StudentID)
	f.Semester = core.CleanString(f.Semester)
	f.Amount = core.CleanString(f.Amount)
	f.StartDate = core.CleanString(f.StartDate)
	f.EndDate = core.CleanString(f.EndDate)
	f.Status = core.CleanString(f.Status)
}

func (f *Form) Validate(validate *validator.Validate, translator ut.Translator) error {
	f.Clean()
	return core.Check(validate, translator, f)
}

func (f Form) Payload() Tuition {
	return Tuition{
		TuitionID: f.ID,
		StudentID: core.Atoi(f.StudentID),
		Semester:  f.Semester,
		Amount:    core.ParseFloat(f.Amount),
		StartDate: f.StartDate,
		EndDate:   f.EndDate,
		Status:    f.Status,
	}
}

type (
	Repository = resource.Repository[Tuition]
	Service    = resource.Service[Tuition]
)

func NewService(repo Repository) *Service {
	return resource.NewService[Tuition]("học phí", repo, Columns, SearchTypes)
}
