package grade

import (
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"

	"github.com/nkminh14/uniconsole/core"
	"github.com/nkminh14/uniconsole/core/listing"
	"github.com/nkminh14/uniconsole/core/resource"
)

// Path is the backend collection of grades.
const Path = "/grades"

// Grade holds the scores of one student in one class. Missing scores are nil.
type Grade struct {
	GradeID         int      `json:"gradeId,omitempty"`
	StudentCode     string   `json:"studentCode"`
	ClassID         int      `json:"classId"`
	AttendanceScore *float64 `json:"attendanceScore"`
	MidtermScore    *float64 `json:"midtermScore"`
	FinalScore      *float64 `json:"finalScore"`
}

func (g Grade) ID() int { return g.GradeID }

func (g Grade) Field(key string) interface{} {
	switch key {
	case "gradeId":
		return g.GradeID
	case "studentCode":
		return g.StudentCode
	case "classId":
		return g.ClassID
	case "attendanceScore":
		return g.AttendanceScore
	case "midtermScore":
		return g.MidtermScore
	case "finalScore":
		return g.FinalScore
	}
	return nil
}

// Scores returns the scores that are present.
func (g Grade) Scores() []float64 {
	scores := make([]float64, 0, 3)
	for _, s := range []*float64{g.AttendanceScore, g.MidtermScore, g.FinalScore} {
		if s != nil {
			scores = append(scores, *s)
		}
	}
	return scores
}

// Mean averages the present scores; ok is false when there are none.
func (g Grade) Mean() (mean float64, ok bool) {
	scores := g.Scores()
	if len(scores) == 0 {
		return 0, false
	}
	var sum float64
	for _, s := range scores {
		sum += s
	}
	return sum / float64(len(scores)), true
}

var (
	Columns = []listing.Column{
		{Title: "Mã điểm", Key: "gradeId"},
		{Title: "Mã sinh viên", Key: "studentCode", Sortable: true},
		{Title: "Mã lớp", Key: "classId", Sortable: true},
		{Title: "Điểm chuyên cần", Key: "attendanceScore", Sortable: true},
		{Title: "Điểm giữa kỳ", Key: "midtermScore", Sortable: true},
		{Title: "Điểm cuối kỳ", Key: "finalScore", Sortable: true},
	}

	SearchTypes = []listing.SearchType{
		{Key: "studentCode", Label: "Tìm theo MSSV"},
		{Key: "classId", Label: "Tìm theo Mã Lớp"},
	}
)

type Form struct {
	ID              int    `json:"-" form:"-"`
	StudentCode     string `json:"studentCode" form:"studentCode" label:"Mã sinh viên" validate:"required"`
	ClassID         string `json:"classId" form:"classId" label:"Mã lớp" validate:"required"`
	AttendanceScore string `json:"attendanceScore" form:"attendanceScore" label:"Điểm chuyên cần" validate:"omitempty,score"`
	MidtermScore    string `json:"midtermScore" form:"midtermScore" label:"Điểm giữa kỳ" validate:"omitempty,score"`
	FinalScore      string `json:"finalScore" form:"finalScore" label:"Điểm cuối kỳ" validate:"omitempty,score"`
}

func FormFrom(g Grade) Form {
	return Form{
		ID:              g.GradeID,
		StudentCode:     g.StudentCode,
		ClassID:         core.IDString(g.ClassID),
		AttendanceScore: core.FloatString(g.AttendanceScore),
		MidtermScore:    core.FloatString(g.MidtermScore),
		FinalScore:      core.FloatString(g.FinalScore),
	}
}

func (f *Form) Clean() {
	f.StudentCode = core.CleanString(f.StudentCode)
	f.ClassID = core.CleanString(f.ClassID)
	f.AttendanceScore = core.CleanString(f.AttendanceScore)
	f.MidtermScore = core.CleanString(f.MidtermScore)
	f.FinalScore = core.CleanString(f.FinalScore)
}

func (f *Form) Validate(validate *validator.Validate, translator ut.Translator) error {
	f.Clean()
	return core.Check(validate, translator, f)
}

// KeepIdentity stops an edit from moving the grade to another student.
func (f *Form) KeepIdentity(orig Grade) {
	f.StudentCode = orig.StudentCode
}

func (f Form) Payload() Grade {
	return Grade{
		GradeID:         f.ID,
		StudentCode:     f.StudentCode,
		ClassID:         core.Atoi(f.ClassID),
		AttendanceScore: core.OptFloat(f.AttendanceScore),
		MidtermScore:    core.OptFloat(f.MidtermScore),
		FinalScore:      core.OptFloat(f.FinalScore),
	}
}

type (
	Repository = resource.Repository[Grade]
	Service    = resource.Service[Grade]
)

func NewService(repo Repository) *Service {
	return resource.NewService[Grade]("điểm", repo, Columns, SearchTypes)
}
