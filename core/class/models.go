package class

import (
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"

	"github.com/nkminh14/uniconsole/core"
	"github.com/nkminh14/uniconsole/core/listing"
)

// Path is the backend collection of classes.
const Path = "/classes"

type Class struct {
	ClassID      int    `json:"classId,omitempty"`
	SubjectID    int    `json:"subjectId"`
	SubjectName  string `json:"subjectName,omitempty"` // read-only, filled by the backend
	TeacherID    int    `json:"teacherId"`
	Semester     string `json:"semester"`
	AcademicYear string `json:"academicYear"`
	Room         string `json:"room"`
	StudyDate    string `json:"studyDate"` // YYYY-MM-DD
	StartTime    string `json:"startTime"` // HH:MM:SS
	EndTime      string `json:"endTime"`   // HH:MM:SS
}

func (c Class) ID() int { return c.ClassID }

func (c Class) Field(key string) interface{} {
	switch key {
	case "classId":
		return c.ClassID
	case "subjectId":
		return c.SubjectID
	case "subjectName":
		return c.SubjectName
	case "teacherId":
		return c.TeacherID
	case "semester":
		return c.Semester
	case "academicYear":
		return c.AcademicYear
	case "room":
		return c.Room
	case "studyDate":
		return c.StudyDate
	case "startTime":
		return c.StartTime
	case "endTime":
		return c.EndTime
	}
	return nil
}

var (
	Columns = []listing.Column{
		{Title: "ID", Key: "classId"},
		{Title: "Môn học", Key: "subjectName", Sortable: true},
		{Title: "Giảng viên", Key: "teacherId"},
		{Title: "Học kỳ", Key: "semester", Sortable: true},
		{Title: "Năm học", Key: "academicYear", Sortable: true},
		{Title: "Phòng", Key: "room", Sortable: true},
		{Title: "Ngày học", Key: "studyDate", Sortable: true},
		{Title: "Giờ bắt đầu", Key: "startTime"},
		{Title: "Giờ kết thúc", Key: "endTime"},
	}

	SearchTypes = []listing.SearchType{
		{Key: "subjectName", Label: "Tìm theo môn học"},
		{Key: "classId", Label: "Tìm theo ID"},
		{Key: "room", Label: "Tìm theo phòng"},
		{Key: "semester", Label: "Tìm theo học kỳ"},
	}
)

// Label names a class for pickers and lookups, e.g. "#3 - Giải tích".
func (c Class) Label() string {
	if c.SubjectName == "" {
		return "#" + core.IDString(c.ClassID)
	}
	return "#" + core.IDString(c.ClassID) + " - " + c.SubjectName
}

type Form struct {
	ID           int    `json:"-" form:"-"`
	SubjectID    string `json:"subjectId" form:"subjectId" label:"Môn học" validate:"required"`
	TeacherID    string `json:"teacherId" form:"teacherId" label:"Giảng viên" validate:"required"`
	Semester     string `json:"semester" form:"semester" label:"Học kỳ" validate:"required,semesterno"`
	AcademicYear string `json:"academicYear" form:"academicYear" label:"Năm học" validate:"required,academicyear"`
	Room         string `json:"room" form:"room" label:"Phòng học" validate:"required,digitsonly,room"`
	StudyDate    string `json:"studyDate" form:"studyDate" label:"Ngày học" validate:"required,isodate"`
	StartTime    string `json:"startTime" form:"startTime" label:"Giờ bắt đầu" validate:"required,clock"`
	EndTime      string `json:"endTime" form:"endTime" label:"Giờ kết thúc" validate:"required,clock"`
}

func FormFrom(c Class) Form {
	return Form{
		ID:           c.ClassID,
		SubjectID:    core.IDString(c.SubjectID),
		TeacherID:    core.IDString(c.TeacherID),
		Semester:     c.Semester,
		AcademicYear: c.AcademicYear,
		Room:         c.Room,
		StudyDate:    c.StudyDate,
		StartTime:    core.ShortClock(c.StartTime),
		EndTime:      core.ShortClock(c.EndTime),
	}
}

func (f *Form) Clean() {
	f.SubjectID = core.CleanString(f.SubjectID)
	f.TeacherID = core.CleanString(f.TeacherID)
	f.Semester = core.CleanString(f.Semester)
	f.AcademicYear = core.CleanString(f.AcademicYear)
	f.Room = core.CleanString(f.Room)
	f.StudyDate = core.CleanString(f.StudyDate)
	f.StartTime = core.CleanString(f.StartTime)
	f.EndTime = core.CleanString(f.EndTime)
}

func (f *Form) Validate(validate *validator.Validate, translator ut.Translator) error {
	f.Clean()
	return core.Check(validate, translator, f)
}

// ChangeSubject moves the form to another subject, dropping a teacher who cannot teach it.
func (f *Form) ChangeSubject(subjectID string, qualified func(teacherID int) bool) {
	f.SubjectID = core.CleanString(subjectID)
	if f.SubjectID == "" || !qualified(core.Atoi(f.TeacherID)) {
		f.TeacherID = ""
	}
}

func (f Form) Payload() Class {
	return Class{
		ClassID:      f.ID,
		SubjectID:    core.Atoi(f.SubjectID),
		TeacherID:    core.Atoi(f.TeacherID),
		Semester:     f.Semester,
		AcademicYear: f.AcademicYear,
		Room:         f.Room,
		StudyDate:    f.StudyDate,
		StartTime:    core.PadClock(f.StartTime),
		EndTime:      core.PadClock(f.EndTime),
	}
}
