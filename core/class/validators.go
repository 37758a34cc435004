package class

import (
	"regexp"
	"strconv"
	"time"

	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"

	"github.com/nkminh14/uniconsole/core"
)

var (
	NowFunc = time.Now // mockable

	semesterTag   = "semesterno"
	semesterText  = `Định dạng đúng: "Học kỳ 2"`
	semesterRegex = regexp.MustCompile(`(?i)^Học kỳ\s\d+$`)

	academicYearTag   = "academicyear"
	academicYearText  = "Năm học phải theo dạng 2024-2025"
	academicYearRegex = regexp.MustCompile(`^\d{4}\s*-\s*\d{4}$`)

	roomTag  = "room"
	roomText = "Phòng học phải từ 100 đến 1000"
	roomMin  = 100
	roomMax  = 1000

	pastDateTag  = "notpast"
	pastDateText = "Ngày học không được trước hôm nay"

	timeOrderTag  = "timeorder"
	timeOrderText = "Giờ bắt đầu phải trước giờ kết thúc"

	clockRegex = regexp.MustCompile(`^([01]\d|2[0-3]):[0-5]\d(:[0-5]\d)?$`)
	dateRegex  = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)
)

func InitValidators(validate *validator.Validate, translator ut.Translator) {
	_ = validate.RegisterValidation(semesterTag, func(fl validator.FieldLevel) bool {
		return semesterRegex.MatchString(fl.Field().String())
	})
	core.RegisterCustomTranslation(validate, translator, semesterTag, semesterText)

	_ = validate.RegisterValidation(academicYearTag, func(fl validator.FieldLevel) bool {
		return academicYearRegex.MatchString(fl.Field().String())
	})
	core.RegisterCustomTranslation(validate, translator, academicYearTag, academicYearText)

	_ = validate.RegisterValidation(roomTag, roomValidation)
	core.RegisterCustomTranslation(validate, translator, roomTag, roomText)

	validate.RegisterStructValidation(formStructValidation, Form{})
	core.RegisterCustomTranslation(validate, translator, pastDateTag, pastDateText)
	core.RegisterCustomTranslation(validate, translator, timeOrderTag, timeOrderText)
}

// roomValidation only allows room numbers within [roomMin, roomMax].
func roomValidation(fl validator.FieldLevel) bool {
	n, err := strconv.Atoi(fl.Field().String())
	return err == nil && n >= roomMin && n <= roomMax
}

// formStructValidation checks the rules spanning several fields. Malformed values are left to the field rules.
func formStructValidation(sl validator.StructLevel) {
	f, ok := sl.Current().Interface().(Form)
	if !ok {
		return
	}

	// studyDate must not be in the past
	if dateRegex.MatchString(f.StudyDate) {
		today := NowFunc().Format(core.DateLayout)
		if f.StudyDate < today {
			sl.ReportError(f.StudyDate, "studyDate", "StudyDate", pastDateTag, "")
		}
	}

	// startTime < endTime
	if clockRegex.MatchString(f.StartTime) && clockRegex.MatchString(f.EndTime) {
		if core.PadClock(f.StartTime) >= core.PadClock(f.EndTime) {
			sl.ReportError(f.StartTime, "startTime", "StartTime", timeOrderTag, "")
		}
	}
}
