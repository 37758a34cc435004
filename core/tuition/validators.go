package tuition

import (
	"time"

	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"

	"github.com/nkminh14/uniconsole/core"
)

var (
	pickTag  = "pick"
	pickText = "Vui lòng chọn {0}"

	statusTag  = "status"
	statusText = "Vui lòng chọn trạng thái hợp lệ"

	dateOrderTag  = "dateorder"
	dateOrderText = "Ngày kết thúc phải ≥ ngày bắt đầu"
)

func InitValidators(validate *validator.Validate, translator ut.Translator) {
	_ = validate.RegisterValidation(pickTag, func(fl validator.FieldLevel) bool {
		return core.CleanString(fl.Field().String()) != ""
	})
	core.RegisterCustomTranslation(validate, translator, pickTag, pickText)

	_ = validate.RegisterValidation(statusTag, statusValidation)
	core.RegisterCustomTranslation(validate, translator, statusTag, statusText)

	validate.RegisterStructValidation(formStructValidation, Form{})
	core.RegisterCustomTranslation(validate, translator, dateOrderTag, dateOrderText)
}

// statusValidation only allows the known payment statuses.
func statusValidation(fl validator.FieldLevel) bool {
	val := fl.Field().String()
	for _, s := range Statuses {
		if val == s {
			return true
		}
	}
	return false
}

// formStructValidation checks that the period does not end before it starts.
func formStructValidation(sl validator.StructLevel) {
	f, ok := sl.Current().Interface().(Form)
	if !ok || f.StartDate == "" || f.EndDate == "" {
		return
	}
	start, err := core.ParseDate(f.StartDate, time.UTC)
	if err != nil {
		return
	}
	end, err := core.ParseDate(f.EndDate, time.UTC)
	if err != nil {
		return
	}
	if end.Before(start) {
		sl.ReportError(f.EndDate, "endDate", "EndDate", dateOrderTag, "")
	}
}
