package student

import (
	"regexp"

	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"

	"github.com/nkminh14/uniconsole/core"
)

var (
	dobTag   = "dob"
	dobText  = "Định dạng ngày sinh là YYYY-MM-DD"
	dobRegex = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)
)

func InitValidators(validate *validator.Validate, translator ut.Translator) {
	_ = validate.RegisterValidation(dobTag, func(fl validator.FieldLevel) bool {
		return dobRegex.MatchString(fl.Field().String())
	})
	core.RegisterCustomTranslation(validate, translator, dobTag, dobText)
}
