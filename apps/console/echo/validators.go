package echoconsole

import (
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"

	"github.com/nkminh14/uniconsole/core"
	"github.com/nkminh14/uniconsole/core/class"
	"github.com/nkminh14/uniconsole/core/student"
	"github.com/nkminh14/uniconsole/core/tuition"
)

// NewValidator returns the validator of every form the console serves.
func NewValidator() (*validator.Validate, ut.Translator) {
	validate, translator := core.NewValidator()
	student.InitValidators(validate, translator)
	class.InitValidators(validate, translator)
	tuition.InitValidators(validate, translator)
	return validate, translator
}
