package core

import (
	"reflect"
	"regexp"
	"strconv"
	"strings"

	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	en_translations "github.com/go-playground/validator/v10/translations/en"
	"github.com/pkg/errors"
)

var (
	// overridden translations of built-in tags
	requiredTag  = "required"
	requiredText = "{0} không được để trống"
	emailTag     = "email"
	emailText    = "Email không hợp lệ"
	oneOfTag     = "oneof"
	oneOfText    = "{0} không hợp lệ"

	// custom validation tags & texts
	phone10Tag   = "phone10"
	phone10Text  = "Số điện thoại phải có 10 chữ số"
	phone10Regex = regexp.MustCompile(`^\d{10}$`)

	phone0Tag   = "phone0"
	phone0Text  = "SĐT phải bắt đầu bằng 0 và có 10 chữ số"
	phone0Regex = regexp.MustCompile(`^0\d{9}$`)

	isoDateTag   = "isodate"
	isoDateText  = "{0} phải có dạng YYYY-MM-DD"
	isoDateRegex = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)

	clockTag   = "clock"
	clockText  = "{0} phải có dạng HH:MM"
	clockRegex = regexp.MustCompile(`^([01]\d|2[0-3]):[0-5]\d(:[0-5]\d)?$`)

	digitsOnlyTag   = "digitsonly"
	digitsOnlyText  = "{0} chỉ chứa số"
	digitsOnlyRegex = regexp.MustCompile(`^\d+$`)

	uintTag  = "uint_"
	uintText = "{0} phải là số nguyên không âm"

	nonNegTag  = "nonneg"
	nonNegText = "{0} phải là một số không âm"

	scoreTag  = "score"
	scoreText = "{0} phải từ 0 đến 10"

	moneyTag   = "money"
	moneyText  = "{0} không hợp lệ (tối đa 2 số thập phân)"
	moneyRegex = regexp.MustCompile(`^\d+(\.\d{1,2})?$`)

	positiveTag  = "positive"
	positiveText = "{0} phải lớn hơn 0"
)

// NewValidator returns a validator and its translator, set up with InitValidators.
func NewValidator() (*validator.Validate, ut.Translator) {
	validate := validator.New()
	_en := en.New()
	uni := ut.New(_en, _en)
	translator, _ := uni.GetTranslator("en")
	InitValidators(validate, translator)
	return validate, translator
}

// InitValidators instantiates the validator for use.
func InitValidators(validate *validator.Validate, translator ut.Translator) {
	_ = en_translations.RegisterDefaultTranslations(validate, translator)

	// Use the human label in messages; falls back to the JSON name.
	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		if label := fld.Tag.Get("label"); label != "" {
			return label
		}
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	RegisterCustomTranslation(validate, translator, requiredTag, requiredText, true)
	RegisterCustomTranslation(validate, translator, emailTag, emailText, true)
	RegisterCustomTranslation(validate, translator, oneOfTag, oneOfText, true)

	// register custom validators
	registerRegex(validate, translator, phone10Tag, phone10Text, phone10Regex)
	registerRegex(validate, translator, phone0Tag, phone0Text, phone0Regex)
	registerRegex(validate, translator, isoDateTag, isoDateText, isoDateRegex)
	registerRegex(validate, translator, clockTag, clockText, clockRegex)
	registerRegex(validate, translator, digitsOnlyTag, digitsOnlyText, digitsOnlyRegex)
	registerRegex(validate, translator, moneyTag, moneyText, moneyRegex)

	_ = validate.RegisterValidation(uintTag, uintValidation)
	RegisterCustomTranslation(validate, translator, uintTag, uintText)
	_ = validate.RegisterValidation(nonNegTag, nonNegValidation)
	RegisterCustomTranslation(validate, translator, nonNegTag, nonNegText)
	_ = validate.RegisterValidation(scoreTag, scoreValidation)
	RegisterCustomTranslation(validate, translator, scoreTag, scoreText)
	_ = validate.RegisterValidation(positiveTag, positiveValidation)
	RegisterCustomTranslation(validate, translator, positiveTag, positiveText)
}

// RegisterCustomTranslation registers a custom translation for the specified validation tag.
// `{0}` in text is replaced by the field label.
func RegisterCustomTranslation(validate *validator.Validate, translator ut.Translator, tag, text string, override ...bool) {
	var ovrd bool
	if len(override) > 0 {
		ovrd = override[0]
	}
	_ = validate.RegisterTranslation(
		tag, translator,
		func(t ut.Translator) error { return t.Add(tag, text, ovrd) },
		func(t ut.Translator, fe validator.FieldError) string {
			s, _ := t.T(tag, fe.Field())
			return s
		},
	)
}

func registerRegex(validate *validator.Validate, translator ut.Translator, tag, text string, rx *regexp.Regexp) {
	_ = validate.RegisterValidation(tag, func(fl validator.FieldLevel) bool {
		return rx.MatchString(fl.Field().String())
	})
	RegisterCustomTranslation(validate, translator, tag, text)
}

// Check validates obj and converts any failure into a *ValidationError keyed by JSON field names.
func Check(validate *validator.Validate, translator ut.Translator, obj interface{}) error {
	err := validate.Struct(obj)
	if err == nil {
		return nil
	}
	vErrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return errors.Wrap(err, "validating")
	}

	typ := reflect.Indirect(reflect.ValueOf(obj)).Type()
	flds := make([]FieldError, 0, len(vErrs))
	for _, fe := range vErrs {
		flds = append(flds, FieldError{Field: jsonName(typ, fe.StructField()), Error: fe.Translate(translator)})
	}
	return NewValidationError(nil, flds...)
}

func jsonName(typ reflect.Type, structField string) string {
	if fld, ok := typ.FieldByName(structField); ok {
		if name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]; name != "" && name != "-" {
			return name
		}
	}
	return structField
}

// Custom Global Validators

// uintValidation only allows non-negative whole numbers.
func uintValidation(fl validator.FieldLevel) bool {
	_, err := strconv.ParseUint(fl.Field().String(), 10, 64)
	return err == nil
}

// nonNegValidation only allows numbers >= 0.
func nonNegValidation(fl validator.FieldLevel) bool {
	f, err := strconv.ParseFloat(fl.Field().String(), 64)
	return err == nil && f >= 0
}

// scoreValidation only allows numbers within [0, 10].
func scoreValidation(fl validator.FieldLevel) bool {
	f, err := strconv.ParseFloat(fl.Field().String(), 64)
	return err == nil && f >= 0 && f <= 10
}

// positiveValidation only allows numbers > 0.
func positiveValidation(fl validator.FieldLevel) bool {
	f, err := strconv.ParseFloat(fl.Field().String(), 64)
	return err == nil && f > 0
}
