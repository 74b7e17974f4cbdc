package assignment

import (
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"

	"github.com/evaldez/assignment-tracker/core"
)

var (
	dueDateTag  = "duedate"
	dueDateText = "{0} must be a date formatted as YYYY-MM-DD or N/A"
)

func InitValidators(validate *validator.Validate, translator ut.Translator) {
	_ = validate.RegisterValidation(dueDateTag, dueDateValidation)
	core.RegisterCustomTranslation(validate, translator, dueDateTag, dueDateText)
}

// Custom Validators

// dueDateValidation allows YYYY-MM-DD dates and NoDueDate.
func dueDateValidation(fl validator.FieldLevel) bool {
	s := fl.Field().String()
	return s == NoDueDate || core.IsDate(s)
}
