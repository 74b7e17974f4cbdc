package assignment

import (
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"

	"github.com/evaldez/assignment-tracker/core"
)

// NoDueDate marks an assignment without a known due date.
const NoDueDate = "N/A"

type Assignment struct {
	ID        int       `json:"id" db:"id"`
	Course    string    `json:"course" db:"course"`
	Name      string    `json:"name" db:"name"`
	Type      string    `json:"type" db:"type"`
	DueDate   string    `json:"dueDate" db:"due_date"` // YYYY-MM-DD or NoDueDate
	Completed core.Flag `json:"completed" db:"completed"`
}

// NewAssignment contains information needed to create a new Assignment.
type NewAssignment struct {
	Course  string `json:"course" validate:"required"`
	Name    string `json:"name" validate:"required"`
	Type    string `json:"type" validate:"required"`
	DueDate string `json:"dueDate" validate:"required,duedate"`
}

func (na *NewAssignment) Clean() {
	na.Course = core.CleanString(na.Course)
	na.Name = core.CleanString(na.Name)
	na.Type = core.CleanString(na.Type)
	na.DueDate = core.CleanString(na.DueDate)
}

func (na *NewAssignment) Validate(validate *validator.Validate, translator ut.Translator) error {
	na.Clean()
	return core.TranslateValidationErrors(validate.Struct(na), translator)
}
