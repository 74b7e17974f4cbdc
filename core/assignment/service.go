package assignment

import (
	"context"
	"errors"

	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"

	"github.com/evaldez/assignment-tracker/core"
)

var (
	// errors
	ErrInvalidID = errors.New("invalid assignment id")

	// listings are ordered by due date, ties broken by creation order
	byDueDate = []core.DBOrdering{
		{Field: "due_date", Ascending: true},
		{Field: "id", Ascending: true},
	}
)

type (
	Repository interface {
		InsertAssignment(ctx context.Context, a Assignment) (Assignment, error)
		// ListAssignments returns every assignment whose completed flag matches `completed`.
		ListAssignments(ctx context.Context, completed bool, ordering ...core.DBOrdering) ([]Assignment, error)
		// CompleteAssignment flags a pending assignment as completed and returns the number of rows changed.
		CompleteAssignment(ctx context.Context, id int) (int64, error)
	}

	Service struct {
		repo       Repository
		validate   *validator.Validate
		translator ut.Translator
	}
)

func NewService(repo Repository, validate *validator.Validate, translator ut.Translator) *Service {
	return &Service{
		repo:       repo,
		validate:   validate,
		translator: translator,
	}
}

// Create validates `na` and stores it as a pending assignment.
func (svc *Service) Create(ctx context.Context, na NewAssignment) (Assignment, error) {
	if err := na.Validate(svc.validate, svc.translator); err != nil {
		return Assignment{}, err
	}
	return svc.repo.InsertAssignment(ctx, Assignment{
		Course:  na.Course,
		Name:    na.Name,
		Type:    na.Type,
		DueDate: na.DueDate,
	})
}

// Import stores an assignment as-is, keeping its completed flag.
// Bulk producers supply their own defaults so no request validation is applied.
func (svc *Service) Import(ctx context.Context, a Assignment) (Assignment, error) {
	a.ID = 0
	a.Course = core.CleanString(a.Course)
	a.Name = core.CleanString(a.Name)
	a.Type = core.CleanString(a.Type)
	a.DueDate = core.CleanString(a.DueDate)
	if a.DueDate == "" {
		a.DueDate = NoDueDate
	}
	return svc.repo.InsertAssignment(ctx, a)
}

func (svc *Service) ListPending(ctx context.Context) ([]Assignment, error) {
	return svc.repo.ListAssignments(ctx, false, byDueDate...)
}

func (svc *Service) ListCompleted(ctx context.Context) ([]Assignment, error) {
	return svc.repo.ListAssignments(ctx, true, byDueDate...)
}

// MarkComplete returns the number of assignments changed: 0 when `id` is unknown or already completed.
func (svc *Service) MarkComplete(ctx context.Context, id int) (int64, error) {
	if id <= 0 {
		return 0, core.NewValidationError(ErrInvalidID, core.FieldError{Field: "id", Error: ErrInvalidID.Error()})
	}
	return svc.repo.CompleteAssignment(ctx, id)
}
