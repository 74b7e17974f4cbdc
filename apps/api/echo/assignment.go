package echoapi

import (
	"context"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/evaldez/assignment-tracker/core"
	"github.com/evaldez/assignment-tracker/core/assignment"
)

const (
	msgCreated   = "Assignment created"
	msgCompleted = "Assignment marked as completed"
)

var errInvalidID = core.NewValidationError(
	assignment.ErrInvalidID,
	core.FieldError{Field: "id", Error: assignment.ErrInvalidID.Error()},
)

// AssignmentService is implemented by *assignment.Service.
type AssignmentService interface {
	Create(ctx context.Context, na assignment.NewAssignment) (assignment.Assignment, error)
	ListPending(ctx context.Context) ([]assignment.Assignment, error)
	ListCompleted(ctx context.Context) ([]assignment.Assignment, error)
	MarkComplete(ctx context.Context, id int) (int64, error)
}

type (
	createResponse struct {
		Message    string                `json:"message"`
		Assignment assignment.Assignment `json:"assignment"`
	}

	pendingResponse struct {
		Assignments []assignment.Assignment `json:"assignments"`
	}

	completedResponse struct {
		CompletedAssignments []assignment.Assignment `json:"completed_assignments"`
	}

	completeResponse struct {
		Message string `json:"message"`
		Changes int64  `json:"changes"`
	}
)

type assignmentApi struct {
	svc AssignmentService
}

func registerAssignmentAPI(g *echo.Group, svc AssignmentService) {
	api := assignmentApi{svc: svc}

	g.POST("/assignments", api.create)
	g.GET("/assignments", api.listPending)
	g.GET("/completed-assignments", api.listCompleted)
	g.PUT("/complete-assignment/:id", api.markComplete)
}

// Handlers

func (api *assignmentApi) create(ctx echo.Context) error {
	var data assignment.NewAssignment
	if err := ctx.Bind(&data); err != nil {
		return err
	}

	a, err := api.svc.Create(ctx.Request().Context(), data)
	if err != nil {
		return errors.Wrap(err, "creating assignment")
	}

	return ctx.JSON(http.StatusCreated, createResponse{Message: msgCreated, Assignment: a})
}

func (api *assignmentApi) listPending(ctx echo.Context) error {
	list, err := api.svc.ListPending(ctx.Request().Context())
	if err != nil {
		return errors.Wrap(err, "listing pending assignments")
	}
	return ctx.JSON(http.StatusOK, pendingResponse{Assignments: nonNil(list)})
}

func (api *assignmentApi) listCompleted(ctx echo.Context) error {
	list, err := api.svc.ListCompleted(ctx.Request().Context())
	if err != nil {
		return errors.Wrap(err, "listing completed assignments")
	}
	return ctx.JSON(http.StatusOK, completedResponse{CompletedAssignments: nonNil(list)})
}

func (api *assignmentApi) markComplete(ctx echo.Context) error {
	id, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		return errInvalidID
	}

	changes, err := api.svc.MarkComplete(ctx.Request().Context(), id)
	if err != nil {
		return errors.Wrap(err, "completing assignment")
	}

	return ctx.JSON(http.StatusOK, completeResponse{Message: msgCompleted, Changes: changes})
}

func nonNil(list []assignment.Assignment) []assignment.Assignment {
	if list == nil {
		return []assignment.Assignment{}
	}
	return list
}
