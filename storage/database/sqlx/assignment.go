package sqlxrepos

import (
	"context"

	"github.com/jmoiron/sqlx"
	"github.com/pkg/errors"

	"github.com/evaldez/assignment-tracker/core"
	"github.com/evaldez/assignment-tracker/core/assignment"
)

var assignmentColumns = []string{"id", "name", "course", "due_date", "type", "completed"}

type assignmentRepository struct {
	db *sqlx.DB
}

var _ assignment.Repository = (*assignmentRepository)(nil) // interface compliance check

func NewAssignmentRepository(db *sqlx.DB) assignment.Repository {
	return &assignmentRepository{db: db}
}

func (repo *assignmentRepository) InsertAssignment(ctx context.Context, a assignment.Assignment) (assignment.Assignment, error) {
	res, err := repo.db.NamedExecContext(
		ctx,
		`INSERT INTO assignments (name, course, due_date, type, completed)
		VALUES (:name, :course, :due_date, :type, :completed)`,
		a,
	)
	if err != nil {
		return assignment.Assignment{}, core.NewStoreError("inserting assignment", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return assignment.Assignment{}, core.NewStoreError("inserting assignment", err)
	}
	a.ID = int(id)
	return a, nil
}

func (repo *assignmentRepository) ListAssignments(
	ctx context.Context,
	completed bool,
	ordering ...core.DBOrdering,
) ([]assignment.Assignment, error) {
	orderBy, err := core.OrderByClause(assignmentColumns, ordering...)
	if err != nil {
		return nil, errors.Wrap(err, "listing assignments")
	}

	res := make([]assignment.Assignment, 0)
	q := "SELECT id, name, course, due_date, type, completed FROM assignments WHERE completed = ?" + orderBy
	if err = repo.db.SelectContext(ctx, &res, q, core.Flag(completed)); err != nil {
		return nil, core.NewStoreError("listing assignments", err)
	}
	return res, nil
}

func (repo *assignmentRepository) CompleteAssignment(ctx context.Context, id int) (int64, error) {
	res, err := repo.db.ExecContext(ctx, "UPDATE assignments SET completed = 1 WHERE id = ? AND completed = 0", id)
	if err != nil {
		return 0, core.NewStoreError("completing assignment", err)
	}
	changes, err := res.RowsAffected()
	if err != nil {
		return 0, core.NewStoreError("completing assignment", err)
	}
	return changes, nil
}
