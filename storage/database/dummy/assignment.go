package dummydb

import (
	"context"
	"sort"

	"github.com/evaldez/assignment-tracker/core"
	"github.com/evaldez/assignment-tracker/core/assignment"
)

type assignmentRepository struct {
	db *assignmentTable
}

var _ assignment.Repository = (*assignmentRepository)(nil) // interface compliance check

func NewAssignmentRepository(db *DB) assignment.Repository {
	return &assignmentRepository{db: db.assignment}
}

func (repo *assignmentRepository) InsertAssignment(ctx context.Context, a assignment.Assignment) (assignment.Assignment, error) {
	repo.db.Lock()
	defer repo.db.Unlock()

	if repo.db.failOn != nil {
		return assignment.Assignment{}, core.NewStoreError("inserting assignment", repo.db.failOn)
	}
	repo.db.pkSeq++
	a.ID = repo.db.pkSeq
	repo.db.table[a.ID] = &a
	return a, nil
}

func (repo *assignmentRepository) ListAssignments(
	ctx context.Context,
	completed bool,
	ordering ...core.DBOrdering,
) ([]assignment.Assignment, error) {
	repo.db.RLock()
	defer repo.db.RUnlock()

	if repo.db.failOn != nil {
		return nil, core.NewStoreError("listing assignments", repo.db.failOn)
	}
	res := make([]assignment.Assignment, 0)
	for _, a := range repo.db.table {
		if bool(a.Completed) == completed {
			res = append(res, *a)
		}
	}
	// map iteration is random: fall back to insertion order
	sort.Slice(res, func(i, j int) bool { return res[i].ID < res[j].ID })
	if len(ordering) > 0 {
		sort.SliceStable(res, func(i, j int) bool { return less(res[i], res[j], ordering) })
	}
	return res, nil
}

func (repo *assignmentRepository) CompleteAssignment(ctx context.Context, id int) (int64, error) {
	repo.db.Lock()
	defer repo.db.Unlock()

	if repo.db.failOn != nil {
		return 0, core.NewStoreError("completing assignment", repo.db.failOn)
	}
	a, ok := repo.db.table[id]
	if !ok || bool(a.Completed) {
		return 0, nil
	}
	a.Completed = true
	return 1, nil
}

func less(a, b assignment.Assignment, ordering []core.DBOrdering) bool {
	for _, ord := range ordering {
		var cmp int
		switch ord.Field {
		case "id":
			cmp = a.ID - b.ID
		case "due_date":
			cmp = compareStrings(a.DueDate, b.DueDate)
		case "course":
			cmp = compareStrings(a.Course, b.Course)
		case "name":
			cmp = compareStrings(a.Name, b.Name)
		}
		if cmp == 0 {
			continue
		}
		if ord.Ascending {
			return cmp < 0
		}
		return cmp > 0
	}
	return false
}

func compareStrings(a, b string) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	}
	return 0
}
