package dummydb

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/evaldez/assignment-tracker/core/assignment"
)

func TestAssignmentRepository_CompleteAssignment(t *testing.T) {
	db, err := Open()
	assert.NoError(t, err)
	repo := NewAssignmentRepository(db)
	ctx := context.Background()

	a, err := repo.InsertAssignment(ctx, assignment.Assignment{Course: "C", Name: "X", Type: "Quiz", DueDate: "2025-02-19"})
	assert.NoError(t, err)

	tests := []struct {
		name string
		id   int
		want int64
	}{
		{name: "unknown id", id: a.ID + 1, want: 0},
		{name: "pending", id: a.ID, want: 1},
		{name: "already completed", id: a.ID, want: 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			changes, err := repo.CompleteAssignment(ctx, tt.id)
			assert.NoError(t, err)
			assert.Equal(t, tt.want, changes)
		})
	}

	completed, err := repo.ListAssignments(ctx, true)
	assert.NoError(t, err)
	if assert.Len(t, completed, 1) {
		assert.True(t, bool(completed[0].Completed))
	}
}
