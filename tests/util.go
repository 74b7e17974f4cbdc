package testutil

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/jmoiron/sqlx"

	"github.com/evaldez/assignment-tracker/core"
	"github.com/evaldez/assignment-tracker/core/assignment"
	"github.com/evaldez/assignment-tracker/storage/database"
)

// OpenDB opens a fresh SQLite database in a temporary directory. It is closed when the test ends.
func OpenDB(t *testing.T) *sqlx.DB {
	t.Helper()

	db, err := database.OpenPath(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("OpenDB() failed: %v", err)
	}
	t.Cleanup(func() {
		if err := db.Close(); err != nil {
			t.Errorf("db.Close() failed: %v", err)
		}
	})
	return db
}

func CreateAssignment(
	t *testing.T,
	repo assignment.Repository,
	course, name, typ, dueDate string,
	completed ...bool,
) assignment.Assignment {
	t.Helper()

	a := assignment.Assignment{
		Course:  course,
		Name:    name,
		Type:    typ,
		DueDate: dueDate,
	}
	if len(completed) > 0 {
		a.Completed = core.Flag(completed[0])
	}
	a, err := repo.InsertAssignment(context.Background(), a)
	if err != nil {
		t.Fatalf("CreateAssignment() failed: %v", err)
	}
	return a
}
