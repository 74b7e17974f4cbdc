package spreadsheet

import (
	"context"
	"fmt"

	"github.com/evaldez/assignment-tracker/core"
	"github.com/evaldez/assignment-tracker/core/assignment"
)

// Store receives the imported assignments. It is satisfied by *assignment.Service.
type Store interface {
	Import(ctx context.Context, a assignment.Assignment) (assignment.Assignment, error)
}

type Summary struct {
	Imported int
	Failed   int
}

func (s Summary) String() string {
	return fmt.Sprintf("%d imported, %d failed", s.Imported, s.Failed)
}

type Importer struct {
	store  Store
	logger core.Logger
}

func NewImporter(store Store, logger core.Logger) *Importer {
	return &Importer{store: store, logger: logger}
}

// Import stores every row of `sheet`. A row that cannot be mapped or stored is logged and skipped.
func (imp *Importer) Import(ctx context.Context, r *Reader, sheet string) (Summary, error) {
	var sum Summary

	rows, err := r.Rows(sheet)
	if err != nil {
		return sum, err
	}
	for _, row := range rows {
		if err = ctx.Err(); err != nil {
			return sum, err
		}
		a, err := AssignmentFromRow(row)
		if err == nil {
			a, err = imp.store.Import(ctx, a)
		}
		if err != nil {
			sum.Failed++
			imp.logger.Error(fmt.Sprintf("skipping row %d", row.Number), err)
			continue
		}
		sum.Imported++
		imp.logger.Debug(fmt.Sprintf("row %d imported", row.Number), map[string]interface{}{"id": a.ID})
	}
	return sum, nil
}
