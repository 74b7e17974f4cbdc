package spreadsheet

import (
	"io"

	"github.com/pkg/errors"
	"github.com/xuri/excelize/v2"

	"github.com/evaldez/assignment-tracker/core/assignment"
)

var exportHeader = []interface{}{ColumnCourse, ColumnName, ColumnType, ColumnDueDate, ColumnComplete}

// Write writes `list` as a single-sheet workbook readable by Reader.
func Write(w io.Writer, sheet string, list []assignment.Assignment) error {
	f := excelize.NewFile()
	defer func() { _ = f.Close() }()

	if sheet != "" {
		if err := f.SetSheetName(f.GetSheetName(0), sheet); err != nil {
			return errors.Wrap(err, "naming sheet")
		}
	} else {
		sheet = f.GetSheetName(0)
	}

	if err := f.SetSheetRow(sheet, "A1", &exportHeader); err != nil {
		return errors.Wrap(err, "writing header")
	}
	for i, a := range list {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return errors.Wrap(err, "resolving cell name")
		}
		values := []interface{}{a.Course, a.Name, a.Type, a.DueDate, a.Completed.Int()}
		if err = f.SetSheetRow(sheet, cell, &values); err != nil {
			return errors.Wrapf(err, "writing assignment %d", a.ID)
		}
	}

	if _, err := f.WriteTo(w); err != nil {
		return errors.Wrap(err, "writing workbook")
	}
	return nil
}
