package spreadsheet

import (
	"strconv"
	"time"

	"github.com/pkg/errors"
	"github.com/xuri/excelize/v2"

	"github.com/evaldez/assignment-tracker/core"
	"github.com/evaldez/assignment-tracker/core/assignment"
)

// header names of an assignment workbook
const (
	ColumnCourse   = "Class"
	ColumnName     = "Assignment"
	ColumnDueDate  = "Due Date"
	ColumnComplete = "Complete"
	ColumnType     = "Type"
)

const (
	DefaultCourse = "Unknown Course"
	DefaultName   = "Untitled Assignment"
	DefaultType   = "General"
)

// AssignmentFromRow maps a workbook row to an assignment, filling in defaults for missing values.
func AssignmentFromRow(row Row) (assignment.Assignment, error) {
	a := assignment.Assignment{
		Course:  DefaultCourse,
		Name:    DefaultName,
		Type:    DefaultType,
		DueDate: assignment.NoDueDate,
	}
	if c, ok := row.Get(ColumnCourse); ok {
		a.Course = core.CleanString(c.Value)
	}
	if c, ok := row.Get(ColumnName); ok {
		a.Name = core.CleanString(c.Value)
	}
	if c, ok := row.Get(ColumnType); ok {
		a.Type = core.CleanString(c.Value)
	}
	if c, ok := row.Get(ColumnDueDate); ok {
		due, err := dueDate(c)
		if err != nil {
			return assignment.Assignment{}, errors.Wrapf(err, "row %d", row.Number)
		}
		if due != "" {
			a.DueDate = due
		}
	}
	if c, ok := row.Get(ColumnComplete); ok {
		a.Completed = core.Flag(truthy(c))
	}
	return a, nil
}

// text layouts accepted for due dates, month first
var dueDateLayouts = []string{
	core.DateLayout,
	"1/2/2006",
	"2006/1/2",
	"Jan 2, 2006",
	"January 2, 2006",
	"2 Jan 2006",
}

// dueDate converts Excel serial dates and recognized text dates to YYYY-MM-DD.
// Unrecognized text is kept as is. A blank cell or a zero serial yields "".
func dueDate(c Cell) (string, error) {
	if !c.Numeric {
		v := core.CleanString(c.Value)
		for _, layout := range dueDateLayouts {
			if t, err := time.Parse(layout, v); err == nil {
				return t.Format(core.DateLayout), nil
			}
		}
		return v, nil
	}
	serial, err := strconv.ParseFloat(c.Value, 64)
	if err != nil {
		return "", errors.Wrapf(err, "parsing due date %q", c.Value)
	}
	if serial == 0 {
		return "", nil
	}
	t, err := excelize.ExcelDateToTime(serial, false)
	if err != nil {
		return "", errors.Wrapf(err, "converting due date %q", c.Value)
	}
	return t.Format(core.DateLayout), nil
}

// truthy is false for 0, false and "no" and true for any other value.
func truthy(c Cell) bool {
	v := core.CleanString(c.Value, true /* lower */)
	if c.Numeric {
		f, err := strconv.ParseFloat(v, 64)
		return err != nil || f != 0
	}
	switch v {
	case "0", "false", "no":
		return false
	}
	return true
}
