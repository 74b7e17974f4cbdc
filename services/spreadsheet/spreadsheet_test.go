package spreadsheet

import (
	"bytes"
	"context"
	"errors"
	"io"
	"log"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/xuri/excelize/v2"

	"github.com/evaldez/assignment-tracker/core"
	"github.com/evaldez/assignment-tracker/core/assignment"
	logsvc "github.com/evaldez/assignment-tracker/services/logger"
)

// newWorkbook builds an in-memory workbook whose first sheet holds `rows`.
func newWorkbook(t *testing.T, rows ...[]interface{}) *Reader {
	t.Helper()

	f := excelize.NewFile()
	sheet := f.GetSheetName(0)
	for i, values := range rows {
		for j, v := range values {
			if v == nil {
				continue
			}
			cell, _ := excelize.CoordinatesToCellName(j+1, i+1)
			if err := f.SetCellValue(sheet, cell, v); err != nil {
				t.Fatalf("SetCellValue() failed: %v", err)
			}
		}
	}
	buf, err := f.WriteToBuffer()
	if err != nil {
		t.Fatalf("WriteToBuffer() failed: %v", err)
	}
	r, err := NewReader(buf)
	if err != nil {
		t.Fatalf("NewReader() failed: %v", err)
	}
	t.Cleanup(func() { _ = r.Close() })
	return r
}

var header = []interface{}{"Class", "Assignment", "Due Date", "Complete"}

func TestReader_Rows(t *testing.T) {
	r := newWorkbook(t,
		header,
		[]interface{}{"CS101", "HW1", 45000, nil},
		[]interface{}{nil, nil, nil, nil},
		[]interface{}{"Math", "Quiz", " next week ", true},
	)

	rows, err := r.Rows("")
	if err != nil {
		t.Fatalf("Rows() failed: %v", err)
	}
	if !assert.Len(t, rows, 2) {
		return
	}
	assert.Equal(t, 2, rows[0].Number)
	assert.Equal(t, Cell{Value: "45000", Numeric: true}, rows[0].Cells["Due Date"])
	assert.Equal(t, Cell{Value: "CS101"}, rows[0].Cells["Class"])
	_, ok := rows[0].Get("Complete")
	assert.False(t, ok)

	assert.Equal(t, 4, rows[1].Number)
	assert.Equal(t, Cell{Value: " next week "}, rows[1].Cells["Due Date"])
}

func TestReader_Rows_noData(t *testing.T) {
	tests := []struct {
		name string
		rows [][]interface{}
	}{
		{name: "empty sheet"},
		{name: "header only", rows: [][]interface{}{header}},
		{name: "blank rows", rows: [][]interface{}{header, {nil, ""}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := newWorkbook(t, tt.rows...)
			_, err := r.Rows("")
			assert.Equal(t, ErrNoData, err)
		})
	}
}

func TestReader_Rows_unknownSheet(t *testing.T) {
	r := newWorkbook(t, header)
	_, err := r.Rows("Calendar")
	assert.Error(t, err)
}

func TestAssignmentFromRow(t *testing.T) {
	row := func(cells map[string]Cell) Row { return Row{Number: 2, Cells: cells} }

	tests := []struct {
		name    string
		row     Row
		want    assignment.Assignment
		wantErr bool
	}{
		{
			name: "defaults",
			row:  row(nil),
			want: assignment.Assignment{Course: DefaultCourse, Name: DefaultName, Type: DefaultType, DueDate: assignment.NoDueDate},
		},
		{
			name: "serial date",
			row: row(map[string]Cell{
				"Class":      {Value: " CS101 "},
				"Assignment": {Value: "HW1"},
				"Due Date":   {Value: "45000", Numeric: true},
			}),
			want: assignment.Assignment{Course: "CS101", Name: "HW1", Type: DefaultType, DueDate: "2023-03-15"},
		},
		{
			name: "text date is trimmed",
			row:  row(map[string]Cell{"Due Date": {Value: "  2025-02-19 "}}),
			want: assignment.Assignment{Course: DefaultCourse, Name: DefaultName, Type: DefaultType, DueDate: "2025-02-19"},
		},
		{
			name: "blank due date",
			row:  row(map[string]Cell{"Due Date": {Value: "   "}}),
			want: assignment.Assignment{Course: DefaultCourse, Name: DefaultName, Type: DefaultType, DueDate: assignment.NoDueDate},
		},
		{
			name: "type column",
			row:  row(map[string]Cell{"Type": {Value: "Exam"}, "Complete": {Value: "yes"}}),
			want: assignment.Assignment{Course: DefaultCourse, Name: DefaultName, Type: "Exam", DueDate: assignment.NoDueDate, Completed: true},
		},
		{
			name: "zero serial",
			row:  row(map[string]Cell{"Due Date": {Value: "0", Numeric: true}}),
			want: assignment.Assignment{Course: DefaultCourse, Name: DefaultName, Type: DefaultType, DueDate: assignment.NoDueDate},
		},
		{
			name: "text dates are normalized",
			row:  row(map[string]Cell{"Due Date": {Value: "3/15/2024"}}),
			want: assignment.Assignment{Course: DefaultCourse, Name: DefaultName, Type: DefaultType, DueDate: "2024-03-15"},
		},
		{
			name: "month name date",
			row:  row(map[string]Cell{"Due Date": {Value: "Apr 1, 2025"}}),
			want: assignment.Assignment{Course: DefaultCourse, Name: DefaultName, Type: DefaultType, DueDate: "2025-04-01"},
		},
		{
			name: "free text is kept",
			row:  row(map[string]Cell{"Due Date": {Value: " next week "}}),
			want: assignment.Assignment{Course: DefaultCourse, Name: DefaultName, Type: DefaultType, DueDate: "next week"},
		},
		{
			name:    "negative serial",
			row:     row(map[string]Cell{"Due Date": {Value: "-3", Numeric: true}}),
			wantErr: true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := AssignmentFromRow(tt.row)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestTruthy(t *testing.T) {
	tests := []struct {
		cell Cell
		want bool
	}{
		{cell: Cell{Value: "1", Numeric: true}, want: true},
		{cell: Cell{Value: "0", Numeric: true}, want: false},
		{cell: Cell{Value: "0.0", Numeric: true}, want: false},
		{cell: Cell{Value: "1"}, want: true},
		{cell: Cell{Value: "0"}, want: false},
		{cell: Cell{Value: "FALSE"}, want: false},
		{cell: Cell{Value: "TRUE"}, want: true},
		{cell: Cell{Value: "x"}, want: true},
		{cell: Cell{Value: "No"}, want: false},
	}
	for _, tt := range tests {
		t.Run(tt.cell.Value, func(t *testing.T) {
			assert.Equal(t, tt.want, truthy(tt.cell))
		})
	}
}

type storeMock struct {
	imported []assignment.Assignment
	failOn   string
}

func (s *storeMock) Import(ctx context.Context, a assignment.Assignment) (assignment.Assignment, error) {
	if a.Name == s.failOn {
		return assignment.Assignment{}, core.NewStoreError("inserting assignment", errors.New("disk I/O error"))
	}
	a.ID = len(s.imported) + 1
	s.imported = append(s.imported, a)
	return a, nil
}

func TestImporter_Import(t *testing.T) {
	r := newWorkbook(t,
		header,
		[]interface{}{"CS101", "HW1", 45000, 0},
		[]interface{}{"CS101", "Broken", "2025-01-01", nil},
		[]interface{}{"Math", nil, -1, nil},
		[]interface{}{nil, "Essay", nil, 1},
	)
	store := &storeMock{failOn: "Broken"}
	logger := logsvc.NewRollbarLogger(log.New(io.Discard, "", 0), &core.Config{})
	logger.Enable(false)

	sum, err := NewImporter(store, logger).Import(context.Background(), r, "")
	assert.NoError(t, err)
	assert.Equal(t, Summary{Imported: 2, Failed: 2}, sum)
	assert.Equal(t, "2 imported, 2 failed", sum.String())

	assert.Equal(t, []assignment.Assignment{
		{ID: 1, Course: "CS101", Name: "HW1", Type: DefaultType, DueDate: "2023-03-15"},
		{ID: 2, Course: DefaultCourse, Name: "Essay", Type: DefaultType, DueDate: assignment.NoDueDate, Completed: true},
	}, store.imported)
}

func TestImporter_Import_noData(t *testing.T) {
	r := newWorkbook(t, header)
	logger := logsvc.NewRollbarLogger(log.New(io.Discard, "", 0), &core.Config{})

	sum, err := NewImporter(&storeMock{}, logger).Import(context.Background(), r, "")
	assert.Equal(t, ErrNoData, err)
	assert.Zero(t, sum)
}

func TestWrite(t *testing.T) {
	list := []assignment.Assignment{
		{ID: 1, Course: "CS101", Name: "HW1", Type: "Homework", DueDate: "2025-02-19"},
		{ID: 2, Course: "Math", Name: "Final", Type: "Exam", DueDate: assignment.NoDueDate, Completed: true},
	}
	var buf bytes.Buffer
	if err := Write(&buf, "Assignments", list); err != nil {
		t.Fatalf("Write() failed: %v", err)
	}

	r, err := NewReader(&buf)
	if err != nil {
		t.Fatalf("NewReader() failed: %v", err)
	}
	defer func() { _ = r.Close() }()
	assert.Equal(t, []string{"Assignments"}, r.Sheets())

	rows, err := r.Rows("Assignments")
	if err != nil {
		t.Fatalf("Rows() failed: %v", err)
	}
	got := make([]assignment.Assignment, 0, len(rows))
	for _, row := range rows {
		a, err := AssignmentFromRow(row)
		assert.NoError(t, err)
		got = append(got, a)
	}
	for i := range list {
		list[i].ID = 0
	}
	assert.Equal(t, list, got)
}
