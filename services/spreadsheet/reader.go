// Package spreadsheet reads and writes assignment workbooks (.xlsx).
package spreadsheet

import (
	"io"
	"strconv"
	"strings"

	"github.com/pkg/errors"
	"github.com/xuri/excelize/v2"
)

var ErrNoData = errors.New("no data found")

// Cell is the raw content of a worksheet cell.
type Cell struct {
	Value   string
	Numeric bool
}

// Row maps header names to the cells of one data row.
type Row struct {
	Number int // 1-based worksheet row
	Cells  map[string]Cell
}

// Get returns the cell under `column`; ok is false when it is missing or blank.
func (r Row) Get(column string) (c Cell, ok bool) {
	c, ok = r.Cells[column]
	if !ok || strings.TrimSpace(c.Value) == "" {
		return Cell{}, false
	}
	return c, true
}

type Reader struct {
	f *excelize.File
}

func Open(path string) (*Reader, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "opening %s", path)
	}
	return &Reader{f: f}, nil
}

func NewReader(r io.Reader) (*Reader, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, errors.Wrap(err, "reading workbook")
	}
	return &Reader{f: f}, nil
}

func (r *Reader) Close() error {
	return r.f.Close()
}

// Sheets lists the worksheet names in workbook order.
func (r *Reader) Sheets() []string {
	return r.f.GetSheetList()
}

// Rows reads `sheet` (the first sheet when empty) using its first row as header.
// Blank rows are skipped. ErrNoData is returned when there is no data row.
func (r *Reader) Rows(sheet string) ([]Row, error) {
	if sheet == "" {
		sheet = r.f.GetSheetName(0)
	}
	raw, err := r.f.GetRows(sheet, excelize.Options{RawCellValue: true})
	if err != nil {
		return nil, errors.Wrapf(err, "reading sheet %q", sheet)
	}
	if len(raw) < 2 {
		return nil, ErrNoData
	}

	header := make([]string, len(raw[0]))
	for i, h := range raw[0] {
		header[i] = strings.TrimSpace(h)
	}

	rows := make([]Row, 0, len(raw)-1)
	for i, values := range raw[1:] {
		rowNum := i + 2
		row := Row{Number: rowNum, Cells: make(map[string]Cell, len(header))}
		blank := true
		for col, name := range header {
			if name == "" || col >= len(values) {
				continue
			}
			if strings.TrimSpace(values[col]) != "" {
				blank = false
			}
			numeric, err := r.isNumeric(sheet, col+1, rowNum, values[col])
			if err != nil {
				return nil, err
			}
			row.Cells[name] = Cell{Value: values[col], Numeric: numeric}
		}
		if !blank {
			rows = append(rows, row)
		}
	}
	if len(rows) == 0 {
		return nil, ErrNoData
	}
	return rows, nil
}

func (r *Reader) isNumeric(sheet string, col, row int, value string) (bool, error) {
	if strings.TrimSpace(value) == "" {
		return false, nil
	}
	cell, err := excelize.CoordinatesToCellName(col, row)
	if err != nil {
		return false, errors.Wrap(err, "resolving cell name")
	}
	typ, err := r.f.GetCellType(sheet, cell)
	if err != nil {
		return false, errors.Wrapf(err, "reading cell %s type", cell)
	}
	switch typ {
	case excelize.CellTypeNumber, excelize.CellTypeUnset:
		_, err = strconv.ParseFloat(value, 64)
		return err == nil, nil
	}
	return false, nil
}
