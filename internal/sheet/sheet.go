// Package sheet reads and writes the glossary workbook and applies
// per-column font formatting.
package sheet

import (
	"fmt"

	"github.com/xuri/excelize/v2"
)

// Column is one named, ordered column of cell values (header excluded).
type Column struct {
	Name   string
	Values []string
}

// Table is a column-ordered in-memory workbook sheet. Columns keep their
// insertion order so output layout is deterministic; lookups go by name.
type Table struct {
	Columns []Column
}

// Rows returns the number of data rows.
func (t *Table) Rows() int {
	if len(t.Columns) == 0 {
		return 0
	}
	return len(t.Columns[0].Values)
}

// Headers returns the column names in order.
func (t *Table) Headers() []string {
	ret := make([]string, len(t.Columns))
	for i, c := range t.Columns {
		ret[i] = c.Name
	}
	return ret
}

// Column looks a column up by name.
func (t *Table) Column(name string) (*Column, bool) {
	for i := range t.Columns {
		if t.Columns[i].Name == name {
			return &t.Columns[i], true
		}
	}
	return nil, false
}

// Values returns a column's values, or nil when absent.
func (t *Table) Values(name string) []string {
	if col, ok := t.Column(name); ok {
		return col.Values
	}
	return nil
}

// SetColumn replaces a column's values, appending the column when it does
// not exist yet. Short value slices are padded to the table's row count.
func (t *Table) SetColumn(name string, values []string) {
	rows := t.Rows()
	if len(t.Columns) > 0 && len(values) < rows {
		padded := make([]string, rows)
		copy(padded, values)
		values = padded
	}
	if col, ok := t.Column(name); ok {
		col.Values = values
		return
	}
	t.Columns = append(t.Columns, Column{Name: name, Values: values})
}

// Read loads the first sheet of an xlsx workbook. The first row is the
// header row; ragged data rows are padded with empty strings.
func Read(path string) (*Table, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open workbook %s: %w", path, err)
	}
	defer f.Close()

	sheetName := f.GetSheetName(0)
	rows, err := f.GetRows(sheetName)
	if err != nil {
		return nil, fmt.Errorf("failed to read sheet %s: %w", sheetName, err)
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("workbook %s has no header row", path)
	}

	headers := rows[0]
	table := &Table{Columns: make([]Column, len(headers))}
	for i, h := range headers {
		table.Columns[i] = Column{Name: h, Values: make([]string, 0, len(rows)-1)}
	}
	for _, row := range rows[1:] {
		for i := range headers {
			v := ""
			if i < len(row) {
				v = row[i]
			}
			table.Columns[i].Values = append(table.Columns[i].Values, v)
		}
	}
	return table, nil
}

// Write saves the table as an xlsx workbook, headers first.
func Write(path string, t *Table) error {
	f := excelize.NewFile()
	defer f.Close()
	sheetName := f.GetSheetName(0)

	header := make([]any, len(t.Columns))
	for i, col := range t.Columns {
		header[i] = col.Name
	}
	if err := f.SetSheetRow(sheetName, "A1", &header); err != nil {
		return fmt.Errorf("failed to write header row: %w", err)
	}

	for r := 0; r < t.Rows(); r++ {
		row := make([]any, len(t.Columns))
		for i, col := range t.Columns {
			if r < len(col.Values) {
				row[i] = col.Values[r]
			}
		}
		cell, err := excelize.CoordinatesToCellName(1, r+2)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(sheetName, cell, &row); err != nil {
			return fmt.Errorf("failed to write row %d: %w", r+2, err)
		}
	}

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("failed to save workbook %s: %w", path, err)
	}
	return nil
}

// ApplyColumnFonts opens a saved workbook and sets the font family of every
// data cell in the named columns, leaving header cells untouched.
func ApplyColumnFonts(path string, families map[string]string) error {
	if len(families) == 0 {
		return nil
	}

	f, err := excelize.OpenFile(path)
	if err != nil {
		return fmt.Errorf("failed to open workbook %s: %w", path, err)
	}
	defer f.Close()

	sheetName := f.GetSheetName(0)
	rows, err := f.GetRows(sheetName)
	if err != nil {
		return fmt.Errorf("failed to read sheet %s: %w", sheetName, err)
	}
	if len(rows) < 2 {
		return nil
	}

	styleCache := make(map[string]int)
	for colIdx, header := range rows[0] {
		family, ok := families[header]
		if !ok {
			continue
		}

		styleID, ok := styleCache[family]
		if !ok {
			styleID, err = f.NewStyle(&excelize.Style{
				Font: &excelize.Font{Family: family, Size: 11},
			})
			if err != nil {
				return fmt.Errorf("failed to create style for %s: %w", family, err)
			}
			styleCache[family] = styleID
		}

		start, err := excelize.CoordinatesToCellName(colIdx+1, 2)
		if err != nil {
			return err
		}
		end, err := excelize.CoordinatesToCellName(colIdx+1, len(rows))
		if err != nil {
			return err
		}
		if err := f.SetCellStyle(sheetName, start, end, styleID); err != nil {
			return fmt.Errorf("failed to style column %s: %w", header, err)
		}
	}

	if err := f.Save(); err != nil {
		return fmt.Errorf("failed to save workbook %s: %w", path, err)
	}
	return nil
}
