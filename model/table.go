package model

import (
	"fmt"
	"strings"
)

// Table represents an Org table. The column count of the whole table is
// fixed by row 0; the parser guarantees all rows share it, and renderers
// assume it without re-validating.
type Table struct {
	Rows []TableRow
}

// TableRow is one logical row of a table.
type TableRow struct {
	Cells []TableCell
}

// TableCell holds one cell's content in two parallel forms: Contents is
// the parsed attributed text (used for display-width computation and by
// exporters), RawContents the trimmed source text (used verbatim when the
// table is serialized). RawContents may contain newlines, in which case
// the row renders over several physical lines.
type TableCell struct {
	Contents    AttributedText
	RawContents string
}

// NewTable creates an empty table with the given dimensions.
func NewTable(rows, cols int) *Table {
	table := &Table{
		Rows: make([]TableRow, rows),
	}
	for i := 0; i < rows; i++ {
		table.Rows[i] = TableRow{Cells: make([]TableCell, cols)}
	}
	return table
}

// RowCount returns the number of rows.
func (t *Table) RowCount() int {
	return len(t.Rows)
}

// ColCount returns the number of columns in the first row.
func (t *Table) ColCount() int {
	if len(t.Rows) == 0 {
		return 0
	}
	return len(t.Rows[0].Cells)
}

// GetCell returns the cell at the given row and column (0-indexed), or
// nil when the position is out of bounds.
func (t *Table) GetCell(row, col int) *TableCell {
	if row < 0 || row >= len(t.Rows) {
		return nil
	}
	if col < 0 || col >= len(t.Rows[row].Cells) {
		return nil
	}
	return &t.Rows[row].Cells[col]
}

// SetCell sets the cell at the given position.
func (t *Table) SetCell(row, col int, cell TableCell) error {
	if row < 0 || row >= len(t.Rows) {
		return fmt.Errorf("row index %d out of bounds", row)
	}
	if col < 0 || col >= len(t.Rows[row].Cells) {
		return fmt.Errorf("col index %d out of bounds", col)
	}
	t.Rows[row].Cells[col] = cell
	return nil
}

// ToCSV converts the table to CSV format using each cell's raw contents.
func (t *Table) ToCSV() string {
	var sb strings.Builder
	for _, row := range t.Rows {
		for j, cell := range row.Cells {
			// Escape quotes and wrap in quotes if necessary
			text := cell.RawContents
			if strings.Contains(text, ",") || strings.Contains(text, "\"") || strings.Contains(text, "\n") {
				text = "\"" + strings.ReplaceAll(text, "\"", "\"\"") + "\""
			}
			sb.WriteString(text)
			if j < len(row.Cells)-1 {
				sb.WriteString(",")
			}
		}
		sb.WriteString("\n")
	}
	return sb.String()
}
