package render

import (
	"strings"

	"github.com/mattn/go-runewidth"

	"github.com/musicionary/organice/model"
)

// TableRenderer renders a table as an aligned Org pipe table. Output
// never carries a leading or trailing newline; a separator line follows
// every row except the last.
type TableRenderer struct {
	// Attributed renders cell contents for display-width computation.
	Attributed *AttributedTextRenderer
}

// NewTableRenderer creates a renderer with a default attributed-text
// renderer.
func NewTableRenderer() *TableRenderer {
	return &TableRenderer{Attributed: NewAttributedTextRenderer()}
}

// renderedCell holds one cell's raw and display text, pre-split into
// trimmed lines. Raw lines are what gets emitted; display lines are what
// alignment is computed from. The two diverge for cells holding link
// markup, whose display form is only the title.
type renderedCell struct {
	rawLines     []string
	displayLines []string
}

func (c renderedCell) rawLine(i int) string {
	if i < len(c.rawLines) {
		return c.rawLines[i]
	}
	return ""
}

func (c renderedCell) displayLine(i int) string {
	if i < len(c.displayLines) {
		return c.displayLines[i]
	}
	return ""
}

// Render serializes table. The column count is fixed by the first row;
// a row with fewer cells is padded with empty ones. Column widths are
// display widths, east-asian aware, so aligned output stays aligned in
// a buffer. An empty table renders as empty text.
func (r *TableRenderer) Render(table *model.Table) string {
	if len(table.Rows) == 0 {
		return ""
	}
	numColumns := len(table.Rows[0].Cells)

	cells := make([][]renderedCell, len(table.Rows))
	rowHeights := make([]int, len(table.Rows))
	for i, row := range table.Rows {
		cells[i] = make([]renderedCell, len(row.Cells))
		rowHeights[i] = 1
		for j, cell := range row.Cells {
			rc := renderedCell{
				rawLines:     trimmedLines(cell.RawContents),
				displayLines: trimmedLines(r.Attributed.DisplayText(cell.Contents)),
			}
			cells[i][j] = rc
			if h := strings.Count(cell.RawContents, "\n") + 1; h > rowHeights[i] {
				rowHeights[i] = h
			}
		}
	}

	columnWidths := make([]int, numColumns)
	for _, row := range cells {
		for c := 0; c < numColumns && c < len(row); c++ {
			for _, line := range row[c].displayLines {
				if w := runewidth.StringWidth(line); w > columnWidths[c] {
					columnWidths[c] = w
				}
			}
		}
	}

	var lines []string
	for i, row := range cells {
		for li := 0; li < rowHeights[i]; li++ {
			columns := make([]string, numColumns)
			for c := 0; c < numColumns; c++ {
				var cell renderedCell
				if c < len(row) {
					cell = row[c]
				}
				pad := columnWidths[c] - runewidth.StringWidth(cell.displayLine(li))
				if pad < 0 {
					pad = 0
				}
				columns[c] = cell.rawLine(li) + strings.Repeat(" ", pad)
			}
			lines = append(lines, "| "+strings.Join(columns, " | ")+" |")
		}
		if i < len(cells)-1 {
			lines = append(lines, separatorLine(columnWidths))
		}
	}
	return strings.Join(lines, "\n")
}

// separatorLine builds "|---+---|" sized to the column widths, each run
// two dashes wider than its column to cover the cell padding.
func separatorLine(columnWidths []int) string {
	runs := make([]string, len(columnWidths))
	for i, w := range columnWidths {
		runs[i] = strings.Repeat("-", w+2)
	}
	return "|" + strings.Join(runs, "+") + "|"
}

// trimmedLines splits text on newlines and trims surrounding whitespace
// from every line.
func trimmedLines(text string) []string {
	lines := strings.Split(text, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimSpace(line)
	}
	return lines
}
