package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Table renders rows aligned on column widths, without borders. Widths are
// measured with lipgloss so styled cells line up.
type Table struct {
	header     []string
	rows       [][]string
	colWidths  []int
	colPadding int
}

// NewTable creates a new table with the specified number of columns.
func NewTable(cols int) *Table {
	return &Table{
		colWidths:  make([]int, cols),
		colPadding: 2,
	}
}

// SetHeader sets a header row, rendered muted above the rows.
func (t *Table) SetHeader(cells ...string) {
	t.header = t.fit(cells)
}

// AddRow adds a row to the table. Missing cells are left blank and extra
// cells are dropped.
func (t *Table) AddRow(cells ...string) {
	t.rows = append(t.rows, t.fit(cells))
}

func (t *Table) fit(cells []string) []string {
	row := make([]string, len(t.colWidths))
	for i := 0; i < len(t.colWidths) && i < len(cells); i++ {
		row[i] = cells[i]
		if w := lipgloss.Width(cells[i]); w > t.colWidths[i] {
			t.colWidths[i] = w
		}
	}
	return row
}

// SetPadding sets the padding between columns.
func (t *Table) SetPadding(padding int) {
	t.colPadding = padding
}

// Len returns the number of body rows.
func (t *Table) Len() int { return len(t.rows) }

// String renders the table. An empty table renders as "".
func (t *Table) String() string {
	if len(t.rows) == 0 {
		return ""
	}

	var sb strings.Builder
	if t.header != nil {
		sb.WriteString(Muted.Render(t.renderRow(t.header)))
		sb.WriteString("\n")
	}
	for _, row := range t.rows {
		sb.WriteString(t.renderRow(row))
		sb.WriteString("\n")
	}
	return sb.String()
}

func (t *Table) renderRow(row []string) string {
	var sb strings.Builder
	padding := strings.Repeat(" ", t.colPadding)
	for i, cell := range row {
		if i > 0 {
			sb.WriteString(padding)
		}
		sb.WriteString(cell)
		// last column is not padded
		if i < len(row)-1 {
			sb.WriteString(strings.Repeat(" ", t.colWidths[i]-lipgloss.Width(cell)))
		}
	}
	return strings.TrimRight(sb.String(), " ")
}
