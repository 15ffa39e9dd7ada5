package output

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
)

// FieldTable is a styled two-column table used by inspect to show the
// extracted metadata record.
type FieldTable struct {
	rows [][]string
}

// NewFieldTable creates an empty field/value table.
func NewFieldTable() *FieldTable {
	return &FieldTable{}
}

// Row adds a field/value pair.
func (t *FieldTable) Row(field, value string) *FieldTable {
	t.rows = append(t.rows, []string{field, value})
	return t
}

// String renders the table.
func (t *FieldTable) String() string {
	tbl := table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(ColorDimGray)).
		Headers("FIELD", "VALUE").
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return lipgloss.NewStyle().Bold(true).Foreground(ColorCyan).Padding(0, 1)
			}
			if col == 0 {
				return StyleNoun.Padding(0, 1)
			}
			return lipgloss.NewStyle().Padding(0, 1)
		}).
		Rows(t.rows...)

	return tbl.String()
}
