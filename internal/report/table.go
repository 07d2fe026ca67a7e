// =============================================================================
// Corp Summary - Report Formatter
// =============================================================================
//
// The formatter turns summary rows into a Table of display strings. The same
// Table feeds both the aligned console rendering and the exporter, so the
// printed and the exported report always agree.
//
// COLUMN ORDER (fixed):
//   department | number_of_employees | min_salary | max_salary | avg_salary
//
// =============================================================================

package report

import (
	"errors"
	"strconv"

	"github.com/ginjaninja78/corp-summary/internal/summary"
)

// ErrNoData is returned when a report has nothing to show.
var ErrNoData = errors.New("no data found")

// Column names of the summary report, in output order.
const (
	ColumnDepartment = "department"
	ColumnEmployees  = "number_of_employees"
	ColumnMinSalary  = "min_salary"
	ColumnMaxSalary  = "max_salary"
	ColumnAvgSalary  = "avg_salary"
)

// Columns returns the fixed column order of the summary report.
func Columns() []string {
	return []string{ColumnDepartment, ColumnEmployees, ColumnMinSalary, ColumnMaxSalary, ColumnAvgSalary}
}

// Table is a formatted report: a header and rows of display strings.
type Table struct {
	Header []string
	Rows   [][]string
}

// Empty reports whether the table has no data rows.
func (t *Table) Empty() bool {
	return t == nil || len(t.Rows) == 0
}

// Build formats summary rows. Salary figures are rounded to whole units.
// An empty input gives a table with the header and no rows.
func Build(rows []summary.Row) *Table {
	table := &Table{
		Header: Columns(),
		Rows:   make([][]string, 0, len(rows)),
	}

	for _, row := range rows {
		table.Rows = append(table.Rows, []string{
			row.Department,
			strconv.Itoa(row.Employees),
			FormatWhole(row.Min),
			FormatWhole(row.Max),
			FormatWhole(row.Avg),
		})
	}

	return table
}

// FormatWhole renders a number with no decimal places, rounding half to even.
func FormatWhole(v float64) string {
	return strconv.FormatFloat(v, 'f', 0, 64)
}
