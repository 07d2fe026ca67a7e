// =============================================================================
// Corp Summary - Salary Aggregator
// =============================================================================
//
// The aggregator groups salaries by department and computes, per department,
// the number of employees with a usable salary and the min, max and mean of
// those salaries.
//
// TOLERANCE:
//   A record is left out of its department's bucket when the department is
//   blank, the salary is blank, or the salary does not parse. Such records
//   never abort the run; Collect reports them as Skipped entries so callers
//   can log them.
//
// =============================================================================

package summary

import (
	"sort"
	"strings"

	"github.com/ginjaninja78/corp-summary/internal/records"
)

// =============================================================================
// TYPES
// =============================================================================

// Row is the salary summary of one department.
// Figures are exact; rounding happens when the row is formatted.
type Row struct {
	Department string
	Employees  int
	Min        float64
	Max        float64
	Avg        float64
}

// Buckets maps each department to its parsed salaries in source order.
type Buckets map[string][]float64

// Skipped describes a record left out of aggregation.
type Skipped struct {
	// Line is the source line of the record.
	Line int

	Department string

	// Err is a *ParseError for salary problems, or nil when the department
	// was blank.
	Err error
}

// =============================================================================
// AGGREGATION
// =============================================================================

// Collect parses the salary field of every record into per-department buckets.
//
// PARAMETERS:
//   - recs: The loaded records.
//   - names: Header names of the employee fields. Only Department and
//     Salary are read.
//
// RETURNS:
//   - The buckets; departments without a valid salary are absent.
//   - The records that were left out, in source order.
func Collect(recs []records.Record, names records.FieldNames) (Buckets, []Skipped) {
	buckets := make(Buckets)
	var skipped []Skipped

	for _, rec := range recs {
		emp := rec.Employee(names)
		dept := strings.TrimSpace(emp.Department)
		if dept == "" {
			skipped = append(skipped, Skipped{Line: rec.Line})
			continue
		}

		salary, err := ParseSalary(emp.Salary)
		if err != nil {
			skipped = append(skipped, Skipped{Line: rec.Line, Department: dept, Err: err})
			continue
		}

		buckets[dept] = append(buckets[dept], salary)
	}

	return buckets, skipped
}

// Rows computes one summary row per non-empty bucket, sorted by department.
func (b Buckets) Rows() []Row {
	depts := make([]string, 0, len(b))
	for dept, salaries := range b {
		if len(salaries) > 0 {
			depts = append(depts, dept)
		}
	}
	sort.Strings(depts)

	rows := make([]Row, 0, len(depts))
	for _, dept := range depts {
		rows = append(rows, summarize(dept, b[dept]))
	}
	return rows
}

// summarize computes the statistics of a non-empty bucket.
func summarize(dept string, salaries []float64) Row {
	row := Row{
		Department: dept,
		Employees:  len(salaries),
		Min:        salaries[0],
		Max:        salaries[0],
	}

	var total float64
	for _, s := range salaries {
		if s < row.Min {
			row.Min = s
		}
		if s > row.Max {
			row.Max = s
		}
		total += s
	}
	row.Avg = total / float64(len(salaries))

	// Float summation can drift a hair outside the range for equal values.
	if row.Avg < row.Min {
		row.Avg = row.Min
	}
	if row.Avg > row.Max {
		row.Avg = row.Max
	}

	return row
}

// Summarize groups salaries by department and returns the summary rows.
// The result is empty, not nil-with-error, when no department has a valid
// salary.
func Summarize(recs []records.Record, names records.FieldNames) []Row {
	buckets, _ := Collect(recs, names)
	return buckets.Rows()
}
