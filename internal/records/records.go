// =============================================================================
// Corp Summary - Records
// =============================================================================
//
// A Record is one row of the employee file. Field names come from the file's
// own header row, so the same Record type serves any locale's column naming.
//
// ACCESS:
//   - Get returns a field by header name, or "" when the header lacks it.
//   - Employee resolves the three fields the reports need through FieldNames,
//     giving callers named accessors instead of string-keyed lookups.
//
// =============================================================================

package records

import (
	"fmt"
	"sort"
	"strings"
)

// =============================================================================
// HEADER
// =============================================================================

// Header is the ordered set of field names shared by every record of a dataset.
type Header struct {
	names []string
	index map[string]int
}

// NewHeader builds a header from raw header cells.
// Names are trimmed; empty names become "Column_N". When a name repeats,
// lookups resolve to its last occurrence.
func NewHeader(cells []string) *Header {
	h := &Header{
		names: make([]string, len(cells)),
		index: make(map[string]int, len(cells)),
	}

	for i, cell := range cells {
		name := strings.TrimSpace(cell)
		if name == "" {
			name = fmt.Sprintf("Column_%d", i+1)
		}
		h.names[i] = name
		h.index[name] = i
	}

	return h
}

// Names returns the field names in source order.
func (h *Header) Names() []string {
	out := make([]string, len(h.names))
	copy(out, h.names)
	return out
}

// Has reports whether the header contains the named field.
func (h *Header) Has(name string) bool {
	_, ok := h.index[name]
	return ok
}

// Len returns the number of fields.
func (h *Header) Len() int {
	return len(h.names)
}

// =============================================================================
// RECORD
// =============================================================================

// Record is a single immutable row keyed by the dataset header.
type Record struct {
	header *Header
	values []string

	// Line is the 1-based source line (or worksheet row) of the record.
	Line int
}

// NewRecord binds row values to a header. Missing trailing values read as
// empty strings; values beyond the header are dropped.
func NewRecord(header *Header, values []string, line int) Record {
	row := make([]string, header.Len())
	copy(row, values)
	return Record{header: header, values: row, Line: line}
}

// Get returns the value of the named field, or "" if the field is absent.
func (r Record) Get(field string) string {
	if r.header == nil {
		return ""
	}
	i, ok := r.header.index[field]
	if !ok {
		return ""
	}
	return r.values[i]
}

// FieldNames tells the reports which header names hold the employee fields.
type FieldNames struct {
	Department string
	Team       string
	Salary     string
}

// Employee is the typed view of a record used by the reports.
// Values are raw; consumers trim and parse them.
type Employee struct {
	Department string
	Team       string
	Salary     string
}

// Employee resolves the record's employee fields.
func (r Record) Employee(names FieldNames) Employee {
	return Employee{
		Department: r.Get(names.Department),
		Team:       r.Get(names.Team),
		Salary:     r.Get(names.Salary),
	}
}

// FromMaps builds records from name -> value maps, using the union of keys
// in first-seen order as the header. Keys are visited in sorted order per map
// so the resulting header is deterministic.
func FromMaps(rows []map[string]string) []Record {
	var cells []string
	seen := make(map[string]bool)

	for _, row := range rows {
		for _, key := range sortedKeys(row) {
			if !seen[key] {
				seen[key] = true
				cells = append(cells, key)
			}
		}
	}

	header := NewHeader(cells)
	out := make([]Record, len(rows))
	for i, row := range rows {
		values := make([]string, len(cells))
		for j, name := range cells {
			values[j] = row[name]
		}
		out[i] = NewRecord(header, values, i+2)
	}
	return out
}

func sortedKeys(m map[string]string) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
