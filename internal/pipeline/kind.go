package pipeline

import (
	"fmt"
	"strconv"
	"strings"
)

// Kind is one of the reports the pipeline can produce.
type Kind int

const (
	// KindHierarchy lists the teams of every department.
	KindHierarchy Kind = iota + 1
	// KindSummary prints the per-department salary table.
	KindSummary
	// KindExport prints the salary table and saves it to the export path.
	KindExport
)

// Kinds returns every report kind in menu order.
func Kinds() []Kind {
	return []Kind{KindHierarchy, KindSummary, KindExport}
}

func (k Kind) String() string {
	switch k {
	case KindHierarchy:
		return "hierarchy"
	case KindSummary:
		return "summary"
	case KindExport:
		return "export"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// Title is the human-readable menu label of the report.
func (k Kind) Title() string {
	switch k {
	case KindHierarchy:
		return "Show department hierarchy"
	case KindSummary:
		return "Show department summary report"
	case KindExport:
		return "Save department summary report"
	default:
		return k.String()
	}
}

// ParseKind accepts a menu number ("1".."3") or a report name.
func ParseKind(s string) (Kind, error) {
	s = strings.ToLower(strings.TrimSpace(s))

	if n, err := strconv.Atoi(s); err == nil {
		for _, k := range Kinds() {
			if int(k) == n {
				return k, nil
			}
		}
		return 0, fmt.Errorf("unknown report number %d", n)
	}

	for _, k := range Kinds() {
		if k.String() == s {
			return k, nil
		}
	}
	return 0, fmt.Errorf("unknown report %q", s)
}
