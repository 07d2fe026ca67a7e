// Package hierarchy groups teams under their departments.
package hierarchy

import (
	"sort"
	"strings"

	"github.com/ginjaninja78/corp-summary/internal/records"
)

// Tree maps each department to its set of teams.
// Every department in a Tree has at least one team.
type Tree struct {
	teams map[string]map[string]struct{}
}

// Build groups the team of every record under its department, reading both
// through names. Values are trimmed; records where either is empty are skipped.
func Build(recs []records.Record, names records.FieldNames) *Tree {
	tree := &Tree{teams: make(map[string]map[string]struct{})}

	for _, rec := range recs {
		emp := rec.Employee(names)
		dept := strings.TrimSpace(emp.Department)
		team := strings.TrimSpace(emp.Team)
		if dept == "" || team == "" {
			continue
		}
		tree.add(dept, team)
	}

	return tree
}

func (t *Tree) add(dept, team string) {
	set, ok := t.teams[dept]
	if !ok {
		set = make(map[string]struct{})
		t.teams[dept] = set
	}
	set[team] = struct{}{}
}

// Len returns the number of departments.
func (t *Tree) Len() int {
	return len(t.teams)
}

// Empty reports whether no department was found.
func (t *Tree) Empty() bool {
	return len(t.teams) == 0
}

// Departments returns the department names in ascending order.
func (t *Tree) Departments() []string {
	depts := make([]string, 0, len(t.teams))
	for dept := range t.teams {
		depts = append(depts, dept)
	}
	sort.Strings(depts)
	return depts
}

// Teams returns the teams of a department in ascending order, or nil if the
// department is unknown.
func (t *Tree) Teams(dept string) []string {
	set, ok := t.teams[dept]
	if !ok {
		return nil
	}
	teams := make([]string, 0, len(set))
	for team := range set {
		teams = append(teams, team)
	}
	sort.Strings(teams)
	return teams
}

// Department is one sorted entry of a Tree.
type Department struct {
	Name  string
	Teams []string
}

// Sorted returns the whole tree in display order.
func (t *Tree) Sorted() []Department {
	out := make([]Department, 0, len(t.teams))
	for _, dept := range t.Departments() {
		out = append(out, Department{Name: dept, Teams: t.Teams(dept)})
	}
	return out
}
