package hierarchy

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ginjaninja78/corp-summary/internal/records"
)

var fields = records.FieldNames{Department: "dept", Team: "team"}

func sample() []map[string]string {
	return []map[string]string{
		{"dept": "Sales", "team": "B2C"},
		{"dept": " Sales ", "team": "B2B"},
		{"dept": "Sales", "team": "B2C"},
		{"dept": "Engineering", "team": "Backend"},
		{"dept": "Engineering", "team": "  "},
		{"dept": "", "team": "Orphans"},
		{"dept": "Support"},
	}
}

func TestBuild(t *testing.T) {
	tree := Build(records.FromMaps(sample()), fields)

	assert.Equal(t, 2, tree.Len())
	assert.Equal(t, []Department{
		{Name: "Engineering", Teams: []string{"Backend"}},
		{Name: "Sales", Teams: []string{"B2B", "B2C"}},
	}, tree.Sorted())
	assert.Nil(t, tree.Teams("Support"))
}

func TestBuild_OrderIndependent(t *testing.T) {
	rows := sample()
	reversed := make([]map[string]string, len(rows))
	for i, row := range rows {
		reversed[len(rows)-1-i] = row
	}

	a := Build(records.FromMaps(rows), fields)
	b := Build(records.FromMaps(reversed), fields)

	assert.Equal(t, a.Sorted(), b.Sorted())
}

func TestBuild_Empty(t *testing.T) {
	tree := Build(nil, fields)
	require.True(t, tree.Empty())
	assert.Empty(t, tree.Departments())
	assert.Empty(t, tree.Sorted())
}

func TestBuild_MissingFields(t *testing.T) {
	tree := Build(records.FromMaps(sample()), records.FieldNames{Department: "Департамент", Team: "Отдел"})
	assert.True(t, tree.Empty())
}

func TestBuild_ReadsConfiguredFields(t *testing.T) {
	recs := records.FromMaps([]map[string]string{
		{"Подразделение": "Продажи", "Группа": "B2B", "dept": "ignored", "team": "ignored"},
	})

	tree := Build(recs, records.FieldNames{Department: "Подразделение", Team: "Группа"})
	assert.Equal(t, []Department{{Name: "Продажи", Teams: []string{"B2B"}}}, tree.Sorted())
}
