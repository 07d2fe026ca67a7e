package cmd

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ginjaninja78/corp-summary/internal/export"
	"github.com/ginjaninja78/corp-summary/internal/pipeline"
	"github.com/ginjaninja78/corp-summary/internal/records"
)

const employees = `ФИО полностью;Департамент;Отдел;Оклад
Иванов Иван;Продажи;B2B;85000
Петров Пётр;Разработка;Backend;150000
Сидорова Анна;Продажи;B2C;70000
`

func writeSource(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "employees.csv")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func execute(t *testing.T, stdin string, args ...string) (string, string, error) {
	t.Helper()

	var stdout, stderr bytes.Buffer
	root := NewRootCmd()
	root.SetArgs(args)
	root.SetIn(strings.NewReader(stdin))
	root.SetOut(&stdout)
	root.SetErr(&stderr)

	err := root.Execute()
	return stdout.String(), stderr.String(), err
}

func TestHierarchyCmd(t *testing.T) {
	source := writeSource(t, employees)

	out, _, err := execute(t, "", "hierarchy", "--source", source)
	require.NoError(t, err)
	assert.Equal(t, "- Продажи\n  • B2B\n  • B2C\n- Разработка\n  • Backend\n", out)
}

func TestSummaryCmd(t *testing.T) {
	source := writeSource(t, employees)

	out, _, err := execute(t, "", "summary", "-s", source)
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSuffix(out, "\n"), "\n")
	require.Len(t, lines, 4)
	assert.Contains(t, lines[2], "77500")
	assert.Contains(t, lines[3], "150000")
}

func TestExportCmd(t *testing.T) {
	source := writeSource(t, employees)
	output := filepath.Join(t.TempDir(), "result.csv")

	out, _, err := execute(t, "", "export", "--source", source, "--output", output)
	require.NoError(t, err)
	assert.Contains(t, out, "Summary report saved to: "+output)

	data, err := os.ReadFile(output)
	require.NoError(t, err)
	assert.Equal(t,
		"department;number_of_employees;min_salary;max_salary;avg_salary\n"+
			"Продажи;2;70000;85000;77500\n"+
			"Разработка;1;150000;150000;150000\n",
		string(data))
}

func TestExportCmd_Unwritable(t *testing.T) {
	source := writeSource(t, employees)
	output := filepath.Join(t.TempDir(), "missing", "result.csv")

	_, _, err := execute(t, "", "export", "--source", source, "--output", output)
	require.Error(t, err)

	var writeErr *export.WriteError
	assert.True(t, errors.As(err, &writeErr))
}

func TestSummaryCmd_NoData(t *testing.T) {
	source := writeSource(t, "Департамент;Отдел;Оклад\n")

	out, _, err := execute(t, "", "summary", "--source", source)
	require.NoError(t, err)
	assert.Equal(t, pipeline.NoDataNotice+"\n", out)
}

func TestSummaryCmd_SourceNotFound(t *testing.T) {
	_, _, err := execute(t, "", "summary", "--source", filepath.Join(t.TempDir(), "missing.csv"))
	require.Error(t, err)

	var notFound *records.NotFoundError
	assert.True(t, errors.As(err, &notFound))
}

func TestCustomDelimiter(t *testing.T) {
	source := writeSource(t, strings.ReplaceAll(employees, ";", "|"))

	out, _, err := execute(t, "", "hierarchy", "--source", source, "--delimiter", "pipe")
	require.NoError(t, err)
	assert.Contains(t, out, "- Разработка\n")
}

func TestConfigFile(t *testing.T) {
	dir := t.TempDir()
	source := writeSource(t, employees)
	output := filepath.Join(dir, "result.csv")
	cfgPath := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(cfgPath, []byte(
		"source:\n  path: "+source+"\nexport:\n  path: "+output+"\n  delimiter: comma\n"), 0644))

	_, _, err := execute(t, "", "export", "--config", cfgPath)
	require.NoError(t, err)

	data, err := os.ReadFile(output)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(data), "department,number_of_employees,"))
}

func TestConfigFile_ExplicitMissing(t *testing.T) {
	_, _, err := execute(t, "", "summary", "--config", filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestInvalidDelimiterFlag(t *testing.T) {
	source := writeSource(t, employees)
	_, _, err := execute(t, "", "summary", "--source", source, "--delimiter", ";;")
	assert.Error(t, err)
}

func TestVerboseLogsToStderr(t *testing.T) {
	source := writeSource(t, employees)

	_, stderr, err := execute(t, "", "summary", "--source", source, "--verbose")
	require.NoError(t, err)
	assert.Contains(t, stderr, "level=DEBUG")
	assert.Contains(t, stderr, "run_id=")
}

func TestVersionCmd(t *testing.T) {
	out, _, err := execute(t, "", "version")
	require.NoError(t, err)
	assert.Contains(t, out, "Version:    "+Version)
}
