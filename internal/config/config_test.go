package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0644))
	return path
}

func TestLoadConfig_Defaults(t *testing.T) {
	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "missing.yaml"), false)
	require.NoError(t, err)

	assert.Equal(t, DefaultSourcePath, cfg.Source.Path)
	assert.Equal(t, ";", cfg.Source.Delimiter)
	assert.Equal(t, DefaultDepartmentField, cfg.Fields.Department)
	assert.Equal(t, DefaultTeamField, cfg.Fields.Team)
	assert.Equal(t, DefaultSalaryField, cfg.Fields.Salary)
	assert.Equal(t, DefaultExportPath, cfg.Export.Path)
	assert.Equal(t, "info", cfg.LogLevel)
}

func TestLoadConfig_RequiredMissing(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "missing.yaml"), true)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read config file")
}

func TestLoadConfig_Overrides(t *testing.T) {
	path := writeConfig(t, `
source:
  path: staff.csv
  delimiter: tab
fields:
  department: Dept
  team: Team
  salary: Pay
export:
  path: out/{date}.csv
  delimiter: ","
  bom: true
  sheet: Итоги
log_level: debug
`)

	cfg, err := LoadConfig(path, true)
	require.NoError(t, err)

	assert.Equal(t, "staff.csv", cfg.Source.Path)
	assert.Equal(t, "tab", cfg.Source.Delimiter)
	assert.Equal(t, FieldSettings{Department: "Dept", Team: "Team", Salary: "Pay"}, cfg.Fields)
	assert.Equal(t, "out/{date}.csv", cfg.Export.Path)
	assert.Equal(t, ",", cfg.Export.Delimiter)
	assert.True(t, cfg.Export.BOM)
	assert.Equal(t, "Итоги", cfg.Export.Sheet)
	assert.Equal(t, "debug", cfg.LogLevel)
}

func TestLoadConfig_Invalid(t *testing.T) {
	tests := []struct {
		name    string
		body    string
		wantErr string
	}{
		{name: "bad yaml", body: "source: [", wantErr: "failed to parse config file"},
		{name: "long delimiter", body: "source:\n  delimiter: ';;'\n", wantErr: "source.delimiter"},
		{name: "quote delimiter", body: "export:\n  delimiter: '\"'\n", wantErr: "export.delimiter"},
		{name: "unknown level", body: "log_level: loud\n", wantErr: "log_level"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadConfig(writeConfig(t, tt.body), true)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestParseDelimiter(t *testing.T) {
	tests := []struct {
		in      string
		want    rune
		wantErr bool
	}{
		{in: ";", want: ';'},
		{in: ",", want: ','},
		{in: "tab", want: '\t'},
		{in: "\\t", want: '\t'},
		{in: "pipe", want: '|'},
		{in: "semicolon", want: ';'},
		{in: "", wantErr: true},
		{in: "ab", wantErr: true},
		{in: "\n", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseDelimiter(tt.in)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
