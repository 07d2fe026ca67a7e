// =============================================================================
// Corp Summary - Configuration Module
// =============================================================================
//
// This module loads the application configuration: where the employee file
// lives, how it is delimited, which header names carry the department, team
// and salary fields, and where the summary report is exported.
//
// CONFIGURATION FILE (config.yaml):
//   source:
//     path: data/Corp_Summary.csv
//     delimiter: ";"
//   fields:
//     department: Департамент
//     team: Отдел
//     salary: Оклад
//   export:
//     path: output/result.csv
//     delimiter: ";"
//   log_level: info
//
// Every key is optional. Unset keys fall back to the defaults below.
//
// =============================================================================

package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"
	"unicode/utf8"

	"gopkg.in/yaml.v3"
)

// =============================================================================
// DEFAULTS
// =============================================================================

const (
	DefaultSourcePath      = "data/Corp_Summary.csv"
	DefaultExportPath      = "output/result.csv"
	DefaultDelimiter       = ";"
	DefaultDepartmentField = "Департамент"
	DefaultTeamField       = "Отдел"
	DefaultSalaryField     = "Оклад"
	DefaultLogLevel        = "info"
)

// =============================================================================
// CONFIGURATION STRUCTURES
// =============================================================================

// Config holds the global application configuration.
type Config struct {
	// Source describes the employee file to load.
	Source SourceSettings `yaml:"source"`

	// Fields names the header columns the reports read.
	Fields FieldSettings `yaml:"fields"`

	// Export describes where the summary report is written.
	Export ExportSettings `yaml:"export"`

	// LogLevel controls the verbosity of logging.
	// Valid values: "debug", "info", "warn", "error"
	LogLevel string `yaml:"log_level"`

	// LogFile redirects logs to a file. Empty means stderr.
	LogFile string `yaml:"log_file"`
}

// SourceSettings contains settings for reading the employee file.
type SourceSettings struct {
	// Path is the employee file. Files ending in .xlsx are read as workbooks.
	Path string `yaml:"path"`

	// Delimiter separates fields in delimited sources.
	// Accepts a single character or one of the aliases "tab", "pipe",
	// "semicolon", "comma".
	Delimiter string `yaml:"delimiter"`

	// Sheet selects the worksheet for .xlsx sources. Empty means the first sheet.
	Sheet string `yaml:"sheet"`

	// Encoding is the character set of delimited sources, e.g. "windows-1251".
	// Empty means UTF-8.
	Encoding string `yaml:"encoding"`
}

// FieldSettings maps report concepts to the source's header names.
type FieldSettings struct {
	Department string `yaml:"department"`
	Team       string `yaml:"team"`
	Salary     string `yaml:"salary"`
}

// ExportSettings contains settings for the exported summary file.
type ExportSettings struct {
	// Path is the destination file. The extension selects the format
	// (.xlsx, .xml, anything else is delimited text) and the placeholders
	// {uuid}, {timestamp} and {date} are expanded at export time.
	Path string `yaml:"path"`

	// Delimiter separates fields in delimited exports.
	Delimiter string `yaml:"delimiter"`

	// BOM prefixes delimited exports with a UTF-8 byte order mark.
	BOM bool `yaml:"bom"`

	// Sheet names the worksheet of .xlsx exports. Empty means "summary".
	Sheet string `yaml:"sheet"`
}

// =============================================================================
// CONFIGURATION LOADING FUNCTIONS
// =============================================================================

// Default returns a configuration with every default applied.
func Default() *Config {
	cfg := &Config{}
	applyDefaults(cfg)
	return cfg
}

// LoadConfig loads the configuration from a YAML file.
//
// PARAMETERS:
//   - configPath: The path to the configuration file.
//   - required: When false, a missing file yields the defaults instead of an error.
//
// RETURNS:
//   - A pointer to the Config struct.
//   - An error if the file cannot be read, parsed or validated.
func LoadConfig(configPath string, required bool) (*Config, error) {
	data, err := os.ReadFile(configPath)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) && !required {
			return Default(), nil
		}
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	applyDefaults(&cfg)

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &cfg, nil
}

// applyDefaults sets default values for any unset configuration options.
func applyDefaults(cfg *Config) {
	if cfg.Source.Path == "" {
		cfg.Source.Path = DefaultSourcePath
	}
	if cfg.Source.Delimiter == "" {
		cfg.Source.Delimiter = DefaultDelimiter
	}
	if cfg.Fields.Department == "" {
		cfg.Fields.Department = DefaultDepartmentField
	}
	if cfg.Fields.Team == "" {
		cfg.Fields.Team = DefaultTeamField
	}
	if cfg.Fields.Salary == "" {
		cfg.Fields.Salary = DefaultSalaryField
	}
	if cfg.Export.Path == "" {
		cfg.Export.Path = DefaultExportPath
	}
	if cfg.Export.Delimiter == "" {
		cfg.Export.Delimiter = DefaultDelimiter
	}
	if cfg.LogLevel == "" {
		cfg.LogLevel = DefaultLogLevel
	}
}

// Validate checks that both delimiters resolve to a single usable character.
func (c *Config) Validate() error {
	if _, err := ParseDelimiter(c.Source.Delimiter); err != nil {
		return fmt.Errorf("source.delimiter: %w", err)
	}
	if _, err := ParseDelimiter(c.Export.Delimiter); err != nil {
		return fmt.Errorf("export.delimiter: %w", err)
	}

	switch strings.ToLower(c.LogLevel) {
	case "debug", "info", "warn", "warning", "error":
	default:
		return fmt.Errorf("log_level: unknown level %q", c.LogLevel)
	}

	return nil
}

// =============================================================================
// DELIMITER HANDLING
// =============================================================================

// ParseDelimiter resolves a configured delimiter to the rune used by the
// CSV reader and writer.
func ParseDelimiter(value string) (rune, error) {
	switch strings.ToLower(value) {
	case "\\t", "\t", "tab":
		return '\t', nil
	case "pipe":
		return '|', nil
	case "semicolon":
		return ';', nil
	case "comma":
		return ',', nil
	}

	if utf8.RuneCountInString(value) != 1 {
		return 0, fmt.Errorf("delimiter must be a single character, got %q", value)
	}

	r, _ := utf8.DecodeRuneInString(value)
	switch r {
	case '"', '\r', '\n', utf8.RuneError:
		return 0, fmt.Errorf("invalid delimiter %q", value)
	}

	return r, nil
}
