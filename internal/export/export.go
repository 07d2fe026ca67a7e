// =============================================================================
// Corp Summary - Report Exporter
// =============================================================================
//
// The exporter persists a formatted report table. The header row is always
// written, followed by one row per department, in the table's fixed column
// order. Existing files are overwritten.
//
// FORMATS (chosen by destination extension):
//   .xlsx  - Excel workbook, one "summary" sheet
//   .xml   - XML document, one <row> element per department
//   other  - delimited text with the configured delimiter
//
// A table with no rows produces a header-only file.
//
// =============================================================================

package export

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/ginjaninja78/corp-summary/internal/report"
)

// Format is an export file format.
type Format int

const (
	FormatDelimited Format = iota
	FormatWorkbook
	FormatXML
)

func (f Format) String() string {
	switch f {
	case FormatWorkbook:
		return "xlsx"
	case FormatXML:
		return "xml"
	default:
		return "csv"
	}
}

// FormatForPath picks the export format from the destination extension.
func FormatForPath(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".xlsx":
		return FormatWorkbook
	case ".xml":
		return FormatXML
	default:
		return FormatDelimited
	}
}

// Options controls the exported file.
type Options struct {
	// Delimiter separates fields in delimited exports. Zero means ';'.
	Delimiter rune

	// BOM prefixes delimited exports with a UTF-8 byte order mark.
	BOM bool

	// Sheet names the worksheet of workbook exports. Empty means "summary".
	Sheet string
}

// WriteError reports that the destination could not be written.
type WriteError struct {
	Path string
	Err  error
}

func (e *WriteError) Error() string {
	return fmt.Sprintf("failed to write report to %s: %v", e.Path, e.Err)
}

func (e *WriteError) Unwrap() error {
	return e.Err
}

// Write exports the table to path, replacing any existing file.
// Parent directories are not created; an unwritable destination yields a
// *WriteError.
func Write(table *report.Table, path string, opts Options) error {
	if table == nil {
		table = report.Build(nil)
	}

	var err error
	switch FormatForPath(path) {
	case FormatWorkbook:
		err = writeWorkbook(table, path, opts)
	case FormatXML:
		err = writeXML(table, path)
	default:
		err = writeDelimited(table, path, opts)
	}

	if err != nil {
		return &WriteError{Path: path, Err: err}
	}
	return nil
}
