// =============================================================================
// Corp Summary - Record Loader
// =============================================================================
//
// The loader reads the employee file into memory as an ordered slice of
// Records. The first row names the fields; every following row becomes one
// Record.
//
// SUPPORTED SOURCES:
//   - Delimited text (UTF-8, optional BOM), any single-character delimiter
//   - Delimited text in a legacy encoding such as windows-1251 or koi8-r
//   - XLSX workbooks (selected by the .xlsx extension)
//
// The loader never checks that particular fields exist. Consumers read
// absent fields as empty strings.
//
// =============================================================================

package records

import (
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/htmlindex"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// utf8BOM is stripped from the start of delimited sources.
var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// errInvalidUTF8 is wrapped in a DecodeError for sources that are not UTF-8.
var errInvalidUTF8 = errors.New("content is not valid UTF-8 text")

// Dataset is the loaded employee file.
type Dataset struct {
	// SourceFile is the path the dataset was loaded from.
	SourceFile string

	// Header holds the field names from the first row.
	Header *Header

	// Records contains the data rows in source order.
	Records []Record
}

// Missing returns the names from the list that the header does not contain.
func (d *Dataset) Missing(names ...string) []string {
	var missing []string
	for _, name := range names {
		if d.Header == nil || !d.Header.Has(name) {
			missing = append(missing, name)
		}
	}
	return missing
}

// Options controls how a source is read.
type Options struct {
	// Delimiter separates fields in delimited sources. Zero means ';'.
	Delimiter rune

	// Sheet selects the worksheet of an XLSX source. Empty means the first sheet.
	Sheet string

	// Encoding names the character set of delimited sources, using WHATWG
	// labels ("windows-1251", "koi8-r", "utf-16le"). Empty means UTF-8.
	Encoding string
}

// LookupEncoding resolves an encoding label. It returns nil for UTF-8, which
// needs no decoding.
func LookupEncoding(name string) (encoding.Encoding, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, nil
	}

	enc, err := htmlindex.Get(name)
	if err != nil {
		return nil, fmt.Errorf("unknown encoding %q", name)
	}
	if enc == unicode.UTF8 {
		return nil, nil
	}
	return enc, nil
}

// =============================================================================
// LOADING FUNCTIONS
// =============================================================================

// Load reads the employee file at path.
//
// RETURNS:
//   - The loaded Dataset.
//   - *NotFoundError when the path does not exist.
//   - *DecodeError when the content cannot be decoded.
func Load(path string, opts Options) (*Dataset, error) {
	if _, err := os.Stat(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, &NotFoundError{Path: path, Err: err}
		}
		return nil, fmt.Errorf("failed to stat source file: %w", err)
	}

	if strings.EqualFold(filepath.Ext(path), ".xlsx") {
		return loadWorkbook(path, opts.Sheet)
	}

	enc, err := LookupEncoding(opts.Encoding)
	if err != nil {
		return nil, err
	}

	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open source file: %w", err)
	}
	defer file.Close()

	var r io.Reader = file
	if enc != nil {
		r = transform.NewReader(file, enc.NewDecoder())
	}

	dataset, err := Parse(r, opts.Delimiter)
	if err != nil {
		var decodeErr *DecodeError
		if errors.As(err, &decodeErr) {
			decodeErr.Path = path
		}
		return nil, err
	}

	dataset.SourceFile = path
	return dataset, nil
}

// Parse reads delimited text from r. An input with no rows at all yields an
// empty dataset with an empty header.
func Parse(r io.Reader, delimiter rune) (*Dataset, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("failed to read source: %w", err)
	}

	if !utf8.Valid(data) {
		return nil, &DecodeError{Err: errInvalidUTF8}
	}
	data = bytes.TrimPrefix(data, utf8BOM)

	if delimiter == 0 {
		delimiter = ';'
	}

	reader := csv.NewReader(bytes.NewReader(data))
	reader.Comma = delimiter
	// Rows may be shorter or longer than the header.
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true

	dataset := &Dataset{Header: NewHeader(nil)}

	headerRead := false
	for {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, decodeError(err)
		}

		line, _ := reader.FieldPos(0)

		if !headerRead {
			dataset.Header = NewHeader(row)
			headerRead = true
			continue
		}

		if isRowEmpty(row) {
			continue
		}

		dataset.Records = append(dataset.Records, NewRecord(dataset.Header, row, line))
	}

	return dataset, nil
}

// decodeError converts a csv reader failure into a DecodeError.
func decodeError(err error) error {
	var parseErr *csv.ParseError
	if errors.As(err, &parseErr) {
		return &DecodeError{Line: parseErr.Line, Err: parseErr.Err}
	}
	return &DecodeError{Err: err}
}

// isRowEmpty checks if a row contains only empty values.
func isRowEmpty(row []string) bool {
	for _, cell := range row {
		if strings.TrimSpace(cell) != "" {
			return false
		}
	}
	return true
}
