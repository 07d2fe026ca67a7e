package records

import "fmt"

// NotFoundError reports that the source file does not exist.
type NotFoundError struct {
	Path string
	Err  error
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("source file not found: %s", e.Path)
}

func (e *NotFoundError) Unwrap() error {
	return e.Err
}

// DecodeError reports that the source could not be read as delimited UTF-8 text
// (or, for workbooks, as an XLSX file).
type DecodeError struct {
	Path string
	// Line is the 1-based line where decoding failed, or 0 if unknown.
	Line int
	Err  error
}

func (e *DecodeError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("failed to decode %s at line %d: %v", e.Path, e.Line, e.Err)
	}
	return fmt.Sprintf("failed to decode %s: %v", e.Path, e.Err)
}

func (e *DecodeError) Unwrap() error {
	return e.Err
}
