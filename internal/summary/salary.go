package summary

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
)

var (
	// ErrEmptySalary is returned for a blank salary field.
	ErrEmptySalary = errors.New("salary is empty")
	// ErrNotNumber is returned when the salary is not a decimal number.
	ErrNotNumber = errors.New("salary is not a number")
	// ErrNegativeSalary is returned for salaries below zero.
	ErrNegativeSalary = errors.New("salary is negative")
)

// ParseError describes a salary value that could not be used.
type ParseError struct {
	Value string
	Err   error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("invalid salary %q: %v", e.Value, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// thousandsSeparators are removed anywhere in a salary value.
var thousandsSeparators = strings.NewReplacer(" ", "", "\u00a0", "", "\u202f", "")

// ParseSalary converts salary text to a number.
//
// Spaces are treated as thousands separators and removed, and a ',' decimal
// separator is accepted in place of '.', so "12 345,67" parses as 12345.67.
// Empty, non-numeric, infinite and negative values are rejected with a
// *ParseError.
func ParseSalary(raw string) (float64, error) {
	s := thousandsSeparators.Replace(strings.TrimSpace(raw))
	if s == "" {
		return 0, &ParseError{Value: raw, Err: ErrEmptySalary}
	}

	s = strings.ReplaceAll(s, ",", ".")

	// strconv also accepts hex floats, "inf" and "nan"; only plain decimals
	// are salaries.
	if strings.IndexFunc(s, func(r rune) bool {
		return !strings.ContainsRune("0123456789.eE+-", r)
	}) >= 0 {
		return 0, &ParseError{Value: raw, Err: ErrNotNumber}
	}

	value, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsInf(value, 0) || math.IsNaN(value) {
		return 0, &ParseError{Value: raw, Err: ErrNotNumber}
	}
	if value < 0 {
		return 0, &ParseError{Value: raw, Err: ErrNegativeSalary}
	}

	// Drop the sign of "-0".
	return math.Abs(value), nil
}
