package records

import (
	"fmt"

	"github.com/xuri/excelize/v2"
)

// loadWorkbook reads an XLSX source. The first row of the sheet is the header.
//
// PARAMETERS:
//   - path: The path to the XLSX file.
//   - sheet: The worksheet to read. Empty means the first sheet.
func loadWorkbook(path, sheet string) (*Dataset, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, &DecodeError{Path: path, Err: err}
	}
	defer f.Close()

	if sheet == "" {
		sheet = f.GetSheetName(0)
		if sheet == "" {
			return nil, &DecodeError{Path: path, Err: fmt.Errorf("workbook has no sheets")}
		}
	}

	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, &DecodeError{Path: path, Err: fmt.Errorf("failed to read sheet %q: %w", sheet, err)}
	}

	dataset := &Dataset{SourceFile: path, Header: NewHeader(nil)}
	if len(rows) == 0 {
		return dataset, nil
	}

	dataset.Header = NewHeader(rows[0])
	for i := 1; i < len(rows); i++ {
		if len(rows[i]) == 0 || isRowEmpty(rows[i]) {
			continue
		}
		dataset.Records = append(dataset.Records, NewRecord(dataset.Header, rows[i], i+1))
	}

	return dataset, nil
}
