package export

import (
	"fmt"
	"strconv"

	"github.com/xuri/excelize/v2"

	"github.com/ginjaninja78/corp-summary/internal/report"
)

// writeWorkbook writes the table to the first sheet of a new workbook.
// Whole-number cells are stored as numbers so spreadsheets can sum them.
func writeWorkbook(table *report.Table, path string, opts Options) error {
	sheet := opts.Sheet
	if sheet == "" {
		sheet = "summary"
	}

	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName(f.GetSheetName(0), sheet); err != nil {
		return fmt.Errorf("failed to name sheet: %w", err)
	}

	if err := setRow(f, sheet, 1, table.Header, false); err != nil {
		return err
	}
	for i, row := range table.Rows {
		if err := setRow(f, sheet, i+2, row, true); err != nil {
			return err
		}
	}

	return f.SaveAs(path)
}

func setRow(f *excelize.File, sheet string, rowNum int, cells []string, numeric bool) error {
	cell, err := excelize.CoordinatesToCellName(1, rowNum)
	if err != nil {
		return err
	}

	values := make([]interface{}, len(cells))
	for i, c := range cells {
		values[i] = c
		// The first column is the department name and stays text.
		if numeric && i > 0 {
			if n, err := strconv.ParseInt(c, 10, 64); err == nil {
				values[i] = n
			}
		}
	}

	if err := f.SetSheetRow(sheet, cell, &values); err != nil {
		return fmt.Errorf("failed to write row %d: %w", rowNum, err)
	}
	return nil
}
