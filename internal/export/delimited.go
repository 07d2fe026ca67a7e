package export

import (
	"encoding/csv"
	"fmt"
	"os"

	"github.com/ginjaninja78/corp-summary/internal/report"
)

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// writeDelimited writes the header and rows as delimited text.
func writeDelimited(table *report.Table, path string, opts Options) (err error) {
	file, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0644)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := file.Close(); cerr != nil && err == nil {
			err = cerr
		}
	}()

	if opts.BOM {
		if _, err := file.Write(utf8BOM); err != nil {
			return fmt.Errorf("failed to write BOM: %w", err)
		}
	}

	writer := csv.NewWriter(file)
	writer.Comma = opts.Delimiter
	if writer.Comma == 0 {
		writer.Comma = ';'
	}

	if err := writer.Write(table.Header); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}
	for i, row := range table.Rows {
		if err := writer.Write(row); err != nil {
			return fmt.Errorf("failed to write row %d: %w", i+1, err)
		}
	}

	writer.Flush()
	return writer.Error()
}
