package export

import (
	"bytes"
	"encoding/xml"
	"os"

	"github.com/ginjaninja78/corp-summary/internal/report"
)

// xmlDocument is the root <summary> element.
type xmlDocument struct {
	XMLName xml.Name `xml:"summary"`
	Rows    []xmlRow `xml:"row"`
}

// xmlRow holds one element per report column, named after the column.
type xmlRow struct {
	Fields []xmlField `xml:",any"`
}

type xmlField struct {
	XMLName xml.Name
	Value   string `xml:",chardata"`
}

// writeXML writes the table as an indented XML document.
func writeXML(table *report.Table, path string) error {
	doc := xmlDocument{Rows: make([]xmlRow, 0, len(table.Rows))}
	for _, row := range table.Rows {
		fields := make([]xmlField, 0, len(table.Header))
		for i, name := range table.Header {
			var value string
			if i < len(row) {
				value = row[i]
			}
			fields = append(fields, xmlField{XMLName: xml.Name{Local: name}, Value: value})
		}
		doc.Rows = append(doc.Rows, xmlRow{Fields: fields})
	}

	var buffer bytes.Buffer
	buffer.WriteString(xml.Header)

	encoder := xml.NewEncoder(&buffer)
	encoder.Indent("", "  ")
	if err := encoder.Encode(doc); err != nil {
		return err
	}
	buffer.WriteString("\n")

	return os.WriteFile(path, buffer.Bytes(), 0644)
}
