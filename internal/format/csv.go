package format

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"io"

	"github.com/semtable/semtable/pkg/table"
)

// parseDelimited reads header-prefixed delimited text into a table.
func parseDelimited(data []byte, comma rune) (*table.Table, error) {
	reader := csv.NewReader(bytes.NewReader(data))
	reader.Comma = comma

	header, err := reader.Read()
	if err == io.EOF {
		return nil, fmt.Errorf("file is empty")
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read header: %v", err)
	}

	tbl := table.New(header)
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read record: %v", err)
		}

		row := make([]interface{}, len(record))
		for i, field := range record {
			row[i] = field
		}
		if err := tbl.Append(row); err != nil {
			return nil, fmt.Errorf("failed to append record: %v", err)
		}
	}

	return tbl, nil
}

// WriteCSV writes a table as comma-delimited text with a header row.
func WriteCSV(w io.Writer, tbl *table.Table) error {
	writer := csv.NewWriter(w)
	defer writer.Flush()

	if err := writer.Write(tbl.Columns); err != nil {
		return fmt.Errorf("failed to write header: %v", err)
	}

	record := make([]string, tbl.NumColumns())
	for i := 0; i < tbl.NumRows(); i++ {
		for j := range tbl.Columns {
			record[j] = tbl.CellString(i, j)
		}
		if err := writer.Write(record); err != nil {
			return fmt.Errorf("failed to write record: %v", err)
		}
	}

	writer.Flush()
	return writer.Error()
}
