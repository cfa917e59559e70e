package format

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"sort"

	"github.com/semtable/semtable/pkg/table"
)

// parseJSON reads a JSON array of flat objects into a table.
func parseJSON(data []byte) (*table.Table, error) {
	var records []map[string]interface{}
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf("failed to parse JSON array: %v", err)
	}
	return tableFromRecords(records)
}

// parseNDJSON reads newline-delimited JSON objects into a table.
func parseNDJSON(data []byte) (*table.Table, error) {
	decoder := json.NewDecoder(bytes.NewReader(data))

	var records []map[string]interface{}
	for {
		var record map[string]interface{}
		if err := decoder.Decode(&record); err == io.EOF {
			break
		} else if err != nil {
			return nil, fmt.Errorf("failed to parse JSON line %d: %v", len(records)+1, err)
		}
		records = append(records, record)
	}

	return tableFromRecords(records)
}

// tableFromRecords builds a table over the union of keys seen across all
// records. Columns are sorted by name so the result is deterministic;
// keys absent from a record yield nil cells.
func tableFromRecords(records []map[string]interface{}) (*table.Table, error) {
	if len(records) == 0 {
		return nil, fmt.Errorf("no records found")
	}

	seen := make(map[string]bool)
	var columns []string
	for _, record := range records {
		for key := range record {
			if !seen[key] {
				seen[key] = true
				columns = append(columns, key)
			}
		}
	}
	sort.Strings(columns)

	tbl := table.New(columns)
	for _, record := range records {
		row := make([]interface{}, len(columns))
		for i, col := range columns {
			row[i] = record[col]
		}
		if err := tbl.Append(row); err != nil {
			return nil, fmt.Errorf("failed to append record: %v", err)
		}
	}

	return tbl, nil
}
