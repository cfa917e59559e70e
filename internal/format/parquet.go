package format

import (
	"fmt"
	"strings"

	"github.com/semtable/semtable/pkg/table"
	"github.com/xitongsys/parquet-go-source/buffer"
	"github.com/xitongsys/parquet-go/reader"
)

// parseParquet reads a flat-schema Parquet file into a table. Column
// values are read column-wise and reassembled into rows.
func parseParquet(data []byte) (*table.Table, error) {
	pf := buffer.NewBufferFileFromBytes(data)

	pr, err := reader.NewParquetColumnReader(pf, 1)
	if err != nil {
		return nil, fmt.Errorf("failed to open parquet file: %v", err)
	}
	defer pr.ReadStop()

	numRows := int(pr.GetNumRows())
	paths := pr.SchemaHandler.ValueColumns

	columns := make([]string, len(paths))
	values := make([][]interface{}, len(paths))
	for i, path := range paths {
		columns[i] = columnName(pr, path)

		vals, _, _, err := pr.ReadColumnByPath(path, int64(numRows))
		if err != nil {
			return nil, fmt.Errorf("failed to read column %q: %v", columns[i], err)
		}
		if len(vals) != numRows {
			return nil, fmt.Errorf("column %q is nested, only flat schemas are supported", columns[i])
		}
		values[i] = vals
	}

	tbl := table.New(columns)
	for r := 0; r < numRows; r++ {
		row := make([]interface{}, len(columns))
		for c := range columns {
			row[c] = values[c][r]
		}
		if err := tbl.Append(row); err != nil {
			return nil, fmt.Errorf("failed to append row: %v", err)
		}
	}

	return tbl, nil
}

// columnName resolves the external (as-written) name for a column path,
// falling back to the last path segment.
func columnName(pr *reader.ParquetReader, path string) string {
	if idx, ok := pr.SchemaHandler.MapIndex[path]; ok {
		if name := pr.SchemaHandler.Infos[idx].ExName; name != "" {
			return name
		}
	}
	parts := strings.Split(path, ".")
	return parts[len(parts)-1]
}
