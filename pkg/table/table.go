package table

import (
	"fmt"
)

// Table is an in-memory result set: named columns and row-major values.
// It is the output of every loader and the input to the semantic operators.
type Table struct {
	Columns []string
	Rows    [][]interface{}
}

// New creates an empty table with the given column names.
func New(columns []string) *Table {
	return &Table{
		Columns: columns,
	}
}

// NumRows returns the number of rows in the table.
func (t *Table) NumRows() int {
	return len(t.Rows)
}

// NumColumns returns the number of columns in the table.
func (t *Table) NumColumns() int {
	return len(t.Columns)
}

// Append adds a row to the table. The row must have one value per column.
func (t *Table) Append(row []interface{}) error {
	if len(row) != len(t.Columns) {
		return fmt.Errorf("row has %d values, table has %d columns", len(row), len(t.Columns))
	}
	t.Rows = append(t.Rows, row)
	return nil
}

// Column returns all values of the named column in row order.
// The second return value is false if the column does not exist.
func (t *Table) Column(name string) ([]interface{}, bool) {
	idx := -1
	for i, col := range t.Columns {
		if col == name {
			idx = i
			break
		}
	}
	if idx == -1 {
		return nil, false
	}

	values := make([]interface{}, len(t.Rows))
	for i, row := range t.Rows {
		values[i] = row[idx]
	}
	return values, true
}

// Record returns row i as a column-name-to-value map.
func (t *Table) Record(i int) map[string]interface{} {
	record := make(map[string]interface{}, len(t.Columns))
	for j, col := range t.Columns {
		record[col] = t.Rows[i][j]
	}
	return record
}

// CellString renders the value at row i, column j as text. Nil values
// render as the empty string, matching how missing cells appear in
// delimited files.
func (t *Table) CellString(i, j int) string {
	val := t.Rows[i][j]
	if val == nil {
		return ""
	}
	return fmt.Sprintf("%v", val)
}

// Equal reports whether two tables have the same columns and the same
// rendered cell content. Comparison is textual so that a table loaded
// from a database (typed values) and one loaded from a delimited file
// (strings) compare equal when their content matches.
func (t *Table) Equal(other *Table) bool {
	if other == nil {
		return false
	}
	if len(t.Columns) != len(other.Columns) || len(t.Rows) != len(other.Rows) {
		return false
	}
	for i, col := range t.Columns {
		if col != other.Columns[i] {
			return false
		}
	}
	for i := range t.Rows {
		for j := range t.Columns {
			if t.CellString(i, j) != other.CellString(i, j) {
				return false
			}
		}
	}
	return true
}
