package format

import (
	"bytes"
	"compress/gzip"
	"testing"

	"github.com/xitongsys/parquet-go-source/buffer"
	"github.com/xitongsys/parquet-go/writer"
)

func TestDetect(t *testing.T) {
	tests := []struct {
		name string
		file string
		data string
		want Kind
	}{
		{"csv extension", "movies.csv", "", KindCSV},
		{"tsv extension", "movies.tsv", "", KindTSV},
		{"json extension", "movies.json", "", KindJSON},
		{"ndjson extension", "movies.ndjson", "", KindNDJSON},
		{"jsonl extension", "movies.jsonl", "", KindNDJSON},
		{"parquet extension", "movies.parquet", "", KindParquet},
		{"gzipped csv extension", "movies.csv.gz", "", KindCSV},
		{"parquet magic", "movies.dat", "PAR1xxxx", KindParquet},
		{"json array content", "movies.dat", "  [{\"a\":1}]", KindJSON},
		{"json object content", "movies.dat", "{\"a\":1}\n", KindNDJSON},
		{"tab content", "movies.dat", "a\tb\n1\t2\n", KindTSV},
		{"comma content", "movies.dat", "a,b\n1,2\n", KindCSV},
		{"empty content", "movies.dat", "", KindUnknown},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Detect(tt.file, []byte(tt.data)); got != tt.want {
				t.Errorf("Detect(%q) = %v, want %v", tt.file, got, tt.want)
			}
		})
	}
}

const moviesCSV = "title,year,genre\nThe Matrix,1999,Science Fiction\nSpirited Away,2001,Animation\nHeat,1995,Crime\n"

func TestParseCSV(t *testing.T) {
	tbl, err := Parse("movies.csv", []byte(moviesCSV))
	if err != nil {
		t.Fatalf("Failed to parse CSV: %v", err)
	}

	if got := tbl.NumRows(); got != 3 {
		t.Errorf("Expected 3 rows, got %d", got)
	}
	if len(tbl.Columns) != 3 || tbl.Columns[0] != "title" {
		t.Errorf("Unexpected columns: %v", tbl.Columns)
	}
	if got := tbl.CellString(2, 0); got != "Heat" {
		t.Errorf("Expected 'Heat', got %q", got)
	}
}

func TestParseTSV(t *testing.T) {
	data := "title\tyear\nHeat\t1995\n"
	tbl, err := Parse("movies.tsv", []byte(data))
	if err != nil {
		t.Fatalf("Failed to parse TSV: %v", err)
	}
	if tbl.NumRows() != 1 || tbl.CellString(0, 1) != "1995" {
		t.Errorf("Unexpected table: %v", tbl.Rows)
	}
}

func TestParseJSON(t *testing.T) {
	data := `[{"title":"Heat","year":1995},{"title":"The Matrix","year":1999,"genre":"Science Fiction"}]`
	tbl, err := Parse("movies.json", []byte(data))
	if err != nil {
		t.Fatalf("Failed to parse JSON: %v", err)
	}

	// Columns are the sorted union of keys.
	want := []string{"genre", "title", "year"}
	for i, col := range want {
		if tbl.Columns[i] != col {
			t.Fatalf("Unexpected columns: %v", tbl.Columns)
		}
	}

	// Missing keys yield nil cells.
	if tbl.Rows[0][0] != nil {
		t.Errorf("Expected nil genre for first record, got %v", tbl.Rows[0][0])
	}
	if got := tbl.CellString(0, 2); got != "1995" {
		t.Errorf("Expected '1995', got %q", got)
	}
}

func TestParseNDJSON(t *testing.T) {
	data := "{\"title\":\"Heat\",\"year\":1995}\n{\"title\":\"The Matrix\",\"year\":1999}\n"
	tbl, err := Parse("movies.ndjson", []byte(data))
	if err != nil {
		t.Fatalf("Failed to parse NDJSON: %v", err)
	}
	if tbl.NumRows() != 2 {
		t.Errorf("Expected 2 rows, got %d", tbl.NumRows())
	}
}

func TestParseGzip(t *testing.T) {
	var buf bytes.Buffer
	zw := gzip.NewWriter(&buf)
	if _, err := zw.Write([]byte(moviesCSV)); err != nil {
		t.Fatalf("Failed to write gzip data: %v", err)
	}
	if err := zw.Close(); err != nil {
		t.Fatalf("Failed to close gzip writer: %v", err)
	}

	tbl, err := Parse("movies.csv.gz", buf.Bytes())
	if err != nil {
		t.Fatalf("Failed to parse gzipped CSV: %v", err)
	}
	if tbl.NumRows() != 3 {
		t.Errorf("Expected 3 rows, got %d", tbl.NumRows())
	}
}

type movieRow struct {
	Title string `parquet:"name=title, type=BYTE_ARRAY, convertedtype=UTF8, encoding=PLAIN_DICTIONARY"`
	Year  int64  `parquet:"name=year, type=INT64"`
}

func TestParseParquet(t *testing.T) {
	pf := buffer.NewBufferFile()
	pw, err := writer.NewParquetWriter(pf, new(movieRow), 1)
	if err != nil {
		t.Fatalf("Failed to create parquet writer: %v", err)
	}

	movies := []movieRow{
		{Title: "The Matrix", Year: 1999},
		{Title: "Spirited Away", Year: 2001},
		{Title: "Heat", Year: 1995},
	}
	for _, movie := range movies {
		if err := pw.Write(movie); err != nil {
			t.Fatalf("Failed to write parquet row: %v", err)
		}
	}
	if err := pw.WriteStop(); err != nil {
		t.Fatalf("Failed to finish parquet file: %v", err)
	}

	tbl, err := Parse("movies.parquet", pf.Bytes())
	if err != nil {
		t.Fatalf("Failed to parse parquet: %v", err)
	}

	if tbl.NumRows() != 3 {
		t.Fatalf("Expected 3 rows, got %d", tbl.NumRows())
	}
	if tbl.Columns[0] != "title" || tbl.Columns[1] != "year" {
		t.Errorf("Unexpected columns: %v", tbl.Columns)
	}
	if got := tbl.CellString(1, 0); got != "Spirited Away" {
		t.Errorf("Expected 'Spirited Away', got %q", got)
	}
	if got := tbl.CellString(2, 1); got != "1995" {
		t.Errorf("Expected '1995', got %q", got)
	}
}

func TestWriteCSVRoundTrip(t *testing.T) {
	tbl, err := Parse("movies.csv", []byte(moviesCSV))
	if err != nil {
		t.Fatalf("Failed to parse CSV: %v", err)
	}

	var buf bytes.Buffer
	if err := WriteCSV(&buf, tbl); err != nil {
		t.Fatalf("Failed to write CSV: %v", err)
	}

	reparsed, err := Parse("movies.csv", buf.Bytes())
	if err != nil {
		t.Fatalf("Failed to reparse CSV: %v", err)
	}
	if !tbl.Equal(reparsed) {
		t.Error("Expected round-tripped table to equal the original")
	}
}

func TestParseErrors(t *testing.T) {
	if _, err := Parse("movies.csv", nil); err == nil {
		t.Error("Expected error for empty CSV file")
	}
	if _, err := Parse("movies.json", []byte("not json")); err == nil {
		t.Error("Expected error for malformed JSON")
	}
	if _, err := Parse("movies.json", []byte("[]")); err == nil {
		t.Error("Expected error for JSON array with no records")
	}
	if _, err := Parse("movies.dat", nil); err == nil {
		t.Error("Expected error for undetectable format")
	}
	if _, err := Parse("movies.csv", []byte("a,b\n1,2,3\n")); err == nil {
		t.Error("Expected error for ragged CSV")
	}
	if _, err := Parse("movies.parquet", []byte("PAR1 not really parquet")); err == nil {
		t.Error("Expected error for corrupt parquet content")
	}
}
