// Package format parses downloaded objects into tables. The format is
// inferred from the file extension, falling back to content sniffing.
package format

import (
	"bytes"
	"compress/gzip"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/semtable/semtable/pkg/table"
)

// Kind identifies a supported file format.
type Kind int

const (
	KindUnknown Kind = iota
	KindCSV
	KindTSV
	KindJSON
	KindNDJSON
	KindParquet
)

var parquetMagic = []byte("PAR1")
var gzipMagic = []byte{0x1f, 0x8b}

// Detect infers the format of a file from its name, falling back to
// sniffing the content when the extension is not recognized.
func Detect(name string, data []byte) Kind {
	ext := strings.ToLower(filepath.Ext(name))
	if ext == ".gz" {
		ext = strings.ToLower(filepath.Ext(strings.TrimSuffix(name, filepath.Ext(name))))
	}

	switch ext {
	case ".csv":
		return KindCSV
	case ".tsv", ".tab":
		return KindTSV
	case ".json":
		return KindJSON
	case ".jsonl", ".ndjson":
		return KindNDJSON
	case ".parquet", ".pq":
		return KindParquet
	}

	return sniff(data)
}

func sniff(data []byte) Kind {
	if bytes.HasPrefix(data, parquetMagic) {
		return KindParquet
	}

	trimmed := bytes.TrimLeft(data, " \t\r\n")
	if len(trimmed) > 0 {
		switch trimmed[0] {
		case '[':
			return KindJSON
		case '{':
			return KindNDJSON
		}
	}

	line := data
	if i := bytes.IndexByte(data, '\n'); i >= 0 {
		line = data[:i]
	}
	if bytes.IndexByte(line, '\t') >= 0 {
		return KindTSV
	}
	if len(bytes.TrimSpace(data)) > 0 {
		return KindCSV
	}

	return KindUnknown
}

// Parse converts raw file content into a table. Gzip-compressed content
// is decompressed first, whether indicated by a .gz suffix or by the
// gzip magic bytes.
func Parse(name string, data []byte) (*table.Table, error) {
	if bytes.HasPrefix(data, gzipMagic) {
		r, err := gzip.NewReader(bytes.NewReader(data))
		if err != nil {
			return nil, fmt.Errorf("failed to open gzip content: %v", err)
		}
		defer r.Close()

		data, err = io.ReadAll(r)
		if err != nil {
			return nil, fmt.Errorf("failed to decompress content: %v", err)
		}
	}

	switch Detect(name, data) {
	case KindCSV:
		return parseDelimited(data, ',')
	case KindTSV:
		return parseDelimited(data, '\t')
	case KindJSON:
		return parseJSON(data)
	case KindNDJSON:
		return parseNDJSON(data)
	case KindParquet:
		return parseParquet(data)
	default:
		return nil, fmt.Errorf("unable to determine file format for %q", name)
	}
}
