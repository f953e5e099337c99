package dataset

import (
	"fmt"
	"path/filepath"
	"strings"
)

// Source yields raw tabular input: a header naming the columns plus the
// ordered data records beneath it.
type Source interface {
	Read() (header []string, records [][]string, err error)
}

// Open picks a source implementation from the file extension.
func Open(path string, separator rune) (Source, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".csv":
		return &CSVSource{Path: path, Separator: separator}, nil
	case ".xlsx":
		return &XLSXSource{Path: path}, nil
	default:
		return nil, fmt.Errorf("unsupported dataset format: %q", filepath.Ext(path))
	}
}
