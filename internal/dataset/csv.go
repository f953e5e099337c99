package dataset

import (
	"encoding/csv"
	"fmt"
	"os"
)

// CSVSource reads a UTF-8 CSV file. Separator defaults to a comma.
type CSVSource struct {
	Path      string
	Separator rune
}

func (s *CSVSource) Read() ([]string, [][]string, error) {
	f, err := os.Open(s.Path)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open CSV '%s': %w", s.Path, err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	if s.Separator != 0 {
		r.Comma = s.Separator
	}

	records, err := r.ReadAll()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to read CSV '%s': %w", s.Path, err)
	}
	if len(records) == 0 {
		return nil, nil, nil
	}
	return records[0], records[1:], nil
}
