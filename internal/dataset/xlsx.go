package dataset

import (
	"fmt"

	"github.com/xuri/excelize/v2"
)

// XLSXSource reads one sheet of an Excel workbook. An empty Sheet selects the
// first sheet.
type XLSXSource struct {
	Path  string
	Sheet string
}

func (s *XLSXSource) Read() ([]string, [][]string, error) {
	f, err := excelize.OpenFile(s.Path)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open XLSX '%s': %w", s.Path, err)
	}
	defer f.Close()

	sheet := s.Sheet
	if sheet == "" {
		list := f.GetSheetList()
		if len(list) == 0 {
			return nil, nil, fmt.Errorf("no sheets in '%s'", s.Path)
		}
		sheet = list[0]
	}

	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to read sheet '%s': %w", sheet, err)
	}
	if len(rows) == 0 {
		return nil, nil, nil
	}
	return rows[0], rows[1:], nil
}
