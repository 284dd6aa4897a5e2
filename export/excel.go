package export

import (
	"fmt"

	"github.com/xuri/excelize/v2"
)

// Workbook serializes the items into a single Excel workbook, one worksheet
// per item, and returns the file as bytes. The header row is written first,
// then the data rows; no styling is applied.
func Workbook(items []Item) ([]byte, error) {
	if len(items) == 0 {
		return nil, fmt.Errorf("no tables to export")
	}

	f := excelize.NewFile()
	defer f.Close()

	namer := newSheetNamer()
	for i, item := range items {
		sheet := namer.name(item.Name)
		if i == 0 {
			// Rename the default sheet instead of leaving an empty Sheet1
			// behind.
			if err := f.SetSheetName("Sheet1", sheet); err != nil {
				return nil, fmt.Errorf("renaming sheet: %w", err)
			}
		} else {
			if _, err := f.NewSheet(sheet); err != nil {
				return nil, fmt.Errorf("creating sheet %q: %w", sheet, err)
			}
		}

		for rowIdx, record := range item.records() {
			for colIdx, value := range record {
				cell, err := excelize.CoordinatesToCellName(colIdx+1, rowIdx+1)
				if err != nil {
					return nil, fmt.Errorf("sheet %q: %w", sheet, err)
				}
				if err := f.SetCellValue(sheet, cell, value); err != nil {
					return nil, fmt.Errorf("sheet %q cell %s: %w", sheet, cell, err)
				}
			}
		}
	}

	f.SetActiveSheet(0)

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("writing workbook: %w", err)
	}
	return buf.Bytes(), nil
}
