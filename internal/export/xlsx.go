package export

import (
	"bufio"
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/xuri/excelize/v2"
)

// SheetName is the single worksheet written into the artifact.
const SheetName = "Receipts"

// ConvertToXLSX reads the CSV table at csvPath and writes it as a single-sheet
// xlsx workbook at xlsxPath. The caller owns removal of the intermediate CSV.
func ConvertToXLSX(csvPath, xlsxPath string) error {
	f, err := os.Open(csvPath)
	if err != nil {
		return fmt.Errorf("opening table file: %w", err)
	}
	defer func() { _ = f.Close() }()

	br := bufio.NewReader(f)
	if peek, _ := br.Peek(len(BOM)); bytes.Equal(peek, BOM) {
		_, _ = br.Discard(len(BOM))
	}
	r := csv.NewReader(br)

	wb := excelize.NewFile()
	defer func() { _ = wb.Close() }()
	if err := wb.SetSheetName(wb.GetSheetName(0), SheetName); err != nil {
		return fmt.Errorf("naming sheet: %w", err)
	}

	for rowIdx := 1; ; rowIdx++ {
		record, err := r.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return fmt.Errorf("reading table row: %w", err)
		}
		cell, err := excelize.CoordinatesToCellName(1, rowIdx)
		if err != nil {
			return fmt.Errorf("addressing row %d: %w", rowIdx, err)
		}
		if err := wb.SetSheetRow(SheetName, cell, &record); err != nil {
			return fmt.Errorf("writing sheet row %d: %w", rowIdx, err)
		}
	}

	if err := wb.SaveAs(xlsxPath); err != nil {
		return fmt.Errorf("saving workbook: %w", err)
	}
	return nil
}
