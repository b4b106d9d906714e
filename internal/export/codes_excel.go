package export

import (
	"bytes"
	"fmt"
	"time"

	"github.com/xuri/excelize/v2"
)

// CodesWorkbook — xlsx с пачкой свежевыпущенных кодов активации.
func CodesWorkbook(codes []string, issuedAt time.Time) (*bytes.Buffer, string, error) {
	f := excelize.NewFile()
	const sheet = "Коды"
	if err := f.SetSheetName("Sheet1", sheet); err != nil {
		return nil, "", fmt.Errorf("rename sheet: %w", err)
	}

	header := []string{"№", "Код", "Выпущен"}
	for col, h := range header {
		cell := fmt.Sprintf("%s1", colName(col+1))
		if err := f.SetCellStr(sheet, cell, h); err != nil {
			return nil, "", fmt.Errorf("set cell %s: %w", cell, err)
		}
	}
	bold, _ := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	_ = f.SetCellStyle(sheet, "A1", "C1", bold)

	day := issuedAt.Format("02.01.2006")
	for i, code := range codes {
		row := i + 2
		_ = f.SetCellInt(sheet, fmt.Sprintf("A%d", row), i+1)
		if err := f.SetCellStr(sheet, fmt.Sprintf("B%d", row), code); err != nil {
			return nil, "", fmt.Errorf("set code row %d: %w", row, err)
		}
		_ = f.SetCellStr(sheet, fmt.Sprintf("C%d", row), day)
	}
	_ = f.SetColWidth(sheet, "A", "A", 6)
	_ = f.SetColWidth(sheet, "B", "B", 20)
	_ = f.SetColWidth(sheet, "C", "C", 14)

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, "", fmt.Errorf("write workbook: %w", err)
	}
	name := fmt.Sprintf("codes_%s.xlsx", issuedAt.Format("2006-01-02"))
	return buf, name, nil
}

// 1 -> A; 27 -> AA
func colName(n int) string {
	s := ""
	for n > 0 {
		n--
		s = string(rune('A'+(n%26))) + s
		n /= 26
	}
	return s
}
