package export

import (
	"bytes"
	"testing"
	"time"

	"github.com/xuri/excelize/v2"
)

func TestCodesWorkbook(t *testing.T) {
	issued := time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC)
	codes := []string{"PON-AAAA1111", "PON-BBBB2222"}

	buf, name, err := CodesWorkbook(codes, issued)
	if err != nil {
		t.Fatal(err)
	}
	if name != "codes_2026-08-30.xlsx" {
		t.Fatalf("неожиданное имя файла: %s", name)
	}

	f, err := excelize.OpenReader(bytes.NewReader(buf.Bytes()))
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()

	rows, err := f.GetRows("Коды")
	if err != nil {
		t.Fatal(err)
	}
	if len(rows) != len(codes)+1 {
		t.Fatalf("ожидали %d строк с заголовком, получили %d", len(codes)+1, len(rows))
	}
	for i, code := range codes {
		if rows[i+1][1] != code {
			t.Fatalf("строка %d: ожидали код %s, получили %s", i+2, code, rows[i+1][1])
		}
	}
}
