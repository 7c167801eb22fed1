package output

import (
	"bytes"
	"reflect"
	"testing"

	"github.com/xuri/excelize/v2"
)

func openWorkbook(t *testing.T, data []byte) *excelize.File {
	t.Helper()
	f, err := excelize.OpenReader(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("open xlsx: %v", err)
	}
	t.Cleanup(func() { _ = f.Close() })
	return f
}

func TestXLSXFormatterSheets(t *testing.T) {
	out, err := XLSXFormatter{}.Format(buildTestReport(t))
	if err != nil {
		t.Fatalf("xlsx format error: %v", err)
	}
	f := openWorkbook(t, out)

	want := []string{SheetWACC, SheetSensitivity, SheetDilution, SheetDebtStack, SheetNotes}
	if got := f.GetSheetList(); !reflect.DeepEqual(got, want) {
		t.Fatalf("sheets = %v, want %v", got, want)
	}

	cells := []struct{ sheet, cell, want string }{
		{SheetWACC, "A12", "WACC (%)"},
		{SheetWACC, "B12", "10.21"},
		{SheetSensitivity, "A6", "+2% Cost of Equity"},
		{SheetSensitivity, "C6", "87"},
		{SheetDilution, "B2", "10000000"},
		{SheetDebtStack, "A2", "Revolving Credit"},
		{SheetDebtStack, "E5", "Senior Unsecured"},
		{SheetDebtStack, "F4", "35.3"},
	}
	for _, c := range cells {
		got, err := f.GetCellValue(c.sheet, c.cell)
		if err != nil {
			t.Fatalf("%s!%s: %v", c.sheet, c.cell, err)
		}
		if got != c.want {
			t.Errorf("%s!%s = %q, want %q", c.sheet, c.cell, got, c.want)
		}
	}
}

func TestXLSXFormatterNonFiniteCells(t *testing.T) {
	out, err := XLSXFormatter{}.Format(buildDegenerateReport(t))
	if err != nil {
		t.Fatalf("xlsx format error: %v", err)
	}
	f := openWorkbook(t, out)
	got, err := f.GetCellValue(SheetWACC, "B12")
	if err != nil {
		t.Fatalf("get cell: %v", err)
	}
	if got != NotAvailable {
		t.Fatalf("NaN WACC cell = %q, want %q", got, NotAvailable)
	}
}
