package tally

import (
	"bytes"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/xuri/excelize/v2"
)

func TestExportXLSX(t *testing.T) {
	ledger := NewLedger()
	ledger.Append(
		tx(t, Income, "Salary", 5000, "2025-01-01"),
		tx(t, Expense, "Rent", 1500, "2025-01-01"),
		tx(t, Expense, "Food", 42.5, "2025-03-01"),
	)

	var buf bytes.Buffer
	if err := ExportXLSX(&buf, ledger); err != nil {
		t.Fatalf("ExportXLSX() unexpected error: %v", err)
	}

	f, err := excelize.OpenReader(&buf)
	if err != nil {
		t.Fatalf("cannot read back the workbook: %v", err)
	}
	defer f.Close()

	if diff := cmp.Diff([]string{SheetTransactions, SheetMonths}, f.GetSheetList()); diff != "" {
		t.Errorf("sheets mismatch (-want +got):\n%s", diff)
	}

	rows, err := f.GetRows(SheetTransactions)
	if err != nil {
		t.Fatal(err)
	}
	want := [][]string{
		{"Kind", "Category", "Amount", "Date"},
		{"INCOME", "Salary", "5000", "2025-01-01"},
		{"EXPENSE", "Rent", "1500", "2025-01-01"},
		{"EXPENSE", "Food", "42.5", "2025-03-01"},
	}
	if diff := cmp.Diff(want, rows); diff != "" {
		t.Errorf("transactions mismatch (-want +got):\n%s", diff)
	}

	rows, err = f.GetRows(SheetMonths)
	if err != nil {
		t.Fatal(err)
	}
	want = [][]string{
		{"Month", "Income", "Expense", "Net"},
		{"2025-01", "5000", "1500", "3500"},
		{"2025-03", "0", "42.5", "-42.5"},
	}
	if diff := cmp.Diff(want, rows); diff != "" {
		t.Errorf("months mismatch (-want +got):\n%s", diff)
	}
}
