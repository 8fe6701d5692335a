package tally

import (
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"
)

// this file contains the spreadsheet export of a ledger.

const (
	// SheetTransactions lists every transaction in ledger order.
	SheetTransactions = "Transactions"
	// SheetMonths lists the monthly summary of every month of the ledger.
	SheetMonths = "Months"
)

// ExportXLSX writes the ledger to w as an XLSX workbook with two sheets:
// the transactions, and one summary row per month.
func ExportXLSX(w io.Writer, ledger *Ledger) error {
	f := excelize.NewFile()
	defer f.Close()

	index, err := f.NewSheet(SheetTransactions)
	if err != nil {
		return fmt.Errorf("cannot create sheet %q: %w", SheetTransactions, err)
	}
	f.SetActiveSheet(index)
	if _, err := f.NewSheet(SheetMonths); err != nil {
		return fmt.Errorf("cannot create sheet %q: %w", SheetMonths, err)
	}
	if err := f.DeleteSheet("Sheet1"); err != nil {
		return fmt.Errorf("cannot delete default sheet: %w", err)
	}

	rows := [][]any{{"Kind", "Category", "Amount", "Date"}}
	for tx := range ledger.Transactions() {
		rows = append(rows, []any{tx.Kind().String(), tx.Category(), tx.Amount().InexactFloat64(), tx.Date().String()})
	}
	if err := writeRows(f, SheetTransactions, rows); err != nil {
		return err
	}

	rows = [][]any{{"Month", "Income", "Expense", "Net"}}
	for _, m := range ledger.Months() {
		s := MonthlySummary(ledger, m)
		rows = append(rows, []any{m.String(), s.Income.InexactFloat64(), s.Expense.InexactFloat64(), s.Net.InexactFloat64()})
	}
	if err := writeRows(f, SheetMonths, rows); err != nil {
		return err
	}

	f.SetColWidth(SheetTransactions, "A", "A", 10)
	f.SetColWidth(SheetTransactions, "B", "B", 20)
	f.SetColWidth(SheetTransactions, "C", "D", 12)
	f.SetColWidth(SheetMonths, "A", "D", 12)

	if err := f.Write(w); err != nil {
		return fmt.Errorf("cannot write workbook: %w", err)
	}
	return nil
}

func writeRows(f *excelize.File, sheet string, rows [][]any) error {
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			return fmt.Errorf("cannot write row %d of %q: %w", i+1, sheet, err)
		}
	}
	return nil
}
