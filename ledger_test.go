package tally

import (
	"slices"
	"testing"

	"github.com/etnz/tally/date"
	"github.com/google/go-cmp/cmp"
)

func TestLedger_InsertionOrder(t *testing.T) {
	ledger := NewLedger()
	a := tx(t, Expense, "Rent", 1500, "2025-02-01")
	b := tx(t, Income, "Salary", 5000, "2025-01-01")
	c := tx(t, Expense, "Food", 20, "2025-02-01")
	ledger.Append(a)
	ledger.Append(b, c)

	if diff := cmp.Diff([]Transaction{a, b, c}, slices.Collect(ledger.Transactions())); diff != "" {
		t.Errorf("Transactions() mismatch (-want +got):\n%s", diff)
	}
	if ledger.Len() != 3 {
		t.Errorf("Len() = %d, want 3", ledger.Len())
	}
}

func TestLedger_InMonth(t *testing.T) {
	ledger := NewLedger()
	a := tx(t, Expense, "Rent", 1500, "2025-02-01")
	b := tx(t, Income, "Salary", 5000, "2025-01-31")
	c := tx(t, Expense, "Food", 20, "2025-02-28")
	d := tx(t, Expense, "Food", 20, "2024-02-10")
	ledger.Append(a, b, c, d)

	got := slices.Collect(ledger.InMonth(month(t, "2025-02")))
	if diff := cmp.Diff([]Transaction{a, c}, got); diff != "" {
		t.Errorf("InMonth() mismatch (-want +got):\n%s", diff)
	}
}

func TestLedger_Months(t *testing.T) {
	ledger := NewLedger()
	ledger.Append(
		tx(t, Expense, "Rent", 1500, "2025-02-01"),
		tx(t, Income, "Salary", 5000, "2025-01-31"),
		tx(t, Expense, "Food", 20, "2025-02-28"),
		tx(t, Expense, "Food", 20, "2024-12-10"),
	)
	want := []date.Month{month(t, "2024-12"), month(t, "2025-01"), month(t, "2025-02")}
	if diff := cmp.Diff(want, ledger.Months()); diff != "" {
		t.Errorf("Months() mismatch (-want +got):\n%s", diff)
	}
}
