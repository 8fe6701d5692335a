package renderer

import (
	"strings"
	"testing"

	"github.com/etnz/tally"
	"github.com/etnz/tally/date"
)

func ledgerTx(t *testing.T, line string) tally.Transaction {
	t.Helper()
	tx, err := tally.ParseTransaction(line)
	if err != nil {
		t.Fatalf("invalid test transaction %q: %v", line, err)
	}
	return tx
}

func TestSummaryMarkdown(t *testing.T) {
	ledger := tally.NewLedger()
	ledger.Append(
		ledgerTx(t, "INCOME,Salary,5000,2025-01-01"),
		ledgerTx(t, "EXPENSE,Rent,1500,2025-01-01"),
	)
	s := tally.MonthlySummary(ledger, date.Month{Year: 2025, Month: 1})

	got := SummaryMarkdown(s, "USD")

	for _, want := range []string{
		"# Monthly Summary for 2025-01",
		"Total Income", "$5,000.00",
		"Total Expenses", "$1,500.00",
		"Net Savings", "$3,500.00",
		"Savings Rate", "70.00%",
		"## By Category", "Salary", "Rent",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("SummaryMarkdown() does not contain %q:\n%s", want, got)
		}
	}
}

func TestSummaryMarkdown_EmptyMonth(t *testing.T) {
	s := tally.MonthlySummary(tally.NewLedger(), date.Month{Year: 2025, Month: 2})

	got := SummaryMarkdown(s, "EUR")

	if !strings.Contains(got, "0.00") {
		t.Errorf("SummaryMarkdown() should show zero totals:\n%s", got)
	}
	if strings.Contains(got, "Savings Rate") {
		t.Errorf("SummaryMarkdown() should skip the savings rate without income:\n%s", got)
	}
	if strings.Contains(got, "By Category") {
		t.Errorf("SummaryMarkdown() should skip the empty category section:\n%s", got)
	}
}

func TestTransactions(t *testing.T) {
	txs := []tally.Transaction{
		ledgerTx(t, "INCOME,Salary,5000,2025-01-01"),
		ledgerTx(t, "EXPENSE,Food,42.50,2025-03-01"),
	}
	got := Transactions(txs, "USD")
	for _, want := range []string{"2025-01-01", "Salary", "$5,000.00", "2025-03-01", "Food", "-$42.50"} {
		if !strings.Contains(got, want) {
			t.Errorf("Transactions() does not contain %q:\n%s", want, got)
		}
	}

	if got := Transactions(nil, "USD"); !strings.Contains(got, "No transactions.") {
		t.Errorf("Transactions(nil) = %q", got)
	}
}

func TestTransaction(t *testing.T) {
	got := Transaction(ledgerTx(t, "EXPENSE,Food,42.50,2025-03-01"), "USD")
	if want := "Spent $42.50 on Food in 2025-03"; got != want {
		t.Errorf("Transaction() = %q, want %q", got, want)
	}
}
