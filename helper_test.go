package tally

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/etnz/tally/date"
	"github.com/shopspring/decimal"
)

// tx is a helper for test to create a transaction from constants, it fails
// the test on invalid input.
func tx(t *testing.T, kind Kind, category string, amount float64, day string) Transaction {
	t.Helper()
	v, err := NewTransaction(kind, category, decimal.NewFromFloat(amount), date.MustParse(day))
	if err != nil {
		t.Fatalf("invalid test transaction: %v", err)
	}
	return v
}

// month is a helper for test to create a month from its text form.
func month(t *testing.T, s string) date.Month {
	t.Helper()
	m, err := date.ParseMonth(s)
	if err != nil {
		t.Fatalf("invalid test month: %v", err)
	}
	return m
}

// writeFile creates a file with content in a temporary directory and returns its path.
func writeFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "data.csv")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("Failed to write test file: %v", err)
	}
	return path
}
