package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/etnz/tally"
	"github.com/etnz/tally/date"
	"github.com/etnz/tally/renderer"
	"github.com/google/subcommands"
)

// addCmd records an income or an expense, depending on kind.
type addCmd struct {
	kind     tally.Kind
	category string
	amount   string
	month    string
}

func (c *addCmd) Name() string { return strings.ToLower(c.kind.String()) }
func (c *addCmd) Synopsis() string {
	return fmt.Sprintf("record an %s in the ledger", c.Name())
}
func (c *addCmd) Usage() string {
	return fmt.Sprintf(`et %s -c <category> -a <amount> [-m <month>]

  Appends an %s to the ledger file, creating the file if needed.
  The month defaults to the current one.
`, c.Name(), c.Name())
}

func (c *addCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.category, "c", "", "Category of the transaction (e.g. Salary, Food)")
	f.StringVar(&c.amount, "a", "", "Amount of the transaction, a non-negative number")
	f.StringVar(&c.month, "m", "", "Month of the transaction (YYYY-MM), defaults to the current month")
}

func (c *addCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.category == "" || c.amount == "" {
		fmt.Fprintln(os.Stderr, "Error: -c and -a flags are required.")
		f.Usage()
		return subcommands.ExitUsageError
	}
	amount, err := tally.ParseAmount(c.amount)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing amount: %v\n", err)
		return subcommands.ExitUsageError
	}
	month, err := parseMonthFlag(c.month)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing month: %v\n", err)
		return subcommands.ExitUsageError
	}

	tx, err := tally.NewTransaction(c.kind, c.category, amount, month.First())
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating transaction: %v\n", err)
		return subcommands.ExitFailure
	}
	return appendTransaction(tx)
}

// appendTransaction adds tx to the app ledger file.
//
// The whole ledger is loaded and saved back, so that a malformed file is
// reported instead of being extended.
func appendTransaction(tx tally.Transaction) subcommands.ExitStatus {
	ledger, err := DecodeLedger()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading ledger: %v\n", err)
		return subcommands.ExitFailure
	}
	ledger.Append(tx)
	if err := ledger.Save(*ledgerFile); err != nil {
		fmt.Fprintf(os.Stderr, "Error saving ledger: %v\n", err)
		return subcommands.ExitFailure
	}
	fmt.Printf("%s (%s)\n", renderer.Transaction(tx, *currency), *ledgerFile)
	return subcommands.ExitSuccess
}

// parseMonthFlag parses a month flag value, empty meaning the current month.
func parseMonthFlag(s string) (date.Month, error) {
	if s == "" {
		return date.ThisMonth(), nil
	}
	return date.ParseMonth(s)
}
