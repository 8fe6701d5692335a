package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"slices"

	"github.com/etnz/tally"
	"github.com/etnz/tally/date"
	"github.com/etnz/tally/renderer"
	"github.com/google/subcommands"
)

type txCmd struct {
	month string
	head  int
	tail  int
}

func (*txCmd) Name() string     { return "tx" }
func (*txCmd) Synopsis() string { return "list the transactions of the ledger" }
func (*txCmd) Usage() string {
	return `et tx [-m <month>] [-head <n> | -tail <n>]

  Lists the transactions in ledger order, optionally restricted to one month
  and to the first or last n of them.
`
}

func (c *txCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.month, "m", "", "Only list the transactions of this month (YYYY-MM)")
	f.IntVar(&c.head, "head", 0, "Only list the first n transactions")
	f.IntVar(&c.tail, "tail", 0, "Only list the last n transactions")
}

func (c *txCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.head < 0 || c.tail < 0 || (c.head > 0 && c.tail > 0) {
		fmt.Fprintln(os.Stderr, "Error: -head and -tail are exclusive and must be positive.")
		f.Usage()
		return subcommands.ExitUsageError
	}
	ledger, err := DecodeLedger()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	seq := ledger.Transactions()
	if c.month != "" {
		month, err := date.ParseMonth(c.month)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error parsing month: %v\n", err)
			return subcommands.ExitUsageError
		}
		seq = ledger.InMonth(month)
	}

	printMarkdown(renderer.Transactions(selectTransactions(slices.Collect(seq), c.head, c.tail), *currency))
	return subcommands.ExitSuccess
}

// selectTransactions keeps the first head or the last tail transactions, zero meaning all.
func selectTransactions(txs []tally.Transaction, head, tail int) []tally.Transaction {
	switch {
	case head > 0 && head < len(txs):
		return txs[:head]
	case tail > 0 && tail < len(txs):
		return txs[len(txs)-tail:]
	default:
		return txs
	}
}
