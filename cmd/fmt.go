package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/tally"
	"github.com/google/subcommands"
)

type fmtCmd struct {
	output string
}

func (*fmtCmd) Name() string     { return "fmt" }
func (*fmtCmd) Synopsis() string { return "format the ledger file" }
func (*fmtCmd) Usage() string {
	return `et fmt [-o <file> | -o -]

  Loads the ledger file and writes it back in canonical form: one
  transaction per line, trimmed fields, shortest amounts and YYYY-MM-DD
  dates. The file is rewritten in place unless -o is given, "-" meaning
  the standard output. A malformed ledger is reported and left untouched.
`
}

func (c *fmtCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.output, "o", "", "Write the formatted ledger to this file instead, '-' for stdout")
}

func (c *fmtCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	ledger, err := DecodeLedger()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	switch c.output {
	case "-":
		err = tally.EncodeLedger(os.Stdout, ledger)
	case "":
		err = ledger.Save(*ledgerFile)
	default:
		err = ledger.Save(c.output)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error writing ledger: %v\n", err)
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}
