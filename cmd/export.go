package cmd

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/etnz/tally"
	"github.com/google/subcommands"
)

// exporters maps file extensions to ledger writers.
var exporters = map[string]func(io.Writer, *tally.Ledger) error{
	".xlsx":  tally.ExportXLSX,
	".jsonl": tally.ExportJSONL,
	".json":  tally.ExportJSONL,
}

type exportCmd struct {
	output string
}

func (*exportCmd) Name() string     { return "export" }
func (*exportCmd) Synopsis() string { return "export the ledger to a spreadsheet or JSON lines" }
func (*exportCmd) Usage() string {
	return `et export -o <file.xlsx | file.jsonl>

  Writes the ledger to a file whose format depends on its extension:
  an XLSX workbook with the list of transactions and the summary of every
  month of the ledger, or JSON lines with one transaction per line.
`
}

func (c *exportCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.output, "o", "", "Path of the file to create, .xlsx or .jsonl")
}

func (c *exportCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.output == "" {
		fmt.Fprintln(os.Stderr, "Error: -o flag is required.")
		f.Usage()
		return subcommands.ExitUsageError
	}
	export, ok := exporters[strings.ToLower(filepath.Ext(c.output))]
	if !ok {
		fmt.Fprintf(os.Stderr, "Error: unsupported export format %q, use .xlsx or .jsonl\n", filepath.Ext(c.output))
		return subcommands.ExitUsageError
	}
	ledger, err := DecodeLedger()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	out, err := os.Create(c.output)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating %q: %v\n", c.output, err)
		return subcommands.ExitFailure
	}
	if err := export(out, ledger); err != nil {
		out.Close()
		fmt.Fprintf(os.Stderr, "Error exporting ledger: %v\n", err)
		return subcommands.ExitFailure
	}
	if err := out.Close(); err != nil {
		fmt.Fprintf(os.Stderr, "Error writing %q: %v\n", c.output, err)
		return subcommands.ExitFailure
	}
	fmt.Printf("Exported %d transactions to %s\n", ledger.Len(), c.output)
	return subcommands.ExitSuccess
}
