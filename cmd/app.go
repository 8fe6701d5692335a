// Package cmd implements the CLI application to manage a ledger of incomes and expenses.
package cmd

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"io/fs"
	"os"

	"github.com/charmbracelet/glamour"
	"github.com/etnz/tally"
	"github.com/google/subcommands"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
)

// Register the subcommands.
// A main package will call Register() to allow subcommands, and Execute() on the user-selected one.
func Register(c *subcommands.Commander) {
	c.Register(&addCmd{kind: tally.Income}, "transactions")
	c.Register(&addCmd{kind: tally.Expense}, "transactions")
	c.Register(&txCmd{}, "transactions")

	c.Register(&summaryCmd{}, "reports")
	c.Register(&exportCmd{}, "reports")

	c.Register(&fmtCmd{}, "ledger")
	c.Register(&shellCmd{}, "ledger")

	c.Register(&topicCmd{}, "help")
}

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global variables.

var (
	ledgerFile = flag.String("ledger-file", "data.csv", "Path to the ledger file (one transaction per line)")
	currency   = flag.String("currency", "USD", "ISO 4217 code of the currency used to display amounts")
	loadPolicy = flag.String("load-policy", "atomic", "What to keep of a ledger file with an invalid line: atomic or best-effort")
	Verbose    = flag.Bool("v", false, "Log ledger operations to stderr")
	raw        = flag.Bool("raw", false, "Print plain markdown instead of rendering it for the terminal")
)

// logger is the CLI logger, replaced by Configure.
var logger = zerolog.Nop()

// envDefaults maps global flags to the environment variables that provide their default value.
var envDefaults = map[string]string{
	"ledger-file": EnvLedgerFile,
	"currency":    EnvCurrency,
	"load-policy": EnvLoadPolicy,
	"v":           EnvVerbose,
}

// Configure finalizes the global flags once flags has been parsed.
//
// Variables from a .env file in the working directory are added to the
// environment, then every flag not set on the command line takes its value
// from its environment variable, if any. Finally the logger is set up and the
// currency validated.
func Configure(flags *flag.FlagSet) error {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("cannot load .env: %w", err)
	}

	set := make(map[string]bool)
	flags.Visit(func(f *flag.Flag) { set[f.Name] = true })
	for name, env := range envDefaults {
		v, ok := os.LookupEnv(env)
		if !ok || set[name] {
			continue
		}
		if err := flags.Set(name, v); err != nil {
			return fmt.Errorf("invalid %s=%q: %w", env, v, err)
		}
	}

	level := zerolog.WarnLevel
	if *Verbose {
		level = zerolog.DebugLevel
	}
	logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).Level(level).With().Timestamp().Logger()
	tally.SetLogger(logger)

	if !tally.KnownCurrency(*currency) {
		return fmt.Errorf("unknown currency %q", *currency)
	}
	if _, err := loadOptions(); err != nil {
		return err
	}
	return nil
}

func loadOptions() (tally.LoadOptions, error) {
	p, err := tally.ParseLoadPolicy(*loadPolicy)
	if err != nil {
		return tally.LoadOptions{}, err
	}
	return tally.LoadOptions{Policy: p}, nil
}

// DecodeLedger loads the app ledger file.
func DecodeLedger() (*tally.Ledger, error) {
	opts, err := loadOptions()
	if err != nil {
		return nil, err
	}
	ledger := tally.NewLedger()
	err = ledger.Load(*ledgerFile, opts)
	if errors.Is(err, fs.ErrNotExist) {
		logger.Warn().Str("path", *ledgerFile).Msg("ledger file does not exist, starting with an empty ledger")
		return ledger, nil
	}
	if err != nil {
		return nil, err
	}
	return ledger, nil
}

// printMarkdown renders md for the terminal on os.Stdout.
func printMarkdown(md string) { fprintMarkdown(os.Stdout, md) }

func fprintMarkdown(w io.Writer, md string) {
	if *raw {
		fmt.Fprint(w, md)
		return
	}
	r, err := glamour.NewTermRenderer(glamour.WithAutoStyle(), glamour.WithWordWrap(100))
	if err == nil {
		var out string
		if out, err = r.Render(md); err == nil {
			fmt.Fprint(w, out)
			return
		}
	}
	logger.Debug().Err(err).Msg("cannot render markdown, printing it raw")
	fmt.Fprint(w, md)
}
