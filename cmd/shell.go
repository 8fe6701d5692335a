package cmd

import (
	"bufio"
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/etnz/tally"
	"github.com/etnz/tally/date"
	"github.com/etnz/tally/renderer"
	"github.com/google/subcommands"
)

type shellCmd struct {
	load bool
}

func (*shellCmd) Name() string     { return "shell" }
func (*shellCmd) Synopsis() string { return "record and review transactions from an interactive menu" }
func (*shellCmd) Usage() string {
	return `et shell [-load]

  Starts an interactive menu to add incomes and expenses, view monthly
  summaries, and load or save the session ledger. The session starts empty
  unless -load is given. Nothing is written until "Save" is chosen.
`
}

func (c *shellCmd) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&c.load, "load", false, "Load the ledger file when the session starts")
}

func (c *shellCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	opts, err := loadOptions()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitUsageError
	}
	sh := newShell(tally.NewSession(nil, opts), os.Stdin, os.Stdout, *currency, *ledgerFile)
	if c.load {
		sh.load(*ledgerFile)
	}
	if err := sh.Run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}

// errEndOfInput is returned by shell prompts when the input is exhausted.
var errEndOfInput = errors.New("end of input")

// shell is a menu driven front end of a tally.Session.
type shell struct {
	session  *tally.Session
	in       *bufio.Scanner
	out      io.Writer
	currency string
	file     string // proposed when prompting for a file name
}

func newShell(session *tally.Session, in io.Reader, out io.Writer, currency, file string) *shell {
	return &shell{
		session:  session,
		in:       bufio.NewScanner(in),
		out:      out,
		currency: currency,
		file:     file,
	}
}

const menu = `
--- Expense Tracker Menu ---
1. Add Income
2. Add Expense
3. View Monthly Summary
4. Load Data from File
5. Save Data to File
6. Exit
`

// Run shows the menu and performs the chosen options until Exit is chosen
// or the input ends. Invalid entries are reported and the menu shown again.
func (s *shell) Run() error {
	for {
		fmt.Fprint(s.out, menu)
		choice, err := s.prompt("Choose an option: ")
		if err != nil {
			return s.end(err)
		}

		switch choice {
		case "1":
			err = s.add(tally.Income, "Enter income category (e.g., Salary, Business): ")
		case "2":
			err = s.add(tally.Expense, "Enter expense category (e.g., Food, Rent, Travel): ")
		case "3":
			err = s.summary()
		case "4":
			var name string
			if name, err = s.promptFile("Enter filename to load"); err == nil {
				s.load(name)
			}
		case "5":
			var name string
			if name, err = s.promptFile("Enter filename to save"); err == nil {
				s.save(name)
			}
		case "6":
			fmt.Fprintln(s.out, "Exiting. Goodbye!")
			return nil
		default:
			fmt.Fprintln(s.out, "Invalid option. Try again.")
		}
		if err != nil {
			return s.end(err)
		}
	}
}

// end terminates Run on a prompt error.
func (s *shell) end(err error) error {
	if errors.Is(err, errEndOfInput) {
		fmt.Fprintln(s.out)
		return nil
	}
	return err
}

// prompt prints label and reads the answer.
func (s *shell) prompt(label string) (string, error) {
	fmt.Fprint(s.out, label)
	if !s.in.Scan() {
		if err := s.in.Err(); err != nil {
			return "", fmt.Errorf("cannot read input: %w", err)
		}
		return "", errEndOfInput
	}
	return strings.TrimSpace(s.in.Text()), nil
}

// promptFile asks for a file name, an empty answer meaning the default file.
func (s *shell) promptFile(label string) (string, error) {
	name, err := s.prompt(fmt.Sprintf("%s (e.g., %s): ", label, s.file))
	if err != nil || name != "" {
		return name, err
	}
	return s.file, nil
}

// promptMonth asks for a year and a month. Invalid answers are returned as
// an input error, and reported by the caller.
func (s *shell) promptMonth() (date.Month, bool, error) {
	year, err := s.prompt("Enter year (e.g., 2025): ")
	if err != nil {
		return date.Month{}, false, err
	}
	month, err := s.prompt("Enter month (1-12): ")
	if err != nil {
		return date.Month{}, false, err
	}
	y, yerr := strconv.Atoi(year)
	m, merr := strconv.Atoi(month)
	if yerr != nil || merr != nil {
		fmt.Fprintln(s.out, "Invalid input: year and month must be whole numbers.")
		return date.Month{}, false, nil
	}
	period, err := date.NewMonth(y, m)
	if err != nil {
		fmt.Fprintf(s.out, "Invalid input: %v\n", err)
		return date.Month{}, false, nil
	}
	return period, true, nil
}

func (s *shell) add(kind tally.Kind, categoryLabel string) error {
	category, err := s.prompt(categoryLabel)
	if err != nil {
		return err
	}
	amountText, err := s.prompt("Enter amount: ")
	if err != nil {
		return err
	}
	period, ok, err := s.promptMonth()
	if err != nil || !ok {
		return err
	}
	amount, err := tally.ParseAmount(amountText)
	if err != nil {
		fmt.Fprintf(s.out, "Invalid input: %v\n", err)
		return nil
	}

	if kind == tally.Income {
		_, err = s.session.AddIncome(period, category, amount)
	} else {
		_, err = s.session.AddExpense(period, category, amount)
	}
	switch {
	case err != nil:
		fmt.Fprintf(s.out, "Invalid input: %v\n", err)
	case kind == tally.Income:
		fmt.Fprintln(s.out, "Income recorded.")
	default:
		fmt.Fprintln(s.out, "Expense recorded.")
	}
	return nil
}

func (s *shell) summary() error {
	period, ok, err := s.promptMonth()
	if err != nil || !ok {
		return err
	}
	fprintMarkdown(s.out, renderer.SummaryMarkdown(s.session.Summary(period), s.currency))
	return nil
}

func (s *shell) load(name string) {
	n, err := s.session.Load(name)
	if err != nil {
		fmt.Fprintf(s.out, "Error loading from file: %v\n", err)
		if n > 0 {
			fmt.Fprintf(s.out, "Loaded %d transactions before the error.\n", n)
		}
		return
	}
	fmt.Fprintf(s.out, "Data loaded successfully: %d transactions from %s.\n", n, name)
}

func (s *shell) save(name string) {
	n, err := s.session.Save(name)
	if err != nil {
		fmt.Fprintf(s.out, "Error saving to file: %v\n", err)
		return
	}
	fmt.Fprintf(s.out, "Data saved successfully: %d transactions to %s.\n", n, name)
}
