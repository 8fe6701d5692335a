package cmd

import (
	"flag"
	"slices"
	"testing"

	"github.com/google/subcommands"
)

func TestCompletion(t *testing.T) {
	top := flag.NewFlagSet("et", flag.ContinueOnError)
	top.String("ledger-file", "data.csv", "")
	top.Bool("v", false, "")
	cdr := subcommands.NewCommander(top, "et")
	Register(cdr)

	c := Completion(cdr, top)

	for _, name := range []string{"income", "expense", "tx", "summary", "export", "fmt", "shell", "topic"} {
		if _, ok := c.Sub[name]; !ok {
			t.Errorf("Completion() has no %q command", name)
		}
	}
	for _, name := range []string{"c", "a", "m"} {
		if _, ok := c.Sub["expense"].Flags[name]; !ok {
			t.Errorf("expense completion has no -%s flag", name)
		}
	}
	if _, ok := c.Flags["ledger-file"]; !ok {
		t.Error("Completion() has no -ledger-file flag")
	}
	if got := c.Sub["summary"].Flags["m"].Predict(""); len(got) != 12 {
		t.Errorf("-m predictions = %v, want 12 months", got)
	}
	if got := c.Sub["topic"].Args.Predict(""); !slices.Contains(got, "shell") {
		t.Errorf("topic predictions = %v, want to contain shell", got)
	}
}

func TestRecentMonths(t *testing.T) {
	months := recentMonths(3)
	if len(months) != 3 {
		t.Fatalf("recentMonths(3) = %v, want 3 months", months)
	}
	for i := 1; i < len(months); i++ {
		if months[i] >= months[i-1] {
			t.Errorf("recentMonths(3) = %v, want most recent first", months)
		}
	}
}
