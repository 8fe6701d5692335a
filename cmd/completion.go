package cmd

import (
	"flag"

	"github.com/etnz/tally/date"
	"github.com/etnz/tally/docs"
	"github.com/google/subcommands"
	"github.com/posener/complete/v2"
	"github.com/posener/complete/v2/predict"
)

// Completion returns the shell completion of the commander commands and of
// the top level flags.
//
// The main package calls Complete on it before parsing the command line: it
// exits after printing the completions when invoked by the shell.
func Completion(cdr *subcommands.Commander, top *flag.FlagSet) *complete.Command {
	root := &complete.Command{
		Flags: flagPredictors(top),
		Sub:   make(map[string]*complete.Command),
	}
	cdr.VisitCommands(func(_ *subcommands.CommandGroup, c subcommands.Command) {
		fs := flag.NewFlagSet(c.Name(), flag.ContinueOnError)
		c.SetFlags(fs)
		sub := &complete.Command{Flags: flagPredictors(fs)}
		if c.Name() == "topic" {
			if topics, err := docs.GetAllTopics(); err == nil {
				sub.Args = predict.Set(topics)
			}
		}
		root.Sub[c.Name()] = sub
	})
	return root
}

func flagPredictors(fs *flag.FlagSet) map[string]complete.Predictor {
	predictors := make(map[string]complete.Predictor)
	fs.VisitAll(func(f *flag.Flag) {
		predictors[f.Name] = flagPredictor(f)
	})
	return predictors
}

func flagPredictor(f *flag.Flag) complete.Predictor {
	if b, ok := f.Value.(interface{ IsBoolFlag() bool }); ok && b.IsBoolFlag() {
		return predict.Nothing
	}
	switch f.Name {
	case "ledger-file":
		return predict.Files("*.csv")
	case "o":
		return predict.Files("*")
	case "currency":
		return predict.Set{"USD", "EUR", "GBP", "JPY", "CHF", "INR"}
	case "load-policy":
		return predict.Set{"atomic", "best-effort"}
	case "m":
		return recentMonths(12)
	default:
		return predict.Something
	}
}

// recentMonths proposes the current month and the n-1 before it.
func recentMonths(n int) predict.Set {
	months := make(predict.Set, 0, n)
	for m := date.ThisMonth(); len(months) < n; m = m.Prev() {
		months = append(months, m.String())
	}
	return months
}
