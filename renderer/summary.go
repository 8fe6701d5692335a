package renderer

import (
	"bytes"
	"fmt"
	"io"
	"strings"

	"github.com/etnz/tally"
	md "github.com/nao1215/markdown"
)

// SummaryMarkdown renders a monthly summary, amounts formatted in currency.
func SummaryMarkdown(s tally.Summary, currency string) string {
	var b strings.Builder
	renderTotals(&b, s, currency)
	ConditionalBlock(&b, func(w io.Writer) bool { return renderCategories(w, s, currency) })
	return b.String()
}

func renderTotals(w io.Writer, s tally.Summary, currency string) {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1(fmt.Sprintf("Monthly Summary for %s", s.Month))
	table := md.TableSet{
		Alignment: []md.TableAlignment{md.AlignLeft, md.AlignRight},
		Header:    []string{"Total", "Amount"},
		Rows: [][]string{
			{"Total Income", tally.M(s.Income, currency).String()},
			{"Total Expenses", tally.M(s.Expense, currency).String()},
			{md.Bold("Net Savings"), md.Bold(tally.M(s.Net, currency).String())},
		},
	}
	if !s.Income.IsZero() {
		table.Rows = append(table.Rows, []string{"Savings Rate", s.SavingsRate().String()})
	}
	doc.Table(table)
	io.WriteString(w, doc.String())
}

// renderCategories renders the per category breakdown, it returns false when
// there is nothing to show.
func renderCategories(w io.Writer, s tally.Summary, currency string) bool {
	if len(s.ByCategory) == 0 {
		return false
	}
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H2("By Category")
	table := md.TableSet{
		Alignment: []md.TableAlignment{md.AlignLeft, md.AlignLeft, md.AlignRight},
		Header:    []string{"Kind", "Category", "Amount"},
	}
	for _, c := range s.ByCategory {
		table.Rows = append(table.Rows, []string{kindLabel(c.Kind), c.Category, tally.M(c.Amount, currency).String()})
	}
	doc.Table(table)
	io.WriteString(w, "\n"+doc.String())
	return true
}

func kindLabel(k tally.Kind) string {
	switch k {
	case tally.Income:
		return "Income"
	case tally.Expense:
		return "Expense"
	default:
		return k.String()
	}
}
