package renderer

import (
	"bytes"
	"fmt"

	"github.com/etnz/tally"
	md "github.com/nao1215/markdown"
)

// Transaction renders a transaction to a one line sentence.
func Transaction(tx tally.Transaction, currency string) string {
	switch tx.Kind() {
	case tally.Income:
		return fmt.Sprintf("Received %s of %s in %s", tally.M(tx.Amount(), currency), tx.Category(), tx.Period())
	case tally.Expense:
		return fmt.Sprintf("Spent %s on %s in %s", tally.M(tx.Amount(), currency), tx.Category(), tx.Period())
	default:
		return tx.String()
	}
}

// Transactions renders a list of transactions as a markdown table.
func Transactions(txs []tally.Transaction, currency string) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1("Transactions")
	if len(txs) == 0 {
		doc.PlainText("No transactions.")
		return doc.String()
	}

	table := md.TableSet{
		Alignment: []md.TableAlignment{md.AlignLeft, md.AlignLeft, md.AlignLeft, md.AlignRight},
		Header:    []string{"Date", "Kind", "Category", "Amount"},
	}
	for _, tx := range txs {
		amount := tally.M(tx.Amount(), currency)
		if tx.Kind() == tally.Expense {
			amount = amount.Neg()
		}
		table.Rows = append(table.Rows, []string{tx.Date().String(), kindLabel(tx.Kind()), tx.Category(), amount.String()})
	}
	doc.Table(table)
	return doc.String()
}
