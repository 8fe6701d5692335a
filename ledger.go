package tally

import (
	"iter"
	"slices"

	"github.com/etnz/tally/date"
)

// Ledger represents the ordered list of transactions of a session.
//
// Transactions are kept in insertion order, which is also the file order
// after a Load. A Ledger is not safe for concurrent use.
type Ledger struct {
	transactions []Transaction
}

// NewLedger creates an empty ledger.
func NewLedger() *Ledger {
	return &Ledger{transactions: make([]Transaction, 0)}
}

// Append adds transactions at the end of the ledger.
func (l *Ledger) Append(txs ...Transaction) {
	l.transactions = append(l.transactions, txs...)
}

// Len returns the number of transactions.
func (l *Ledger) Len() int { return len(l.transactions) }

// Transactions iterates over all transactions in insertion order.
func (l *Ledger) Transactions() iter.Seq[Transaction] {
	return l.filter(func(Transaction) bool { return true })
}

// InMonth iterates, in insertion order, over the transactions of month m.
func (l *Ledger) InMonth(m date.Month) iter.Seq[Transaction] {
	return l.filter(func(tx Transaction) bool { return m.Contains(tx.Date()) })
}

func (l *Ledger) filter(accept func(Transaction) bool) iter.Seq[Transaction] {
	return func(yield func(Transaction) bool) {
		for _, tx := range l.transactions {
			if accept(tx) && !yield(tx) {
				return
			}
		}
	}
}

// Months returns the distinct months with at least one transaction, sorted.
func (l *Ledger) Months() []date.Month {
	var months []date.Month
	for _, tx := range l.transactions {
		if m := tx.Period(); !slices.Contains(months, m) {
			months = append(months, m)
		}
	}
	slices.SortFunc(months, func(a, b date.Month) int {
		switch {
		case a.Before(b):
			return -1
		case b.Before(a):
			return 1
		default:
			return 0
		}
	})
	return months
}
