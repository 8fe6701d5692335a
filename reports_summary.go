package tally

import (
	"github.com/etnz/tally/date"
	"github.com/shopspring/decimal"
)

// CategoryAmount is the total of one category for one kind.
type CategoryAmount struct {
	Kind     Kind
	Category string
	Amount   decimal.Decimal
}

// Summary provides the income, expense and net totals of one month.
type Summary struct {
	Month   date.Month
	Income  decimal.Decimal
	Expense decimal.Decimal
	Net     decimal.Decimal // Income - Expense
	// ByCategory lists the totals per kind and category, in the order the
	// categories first appear in the ledger.
	ByCategory []CategoryAmount
	Count      int // number of transactions in the month
}

// MonthlySummary computes the totals of the transactions of ledger in month m.
//
// Amounts are summed in ledger order with exact decimal arithmetic, so
// Income - Expense == Net always holds. A month with no transaction yields
// zero totals. The ledger is not modified.
func MonthlySummary(ledger *Ledger, m date.Month) Summary {
	s := Summary{
		Month:   m,
		Income:  decimal.Zero,
		Expense: decimal.Zero,
	}
	type key struct {
		kind     Kind
		category string
	}
	index := make(map[key]int)

	for tx := range ledger.InMonth(m) {
		s.Count++
		switch tx.Kind() {
		case Income:
			s.Income = s.Income.Add(tx.Amount())
		case Expense:
			s.Expense = s.Expense.Add(tx.Amount())
		}

		k := key{tx.Kind(), tx.Category()}
		i, ok := index[k]
		if !ok {
			i = len(s.ByCategory)
			index[k] = i
			s.ByCategory = append(s.ByCategory, CategoryAmount{Kind: k.kind, Category: k.category, Amount: decimal.Zero})
		}
		s.ByCategory[i].Amount = s.ByCategory[i].Amount.Add(tx.Amount())
	}
	s.Net = s.Income.Sub(s.Expense)
	return s
}

// SavingsRate returns the share of the income that was not spent, zero when
// there is no income. It is negative when expenses exceed the income.
func (s Summary) SavingsRate() Percent {
	if s.Income.IsZero() {
		return 0
	}
	return Percent(s.Net.Div(s.Income).Mul(decimal.NewFromInt(100)).InexactFloat64())
}
