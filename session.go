package tally

import (
	"github.com/etnz/tally/date"
	"github.com/shopspring/decimal"
)

// Session holds the ledger of one interactive session and exposes the
// operations a front end can request. It owns no input or output: callers
// parse their arguments and render the results.
type Session struct {
	ledger *Ledger
	opts   LoadOptions
}

// NewSession returns a session working on ledger. A nil ledger starts empty.
func NewSession(ledger *Ledger, opts LoadOptions) *Session {
	if ledger == nil {
		ledger = NewLedger()
	}
	return &Session{ledger: ledger, opts: opts}
}

// Ledger returns the session ledger.
func (s *Session) Ledger() *Ledger { return s.ledger }

// AddIncome records an income for month m.
func (s *Session) AddIncome(m date.Month, category string, amount decimal.Decimal) (Transaction, error) {
	return s.add(NewIncome(m, category, amount))
}

// AddExpense records an expense for month m.
func (s *Session) AddExpense(m date.Month, category string, amount decimal.Decimal) (Transaction, error) {
	return s.add(NewExpense(m, category, amount))
}

func (s *Session) add(tx Transaction, err error) (Transaction, error) {
	if err != nil {
		return Transaction{}, err
	}
	s.ledger.Append(tx)
	return tx, nil
}

// Summary returns the monthly summary of m.
func (s *Session) Summary(m date.Month) Summary { return MonthlySummary(s.ledger, m) }

// Load appends the content of the ledger file at path and returns the number
// of transactions added.
func (s *Session) Load(path string) (int, error) {
	before := s.ledger.Len()
	err := s.ledger.Load(path, s.opts)
	return s.ledger.Len() - before, err
}

// Save writes the session ledger to path and returns the number of
// transactions written.
func (s *Session) Save(path string) (int, error) {
	if err := s.ledger.Save(path); err != nil {
		return 0, err
	}
	return s.ledger.Len(), nil
}
