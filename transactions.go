package tally

import (
	"errors"
	"fmt"
	"strings"

	"github.com/etnz/tally/date"
	"github.com/shopspring/decimal"
)

// Kind is the direction of a money movement.
type Kind int

const (
	// Income is money received (salary, business...).
	Income Kind = iota + 1
	// Expense is money spent (food, rent, travel...).
	Expense
)

// String returns the token used in the ledger file.
func (k Kind) String() string {
	switch k {
	case Income:
		return "INCOME"
	case Expense:
		return "EXPENSE"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// Valid reports whether k is one of the declared kinds.
func (k Kind) Valid() bool { return k == Income || k == Expense }

// ParseKind parses the ledger token of a kind. Tokens are case-sensitive.
func ParseKind(s string) (Kind, error) {
	switch s {
	case "INCOME":
		return Income, nil
	case "EXPENSE":
		return Expense, nil
	default:
		return 0, fmt.Errorf("%w: %q want INCOME or EXPENSE", ErrInvalidKind, s)
	}
}

// Transaction is one recorded money movement. It is a value: once created it
// is never modified.
type Transaction struct {
	kind     Kind
	category string
	amount   decimal.Decimal
	on       date.Date
}

// NewTransaction returns a validated transaction.
func NewTransaction(kind Kind, category string, amount decimal.Decimal, on date.Date) (Transaction, error) {
	tx := Transaction{kind: kind, category: category, amount: amount, on: on}
	if err := tx.Validate(); err != nil {
		return Transaction{}, err
	}
	return tx, nil
}

// NewIncome returns an income for the given month. Its date is the first day
// of the month.
func NewIncome(m date.Month, category string, amount decimal.Decimal) (Transaction, error) {
	return NewTransaction(Income, category, amount, m.First())
}

// NewExpense returns an expense for the given month. Its date is the first
// day of the month.
func NewExpense(m date.Month, category string, amount decimal.Decimal) (Transaction, error) {
	return NewTransaction(Expense, category, amount, m.First())
}

func (t Transaction) Kind() Kind              { return t.kind }
func (t Transaction) Category() string        { return t.category }
func (t Transaction) Amount() decimal.Decimal { return t.amount }
func (t Transaction) Date() date.Date         { return t.on }

// Period returns the month the transaction is accounted in.
func (t Transaction) Period() date.Month { return date.MonthOf(t.on) }

// Equal reports whether t and u record the same movement. Amounts are
// compared by value, so 42.5 equals 42.50.
func (t Transaction) Equal(u Transaction) bool {
	return t.kind == u.kind && t.category == u.category && t.amount.Equal(u.amount) && t.on == u.on
}

// Validate checks the data model invariants. A valid transaction can always
// be written to the ledger file and read back.
func (t Transaction) Validate() error {
	var errs []error
	if !t.kind.Valid() {
		errs = append(errs, fmt.Errorf("%w: %v", ErrInvalidKind, t.kind))
	}
	switch c := t.category; {
	case strings.TrimSpace(c) == "":
		errs = append(errs, ErrEmptyCategory)
	case strings.ContainsAny(c, fieldSeparator+"\r\n") || strings.TrimSpace(c) != c:
		errs = append(errs, fmt.Errorf("%w: %q must not contain %q, line breaks or surrounding spaces", ErrInvalidCategory, c, fieldSeparator))
	}
	if t.amount.IsNegative() {
		errs = append(errs, fmt.Errorf("%w: %s", ErrNegativeAmount, t.amount))
	}
	switch {
	case t.on.IsZero():
		errs = append(errs, ErrMissingDate)
	case !t.on.InRange():
		errs = append(errs, fmt.Errorf("%w: year %d must be between %d and %d", ErrDateOutOfRange, t.on.Year(), date.MinYear, date.MaxYear))
	}
	return errors.Join(errs...)
}

// String returns the ledger line for t, without the line terminator.
func (t Transaction) String() string {
	return strings.Join([]string{t.kind.String(), t.category, formatAmount(t.amount), t.on.String()}, fieldSeparator)
}
