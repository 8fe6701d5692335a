package tally

import (
	"errors"
	"fmt"
)

var (
	// ErrIO matches every *IOError.
	ErrIO = errors.New("ledger i/o error")
	// ErrParse matches every *ParseError.
	ErrParse = errors.New("ledger parse error")

	ErrFieldCount     = errors.New("wrong number of fields")
	ErrInvalidKind    = errors.New("invalid kind")
	ErrInvalidAmount  = errors.New("invalid amount")
	ErrNegativeAmount = errors.New("negative amount")
	ErrEmptyCategory  = errors.New("empty category")
	ErrMissingDate    = errors.New("missing date")
	ErrDateOutOfRange = errors.New("date out of range")
	// ErrInvalidCategory is returned for a category that the ledger file
	// cannot hold: a field separator, a line break or surrounding spaces.
	ErrInvalidCategory = errors.New("invalid category")
	ErrBlankLine       = errors.New("blank line")
	ErrLineTooLong     = errors.New("line too long")

	// ErrUnencodable is returned when a transaction cannot be written without
	// corrupting the ledger file, e.g. a category containing a comma.
	ErrUnencodable = errors.New("transaction cannot be encoded")
)

// IOError reports a ledger file that could not be opened, read or written.
type IOError struct {
	Op   string // open, read, write, rename...
	Path string
	Err  error
}

func (e *IOError) Error() string {
	if e.Path == "" {
		return fmt.Sprintf("%s ledger: %v", e.Op, e.Err)
	}
	return fmt.Sprintf("%s ledger %q: %v", e.Op, e.Path, e.Err)
}

func (e *IOError) Unwrap() error        { return e.Err }
func (e *IOError) Is(target error) bool { return target == ErrIO }

// ParseError reports a ledger line that does not match the file format.
type ParseError struct {
	Line int    // 1-based line number
	Text string // raw content of the line
	Err  error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("line %d %q: %v", e.Line, e.Text, e.Err)
}

func (e *ParseError) Unwrap() error        { return e.Err }
func (e *ParseError) Is(target error) bool { return target == ErrParse }
