package tally

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/etnz/tally/date"
)

const (
	fieldSeparator = ","
	fieldCount     = 4
)

// ParseTransaction decodes one ledger line:
//
//	<KIND>,<category>,<amount>,<YYYY-MM-DD>
//
// Whitespace around each field is ignored. The error is one of ErrFieldCount,
// ErrInvalidKind, ErrInvalidAmount, ErrNegativeAmount, ErrEmptyCategory or a
// date parsing error.
func ParseTransaction(line string) (Transaction, error) {
	fields := strings.Split(line, fieldSeparator)
	if len(fields) != fieldCount {
		return Transaction{}, fmt.Errorf("%w: got %d want %d", ErrFieldCount, len(fields), fieldCount)
	}
	for i := range fields {
		fields[i] = strings.TrimSpace(fields[i])
	}

	kind, err := ParseKind(fields[0])
	if err != nil {
		return Transaction{}, err
	}
	amount, err := ParseAmount(fields[2])
	if err != nil {
		return Transaction{}, err
	}
	on, err := date.Parse(fields[3])
	if err != nil {
		return Transaction{}, err
	}
	return NewTransaction(kind, fields[1], amount, on)
}

// maxLineSize bounds the length of a ledger line.
const maxLineSize = 1 << 20

// decode reads the ledger lines from r. It returns the transactions decoded
// before the first error, and that error.
func decode(r io.Reader, opts LoadOptions) ([]Transaction, error) {
	var txs []Transaction
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, bufio.MaxScanTokenSize), maxLineSize)
	n := 0
	for scanner.Scan() {
		n++
		line := scanner.Text()
		if strings.TrimSpace(line) == "" {
			if opts.RejectBlankLines {
				return txs, &ParseError{Line: n, Text: line, Err: ErrBlankLine}
			}
			continue // Skip empty lines
		}
		tx, err := ParseTransaction(line)
		if err != nil {
			return txs, &ParseError{Line: n, Text: line, Err: err}
		}
		txs = append(txs, tx)
	}
	if err := scanner.Err(); err != nil {
		if errors.Is(err, bufio.ErrTooLong) {
			return txs, &ParseError{Line: n + 1, Err: ErrLineTooLong}
		}
		return txs, &IOError{Op: "read", Err: err}
	}
	return txs, nil
}

// Decode reads ledger lines from r and appends them to l, in order.
//
// With the Atomic policy nothing is appended when a line is malformed. With
// BestEffort the records before the first malformed line are appended. A
// read failure keeps the records read before it, whatever the policy. In all
// cases the first error is returned.
func (l *Ledger) Decode(r io.Reader, opts LoadOptions) error {
	txs, err := decode(r, opts)
	var ioErr *IOError
	if err != nil && opts.Policy == Atomic && !errors.As(err, &ioErr) {
		return err
	}
	l.Append(txs...)
	return err
}

// DecodeLedger decodes a ledger from r with the default options.
func DecodeLedger(r io.Reader) (*Ledger, error) {
	ledger := NewLedger()
	if err := ledger.Decode(r, LoadOptions{}); err != nil {
		return nil, err
	}
	return ledger, nil
}

// EncodeTransaction writes tx as one ledger line, followed by a newline.
//
// Invalid transactions, that would not read back identically, are rejected
// with ErrUnencodable.
func EncodeTransaction(w io.Writer, tx Transaction) error {
	if err := tx.Validate(); err != nil {
		return fmt.Errorf("%w: %w", ErrUnencodable, err)
	}
	if _, err := io.WriteString(w, tx.String()+"\n"); err != nil {
		return fmt.Errorf("failed to write transaction: %w", err)
	}
	return nil
}

// EncodeLedger writes all transactions of the ledger to w, in order.
func EncodeLedger(w io.Writer, ledger *Ledger) error {
	for _, tx := range ledger.transactions {
		if err := EncodeTransaction(w, tx); err != nil {
			return err
		}
	}
	return nil
}

// Load reads the ledger file at path and appends its transactions to l.
//
// A file that cannot be opened or read yields an *IOError, a malformed line a
// *ParseError. What was appended on error depends on opts.Policy.
func (l *Ledger) Load(path string, opts LoadOptions) error {
	f, err := os.Open(path)
	if err != nil {
		return &IOError{Op: "open", Path: path, Err: err}
	}
	defer f.Close()

	before := l.Len()
	err = l.Decode(f, opts)
	var ioErr *IOError
	if errors.As(err, &ioErr) && ioErr.Path == "" {
		ioErr.Path = path
	}
	logger.Debug().Str("path", path).Str("policy", opts.Policy.String()).
		Int("loaded", l.Len()-before).Err(err).Msg("load ledger")
	return err
}

// Save writes every transaction to the file at path, replacing its content.
//
// The ledger is written to a temporary file in the same directory that is
// then renamed over path: on error the previous content of path is intact.
// An existing file keeps its permissions, a new one is created 0644.
func (l *Ledger) Save(path string) error {
	var buf bytes.Buffer
	if err := EncodeLedger(&buf, l); err != nil {
		return err
	}

	f, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+".*")
	if err != nil {
		return &IOError{Op: "create", Path: path, Err: err}
	}
	tmp := f.Name()
	defer os.Remove(tmp) // no-op once renamed

	if _, err := f.Write(buf.Bytes()); err != nil {
		f.Close()
		return &IOError{Op: "write", Path: path, Err: err}
	}
	if err := f.Sync(); err != nil {
		f.Close()
		return &IOError{Op: "write", Path: path, Err: err}
	}
	if err := f.Close(); err != nil {
		return &IOError{Op: "write", Path: path, Err: err}
	}
	mode := os.FileMode(0644)
	if info, err := os.Stat(path); err == nil {
		mode = info.Mode().Perm()
	}
	if err := os.Chmod(tmp, mode); err != nil {
		return &IOError{Op: "chmod", Path: path, Err: err}
	}
	if err := os.Rename(tmp, path); err != nil {
		return &IOError{Op: "rename", Path: path, Err: err}
	}
	logger.Debug().Str("path", path).Int("saved", l.Len()).Msg("save ledger")
	return nil
}
