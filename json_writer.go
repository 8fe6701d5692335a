package tally

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"reflect"
)

// jsonObjectWriter helps construct a JSON object with a specific field order.
// Its zero value is ready to use.
type jsonObjectWriter struct {
	bytes.Buffer
	err error
}

// Append adds a new key-value pair to the JSON object. The value is marshaled
// to JSON using `json.Marshal`.
func (w *jsonObjectWriter) Append(key string, value any) *jsonObjectWriter {
	if w.err != nil {
		return w
	}
	valBytes, err := json.Marshal(value)
	if err != nil {
		w.err = fmt.Errorf("failed to marshal value for key %q: %w", key, err)
		return w
	}
	keyBytes, _ := json.Marshal(key)
	w.Write(keyBytes)
	w.WriteString(":")
	w.Write(valBytes)
	w.WriteString(",")
	return w
}

// Optional appends a key-value pair only if value is not its type's zero value.
func (w *jsonObjectWriter) Optional(key string, value any) *jsonObjectWriter {
	if w.err != nil {
		return w
	}
	v := reflect.ValueOf(value)
	if !v.IsValid() || v.IsZero() {
		return w
	}
	return w.Append(key, value)
}

// MarshalJSON finalizes the JSON object construction, wraps the content in
// braces, and returns the complete JSON byte slice. It satisfies the
// `json.Marshaler` interface.
func (w *jsonObjectWriter) MarshalJSON() ([]byte, error) {
	if w.err != nil {
		return nil, w.err
	}
	content := bytes.TrimSuffix(w.Bytes(), []byte(","))
	final := make([]byte, 0, len(content)+2)
	final = append(final, '{')
	final = append(final, content...)
	final = append(final, '}')
	return final, nil
}

// MarshalJSON encodes a transaction as {"date","kind","category","amount"},
// the amount being a decimal string.
func (t Transaction) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.Append("date", t.on.String())
	w.Append("kind", t.kind.String())
	w.Append("category", t.category)
	w.Append("amount", t.amount)
	return w.MarshalJSON()
}

func (c CategoryAmount) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.Append("kind", c.Kind.String())
	w.Append("category", c.Category)
	w.Append("amount", c.Amount)
	return w.MarshalJSON()
}

func (s Summary) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.Append("month", s.Month.String())
	w.Append("income", s.Income)
	w.Append("expense", s.Expense)
	w.Append("net", s.Net)
	w.Append("count", s.Count)
	if !s.Income.IsZero() {
		w.Append("savingsRate", float64(s.SavingsRate()))
	}
	w.Optional("categories", s.ByCategory)
	return w.MarshalJSON()
}

// ExportJSONL writes the ledger to w as JSON lines, one transaction per line.
func ExportJSONL(w io.Writer, ledger *Ledger) error {
	enc := json.NewEncoder(w)
	for tx := range ledger.Transactions() {
		if err := enc.Encode(tx); err != nil {
			return fmt.Errorf("failed to encode transaction %q: %w", tx, err)
		}
	}
	return nil
}
