package date

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// MonthFormat is the canonical text form of a Month.
const MonthFormat = "2006-01"

// Month identifies a calendar month. It is the granularity used to
// aggregate transactions: the day of a Date is ignored.
type Month struct {
	Year  int
	Month time.Month
}

// NewMonth returns the Month for year and month, validating the month number.
func NewMonth(year int, month int) (Month, error) {
	if month < 1 || month > 12 {
		return Month{}, fmt.Errorf("invalid month %d: must be between 1 and 12", month)
	}
	if year < MinYear || year > MaxYear {
		return Month{}, fmt.Errorf("invalid year %d: must be between %d and %d", year, MinYear, MaxYear)
	}
	return Month{Year: year, Month: time.Month(month)}, nil
}

// MonthOf returns the month containing d.
func MonthOf(d Date) Month { return Month{Year: d.Year(), Month: d.Month()} }

// ThisMonth returns the current month.
func ThisMonth() Month { return MonthOf(Today()) }

// First returns the first day of the month.
func (m Month) First() Date { return New(m.Year, m.Month, 1) }

// Last returns the last day of the month.
func (m Month) Last() Date { return New(m.Year, m.Month+1, 0) }

// Contains reports whether d falls in m.
func (m Month) Contains(d Date) bool { return d.Year() == m.Year && d.Month() == m.Month }

// Before reports whether m is strictly before x.
func (m Month) Before(x Month) bool {
	if m.Year != x.Year {
		return m.Year < x.Year
	}
	return m.Month < x.Month
}

// Next returns the following month.
func (m Month) Next() Month { return MonthOf(New(m.Year, m.Month+1, 1)) }

// Prev returns the previous month.
func (m Month) Prev() Month { return MonthOf(m.First().Add(-1)) }

// String formats the month as YYYY-MM.
func (m Month) String() string { return m.First().time().Format(MonthFormat) }

// ParseMonth parses "YYYY-MM" (or the lenient "YYYY-M"). A full date is also
// accepted, its day is dropped.
func ParseMonth(str string) (Month, error) {
	str = strings.TrimSpace(str)
	if d, err := Parse(str); err == nil {
		return MonthOf(d), nil
	}
	y, mm, ok := strings.Cut(str, "-")
	if !ok {
		return Month{}, fmt.Errorf("invalid month %q want format %q", str, MonthFormat)
	}
	year, err := strconv.Atoi(y)
	if err != nil || len(y) != 4 {
		return Month{}, fmt.Errorf("invalid year in %q want format %q", str, MonthFormat)
	}
	month, err := strconv.Atoi(mm)
	if err != nil {
		return Month{}, fmt.Errorf("invalid month in %q want format %q", str, MonthFormat)
	}
	return NewMonth(year, month)
}
