package date

import (
	"testing"
	"time"
)

func TestParseMonth(t *testing.T) {
	testCases := []struct {
		input   string
		want    Month
		wantErr bool
	}{
		{"2025-01", Month{2025, time.January}, false},
		{"2025-3", Month{2025, time.March}, false},
		{" 2025-12 ", Month{2025, time.December}, false},
		{"2025-03-17", Month{2025, time.March}, false},
		{"2025-13", Month{}, true},
		{"2025-00", Month{}, true},
		{"25-01", Month{}, true},
		{"2025", Month{}, true},
		{"jan", Month{}, true},
	}

	for _, tc := range testCases {
		t.Run(tc.input, func(t *testing.T) {
			got, err := ParseMonth(tc.input)
			if (err != nil) != tc.wantErr {
				t.Fatalf("ParseMonth(%q) error = %v, wantErr %v", tc.input, err, tc.wantErr)
			}
			if got != tc.want {
				t.Errorf("ParseMonth(%q) = %v, want %v", tc.input, got, tc.want)
			}
		})
	}
}

func TestMonthContains(t *testing.T) {
	m := Month{2025, time.January}
	if !m.Contains(New(2025, time.January, 31)) {
		t.Error("January should contain the 31st")
	}
	if m.Contains(New(2025, time.February, 1)) {
		t.Error("January should not contain February 1st")
	}
	if m.Contains(New(2024, time.January, 1)) {
		t.Error("January 2025 should not contain January 2024")
	}
}

func TestMonthNavigation(t *testing.T) {
	dec := Month{2024, time.December}
	if got, want := dec.Next(), (Month{2025, time.January}); got != want {
		t.Errorf("Next() = %v, want %v", got, want)
	}
	if got, want := (Month{2025, time.January}).Prev(), dec; got != want {
		t.Errorf("Prev() = %v, want %v", got, want)
	}
	if got, want := (Month{2024, time.February}).Last(), New(2024, time.February, 29); got != want {
		t.Errorf("Last() = %v, want %v", got, want)
	}
	if !dec.Before(dec.Next()) || dec.Next().Before(dec) {
		t.Error("Before() is not consistent with Next()")
	}
}

func TestNewMonth(t *testing.T) {
	for _, tc := range []struct{ year, month int }{{2025, 0}, {2025, 13}, {20251, 3}, {-1, 3}} {
		if _, err := NewMonth(tc.year, tc.month); err == nil {
			t.Errorf("NewMonth(%d, %d) should fail", tc.year, tc.month)
		}
	}
	if _, err := NewMonth(MaxYear, 12); err != nil {
		t.Errorf("NewMonth(%d, 12) unexpected error: %v", MaxYear, err)
	}
	m, err := NewMonth(2025, 3)
	if err != nil {
		t.Fatalf("NewMonth(2025, 3) unexpected error: %v", err)
	}
	if m.String() != "2025-03" {
		t.Errorf("String() = %q, want %q", m.String(), "2025-03")
	}
}
