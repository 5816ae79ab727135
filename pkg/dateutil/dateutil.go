package dateutil

import (
	"fmt"
	"strings"
	"time"
)

// Layout is the canonical text form of a calendar date.
const Layout = "2006-01-02"

// GermanLayout is the display form used in letters and reports.
const GermanLayout = "02.01.2006"

// Date is a calendar date without time of day. It decodes from "2006-01-02"
// (RFC 3339 timestamps are accepted and truncated) in YAML and JSON.
type Date struct {
	time.Time
}

// NewDate returns the date y-m-d in UTC.
func NewDate(year int, month time.Month, day int) Date {
	return Date{time.Date(year, month, day, 0, 0, 0, 0, time.UTC)}
}

// DateOf truncates t to its calendar date.
func DateOf(t time.Time) Date {
	return NewDate(t.Year(), t.Month(), t.Day())
}

// ParseDate parses a date in Layout or RFC 3339 form.
func ParseDate(s string) (Date, error) {
	s = strings.TrimSpace(s)
	if t, err := time.Parse(Layout, s); err == nil {
		return DateOf(t), nil
	}
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return Date{}, fmt.Errorf("invalid date %q: expected YYYY-MM-DD", s)
	}
	return DateOf(t), nil
}

// MustParseDate is ParseDate for literals in tests and tables.
func MustParseDate(s string) Date {
	d, err := ParseDate(s)
	if err != nil {
		panic(err)
	}
	return d
}

// String returns the date in Layout form, or "" for the zero date.
func (d Date) String() string {
	if d.IsZero() {
		return ""
	}
	return d.Format(Layout)
}

// German returns the date as dd.mm.yyyy.
func (d Date) German() string {
	if d.IsZero() {
		return ""
	}
	return d.Format(GermanLayout)
}

func (d Date) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

func (d *Date) UnmarshalText(text []byte) error {
	if len(strings.TrimSpace(string(text))) == 0 {
		*d = Date{}
		return nil
	}
	parsed, err := ParseDate(string(text))
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

// MarshalJSON overrides the promoted time.Time encoding so dates stay in Layout form.
func (d Date) MarshalJSON() ([]byte, error) {
	if d.IsZero() {
		return []byte("null"), nil
	}
	return []byte(`"` + d.String() + `"`), nil
}

func (d *Date) UnmarshalJSON(data []byte) error {
	s := strings.TrimSpace(string(data))
	if s == "null" {
		*d = Date{}
		return nil
	}
	if len(s) < 2 || s[0] != '"' || s[len(s)-1] != '"' {
		return fmt.Errorf("invalid date %s: expected a quoted YYYY-MM-DD string", s)
	}
	return d.UnmarshalText([]byte(s[1 : len(s)-1]))
}

// Before reports whether d is strictly before other.
func (d Date) Before(other Date) bool { return d.Time.Before(other.Time) }

// After reports whether d is strictly after other.
func (d Date) After(other Date) bool { return d.Time.After(other.Time) }

// AddDays adds n calendar days.
func (d Date) AddDays(n int) Date { return Date{d.AddDate(0, 0, n)} }

// AddMonths adds n months with time.AddDate normalization (Jan 31 + 1 month is Mar 3 or Mar 2).
func (d Date) AddMonths(n int) Date { return Date{d.AddDate(0, n, 0)} }

// EndOfMonth returns the last calendar day of d's month.
func (d Date) EndOfMonth() Date {
	return NewDate(d.Year(), d.Month(), DaysInMonth(d.Year(), d.Month()))
}

// Tenure returns the whole years, months and days from start to ref.
// A negative day difference borrows a month and a negative month difference borrows a year;
// borrowed days use the length of the month preceding ref's month.
func Tenure(start, ref Date) (years, months, days int) {
	years = ref.Year() - start.Year()
	months = int(ref.Month()) - int(start.Month())
	days = ref.Day() - start.Day()
	if days < 0 {
		months--
		prev := ref.AddDate(0, 0, -ref.Day())
		days += DaysInMonth(prev.Year(), prev.Month())
		if days < 0 {
			// start day does not exist in the borrowed month (e.g. Jan 31 to Mar 1)
			days = 0
		}
	}
	if months < 0 {
		years--
		months += 12
	}
	return years, months, days
}

// DaysInMonth returns the number of days of the given month.
func DaysInMonth(year int, month time.Month) int {
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}
