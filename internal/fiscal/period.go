// Package fiscal models the reporting calendar: year-month fiscal periods and
// the classification of a money movement against the period it settles.
package fiscal

import (
	"database/sql/driver"
	"errors"
	"fmt"
	"strconv"
	"time"
)

// ErrInvalidPeriod is returned for anything that is not a zero-padded YYYY-MM string.
var ErrInvalidPeriod = errors.New("INVALID_FISCAL_PERIOD")

// Period is a fiscal year-month. The zero value is not a valid period.
type Period struct {
	Year  int
	Month time.Month
}

// ParsePeriod parses the canonical 7-character YYYY-MM form.
func ParsePeriod(s string) (Period, error) {
	if len(s) != 7 || s[4] != '-' || !digits(s[:4]) || !digits(s[5:]) {
		return Period{}, fmt.Errorf("%w: %q", ErrInvalidPeriod, s)
	}

	year, err := strconv.Atoi(s[:4])
	if err != nil || year < 1 {
		return Period{}, fmt.Errorf("%w: %q", ErrInvalidPeriod, s)
	}

	month, err := strconv.Atoi(s[5:])
	if err != nil || month < 1 || month > 12 {
		return Period{}, fmt.Errorf("%w: %q", ErrInvalidPeriod, s)
	}

	return Period{Year: year, Month: time.Month(month)}, nil
}

func digits(s string) bool {
	for i := range len(s) {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}

	return true
}

// MustParsePeriod is ParsePeriod for constants and tests.
func MustParsePeriod(s string) Period {
	p, err := ParsePeriod(s)
	if err != nil {
		panic(err)
	}

	return p
}

// PeriodOf truncates a calendar date to its year-month.
func PeriodOf(t time.Time) Period {
	return Period{Year: t.Year(), Month: t.Month()}
}

// Current returns the period containing now in loc.
func Current(now time.Time, loc *time.Location) Period {
	if loc != nil {
		now = now.In(loc)
	}

	return PeriodOf(now)
}

func (p Period) String() string {
	return fmt.Sprintf("%04d-%02d", p.Year, int(p.Month))
}

func (p Period) IsZero() bool {
	return p.Year == 0 && p.Month == 0
}

// Compare orders periods structurally by (year, month).
func (p Period) Compare(o Period) int {
	switch {
	case p.Year < o.Year:
		return -1
	case p.Year > o.Year:
		return 1
	case p.Month < o.Month:
		return -1
	case p.Month > o.Month:
		return 1
	}

	return 0
}

func (p Period) Before(o Period) bool { return p.Compare(o) < 0 }
func (p Period) After(o Period) bool  { return p.Compare(o) > 0 }

// Start is the first calendar day of the period, in UTC.
func (p Period) Start() time.Time {
	return time.Date(p.Year, p.Month, 1, 0, 0, 0, 0, time.UTC)
}

// End is the first calendar day of the following period (exclusive bound).
func (p Period) End() time.Time {
	return p.Start().AddDate(0, 1, 0)
}

func (p Period) Next() Period { return PeriodOf(p.End()) }
func (p Period) Prev() Period { return PeriodOf(p.Start().AddDate(0, -1, 0)) }

// Contains reports whether the calendar date d falls inside the period.
func (p Period) Contains(d time.Time) bool {
	return PeriodOf(d) == p
}

var monthNames = [...]string{
	"Enero", "Febrero", "Marzo", "Abril", "Mayo", "Junio",
	"Julio", "Agosto", "Septiembre", "Octubre", "Noviembre", "Diciembre",
}

// Label renders the period for statements, e.g. "Junio 2025".
func (p Period) Label() string {
	if p.Month < time.January || p.Month > time.December {
		return p.String()
	}

	return fmt.Sprintf("%s %d", monthNames[p.Month-1], p.Year)
}

func (p Period) MarshalText() ([]byte, error) {
	return []byte(p.String()), nil
}

func (p *Period) UnmarshalText(b []byte) error {
	parsed, err := ParsePeriod(string(b))
	if err != nil {
		return err
	}

	*p = parsed

	return nil
}

// Value stores the period as its YYYY-MM string.
func (p Period) Value() (driver.Value, error) {
	return p.String(), nil
}

func (p *Period) Scan(src any) error {
	switch v := src.(type) {
	case string:
		return p.UnmarshalText([]byte(v))
	case []byte:
		return p.UnmarshalText(v)
	default:
		return fmt.Errorf("scanning fiscal period from %T", src)
	}
}
