package domain

import (
	"fmt"
	"time"

	"github.com/SscSPs/bizdash/internal/apperrors"
	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

const (
	// DateLayout is the calendar-day format used on the wire and in the database.
	DateLayout = "2006-01-02"
	// MonthLayout is the year-month format used for monthly aggregates.
	MonthLayout = "2006-01"
)

var validate = validator.New()

// Entity is implemented by every stored record.
type Entity interface {
	EntityID() string
}

// Dated is implemented by records that carry an amount booked on a calendar day.
type Dated interface {
	RecordDate() time.Time
	RecordAmount() decimal.Decimal
}

// Month identifies a calendar month. Membership is decided on year and month
// numbers, never on string prefixes, so "2024-1" can not match "2024-10".
type Month struct {
	Year  int
	Month time.Month
}

// ParseMonth parses a "YYYY-MM" string.
func ParseMonth(s string) (Month, error) {
	t, err := time.Parse(MonthLayout, s)
	if err != nil {
		return Month{}, fmt.Errorf("%w: invalid month %q, expected YYYY-MM", apperrors.ErrValidation, s)
	}
	return Month{Year: t.Year(), Month: t.Month()}, nil
}

// MonthOf returns the month containing t.
func MonthOf(t time.Time) Month {
	return Month{Year: t.Year(), Month: t.Month()}
}

func (m Month) String() string {
	return fmt.Sprintf("%04d-%02d", m.Year, int(m.Month))
}

// Contains reports whether day falls inside the month.
func (m Month) Contains(day time.Time) bool {
	y, mo, _ := day.Date()
	return y == m.Year && mo == m.Month
}

// First returns the first day of the month at UTC midnight.
func (m Month) First() time.Time {
	return time.Date(m.Year, m.Month, 1, 0, 0, 0, 0, time.UTC)
}

// Days returns the number of days in the month.
func (m Month) Days() int {
	return m.First().AddDate(0, 1, -1).Day()
}

// ParseDay parses a "YYYY-MM-DD" string into a calendar day.
func ParseDay(s string) (time.Time, error) {
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: invalid date %q, expected YYYY-MM-DD", apperrors.ErrValidation, s)
	}
	return t, nil
}

// DayOf drops the clock part of t, keeping the calendar day as seen in t's location.
func DayOf(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// SameDay reports whether a and b are the same calendar day.
func SameDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}

func validationError(err error) error {
	return fmt.Errorf("%w: %s", apperrors.ErrValidation, err.Error())
}

func requireDay(field string, t time.Time) error {
	if t.IsZero() {
		return fmt.Errorf("%w: %s is required", apperrors.ErrValidation, field)
	}
	return nil
}

func requireNonNegative(field string, d decimal.Decimal) error {
	if d.IsNegative() {
		return fmt.Errorf("%w: %s must not be negative", apperrors.ErrValidation, field)
	}
	return nil
}
