package mapping

import (
	"time"

	"github.com/SscSPs/bizdash/internal/core/domain"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/shopspring/decimal"
)

// DecimalFromNumeric coerces a numeric column into a decimal. NULL and NaN become zero.
func DecimalFromNumeric(n pgtype.Numeric) decimal.Decimal {
	if !n.Valid || n.NaN || n.Int == nil {
		return decimal.Zero
	}
	return decimal.NewFromBigInt(n.Int, n.Exp)
}

// NumericFromDecimal converts a decimal into a numeric column value.
func NumericFromDecimal(d decimal.Decimal) pgtype.Numeric {
	return pgtype.Numeric{Int: d.Coefficient(), Exp: d.Exponent(), Valid: true}
}

// DayFromDate normalises a date column to a calendar day at UTC midnight.
// NULL becomes the zero time.
func DayFromDate(d pgtype.Date) time.Time {
	if !d.Valid {
		return time.Time{}
	}
	return domain.DayOf(d.Time)
}

// DateFromDay converts a calendar day into a date column value. The zero time is stored as NULL.
func DateFromDay(t time.Time) pgtype.Date {
	if t.IsZero() {
		return pgtype.Date{}
	}
	return pgtype.Date{Time: domain.DayOf(t), Valid: true}
}

// StringFromText returns the text value or "" for NULL.
func StringFromText(t pgtype.Text) string {
	if !t.Valid {
		return ""
	}
	return t.String
}

// TextFromString stores "" as NULL.
func TextFromString(s string) pgtype.Text {
	if s == "" {
		return pgtype.Text{}
	}
	return pgtype.Text{String: s, Valid: true}
}
