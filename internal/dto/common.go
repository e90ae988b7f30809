package dto

import (
	"time"

	"github.com/SscSPs/bizdash/internal/core/domain"
	"github.com/shopspring/decimal"
)

// ListResponse wraps a list of items.
type ListResponse[T any] struct {
	Data  []T `json:"data"`
	Count int `json:"count"`
}

// ToList converts items with fn and wraps the result.
func ToList[D, R any](items []D, fn func(D) R) ListResponse[R] {
	out := make([]R, len(items))
	for i, item := range items {
		out[i] = fn(item)
	}
	return ListResponse[R]{Data: out, Count: len(out)}
}

// FormatDay renders a calendar day as YYYY-MM-DD, or "" for the zero time.
func FormatDay(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format(domain.DateLayout)
}

// parseOptionalDay parses s, treating "" as the zero time.
func parseOptionalDay(s string) (time.Time, error) {
	if s == "" {
		return time.Time{}, nil
	}
	return domain.ParseDay(s)
}

func decimalOrZero(d *decimal.Decimal) decimal.Decimal {
	if d == nil {
		return decimal.Zero
	}
	return *d
}
