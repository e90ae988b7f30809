package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// SalesRecord is the revenue a cart took on one day.
type SalesRecord struct {
	ID     string          `json:"id"`
	Date   time.Time       `json:"date"`
	CartID string          `json:"cartId" validate:"required"`
	Amount decimal.Decimal `json:"amount"`
}

func (s SalesRecord) EntityID() string { return s.ID }
func (s SalesRecord) RecordDate() time.Time { return s.Date }
func (s SalesRecord) RecordAmount() decimal.Decimal { return s.Amount }

// Validate checks the sales record fields.
func (s SalesRecord) Validate() error {
	if err := validate.Struct(s); err != nil {
		return validationError(err)
	}
	if err := requireDay("date", s.Date); err != nil {
		return err
	}
	return requireNonNegative("amount", s.Amount)
}
