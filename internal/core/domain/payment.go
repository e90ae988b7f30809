package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// PaymentStatus is the settlement state of a partner payment.
type PaymentStatus string

const (
	PaymentCompleted PaymentStatus = "completed"
	PaymentPending   PaymentStatus = "pending"
)

// Payment is a profit-share payout to the business partner.
type Payment struct {
	ID     string          `json:"id"`
	Date   time.Time       `json:"date"`
	Amount decimal.Decimal `json:"amount"`
	Status PaymentStatus   `json:"status" validate:"required,oneof=completed pending"`
	Notes  string          `json:"notes"`
}

func (p Payment) EntityID() string { return p.ID }
func (p Payment) RecordDate() time.Time { return p.Date }
func (p Payment) RecordAmount() decimal.Decimal { return p.Amount }

// IsCompleted reports whether the payout has been made.
func (p Payment) IsCompleted() bool { return p.Status == PaymentCompleted }

// Validate checks the payment fields.
func (p Payment) Validate() error {
	if err := validate.Struct(p); err != nil {
		return validationError(err)
	}
	if err := requireDay("date", p.Date); err != nil {
		return err
	}
	return requireNonNegative("amount", p.Amount)
}
