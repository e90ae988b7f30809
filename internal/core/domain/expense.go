package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Expense is money spent by the business on a given day.
type Expense struct {
	ID          string          `json:"id"`
	Date        time.Time       `json:"date"`
	Amount      decimal.Decimal `json:"amount"`
	Name        string          `json:"name" validate:"required,max=200"`
	Description string          `json:"description"`
}

func (e Expense) EntityID() string { return e.ID }
func (e Expense) RecordDate() time.Time { return e.Date }
func (e Expense) RecordAmount() decimal.Decimal { return e.Amount }

// Validate checks the expense fields.
func (e Expense) Validate() error {
	if err := validate.Struct(e); err != nil {
		return validationError(err)
	}
	if err := requireDay("date", e.Date); err != nil {
		return err
	}
	return requireNonNegative("amount", e.Amount)
}
