package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// WageType selects which wage field of a Worker is in effect.
type WageType string

const (
	WageDaily   WageType = "daily"
	WageMonthly WageType = "monthly"
)

// Worker is an employee paid either a daily wage or a monthly salary.
type Worker struct {
	ID            string          `json:"id"`
	Name          string          `json:"name" validate:"required,max=120"`
	PaymentType   WageType        `json:"paymentType" validate:"required,oneof=daily monthly"`
	MonthlySalary decimal.Decimal `json:"monthlySalary"`
	DailyWage     decimal.Decimal `json:"dailyWage"`
	Phone         string          `json:"phone" validate:"omitempty,max=32"`
	JoinedOn      time.Time       `json:"joinedOn"`
}

func (w Worker) EntityID() string { return w.ID }

// IsMonthly reports whether the worker is on a monthly salary.
func (w Worker) IsMonthly() bool { return w.PaymentType == WageMonthly }

// ActiveWage returns the wage field selected by PaymentType.
func (w Worker) ActiveWage() decimal.Decimal {
	if w.IsMonthly() {
		return w.MonthlySalary
	}
	return w.DailyWage
}

// Validate checks the worker fields.
func (w Worker) Validate() error {
	if err := validate.Struct(w); err != nil {
		return validationError(err)
	}
	if err := requireNonNegative("monthlySalary", w.MonthlySalary); err != nil {
		return err
	}
	return requireNonNegative("dailyWage", w.DailyWage)
}
