package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// WorkerPaymentType classifies money paid to a worker.
type WorkerPaymentType string

const (
	PayDailyWage     WorkerPaymentType = "daily_wage"
	PayMonthlySalary WorkerPaymentType = "monthly_salary"
	// PayAdvance is paid ahead of earned wages and is deducted from what is still owed.
	PayAdvance WorkerPaymentType = "advance"
)

// WorkerPayment is a payout to a worker.
type WorkerPayment struct {
	ID          string            `json:"id"`
	WorkerID    string            `json:"workerId" validate:"required"`
	Amount      decimal.Decimal   `json:"amount"`
	PaymentDate time.Time         `json:"paymentDate"`
	PaymentType WorkerPaymentType `json:"paymentType" validate:"required,oneof=daily_wage monthly_salary advance"`
	Notes       string            `json:"notes"`
}

func (p WorkerPayment) EntityID() string { return p.ID }
func (p WorkerPayment) RecordDate() time.Time { return p.PaymentDate }
func (p WorkerPayment) RecordAmount() decimal.Decimal { return p.Amount }

// Validate checks the payment fields.
func (p WorkerPayment) Validate() error {
	if err := validate.Struct(p); err != nil {
		return validationError(err)
	}
	if err := requireDay("paymentDate", p.PaymentDate); err != nil {
		return err
	}
	return requireNonNegative("amount", p.Amount)
}
