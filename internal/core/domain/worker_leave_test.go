package domain_test

import (
	"testing"

	"github.com/SscSPs/bizdash/internal/apperrors"
	"github.com/SscSPs/bizdash/internal/core/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWorkerLeave_Transition(t *testing.T) {
	pending := domain.WorkerLeave{ID: "l1", WorkerID: "w1", LeaveDate: day("2024-04-02"), LeaveType: domain.LeaveFullDay, ApprovalStatus: domain.LeavePending}

	approved, err := pending.Transition(domain.LeaveApproved)
	require.NoError(t, err)
	assert.Equal(t, domain.LeaveApproved, approved.ApprovalStatus)

	rejected, err := pending.Transition(domain.LeaveRejected)
	require.NoError(t, err)
	assert.Equal(t, domain.LeaveRejected, rejected.ApprovalStatus)

	_, err = approved.Transition(domain.LeaveRejected)
	assert.ErrorIs(t, err, apperrors.ErrInvalidTransition)

	_, err = rejected.Transition(domain.LeaveApproved)
	assert.ErrorIs(t, err, apperrors.ErrInvalidTransition)

	_, err = pending.Transition(domain.LeavePending)
	assert.ErrorIs(t, err, apperrors.ErrInvalidTransition)
}

func TestLeaveType_DayFraction(t *testing.T) {
	assert.True(t, domain.LeaveFullDay.DayFraction().Equal(decimal.NewFromInt(1)))
	assert.True(t, domain.LeaveHalfDay.DayFraction().Equal(decimal.RequireFromString("0.5")))
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		entity  interface{ Validate() error }
		wantErr bool
	}{
		{"valid cart", domain.Cart{Name: "Main Street"}, false},
		{"cart without name", domain.Cart{}, true},
		{"valid sale", domain.SalesRecord{Date: day("2024-03-01"), CartID: "c1", Amount: decimal.NewFromInt(10)}, false},
		{"negative sale", domain.SalesRecord{Date: day("2024-03-01"), CartID: "c1", Amount: decimal.NewFromInt(-1)}, true},
		{"sale without date", domain.SalesRecord{CartID: "c1", Amount: decimal.NewFromInt(1)}, true},
		{"expense without name", domain.Expense{Date: day("2024-03-01"), Amount: decimal.NewFromInt(1)}, true},
		{"inventory negative threshold", domain.InventoryItem{Name: "Milk", Unit: "l", Threshold: decimal.NewFromInt(-2)}, true},
		{"payment with unknown status", domain.Payment{Date: day("2024-03-01"), Amount: decimal.NewFromInt(1), Status: "sent"}, true},
		{"worker with unknown wage type", domain.Worker{Name: "Asha", PaymentType: "hourly"}, true},
		{"worker payment advance", domain.WorkerPayment{WorkerID: "w1", PaymentDate: day("2024-03-01"), Amount: decimal.NewFromInt(100), PaymentType: domain.PayAdvance}, false},
		{"leave with bad type", domain.WorkerLeave{WorkerID: "w1", LeaveDate: day("2024-03-01"), LeaveType: "quarter_day"}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.entity.Validate()
			if tt.wantErr {
				assert.ErrorIs(t, err, apperrors.ErrValidation)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestInventoryItem_IsLowStock(t *testing.T) {
	item := domain.InventoryItem{Quantity: decimal.NewFromInt(5), Threshold: decimal.NewFromInt(5)}
	assert.True(t, item.IsLowStock(), "equal to threshold is low")

	item.Quantity = decimal.NewFromInt(6)
	assert.False(t, item.IsLowStock())
}

func TestWorker_ActiveWage(t *testing.T) {
	w := domain.Worker{PaymentType: domain.WageMonthly, MonthlySalary: decimal.NewFromInt(30000), DailyWage: decimal.NewFromInt(900)}
	assert.True(t, w.ActiveWage().Equal(decimal.NewFromInt(30000)))

	w.PaymentType = domain.WageDaily
	assert.True(t, w.ActiveWage().Equal(decimal.NewFromInt(900)))
}
