package accounting

import (
	"testing"

	"github.com/SscSPs/bizdash/internal/core/domain"
	"github.com/stretchr/testify/assert"
)

func TestWorkingDaysInMonth(t *testing.T) {
	tests := []struct {
		month string
		want  int
	}{
		{"2024-04", 22},
		{"2024-02", 21},
		{"2024-03", 21},
		{"2023-12", 21},
	}
	for _, tt := range tests {
		t.Run(tt.month, func(t *testing.T) {
			assert.Equal(t, tt.want, WorkingDaysInMonth(month(tt.month)))
		})
	}
}

func salaryFixture() (domain.Worker, []domain.WorkerLeave) {
	worker := domain.Worker{ID: "w1", Name: "Asha", PaymentType: domain.WageMonthly, MonthlySalary: dec("30000")}
	leaves := []domain.WorkerLeave{
		{ID: "l1", WorkerID: "w1", LeaveDate: day("2024-04-08"), LeaveType: domain.LeaveFullDay, ApprovalStatus: domain.LeaveApproved},
		{ID: "l2", WorkerID: "w1", LeaveDate: day("2024-04-09"), LeaveType: domain.LeaveHalfDay, ApprovalStatus: domain.LeaveApproved},
		{ID: "l3", WorkerID: "w1", LeaveDate: day("2024-04-10"), LeaveType: domain.LeaveFullDay, ApprovalStatus: domain.LeavePending},
		{ID: "l4", WorkerID: "w1", LeaveDate: day("2024-04-11"), LeaveType: domain.LeaveFullDay, ApprovalStatus: domain.LeaveRejected},
		{ID: "l5", WorkerID: "w1", LeaveDate: day("2024-05-02"), LeaveType: domain.LeaveFullDay, ApprovalStatus: domain.LeaveApproved},
		{ID: "l6", WorkerID: "w2", LeaveDate: day("2024-04-12"), LeaveType: domain.LeaveFullDay, ApprovalStatus: domain.LeaveApproved},
	}
	return worker, leaves
}

func TestSalaryAfterLeaves_Example(t *testing.T) {
	worker, leaves := salaryFixture()
	april := month("2024-04")

	assert.Equal(t, LeaveTally{FullDays: 1, HalfDays: 1}, ApprovedLeaves(worker.ID, leaves, april))
	assert.Equal(t, "1363.64", PerDayRate(worker, april).StringFixed(2))
	assert.Equal(t, "2045.45", LeaveDeduction(worker, leaves, april).StringFixed(2))
	assert.Equal(t, "27954.55", SalaryAfterLeaves(worker, leaves, april).StringFixed(2))
}

func TestSalaryAfterLeaves_DailyWorker(t *testing.T) {
	worker := domain.Worker{ID: "w9", PaymentType: domain.WageDaily, DailyWage: dec("600")}
	assert.True(t, SalaryAfterLeaves(worker, nil, month("2024-04")).IsZero())
}

func TestRemainingMonthlySalary(t *testing.T) {
	worker, leaves := salaryFixture()
	payments := []domain.WorkerPayment{
		{WorkerID: "w1", PaymentDate: day("2024-04-30"), Amount: dec("20000"), PaymentType: domain.PayMonthlySalary},
		{WorkerID: "w1", PaymentDate: day("2024-04-05"), Amount: dec("2000"), PaymentType: domain.PayAdvance},
		{WorkerID: "w1", PaymentDate: day("2024-04-06"), Amount: dec("999"), PaymentType: domain.PayDailyWage},
		{WorkerID: "w1", PaymentDate: day("2024-03-30"), Amount: dec("5000"), PaymentType: domain.PayAdvance},
		{WorkerID: "w2", PaymentDate: day("2024-04-30"), Amount: dec("7000"), PaymentType: domain.PayMonthlySalary},
	}

	got := RemainingMonthlySalary(worker, leaves, payments, month("2024-04"))
	assert.Equal(t, "5954.55", got.StringFixed(2))
}
