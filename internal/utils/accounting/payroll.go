package accounting

import (
	"time"

	"github.com/SscSPs/bizdash/internal/core/domain"
	"github.com/shopspring/decimal"
)

// WorkingDaysInMonth counts the Monday to Friday days of month.
func WorkingDaysInMonth(month domain.Month) int {
	count := 0
	first := month.First()
	for i := 0; i < month.Days(); i++ {
		switch first.AddDate(0, 0, i).Weekday() {
		case time.Saturday, time.Sunday:
		default:
			count++
		}
	}
	return count
}

// LeaveTally counts the approved leave days of one worker in one month.
type LeaveTally struct {
	FullDays int
	HalfDays int
}

// ApprovedLeaves tallies the approved leaves of workerID inside month.
// Pending and rejected leaves are ignored.
func ApprovedLeaves(workerID string, leaves []domain.WorkerLeave, month domain.Month) LeaveTally {
	var tally LeaveTally
	for _, l := range leaves {
		if l.WorkerID != workerID || !l.IsApproved() || !month.Contains(l.LeaveDate) {
			continue
		}
		switch l.LeaveType {
		case domain.LeaveFullDay:
			tally.FullDays++
		case domain.LeaveHalfDay:
			tally.HalfDays++
		}
	}
	return tally
}

// PerDayRate is the monthly salary spread over the working days of month.
func PerDayRate(worker domain.Worker, month domain.Month) decimal.Decimal {
	days := WorkingDaysInMonth(month)
	if days == 0 {
		return decimal.Zero
	}
	return worker.MonthlySalary.Div(decimal.NewFromInt(int64(days)))
}

// LeaveDeduction is the amount withheld for approved leave: a full rate per full day
// and half a rate per half day.
func LeaveDeduction(worker domain.Worker, leaves []domain.WorkerLeave, month domain.Month) decimal.Decimal {
	if !worker.IsMonthly() {
		return decimal.Zero
	}
	tally := ApprovedLeaves(worker.ID, leaves, month)
	days := decimal.NewFromInt(int64(tally.FullDays)).
		Add(decimal.NewFromInt(int64(tally.HalfDays)).Mul(domain.LeaveHalfDay.DayFraction()))
	return PerDayRate(worker, month).Mul(days)
}

// SalaryAfterLeaves is the monthly salary less the approved leave deduction.
// Daily-paid workers have no monthly salary and yield zero.
func SalaryAfterLeaves(worker domain.Worker, leaves []domain.WorkerLeave, month domain.Month) decimal.Decimal {
	if !worker.IsMonthly() {
		return decimal.Zero
	}
	return worker.MonthlySalary.Sub(LeaveDeduction(worker, leaves, month))
}

// WorkerPaymentsOfType sums the payments of one type made to workerID inside month.
func WorkerPaymentsOfType(workerID string, payments []domain.WorkerPayment, kind domain.WorkerPaymentType, month domain.Month) decimal.Decimal {
	total := decimal.Zero
	for _, p := range payments {
		if p.WorkerID == workerID && p.PaymentType == kind && month.Contains(p.PaymentDate) {
			total = total.Add(p.Amount)
		}
	}
	return total
}

// RemainingMonthlySalary is what is still owed to a monthly worker for month after
// salary payments and advances already made. It may go negative when overpaid.
func RemainingMonthlySalary(worker domain.Worker, leaves []domain.WorkerLeave, payments []domain.WorkerPayment, month domain.Month) decimal.Decimal {
	paid := WorkerPaymentsOfType(worker.ID, payments, domain.PayMonthlySalary, month).
		Add(WorkerPaymentsOfType(worker.ID, payments, domain.PayAdvance, month))
	return SalaryAfterLeaves(worker, leaves, month).Sub(paid)
}
