package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/SscSPs/bizdash/internal/apperrors"
	"github.com/SscSPs/bizdash/internal/core/domain"
	portssvc "github.com/SscSPs/bizdash/internal/core/ports/services"
	"github.com/SscSPs/bizdash/internal/utils/accounting"
)

// SnapshotSource supplies the tables the dashboard derives its figures from.
// The entity store satisfies it.
type SnapshotSource interface {
	Snapshot() (domain.Snapshot, error)
}

// dashboardService implements the DashboardSvc interface
type dashboardService struct {
	BaseService
	source SnapshotSource
}

// NewDashboardService creates a dashboard service reading from source.
func NewDashboardService(source SnapshotSource) portssvc.DashboardSvc {
	return &dashboardService{BaseService: newBaseService("dashboard"), source: source}
}

var _ portssvc.DashboardSvc = (*dashboardService)(nil)

func (s *dashboardService) snapshot(ctx context.Context) (domain.Snapshot, error) {
	snap, err := s.source.Snapshot()
	if err != nil {
		s.LogDebug(ctx, "Snapshot unavailable", slog.String("error", err.Error()))
		return domain.Snapshot{}, err
	}
	return snap, nil
}

// DashboardSummary computes the figures for day and the month containing it.
func (s *dashboardService) DashboardSummary(ctx context.Context, day time.Time) (domain.DashboardSummary, error) {
	snap, err := s.snapshot(ctx)
	if err != nil {
		return domain.DashboardSummary{}, err
	}
	day = domain.DayOf(day)
	month := domain.MonthOf(day)

	pendingLeaves := 0
	for _, l := range snap.WorkerLeaves {
		if l.ApprovalStatus == domain.LeavePending {
			pendingLeaves++
		}
	}

	monthlyProfit := accounting.MonthlyProfit(snap, month)
	return domain.DashboardSummary{
		Date:                 day,
		Month:                month.String(),
		DailySales:           accounting.TotalByDate(snap.Sales, day),
		DailyExpenses:        accounting.TotalByDate(snap.Expenses, day),
		DailyWorkerPayments:  accounting.TotalByDate(snap.WorkerPayments, day),
		DailyProfit:          accounting.DailyProfit(snap, day),
		MonthlySales:         accounting.TotalByMonth(snap.Sales, month),
		MonthlyProfit:        monthlyProfit,
		MonthlyNetProfit:     accounting.MonthlyNetProfit(snap, month),
		PartnerShare:         accounting.PartnerShare(monthlyProfit),
		PartnerPaid:          accounting.CompletedPartnerPayments(snap, month),
		PendingSettlement:    accounting.MonthlyPendingSettlement(snap, month),
		LowStockItems:        accounting.LowStockItems(snap.Inventory),
		PendingLeaveRequests: pendingLeaves,
	}, nil
}

// MonthlyReport aggregates one calendar month for the reports screen.
func (s *dashboardService) MonthlyReport(ctx context.Context, month domain.Month) (domain.MonthlyReport, error) {
	snap, err := s.snapshot(ctx)
	if err != nil {
		return domain.MonthlyReport{}, err
	}
	profit := accounting.MonthlyProfit(snap, month)
	report := domain.MonthlyReport{
		Month:                  month.String(),
		Sales:                  accounting.TotalByMonth(snap.Sales, month),
		Expenses:               accounting.TotalByMonth(snap.Expenses, month),
		WorkerPayments:         accounting.TotalByMonth(snap.WorkerPayments, month),
		Profit:                 profit,
		CompletedPartnerPaid:   accounting.CompletedPartnerPayments(snap, month),
		PendingPartnerPayments: accounting.PendingPartnerPayments(snap, month),
		NetProfit:              accounting.MonthlyNetProfit(snap, month),
		PartnerShare:           accounting.PartnerShare(profit),
		PendingSettlement:      accounting.MonthlyPendingSettlement(snap, month),
		Days:                   accounting.DailySeries(snap, month),
		SalesByCart:            accounting.SalesByCart(snap, month),
	}
	s.LogDebug(ctx, "Monthly report generated", slog.String("month", report.Month), slog.Int("days", len(report.Days)))
	return report, nil
}

// WorkerSalary reports the payroll position of a monthly worker.
func (s *dashboardService) WorkerSalary(ctx context.Context, workerID string, month domain.Month) (domain.WorkerSalary, error) {
	snap, err := s.snapshot(ctx)
	if err != nil {
		return domain.WorkerSalary{}, err
	}

	var worker domain.Worker
	found := false
	for _, w := range snap.Workers {
		if w.ID == workerID {
			worker, found = w, true
			break
		}
	}
	if !found {
		return domain.WorkerSalary{}, fmt.Errorf("worker %s: %w", workerID, apperrors.ErrNotFound)
	}
	if !worker.IsMonthly() {
		return domain.WorkerSalary{}, fmt.Errorf("%w: %s is paid a daily wage", apperrors.ErrValidation, worker.Name)
	}

	tally := accounting.ApprovedLeaves(worker.ID, snap.WorkerLeaves, month)
	return domain.WorkerSalary{
		WorkerID:          worker.ID,
		WorkerName:        worker.Name,
		Month:             month.String(),
		MonthlySalary:     worker.MonthlySalary,
		WorkingDays:       accounting.WorkingDaysInMonth(month),
		PerDayRate:        accounting.PerDayRate(worker, month).Round(2),
		ApprovedFullDays:  tally.FullDays,
		ApprovedHalfDays:  tally.HalfDays,
		LeaveDeduction:    accounting.LeaveDeduction(worker, snap.WorkerLeaves, month).Round(2),
		SalaryAfterLeaves: accounting.SalaryAfterLeaves(worker, snap.WorkerLeaves, month).Round(2),
		SalaryPaid:        accounting.WorkerPaymentsOfType(worker.ID, snap.WorkerPayments, domain.PayMonthlySalary, month),
		AdvancesPaid:      accounting.WorkerPaymentsOfType(worker.ID, snap.WorkerPayments, domain.PayAdvance, month),
		Remaining:         accounting.RemainingMonthlySalary(worker, snap.WorkerLeaves, snap.WorkerPayments, month).Round(2),
	}, nil
}

// LowStock lists the items at or below their threshold.
func (s *dashboardService) LowStock(ctx context.Context) ([]domain.InventoryItem, error) {
	snap, err := s.snapshot(ctx)
	if err != nil {
		return nil, err
	}
	return accounting.LowStockItems(snap.Inventory), nil
}
