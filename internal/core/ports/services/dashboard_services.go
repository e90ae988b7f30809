package services

import (
	"context"
	"time"

	"github.com/SscSPs/bizdash/internal/core/domain"
)

// DashboardSvc composes the derived figures shown on the dashboard and reports screens.
// Every method returns apperrors.ErrNotReady until the entity store has loaded.
type DashboardSvc interface {
	DashboardSummary(ctx context.Context, day time.Time) (domain.DashboardSummary, error)
	MonthlyReport(ctx context.Context, month domain.Month) (domain.MonthlyReport, error)
	// WorkerSalary returns apperrors.ErrNotFound for unknown workers and
	// apperrors.ErrValidation for daily-paid ones.
	WorkerSalary(ctx context.Context, workerID string, month domain.Month) (domain.WorkerSalary, error)
	LowStock(ctx context.Context) ([]domain.InventoryItem, error)
}
