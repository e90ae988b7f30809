package accounting

import (
	"time"

	"github.com/SscSPs/bizdash/internal/core/domain"
	"github.com/shopspring/decimal"
)

// PartnerShareRatio is the fraction of monthly profit owed to the partner.
var PartnerShareRatio = decimal.NewFromFloat(0.5)

// TotalByDate sums the amounts of records booked on day.
func TotalByDate[T domain.Dated](records []T, day time.Time) decimal.Decimal {
	total := decimal.Zero
	for _, r := range records {
		if domain.SameDay(r.RecordDate(), day) {
			total = total.Add(r.RecordAmount())
		}
	}
	return total
}

// TotalByMonth sums the amounts of records booked inside month.
func TotalByMonth[T domain.Dated](records []T, month domain.Month) decimal.Decimal {
	total := decimal.Zero
	for _, r := range records {
		if month.Contains(r.RecordDate()) {
			total = total.Add(r.RecordAmount())
		}
	}
	return total
}

// DailyProfit is sales minus expenses and worker payments for one day.
func DailyProfit(snap domain.Snapshot, day time.Time) decimal.Decimal {
	costs := TotalByDate(snap.Expenses, day).Add(TotalByDate(snap.WorkerPayments, day))
	return TotalByDate(snap.Sales, day).Sub(costs)
}

// MonthlyProfit is sales minus expenses and worker payments for one month.
func MonthlyProfit(snap domain.Snapshot, month domain.Month) decimal.Decimal {
	costs := TotalByMonth(snap.Expenses, month).Add(TotalByMonth(snap.WorkerPayments, month))
	return TotalByMonth(snap.Sales, month).Sub(costs)
}

// CompletedPartnerPayments sums the completed partner payments of a month.
func CompletedPartnerPayments(snap domain.Snapshot, month domain.Month) decimal.Decimal {
	return partnerPaymentsWithStatus(snap.Payments, month, domain.PaymentCompleted)
}

// PendingPartnerPayments sums the partner payments of a month that are not yet completed.
func PendingPartnerPayments(snap domain.Snapshot, month domain.Month) decimal.Decimal {
	return partnerPaymentsWithStatus(snap.Payments, month, domain.PaymentPending)
}

func partnerPaymentsWithStatus(payments []domain.Payment, month domain.Month, status domain.PaymentStatus) decimal.Decimal {
	total := decimal.Zero
	for _, p := range payments {
		if p.Status == status && month.Contains(p.Date) {
			total = total.Add(p.Amount)
		}
	}
	return total
}

// MonthlyNetProfit is the monthly profit left after completed partner payouts.
func MonthlyNetProfit(snap domain.Snapshot, month domain.Month) decimal.Decimal {
	return MonthlyProfit(snap, month).Sub(CompletedPartnerPayments(snap, month))
}

// PartnerShare is the partner's cut of a profit figure.
func PartnerShare(profit decimal.Decimal) decimal.Decimal {
	return profit.Mul(PartnerShareRatio)
}

// MonthlyPendingSettlement is what is still owed to the partner for the month.
// It is never negative, also when the month made a loss or was overpaid.
func MonthlyPendingSettlement(snap domain.Snapshot, month domain.Month) decimal.Decimal {
	owed := PartnerShare(MonthlyProfit(snap, month)).Sub(CompletedPartnerPayments(snap, month))
	return decimal.Max(decimal.Zero, owed)
}

// LowStockItems returns the items whose quantity is at or below their threshold.
func LowStockItems(items []domain.InventoryItem) []domain.InventoryItem {
	low := make([]domain.InventoryItem, 0)
	for _, item := range items {
		if item.IsLowStock() {
			low = append(low, item)
		}
	}
	return low
}
