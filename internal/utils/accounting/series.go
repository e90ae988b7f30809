package accounting

import (
	"sort"

	"github.com/SscSPs/bizdash/internal/core/domain"
	"github.com/shopspring/decimal"
)

// DailySeries returns one row per calendar day of month, including days without activity.
func DailySeries(snap domain.Snapshot, month domain.Month) []domain.DailyRow {
	rows := make([]domain.DailyRow, month.Days())
	first := month.First()
	for i := range rows {
		day := first.AddDate(0, 0, i)
		rows[i] = domain.DailyRow{
			Date:           day,
			Sales:          TotalByDate(snap.Sales, day),
			Expenses:       TotalByDate(snap.Expenses, day),
			WorkerPayments: TotalByDate(snap.WorkerPayments, day),
			Profit:         DailyProfit(snap, day),
		}
	}
	return rows
}

// SalesByCart totals the month's sales per cart, largest first.
// Sales whose cart no longer exists are grouped under their raw cart id.
func SalesByCart(snap domain.Snapshot, month domain.Month) []domain.CartTotal {
	names := make(map[string]string, len(snap.Carts))
	for _, c := range snap.Carts {
		names[c.ID] = c.Name
	}

	totals := make(map[string]decimal.Decimal)
	for _, s := range snap.Sales {
		if month.Contains(s.Date) {
			totals[s.CartID] = totals[s.CartID].Add(s.Amount)
		}
	}

	out := make([]domain.CartTotal, 0, len(totals))
	for id, total := range totals {
		name, ok := names[id]
		if !ok {
			name = id
		}
		out = append(out, domain.CartTotal{CartID: id, CartName: name, Total: total})
	}
	sort.Slice(out, func(i, j int) bool {
		if c := out[i].Total.Cmp(out[j].Total); c != 0 {
			return c > 0
		}
		return out[i].CartName < out[j].CartName
	})
	return out
}
