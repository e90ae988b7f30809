package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// DashboardSummary holds the figures shown on the dashboard for one day and its month.
type DashboardSummary struct {
	Date                 time.Time       `json:"date"`
	Month                string          `json:"month"`
	DailySales           decimal.Decimal `json:"dailySales"`
	DailyExpenses        decimal.Decimal `json:"dailyExpenses"`
	DailyWorkerPayments  decimal.Decimal `json:"dailyWorkerPayments"`
	DailyProfit          decimal.Decimal `json:"dailyProfit"`
	MonthlySales         decimal.Decimal `json:"monthlySales"`
	MonthlyProfit        decimal.Decimal `json:"monthlyProfit"`
	MonthlyNetProfit     decimal.Decimal `json:"monthlyNetProfit"`
	PartnerShare         decimal.Decimal `json:"partnerShare"`
	PartnerPaid          decimal.Decimal `json:"partnerPaid"`
	PendingSettlement    decimal.Decimal `json:"pendingSettlement"`
	LowStockItems        []InventoryItem `json:"lowStockItems"`
	PendingLeaveRequests int             `json:"pendingLeaveRequests"`
}

// DailyRow is one day of a monthly series, used for the report charts.
type DailyRow struct {
	Date           time.Time       `json:"date"`
	Sales          decimal.Decimal `json:"sales"`
	Expenses       decimal.Decimal `json:"expenses"`
	WorkerPayments decimal.Decimal `json:"workerPayments"`
	Profit         decimal.Decimal `json:"profit"`
}

// CartTotal is the revenue of one cart over a period.
type CartTotal struct {
	CartID   string          `json:"cartId"`
	CartName string          `json:"cartName"`
	Total    decimal.Decimal `json:"total"`
}

// MonthlyReport aggregates one calendar month.
type MonthlyReport struct {
	Month                  string          `json:"month"`
	Sales                  decimal.Decimal `json:"sales"`
	Expenses               decimal.Decimal `json:"expenses"`
	WorkerPayments         decimal.Decimal `json:"workerPayments"`
	Profit                 decimal.Decimal `json:"profit"`
	CompletedPartnerPaid   decimal.Decimal `json:"completedPartnerPaid"`
	PendingPartnerPayments decimal.Decimal `json:"pendingPartnerPayments"`
	NetProfit              decimal.Decimal `json:"netProfit"`
	PartnerShare           decimal.Decimal `json:"partnerShare"`
	PendingSettlement      decimal.Decimal `json:"pendingSettlement"`
	Days                   []DailyRow      `json:"days"`
	SalesByCart            []CartTotal     `json:"salesByCart"`
}

// WorkerSalary is the payroll position of a monthly worker for one month.
type WorkerSalary struct {
	WorkerID          string          `json:"workerId"`
	WorkerName        string          `json:"workerName"`
	Month             string          `json:"month"`
	MonthlySalary     decimal.Decimal `json:"monthlySalary"`
	WorkingDays       int             `json:"workingDays"`
	PerDayRate        decimal.Decimal `json:"perDayRate"`
	ApprovedFullDays  int             `json:"approvedFullDays"`
	ApprovedHalfDays  int             `json:"approvedHalfDays"`
	LeaveDeduction    decimal.Decimal `json:"leaveDeduction"`
	SalaryAfterLeaves decimal.Decimal `json:"salaryAfterLeaves"`
	SalaryPaid        decimal.Decimal `json:"salaryPaid"`
	AdvancesPaid      decimal.Decimal `json:"advancesPaid"`
	Remaining         decimal.Decimal `json:"remaining"`
}
