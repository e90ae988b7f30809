package dto

import (
	"github.com/SscSPs/bizdash/internal/core/domain"
	"github.com/shopspring/decimal"
)

// DashboardParams selects the day shown on the dashboard; today when omitted.
type DashboardParams struct {
	Date string `form:"date" binding:"omitempty,datetime=2006-01-02"`
}

// MonthParams selects a calendar month; the current month when omitted.
type MonthParams struct {
	Month string `form:"month" binding:"omitempty,datetime=2006-01"`
}

type DashboardResponse struct {
	Date                 string                  `json:"date"`
	Month                string                  `json:"month"`
	DailySales           decimal.Decimal         `json:"dailySales"`
	DailyExpenses        decimal.Decimal         `json:"dailyExpenses"`
	DailyWorkerPayments  decimal.Decimal         `json:"dailyWorkerPayments"`
	DailyProfit          decimal.Decimal         `json:"dailyProfit"`
	MonthlySales         decimal.Decimal         `json:"monthlySales"`
	MonthlyProfit        decimal.Decimal         `json:"monthlyProfit"`
	MonthlyNetProfit     decimal.Decimal         `json:"monthlyNetProfit"`
	PartnerShare         decimal.Decimal         `json:"partnerShare"`
	PartnerPaid          decimal.Decimal         `json:"partnerPaid"`
	PendingSettlement    decimal.Decimal         `json:"pendingSettlement"`
	LowStockItems        []InventoryItemResponse `json:"lowStockItems"`
	PendingLeaveRequests int                     `json:"pendingLeaveRequests"`
}

func ToDashboardResponse(s domain.DashboardSummary) DashboardResponse {
	return DashboardResponse{
		Date:                 FormatDay(s.Date),
		Month:                s.Month,
		DailySales:           s.DailySales,
		DailyExpenses:        s.DailyExpenses,
		DailyWorkerPayments:  s.DailyWorkerPayments,
		DailyProfit:          s.DailyProfit,
		MonthlySales:         s.MonthlySales,
		MonthlyProfit:        s.MonthlyProfit,
		MonthlyNetProfit:     s.MonthlyNetProfit,
		PartnerShare:         s.PartnerShare,
		PartnerPaid:          s.PartnerPaid,
		PendingSettlement:    s.PendingSettlement,
		LowStockItems:        ToList(s.LowStockItems, ToInventoryItemResponse).Data,
		PendingLeaveRequests: s.PendingLeaveRequests,
	}
}

type DailyRowResponse struct {
	Date           string          `json:"date"`
	Sales          decimal.Decimal `json:"sales"`
	Expenses       decimal.Decimal `json:"expenses"`
	WorkerPayments decimal.Decimal `json:"workerPayments"`
	Profit         decimal.Decimal `json:"profit"`
}

type MonthlyReportResponse struct {
	Month                  string             `json:"month"`
	Sales                  decimal.Decimal    `json:"sales"`
	Expenses               decimal.Decimal    `json:"expenses"`
	WorkerPayments         decimal.Decimal    `json:"workerPayments"`
	Profit                 decimal.Decimal    `json:"profit"`
	CompletedPartnerPaid   decimal.Decimal    `json:"completedPartnerPaid"`
	PendingPartnerPayments decimal.Decimal    `json:"pendingPartnerPayments"`
	NetProfit              decimal.Decimal    `json:"netProfit"`
	PartnerShare           decimal.Decimal    `json:"partnerShare"`
	PendingSettlement      decimal.Decimal    `json:"pendingSettlement"`
	Days                   []DailyRowResponse `json:"days"`
	SalesByCart            []domain.CartTotal `json:"salesByCart"`
}

func ToMonthlyReportResponse(r domain.MonthlyReport) MonthlyReportResponse {
	days := make([]DailyRowResponse, len(r.Days))
	for i, d := range r.Days {
		days[i] = DailyRowResponse{
			Date:           FormatDay(d.Date),
			Sales:          d.Sales,
			Expenses:       d.Expenses,
			WorkerPayments: d.WorkerPayments,
			Profit:         d.Profit,
		}
	}
	return MonthlyReportResponse{
		Month:                  r.Month,
		Sales:                  r.Sales,
		Expenses:               r.Expenses,
		WorkerPayments:         r.WorkerPayments,
		Profit:                 r.Profit,
		CompletedPartnerPaid:   r.CompletedPartnerPaid,
		PendingPartnerPayments: r.PendingPartnerPayments,
		NetProfit:              r.NetProfit,
		PartnerShare:           r.PartnerShare,
		PendingSettlement:      r.PendingSettlement,
		Days:                   days,
		SalesByCart:            r.SalesByCart,
	}
}

// WorkerSalaryResponse is the payroll position of a monthly worker.
type WorkerSalaryResponse struct {
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

func ToWorkerSalaryResponse(s domain.WorkerSalary) WorkerSalaryResponse {
	return WorkerSalaryResponse(s)
}
