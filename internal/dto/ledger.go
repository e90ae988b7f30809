package dto

import (
	"github.com/SscSPs/bizdash/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CartRequest is the body for creating or renaming a cart.
type CartRequest struct {
	Name string `json:"name" binding:"required,max=120"`
}

func (r CartRequest) ToDomain(id string) domain.Cart {
	return domain.Cart{ID: id, Name: r.Name}
}

type CartResponse struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

func ToCartResponse(c domain.Cart) CartResponse {
	return CartResponse{ID: c.ID, Name: c.Name}
}

// SaleRequest is the body for recording a cart's takings for a day.
type SaleRequest struct {
	Date   string           `json:"date" binding:"required,datetime=2006-01-02"`
	CartID string           `json:"cartId" binding:"required"`
	Amount *decimal.Decimal `json:"amount" binding:"required"`
}

func (r SaleRequest) ToDomain(id string) (domain.SalesRecord, error) {
	day, err := domain.ParseDay(r.Date)
	if err != nil {
		return domain.SalesRecord{}, err
	}
	return domain.SalesRecord{ID: id, Date: day, CartID: r.CartID, Amount: decimalOrZero(r.Amount)}, nil
}

type SaleResponse struct {
	ID     string          `json:"id"`
	Date   string          `json:"date"`
	CartID string          `json:"cartId"`
	Amount decimal.Decimal `json:"amount"`
}

func ToSaleResponse(s domain.SalesRecord) SaleResponse {
	return SaleResponse{ID: s.ID, Date: FormatDay(s.Date), CartID: s.CartID, Amount: s.Amount}
}

// ExpenseRequest is the body for recording money spent.
type ExpenseRequest struct {
	Date        string           `json:"date" binding:"required,datetime=2006-01-02"`
	Amount      *decimal.Decimal `json:"amount" binding:"required"`
	Name        string           `json:"name" binding:"required,max=200"`
	Description string           `json:"description" binding:"max=1000"`
}

func (r ExpenseRequest) ToDomain(id string) (domain.Expense, error) {
	day, err := domain.ParseDay(r.Date)
	if err != nil {
		return domain.Expense{}, err
	}
	return domain.Expense{ID: id, Date: day, Amount: decimalOrZero(r.Amount), Name: r.Name, Description: r.Description}, nil
}

type ExpenseResponse struct {
	ID          string          `json:"id"`
	Date        string          `json:"date"`
	Amount      decimal.Decimal `json:"amount"`
	Name        string          `json:"name"`
	Description string          `json:"description"`
}

func ToExpenseResponse(e domain.Expense) ExpenseResponse {
	return ExpenseResponse{ID: e.ID, Date: FormatDay(e.Date), Amount: e.Amount, Name: e.Name, Description: e.Description}
}

// PaymentRequest is the body for a partner profit-share payment.
type PaymentRequest struct {
	Date   string           `json:"date" binding:"required,datetime=2006-01-02"`
	Amount *decimal.Decimal `json:"amount" binding:"required"`
	Status string           `json:"status" binding:"required,oneof=completed pending"`
	Notes  string           `json:"notes" binding:"max=1000"`
}

func (r PaymentRequest) ToDomain(id string) (domain.Payment, error) {
	day, err := domain.ParseDay(r.Date)
	if err != nil {
		return domain.Payment{}, err
	}
	return domain.Payment{ID: id, Date: day, Amount: decimalOrZero(r.Amount), Status: domain.PaymentStatus(r.Status), Notes: r.Notes}, nil
}

type PaymentResponse struct {
	ID     string               `json:"id"`
	Date   string               `json:"date"`
	Amount decimal.Decimal      `json:"amount"`
	Status domain.PaymentStatus `json:"status"`
	Notes  string               `json:"notes"`
}

func ToPaymentResponse(p domain.Payment) PaymentResponse {
	return PaymentResponse{ID: p.ID, Date: FormatDay(p.Date), Amount: p.Amount, Status: p.Status, Notes: p.Notes}
}
