package store

import (
	"context"

	"github.com/SscSPs/bizdash/internal/core/domain"
)

func saleList(d *domain.Snapshot) *[]domain.SalesRecord { return &d.Sales }
func expenseList(d *domain.Snapshot) *[]domain.Expense { return &d.Expenses }
func paymentList(d *domain.Snapshot) *[]domain.Payment { return &d.Payments }

func (s *Store) AddSale(ctx context.Context, sale domain.SalesRecord) (domain.SalesRecord, error) {
	return create(ctx, s, entitySale, s.repos.Sales, saleList, sale)
}

func (s *Store) UpdateSale(ctx context.Context, sale domain.SalesRecord) (domain.SalesRecord, error) {
	return update(ctx, s, entitySale, s.repos.Sales, saleList, sale)
}

func (s *Store) DeleteSale(ctx context.Context, id string) error {
	return remove(ctx, s, entitySale, s.repos.Sales, saleList, id)
}

func (s *Store) AddExpense(ctx context.Context, expense domain.Expense) (domain.Expense, error) {
	return create(ctx, s, entityExpense, s.repos.Expenses, expenseList, expense)
}

func (s *Store) UpdateExpense(ctx context.Context, expense domain.Expense) (domain.Expense, error) {
	return update(ctx, s, entityExpense, s.repos.Expenses, expenseList, expense)
}

func (s *Store) DeleteExpense(ctx context.Context, id string) error {
	return remove(ctx, s, entityExpense, s.repos.Expenses, expenseList, id)
}

// AddPayment records a partner payment.
func (s *Store) AddPayment(ctx context.Context, payment domain.Payment) (domain.Payment, error) {
	return create(ctx, s, entityPayment, s.repos.Payments, paymentList, payment)
}

func (s *Store) UpdatePayment(ctx context.Context, payment domain.Payment) (domain.Payment, error) {
	return update(ctx, s, entityPayment, s.repos.Payments, paymentList, payment)
}

func (s *Store) DeletePayment(ctx context.Context, id string) error {
	return remove(ctx, s, entityPayment, s.repos.Payments, paymentList, id)
}
