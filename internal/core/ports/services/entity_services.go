package services

import (
	"context"

	"github.com/SscSPs/bizdash/internal/core/domain"
	"github.com/shopspring/decimal"
)

// StoreAdminSvc exposes the lifecycle of the entity store.
type StoreAdminSvc interface {
	Ready() bool
	// Load refetches every table and replaces the in-memory copy.
	Load(ctx context.Context) error
}

type CartSvc interface {
	Carts() []domain.Cart
	AddCart(ctx context.Context, cart domain.Cart) (domain.Cart, error)
	UpdateCart(ctx context.Context, cart domain.Cart) (domain.Cart, error)
	// DeleteCart returns apperrors.ErrCartInUse while sales reference the cart.
	DeleteCart(ctx context.Context, id string) error
}

type SaleSvc interface {
	Sales() []domain.SalesRecord
	AddSale(ctx context.Context, sale domain.SalesRecord) (domain.SalesRecord, error)
	UpdateSale(ctx context.Context, sale domain.SalesRecord) (domain.SalesRecord, error)
	DeleteSale(ctx context.Context, id string) error
}

type ExpenseSvc interface {
	Expenses() []domain.Expense
	AddExpense(ctx context.Context, expense domain.Expense) (domain.Expense, error)
	UpdateExpense(ctx context.Context, expense domain.Expense) (domain.Expense, error)
	DeleteExpense(ctx context.Context, id string) error
}

type InventorySvc interface {
	Inventory() []domain.InventoryItem
	AddInventoryItem(ctx context.Context, item domain.InventoryItem) (domain.InventoryItem, error)
	UpdateInventoryItem(ctx context.Context, item domain.InventoryItem) (domain.InventoryItem, error)
	UpdateInventoryItemQuantity(ctx context.Context, id string, quantity decimal.Decimal) (domain.InventoryItem, error)
	// DeleteInventoryItem returns apperrors.ErrInventoryInStock while the quantity is positive.
	DeleteInventoryItem(ctx context.Context, id string) error
}

type PaymentSvc interface {
	Payments() []domain.Payment
	AddPayment(ctx context.Context, payment domain.Payment) (domain.Payment, error)
	UpdatePayment(ctx context.Context, payment domain.Payment) (domain.Payment, error)
	DeletePayment(ctx context.Context, id string) error
}

type WorkerSvc interface {
	Workers() []domain.Worker
	Worker(id string) (domain.Worker, bool)
	AddWorker(ctx context.Context, worker domain.Worker) (domain.Worker, error)
	UpdateWorker(ctx context.Context, worker domain.Worker) (domain.Worker, error)
	// DeleteWorker returns apperrors.ErrWorkerInUse while payments or leaves reference the worker.
	DeleteWorker(ctx context.Context, id string) error
}

type WorkerPaymentSvc interface {
	WorkerPayments() []domain.WorkerPayment
	AddWorkerPayment(ctx context.Context, payment domain.WorkerPayment) (domain.WorkerPayment, error)
	UpdateWorkerPayment(ctx context.Context, payment domain.WorkerPayment) (domain.WorkerPayment, error)
	DeleteWorkerPayment(ctx context.Context, id string) error
}

type WorkerLeaveSvc interface {
	WorkerLeaves() []domain.WorkerLeave
	AddWorkerLeave(ctx context.Context, leave domain.WorkerLeave) (domain.WorkerLeave, error)
	UpdateWorkerLeave(ctx context.Context, leave domain.WorkerLeave) (domain.WorkerLeave, error)
	DeleteWorkerLeave(ctx context.Context, id string) error
	// ApproveLeave and RejectLeave return apperrors.ErrInvalidTransition unless the leave is pending.
	ApproveLeave(ctx context.Context, id string) (domain.WorkerLeave, error)
	RejectLeave(ctx context.Context, id string) (domain.WorkerLeave, error)
}

type AbsenceSvc interface {
	RecordAbsence(ctx context.Context, leave domain.WorkerLeave, payment *domain.WorkerPayment) (domain.Absence, error)
}
