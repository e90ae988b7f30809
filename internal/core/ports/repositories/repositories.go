package repositories

import "github.com/SscSPs/bizdash/internal/core/domain"

// RepositoryProvider holds all repository interfaces needed by the store and services.
type RepositoryProvider struct {
	Carts          TableService[domain.Cart]
	Sales          TableService[domain.SalesRecord]
	Expenses       TableService[domain.Expense]
	Inventory      TableService[domain.InventoryItem]
	Payments       TableService[domain.Payment]
	Workers        TableService[domain.Worker]
	WorkerPayments TableService[domain.WorkerPayment]
	WorkerLeaves   TableService[domain.WorkerLeave]
	Absences       AbsenceRecorder
	UserRepo       UserRepositoryFacade
}
