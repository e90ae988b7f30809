package pgsql

import (
	portsrepo "github.com/SscSPs/bizdash/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

func NewRepositoryProvider(dbPool *pgxpool.Pool) portsrepo.RepositoryProvider {
	leaves := newWorkerLeaveTable(dbPool)
	workerPayments := newWorkerPaymentTable(dbPool)

	return portsrepo.RepositoryProvider{
		Carts:          newCartTable(dbPool),
		Sales:          newSalesTable(dbPool),
		Expenses:       newExpenseTable(dbPool),
		Inventory:      newInventoryTable(dbPool),
		Payments:       newPaymentTable(dbPool),
		Workers:        newWorkerTable(dbPool),
		WorkerPayments: workerPayments,
		WorkerLeaves:   leaves,
		Absences:       newPgxAbsenceRepository(dbPool, leaves, workerPayments),
		UserRepo:       newPgxUserRepository(dbPool),
	}
}
