package pgsql

import (
	"github.com/SscSPs/bizdash/internal/apperrors"
	"github.com/SscSPs/bizdash/internal/core/domain"
	portsrepo "github.com/SscSPs/bizdash/internal/core/ports/repositories"
	"github.com/SscSPs/bizdash/internal/models"
	"github.com/SscSPs/bizdash/internal/utils/mapping"
	"github.com/jackc/pgx/v5/pgxpool"
)

func newCartTable(pool *pgxpool.Pool) *PgxTableRepository[models.Cart, domain.Cart] {
	return newPgxTableRepository(pool, tableDef[models.Cart, domain.Cart]{
		table:       "carts",
		columns:     []string{"id", "name"},
		orderBy:     "name",
		toDomain:    mapping.ToDomainCart,
		toModel:     mapping.ToModelCart,
		values:      func(m models.Cart) []any { return []any{m.ID, m.Name} },
		deleteInUse: apperrors.ErrCartInUse,
	})
}

func newSalesTable(pool *pgxpool.Pool) *PgxTableRepository[models.SalesRecord, domain.SalesRecord] {
	return newPgxTableRepository(pool, tableDef[models.SalesRecord, domain.SalesRecord]{
		table:    "sales",
		columns:  []string{"id", "date", "cart_id", "amount"},
		orderBy:  "date DESC, id",
		toDomain: mapping.ToDomainSalesRecord,
		toModel:  mapping.ToModelSalesRecord,
		values: func(m models.SalesRecord) []any {
			return []any{m.ID, m.Date, m.CartID, m.Amount}
		},
	})
}

func newExpenseTable(pool *pgxpool.Pool) *PgxTableRepository[models.Expense, domain.Expense] {
	return newPgxTableRepository(pool, tableDef[models.Expense, domain.Expense]{
		table:    "expenses",
		columns:  []string{"id", "date", "amount", "name", "description"},
		orderBy:  "date DESC, id",
		toDomain: mapping.ToDomainExpense,
		toModel:  mapping.ToModelExpense,
		values: func(m models.Expense) []any {
			return []any{m.ID, m.Date, m.Amount, m.Name, m.Description}
		},
	})
}

func newInventoryTable(pool *pgxpool.Pool) *PgxTableRepository[models.InventoryItem, domain.InventoryItem] {
	return newPgxTableRepository(pool, tableDef[models.InventoryItem, domain.InventoryItem]{
		table:    "inventory",
		columns:  []string{"id", "name", "quantity", "unit", "threshold", "price", "last_updated"},
		orderBy:  "name",
		toDomain: mapping.ToDomainInventoryItem,
		toModel:  mapping.ToModelInventoryItem,
		values: func(m models.InventoryItem) []any {
			return []any{m.ID, m.Name, m.Quantity, m.Unit, m.Threshold, m.Price, m.LastUpdated}
		},
	})
}

func newPaymentTable(pool *pgxpool.Pool) *PgxTableRepository[models.Payment, domain.Payment] {
	return newPgxTableRepository(pool, tableDef[models.Payment, domain.Payment]{
		table:    "payments",
		columns:  []string{"id", "date", "amount", "status", "notes"},
		orderBy:  "date DESC, id",
		toDomain: mapping.ToDomainPayment,
		toModel:  mapping.ToModelPayment,
		values: func(m models.Payment) []any {
			return []any{m.ID, m.Date, m.Amount, m.Status, m.Notes}
		},
	})
}

func newWorkerTable(pool *pgxpool.Pool) *PgxTableRepository[models.Worker, domain.Worker] {
	return newPgxTableRepository(pool, tableDef[models.Worker, domain.Worker]{
		table:    "workers",
		columns:  []string{"id", "name", "payment_type", "monthly_salary", "daily_wage", "phone", "joined_on"},
		orderBy:  "name",
		toDomain: mapping.ToDomainWorker,
		toModel:  mapping.ToModelWorker,
		values: func(m models.Worker) []any {
			return []any{m.ID, m.Name, m.PaymentType, m.MonthlySalary, m.DailyWage, m.Phone, m.JoinedOn}
		},
		deleteInUse: apperrors.ErrWorkerInUse,
	})
}

func newWorkerPaymentTable(pool *pgxpool.Pool) *PgxTableRepository[models.WorkerPayment, domain.WorkerPayment] {
	return newPgxTableRepository(pool, tableDef[models.WorkerPayment, domain.WorkerPayment]{
		table:    "worker_payments",
		columns:  []string{"id", "worker_id", "amount", "payment_date", "payment_type", "notes"},
		orderBy:  "payment_date DESC, id",
		toDomain: mapping.ToDomainWorkerPayment,
		toModel:  mapping.ToModelWorkerPayment,
		values: func(m models.WorkerPayment) []any {
			return []any{m.ID, m.WorkerID, m.Amount, m.PaymentDate, m.PaymentType, m.Notes}
		},
	})
}

// The leave table accepts any approval_status on update; transition rules live in the store.
func newWorkerLeaveTable(pool *pgxpool.Pool) *PgxTableRepository[models.WorkerLeave, domain.WorkerLeave] {
	return newPgxTableRepository(pool, tableDef[models.WorkerLeave, domain.WorkerLeave]{
		table:    "worker_leaves",
		columns:  []string{"id", "worker_id", "leave_date", "leave_type", "reason", "approval_status"},
		orderBy:  "leave_date DESC, id",
		toDomain: mapping.ToDomainWorkerLeave,
		toModel:  mapping.ToModelWorkerLeave,
		values: func(m models.WorkerLeave) []any {
			return []any{m.ID, m.WorkerID, m.LeaveDate, m.LeaveType, m.Reason, m.ApprovalStatus}
		},
	})
}

// Ensure the table repositories implement the ports
var (
	_ portsrepo.TableService[domain.Cart]          = (*PgxTableRepository[models.Cart, domain.Cart])(nil)
	_ portsrepo.TableService[domain.WorkerLeave]   = (*PgxTableRepository[models.WorkerLeave, domain.WorkerLeave])(nil)
	_ portsrepo.TableService[domain.WorkerPayment] = (*PgxTableRepository[models.WorkerPayment, domain.WorkerPayment])(nil)
)
