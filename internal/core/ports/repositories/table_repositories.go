package repositories

import (
	"context"

	"github.com/SscSPs/bizdash/internal/core/domain"
)

// TableReader defines read operations for a remote table
type TableReader[T any] interface {
	// Select fetches every row of the table.
	Select(ctx context.Context) ([]T, error)
}

// TableWriter defines write operations for a remote table
type TableWriter[T any] interface {
	// Insert stores a new row and returns it as stored, with its id assigned.
	Insert(ctx context.Context, row T) (T, error)

	// Update overwrites the row with the same id. Returns apperrors.ErrNotFound when no row matched.
	Update(ctx context.Context, row T) error

	// Delete removes the row with the given id. Returns apperrors.ErrNotFound when no row matched.
	Delete(ctx context.Context, id string) error
}

// TableService combines the read and write operations of a remote table.
// Every call may fail; callers never retry.
type TableService[T any] interface {
	TableReader[T]
	TableWriter[T]
}

// AbsenceRecorder stores a leave and the payment recorded alongside it as one unit.
type AbsenceRecorder interface {
	// RecordAbsence inserts leave and, when payment is non-nil, payment in a single transaction.
	RecordAbsence(ctx context.Context, leave domain.WorkerLeave, payment *domain.WorkerPayment) (domain.WorkerLeave, *domain.WorkerPayment, error)
}
