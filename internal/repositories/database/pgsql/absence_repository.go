package pgsql

import (
	"context"
	"fmt"

	"github.com/SscSPs/bizdash/internal/core/domain"
	portsrepo "github.com/SscSPs/bizdash/internal/core/ports/repositories"
	"github.com/SscSPs/bizdash/internal/models"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PgxAbsenceRepository writes a leave and its companion payment in one transaction.
type PgxAbsenceRepository struct {
	BaseRepository
	leaves   *PgxTableRepository[models.WorkerLeave, domain.WorkerLeave]
	payments *PgxTableRepository[models.WorkerPayment, domain.WorkerPayment]
}

func newPgxAbsenceRepository(
	pool *pgxpool.Pool,
	leaves *PgxTableRepository[models.WorkerLeave, domain.WorkerLeave],
	payments *PgxTableRepository[models.WorkerPayment, domain.WorkerPayment],
) *PgxAbsenceRepository {
	return &PgxAbsenceRepository{
		BaseRepository: BaseRepository{Pool: pool},
		leaves:         leaves,
		payments:       payments,
	}
}

var _ portsrepo.AbsenceRecorder = (*PgxAbsenceRepository)(nil)

// RecordAbsence inserts leave and the optional payment atomically.
func (r *PgxAbsenceRepository) RecordAbsence(ctx context.Context, leave domain.WorkerLeave, payment *domain.WorkerPayment) (domain.WorkerLeave, *domain.WorkerPayment, error) {
	tx, err := r.Begin(ctx)
	if err != nil {
		return domain.WorkerLeave{}, nil, err
	}
	defer r.Rollback(ctx, tx) //nolint:errcheck

	storedLeave, err := r.leaves.insert(ctx, tx, leave)
	if err != nil {
		return domain.WorkerLeave{}, nil, fmt.Errorf("failed to record absence leave: %w", err)
	}

	var storedPayment *domain.WorkerPayment
	if payment != nil {
		p, err := r.payments.insert(ctx, tx, *payment)
		if err != nil {
			return domain.WorkerLeave{}, nil, fmt.Errorf("failed to record absence payment: %w", err)
		}
		storedPayment = &p
	}

	if err := r.Commit(ctx, tx); err != nil {
		return domain.WorkerLeave{}, nil, err
	}
	return storedLeave, storedPayment, nil
}
