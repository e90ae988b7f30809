package store

import (
	"context"
	"fmt"

	"github.com/SscSPs/bizdash/internal/apperrors"
	"github.com/SscSPs/bizdash/internal/core/domain"
	"github.com/SscSPs/bizdash/internal/notify"
)

func workerList(d *domain.Snapshot) *[]domain.Worker { return &d.Workers }

func workerPaymentList(d *domain.Snapshot) *[]domain.WorkerPayment { return &d.WorkerPayments }

func (s *Store) AddWorker(ctx context.Context, worker domain.Worker) (domain.Worker, error) {
	return create(ctx, s, entityWorker, s.repos.Workers, workerList, worker)
}

func (s *Store) UpdateWorker(ctx context.Context, worker domain.Worker) (domain.Worker, error) {
	return update(ctx, s, entityWorker, s.repos.Workers, workerList, worker)
}

// DeleteWorker removes a worker. It is refused with apperrors.ErrWorkerInUse while
// payments or leaves still reference the worker.
func (s *Store) DeleteWorker(ctx context.Context, id string) error {
	payments, leaves := s.workerReferences(id)
	if payments+leaves > 0 {
		return s.rejected(ctx, entityWorker, opDelete, id, notify.KindWorkerInUse, apperrors.ErrWorkerInUse,
			fmt.Sprintf("Worker has %d payments and %d leaves and cannot be deleted", payments, leaves))
	}
	return remove(ctx, s, entityWorker, s.repos.Workers, workerList, id)
}

func (s *Store) workerReferences(workerID string) (payments, leaves int) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, p := range s.data.WorkerPayments {
		if p.WorkerID == workerID {
			payments++
		}
	}
	for _, l := range s.data.WorkerLeaves {
		if l.WorkerID == workerID {
			leaves++
		}
	}
	return payments, leaves
}

// Worker returns the in-memory worker with id.
func (s *Store) Worker(id string) (domain.Worker, bool) {
	return find(s, func(d *domain.Snapshot) []domain.Worker { return d.Workers }, id)
}

func (s *Store) AddWorkerPayment(ctx context.Context, payment domain.WorkerPayment) (domain.WorkerPayment, error) {
	return create(ctx, s, entityWorkerPayment, s.repos.WorkerPayments, workerPaymentList, payment)
}

func (s *Store) UpdateWorkerPayment(ctx context.Context, payment domain.WorkerPayment) (domain.WorkerPayment, error) {
	return update(ctx, s, entityWorkerPayment, s.repos.WorkerPayments, workerPaymentList, payment)
}

func (s *Store) DeleteWorkerPayment(ctx context.Context, id string) error {
	return remove(ctx, s, entityWorkerPayment, s.repos.WorkerPayments, workerPaymentList, id)
}
