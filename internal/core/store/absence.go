package store

import (
	"context"
	"fmt"

	"github.com/SscSPs/bizdash/internal/apperrors"
	"github.com/SscSPs/bizdash/internal/core/domain"
	"github.com/SscSPs/bizdash/internal/metrics"
	"github.com/SscSPs/bizdash/internal/notify"
)

// RecordAbsence stores a leave together with an optional payment. The leave keeps
// an explicit approved status (the owner is recording it) and otherwise starts pending.
//
// With an AbsenceRecorder configured both rows are written in one transaction.
// Without one they are written one after the other; if the payment fails after the
// leave was stored, the leave stays and a partial-failure error is returned.
func (s *Store) RecordAbsence(ctx context.Context, leave domain.WorkerLeave, payment *domain.WorkerPayment) (domain.Absence, error) {
	if leave.ApprovalStatus != domain.LeaveApproved {
		leave.ApprovalStatus = domain.LeavePending
	}
	if err := leave.Validate(); err != nil {
		return domain.Absence{}, err
	}
	if payment != nil {
		if err := payment.Validate(); err != nil {
			return domain.Absence{}, err
		}
		if payment.WorkerID != leave.WorkerID {
			return domain.Absence{}, fmt.Errorf("%w: payment and leave must belong to the same worker", apperrors.ErrValidation)
		}
	}

	if s.repos.Absences == nil {
		return s.recordAbsenceSequentially(ctx, leave, payment)
	}

	storedLeave, storedPayment, err := s.repos.Absences.RecordAbsence(ctx, leave, payment)
	if err != nil {
		return domain.Absence{}, s.remoteFailure(ctx, entityWorkerLeave, opCreate, "", err)
	}

	s.mu.Lock()
	s.data.WorkerLeaves = append(s.data.WorkerLeaves, storedLeave)
	if storedPayment != nil {
		s.data.WorkerPayments = append(s.data.WorkerPayments, *storedPayment)
	}
	s.observeLocked()
	s.mu.Unlock()

	s.succeeded(ctx, entityWorkerLeave, opCreate, storedLeave.ID)
	if storedPayment != nil {
		metrics.StoreMutationsTotal.WithLabelValues(entityWorkerPayment, opCreate, metrics.OutcomeOK).Inc()
	}
	return domain.Absence{Leave: storedLeave, Payment: storedPayment}, nil
}

func (s *Store) recordAbsenceSequentially(ctx context.Context, leave domain.WorkerLeave, payment *domain.WorkerPayment) (domain.Absence, error) {
	storedLeave, err := create(ctx, s, entityWorkerLeave, s.repos.WorkerLeaves, leaveList, leave)
	if err != nil {
		return domain.Absence{}, err
	}
	out := domain.Absence{Leave: storedLeave}
	if payment == nil {
		return out, nil
	}

	storedPayment, err := create(ctx, s, entityWorkerPayment, s.repos.WorkerPayments, workerPaymentList, *payment)
	if err != nil {
		s.notify(ctx, notify.New(notify.LevelError, notify.KindPartialAbsence, entityWorkerLeave, storedLeave.ID,
			"Leave was recorded but the payment was not; record the payment again"))
		return out, fmt.Errorf("absence partially recorded: %w", err)
	}
	out.Payment = &storedPayment
	return out, nil
}
