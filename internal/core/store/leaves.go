package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/SscSPs/bizdash/internal/apperrors"
	"github.com/SscSPs/bizdash/internal/core/domain"
	"github.com/SscSPs/bizdash/internal/notify"
)

func leaveList(d *domain.Snapshot) *[]domain.WorkerLeave { return &d.WorkerLeaves }

func (s *Store) leave(id string) (domain.WorkerLeave, error) {
	leave, ok := find(s, func(d *domain.Snapshot) []domain.WorkerLeave { return d.WorkerLeaves }, id)
	if !ok {
		return domain.WorkerLeave{}, fmt.Errorf("worker leave %s: %w", id, apperrors.ErrNotFound)
	}
	return leave, nil
}

// AddWorkerLeave records a leave request. Whatever status is passed in, a new
// leave always starts pending.
func (s *Store) AddWorkerLeave(ctx context.Context, leave domain.WorkerLeave) (domain.WorkerLeave, error) {
	leave.ApprovalStatus = domain.LeavePending
	return create(ctx, s, entityWorkerLeave, s.repos.WorkerLeaves, leaveList, leave)
}

// UpdateWorkerLeave edits the date, type or reason of a leave. The approval
// status is kept as stored; use ApproveLeave or RejectLeave to change it.
func (s *Store) UpdateWorkerLeave(ctx context.Context, leave domain.WorkerLeave) (domain.WorkerLeave, error) {
	current, err := s.leave(leave.ID)
	if err != nil {
		return domain.WorkerLeave{}, err
	}
	leave.ApprovalStatus = current.ApprovalStatus
	return update(ctx, s, entityWorkerLeave, s.repos.WorkerLeaves, leaveList, leave)
}

func (s *Store) DeleteWorkerLeave(ctx context.Context, id string) error {
	return remove(ctx, s, entityWorkerLeave, s.repos.WorkerLeaves, leaveList, id)
}

// ApproveLeave moves a pending leave to approved.
func (s *Store) ApproveLeave(ctx context.Context, id string) (domain.WorkerLeave, error) {
	return s.resolveLeave(ctx, id, domain.LeaveApproved)
}

// RejectLeave moves a pending leave to rejected.
func (s *Store) RejectLeave(ctx context.Context, id string) (domain.WorkerLeave, error) {
	return s.resolveLeave(ctx, id, domain.LeaveRejected)
}

// resolveLeave applies a status transition. A leave that is no longer pending is
// refused with apperrors.ErrInvalidTransition even though the table itself would
// accept the overwrite.
func (s *Store) resolveLeave(ctx context.Context, id string, to domain.ApprovalStatus) (domain.WorkerLeave, error) {
	current, err := s.leave(id)
	if err != nil {
		return domain.WorkerLeave{}, err
	}
	next, err := current.Transition(to)
	if err != nil {
		if errors.Is(err, apperrors.ErrInvalidTransition) {
			return domain.WorkerLeave{}, s.rejected(ctx, entityWorkerLeave, opUpdate, id, notify.KindLeaveResolved,
				apperrors.ErrInvalidTransition, fmt.Sprintf("Leave is already %s", current.ApprovalStatus))
		}
		return domain.WorkerLeave{}, err
	}
	return update(ctx, s, entityWorkerLeave, s.repos.WorkerLeaves, leaveList, next)
}
