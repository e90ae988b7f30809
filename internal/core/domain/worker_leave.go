package domain

import (
	"fmt"
	"time"

	"github.com/SscSPs/bizdash/internal/apperrors"
	"github.com/shopspring/decimal"
)

// LeaveType is the length of an absence.
type LeaveType string

const (
	LeaveFullDay LeaveType = "full_day"
	LeaveHalfDay LeaveType = "half_day"
)

// DayFraction is the share of a working day the leave covers.
func (t LeaveType) DayFraction() decimal.Decimal {
	if t == LeaveHalfDay {
		return decimal.NewFromFloat(0.5)
	}
	return decimal.NewFromInt(1)
}

// ApprovalStatus is the state of a leave request.
// pending is initial; approved and rejected are terminal.
type ApprovalStatus string

const (
	LeavePending  ApprovalStatus = "pending"
	LeaveApproved ApprovalStatus = "approved"
	LeaveRejected ApprovalStatus = "rejected"
)

// WorkerLeave is a recorded absence of a worker.
type WorkerLeave struct {
	ID             string         `json:"id"`
	WorkerID       string         `json:"workerId" validate:"required"`
	LeaveDate      time.Time      `json:"leaveDate"`
	LeaveType      LeaveType      `json:"leaveType" validate:"required,oneof=full_day half_day"`
	Reason         string         `json:"reason"`
	ApprovalStatus ApprovalStatus `json:"approvalStatus" validate:"omitempty,oneof=pending approved rejected"`
}

func (l WorkerLeave) EntityID() string { return l.ID }

// IsApproved reports whether the leave counts against pay.
func (l WorkerLeave) IsApproved() bool { return l.ApprovalStatus == LeaveApproved }

// Transition moves a pending leave to approved or rejected.
func (l WorkerLeave) Transition(to ApprovalStatus) (WorkerLeave, error) {
	if to != LeaveApproved && to != LeaveRejected {
		return l, fmt.Errorf("%w: cannot move leave to %q", apperrors.ErrInvalidTransition, to)
	}
	if l.ApprovalStatus != LeavePending {
		return l, fmt.Errorf("%w: leave %s is already %s", apperrors.ErrInvalidTransition, l.ID, l.ApprovalStatus)
	}
	l.ApprovalStatus = to
	return l, nil
}

// Validate checks the leave fields.
func (l WorkerLeave) Validate() error {
	if err := validate.Struct(l); err != nil {
		return validationError(err)
	}
	return requireDay("leaveDate", l.LeaveDate)
}
