package dto

import (
	"github.com/SscSPs/bizdash/internal/core/domain"
	"github.com/shopspring/decimal"
)

// WorkerRequest is the body for creating or editing a worker.
type WorkerRequest struct {
	Name          string           `json:"name" binding:"required,max=120"`
	PaymentType   string           `json:"paymentType" binding:"required,oneof=daily monthly"`
	MonthlySalary *decimal.Decimal `json:"monthlySalary"`
	DailyWage     *decimal.Decimal `json:"dailyWage"`
	Phone         string           `json:"phone" binding:"max=32"`
	JoinedOn      string           `json:"joinedOn" binding:"omitempty,datetime=2006-01-02"`
}

func (r WorkerRequest) ToDomain(id string) (domain.Worker, error) {
	joined, err := parseOptionalDay(r.JoinedOn)
	if err != nil {
		return domain.Worker{}, err
	}
	return domain.Worker{
		ID:            id,
		Name:          r.Name,
		PaymentType:   domain.WageType(r.PaymentType),
		MonthlySalary: decimalOrZero(r.MonthlySalary),
		DailyWage:     decimalOrZero(r.DailyWage),
		Phone:         r.Phone,
		JoinedOn:      joined,
	}, nil
}

type WorkerResponse struct {
	ID            string          `json:"id"`
	Name          string          `json:"name"`
	PaymentType   domain.WageType `json:"paymentType"`
	MonthlySalary decimal.Decimal `json:"monthlySalary"`
	DailyWage     decimal.Decimal `json:"dailyWage"`
	Phone         string          `json:"phone"`
	JoinedOn      string          `json:"joinedOn"`
}

func ToWorkerResponse(w domain.Worker) WorkerResponse {
	return WorkerResponse{
		ID:            w.ID,
		Name:          w.Name,
		PaymentType:   w.PaymentType,
		MonthlySalary: w.MonthlySalary,
		DailyWage:     w.DailyWage,
		Phone:         w.Phone,
		JoinedOn:      FormatDay(w.JoinedOn),
	}
}

// WorkerPaymentRequest is the body for a payout to a worker.
type WorkerPaymentRequest struct {
	WorkerID    string           `json:"workerId" binding:"required"`
	Amount      *decimal.Decimal `json:"amount" binding:"required"`
	PaymentDate string           `json:"paymentDate" binding:"required,datetime=2006-01-02"`
	PaymentType string           `json:"paymentType" binding:"required,oneof=daily_wage monthly_salary advance"`
	Notes       string           `json:"notes" binding:"max=1000"`
}

func (r WorkerPaymentRequest) ToDomain(id string) (domain.WorkerPayment, error) {
	day, err := domain.ParseDay(r.PaymentDate)
	if err != nil {
		return domain.WorkerPayment{}, err
	}
	return domain.WorkerPayment{
		ID:          id,
		WorkerID:    r.WorkerID,
		Amount:      decimalOrZero(r.Amount),
		PaymentDate: day,
		PaymentType: domain.WorkerPaymentType(r.PaymentType),
		Notes:       r.Notes,
	}, nil
}

type WorkerPaymentResponse struct {
	ID          string                   `json:"id"`
	WorkerID    string                   `json:"workerId"`
	Amount      decimal.Decimal          `json:"amount"`
	PaymentDate string                   `json:"paymentDate"`
	PaymentType domain.WorkerPaymentType `json:"paymentType"`
	Notes       string                   `json:"notes"`
}

func ToWorkerPaymentResponse(p domain.WorkerPayment) WorkerPaymentResponse {
	return WorkerPaymentResponse{
		ID:          p.ID,
		WorkerID:    p.WorkerID,
		Amount:      p.Amount,
		PaymentDate: FormatDay(p.PaymentDate),
		PaymentType: p.PaymentType,
		Notes:       p.Notes,
	}
}

// WorkerLeaveRequest is the body for a leave request. The approval status is only
// honoured by the absence flow; new leaves otherwise start pending.
type WorkerLeaveRequest struct {
	WorkerID       string `json:"workerId" binding:"required"`
	LeaveDate      string `json:"leaveDate" binding:"required,datetime=2006-01-02"`
	LeaveType      string `json:"leaveType" binding:"required,oneof=full_day half_day"`
	Reason         string `json:"reason" binding:"max=1000"`
	ApprovalStatus string `json:"approvalStatus" binding:"omitempty,oneof=pending approved rejected"`
}

func (r WorkerLeaveRequest) ToDomain(id string) (domain.WorkerLeave, error) {
	day, err := domain.ParseDay(r.LeaveDate)
	if err != nil {
		return domain.WorkerLeave{}, err
	}
	return domain.WorkerLeave{
		ID:             id,
		WorkerID:       r.WorkerID,
		LeaveDate:      day,
		LeaveType:      domain.LeaveType(r.LeaveType),
		Reason:         r.Reason,
		ApprovalStatus: domain.ApprovalStatus(r.ApprovalStatus),
	}, nil
}

type WorkerLeaveResponse struct {
	ID             string                `json:"id"`
	WorkerID       string                `json:"workerId"`
	LeaveDate      string                `json:"leaveDate"`
	LeaveType      domain.LeaveType      `json:"leaveType"`
	Reason         string                `json:"reason"`
	ApprovalStatus domain.ApprovalStatus `json:"approvalStatus"`
}

func ToWorkerLeaveResponse(l domain.WorkerLeave) WorkerLeaveResponse {
	return WorkerLeaveResponse{
		ID:             l.ID,
		WorkerID:       l.WorkerID,
		LeaveDate:      FormatDay(l.LeaveDate),
		LeaveType:      l.LeaveType,
		Reason:         l.Reason,
		ApprovalStatus: l.ApprovalStatus,
	}
}

// AbsencePaymentRequest is the optional payment recorded with an absence. It is
// booked to the same worker and day as the leave.
type AbsencePaymentRequest struct {
	Amount      *decimal.Decimal `json:"amount" binding:"required"`
	PaymentType string           `json:"paymentType" binding:"required,oneof=daily_wage monthly_salary advance"`
	Notes       string           `json:"notes" binding:"max=1000"`
}

// AbsenceRequest records a leave from the payment entry screen.
type AbsenceRequest struct {
	Leave   WorkerLeaveRequest     `json:"leave" binding:"required"`
	Payment *AbsencePaymentRequest `json:"payment"`
}

func (r AbsenceRequest) ToDomain() (domain.WorkerLeave, *domain.WorkerPayment, error) {
	leave, err := r.Leave.ToDomain("")
	if err != nil {
		return domain.WorkerLeave{}, nil, err
	}
	if r.Payment == nil {
		return leave, nil, nil
	}
	return leave, &domain.WorkerPayment{
		WorkerID:    leave.WorkerID,
		Amount:      decimalOrZero(r.Payment.Amount),
		PaymentDate: leave.LeaveDate,
		PaymentType: domain.WorkerPaymentType(r.Payment.PaymentType),
		Notes:       r.Payment.Notes,
	}, nil
}

type AbsenceResponse struct {
	Leave   WorkerLeaveResponse    `json:"leave"`
	Payment *WorkerPaymentResponse `json:"payment,omitempty"`
}

func ToAbsenceResponse(a domain.Absence) AbsenceResponse {
	out := AbsenceResponse{Leave: ToWorkerLeaveResponse(a.Leave)}
	if a.Payment != nil {
		p := ToWorkerPaymentResponse(*a.Payment)
		out.Payment = &p
	}
	return out
}
