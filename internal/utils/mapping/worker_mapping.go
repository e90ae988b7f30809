package mapping

import (
	"github.com/SscSPs/bizdash/internal/core/domain"
	"github.com/SscSPs/bizdash/internal/models"
)

// ToDomainWorker converts a workers row to a domain Worker
func ToDomainWorker(m models.Worker) domain.Worker {
	return domain.Worker{
		ID:            m.ID,
		Name:          m.Name,
		PaymentType:   domain.WageType(m.PaymentType),
		MonthlySalary: DecimalFromNumeric(m.MonthlySalary),
		DailyWage:     DecimalFromNumeric(m.DailyWage),
		Phone:         StringFromText(m.Phone),
		JoinedOn:      DayFromDate(m.JoinedOn),
	}
}

// ToModelWorker converts a domain Worker to a workers row
func ToModelWorker(d domain.Worker) models.Worker {
	return models.Worker{
		ID:            d.ID,
		Name:          d.Name,
		PaymentType:   string(d.PaymentType),
		MonthlySalary: NumericFromDecimal(d.MonthlySalary),
		DailyWage:     NumericFromDecimal(d.DailyWage),
		Phone:         TextFromString(d.Phone),
		JoinedOn:      DateFromDay(d.JoinedOn),
	}
}

// ToDomainWorkerPayment converts a worker_payments row to a domain WorkerPayment
func ToDomainWorkerPayment(m models.WorkerPayment) domain.WorkerPayment {
	return domain.WorkerPayment{
		ID:          m.ID,
		WorkerID:    m.WorkerID,
		Amount:      DecimalFromNumeric(m.Amount),
		PaymentDate: DayFromDate(m.PaymentDate),
		PaymentType: domain.WorkerPaymentType(m.PaymentType),
		Notes:       StringFromText(m.Notes),
	}
}

// ToModelWorkerPayment converts a domain WorkerPayment to a worker_payments row
func ToModelWorkerPayment(d domain.WorkerPayment) models.WorkerPayment {
	return models.WorkerPayment{
		ID:          d.ID,
		WorkerID:    d.WorkerID,
		Amount:      NumericFromDecimal(d.Amount),
		PaymentDate: DateFromDay(d.PaymentDate),
		PaymentType: string(d.PaymentType),
		Notes:       TextFromString(d.Notes),
	}
}

// ToDomainWorkerLeave converts a worker_leaves row to a domain WorkerLeave.
// A missing status is read as pending.
func ToDomainWorkerLeave(m models.WorkerLeave) domain.WorkerLeave {
	status := domain.ApprovalStatus(m.ApprovalStatus)
	if status == "" {
		status = domain.LeavePending
	}
	return domain.WorkerLeave{
		ID:             m.ID,
		WorkerID:       m.WorkerID,
		LeaveDate:      DayFromDate(m.LeaveDate),
		LeaveType:      domain.LeaveType(m.LeaveType),
		Reason:         StringFromText(m.Reason),
		ApprovalStatus: status,
	}
}

// ToModelWorkerLeave converts a domain WorkerLeave to a worker_leaves row
func ToModelWorkerLeave(d domain.WorkerLeave) models.WorkerLeave {
	return models.WorkerLeave{
		ID:             d.ID,
		WorkerID:       d.WorkerID,
		LeaveDate:      DateFromDay(d.LeaveDate),
		LeaveType:      string(d.LeaveType),
		Reason:         TextFromString(d.Reason),
		ApprovalStatus: string(d.ApprovalStatus),
	}
}
