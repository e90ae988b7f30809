package models

import "github.com/jackc/pgx/v5/pgtype"

// Worker is a row of the workers table.
type Worker struct {
	ID            string         `db:"id"`
	Name          string         `db:"name"`
	PaymentType   string         `db:"payment_type"`
	MonthlySalary pgtype.Numeric `db:"monthly_salary"`
	DailyWage     pgtype.Numeric `db:"daily_wage"`
	Phone         pgtype.Text    `db:"phone"`
	JoinedOn      pgtype.Date    `db:"joined_on"`
}

// WorkerPayment is a row of the worker_payments table.
type WorkerPayment struct {
	ID          string         `db:"id"`
	WorkerID    string         `db:"worker_id"`
	Amount      pgtype.Numeric `db:"amount"`
	PaymentDate pgtype.Date    `db:"payment_date"`
	PaymentType string         `db:"payment_type"`
	Notes       pgtype.Text    `db:"notes"`
}

// WorkerLeave is a row of the worker_leaves table.
type WorkerLeave struct {
	ID             string      `db:"id"`
	WorkerID       string      `db:"worker_id"`
	LeaveDate      pgtype.Date `db:"leave_date"`
	LeaveType      string      `db:"leave_type"`
	Reason         pgtype.Text `db:"reason"`
	ApprovalStatus string      `db:"approval_status"`
}
