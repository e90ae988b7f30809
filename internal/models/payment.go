package models

import "github.com/jackc/pgx/v5/pgtype"

// Payment is a row of the payments table (partner payouts).
type Payment struct {
	ID     string         `db:"id"`
	Date   pgtype.Date    `db:"date"`
	Amount pgtype.Numeric `db:"amount"`
	Status string         `db:"status"`
	Notes  pgtype.Text    `db:"notes"`
}
