package models

import "github.com/jackc/pgx/v5/pgtype"

// Expense is a row of the expenses table.
type Expense struct {
	ID          string         `db:"id"`
	Date        pgtype.Date    `db:"date"`
	Amount      pgtype.Numeric `db:"amount"`
	Name        string         `db:"name"`
	Description pgtype.Text    `db:"description"`
}
