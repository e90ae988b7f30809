package models

import "github.com/jackc/pgx/v5/pgtype"

// SalesRecord is a row of the sales table. Amount is a numeric column and the
// date a date column; both are coerced to domain shapes by the mapping package.
type SalesRecord struct {
	ID     string         `db:"id"`
	Date   pgtype.Date    `db:"date"`
	CartID string         `db:"cart_id"`
	Amount pgtype.Numeric `db:"amount"`
}
