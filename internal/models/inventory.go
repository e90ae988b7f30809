package models

import "github.com/jackc/pgx/v5/pgtype"

// InventoryItem is a row of the inventory table.
type InventoryItem struct {
	ID          string         `db:"id"`
	Name        string         `db:"name"`
	Quantity    pgtype.Numeric `db:"quantity"`
	Unit        string         `db:"unit"`
	Threshold   pgtype.Numeric `db:"threshold"`
	Price       pgtype.Numeric `db:"price"`
	LastUpdated pgtype.Date    `db:"last_updated"`
}
