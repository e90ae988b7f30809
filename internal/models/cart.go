package models

// Cart is a row of the carts table.
type Cart struct {
	ID   string `db:"id"`
	Name string `db:"name"`
}
