package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// InventoryItem is a stocked good with a reorder threshold.
type InventoryItem struct {
	ID          string          `json:"id"`
	Name        string          `json:"name" validate:"required,max=200"`
	Quantity    decimal.Decimal `json:"quantity"`
	Unit        string          `json:"unit" validate:"required,max=32"`
	Threshold   decimal.Decimal `json:"threshold"`
	Price       decimal.Decimal `json:"price"`
	LastUpdated time.Time       `json:"lastUpdated"`
}

func (i InventoryItem) EntityID() string { return i.ID }

// IsLowStock reports whether the quantity has fallen to or below the threshold.
func (i InventoryItem) IsLowStock() bool {
	return i.Quantity.LessThanOrEqual(i.Threshold)
}

// Validate checks the inventory item fields.
func (i InventoryItem) Validate() error {
	if err := validate.Struct(i); err != nil {
		return validationError(err)
	}
	if err := requireNonNegative("quantity", i.Quantity); err != nil {
		return err
	}
	if err := requireNonNegative("threshold", i.Threshold); err != nil {
		return err
	}
	return requireNonNegative("price", i.Price)
}
