package dto

import (
	"github.com/SscSPs/bizdash/internal/core/domain"
	"github.com/shopspring/decimal"
)

// InventoryItemRequest is the body for creating or editing a stocked good.
type InventoryItemRequest struct {
	Name        string           `json:"name" binding:"required,max=200"`
	Quantity    *decimal.Decimal `json:"quantity" binding:"required"`
	Unit        string           `json:"unit" binding:"required,max=32"`
	Threshold   *decimal.Decimal `json:"threshold" binding:"required"`
	Price       *decimal.Decimal `json:"price"`
	LastUpdated string           `json:"lastUpdated" binding:"omitempty,datetime=2006-01-02"`
}

func (r InventoryItemRequest) ToDomain(id string) (domain.InventoryItem, error) {
	lastUpdated, err := parseOptionalDay(r.LastUpdated)
	if err != nil {
		return domain.InventoryItem{}, err
	}
	return domain.InventoryItem{
		ID:          id,
		Name:        r.Name,
		Quantity:    decimalOrZero(r.Quantity),
		Unit:        r.Unit,
		Threshold:   decimalOrZero(r.Threshold),
		Price:       decimalOrZero(r.Price),
		LastUpdated: lastUpdated,
	}, nil
}

// QuantityRequest sets the stock level of one item.
type QuantityRequest struct {
	Quantity *decimal.Decimal `json:"quantity" binding:"required"`
}

type InventoryItemResponse struct {
	ID          string          `json:"id"`
	Name        string          `json:"name"`
	Quantity    decimal.Decimal `json:"quantity"`
	Unit        string          `json:"unit"`
	Threshold   decimal.Decimal `json:"threshold"`
	Price       decimal.Decimal `json:"price"`
	LastUpdated string          `json:"lastUpdated"`
	LowStock    bool            `json:"lowStock"`
}

func ToInventoryItemResponse(i domain.InventoryItem) InventoryItemResponse {
	return InventoryItemResponse{
		ID:          i.ID,
		Name:        i.Name,
		Quantity:    i.Quantity,
		Unit:        i.Unit,
		Threshold:   i.Threshold,
		Price:       i.Price,
		LastUpdated: FormatDay(i.LastUpdated),
		LowStock:    i.IsLowStock(),
	}
}
