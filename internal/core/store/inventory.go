package store

import (
	"context"
	"fmt"

	"github.com/SscSPs/bizdash/internal/apperrors"
	"github.com/SscSPs/bizdash/internal/core/domain"
	"github.com/SscSPs/bizdash/internal/notify"
	"github.com/shopspring/decimal"
)

func inventoryList(d *domain.Snapshot) *[]domain.InventoryItem { return &d.Inventory }

// AddInventoryItem creates an item, stamping LastUpdated with today when unset.
func (s *Store) AddInventoryItem(ctx context.Context, item domain.InventoryItem) (domain.InventoryItem, error) {
	if item.LastUpdated.IsZero() {
		item.LastUpdated = s.today()
	}
	return create(ctx, s, entityInventory, s.repos.Inventory, inventoryList, item)
}

// UpdateInventoryItem overwrites an item and stamps LastUpdated with today.
func (s *Store) UpdateInventoryItem(ctx context.Context, item domain.InventoryItem) (domain.InventoryItem, error) {
	item.LastUpdated = s.today()
	return update(ctx, s, entityInventory, s.repos.Inventory, inventoryList, item)
}

// UpdateInventoryItemQuantity sets the quantity of an item. When the new quantity
// is at or below the threshold a "running low" warning is raised after the save.
func (s *Store) UpdateInventoryItemQuantity(ctx context.Context, id string, quantity decimal.Decimal) (domain.InventoryItem, error) {
	item, ok := find(s, func(d *domain.Snapshot) []domain.InventoryItem { return d.Inventory }, id)
	if !ok {
		return domain.InventoryItem{}, fmt.Errorf("inventory item %s: %w", id, apperrors.ErrNotFound)
	}
	item.Quantity = quantity
	item.LastUpdated = s.today()

	saved, err := update(ctx, s, entityInventory, s.repos.Inventory, inventoryList, item)
	if err != nil {
		return domain.InventoryItem{}, err
	}
	if saved.IsLowStock() {
		s.notify(ctx, notify.New(notify.LevelWarning, notify.KindRunningLow, entityInventory, saved.ID,
			fmt.Sprintf("%s is running low: %s %s left", saved.Name, saved.Quantity.String(), saved.Unit)))
	}
	return saved, nil
}

// DeleteInventoryItem removes an item. Items still holding stock are refused with
// apperrors.ErrInventoryInStock.
func (s *Store) DeleteInventoryItem(ctx context.Context, id string) error {
	item, ok := find(s, func(d *domain.Snapshot) []domain.InventoryItem { return d.Inventory }, id)
	if ok && item.Quantity.IsPositive() {
		return s.rejected(ctx, entityInventory, opDelete, id, notify.KindInventoryStock, apperrors.ErrInventoryInStock,
			fmt.Sprintf("%s still has %s %s in stock", item.Name, item.Quantity.String(), item.Unit))
	}
	return remove(ctx, s, entityInventory, s.repos.Inventory, inventoryList, id)
}
