package store

import (
	"context"
	"fmt"

	"github.com/SscSPs/bizdash/internal/apperrors"
	"github.com/SscSPs/bizdash/internal/core/domain"
	"github.com/SscSPs/bizdash/internal/notify"
)

func cartList(d *domain.Snapshot) *[]domain.Cart { return &d.Carts }

// AddCart creates a cart.
func (s *Store) AddCart(ctx context.Context, cart domain.Cart) (domain.Cart, error) {
	return create(ctx, s, entityCart, s.repos.Carts, cartList, cart)
}

// UpdateCart renames a cart.
func (s *Store) UpdateCart(ctx context.Context, cart domain.Cart) (domain.Cart, error) {
	return update(ctx, s, entityCart, s.repos.Carts, cartList, cart)
}

// DeleteCart removes a cart. It is refused with apperrors.ErrCartInUse while any
// sales record references the cart.
func (s *Store) DeleteCart(ctx context.Context, id string) error {
	if n := s.salesForCart(id); n > 0 {
		return s.rejected(ctx, entityCart, opDelete, id, notify.KindCartInUse, apperrors.ErrCartInUse,
			fmt.Sprintf("Cart is used by %d sales records and cannot be deleted", n))
	}
	return remove(ctx, s, entityCart, s.repos.Carts, cartList, id)
}

func (s *Store) salesForCart(cartID string) int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	n := 0
	for _, sale := range s.data.Sales {
		if sale.CartID == cartID {
			n++
		}
	}
	return n
}
