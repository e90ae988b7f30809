package services

import (
	portsrepo "github.com/SscSPs/bizdash/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/bizdash/internal/core/ports/services"
	"github.com/SscSPs/bizdash/internal/core/store"
	"github.com/SscSPs/bizdash/internal/platform/config"
)

// NewServiceContainer creates a new service container with properly initialized dependencies.
// The entity store backs every table service.
func NewServiceContainer(cfg *config.Config, repos portsrepo.RepositoryProvider, st *store.Store) *portssvc.ServiceContainer {
	return &portssvc.ServiceContainer{
		Store:          st,
		Carts:          st,
		Sales:          st,
		Expenses:       st,
		Inventory:      st,
		Payments:       st,
		Workers:        st,
		WorkerPayments: st,
		WorkerLeaves:   st,
		Absences:       st,
		Dashboard:      NewDashboardService(st),
		User:           NewUserService(repos.UserRepo),
		TokenService:   NewTokenService(cfg),
		GoogleOAuth:    NewGoogleOAuthService(cfg),
	}
}

// Helper to check interface implementations at compile time
var (
	_ portssvc.StoreAdminSvc    = (*store.Store)(nil)
	_ portssvc.CartSvc          = (*store.Store)(nil)
	_ portssvc.SaleSvc          = (*store.Store)(nil)
	_ portssvc.ExpenseSvc       = (*store.Store)(nil)
	_ portssvc.InventorySvc     = (*store.Store)(nil)
	_ portssvc.PaymentSvc       = (*store.Store)(nil)
	_ portssvc.WorkerSvc        = (*store.Store)(nil)
	_ portssvc.WorkerPaymentSvc = (*store.Store)(nil)
	_ portssvc.WorkerLeaveSvc   = (*store.Store)(nil)
	_ portssvc.AbsenceSvc       = (*store.Store)(nil)
	_ SnapshotSource            = (*store.Store)(nil)
)
