// Package store holds every table in memory and applies mutations remote-first.
package store

import (
	"context"
	"fmt"
	"log/slog"
	"slices"
	"sync"
	"time"

	"github.com/SscSPs/bizdash/internal/apperrors"
	"github.com/SscSPs/bizdash/internal/core/domain"
	portsrepo "github.com/SscSPs/bizdash/internal/core/ports/repositories"
	"github.com/SscSPs/bizdash/internal/metrics"
	"github.com/SscSPs/bizdash/internal/middleware"
	"github.com/SscSPs/bizdash/internal/notify"
)

// Entity labels used in logs, metrics and notifications.
const (
	entityCart          = "cart"
	entitySale          = "sale"
	entityExpense       = "expense"
	entityInventory     = "inventory"
	entityPayment       = "payment"
	entityWorker        = "worker"
	entityWorkerPayment = "worker_payment"
	entityWorkerLeave   = "worker_leave"
)

const (
	opCreate = "create"
	opUpdate = "update"
	opDelete = "delete"
)

// Store is the in-memory copy of every table. Reads are served from memory;
// writes go to the remote table first and are applied locally only on success.
// A failed write leaves memory untouched and is never retried.
type Store struct {
	repos    portsrepo.RepositoryProvider
	notifier notify.Notifier
	logger   *slog.Logger
	now      func() time.Time

	mu    sync.RWMutex
	ready bool
	data  domain.Snapshot
}

// Option configures a Store.
type Option func(*Store)

// WithLogger sets the logger used when no request logger is available.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Store) {
		s.logger = logger
	}
}

// WithClock overrides the source of "today" used for inventory stamps.
func WithClock(now func() time.Time) Option {
	return func(s *Store) {
		s.now = now
	}
}

// New creates an empty, not yet ready store over repos.
func New(repos portsrepo.RepositoryProvider, notifier notify.Notifier, opts ...Option) *Store {
	if notifier == nil {
		notifier = notify.Nop
	}
	s := &Store{
		repos:    repos,
		notifier: notifier,
		logger:   slog.Default(),
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Load fetches every table, one after another, and replaces the in-memory copy.
// On failure the previous copy and readiness are kept.
func (s *Store) Load(ctx context.Context) error {
	start := time.Now()
	var next domain.Snapshot
	var err error

	steps := []struct {
		entity string
		fetch  func() error
	}{
		{entityCart, func() (e error) { next.Carts, e = s.repos.Carts.Select(ctx); return }},
		{entitySale, func() (e error) { next.Sales, e = s.repos.Sales.Select(ctx); return }},
		{entityExpense, func() (e error) { next.Expenses, e = s.repos.Expenses.Select(ctx); return }},
		{entityInventory, func() (e error) { next.Inventory, e = s.repos.Inventory.Select(ctx); return }},
		{entityPayment, func() (e error) { next.Payments, e = s.repos.Payments.Select(ctx); return }},
		{entityWorker, func() (e error) { next.Workers, e = s.repos.Workers.Select(ctx); return }},
		{entityWorkerPayment, func() (e error) { next.WorkerPayments, e = s.repos.WorkerPayments.Select(ctx); return }},
		{entityWorkerLeave, func() (e error) { next.WorkerLeaves, e = s.repos.WorkerLeaves.Select(ctx); return }},
	}
	for _, step := range steps {
		if err = step.fetch(); err != nil {
			s.log(ctx).Error("Failed to load table", slog.String("entity", step.entity), slog.String("error", err.Error()))
			s.notify(ctx, notify.New(notify.LevelError, notify.KindRemoteFailure, step.entity, "",
				fmt.Sprintf("Could not load %s data", step.entity)))
			return fmt.Errorf("failed to load %s: %w", step.entity, err)
		}
	}

	s.mu.Lock()
	s.data = next
	s.ready = true
	s.observeLocked()
	s.mu.Unlock()

	metrics.StoreLoadDuration.Observe(time.Since(start).Seconds())
	metrics.StoreReady.Set(1)
	s.log(ctx).Info("Entity store loaded",
		slog.Int("carts", len(next.Carts)),
		slog.Int("sales", len(next.Sales)),
		slog.Int("workers", len(next.Workers)),
		slog.Duration("took", time.Since(start)))
	return nil
}

// Ready reports whether a load has completed.
func (s *Store) Ready() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.ready
}

// Snapshot returns a copy of every table, or apperrors.ErrNotReady before the first load.
func (s *Store) Snapshot() (domain.Snapshot, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if !s.ready {
		return domain.Snapshot{}, apperrors.ErrNotReady
	}
	return domain.Snapshot{
		Carts:          slices.Clone(s.data.Carts),
		Sales:          slices.Clone(s.data.Sales),
		Expenses:       slices.Clone(s.data.Expenses),
		Inventory:      slices.Clone(s.data.Inventory),
		Payments:       slices.Clone(s.data.Payments),
		Workers:        slices.Clone(s.data.Workers),
		WorkerPayments: slices.Clone(s.data.WorkerPayments),
		WorkerLeaves:   slices.Clone(s.data.WorkerLeaves),
	}, nil
}

// The accessors below return copies safe for the caller to modify.

func (s *Store) Carts() []domain.Cart {
	return read(s, func(d *domain.Snapshot) []domain.Cart { return d.Carts })
}

func (s *Store) Sales() []domain.SalesRecord {
	return read(s, func(d *domain.Snapshot) []domain.SalesRecord { return d.Sales })
}

func (s *Store) Expenses() []domain.Expense {
	return read(s, func(d *domain.Snapshot) []domain.Expense { return d.Expenses })
}

func (s *Store) Inventory() []domain.InventoryItem {
	return read(s, func(d *domain.Snapshot) []domain.InventoryItem { return d.Inventory })
}

func (s *Store) Payments() []domain.Payment {
	return read(s, func(d *domain.Snapshot) []domain.Payment { return d.Payments })
}

func (s *Store) Workers() []domain.Worker {
	return read(s, func(d *domain.Snapshot) []domain.Worker { return d.Workers })
}

func (s *Store) WorkerPayments() []domain.WorkerPayment {
	return read(s, func(d *domain.Snapshot) []domain.WorkerPayment { return d.WorkerPayments })
}

func (s *Store) WorkerLeaves() []domain.WorkerLeave {
	return read(s, func(d *domain.Snapshot) []domain.WorkerLeave { return d.WorkerLeaves })
}

func read[T any](s *Store, list func(*domain.Snapshot) []T) []T {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := slices.Clone(list(&s.data))
	if out == nil {
		out = []T{}
	}
	return out
}

// find returns the in-memory row with id.
func find[T domain.Entity](s *Store, list func(*domain.Snapshot) []T, id string) (T, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, row := range list(&s.data) {
		if row.EntityID() == id {
			return row, true
		}
	}
	var zero T
	return zero, false
}

// validatable is implemented by every domain entity.
type validatable interface {
	domain.Entity
	Validate() error
}

// create inserts row remotely and appends the stored row to memory.
func create[T validatable](ctx context.Context, s *Store, entity string, table portsrepo.TableWriter[T], list func(*domain.Snapshot) *[]T, row T) (T, error) {
	var zero T
	if err := row.Validate(); err != nil {
		metrics.StoreMutationsTotal.WithLabelValues(entity, opCreate, metrics.OutcomeRejected).Inc()
		return zero, err
	}
	stored, err := table.Insert(ctx, row)
	if err != nil {
		return zero, s.remoteFailure(ctx, entity, opCreate, "", err)
	}

	s.mu.Lock()
	*list(&s.data) = append(*list(&s.data), stored)
	s.observeLocked()
	s.mu.Unlock()

	s.succeeded(ctx, entity, opCreate, stored.EntityID())
	return stored, nil
}

// update overwrites row remotely and replaces the in-memory row with the same id.
func update[T validatable](ctx context.Context, s *Store, entity string, table portsrepo.TableWriter[T], list func(*domain.Snapshot) *[]T, row T) (T, error) {
	var zero T
	if row.EntityID() == "" {
		return zero, fmt.Errorf("%w: id is required", apperrors.ErrValidation)
	}
	if err := row.Validate(); err != nil {
		metrics.StoreMutationsTotal.WithLabelValues(entity, opUpdate, metrics.OutcomeRejected).Inc()
		return zero, err
	}
	if err := table.Update(ctx, row); err != nil {
		return zero, s.remoteFailure(ctx, entity, opUpdate, row.EntityID(), err)
	}

	s.mu.Lock()
	rows := *list(&s.data)
	replaced := false
	for i := range rows {
		if rows[i].EntityID() == row.EntityID() {
			rows[i] = row
			replaced = true
			break
		}
	}
	if !replaced {
		*list(&s.data) = append(rows, row)
	}
	s.observeLocked()
	s.mu.Unlock()

	s.succeeded(ctx, entity, opUpdate, row.EntityID())
	return row, nil
}

// remove deletes id remotely and drops it from memory.
func remove[T domain.Entity](ctx context.Context, s *Store, entity string, table portsrepo.TableWriter[T], list func(*domain.Snapshot) *[]T, id string) error {
	if id == "" {
		return fmt.Errorf("%w: id is required", apperrors.ErrValidation)
	}
	if err := table.Delete(ctx, id); err != nil {
		return s.remoteFailure(ctx, entity, opDelete, id, err)
	}

	s.mu.Lock()
	*list(&s.data) = slices.DeleteFunc(*list(&s.data), func(row T) bool { return row.EntityID() == id })
	s.observeLocked()
	s.mu.Unlock()

	s.succeeded(ctx, entity, opDelete, id)
	return nil
}

// remoteFailure logs and reports a failed remote call and returns the wrapped error.
func (s *Store) remoteFailure(ctx context.Context, entity, op, id string, err error) error {
	metrics.StoreMutationsTotal.WithLabelValues(entity, op, metrics.OutcomeFailed).Inc()
	s.log(ctx).Error("Remote table call failed",
		slog.String("entity", entity),
		slog.String("operation", op),
		slog.String("entity_id", id),
		slog.String("error", err.Error()))
	s.notify(ctx, notify.New(notify.LevelError, notify.KindRemoteFailure, entity, id,
		fmt.Sprintf("Failed to %s %s", op, humanize(entity))))
	return fmt.Errorf("failed to %s %s: %w", op, entity, err)
}

// rejected reports a guard violation. No remote call has been made.
func (s *Store) rejected(ctx context.Context, entity, op, id, kind string, sentinel error, message string) error {
	metrics.StoreMutationsTotal.WithLabelValues(entity, op, metrics.OutcomeRejected).Inc()
	s.log(ctx).Warn("Mutation rejected", slog.String("entity", entity), slog.String("entity_id", id), slog.String("reason", sentinel.Error()))
	s.notify(ctx, notify.New(notify.LevelWarning, kind, entity, id, message))
	return fmt.Errorf("%w: %s", sentinel, message)
}

func (s *Store) succeeded(ctx context.Context, entity, op, id string) {
	metrics.StoreMutationsTotal.WithLabelValues(entity, op, metrics.OutcomeOK).Inc()
	kind, verb := notify.KindSaved, "saved"
	switch op {
	case opCreate:
		verb = "added"
	case opDelete:
		kind, verb = notify.KindDeleted, "deleted"
	}
	s.notify(ctx, notify.New(notify.LevelSuccess, kind, entity, id, fmt.Sprintf("%s %s", capitalize(humanize(entity)), verb)))
}

func (s *Store) notify(ctx context.Context, n notify.Notification) {
	metrics.NotificationsTotal.WithLabelValues(string(n.Level), n.Kind).Inc()
	s.notifier.Notify(ctx, n)
}

// observeLocked refreshes the row gauges. Callers hold s.mu.
func (s *Store) observeLocked() {
	metrics.StoreRows.WithLabelValues(entityCart).Set(float64(len(s.data.Carts)))
	metrics.StoreRows.WithLabelValues(entitySale).Set(float64(len(s.data.Sales)))
	metrics.StoreRows.WithLabelValues(entityExpense).Set(float64(len(s.data.Expenses)))
	metrics.StoreRows.WithLabelValues(entityInventory).Set(float64(len(s.data.Inventory)))
	metrics.StoreRows.WithLabelValues(entityPayment).Set(float64(len(s.data.Payments)))
	metrics.StoreRows.WithLabelValues(entityWorker).Set(float64(len(s.data.Workers)))
	metrics.StoreRows.WithLabelValues(entityWorkerPayment).Set(float64(len(s.data.WorkerPayments)))
	metrics.StoreRows.WithLabelValues(entityWorkerLeave).Set(float64(len(s.data.WorkerLeaves)))

	low := 0
	for _, item := range s.data.Inventory {
		if item.IsLowStock() {
			low++
		}
	}
	metrics.LowStockItems.Set(float64(low))
}

func (s *Store) log(ctx context.Context) *slog.Logger {
	if logger := middleware.GetLoggerFromCtx(ctx); logger != nil {
		return logger
	}
	return s.logger
}

func (s *Store) today() time.Time {
	return domain.DayOf(s.now())
}

func humanize(entity string) string {
	b := []byte(entity)
	for i, c := range b {
		if c == '_' {
			b[i] = ' '
		}
	}
	return string(b)
}

func capitalize(s string) string {
	if s == "" || s[0] < 'a' || s[0] > 'z' {
		return s
	}
	return string(s[0]-'a'+'A') + s[1:]
}
