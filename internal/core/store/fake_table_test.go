package store_test

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"sync"

	"github.com/SscSPs/bizdash/internal/apperrors"
	"github.com/SscSPs/bizdash/internal/core/domain"
	portsrepo "github.com/SscSPs/bizdash/internal/core/ports/repositories"
	"github.com/SscSPs/bizdash/internal/notify"
)

var errRemote = errors.New("remote unavailable")

// fakeTable is an in-memory TableService that can be told to fail its next call.
type fakeTable[T domain.Entity] struct {
	mu      sync.Mutex
	rows    []T
	withID  func(T, string) T
	nextID  int
	failErr error
	calls   int
	prefix  string
}

func newFakeTable[T domain.Entity](prefix string, withID func(T, string) T, rows ...T) *fakeTable[T] {
	return &fakeTable[T]{rows: rows, withID: withID, prefix: prefix}
}

func (f *fakeTable[T]) failWith(err error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.failErr = err
}

func (f *fakeTable[T]) takeFailure() error {
	f.calls++
	err := f.failErr
	f.failErr = nil
	return err
}

func (f *fakeTable[T]) Select(context.Context) ([]T, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := f.takeFailure(); err != nil {
		return nil, err
	}
	return slices.Clone(f.rows), nil
}

func (f *fakeTable[T]) Insert(_ context.Context, row T) (T, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := f.takeFailure(); err != nil {
		var zero T
		return zero, err
	}
	if row.EntityID() == "" {
		f.nextID++
		row = f.withID(row, fmt.Sprintf("%s-%d", f.prefix, f.nextID))
	}
	f.rows = append(f.rows, row)
	return row, nil
}

func (f *fakeTable[T]) Update(_ context.Context, row T) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := f.takeFailure(); err != nil {
		return err
	}
	for i := range f.rows {
		if f.rows[i].EntityID() == row.EntityID() {
			f.rows[i] = row
			return nil
		}
	}
	return apperrors.ErrNotFound
}

func (f *fakeTable[T]) Delete(_ context.Context, id string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := f.takeFailure(); err != nil {
		return err
	}
	before := len(f.rows)
	f.rows = slices.DeleteFunc(f.rows, func(r T) bool { return r.EntityID() == id })
	if len(f.rows) == before {
		return apperrors.ErrNotFound
	}
	return nil
}

func (f *fakeTable[T]) callCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.calls
}

type fakeTables struct {
	carts          *fakeTable[domain.Cart]
	sales          *fakeTable[domain.SalesRecord]
	expenses       *fakeTable[domain.Expense]
	inventory      *fakeTable[domain.InventoryItem]
	payments       *fakeTable[domain.Payment]
	workers        *fakeTable[domain.Worker]
	workerPayments *fakeTable[domain.WorkerPayment]
	workerLeaves   *fakeTable[domain.WorkerLeave]
}

func newFakeTables() *fakeTables {
	return &fakeTables{
		carts:          newFakeTable("cart", func(c domain.Cart, id string) domain.Cart { c.ID = id; return c }),
		sales:          newFakeTable("sale", func(s domain.SalesRecord, id string) domain.SalesRecord { s.ID = id; return s }),
		expenses:       newFakeTable("exp", func(e domain.Expense, id string) domain.Expense { e.ID = id; return e }),
		inventory:      newFakeTable("inv", func(i domain.InventoryItem, id string) domain.InventoryItem { i.ID = id; return i }),
		payments:       newFakeTable("pay", func(p domain.Payment, id string) domain.Payment { p.ID = id; return p }),
		workers:        newFakeTable("wrk", func(w domain.Worker, id string) domain.Worker { w.ID = id; return w }),
		workerPayments: newFakeTable("wp", func(p domain.WorkerPayment, id string) domain.WorkerPayment { p.ID = id; return p }),
		workerLeaves:   newFakeTable("lv", func(l domain.WorkerLeave, id string) domain.WorkerLeave { l.ID = id; return l }),
	}
}

func (f *fakeTables) provider() portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		Carts:          f.carts,
		Sales:          f.sales,
		Expenses:       f.expenses,
		Inventory:      f.inventory,
		Payments:       f.payments,
		Workers:        f.workers,
		WorkerPayments: f.workerPayments,
		WorkerLeaves:   f.workerLeaves,
	}
}

// fakeAbsences records absences atomically into the two fake tables.
type fakeAbsences struct {
	tables  *fakeTables
	failErr error
}

func (a *fakeAbsences) RecordAbsence(ctx context.Context, leave domain.WorkerLeave, payment *domain.WorkerPayment) (domain.WorkerLeave, *domain.WorkerPayment, error) {
	if a.failErr != nil {
		return domain.WorkerLeave{}, nil, a.failErr
	}
	storedLeave, err := a.tables.workerLeaves.Insert(ctx, leave)
	if err != nil {
		return domain.WorkerLeave{}, nil, err
	}
	if payment == nil {
		return storedLeave, nil, nil
	}
	storedPayment, err := a.tables.workerPayments.Insert(ctx, *payment)
	if err != nil {
		return domain.WorkerLeave{}, nil, err
	}
	return storedLeave, &storedPayment, nil
}

type recordingNotifier struct {
	mu  sync.Mutex
	got []notify.Notification
}

func (r *recordingNotifier) Notify(_ context.Context, n notify.Notification) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.got = append(r.got, n)
}

func (r *recordingNotifier) kinds() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]string, len(r.got))
	for i, n := range r.got {
		out[i] = n.Kind
	}
	return out
}

func (r *recordingNotifier) last() notify.Notification {
	r.mu.Lock()
	defer r.mu.Unlock()
	if len(r.got) == 0 {
		return notify.Notification{}
	}
	return r.got[len(r.got)-1]
}

func (r *recordingNotifier) reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.got = nil
}
