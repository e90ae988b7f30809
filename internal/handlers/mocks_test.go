package handlers_test

import (
	"context"
	"net/http"
	"time"

	"github.com/SscSPs/bizdash/internal/core/domain"
	portssvc "github.com/SscSPs/bizdash/internal/core/ports/services"
	"github.com/SscSPs/bizdash/internal/dto"
	"github.com/SscSPs/bizdash/internal/notify"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
)

// --- Mock CartSvc ---
type MockCartService struct {
	mock.Mock
}

func (m *MockCartService) Carts() []domain.Cart {
	return m.Called().Get(0).([]domain.Cart)
}
func (m *MockCartService) AddCart(ctx context.Context, cart domain.Cart) (domain.Cart, error) {
	args := m.Called(ctx, cart)
	return args.Get(0).(domain.Cart), args.Error(1)
}
func (m *MockCartService) UpdateCart(ctx context.Context, cart domain.Cart) (domain.Cart, error) {
	args := m.Called(ctx, cart)
	return args.Get(0).(domain.Cart), args.Error(1)
}
func (m *MockCartService) DeleteCart(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}

var _ portssvc.CartSvc = (*MockCartService)(nil)

// --- Mock SaleSvc ---
type MockSaleService struct {
	mock.Mock
}

func (m *MockSaleService) Sales() []domain.SalesRecord {
	return m.Called().Get(0).([]domain.SalesRecord)
}
func (m *MockSaleService) AddSale(ctx context.Context, sale domain.SalesRecord) (domain.SalesRecord, error) {
	args := m.Called(ctx, sale)
	return args.Get(0).(domain.SalesRecord), args.Error(1)
}
func (m *MockSaleService) UpdateSale(ctx context.Context, sale domain.SalesRecord) (domain.SalesRecord, error) {
	args := m.Called(ctx, sale)
	return args.Get(0).(domain.SalesRecord), args.Error(1)
}
func (m *MockSaleService) DeleteSale(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}

var _ portssvc.SaleSvc = (*MockSaleService)(nil)

// --- Mock InventorySvc ---
type MockInventoryService struct {
	mock.Mock
}

func (m *MockInventoryService) Inventory() []domain.InventoryItem {
	return m.Called().Get(0).([]domain.InventoryItem)
}
func (m *MockInventoryService) AddInventoryItem(ctx context.Context, item domain.InventoryItem) (domain.InventoryItem, error) {
	args := m.Called(ctx, item)
	return args.Get(0).(domain.InventoryItem), args.Error(1)
}
func (m *MockInventoryService) UpdateInventoryItem(ctx context.Context, item domain.InventoryItem) (domain.InventoryItem, error) {
	args := m.Called(ctx, item)
	return args.Get(0).(domain.InventoryItem), args.Error(1)
}
func (m *MockInventoryService) UpdateInventoryItemQuantity(ctx context.Context, id string, quantity decimal.Decimal) (domain.InventoryItem, error) {
	args := m.Called(ctx, id, quantity)
	return args.Get(0).(domain.InventoryItem), args.Error(1)
}
func (m *MockInventoryService) DeleteInventoryItem(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}

var _ portssvc.InventorySvc = (*MockInventoryService)(nil)

// --- Mock WorkerLeaveSvc ---
type MockWorkerLeaveService struct {
	mock.Mock
}

func (m *MockWorkerLeaveService) WorkerLeaves() []domain.WorkerLeave {
	return m.Called().Get(0).([]domain.WorkerLeave)
}
func (m *MockWorkerLeaveService) AddWorkerLeave(ctx context.Context, leave domain.WorkerLeave) (domain.WorkerLeave, error) {
	args := m.Called(ctx, leave)
	return args.Get(0).(domain.WorkerLeave), args.Error(1)
}
func (m *MockWorkerLeaveService) UpdateWorkerLeave(ctx context.Context, leave domain.WorkerLeave) (domain.WorkerLeave, error) {
	args := m.Called(ctx, leave)
	return args.Get(0).(domain.WorkerLeave), args.Error(1)
}
func (m *MockWorkerLeaveService) DeleteWorkerLeave(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}
func (m *MockWorkerLeaveService) ApproveLeave(ctx context.Context, id string) (domain.WorkerLeave, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(domain.WorkerLeave), args.Error(1)
}
func (m *MockWorkerLeaveService) RejectLeave(ctx context.Context, id string) (domain.WorkerLeave, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(domain.WorkerLeave), args.Error(1)
}

var _ portssvc.WorkerLeaveSvc = (*MockWorkerLeaveService)(nil)

// --- Mock AbsenceSvc ---
type MockAbsenceService struct {
	mock.Mock
}

func (m *MockAbsenceService) RecordAbsence(ctx context.Context, leave domain.WorkerLeave, payment *domain.WorkerPayment) (domain.Absence, error) {
	args := m.Called(ctx, leave, payment)
	return args.Get(0).(domain.Absence), args.Error(1)
}

var _ portssvc.AbsenceSvc = (*MockAbsenceService)(nil)

// --- Mock DashboardSvc ---
type MockDashboardService struct {
	mock.Mock
}

func (m *MockDashboardService) DashboardSummary(ctx context.Context, day time.Time) (domain.DashboardSummary, error) {
	args := m.Called(ctx, day)
	return args.Get(0).(domain.DashboardSummary), args.Error(1)
}
func (m *MockDashboardService) MonthlyReport(ctx context.Context, month domain.Month) (domain.MonthlyReport, error) {
	args := m.Called(ctx, month)
	return args.Get(0).(domain.MonthlyReport), args.Error(1)
}
func (m *MockDashboardService) WorkerSalary(ctx context.Context, workerID string, month domain.Month) (domain.WorkerSalary, error) {
	args := m.Called(ctx, workerID, month)
	return args.Get(0).(domain.WorkerSalary), args.Error(1)
}
func (m *MockDashboardService) LowStock(ctx context.Context) ([]domain.InventoryItem, error) {
	args := m.Called(ctx)
	var items []domain.InventoryItem
	if args.Get(0) != nil {
		items = args.Get(0).([]domain.InventoryItem)
	}
	return items, args.Error(1)
}

var _ portssvc.DashboardSvc = (*MockDashboardService)(nil)

// --- Mock StoreAdminSvc ---
type MockStoreAdmin struct {
	mock.Mock
}

func (m *MockStoreAdmin) Ready() bool { return m.Called().Bool(0) }
func (m *MockStoreAdmin) Load(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}

var _ portssvc.StoreAdminSvc = (*MockStoreAdmin)(nil)

// --- Mock UserSvcFacade ---
type MockUserService struct {
	mock.Mock
}

func (m *MockUserService) GetUserByID(ctx context.Context, userID string) (*domain.User, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}
func (m *MockUserService) GetUserByUsername(ctx context.Context, username string) (*domain.User, error) {
	args := m.Called(ctx, username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}
func (m *MockUserService) CreateUser(ctx context.Context, req dto.CreateUserRequest) (*domain.User, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}
func (m *MockUserService) CreateOAuthUser(ctx context.Context, name, email string, provider domain.AuthProvider, providerUserID string) (*domain.User, error) {
	args := m.Called(ctx, name, email, provider, providerUserID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}
func (m *MockUserService) AuthenticateUser(ctx context.Context, username, password string) (*domain.User, error) {
	args := m.Called(ctx, username, password)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

var _ portssvc.UserSvcFacade = (*MockUserService)(nil)

// --- Mock TokenSvcFacade ---
type MockTokenService struct {
	mock.Mock
}

func (m *MockTokenService) GenerateAccessToken(ctx context.Context, user *domain.User) (string, time.Time, error) {
	args := m.Called(ctx, user)
	return args.String(0), args.Get(1).(time.Time), args.Error(2)
}

var _ portssvc.TokenSvcFacade = (*MockTokenService)(nil)

// stubFeed is a NotificationFeed with fixed contents.
type stubFeed struct {
	recent []notify.Notification
}

func (f *stubFeed) Recent() []notify.Notification { return f.recent }
func (f *stubFeed) ServeHTTP(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusTeapot)
}
