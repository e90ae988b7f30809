package handlers_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/SscSPs/bizdash/internal/apperrors"
	"github.com/SscSPs/bizdash/internal/core/domain"
	portssvc "github.com/SscSPs/bizdash/internal/core/ports/services"
	"github.com/SscSPs/bizdash/internal/handlers"
	"github.com/SscSPs/bizdash/internal/middleware"
	"github.com/SscSPs/bizdash/internal/notify"
	"github.com/SscSPs/bizdash/internal/platform/config"
	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

const testJWTSecret = "test-secret-key-that-is-long-enough"

// --- Test Suite ---
type HandlerTestSuite struct {
	suite.Suite
	router        *gin.Engine
	mockCarts     *MockCartService
	mockSales     *MockSaleService
	mockInventory *MockInventoryService
	mockLeaves    *MockWorkerLeaveService
	mockAbsences  *MockAbsenceService
	mockDashboard *MockDashboardService
	mockStore     *MockStoreAdmin
	mockUsers     *MockUserService
	feed          *stubFeed
	token         string
}

func TestHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(HandlerTestSuite))
}

// generateTestToken creates a signed JWT for userID.
func (suite *HandlerTestSuite) generateTestToken(userID string) string {
	claims := jwt.RegisteredClaims{
		Issuer:    "bizdash-test",
		Subject:   userID,
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		IssuedAt:  jwt.NewNumericDate(time.Now()),
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(testJWTSecret))
	if err != nil {
		suite.FailNow("Failed to sign test token", err.Error())
	}
	return signed
}

func (suite *HandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	suite.mockCarts = new(MockCartService)
	suite.mockSales = new(MockSaleService)
	suite.mockInventory = new(MockInventoryService)
	suite.mockLeaves = new(MockWorkerLeaveService)
	suite.mockAbsences = new(MockAbsenceService)
	suite.mockDashboard = new(MockDashboardService)
	suite.mockStore = new(MockStoreAdmin)
	suite.mockUsers = new(MockUserService)
	suite.feed = &stubFeed{}
	suite.token = suite.generateTestToken("user-1")

	suite.router = gin.New()
	suite.router.Use(middleware.StructuredLoggingMiddleware(slog.New(slog.NewTextHandler(io.Discard, nil))))
	v1 := suite.router.Group("/api/v1", middleware.AuthMiddleware(testJWTSecret))
	handlers.RegisterAdminRoutes(v1, suite.mockStore, suite.mockUsers, suite.feed)
	handlers.RegisterLedgerRoutes(v1, suite.mockCarts, suite.mockSales, nil, nil)
	handlers.RegisterInventoryRoutes(v1, suite.mockInventory, suite.mockDashboard)
	handlers.RegisterWorkforceRoutes(v1, handlers.WorkforceServices{
		Leaves:    suite.mockLeaves,
		Absences:  suite.mockAbsences,
		Dashboard: suite.mockDashboard,
	})
	handlers.RegisterReportingRoutes(v1, suite.mockDashboard)
}

func (suite *HandlerTestSuite) do(method, path string, body any) *httptest.ResponseRecorder {
	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		suite.Require().NoError(err)
		reader = bytes.NewReader(raw)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Authorization", "Bearer "+suite.token)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)
	return w
}

func (suite *HandlerTestSuite) decode(w *httptest.ResponseRecorder, out any) {
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), out), w.Body.String())
}

func (suite *HandlerTestSuite) TestRequiresToken() {
	req := httptest.NewRequest(http.MethodGet, "/api/v1/carts", nil)
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)
	suite.Equal(http.StatusUnauthorized, w.Code)
	suite.mockCarts.AssertNotCalled(suite.T(), "Carts")
}

func (suite *HandlerTestSuite) TestListCarts() {
	suite.mockCarts.On("Carts").Return([]domain.Cart{{ID: "c1", Name: "North"}, {ID: "c2", Name: "South"}}).Once()

	w := suite.do(http.MethodGet, "/api/v1/carts", nil)

	suite.Equal(http.StatusOK, w.Code)
	var resp struct {
		Data  []map[string]string `json:"data"`
		Count int                 `json:"count"`
	}
	suite.decode(w, &resp)
	suite.Equal(2, resp.Count)
	suite.Equal("North", resp.Data[0]["name"])
}

func (suite *HandlerTestSuite) TestCreateCart() {
	suite.mockCarts.On("AddCart", mock.Anything, domain.Cart{Name: "East"}).
		Return(domain.Cart{ID: "c3", Name: "East"}, nil).Once()

	w := suite.do(http.MethodPost, "/api/v1/carts", map[string]string{"name": "East"})

	suite.Equal(http.StatusCreated, w.Code)
	suite.JSONEq(`{"id":"c3","name":"East"}`, w.Body.String())
	suite.mockCarts.AssertExpectations(suite.T())
}

func (suite *HandlerTestSuite) TestCreateCart_InvalidBody() {
	w := suite.do(http.MethodPost, "/api/v1/carts", map[string]string{})

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.mockCarts.AssertNotCalled(suite.T(), "AddCart", mock.Anything, mock.Anything)
}

func (suite *HandlerTestSuite) TestDeleteCart_InUse() {
	suite.mockCarts.On("DeleteCart", mock.Anything, "c1").Return(fmt.Errorf("cart c1: %w", apperrors.ErrCartInUse)).Once()

	w := suite.do(http.MethodDelete, "/api/v1/carts/c1", nil)

	suite.Equal(http.StatusConflict, w.Code)
	suite.Contains(w.Body.String(), "in use")
}

func (suite *HandlerTestSuite) TestListSales_MonthFilter() {
	suite.mockSales.On("Sales").Return([]domain.SalesRecord{
		{ID: "s1", Date: time.Date(2024, 1, 5, 0, 0, 0, 0, time.UTC), CartID: "c1", Amount: decimal.NewFromInt(100)},
		{ID: "s2", Date: time.Date(2024, 10, 5, 0, 0, 0, 0, time.UTC), CartID: "c1", Amount: decimal.NewFromInt(200)},
	})

	w := suite.do(http.MethodGet, "/api/v1/sales?month=2024-01", nil)
	suite.Equal(http.StatusOK, w.Code)
	var resp struct {
		Data []struct {
			ID   string `json:"id"`
			Date string `json:"date"`
		} `json:"data"`
	}
	suite.decode(w, &resp)
	suite.Require().Len(resp.Data, 1)
	suite.Equal("s1", resp.Data[0].ID)
	suite.Equal("2024-01-05", resp.Data[0].Date)

	w = suite.do(http.MethodGet, "/api/v1/sales?month=2024-13", nil)
	suite.Equal(http.StatusBadRequest, w.Code)
}

func (suite *HandlerTestSuite) TestCreateSale_NegativeAmountRejectedByStore() {
	suite.mockSales.On("AddSale", mock.Anything, mock.Anything).
		Return(domain.SalesRecord{}, fmt.Errorf("%w: amount must not be negative", apperrors.ErrValidation)).Once()

	w := suite.do(http.MethodPost, "/api/v1/sales", map[string]any{"date": "2024-03-01", "cartId": "c1", "amount": "-5"})

	suite.Equal(http.StatusBadRequest, w.Code)
}

func (suite *HandlerTestSuite) TestUpdateQuantity() {
	updated := domain.InventoryItem{ID: "i1", Name: "Flour", Quantity: decimal.NewFromInt(3), Unit: "kg", Threshold: decimal.NewFromInt(5)}
	suite.mockInventory.On("UpdateInventoryItemQuantity", mock.Anything, "i1",
		mock.MatchedBy(func(q decimal.Decimal) bool { return q.Equal(decimal.NewFromInt(3)) })).
		Return(updated, nil).Once()

	w := suite.do(http.MethodPatch, "/api/v1/inventory/i1/quantity", map[string]any{"quantity": 3})

	suite.Equal(http.StatusOK, w.Code)
	var resp struct {
		ID       string `json:"id"`
		LowStock bool   `json:"lowStock"`
	}
	suite.decode(w, &resp)
	suite.Equal("i1", resp.ID)
	suite.True(resp.LowStock)
}

func (suite *HandlerTestSuite) TestUpdateQuantity_UnknownItem() {
	suite.mockInventory.On("UpdateInventoryItemQuantity", mock.Anything, "nope", mock.Anything).
		Return(domain.InventoryItem{}, apperrors.ErrNotFound).Once()

	w := suite.do(http.MethodPatch, "/api/v1/inventory/nope/quantity", map[string]any{"quantity": 1})

	suite.Equal(http.StatusNotFound, w.Code)
}

func (suite *HandlerTestSuite) TestLowStock_NotReady() {
	suite.mockDashboard.On("LowStock", mock.Anything).Return(nil, apperrors.ErrNotReady).Once()

	w := suite.do(http.MethodGet, "/api/v1/inventory/low-stock", nil)

	suite.Equal(http.StatusServiceUnavailable, w.Code)
	suite.Equal("1", w.Header().Get("Retry-After"))
}

func (suite *HandlerTestSuite) TestDeleteInventory_InStock() {
	suite.mockInventory.On("DeleteInventoryItem", mock.Anything, "i1").Return(apperrors.ErrInventoryInStock).Once()

	w := suite.do(http.MethodDelete, "/api/v1/inventory/i1", nil)

	suite.Equal(http.StatusConflict, w.Code)
}

func (suite *HandlerTestSuite) TestApproveLeave() {
	leave := domain.WorkerLeave{ID: "l1", WorkerID: "w1", LeaveDate: time.Date(2024, 4, 8, 0, 0, 0, 0, time.UTC), LeaveType: domain.LeaveFullDay, ApprovalStatus: domain.LeaveApproved}
	suite.mockLeaves.On("ApproveLeave", mock.Anything, "l1").Return(leave, nil).Once()
	suite.mockLeaves.On("RejectLeave", mock.Anything, "l1").
		Return(leave, fmt.Errorf("%w: leave l1 is already approved", apperrors.ErrInvalidTransition)).Once()

	w := suite.do(http.MethodPost, "/api/v1/worker-leaves/l1/approve", nil)
	suite.Equal(http.StatusOK, w.Code)
	suite.Contains(w.Body.String(), `"approvalStatus":"approved"`)
	suite.Contains(w.Body.String(), `"leaveDate":"2024-04-08"`)

	w = suite.do(http.MethodPost, "/api/v1/worker-leaves/l1/reject", nil)
	suite.Equal(http.StatusConflict, w.Code)
}

func (suite *HandlerTestSuite) TestListLeaves_FilterByStatus() {
	suite.mockLeaves.On("WorkerLeaves").Return([]domain.WorkerLeave{
		{ID: "l1", WorkerID: "w1", ApprovalStatus: domain.LeavePending},
		{ID: "l2", WorkerID: "w1", ApprovalStatus: domain.LeaveApproved},
		{ID: "l3", WorkerID: "w2", ApprovalStatus: domain.LeavePending},
	})

	w := suite.do(http.MethodGet, "/api/v1/worker-leaves?status=pending&workerId=w1", nil)

	suite.Equal(http.StatusOK, w.Code)
	var resp struct {
		Count int `json:"count"`
		Data  []struct {
			ID string `json:"id"`
		} `json:"data"`
	}
	suite.decode(w, &resp)
	suite.Equal(1, resp.Count)
	suite.Equal("l1", resp.Data[0].ID)
}

func (suite *HandlerTestSuite) TestRecordAbsence_WithPayment() {
	day := time.Date(2024, 4, 10, 0, 0, 0, 0, time.UTC)
	suite.mockAbsences.On("RecordAbsence", mock.Anything,
		mock.MatchedBy(func(l domain.WorkerLeave) bool {
			return l.WorkerID == "w2" && l.LeaveDate.Equal(day) && l.LeaveType == domain.LeaveHalfDay
		}),
		mock.MatchedBy(func(p *domain.WorkerPayment) bool {
			return p != nil && p.WorkerID == "w2" && p.PaymentDate.Equal(day) && p.Amount.Equal(decimal.NewFromInt(300))
		})).
		Return(domain.Absence{
			Leave:   domain.WorkerLeave{ID: "l9", WorkerID: "w2", LeaveDate: day, LeaveType: domain.LeaveHalfDay, ApprovalStatus: domain.LeavePending},
			Payment: &domain.WorkerPayment{ID: "wp9", WorkerID: "w2", PaymentDate: day, Amount: decimal.NewFromInt(300), PaymentType: domain.PayDailyWage},
		}, nil).Once()

	w := suite.do(http.MethodPost, "/api/v1/absences", map[string]any{
		"leave":   map[string]any{"workerId": "w2", "leaveDate": "2024-04-10", "leaveType": "half_day"},
		"payment": map[string]any{"amount": 300, "paymentType": "daily_wage"},
	})

	suite.Equal(http.StatusCreated, w.Code, w.Body.String())
	suite.Contains(w.Body.String(), `"id":"wp9"`)
	suite.mockAbsences.AssertExpectations(suite.T())
}

func (suite *HandlerTestSuite) TestRecordAbsence_PartialFailure() {
	suite.mockAbsences.On("RecordAbsence", mock.Anything, mock.Anything, (*domain.WorkerPayment)(nil)).
		Return(domain.Absence{}, fmt.Errorf("absence partially recorded: %w", apperrors.ErrNotFound)).Once()

	w := suite.do(http.MethodPost, "/api/v1/absences", map[string]any{
		"leave": map[string]any{"workerId": "ghost", "leaveDate": "2024-04-10", "leaveType": "full_day"},
	})

	suite.Equal(http.StatusNotFound, w.Code)
}

func (suite *HandlerTestSuite) TestWorkerSalary() {
	april := domain.Month{Year: 2024, Month: time.April}
	suite.mockDashboard.On("WorkerSalary", mock.Anything, "w1", april).
		Return(domain.WorkerSalary{WorkerID: "w1", Month: "2024-04", WorkingDays: 22, SalaryAfterLeaves: decimal.RequireFromString("27954.55")}, nil).Once()
	suite.mockDashboard.On("WorkerSalary", mock.Anything, "w2", april).
		Return(domain.WorkerSalary{}, fmt.Errorf("%w: Ravi is paid a daily wage", apperrors.ErrValidation)).Once()

	w := suite.do(http.MethodGet, "/api/v1/workers/w1/salary?month=2024-04", nil)
	suite.Equal(http.StatusOK, w.Code)
	suite.Contains(w.Body.String(), `"salaryAfterLeaves":"27954.55"`)
	suite.Contains(w.Body.String(), `"workingDays":22`)

	w = suite.do(http.MethodGet, "/api/v1/workers/w2/salary?month=2024-04", nil)
	suite.Equal(http.StatusBadRequest, w.Code)
}

func (suite *HandlerTestSuite) TestDashboard_ExplicitDate() {
	day := time.Date(2024, 4, 10, 0, 0, 0, 0, time.UTC)
	suite.mockDashboard.On("DashboardSummary", mock.Anything, day).Return(domain.DashboardSummary{
		Date:        day,
		Month:       "2024-04",
		DailyProfit: decimal.NewFromInt(500),
	}, nil).Once()

	w := suite.do(http.MethodGet, "/api/v1/dashboard?date=2024-04-10", nil)

	suite.Equal(http.StatusOK, w.Code)
	suite.Contains(w.Body.String(), `"dailyProfit":"500"`)
	suite.Contains(w.Body.String(), `"date":"2024-04-10"`)
}

func (suite *HandlerTestSuite) TestDashboard_BadDate() {
	w := suite.do(http.MethodGet, "/api/v1/dashboard?date=10-04-2024", nil)
	suite.Equal(http.StatusBadRequest, w.Code)
	suite.mockDashboard.AssertNotCalled(suite.T(), "DashboardSummary", mock.Anything, mock.Anything)
}

func (suite *HandlerTestSuite) TestMonthlyReportPDF() {
	april := domain.Month{Year: 2024, Month: time.April}
	suite.mockDashboard.On("MonthlyReport", mock.Anything, april).Return(domain.MonthlyReport{Month: "2024-04"}, nil).Once()

	w := suite.do(http.MethodGet, "/api/v1/reports/monthly.pdf?month=2024-04", nil)

	suite.Equal(http.StatusOK, w.Code)
	suite.Equal("application/pdf", w.Header().Get("Content-Type"))
	suite.Contains(w.Header().Get("Content-Disposition"), "report-2024-04.pdf")
	suite.True(strings.HasPrefix(w.Body.String(), "%PDF"))
}

func (suite *HandlerTestSuite) TestReloadAndNotifications() {
	suite.mockStore.On("Load", mock.Anything).Return(nil).Once()
	suite.feed.recent = []notify.Notification{notify.New(notify.LevelSuccess, notify.KindLoaded, "", "", "Data loaded")}

	w := suite.do(http.MethodPost, "/api/v1/reload", nil)
	suite.Equal(http.StatusNoContent, w.Code)

	w = suite.do(http.MethodGet, "/api/v1/notifications", nil)
	suite.Equal(http.StatusOK, w.Code)
	suite.Contains(w.Body.String(), `"kind":"loaded"`)
	suite.mockStore.AssertExpectations(suite.T())
}

func (suite *HandlerTestSuite) TestGetMe() {
	suite.mockUsers.On("GetUserByID", mock.Anything, "user-1").
		Return(&domain.User{UserID: "user-1", Username: "owner", Name: "Owner"}, nil).Once()

	w := suite.do(http.MethodGet, "/api/v1/me", nil)

	suite.Equal(http.StatusOK, w.Code)
	suite.Contains(w.Body.String(), `"owner"`)
}

// --- Full router ---

func newFullRouter(st *MockStoreAdmin, users *MockUserService, tokens *MockTokenService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	cfg := &config.Config{JWTSecret: testJWTSecret, IsProduction: true, LoginRateLimit: "2-M"}
	handlers.RegisterRoutes(r, cfg, &portssvc.ServiceContainer{
		Store:        st,
		Carts:        new(MockCartService),
		Dashboard:    new(MockDashboardService),
		User:         users,
		TokenService: tokens,
	}, &stubFeed{})
	return r
}

func TestRegisterRoutes_PublicAndGates(t *testing.T) {
	st := new(MockStoreAdmin)
	st.On("Ready").Return(false)
	r := newFullRouter(st, new(MockUserService), new(MockTokenService))

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/health", nil))
	if w.Code != http.StatusOK || w.Body.String() != "OK" {
		t.Fatalf("health: got %d %q", w.Code, w.Body.String())
	}

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/does-not-exist", nil))
	if w.Code != http.StatusNotFound || !strings.Contains(w.Body.String(), "Not found") {
		t.Fatalf("no route: got %d %q", w.Code, w.Body.String())
	}

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	if w.Code != http.StatusOK {
		t.Fatalf("metrics: got %d", w.Code)
	}

	claims := jwt.RegisteredClaims{Subject: "user-1", ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour))}
	token, _ := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(testJWTSecret))
	req := httptest.NewRequest(http.MethodGet, "/api/v1/carts", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if w.Code != http.StatusServiceUnavailable {
		t.Fatalf("carts while loading: got %d", w.Code)
	}
}

func TestLogin(t *testing.T) {
	users := new(MockUserService)
	tokens := new(MockTokenService)
	user := &domain.User{UserID: "user-1", Username: "owner"}
	expires := time.Date(2030, 1, 1, 0, 0, 0, 0, time.UTC)
	users.On("AuthenticateUser", mock.Anything, "owner", "correct-horse").Return(user, nil)
	users.On("AuthenticateUser", mock.Anything, "owner", "wrong").Return(nil, apperrors.ErrUnauthorized)
	tokens.On("GenerateAccessToken", mock.Anything, user).Return("signed.jwt.token", expires, nil)
	r := newFullRouter(new(MockStoreAdmin), users, tokens)

	login := func(password string) *httptest.ResponseRecorder {
		body := fmt.Sprintf(`{"username":"owner","password":%q}`, password)
		req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/login", strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		req.RemoteAddr = "10.0.0.1:1234"
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		return w
	}

	w := login("correct-horse")
	if w.Code != http.StatusOK || !strings.Contains(w.Body.String(), "signed.jwt.token") {
		t.Fatalf("login: got %d %q", w.Code, w.Body.String())
	}
	w = login("wrong")
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("bad password: got %d", w.Code)
	}
	w = login("wrong")
	if w.Code != http.StatusTooManyRequests {
		t.Fatalf("rate limit: got %d", w.Code)
	}
}

func TestRegister_Duplicate(t *testing.T) {
	users := new(MockUserService)
	users.On("CreateUser", mock.Anything, mock.Anything).Return(nil, fmt.Errorf("failed to create user: %w", apperrors.ErrDuplicate))
	r := newFullRouter(new(MockStoreAdmin), users, new(MockTokenService))

	body := `{"username":"owner","password":"password123","name":"Owner"}`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/register", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusConflict {
		t.Fatalf("duplicate register: got %d %q", w.Code, w.Body.String())
	}
}
