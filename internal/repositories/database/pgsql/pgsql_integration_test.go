package pgsql_test

import (
	"context"
	"path/filepath"
	"runtime"
	"testing"
	"time"

	"github.com/SscSPs/bizdash/internal/apperrors"
	"github.com/SscSPs/bizdash/internal/core/domain"
	portsrepo "github.com/SscSPs/bizdash/internal/core/ports/repositories"
	"github.com/SscSPs/bizdash/internal/repositories/database/pgsql"
	"github.com/SscSPs/bizdash/pkg/database"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	tcpostgres "github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
)

type PgsqlIntegrationSuite struct {
	suite.Suite
	container *tcpostgres.PostgresContainer
	pool      *pgxpool.Pool
	repos     portsrepo.RepositoryProvider
}

func TestPgsqlIntegrationSuite(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping postgres integration tests in short mode")
	}
	suite.Run(t, new(PgsqlIntegrationSuite))
}

func migrationsDir() string {
	_, file, _, _ := runtime.Caller(0)
	return filepath.Join(filepath.Dir(file), "..", "..", "..", "..", "migrations")
}

func (s *PgsqlIntegrationSuite) SetupSuite() {
	ctx := context.Background()
	container, err := tcpostgres.Run(ctx,
		"postgres:16-alpine",
		tcpostgres.WithDatabase("bizdash_test"),
		tcpostgres.WithUsername("postgres"),
		tcpostgres.WithPassword("postgres"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(60*time.Second)),
	)
	if err != nil {
		s.T().Skipf("postgres container unavailable: %v", err)
	}
	s.container = container

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	s.Require().NoError(err)
	s.Require().NoError(database.RunMigrations(dsn, migrationsDir()))

	s.pool, err = database.NewPgxPool(ctx, dsn)
	s.Require().NoError(err)
	s.repos = pgsql.NewRepositoryProvider(s.pool)
}

func (s *PgsqlIntegrationSuite) TearDownSuite() {
	database.ClosePgxPool(s.pool)
	if s.container != nil {
		_ = s.container.Terminate(context.Background())
	}
}

func (s *PgsqlIntegrationSuite) SetupTest() {
	_, err := s.pool.Exec(context.Background(),
		"TRUNCATE worker_leaves, worker_payments, workers, payments, inventory, expenses, sales, carts, users")
	s.Require().NoError(err)
}

func day(s string) time.Time {
	t, _ := time.Parse(domain.DateLayout, s)
	return t
}

func (s *PgsqlIntegrationSuite) TestCartLifecycle() {
	ctx := context.Background()

	cart, err := s.repos.Carts.Insert(ctx, domain.Cart{Name: "Station Road"})
	s.Require().NoError(err)
	s.NotEmpty(cart.ID)

	cart.Name = "Station Road East"
	s.Require().NoError(s.repos.Carts.Update(ctx, cart))

	carts, err := s.repos.Carts.Select(ctx)
	s.Require().NoError(err)
	s.Require().Len(carts, 1)
	s.Equal("Station Road East", carts[0].Name)

	s.Require().NoError(s.repos.Carts.Delete(ctx, cart.ID))
	s.ErrorIs(s.repos.Carts.Delete(ctx, cart.ID), apperrors.ErrNotFound)
	s.ErrorIs(s.repos.Carts.Update(ctx, cart), apperrors.ErrNotFound)
}

func (s *PgsqlIntegrationSuite) TestSalesRoundTripAndCartRestrict() {
	ctx := context.Background()
	cart, err := s.repos.Carts.Insert(ctx, domain.Cart{Name: "Market"})
	s.Require().NoError(err)

	sale, err := s.repos.Sales.Insert(ctx, domain.SalesRecord{
		Date:   day("2024-04-03"),
		CartID: cart.ID,
		Amount: decimal.RequireFromString("1250.50"),
	})
	s.Require().NoError(err)
	s.Equal(day("2024-04-03"), sale.Date)
	s.True(decimal.RequireFromString("1250.5").Equal(sale.Amount))

	s.ErrorIs(s.repos.Carts.Delete(ctx, cart.ID), apperrors.ErrCartInUse)

	_, err = s.repos.Sales.Insert(ctx, domain.SalesRecord{Date: day("2024-04-03"), CartID: "missing", Amount: decimal.NewFromInt(1)})
	s.ErrorIs(err, apperrors.ErrValidation)
}

func (s *PgsqlIntegrationSuite) TestLeaveStatusIsOverwrittenUnconditionally() {
	ctx := context.Background()
	worker, err := s.repos.Workers.Insert(ctx, domain.Worker{
		Name:          "Asha",
		PaymentType:   domain.WageMonthly,
		MonthlySalary: decimal.NewFromInt(30000),
	})
	s.Require().NoError(err)

	leave, err := s.repos.WorkerLeaves.Insert(ctx, domain.WorkerLeave{
		WorkerID:       worker.ID,
		LeaveDate:      day("2024-04-10"),
		LeaveType:      domain.LeaveFullDay,
		ApprovalStatus: domain.LeavePending,
	})
	s.Require().NoError(err)

	leave.ApprovalStatus = domain.LeaveApproved
	s.Require().NoError(s.repos.WorkerLeaves.Update(ctx, leave))
	leave.ApprovalStatus = domain.LeaveRejected
	s.Require().NoError(s.repos.WorkerLeaves.Update(ctx, leave))

	leaves, err := s.repos.WorkerLeaves.Select(ctx)
	s.Require().NoError(err)
	s.Require().Len(leaves, 1)
	s.Equal(domain.LeaveRejected, leaves[0].ApprovalStatus)

	s.ErrorIs(s.repos.Workers.Delete(ctx, worker.ID), apperrors.ErrWorkerInUse)
}

func (s *PgsqlIntegrationSuite) TestRecordAbsenceIsAtomic() {
	ctx := context.Background()
	worker, err := s.repos.Workers.Insert(ctx, domain.Worker{
		Name:        "Ravi",
		PaymentType: domain.WageDaily,
		DailyWage:   decimal.NewFromInt(600),
	})
	s.Require().NoError(err)

	leave := domain.WorkerLeave{WorkerID: worker.ID, LeaveDate: day("2024-04-11"), LeaveType: domain.LeaveHalfDay, ApprovalStatus: domain.LeavePending}
	payment := &domain.WorkerPayment{WorkerID: worker.ID, Amount: decimal.NewFromInt(300), PaymentDate: day("2024-04-11"), PaymentType: domain.PayDailyWage}

	storedLeave, storedPayment, err := s.repos.Absences.RecordAbsence(ctx, leave, payment)
	s.Require().NoError(err)
	s.NotEmpty(storedLeave.ID)
	s.Require().NotNil(storedPayment)
	s.NotEmpty(storedPayment.ID)

	broken := &domain.WorkerPayment{WorkerID: "missing", Amount: decimal.NewFromInt(300), PaymentDate: day("2024-04-12"), PaymentType: domain.PayDailyWage}
	leave.LeaveDate = day("2024-04-12")
	_, _, err = s.repos.Absences.RecordAbsence(ctx, leave, broken)
	s.Require().Error(err)

	leaves, err := s.repos.WorkerLeaves.Select(ctx)
	s.Require().NoError(err)
	s.Len(leaves, 1, "leave of a failed absence must be rolled back")
}

func (s *PgsqlIntegrationSuite) TestUsers() {
	ctx := context.Background()
	user := domain.User{
		UserID:       "2f0b6f0e-8a57-4d55-9d0b-5f0f7f1c1a11",
		Username:     "owner",
		Name:         "Owner",
		PasswordHash: "hash",
		AuthProvider: domain.ProviderLocal,
		CreatedAt:    time.Now().UTC().Truncate(time.Second),
	}
	s.Require().NoError(s.repos.UserRepo.SaveUser(ctx, user))

	found, err := s.repos.UserRepo.FindUserByUsername(ctx, "owner")
	s.Require().NoError(err)
	s.Equal(user.UserID, found.UserID)
	s.Equal("hash", found.PasswordHash)

	user.UserID = "8a1d1a43-1f6d-4b61-9b54-97a0b1a0d9c2"
	s.ErrorIs(s.repos.UserRepo.SaveUser(ctx, user), apperrors.ErrDuplicate)

	_, err = s.repos.UserRepo.FindUserByID(ctx, "nope")
	s.ErrorIs(err, apperrors.ErrNotFound)
}
