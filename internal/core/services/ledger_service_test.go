package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/poscore/cashdesk_app/internal/apperrors"
	"github.com/poscore/cashdesk_app/internal/core/domain"
	portsrepo "github.com/poscore/cashdesk_app/internal/core/ports/repositories"
	portssvc "github.com/poscore/cashdesk_app/internal/core/ports/services"
	"github.com/poscore/cashdesk_app/internal/core/services"
	"github.com/poscore/cashdesk_app/internal/dto"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

// --- Mock MovementRepository ---
type MockMovementRepository struct {
	mock.Mock
}

// Ensure MockMovementRepository implements portsrepo.MovementRepositoryFacade
var _ portsrepo.MovementRepositoryFacade = (*MockMovementRepository)(nil)

func (m *MockMovementRepository) SaveMovement(ctx context.Context, movement domain.CashMovement) error {
	args := m.Called(ctx, movement)
	return args.Error(0)
}

func (m *MockMovementRepository) SaveWithdrawal(ctx context.Context, movement domain.CashMovement) error {
	args := m.Called(ctx, movement)
	return args.Error(0)
}

func (m *MockMovementRepository) AssignUnassignedInTx(ctx context.Context, tx pgx.Tx, closureID string, updatedBy string, now time.Time) (decimal.Decimal, int64, error) {
	args := m.Called(ctx, tx, closureID, updatedBy, now)
	return args.Get(0).(decimal.Decimal), args.Get(1).(int64), args.Error(2)
}

func (m *MockMovementRepository) FindMovementByID(ctx context.Context, movementID string) (*domain.CashMovement, error) {
	args := m.Called(ctx, movementID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.CashMovement), args.Error(1)
}

func (m *MockMovementRepository) GetUnassignedBalance(ctx context.Context) (decimal.Decimal, error) {
	args := m.Called(ctx)
	return args.Get(0).(decimal.Decimal), args.Error(1)
}

func (m *MockMovementRepository) ListMovements(ctx context.Context, filter portsrepo.MovementListFilter, limit int, nextToken *string) ([]domain.CashMovement, *string, error) {
	args := m.Called(ctx, filter, limit, nextToken)
	if args.Get(0) == nil {
		return nil, nil, args.Error(2)
	}
	var token *string
	if args.Get(1) != nil {
		tokenVal := args.Get(1).(string)
		token = &tokenVal
	}
	return args.Get(0).([]domain.CashMovement), token, args.Error(2)
}

// --- Test Suite ---
type LedgerServiceTestSuite struct {
	suite.Suite
	movementRepo *MockMovementRepository
	service      portssvc.LedgerSvcFacade
	ctx          context.Context
}

func (s *LedgerServiceTestSuite) SetupTest() {
	s.movementRepo = new(MockMovementRepository)
	s.service = services.NewLedgerService(s.movementRepo)
	s.ctx = context.Background()
}

func TestLedgerServiceTestSuite(t *testing.T) {
	suite.Run(t, new(LedgerServiceTestSuite))
}

func (s *LedgerServiceTestSuite) TestRecordDeposit_Success() {
	s.movementRepo.On("SaveMovement", s.ctx, mock.AnythingOfType("domain.CashMovement")).Return(nil).Once()

	movement, err := s.service.RecordDeposit(s.ctx, dto.CreateDepositRequest{
		Amount:      decimal.RequireFromString("500"),
		Description: "float top-up",
		ActorID:     "emp-1",
	})

	s.Require().NoError(err)
	s.Equal(domain.CashIn, movement.Kind)
	s.True(decimal.RequireFromString("500").Equal(movement.Amount))
	s.Nil(movement.ClosureID)
	s.Equal("emp-1", movement.CreatedBy)
	s.movementRepo.AssertExpectations(s.T())
}

func (s *LedgerServiceTestSuite) TestRecordDeposit_NonPositiveAmount() {
	for _, amount := range []string{"0", "-10"} {
		_, err := s.service.RecordDeposit(s.ctx, dto.CreateDepositRequest{
			Amount:      decimal.RequireFromString(amount),
			Description: "bad",
			ActorID:     "emp-1",
		})
		s.Require().Error(err)
		s.ErrorIs(err, apperrors.ErrInvalidAmount)
	}
	s.movementRepo.AssertNotCalled(s.T(), "SaveMovement", mock.Anything, mock.Anything)
}

func (s *LedgerServiceTestSuite) TestRecordWithdrawal_StoredNegative() {
	s.movementRepo.On("SaveWithdrawal", s.ctx, mock.MatchedBy(func(m domain.CashMovement) bool {
		return m.Kind == domain.CashOut && m.Amount.Equal(decimal.RequireFromString("-2000"))
	})).Return(nil).Once()

	movement, err := s.service.RecordWithdrawal(s.ctx, dto.CreateWithdrawalRequest{
		Amount:      decimal.RequireFromString("2000"),
		Description: "bank run",
		ActorID:     "emp-1",
	})

	s.Require().NoError(err)
	s.True(movement.Amount.IsNegative(), "withdrawal must be stored negative")
	s.movementRepo.AssertExpectations(s.T())
}

func (s *LedgerServiceTestSuite) TestRecordWithdrawal_InsufficientFunds() {
	s.movementRepo.On("SaveWithdrawal", s.ctx, mock.AnythingOfType("domain.CashMovement")).
		Return(apperrors.ErrInsufficientFunds).Once()

	_, err := s.service.RecordWithdrawal(s.ctx, dto.CreateWithdrawalRequest{
		Amount:      decimal.RequireFromString("99999"),
		Description: "too much",
		ActorID:     "emp-1",
	})

	s.Require().Error(err)
	s.ErrorIs(err, apperrors.ErrInsufficientFunds)
}

func (s *LedgerServiceTestSuite) TestRecordWithdrawal_NonPositiveAmount() {
	_, err := s.service.RecordWithdrawal(s.ctx, dto.CreateWithdrawalRequest{
		Amount:      decimal.Zero,
		Description: "bad",
		ActorID:     "emp-1",
	})

	s.Require().Error(err)
	s.ErrorIs(err, apperrors.ErrInvalidAmount)
	s.movementRepo.AssertNotCalled(s.T(), "SaveWithdrawal", mock.Anything, mock.Anything)
}

func (s *LedgerServiceTestSuite) TestRecordSale_CarriesOrderRef() {
	s.movementRepo.On("SaveMovement", s.ctx, mock.AnythingOfType("domain.CashMovement")).Return(nil).Once()

	movement, err := s.service.RecordSale(s.ctx, dto.CreateSaleRequest{
		Amount:  decimal.RequireFromString("6500"),
		OrderID: "order-42",
		ActorID: "pos-terminal",
	})

	s.Require().NoError(err)
	s.Equal(domain.Sale, movement.Kind)
	s.Require().NotNil(movement.OrderID)
	s.Equal("order-42", *movement.OrderID)
	s.True(movement.Amount.IsPositive())
}

func (s *LedgerServiceTestSuite) TestRecordSale_ZeroAmount() {
	_, err := s.service.RecordSale(s.ctx, dto.CreateSaleRequest{
		Amount:  decimal.Zero,
		OrderID: "order-42",
		ActorID: "pos-terminal",
	})

	s.Require().Error(err)
	s.ErrorIs(err, apperrors.ErrInvalidAmount)
}

func (s *LedgerServiceTestSuite) TestRecordRefund_StoredNegative() {
	s.movementRepo.On("SaveMovement", s.ctx, mock.MatchedBy(func(m domain.CashMovement) bool {
		return m.Kind == domain.Refund && m.Amount.Equal(decimal.RequireFromString("-1200"))
	})).Return(nil).Once()

	movement, err := s.service.RecordRefund(s.ctx, dto.CreateRefundRequest{
		Amount:  decimal.RequireFromString("1200"),
		OrderID: "order-42",
		ActorID: "emp-1",
	})

	s.Require().NoError(err)
	s.True(movement.Amount.IsNegative(), "refund must be stored negative")
	s.movementRepo.AssertExpectations(s.T())
}

func (s *LedgerServiceTestSuite) TestRecordCorrection_KeepsSign() {
	s.movementRepo.On("SaveMovement", s.ctx, mock.AnythingOfType("domain.CashMovement")).Return(nil).Twice()

	up, err := s.service.RecordCorrection(s.ctx, dto.CreateCorrectionRequest{
		Amount:      decimal.RequireFromString("150"),
		Description: "found under tray",
		ActorID:     "emp-1",
	})
	s.Require().NoError(err)
	s.True(up.Amount.IsPositive())

	down, err := s.service.RecordCorrection(s.ctx, dto.CreateCorrectionRequest{
		Amount:      decimal.RequireFromString("-150"),
		Description: "counting error",
		ActorID:     "emp-1",
	})
	s.Require().NoError(err)
	s.True(down.Amount.IsNegative())
}

func (s *LedgerServiceTestSuite) TestGetUnassignedBalance_Passthrough() {
	want := decimal.RequireFromString("15000")
	s.movementRepo.On("GetUnassignedBalance", s.ctx).Return(want, nil).Once()

	got, err := s.service.GetUnassignedBalance(s.ctx)

	s.Require().NoError(err)
	s.True(want.Equal(got))
}

func TestLedgerService_BalancePropertySum(t *testing.T) {
	// The signed sum of recorded movements is what the ledger reports: deposits and
	// sales positive, withdrawals and refunds negative.
	repo := new(MockMovementRepository)
	svc := services.NewLedgerService(repo)
	ctx := context.Background()

	recorded := decimal.Zero
	repo.On("SaveMovement", ctx, mock.AnythingOfType("domain.CashMovement")).
		Run(func(args mock.Arguments) {
			m := args.Get(1).(domain.CashMovement)
			recorded = recorded.Add(m.Amount)
		}).Return(nil)
	repo.On("SaveWithdrawal", ctx, mock.AnythingOfType("domain.CashMovement")).
		Run(func(args mock.Arguments) {
			m := args.Get(1).(domain.CashMovement)
			recorded = recorded.Add(m.Amount)
		}).Return(nil)

	_, err := svc.RecordDeposit(ctx, dto.CreateDepositRequest{Amount: decimal.RequireFromString("500"), Description: "float top-up", ActorID: "emp-1"})
	require.NoError(t, err)
	_, err = svc.RecordSale(ctx, dto.CreateSaleRequest{Amount: decimal.RequireFromString("6500"), OrderID: "order-42", ActorID: "pos"})
	require.NoError(t, err)
	_, err = svc.RecordWithdrawal(ctx, dto.CreateWithdrawalRequest{Amount: decimal.RequireFromString("2000"), Description: "bank run", ActorID: "emp-1"})
	require.NoError(t, err)

	assert.True(t, decimal.RequireFromString("5000").Equal(recorded), "signed sum is %s", recorded)
}
