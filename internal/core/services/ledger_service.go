package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/poscore/cashdesk_app/internal/apperrors"
	"github.com/poscore/cashdesk_app/internal/core/domain"
	portsrepo "github.com/poscore/cashdesk_app/internal/core/ports/repositories"
	portssvc "github.com/poscore/cashdesk_app/internal/core/ports/services"
	"github.com/poscore/cashdesk_app/internal/dto"
	"github.com/poscore/cashdesk_app/internal/middleware"
	"github.com/poscore/cashdesk_app/internal/utils/accounting"
	"github.com/shopspring/decimal"
)

// ledgerService provides the cash drawer ledger operations.
type ledgerService struct {
	movementRepo portsrepo.MovementRepositoryFacade
}

// NewLedgerService creates a new LedgerService.
func NewLedgerService(movementRepo portsrepo.MovementRepositoryFacade) portssvc.LedgerSvcFacade {
	return &ledgerService{movementRepo: movementRepo}
}

// Ensure ledgerService implements the portssvc.LedgerSvcFacade interface
var _ portssvc.LedgerSvcFacade = (*ledgerService)(nil)

// newMovement builds a ledger entry with the sign convention already applied.
func (s *ledgerService) newMovement(kind domain.MovementKind, amount decimal.Decimal, description string, orderID *string, actorID string) (domain.CashMovement, error) {
	signedAmount, err := accounting.NormalizeAmount(kind, amount)
	if err != nil {
		return domain.CashMovement{}, err
	}

	now := time.Now().UTC()
	return domain.CashMovement{
		MovementID:  uuid.NewString(),
		Kind:        kind,
		Amount:      signedAmount,
		Description: description,
		OrderID:     orderID,
		ClosureID:   nil,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     actorID,
			LastUpdatedAt: now,
			LastUpdatedBy: actorID,
		},
	}, nil
}

// RecordDeposit appends a positive CASH_IN movement.
func (s *ledgerService) RecordDeposit(ctx context.Context, req dto.CreateDepositRequest) (*domain.CashMovement, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	if req.Amount.LessThanOrEqual(decimal.Zero) {
		return nil, fmt.Errorf("%w: deposit amount must be positive, got %s", apperrors.ErrInvalidAmount, req.Amount)
	}

	movement, err := s.newMovement(domain.CashIn, req.Amount, req.Description, nil, req.ActorID)
	if err != nil {
		return nil, err
	}

	if err := s.movementRepo.SaveMovement(ctx, movement); err != nil {
		return nil, err
	}

	logger.Info("Deposit recorded",
		slog.String("movement_id", movement.MovementID),
		slog.String("amount", movement.Amount.String()),
		slog.String("actor_id", req.ActorID),
	)
	return &movement, nil
}

// RecordWithdrawal appends a negative CASH_OUT movement. The balance precondition
// and the insert run as one serialized unit in the repository, so concurrent
// withdrawals cannot jointly overdraw the drawer.
func (s *ledgerService) RecordWithdrawal(ctx context.Context, req dto.CreateWithdrawalRequest) (*domain.CashMovement, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	if req.Amount.LessThanOrEqual(decimal.Zero) {
		return nil, fmt.Errorf("%w: withdrawal amount must be positive, got %s", apperrors.ErrInvalidAmount, req.Amount)
	}

	movement, err := s.newMovement(domain.CashOut, req.Amount, req.Description, nil, req.ActorID)
	if err != nil {
		return nil, err
	}

	if err := s.movementRepo.SaveWithdrawal(ctx, movement); err != nil {
		return nil, err
	}

	logger.Info("Withdrawal recorded",
		slog.String("movement_id", movement.MovementID),
		slog.String("amount", movement.Amount.String()),
		slog.String("actor_id", req.ActorID),
	)
	return &movement, nil
}

// RecordSale appends a SALE movement posted by the order subsystem when a
// cash-settled order closes.
func (s *ledgerService) RecordSale(ctx context.Context, req dto.CreateSaleRequest) (*domain.CashMovement, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	if req.Amount.IsZero() {
		return nil, fmt.Errorf("%w: sale amount must be non-zero", apperrors.ErrInvalidAmount)
	}

	description := fmt.Sprintf("Cash sale for order %s", req.OrderID)
	movement, err := s.newMovement(domain.Sale, req.Amount, description, &req.OrderID, req.ActorID)
	if err != nil {
		return nil, err
	}

	if err := s.movementRepo.SaveMovement(ctx, movement); err != nil {
		return nil, err
	}

	logger.Info("Sale recorded",
		slog.String("movement_id", movement.MovementID),
		slog.String("order_id", req.OrderID),
		slog.String("amount", movement.Amount.String()),
	)
	return &movement, nil
}

// RecordRefund appends a negative REFUND movement paid out of the drawer.
func (s *ledgerService) RecordRefund(ctx context.Context, req dto.CreateRefundRequest) (*domain.CashMovement, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	if req.Amount.LessThanOrEqual(decimal.Zero) {
		return nil, fmt.Errorf("%w: refund amount must be positive, got %s", apperrors.ErrInvalidAmount, req.Amount)
	}

	description := fmt.Sprintf("Cash refund for order %s", req.OrderID)
	movement, err := s.newMovement(domain.Refund, req.Amount, description, &req.OrderID, req.ActorID)
	if err != nil {
		return nil, err
	}

	if err := s.movementRepo.SaveMovement(ctx, movement); err != nil {
		return nil, err
	}

	logger.Info("Refund recorded",
		slog.String("movement_id", movement.MovementID),
		slog.String("order_id", req.OrderID),
		slog.String("amount", movement.Amount.String()),
	)
	return &movement, nil
}

// RecordCorrection appends a CORRECTION movement keeping the operator-supplied sign.
func (s *ledgerService) RecordCorrection(ctx context.Context, req dto.CreateCorrectionRequest) (*domain.CashMovement, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	if req.Amount.IsZero() {
		return nil, fmt.Errorf("%w: correction amount must be non-zero", apperrors.ErrInvalidAmount)
	}

	movement, err := s.newMovement(domain.Correction, req.Amount, req.Description, nil, req.ActorID)
	if err != nil {
		return nil, err
	}

	if err := s.movementRepo.SaveMovement(ctx, movement); err != nil {
		return nil, err
	}

	logger.Info("Correction recorded",
		slog.String("movement_id", movement.MovementID),
		slog.String("amount", movement.Amount.String()),
		slog.String("actor_id", req.ActorID),
	)
	return &movement, nil
}

// GetUnassignedBalance returns the drawer's current unassigned balance.
func (s *ledgerService) GetUnassignedBalance(ctx context.Context) (decimal.Decimal, error) {
	return s.movementRepo.GetUnassignedBalance(ctx)
}

// ListMovements retrieves a paginated movement listing.
func (s *ledgerService) ListMovements(ctx context.Context, filter portsrepo.MovementListFilter, limit int, nextToken *string) ([]domain.CashMovement, *string, error) {
	if limit <= 0 {
		limit = defaultListLimit
	}
	if limit > maxListLimit {
		limit = maxListLimit
	}
	return s.movementRepo.ListMovements(ctx, filter, limit, nextToken)
}
