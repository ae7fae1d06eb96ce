package services

import (
	"context"
	"errors"
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
	"github.com/poscore/cashdesk_app/internal/utils"
	"github.com/shopspring/decimal"
)

const (
	defaultListLimit = 50
	maxListLimit     = 200
)

// closureService orchestrates the daily closure state machine.
type closureService struct {
	closureRepo portsrepo.ClosureRepositoryFacade
	revenueSvc  portssvc.RevenueSvcFacade
}

// NewClosureService creates a new ClosureService.
func NewClosureService(closureRepo portsrepo.ClosureRepositoryFacade, revenueSvc portssvc.RevenueSvcFacade) portssvc.ClosureSvcFacade {
	return &closureService{
		closureRepo: closureRepo,
		revenueSvc:  revenueSvc,
	}
}

// Ensure closureService implements the portssvc.ClosureSvcFacade interface
var _ portssvc.ClosureSvcFacade = (*closureService)(nil)

// businessDate normalizes a timestamp to its UTC calendar date.
func businessDate(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// CreateClosure opens a new daily closure, snapshotting the order subsystem's
// revenue totals. An unreachable order subsystem degrades the snapshot to zeroes;
// it never fails the creation.
func (s *closureService) CreateClosure(ctx context.Context, req dto.CreateClosureRequest) (*domain.DailyClosure, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	if req.OpeningBalance.IsNegative() {
		return nil, fmt.Errorf("%w: opening balance must not be negative, got %s", apperrors.ErrInvalidAmount, req.OpeningBalance)
	}

	date := businessDate(time.Now())
	if req.Date != nil {
		parsed, err := time.Parse("2006-01-02", *req.Date)
		if err != nil {
			return nil, fmt.Errorf("%w: invalid closure date %q, expected YYYY-MM-DD", apperrors.ErrValidation, *req.Date)
		}
		date = businessDate(parsed)
	}

	// Creation-time revenue snapshot; independent of the close-time payment summary.
	summary := s.revenueSvc.AggregateDaily(ctx, date)
	if !summary.Available {
		logger.Warn("Creating closure with degraded revenue snapshot",
			slog.String("closure_date", date.Format("2006-01-02")))
	}

	now := time.Now().UTC()
	closure := domain.DailyClosure{
		ClosureID:      uuid.NewString(),
		ClosureDate:    date,
		Status:         domain.ClosureOpen,
		OpeningBalance: req.OpeningBalance,
		TotalCash:      summary.Cash,
		TotalCard:      summary.Card,
		TotalSzepCard:  summary.SzepCard,
		TotalRevenue:   summary.Total,
		Notes:          req.Notes,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     req.ActorID,
			LastUpdatedAt: now,
			LastUpdatedBy: req.ActorID,
		},
	}

	if err := s.closureRepo.SaveClosure(ctx, closure); err != nil {
		if errors.Is(err, apperrors.ErrDuplicate) {
			return nil, fmt.Errorf("%w: %s", apperrors.ErrDuplicateOpenClosure, date.Format("2006-01-02"))
		}
		return nil, err
	}

	logger.Info("Closure opened",
		slog.String("closure_id", closure.ClosureID),
		slog.String("closure_date", date.Format("2006-01-02")),
		slog.String("opening_balance", utils.FormatAmount(closure.OpeningBalance)),
	)
	return &closure, nil
}

// CloseClosure reconciles and closes an open closure. The unassigned-balance read
// and the movement sweep happen atomically in the repository; the close-time payment
// summary re-fetch stays best-effort and outside that transaction.
func (s *closureService) CloseClosure(ctx context.Context, closureID string, req dto.CloseClosureRequest) (*domain.DailyClosure, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	if req.ActualClosingBalance.IsNegative() {
		return nil, fmt.Errorf("%w: actual closing balance must not be negative, got %s", apperrors.ErrInvalidAmount, req.ActualClosingBalance)
	}

	closure, err := s.closureRepo.FindClosureByID(ctx, closureID)
	if err != nil {
		return nil, err
	}
	if closure.IsClosed() {
		return nil, fmt.Errorf("%w: closure %s for date %s", apperrors.ErrAlreadyClosed, closureID, closure.ClosureDate.Format("2006-01-02"))
	}

	// Second, independent best-effort snapshot; nil keeps whatever is stored.
	var paymentSummary map[string]decimal.Decimal
	if summary := s.revenueSvc.AggregateDaily(ctx, closure.ClosureDate); summary.Available {
		paymentSummary = summary.ByMethod
	} else {
		logger.Warn("Closing without a fresh payment summary",
			slog.String("closure_id", closureID))
	}

	closed, assignedCount, err := s.closureRepo.FinalizeClosure(ctx, closureID, portsrepo.ClosureFinalization{
		ActualClosingBalance: req.ActualClosingBalance,
		PaymentSummary:       paymentSummary,
		Notes:                req.Notes,
		ClosedBy:             req.ActorID,
		ClosedAt:             time.Now().UTC(),
	})
	if err != nil {
		return nil, err
	}

	difference := decimal.Zero
	if closed.Difference != nil {
		difference = *closed.Difference
	}
	logger.Info("Closure closed",
		slog.String("closure_id", closed.ClosureID),
		slog.Int64("assigned_movements", assignedCount),
		slog.String("difference", utils.FormatAmount(difference)),
	)
	return closed, nil
}

// MarkReconciled applies the RECONCILED audit label to a CLOSED closure.
func (s *closureService) MarkReconciled(ctx context.Context, closureID string, actorID string) (*domain.DailyClosure, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	reconciled, err := s.closureRepo.MarkReconciled(ctx, closureID, actorID, time.Now().UTC())
	if err != nil {
		return nil, err
	}

	logger.Info("Closure reconciled",
		slog.String("closure_id", closureID),
		slog.String("actor_id", actorID),
	)
	return reconciled, nil
}

// GetClosureByID retrieves a single closure.
func (s *closureService) GetClosureByID(ctx context.Context, closureID string) (*domain.DailyClosure, error) {
	return s.closureRepo.FindClosureByID(ctx, closureID)
}

// ListClosures retrieves a paginated closure listing.
func (s *closureService) ListClosures(ctx context.Context, filter portsrepo.ClosureListFilter, limit int, nextToken *string) ([]domain.DailyClosure, *string, error) {
	if limit <= 0 {
		limit = defaultListLimit
	}
	if limit > maxListLimit {
		limit = maxListLimit
	}
	return s.closureRepo.ListClosures(ctx, filter, limit, nextToken)
}
