package repositories

import (
	"context"
	"time"

	"github.com/poscore/cashdesk_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// ClosureListFilter narrows a closure listing.
type ClosureListFilter struct {
	From   *time.Time            // Inclusive closure_date lower bound
	To     *time.Time            // Inclusive closure_date upper bound
	Status *domain.ClosureStatus // Optional status filter
}

// ClosureFinalization carries the operator-supplied inputs of a close operation into
// the repository's atomic finalize transaction.
type ClosureFinalization struct {
	ActualClosingBalance decimal.Decimal
	PaymentSummary       map[string]decimal.Decimal // Nil when the close-time snapshot was unavailable
	Notes                *string
	ClosedBy             string
	ClosedAt             time.Time
}

// ClosureReader defines read operations for daily closure data
type ClosureReader interface {
	// FindClosureByID retrieves a specific closure by its unique identifier.
	FindClosureByID(ctx context.Context, closureID string) (*domain.DailyClosure, error)

	// ListClosures retrieves a paginated list of closures, newest closure_date first,
	// using token-based pagination.
	ListClosures(ctx context.Context, filter ClosureListFilter, limit int, nextToken *string) ([]domain.DailyClosure, *string, error)
}

// ClosureWriter defines write operations for daily closure data
type ClosureWriter interface {
	// SaveClosure inserts a new closure row in OPEN status. Returns
	// apperrors.ErrDuplicate when a non-closed closure already exists for the date.
	SaveClosure(ctx context.Context, closure domain.DailyClosure) error

	// FinalizeClosure performs the atomic close: under the drawer lock it re-checks
	// the closure status, sweeps every unassigned movement into the closure, computes
	// the expected balance and difference from the exact swept set, and persists the
	// CLOSED state. Returns the closed closure and the number of swept movements.
	FinalizeClosure(ctx context.Context, closureID string, fin ClosureFinalization) (*domain.DailyClosure, int64, error)

	// MarkReconciled advances a CLOSED closure to the RECONCILED terminal label.
	MarkReconciled(ctx context.Context, closureID string, updatedBy string, now time.Time) (*domain.DailyClosure, error)
}

// ClosureRepositoryFacade combines all closure-related repository interfaces.
type ClosureRepositoryFacade interface {
	ClosureReader
	ClosureWriter
}
