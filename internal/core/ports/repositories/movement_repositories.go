package repositories

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/poscore/cashdesk_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// MovementListFilter narrows a movement listing.
type MovementListFilter struct {
	// UnassignedOnly restricts the listing to movements not yet swept into a closure.
	UnassignedOnly bool
	// ClosureID restricts the listing to movements assigned to one closure.
	ClosureID *string
}

// MovementReader defines read operations for cash movement data
type MovementReader interface {
	// FindMovementByID retrieves a specific movement by its unique identifier.
	FindMovementByID(ctx context.Context, movementID string) (*domain.CashMovement, error)

	// GetUnassignedBalance returns the signed sum of all movements with no closure
	// assignment. It reflects every write committed strictly before the read.
	GetUnassignedBalance(ctx context.Context) (decimal.Decimal, error)

	// ListMovements retrieves a paginated list of movements, newest first, using
	// token-based pagination. It returns the movements, a token for the next page,
	// and an error.
	ListMovements(ctx context.Context, filter MovementListFilter, limit int, nextToken *string) ([]domain.CashMovement, *string, error)
}

// MovementWriter defines write operations for cash movement data
type MovementWriter interface {
	// SaveMovement appends a movement to the ledger. The movement's sign must already
	// follow the drawer convention; no balance precondition is checked.
	SaveMovement(ctx context.Context, movement domain.CashMovement) error

	// SaveWithdrawal appends a withdrawal (negative amount) after verifying, inside
	// one serialized transaction, that the unassigned balance covers it. Returns
	// apperrors.ErrInsufficientFunds without any write when it does not.
	SaveWithdrawal(ctx context.Context, movement domain.CashMovement) error

	// AssignUnassignedInTx stamps closureID onto every currently-unassigned movement
	// within the caller's transaction and returns the signed sum of the assigned
	// amounts and how many rows were updated. Callers must hold the drawer lock.
	AssignUnassignedInTx(ctx context.Context, tx pgx.Tx, closureID string, updatedBy string, now time.Time) (decimal.Decimal, int64, error)
}

// MovementRepositoryFacade combines all movement-related repository interfaces.
type MovementRepositoryFacade interface {
	MovementReader
	MovementWriter
}
