package pgsql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/poscore/cashdesk_app/internal/apperrors"
	"github.com/poscore/cashdesk_app/internal/core/domain"
	portsrepo "github.com/poscore/cashdesk_app/internal/core/ports/repositories"
	"github.com/poscore/cashdesk_app/internal/models"
	"github.com/poscore/cashdesk_app/internal/utils/mapping"
	"github.com/poscore/cashdesk_app/internal/utils/pagination"
	"github.com/shopspring/decimal"
)

const movementColumns = `movement_id, kind, amount, description, order_id, closure_id, created_at, created_by, last_updated_at, last_updated_by`

type PgxMovementRepository struct {
	BaseRepository
}

// newPgxMovementRepository creates a new repository for cash movement data.
func newPgxMovementRepository(pool *pgxpool.Pool) portsrepo.MovementRepositoryFacade {
	return &PgxMovementRepository{BaseRepository: BaseRepository{Pool: pool}}
}

// Ensure PgxMovementRepository implements portsrepo.MovementRepositoryFacade
var _ portsrepo.MovementRepositoryFacade = (*PgxMovementRepository)(nil)

// SaveMovement appends a movement to the ledger. Deposits, sales, refunds and
// corrections only grow the unassigned set, so no balance precondition or drawer
// lock is needed here.
func (r *PgxMovementRepository) SaveMovement(ctx context.Context, movement domain.CashMovement) error {
	modelMovement := mapping.ToModelMovement(movement)

	query := `
		INSERT INTO cash_movements (` + movementColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10);
	`
	_, err := r.Pool.Exec(ctx, query,
		modelMovement.MovementID,
		modelMovement.Kind,
		modelMovement.Amount,
		modelMovement.Description,
		modelMovement.OrderID,
		modelMovement.ClosureID,
		modelMovement.CreatedAt,
		modelMovement.CreatedBy,
		modelMovement.LastUpdatedAt,
		modelMovement.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to insert movement %s: %w", modelMovement.MovementID, err)
	}
	return nil
}

// SaveWithdrawal performs the atomic balance-check-and-insert required for CASH_OUT
// movements. The drawer lock serializes this against concurrent withdrawals and
// against a running closure sweep, so two withdrawals can never jointly overdraw
// the drawer and a withdrawal can never slip between a closure's balance read and
// its movement sweep.
func (r *PgxMovementRepository) SaveWithdrawal(ctx context.Context, movement domain.CashMovement) error {
	modelMovement := mapping.ToModelMovement(movement)

	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx)

	if err := lockDrawerLedger(ctx, tx); err != nil {
		return err
	}

	var balance decimal.Decimal
	err = tx.QueryRow(ctx, `SELECT COALESCE(SUM(amount), 0) FROM cash_movements WHERE closure_id IS NULL`).Scan(&balance)
	if err != nil {
		return fmt.Errorf("failed to read unassigned balance: %w", err)
	}

	// movement.Amount is already negative; the withdrawal fits iff the sum stays >= 0.
	if balance.Add(modelMovement.Amount).IsNegative() {
		return fmt.Errorf("%w: balance %s does not cover withdrawal of %s",
			apperrors.ErrInsufficientFunds, balance.String(), modelMovement.Amount.Neg().String())
	}

	query := `
		INSERT INTO cash_movements (` + movementColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10);
	`
	_, err = tx.Exec(ctx, query,
		modelMovement.MovementID,
		modelMovement.Kind,
		modelMovement.Amount,
		modelMovement.Description,
		modelMovement.OrderID,
		modelMovement.ClosureID,
		modelMovement.CreatedAt,
		modelMovement.CreatedBy,
		modelMovement.LastUpdatedAt,
		modelMovement.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to insert withdrawal %s: %w", modelMovement.MovementID, err)
	}

	return r.Commit(ctx, tx)
}

// GetUnassignedBalance returns the signed sum over all movements not yet swept into
// a closure.
func (r *PgxMovementRepository) GetUnassignedBalance(ctx context.Context) (decimal.Decimal, error) {
	var balance decimal.Decimal
	err := r.Pool.QueryRow(ctx, `SELECT COALESCE(SUM(amount), 0) FROM cash_movements WHERE closure_id IS NULL`).Scan(&balance)
	if err != nil {
		return decimal.Zero, fmt.Errorf("failed to read unassigned balance: %w", err)
	}
	return balance, nil
}

// FindMovementByID retrieves a movement by its ID.
func (r *PgxMovementRepository) FindMovementByID(ctx context.Context, movementID string) (*domain.CashMovement, error) {
	query := `SELECT ` + movementColumns + ` FROM cash_movements WHERE movement_id = $1;`

	modelMovement, err := scanMovement(r.Pool.QueryRow(ctx, query, movementID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%w: movement %s", apperrors.ErrNotFound, movementID)
		}
		return nil, fmt.Errorf("failed to find movement %s: %w", movementID, err)
	}

	movement := mapping.ToDomainMovement(*modelMovement)
	return &movement, nil
}

// ListMovements retrieves movements newest first with keyset pagination on
// (created_at, movement_id).
func (r *PgxMovementRepository) ListMovements(ctx context.Context, filter portsrepo.MovementListFilter, limit int, nextToken *string) ([]domain.CashMovement, *string, error) {
	query := `SELECT ` + movementColumns + ` FROM cash_movements`
	args := []interface{}{}
	conditions := []string{}

	if filter.UnassignedOnly {
		conditions = append(conditions, "closure_id IS NULL")
	} else if filter.ClosureID != nil {
		args = append(args, *filter.ClosureID)
		conditions = append(conditions, fmt.Sprintf("closure_id = $%d", len(args)))
	}

	if nextToken != nil {
		createdAt, movementID, err := pagination.DecodeToken(*nextToken)
		if err != nil {
			return nil, nil, fmt.Errorf("%w: %s", apperrors.ErrValidation, err.Error())
		}
		args = append(args, createdAt, movementID)
		conditions = append(conditions, fmt.Sprintf("(created_at, movement_id) < ($%d, $%d)", len(args)-1, len(args)))
	}

	for i, cond := range conditions {
		if i == 0 {
			query += " WHERE " + cond
		} else {
			query += " AND " + cond
		}
	}

	args = append(args, limit+1) // Fetch one extra row to detect whether a next page exists
	query += fmt.Sprintf(" ORDER BY created_at DESC, movement_id DESC LIMIT $%d;", len(args))

	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to list movements: %w", err)
	}
	defer rows.Close()

	modelMovements := []models.CashMovement{}
	for rows.Next() {
		m, err := scanMovement(rows)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to scan movement row: %w", err)
		}
		modelMovements = append(modelMovements, *m)
	}
	if err := rows.Err(); err != nil {
		return nil, nil, fmt.Errorf("failed to iterate movement rows: %w", err)
	}

	var token *string
	if len(modelMovements) > limit {
		modelMovements = modelMovements[:limit]
		last := modelMovements[len(modelMovements)-1]
		t := pagination.EncodeToken(last.CreatedAt, last.MovementID)
		token = &t
	}

	return mapping.ToDomainMovements(modelMovements), token, nil
}

// AssignUnassignedInTx sweeps every currently-unassigned movement into closureID
// within the caller's transaction. The UPDATE ... RETURNING makes the assigned set
// and the returned sum the same set by construction.
func (r *PgxMovementRepository) AssignUnassignedInTx(ctx context.Context, tx pgx.Tx, closureID string, updatedBy string, now time.Time) (decimal.Decimal, int64, error) {
	rows, err := tx.Query(ctx, `
		UPDATE cash_movements
		SET closure_id = $1, last_updated_at = $2, last_updated_by = $3
		WHERE closure_id IS NULL
		RETURNING amount;
	`, closureID, now, updatedBy)
	if err != nil {
		return decimal.Zero, 0, fmt.Errorf("failed to assign unassigned movements to closure %s: %w", closureID, err)
	}
	defer rows.Close()

	sum := decimal.Zero
	var count int64
	for rows.Next() {
		var amount decimal.Decimal
		if err := rows.Scan(&amount); err != nil {
			return decimal.Zero, 0, fmt.Errorf("failed to scan assigned amount: %w", err)
		}
		sum = sum.Add(amount)
		count++
	}
	if err := rows.Err(); err != nil {
		return decimal.Zero, 0, fmt.Errorf("failed to iterate assigned amounts: %w", err)
	}

	return sum, count, nil
}

// scanMovement scans one cash_movements row in movementColumns order.
func scanMovement(row pgx.Row) (*models.CashMovement, error) {
	var m models.CashMovement
	err := row.Scan(
		&m.MovementID,
		&m.Kind,
		&m.Amount,
		&m.Description,
		&m.OrderID,
		&m.ClosureID,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	if err != nil {
		return nil, err
	}
	return &m, nil
}
