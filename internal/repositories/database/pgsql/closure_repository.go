package pgsql

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/poscore/cashdesk_app/internal/apperrors"
	"github.com/poscore/cashdesk_app/internal/core/domain"
	portsrepo "github.com/poscore/cashdesk_app/internal/core/ports/repositories"
	"github.com/poscore/cashdesk_app/internal/models"
	"github.com/poscore/cashdesk_app/internal/utils/accounting"
	"github.com/poscore/cashdesk_app/internal/utils/mapping"
	"github.com/poscore/cashdesk_app/internal/utils/pagination"
)

const closureColumns = `closure_id, closure_date, status, opening_balance, total_cash, total_card, total_szep_card, total_revenue,
		expected_closing_balance, actual_closing_balance, difference, payment_summary, notes, closed_by, closed_at,
		created_at, created_by, last_updated_at, last_updated_by`

type PgxClosureRepository struct {
	BaseRepository
	movementRepo portsrepo.MovementRepositoryFacade
}

// newPgxClosureRepository creates a new repository for daily closure data.
// The movement repository is injected because the closure sweep mutates movement rows
// inside the closure's own transaction.
func newPgxClosureRepository(pool *pgxpool.Pool, movementRepo portsrepo.MovementRepositoryFacade) portsrepo.ClosureRepositoryFacade {
	return &PgxClosureRepository{
		BaseRepository: BaseRepository{Pool: pool},
		movementRepo:   movementRepo,
	}
}

// Ensure PgxClosureRepository implements portsrepo.ClosureRepositoryFacade
var _ portsrepo.ClosureRepositoryFacade = (*PgxClosureRepository)(nil)

// SaveClosure inserts a new closure row. The partial unique index on
// daily_closures(closure_date) WHERE status <> 'CLOSED' enforces the
// one-open-closure-per-date invariant atomically with the insert.
func (r *PgxClosureRepository) SaveClosure(ctx context.Context, closure domain.DailyClosure) error {
	modelClosure, err := mapping.ToModelClosure(closure)
	if err != nil {
		return err
	}

	query := `
		INSERT INTO daily_closures (` + closureColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19);
	`
	_, err = r.Pool.Exec(ctx, query,
		modelClosure.ClosureID,
		modelClosure.ClosureDate,
		modelClosure.Status,
		modelClosure.OpeningBalance,
		modelClosure.TotalCash,
		modelClosure.TotalCard,
		modelClosure.TotalSzepCard,
		modelClosure.TotalRevenue,
		modelClosure.ExpectedClosingBalance,
		modelClosure.ActualClosingBalance,
		modelClosure.Difference,
		modelClosure.PaymentSummary,
		modelClosure.Notes,
		modelClosure.ClosedBy,
		modelClosure.ClosedAt,
		modelClosure.CreatedAt,
		modelClosure.CreatedBy,
		modelClosure.LastUpdatedAt,
		modelClosure.LastUpdatedBy,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) {
			if pgErr.Code == "23505" { // Unique violation
				return fmt.Errorf("%w: date %s", apperrors.ErrDuplicate, modelClosure.ClosureDate.Format("2006-01-02"))
			}
		}
		return fmt.Errorf("failed to save closure %s: %w", modelClosure.ClosureID, err)
	}
	return nil
}

// FindClosureByID retrieves a closure by its ID.
func (r *PgxClosureRepository) FindClosureByID(ctx context.Context, closureID string) (*domain.DailyClosure, error) {
	query := `SELECT ` + closureColumns + ` FROM daily_closures WHERE closure_id = $1;`

	modelClosure, err := scanClosure(r.Pool.QueryRow(ctx, query, closureID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%w: closure %s", apperrors.ErrNotFound, closureID)
		}
		return nil, fmt.Errorf("failed to find closure %s: %w", closureID, err)
	}

	closure, err := mapping.ToDomainClosure(*modelClosure)
	if err != nil {
		return nil, err
	}
	return &closure, nil
}

// ListClosures retrieves closures newest date first with keyset pagination on
// (closure_date, closure_id).
func (r *PgxClosureRepository) ListClosures(ctx context.Context, filter portsrepo.ClosureListFilter, limit int, nextToken *string) ([]domain.DailyClosure, *string, error) {
	query := `SELECT ` + closureColumns + ` FROM daily_closures`
	args := []interface{}{}
	conditions := []string{}

	if filter.From != nil {
		args = append(args, *filter.From)
		conditions = append(conditions, fmt.Sprintf("closure_date >= $%d", len(args)))
	}
	if filter.To != nil {
		args = append(args, *filter.To)
		conditions = append(conditions, fmt.Sprintf("closure_date <= $%d", len(args)))
	}
	if filter.Status != nil {
		args = append(args, string(*filter.Status))
		conditions = append(conditions, fmt.Sprintf("status = $%d", len(args)))
	}

	if nextToken != nil {
		closureDate, closureID, err := pagination.DecodeToken(*nextToken)
		if err != nil {
			return nil, nil, fmt.Errorf("%w: %s", apperrors.ErrValidation, err.Error())
		}
		args = append(args, closureDate, closureID)
		conditions = append(conditions, fmt.Sprintf("(closure_date, closure_id) < ($%d, $%d)", len(args)-1, len(args)))
	}

	for i, cond := range conditions {
		if i == 0 {
			query += " WHERE " + cond
		} else {
			query += " AND " + cond
		}
	}

	args = append(args, limit+1) // Fetch one extra row to detect whether a next page exists
	query += fmt.Sprintf(" ORDER BY closure_date DESC, closure_id DESC LIMIT $%d;", len(args))

	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to list closures: %w", err)
	}
	defer rows.Close()

	modelClosures := []models.DailyClosure{}
	for rows.Next() {
		m, err := scanClosure(rows)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to scan closure row: %w", err)
		}
		modelClosures = append(modelClosures, *m)
	}
	if err := rows.Err(); err != nil {
		return nil, nil, fmt.Errorf("failed to iterate closure rows: %w", err)
	}

	var token *string
	if len(modelClosures) > limit {
		modelClosures = modelClosures[:limit]
		last := modelClosures[len(modelClosures)-1]
		t := pagination.EncodeToken(last.ClosureDate, last.ClosureID)
		token = &t
	}

	closures := make([]domain.DailyClosure, len(modelClosures))
	for i, m := range modelClosures {
		c, err := mapping.ToDomainClosure(m)
		if err != nil {
			return nil, nil, err
		}
		closures[i] = c
	}

	return closures, token, nil
}

// FinalizeClosure performs the atomic close sequence: lock the drawer, re-check the
// closure status under a row lock, sweep all unassigned movements into the closure,
// derive the expected balance and difference from the exact swept set, and persist
// the CLOSED state. There is no window in which a new movement can be recorded and
// end up neither in this closure's sum nor available to a future closure.
func (r *PgxClosureRepository) FinalizeClosure(ctx context.Context, closureID string, fin portsrepo.ClosureFinalization) (*domain.DailyClosure, int64, error) {
	tx, err := r.Begin(ctx)
	if err != nil {
		return nil, 0, err
	}
	defer r.Rollback(ctx, tx)

	if err := lockDrawerLedger(ctx, tx); err != nil {
		return nil, 0, err
	}

	query := `SELECT ` + closureColumns + ` FROM daily_closures WHERE closure_id = $1 FOR UPDATE;`
	modelClosure, err := scanClosure(tx.QueryRow(ctx, query, closureID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, 0, fmt.Errorf("%w: closure %s", apperrors.ErrNotFound, closureID)
		}
		return nil, 0, fmt.Errorf("failed to lock closure %s: %w", closureID, err)
	}

	if modelClosure.Status != models.ClosureOpen {
		return nil, 0, fmt.Errorf("%w: closure %s has status %s", apperrors.ErrAlreadyClosed, closureID, modelClosure.Status)
	}

	assignedSum, assignedCount, err := r.movementRepo.AssignUnassignedInTx(ctx, tx, closureID, fin.ClosedBy, fin.ClosedAt)
	if err != nil {
		return nil, 0, err
	}

	expected, difference := accounting.Reconcile(modelClosure.OpeningBalance, assignedSum, fin.ActualClosingBalance)

	var summaryJSON []byte
	if fin.PaymentSummary != nil {
		summaryJSON, err = json.Marshal(fin.PaymentSummary)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to marshal payment summary for closure %s: %w", closureID, err)
		}
	}

	// A nil close-time summary keeps whatever the creation-time insert stored.
	updateQuery := `
		UPDATE daily_closures
		SET status = $2,
			expected_closing_balance = $3,
			actual_closing_balance = $4,
			difference = $5,
			payment_summary = COALESCE($6, payment_summary),
			notes = COALESCE($7, notes),
			closed_by = $8,
			closed_at = $9,
			last_updated_at = $9,
			last_updated_by = $8
		WHERE closure_id = $1;
	`
	_, err = tx.Exec(ctx, updateQuery,
		closureID,
		models.ClosureClosed,
		expected,
		fin.ActualClosingBalance,
		difference,
		summaryJSON,
		fin.Notes,
		fin.ClosedBy,
		fin.ClosedAt,
	)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to close closure %s: %w", closureID, err)
	}

	if err := r.Commit(ctx, tx); err != nil {
		return nil, 0, err
	}

	closed, err := r.FindClosureByID(ctx, closureID)
	if err != nil {
		return nil, 0, err
	}
	return closed, assignedCount, nil
}

// MarkReconciled advances a CLOSED closure to the RECONCILED terminal label.
func (r *PgxClosureRepository) MarkReconciled(ctx context.Context, closureID string, updatedBy string, now time.Time) (*domain.DailyClosure, error) {
	tag, err := r.Pool.Exec(ctx, `
		UPDATE daily_closures
		SET status = $2, last_updated_at = $3, last_updated_by = $4
		WHERE closure_id = $1 AND status = $5;
	`, closureID, models.ClosureReconciled, now, updatedBy, models.ClosureClosed)
	if err != nil {
		return nil, fmt.Errorf("failed to mark closure %s reconciled: %w", closureID, err)
	}

	if tag.RowsAffected() == 0 {
		// Distinguish a missing closure from one in the wrong state.
		existing, findErr := r.FindClosureByID(ctx, closureID)
		if findErr != nil {
			return nil, findErr
		}
		return nil, fmt.Errorf("%w: closure %s has status %s, only CLOSED closures can be reconciled",
			apperrors.ErrValidation, closureID, existing.Status)
	}

	return r.FindClosureByID(ctx, closureID)
}

// scanClosure scans one daily_closures row in closureColumns order.
func scanClosure(row pgx.Row) (*models.DailyClosure, error) {
	var m models.DailyClosure
	err := row.Scan(
		&m.ClosureID,
		&m.ClosureDate,
		&m.Status,
		&m.OpeningBalance,
		&m.TotalCash,
		&m.TotalCard,
		&m.TotalSzepCard,
		&m.TotalRevenue,
		&m.ExpectedClosingBalance,
		&m.ActualClosingBalance,
		&m.Difference,
		&m.PaymentSummary,
		&m.Notes,
		&m.ClosedBy,
		&m.ClosedAt,
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
