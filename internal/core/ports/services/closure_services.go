package services

import (
	"context"

	"github.com/poscore/cashdesk_app/internal/core/domain"
	portsrepo "github.com/poscore/cashdesk_app/internal/core/ports/repositories"
	"github.com/poscore/cashdesk_app/internal/dto"
)

// ClosureReaderSvc defines read operations on daily closures.
type ClosureReaderSvc interface {
	// GetClosureByID retrieves a single closure.
	GetClosureByID(ctx context.Context, closureID string) (*domain.DailyClosure, error)

	// ListClosures retrieves a paginated closure listing.
	ListClosures(ctx context.Context, filter portsrepo.ClosureListFilter, limit int, nextToken *string) ([]domain.DailyClosure, *string, error)
}

// ClosureWriterSvc defines the daily closure state machine operations.
type ClosureWriterSvc interface {
	// CreateClosure opens a new closure for a date, snapshotting the revenue totals.
	CreateClosure(ctx context.Context, req dto.CreateClosureRequest) (*domain.DailyClosure, error)

	// CloseClosure reconciles and closes an open closure, sweeping all unassigned
	// movements into it atomically.
	CloseClosure(ctx context.Context, closureID string, req dto.CloseClosureRequest) (*domain.DailyClosure, error)

	// MarkReconciled applies the RECONCILED audit label to a CLOSED closure.
	MarkReconciled(ctx context.Context, closureID string, actorID string) (*domain.DailyClosure, error)
}

// ClosureSvcFacade combines all closure service interfaces.
type ClosureSvcFacade interface {
	ClosureReaderSvc
	ClosureWriterSvc
}
