package pgsql

import (
	"github.com/jackc/pgx/v5/pgxpool"
	portsrepo "github.com/poscore/cashdesk_app/internal/core/ports/repositories"
)

func NewRepositoryProvider(dbPool *pgxpool.Pool) portsrepo.RepositoryProvider {
	movementRepo := newPgxMovementRepository(dbPool)
	closureRepo := newPgxClosureRepository(dbPool, movementRepo)

	return portsrepo.RepositoryProvider{
		MovementRepo: movementRepo,
		ClosureRepo:  closureRepo,
	}
}
