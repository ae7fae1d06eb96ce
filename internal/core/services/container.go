package services

import (
	portsrepo "github.com/poscore/cashdesk_app/internal/core/ports/repositories"
	portssvc "github.com/poscore/cashdesk_app/internal/core/ports/services"
)

// NewServiceContainer creates the service container with properly initialized
// dependencies. The revenue service is built first since the closure service
// snapshots through it.
func NewServiceContainer(repos portsrepo.RepositoryProvider, reporting portssvc.OrderReporting) *portssvc.ServiceContainer {
	revenue := NewRevenueService(reporting)

	return &portssvc.ServiceContainer{
		Ledger:  NewLedgerService(repos.MovementRepo),
		Closure: NewClosureService(repos.ClosureRepo, revenue),
		Revenue: revenue,
	}
}
