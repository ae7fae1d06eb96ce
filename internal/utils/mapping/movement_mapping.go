package mapping

import (
	"github.com/poscore/cashdesk_app/internal/core/domain"
	"github.com/poscore/cashdesk_app/internal/models"
)

// ToModelMovement converts a domain CashMovement to its persistence model.
func ToModelMovement(d domain.CashMovement) models.CashMovement {
	return models.CashMovement{
		MovementID:  d.MovementID,
		Kind:        models.MovementKind(d.Kind),
		Amount:      d.Amount,
		Description: d.Description,
		OrderID:     d.OrderID,
		ClosureID:   d.ClosureID,
		AuditFields: ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainMovement converts a persistence model CashMovement to its domain form.
func ToDomainMovement(m models.CashMovement) domain.CashMovement {
	return domain.CashMovement{
		MovementID:  m.MovementID,
		Kind:        domain.MovementKind(m.Kind),
		Amount:      m.Amount,
		Description: m.Description,
		OrderID:     m.OrderID,
		ClosureID:   m.ClosureID,
		AuditFields: ToDomainAuditFields(m.AuditFields),
	}
}

// ToDomainMovements converts a slice of model movements.
func ToDomainMovements(ms []models.CashMovement) []domain.CashMovement {
	out := make([]domain.CashMovement, len(ms))
	for i, m := range ms {
		out[i] = ToDomainMovement(m)
	}
	return out
}
