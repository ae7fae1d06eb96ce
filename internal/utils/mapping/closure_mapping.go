package mapping

import (
	"encoding/json"
	"fmt"

	"github.com/poscore/cashdesk_app/internal/core/domain"
	"github.com/poscore/cashdesk_app/internal/models"
	"github.com/shopspring/decimal"
)

// ToModelClosure converts a domain DailyClosure to its persistence model.
// The payment summary map is serialised to JSONB; a nil map stays NULL.
func ToModelClosure(d domain.DailyClosure) (models.DailyClosure, error) {
	var summary []byte
	if d.PaymentSummary != nil {
		raw, err := json.Marshal(d.PaymentSummary)
		if err != nil {
			return models.DailyClosure{}, fmt.Errorf("failed to marshal payment summary for closure %s: %w", d.ClosureID, err)
		}
		summary = raw
	}

	return models.DailyClosure{
		ClosureID:              d.ClosureID,
		ClosureDate:            d.ClosureDate,
		Status:                 models.ClosureStatus(d.Status),
		OpeningBalance:         d.OpeningBalance,
		TotalCash:              d.TotalCash,
		TotalCard:              d.TotalCard,
		TotalSzepCard:          d.TotalSzepCard,
		TotalRevenue:           d.TotalRevenue,
		ExpectedClosingBalance: d.ExpectedClosingBalance,
		ActualClosingBalance:   d.ActualClosingBalance,
		Difference:             d.Difference,
		PaymentSummary:         summary,
		Notes:                  d.Notes,
		ClosedBy:               d.ClosedBy,
		ClosedAt:               d.ClosedAt,
		AuditFields:            ToModelAuditFields(d.AuditFields),
	}, nil
}

// ToDomainClosure converts a persistence model DailyClosure to its domain form.
func ToDomainClosure(m models.DailyClosure) (domain.DailyClosure, error) {
	var summary map[string]decimal.Decimal
	if len(m.PaymentSummary) > 0 {
		if err := json.Unmarshal(m.PaymentSummary, &summary); err != nil {
			return domain.DailyClosure{}, fmt.Errorf("failed to unmarshal payment summary for closure %s: %w", m.ClosureID, err)
		}
	}

	return domain.DailyClosure{
		ClosureID:              m.ClosureID,
		ClosureDate:            m.ClosureDate,
		Status:                 domain.ClosureStatus(m.Status),
		OpeningBalance:         m.OpeningBalance,
		TotalCash:              m.TotalCash,
		TotalCard:              m.TotalCard,
		TotalSzepCard:          m.TotalSzepCard,
		TotalRevenue:           m.TotalRevenue,
		ExpectedClosingBalance: m.ExpectedClosingBalance,
		ActualClosingBalance:   m.ActualClosingBalance,
		Difference:             m.Difference,
		PaymentSummary:         summary,
		Notes:                  m.Notes,
		ClosedBy:               m.ClosedBy,
		ClosedAt:               m.ClosedAt,
		AuditFields:            ToDomainAuditFields(m.AuditFields),
	}, nil
}
