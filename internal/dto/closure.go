package dto

import (
	"time"

	"github.com/poscore/cashdesk_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateClosureRequest is the payload for opening a daily closure.
// Date is the business date in YYYY-MM-DD form; it defaults to today when omitted.
// An opening balance of zero is legal, so amount validation is left to the service.
type CreateClosureRequest struct {
	OpeningBalance decimal.Decimal `json:"openingBalance"`
	Date           *string         `json:"date,omitempty"`
	Notes          string          `json:"notes"`
	ActorID        string          `json:"actorID" binding:"required"`
}

// CloseClosureRequest is the payload for closing a daily closure with the physically
// counted drawer amount.
type CloseClosureRequest struct {
	ActualClosingBalance decimal.Decimal `json:"actualClosingBalance"`
	Notes                *string         `json:"notes,omitempty"`
	ActorID              string          `json:"actorID" binding:"required"`
}

// ReconcileClosureRequest is the payload for the RECONCILED audit label.
type ReconcileClosureRequest struct {
	ActorID string `json:"actorID" binding:"required"`
}

// ClosureResponse defines the data returned for a daily closure.
type ClosureResponse struct {
	ClosureID   string `json:"closureID"`
	ClosureDate string `json:"closureDate"` // YYYY-MM-DD
	Status      string `json:"status"`

	OpeningBalance decimal.Decimal `json:"openingBalance"`
	TotalCash      decimal.Decimal `json:"totalCash"`
	TotalCard      decimal.Decimal `json:"totalCard"`
	TotalSzepCard  decimal.Decimal `json:"totalSzepCard"`
	TotalRevenue   decimal.Decimal `json:"totalRevenue"`

	ExpectedClosingBalance *decimal.Decimal `json:"expectedClosingBalance,omitempty"`
	ActualClosingBalance   *decimal.Decimal `json:"actualClosingBalance,omitempty"`
	Difference             *decimal.Decimal `json:"difference,omitempty"`

	PaymentSummary map[string]decimal.Decimal `json:"paymentSummary,omitempty"`

	Notes     string     `json:"notes"`
	ClosedBy  *string    `json:"closedBy,omitempty"`
	ClosedAt  *time.Time `json:"closedAt,omitempty"`
	CreatedAt time.Time  `json:"createdAt"`
	CreatedBy string     `json:"createdBy"`
}

// ListClosuresResponse is a paginated closure listing.
type ListClosuresResponse struct {
	Closures  []ClosureResponse `json:"closures"`
	NextToken *string           `json:"nextToken,omitempty"`
}

// ToClosureResponse converts a domain.DailyClosure to ClosureResponse DTO.
func ToClosureResponse(c *domain.DailyClosure) ClosureResponse {
	return ClosureResponse{
		ClosureID:              c.ClosureID,
		ClosureDate:            c.ClosureDate.Format("2006-01-02"),
		Status:                 string(c.Status),
		OpeningBalance:         c.OpeningBalance,
		TotalCash:              c.TotalCash,
		TotalCard:              c.TotalCard,
		TotalSzepCard:          c.TotalSzepCard,
		TotalRevenue:           c.TotalRevenue,
		ExpectedClosingBalance: c.ExpectedClosingBalance,
		ActualClosingBalance:   c.ActualClosingBalance,
		Difference:             c.Difference,
		PaymentSummary:         c.PaymentSummary,
		Notes:                  c.Notes,
		ClosedBy:               c.ClosedBy,
		ClosedAt:               c.ClosedAt,
		CreatedAt:              c.CreatedAt,
		CreatedBy:              c.CreatedBy,
	}
}

// ToClosureResponses converts a slice of domain.DailyClosure to []ClosureResponse.
func ToClosureResponses(cs []domain.DailyClosure) []ClosureResponse {
	responses := make([]ClosureResponse, len(cs))
	for i := range cs {
		responses[i] = ToClosureResponse(&cs[i])
	}
	return responses
}
