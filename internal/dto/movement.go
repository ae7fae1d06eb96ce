package dto

import (
	"time"

	"github.com/poscore/cashdesk_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateDepositRequest is the payload for recording a cash deposit into the drawer.
// Amount validation (must be > 0) is owned by the service so the error kind is
// uniform across transports.
type CreateDepositRequest struct {
	Amount      decimal.Decimal `json:"amount"`
	Description string          `json:"description" binding:"required"`
	ActorID     string          `json:"actorID" binding:"required"`
}

// CreateWithdrawalRequest is the payload for recording a cash withdrawal.
type CreateWithdrawalRequest struct {
	Amount      decimal.Decimal `json:"amount"`
	Description string          `json:"description" binding:"required"`
	ActorID     string          `json:"actorID" binding:"required"`
}

// CreateSaleRequest is the payload posted by the order subsystem when a
// cash-settled order closes.
type CreateSaleRequest struct {
	Amount  decimal.Decimal `json:"amount"`
	OrderID string          `json:"orderID" binding:"required"`
	ActorID string          `json:"actorID" binding:"required"`
}

// CreateRefundRequest is the payload for a cash refund paid out of the drawer.
type CreateRefundRequest struct {
	Amount  decimal.Decimal `json:"amount"`
	OrderID string          `json:"orderID" binding:"required"`
	ActorID string          `json:"actorID" binding:"required"`
}

// CreateCorrectionRequest is the payload for a signed manual correction.
type CreateCorrectionRequest struct {
	Amount      decimal.Decimal `json:"amount"`
	Description string          `json:"description" binding:"required"`
	ActorID     string          `json:"actorID" binding:"required"`
}

// MovementResponse defines the data returned for a cash movement.
type MovementResponse struct {
	MovementID  string          `json:"movementID"`
	Kind        string          `json:"kind"`
	Amount      decimal.Decimal `json:"amount"`
	Description string          `json:"description"`
	OrderID     *string         `json:"orderID,omitempty"`
	ClosureID   *string         `json:"closureID,omitempty"`
	CreatedAt   time.Time       `json:"createdAt"`
	CreatedBy   string          `json:"createdBy"`
}

// ListMovementsResponse is a paginated movement listing.
type ListMovementsResponse struct {
	Movements []MovementResponse `json:"movements"`
	NextToken *string            `json:"nextToken,omitempty"`
}

// BalanceResponse reports the drawer's current unassigned balance.
type BalanceResponse struct {
	Balance decimal.Decimal `json:"balance"`
	AsOf    time.Time       `json:"asOf"`
}

// ToMovementResponse converts a domain.CashMovement to MovementResponse DTO.
func ToMovementResponse(m *domain.CashMovement) MovementResponse {
	return MovementResponse{
		MovementID:  m.MovementID,
		Kind:        string(m.Kind),
		Amount:      m.Amount,
		Description: m.Description,
		OrderID:     m.OrderID,
		ClosureID:   m.ClosureID,
		CreatedAt:   m.CreatedAt,
		CreatedBy:   m.CreatedBy,
	}
}

// ToMovementResponses converts a slice of domain.CashMovement to []MovementResponse.
func ToMovementResponses(ms []domain.CashMovement) []MovementResponse {
	responses := make([]MovementResponse, len(ms))
	for i := range ms {
		responses[i] = ToMovementResponse(&ms[i])
	}
	return responses
}
