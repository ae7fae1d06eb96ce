package domain

import "github.com/shopspring/decimal"

// MovementKind describes why cash moved through the drawer.
//
// The kind is descriptive only: the stored sign of Amount is authoritative for all
// balance computations, so new kinds can be added without touching summation logic.
type MovementKind string

const (
	OpeningBalance MovementKind = "OPENING_BALANCE"
	CashIn         MovementKind = "CASH_IN"
	CashOut        MovementKind = "CASH_OUT"
	Sale           MovementKind = "SALE"
	Refund         MovementKind = "REFUND"
	Correction     MovementKind = "CORRECTION"
)

// CashMovement is a single signed entry in the drawer ledger.
//
// Movements are append-only: once recorded, the only permitted mutation is ClosureID
// transitioning from nil to a concrete closure during a close. CASH_OUT and REFUND
// movements are stored negative, CORRECTION keeps the operator-supplied sign, every
// other kind is stored positive.
type CashMovement struct {
	MovementID  string          `json:"movementID"` // Primary Key (UUID)
	Kind        MovementKind    `json:"kind"`
	Amount      decimal.Decimal `json:"amount"`      // Signed; authoritative for balance sums
	Description string          `json:"description"` // Free text
	OrderID     *string         `json:"orderID"`     // Informational reference into the order subsystem
	ClosureID   *string         `json:"closureID"`   // Nil means unassigned / still open
	AuditFields
}

// IsAssigned reports whether the movement has been swept into a daily closure.
func (m CashMovement) IsAssigned() bool {
	return m.ClosureID != nil
}
