package models

import (
	"github.com/shopspring/decimal"
)

// MovementKind mirrors the domain movement kinds at the persistence layer.
type MovementKind string

const (
	OpeningBalance MovementKind = "OPENING_BALANCE"
	CashIn         MovementKind = "CASH_IN"
	CashOut        MovementKind = "CASH_OUT"
	Sale           MovementKind = "SALE"
	Refund         MovementKind = "REFUND"
	Correction     MovementKind = "CORRECTION"
)

// CashMovement represents one row in the cash_movements table.
// Amount carries the authoritative sign; closure_id is the only mutable column.
type CashMovement struct {
	MovementID  string          `db:"movement_id"`
	Kind        MovementKind    `db:"kind"`
	Amount      decimal.Decimal `db:"amount"`
	Description string          `db:"description"`
	OrderID     *string         `db:"order_id"`  // Nullable, informational only
	ClosureID   *string         `db:"closure_id"` // Nullable FK -> daily_closures
	AuditFields
}
