package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// ClosureStatus indicates where a daily closure is in its lifecycle.
// Transitions are linear: OPEN -> CLOSED, with RECONCILED as an optional terminal
// audit label on top of CLOSED. There is no way back to OPEN.
type ClosureStatus string

const (
	ClosureOpen       ClosureStatus = "OPEN"
	ClosureClosed     ClosureStatus = "CLOSED"
	ClosureReconciled ClosureStatus = "RECONCILED"
)

// DailyClosure reconciles one trading day of drawer activity.
//
// The revenue totals (TotalCash, TotalCard, TotalSzepCard, TotalRevenue) are a
// snapshot taken from the order subsystem at creation time and are never recomputed.
// PaymentSummary is a second, independent best-effort snapshot taken at close time;
// either may be missing when the order subsystem was unreachable.
type DailyClosure struct {
	ClosureID   string        `json:"closureID"` // Primary Key (UUID)
	ClosureDate time.Time     `json:"closureDate"`
	Status      ClosureStatus `json:"status"`

	OpeningBalance decimal.Decimal `json:"openingBalance"`
	TotalCash      decimal.Decimal `json:"totalCash"`
	TotalCard      decimal.Decimal `json:"totalCard"`
	TotalSzepCard  decimal.Decimal `json:"totalSzepCard"`
	TotalRevenue   decimal.Decimal `json:"totalRevenue"`

	ExpectedClosingBalance *decimal.Decimal `json:"expectedClosingBalance"` // Set at close time
	ActualClosingBalance   *decimal.Decimal `json:"actualClosingBalance"`   // Operator-counted cash
	Difference             *decimal.Decimal `json:"difference"`             // actual - expected; positive = surplus

	PaymentSummary map[string]decimal.Decimal `json:"paymentSummary"` // Nil when unavailable

	Notes    string     `json:"notes"`
	ClosedBy *string    `json:"closedBy"`
	ClosedAt *time.Time `json:"closedAt"`
	AuditFields
}

// IsClosed reports whether the closure has reached a terminal state.
func (c DailyClosure) IsClosed() bool {
	return c.Status == ClosureClosed || c.Status == ClosureReconciled
}
