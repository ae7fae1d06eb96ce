package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// ClosureStatus mirrors the domain closure states at the persistence layer.
type ClosureStatus string

const (
	ClosureOpen       ClosureStatus = "OPEN"
	ClosureClosed     ClosureStatus = "CLOSED"
	ClosureReconciled ClosureStatus = "RECONCILED"
)

// DailyClosure represents one row in the daily_closures table.
// payment_summary is a JSONB column holding the close-time payment method snapshot;
// NULL when the order subsystem was unavailable at close time.
type DailyClosure struct {
	ClosureID   string        `db:"closure_id"`
	ClosureDate time.Time     `db:"closure_date"`
	Status      ClosureStatus `db:"status"`

	OpeningBalance decimal.Decimal `db:"opening_balance"`
	TotalCash      decimal.Decimal `db:"total_cash"`
	TotalCard      decimal.Decimal `db:"total_card"`
	TotalSzepCard  decimal.Decimal `db:"total_szep_card"`
	TotalRevenue   decimal.Decimal `db:"total_revenue"`

	ExpectedClosingBalance *decimal.Decimal `db:"expected_closing_balance"`
	ActualClosingBalance   *decimal.Decimal `db:"actual_closing_balance"`
	Difference             *decimal.Decimal `db:"difference"`

	PaymentSummary []byte `db:"payment_summary"` // Raw JSONB

	Notes    string     `db:"notes"`
	ClosedBy *string    `db:"closed_by"`
	ClosedAt *time.Time `db:"closed_at"`
	AuditFields
}
