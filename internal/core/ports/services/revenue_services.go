package services

import (
	"context"
	"time"

	"github.com/poscore/cashdesk_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// OrderReporting is the outward-facing port to the external order/payment subsystem.
// Implementations must be time-bounded; a slow or failing order service degrades the
// caller's snapshot, it never blocks a ledger operation.
type OrderReporting interface {
	// GetDailyPaymentTotals returns the total successfully-paid revenue of closed
	// orders for the given business date, keyed by payment method label.
	GetDailyPaymentTotals(ctx context.Context, date time.Time) (map[string]decimal.Decimal, error)
}

// RevenueSvcFacade aggregates order revenue into per-payment-method buckets.
type RevenueSvcFacade interface {
	// AggregateDaily returns the revenue summary for a date. Failures of the order
	// subsystem are absorbed: the returned summary has Available=false and zeroed
	// buckets, and no error is raised.
	AggregateDaily(ctx context.Context, date time.Time) domain.RevenueSummary
}
