package accounting

import (
	"fmt"

	"github.com/poscore/cashdesk_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// Reconcile computes the closing figures for a daily closure.
// expected = opening + unassignedSum, difference = actual - expected.
// A positive difference is a surplus, a negative one a shortage.
//
// This is deliberately a pure function so the numeric behaviour (decimal precision,
// sign convention) is testable without any database state.
func Reconcile(opening, unassignedSum, actual decimal.Decimal) (expected, difference decimal.Decimal) {
	expected = opening.Add(unassignedSum)
	difference = actual.Sub(expected)
	return expected, difference
}

// NormalizeAmount applies the drawer sign convention to an operator-supplied amount.
// This is used in both services and repositories to ensure the stored sign, not the
// kind, stays authoritative for every balance sum.
//
// CASH_OUT and REFUND are stored negative, CORRECTION keeps the supplied sign, every
// other kind is stored positive.
func NormalizeAmount(kind domain.MovementKind, amount decimal.Decimal) (decimal.Decimal, error) {
	switch kind {
	case domain.CashOut, domain.Refund:
		return amount.Abs().Neg(), nil
	case domain.Correction:
		return amount, nil
	case domain.OpeningBalance, domain.CashIn, domain.Sale:
		return amount.Abs(), nil
	default:
		return decimal.Zero, fmt.Errorf("unknown movement kind '%s'", kind)
	}
}
