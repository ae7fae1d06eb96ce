package domain

import "github.com/shopspring/decimal"

// Payment method labels recognised by the revenue aggregation. Anything else coming
// back from the order subsystem is ignored.
const (
	PaymentMethodCash     = "CASH"
	PaymentMethodCard     = "CARD"
	PaymentMethodSzepCard = "SZEP_CARD"
)

// RevenueSummary is the per-payment-method revenue of one trading day, as reported by
// the order subsystem for closed orders with successful payments.
//
// Available is false when the order subsystem could not be reached; in that case all
// buckets are zero and ByMethod is nil. Total is always cash + card + szepCard, not an
// independently reported grand total.
type RevenueSummary struct {
	Cash      decimal.Decimal            `json:"cash"`
	Card      decimal.Decimal            `json:"card"`
	SzepCard  decimal.Decimal            `json:"szepCard"`
	Total     decimal.Decimal            `json:"total"`
	ByMethod  map[string]decimal.Decimal `json:"byMethod"`
	Available bool                       `json:"available"`
}
