package utils

import (
	"github.com/shopspring/decimal"
)

// DrawerPrecision is the decimal precision used for drawer cash amounts.
// HUF drawers count whole forints but card settlements can carry fractions, so
// amounts are kept at two decimal places throughout.
const DrawerPrecision = 2

// FormatAmount formats a drawer amount with the standard drawer precision.
// Example: 12.3456 returns "12.35"
func FormatAmount(amount decimal.Decimal) string {
	return amount.Round(DrawerPrecision).String()
}

// FormatWithPrecision formats an amount with the given precision
// This is a convenience function when the precision differs from the drawer default
func FormatWithPrecision(amount decimal.Decimal, precision int) string {
	return amount.Round(int32(precision)).String()
}
