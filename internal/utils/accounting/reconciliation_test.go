package accounting_test

import (
	"testing"

	"github.com/poscore/cashdesk_app/internal/core/domain"
	"github.com/poscore/cashdesk_app/internal/utils/accounting"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func TestReconcile_BalancedDay(t *testing.T) {
	// opening 10000; deposit 500; sale 6500; withdrawal 2000 -> unassigned sum 5000
	expected, difference := accounting.Reconcile(dec("10000"), dec("5000"), dec("15000"))

	assert.True(t, dec("15000").Equal(expected), "expected closing balance mismatch: %s", expected)
	assert.True(t, difference.IsZero(), "difference should be zero, got %s", difference)
}

func TestReconcile_Shortage(t *testing.T) {
	expected, difference := accounting.Reconcile(dec("10000"), decimal.Zero, dec("9800"))

	assert.True(t, dec("10000").Equal(expected))
	assert.True(t, dec("-200").Equal(difference), "shortage must be negative, got %s", difference)
}

func TestReconcile_Surplus(t *testing.T) {
	expected, difference := accounting.Reconcile(dec("2500.50"), dec("100.25"), dec("2700.75"))

	assert.True(t, dec("2600.75").Equal(expected))
	assert.True(t, dec("100.00").Equal(difference))
}

func TestReconcile_NegativeUnassignedSum(t *testing.T) {
	// Withdrawals exceeding deposits give a negative unassigned sum.
	expected, difference := accounting.Reconcile(dec("1000"), dec("-300"), dec("700"))

	assert.True(t, dec("700").Equal(expected))
	assert.True(t, difference.IsZero())
}

func TestNormalizeAmount_SignConvention(t *testing.T) {
	tests := []struct {
		name   string
		kind   domain.MovementKind
		amount string
		want   string
	}{
		{"deposit stays positive", domain.CashIn, "500", "500"},
		{"sale stays positive", domain.Sale, "6500", "6500"},
		{"opening balance stays positive", domain.OpeningBalance, "10000", "10000"},
		{"withdrawal flips negative", domain.CashOut, "2000", "-2000"},
		{"withdrawal stays negative", domain.CashOut, "-2000", "-2000"},
		{"refund flips negative", domain.Refund, "1200", "-1200"},
		{"correction keeps positive sign", domain.Correction, "150", "150"},
		{"correction keeps negative sign", domain.Correction, "-150", "-150"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := accounting.NormalizeAmount(tt.kind, dec(tt.amount))
			require.NoError(t, err)
			assert.True(t, dec(tt.want).Equal(got), "got %s, want %s", got, tt.want)
		})
	}
}

func TestNormalizeAmount_UnknownKind(t *testing.T) {
	_, err := accounting.NormalizeAmount(domain.MovementKind("GIFT"), dec("10"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown movement kind")
}
