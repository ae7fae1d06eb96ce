package orderapi_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/poscore/cashdesk_app/internal/adapters/orderapi"
	"github.com/poscore/cashdesk_app/internal/apperrors"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetDailyPaymentTotals_Success(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/reports/daily-payment-totals", r.URL.Path)
		assert.Equal(t, "2025-11-03", r.URL.Query().Get("date"))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"totals": {"CASH": "6500.00", "CARD": "12000.00", "SZEP_CARD": "3000.00"}}`))
	}))
	defer server.Close()

	client := orderapi.NewClient(server.URL, 2*time.Second)
	totals, err := client.GetDailyPaymentTotals(context.Background(), time.Date(2025, 11, 3, 0, 0, 0, 0, time.UTC))

	require.NoError(t, err)
	assert.True(t, decimal.RequireFromString("6500").Equal(totals["CASH"]))
	assert.True(t, decimal.RequireFromString("12000").Equal(totals["CARD"]))
	assert.True(t, decimal.RequireFromString("3000").Equal(totals["SZEP_CARD"]))
}

func TestGetDailyPaymentTotals_ServerError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	client := orderapi.NewClient(server.URL, 2*time.Second)
	_, err := client.GetDailyPaymentTotals(context.Background(), time.Now())

	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrAggregatorUnavailable)
}

func TestGetDailyPaymentTotals_Unreachable(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	server.Close() // Shut down immediately so the request fails to connect.

	client := orderapi.NewClient(server.URL, time.Second)
	_, err := client.GetDailyPaymentTotals(context.Background(), time.Now())

	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrAggregatorUnavailable)
}
