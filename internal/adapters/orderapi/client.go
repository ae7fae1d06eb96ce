// Package orderapi is the HTTP client for the order/payment subsystem's reporting
// endpoint. It is the only outward network dependency of the cashdesk core.
package orderapi

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/poscore/cashdesk_app/internal/apperrors"
	portssvc "github.com/poscore/cashdesk_app/internal/core/ports/services"
	"github.com/shopspring/decimal"
)

// Client calls the order subsystem's daily payment totals report.
// Every request is bounded by the configured timeout; callers treat any error as a
// degraded snapshot, so the client never retries.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// NewClient creates a reporting client for the order subsystem.
func NewClient(baseURL string, timeout time.Duration) *Client {
	return &Client{
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: timeout},
	}
}

// Ensure Client implements the OrderReporting port
var _ portssvc.OrderReporting = (*Client)(nil)

// paymentTotalsResponse is the wire shape of the report. Amounts arrive as decimal
// strings keyed by payment method label.
type paymentTotalsResponse struct {
	Totals map[string]decimal.Decimal `json:"totals"`
}

// GetDailyPaymentTotals fetches total successfully-paid revenue of closed orders for
// the given business date, keyed by payment method label.
func (c *Client) GetDailyPaymentTotals(ctx context.Context, date time.Time) (map[string]decimal.Decimal, error) {
	endpoint := fmt.Sprintf("%s/reports/daily-payment-totals?date=%s",
		c.baseURL, url.QueryEscape(date.Format("2006-01-02")))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build payment totals request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", apperrors.ErrAggregatorUnavailable, err.Error())
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: status %d", apperrors.ErrAggregatorUnavailable, resp.StatusCode)
	}

	var body paymentTotalsResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, fmt.Errorf("failed to decode payment totals response: %w", err)
	}

	return body.Totals, nil
}
