package services

import (
	"context"
	"log/slog"
	"time"

	"github.com/poscore/cashdesk_app/internal/core/domain"
	portssvc "github.com/poscore/cashdesk_app/internal/core/ports/services"
	"github.com/poscore/cashdesk_app/internal/middleware"
	"github.com/shopspring/decimal"
)

// revenueService aggregates daily order revenue into per-payment-method buckets.
type revenueService struct {
	reporting portssvc.OrderReporting
}

// NewRevenueService creates a new RevenueService on top of the order reporting port.
func NewRevenueService(reporting portssvc.OrderReporting) portssvc.RevenueSvcFacade {
	return &revenueService{reporting: reporting}
}

// Ensure revenueService implements the portssvc.RevenueSvcFacade interface
var _ portssvc.RevenueSvcFacade = (*revenueService)(nil)

// AggregateDaily returns the revenue summary for a date. Any failure of the order
// subsystem is absorbed here: the summary comes back with Available=false and zeroed
// buckets, and the caller decides what the degradation means.
func (s *revenueService) AggregateDaily(ctx context.Context, date time.Time) domain.RevenueSummary {
	logger := middleware.GetLoggerFromCtx(ctx)

	totals, err := s.reporting.GetDailyPaymentTotals(ctx, date)
	if err != nil {
		logger.Warn("Revenue aggregation degraded, order reporting unavailable",
			slog.String("date", date.Format("2006-01-02")),
			slog.String("error", err.Error()),
		)
		return domain.RevenueSummary{Available: false}
	}

	summary := domain.RevenueSummary{
		ByMethod:  make(map[string]decimal.Decimal, len(totals)),
		Available: true,
	}

	for method, amount := range totals {
		switch method {
		case domain.PaymentMethodCash:
			summary.Cash = summary.Cash.Add(amount)
		case domain.PaymentMethodCard:
			summary.Card = summary.Card.Add(amount)
		case domain.PaymentMethodSzepCard:
			summary.SzepCard = summary.SzepCard.Add(amount)
		default:
			logger.Warn("Ignoring unrecognized payment method label", slog.String("method", method))
			continue
		}
		summary.ByMethod[method] = summary.ByMethod[method].Add(amount)
	}

	// The grand total is derived from the recognized buckets, never reported
	// independently by the order subsystem.
	summary.Total = summary.Cash.Add(summary.Card).Add(summary.SzepCard)
	return summary
}
