package services

import (
	"context"
	"time"

	"github.com/openaims/fxconvert/internal/core/domain"
	"github.com/shopspring/decimal"
)

// RateResolverSvcFacade resolves (currency, date) pairs to rates-to-USD,
// consulting the durable cache, the ephemeral cache, and the upstream API in
// that order.
type RateResolverSvcFacade interface {
	// GetRate returns the rate converting fromCurrency to toCurrency on the
	// given date. Failures surface as apperrors sentinels
	// (ErrUnsupportedCurrency, ErrFutureDate, ErrRateUnavailable).
	GetRate(ctx context.Context, fromCurrency, toCurrency string, date time.Time) (decimal.Decimal, error)

	// GetRateHistory returns cached rates for a currency in [start, end],
	// ordered by date. Served entirely from the durable cache; never fetches.
	GetRateHistory(ctx context.Context, currency string, start, end time.Time) ([]domain.CachedRate, error)
}

// ConverterSvcFacade converts amounts to USD using historical rates.
type ConverterSvcFacade interface {
	// ConvertToUSD converts amount from the given currency using the rate for
	// date. Returns (nil, nil) when there is nothing to convert (non-positive
	// amount); failures surface as apperrors sentinels.
	ConvertToUSD(ctx context.Context, amount decimal.Decimal, currency string, date time.Time) (*domain.Conversion, error)
}
