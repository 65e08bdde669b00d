package ports

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

// RatesAPIClient is the upstream exchange-rate API collaborator. The free tier
// only serves current rates reliably, so callers treat the returned rates as a
// best-effort approximation when resolving historical dates.
type RatesAPIClient interface {
	// LatestRates fetches the latest rates relative to the given base currency,
	// as a map of ISO code to rate.
	LatestRates(ctx context.Context, baseCurrency string) (map[string]decimal.Decimal, error)
}

// RateCache is the ephemeral TTL cache collaborator. It is never authoritative
// and must tolerate being empty at any time; the durable store can always
// reconstruct its contents.
type RateCache interface {
	GetRate(fromCurrency, toCurrency string, date time.Time) (decimal.Decimal, bool)
	SetRate(fromCurrency, toCurrency string, date time.Time, rate decimal.Decimal)

	GetSupportedCodes() ([]string, bool)
	SetSupportedCodes(codes []string)
}
