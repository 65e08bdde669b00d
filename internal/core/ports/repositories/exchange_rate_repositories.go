package repositories

import (
	"context"
	"time"

	"github.com/openaims/fxconvert/internal/core/domain"
	"github.com/shopspring/decimal"
)

// RateCacheReader defines read operations for the durable rate cache
type RateCacheReader interface {
	// FindRate retrieves the cached rate for an exact (currency, date) pair.
	// Returns apperrors.ErrNotFound on a miss; there is no nearest-date fallback.
	FindRate(ctx context.Context, currency string, date time.Time) (*domain.CachedRate, error)

	// ListRates retrieves cached rates for a currency within [start, end], ordered by date.
	ListRates(ctx context.Context, currency string, start, end time.Time) ([]domain.CachedRate, error)
}

// RateCacheWriter defines write operations for the durable rate cache
type RateCacheWriter interface {
	// UpsertRate persists a freshly fetched rate, overwriting any existing row
	// for the same (currency, date). Idempotent.
	UpsertRate(ctx context.Context, currency string, date time.Time, rate decimal.Decimal) error
}

// RateCacheRepositoryFacade combines all durable rate cache repository interfaces
type RateCacheRepositoryFacade interface {
	RateCacheReader
	RateCacheWriter
}

// RateCacheRepositoryWithTx extends RateCacheRepositoryFacade with transaction capabilities
type RateCacheRepositoryWithTx interface {
	RateCacheRepositoryFacade
	TransactionManager
}
