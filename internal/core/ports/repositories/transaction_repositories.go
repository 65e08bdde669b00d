package repositories

import (
	"context"
	"time"

	"github.com/openaims/fxconvert/internal/core/domain"
	"github.com/shopspring/decimal"
)

// TransactionFilter narrows the set of aid transactions a query operates on.
// Zero values mean "no constraint".
type TransactionFilter struct {
	Currency   string
	ActivityID string
	StartDate  *time.Time // transaction_date >= StartDate
	EndDate    *time.Time // transaction_date <= EndDate

	// OnlyMissingUSD restricts to records without a USD value yet.
	OnlyMissingUSD bool
	// OnlyPositiveValue restricts to records with value > 0.
	OnlyPositiveValue bool
	// ConversionStatus filters by derived lifecycle state (listing endpoints).
	ConversionStatus domain.ConversionStatus
}

// TransactionReader defines read operations for aid transactions
type TransactionReader interface {
	// FindTransactionByID retrieves a transaction by its ID.
	FindTransactionByID(ctx context.Context, transactionID string) (*domain.AidTransaction, error)

	// ListTransactions retrieves matching transactions ordered by transaction
	// date descending, paged by limit/offset.
	ListTransactions(ctx context.Context, filter TransactionFilter, limit, offset int) ([]domain.AidTransaction, error)

	// CountTransactions counts matching transactions.
	CountTransactions(ctx context.Context, filter TransactionFilter) (int64, error)

	// GetConversionStats aggregates conversion-state counts per currency,
	// optionally restricted to one activity.
	GetConversionStats(ctx context.Context, activityID string) ([]domain.CurrencyConversionStats, error)
}

// TransactionConversionWriter defines the conversion-state mutations. Both
// operations persist only their own columns plus the conversion timestamp.
type TransactionConversionWriter interface {
	// MarkUnconvertible flags a transaction as impossible to convert. Idempotent.
	MarkUnconvertible(ctx context.Context, transactionID string, at time.Time) error

	// SetUSDValue records a successful conversion. Idempotent; re-invocable to
	// overwrite a prior conversion, and flips usd_convertible back to true.
	SetUSDValue(ctx context.Context, transactionID string, usdAmount, rate decimal.Decimal, at time.Time) error
}

// TransactionRepositoryFacade combines all aid-transaction repository interfaces
type TransactionRepositoryFacade interface {
	TransactionReader
	TransactionConversionWriter
}

// TransactionRepositoryWithTx extends the facade with transaction capabilities
type TransactionRepositoryWithTx interface {
	TransactionRepositoryFacade
	TransactionManager
}
