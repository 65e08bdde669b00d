package services

import (
	"context"

	"github.com/openaims/fxconvert/internal/core/domain"
	portsrepo "github.com/openaims/fxconvert/internal/core/ports/repositories"
	"github.com/shopspring/decimal"
)

// TransactionReaderSvc defines read operations over aid transactions
type TransactionReaderSvc interface {
	// GetTransactionByID retrieves a single transaction.
	GetTransactionByID(ctx context.Context, transactionID string) (*domain.AidTransaction, error)

	// ListTransactions lists transactions matching the filter, newest first.
	ListTransactions(ctx context.Context, filter portsrepo.TransactionFilter, limit, offset int) ([]domain.AidTransaction, error)

	// GetConversionStats aggregates conversion state, optionally per activity.
	GetConversionStats(ctx context.Context, activityID string) (*domain.ConversionStats, error)
}

// TransactionConversionStateSvc defines the conversion state machine. Both
// mutations stamp the conversion timestamp and update the passed entity in place.
type TransactionConversionStateSvc interface {
	// MarkUnconvertible transitions the record to the unconvertible state. Idempotent.
	MarkUnconvertible(ctx context.Context, txn *domain.AidTransaction) error

	// SetUSDValue transitions the record to the converted state, overwriting
	// any prior outcome including unconvertible.
	SetUSDValue(ctx context.Context, txn *domain.AidTransaction, usdAmount, rate decimal.Decimal) error
}

// TransactionSvcFacade combines all transaction-related service interfaces
type TransactionSvcFacade interface {
	TransactionReaderSvc
	TransactionConversionStateSvc
}

// BatchConversionSvcFacade drives bulk and on-demand USD conversion.
type BatchConversionSvcFacade interface {
	// ConvertBatch converts every transaction matching the filter, honoring
	// force/dry-run semantics, and reports aggregate counters. A per-record
	// failure is counted, logged and skipped; it never aborts the batch.
	ConvertBatch(ctx context.Context, filter portsrepo.TransactionFilter, opts domain.BatchOptions) (*domain.BatchResult, error)

	// ConvertTransactions converts an explicit list of transaction IDs and
	// reports per-record details alongside the counters.
	ConvertTransactions(ctx context.Context, transactionIDs []string, force bool) (*domain.BatchResult, error)

	// ConvertOne converts a single transaction by ID.
	ConvertOne(ctx context.Context, transactionID string, force bool) (*domain.RecordOutcome, error)
}
