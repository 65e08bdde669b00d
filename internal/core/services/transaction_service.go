package services

import (
	"context"
	"fmt"
	"log/slog"
	"math"
	"time"

	"github.com/shopspring/decimal"

	"github.com/openaims/fxconvert/internal/core/domain"
	portsrepo "github.com/openaims/fxconvert/internal/core/ports/repositories"
	portssvc "github.com/openaims/fxconvert/internal/core/ports/services"
)

// TransactionService provides reads over aid transactions and owns their USD
// conversion state machine (pending -> converted | unconvertible).
type TransactionService struct {
	txnRepo  portsrepo.TransactionRepositoryFacade
	registry portssvc.CurrencyRegistrySvcFacade
	logger   *slog.Logger
}

// NewTransactionService creates a new TransactionService.
func NewTransactionService(
	txnRepo portsrepo.TransactionRepositoryFacade,
	registry portssvc.CurrencyRegistrySvcFacade,
	logger *slog.Logger,
) *TransactionService {
	if logger == nil {
		logger = slog.Default()
	}
	return &TransactionService{
		txnRepo:  txnRepo,
		registry: registry,
		logger:   logger,
	}
}

// GetTransactionByID retrieves a single transaction.
func (s *TransactionService) GetTransactionByID(ctx context.Context, transactionID string) (*domain.AidTransaction, error) {
	txn, err := s.txnRepo.FindTransactionByID(ctx, transactionID)
	if err != nil {
		return nil, fmt.Errorf("failed to get transaction %s: %w", transactionID, err)
	}
	return txn, nil
}

// ListTransactions lists transactions matching the filter, newest first.
func (s *TransactionService) ListTransactions(ctx context.Context, filter portsrepo.TransactionFilter, limit, offset int) ([]domain.AidTransaction, error) {
	return s.txnRepo.ListTransactions(ctx, filter, limit, offset)
}

// MarkUnconvertible transitions the record to the unconvertible state,
// persisting only the convertibility flag and the conversion timestamp.
// Idempotent; repeat calls only move the timestamp.
func (s *TransactionService) MarkUnconvertible(ctx context.Context, txn *domain.AidTransaction) error {
	now := time.Now()
	if err := s.txnRepo.MarkUnconvertible(ctx, txn.TransactionID, now); err != nil {
		return fmt.Errorf("failed to mark transaction %s unconvertible: %w", txn.TransactionID, err)
	}
	txn.UsdConvertible = false
	txn.UsdConversionDate = &now
	return nil
}

// SetUSDValue transitions the record to the converted state, overwriting any
// prior outcome. A previously unconvertible record becomes convertible again.
func (s *TransactionService) SetUSDValue(ctx context.Context, txn *domain.AidTransaction, usdAmount, rate decimal.Decimal) error {
	now := time.Now()
	if err := s.txnRepo.SetUSDValue(ctx, txn.TransactionID, usdAmount, rate, now); err != nil {
		return fmt.Errorf("failed to set USD value on transaction %s: %w", txn.TransactionID, err)
	}
	txn.ValueUSD = &usdAmount
	txn.ExchangeRateUsed = &rate
	txn.UsdConvertible = true
	txn.UsdConversionDate = &now
	return nil
}

// GetConversionStats aggregates conversion state across transactions,
// optionally restricted to one activity. The conversion rate is computed over
// the convertible population: everything except USD-native and unconvertible
// records.
func (s *TransactionService) GetConversionStats(ctx context.Context, activityID string) (*domain.ConversionStats, error) {
	perCurrency, err := s.txnRepo.GetConversionStats(ctx, activityID)
	if err != nil {
		return nil, fmt.Errorf("failed to get conversion stats: %w", err)
	}

	stats := &domain.ConversionStats{
		CurrencyBreakdown: make(map[string]domain.CurrencyConversionStats, len(perCurrency)),
	}
	for _, row := range perCurrency {
		stats.TotalTransactions += row.Total
		stats.ConvertedTransactions += row.Converted
		stats.UnconvertibleTransactions += row.Unconvertible
		stats.PendingTransactions += row.Pending
		if row.Currency == "USD" {
			stats.USDTransactions += row.Total
		}

		row.IsSupported = s.registry.IsCurrencySupported(ctx, row.Currency)
		stats.CurrencyBreakdown[row.Currency] = row
	}

	convertibleTotal := stats.TotalTransactions - stats.USDTransactions - stats.UnconvertibleTransactions
	if convertibleTotal > 0 {
		rate := float64(stats.ConvertedTransactions) / float64(convertibleTotal) * 100
		stats.ConversionRatePercent = math.Round(rate*100) / 100
	}

	return stats, nil
}
