package repositories

import (
	"context"

	"github.com/openaims/fxconvert/internal/core/domain"
)

// SupportedCurrencyReader defines read operations for the supported-currency registry
type SupportedCurrencyReader interface {
	// FindByCode retrieves a registry entry by its code.
	FindByCode(ctx context.Context, code string) (*domain.SupportedCurrency, error)

	// ListSupported retrieves all entries currently marked supported, ordered by code.
	ListSupported(ctx context.Context) ([]domain.SupportedCurrency, error)

	// ListSupportedCodes retrieves the codes currently marked supported.
	ListSupportedCodes(ctx context.Context) ([]string, error)
}

// SupportedCurrencyWriter defines write operations for the supported-currency registry
type SupportedCurrencyWriter interface {
	// ReplaceSupported reconciles the registry against a fresh API response:
	// every existing entry is marked unsupported, then each given currency is
	// upserted as supported. Stale entries are kept, not deleted.
	ReplaceSupported(ctx context.Context, currencies []domain.SupportedCurrency) error
}

// SupportedCurrencyRepositoryFacade combines all registry repository interfaces
type SupportedCurrencyRepositoryFacade interface {
	SupportedCurrencyReader
	SupportedCurrencyWriter
}

// SupportedCurrencyRepositoryWithTx extends the facade with transaction capabilities
type SupportedCurrencyRepositoryWithTx interface {
	SupportedCurrencyRepositoryFacade
	TransactionManager
}
