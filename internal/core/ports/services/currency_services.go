package services

import (
	"context"

	"github.com/openaims/fxconvert/internal/core/domain"
)

// CurrencyRegistryReaderSvc defines read operations on the supported-currency registry
type CurrencyRegistryReaderSvc interface {
	// IsCurrencySupported reports whether the currency can be converted to USD.
	// USD itself is always supported.
	IsCurrencySupported(ctx context.Context, code string) bool

	// GetSupportedCurrencies returns the supported codes, refreshing from the
	// upstream API when refresh is true. Fetch failures fall back to a default
	// list and are logged, never surfaced.
	GetSupportedCurrencies(ctx context.Context, refresh bool) []string

	// ListSupportedCurrencies returns full registry entries for currencies
	// currently marked supported.
	ListSupportedCurrencies(ctx context.Context) ([]domain.SupportedCurrency, error)
}

// CurrencyRegistryRefreshSvc defines the explicit registry refresh operation
type CurrencyRegistryRefreshSvc interface {
	// RefreshSupportedCurrencies reconciles the registry against the upstream
	// API. Unlike GetSupportedCurrencies it surfaces fetch failures instead of
	// falling back to the default list.
	RefreshSupportedCurrencies(ctx context.Context) ([]string, error)
}

// CurrencyRegistrySvcFacade combines all registry service interfaces
type CurrencyRegistrySvcFacade interface {
	CurrencyRegistryReaderSvc
	CurrencyRegistryRefreshSvc
}
