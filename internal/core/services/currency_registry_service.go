package services

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"strings"
	"time"

	"github.com/openaims/fxconvert/internal/core/domain"
	"github.com/openaims/fxconvert/internal/core/ports"
	portsrepo "github.com/openaims/fxconvert/internal/core/ports/repositories"
)

// defaultSupportedCurrencies is the fallback list used when the upstream API
// cannot be reached: common codes supported by most free rate APIs.
var defaultSupportedCurrencies = []string{
	"USD", "EUR", "GBP", "JPY", "AUD", "CAD", "CHF", "CNY", "SEK", "NZD",
	"MXN", "SGD", "HKD", "NOK", "TRY", "RUB", "INR", "BRL", "ZAR", "KRW",
	"PLN", "CZK", "HUF", "RON", "BGN", "HRK", "DKK", "THB", "MYR", "PHP",
	"IDR", "VND", "EGP", "MAD", "NGN", "KES", "GHS", "UGX", "TZS", "ZMW",
}

// currencyNames maps known codes to human-readable names. Codes outside this
// table get a generated "<CODE> Currency" name.
var currencyNames = map[string]string{
	"USD": "US Dollar", "EUR": "Euro", "GBP": "British Pound",
	"JPY": "Japanese Yen", "AUD": "Australian Dollar", "CAD": "Canadian Dollar",
	"CHF": "Swiss Franc", "CNY": "Chinese Yuan", "SEK": "Swedish Krona",
	"NZD": "New Zealand Dollar", "MXN": "Mexican Peso", "SGD": "Singapore Dollar",
	"HKD": "Hong Kong Dollar", "NOK": "Norwegian Krone", "TRY": "Turkish Lira",
	"RUB": "Russian Ruble", "INR": "Indian Rupee", "BRL": "Brazilian Real",
	"ZAR": "South African Rand", "KRW": "South Korean Won", "MMK": "Myanmar Kyat",
}

// CurrencyRegistryService maintains the list of currencies convertible to USD,
// refreshed on demand from the upstream rate API.
type CurrencyRegistryService struct {
	currencyRepo portsrepo.SupportedCurrencyRepositoryFacade
	cache        ports.RateCache
	client       ports.RatesAPIClient
	logger       *slog.Logger
}

// NewCurrencyRegistryService creates a new CurrencyRegistryService.
func NewCurrencyRegistryService(
	currencyRepo portsrepo.SupportedCurrencyRepositoryFacade,
	cache ports.RateCache,
	client ports.RatesAPIClient,
	logger *slog.Logger,
) *CurrencyRegistryService {
	if logger == nil {
		logger = slog.Default()
	}
	return &CurrencyRegistryService{
		currencyRepo: currencyRepo,
		cache:        cache,
		client:       client,
		logger:       logger,
	}
}

// IsCurrencySupported reports whether a currency can be converted to USD.
// USD itself is always supported, even when absent from the registry.
func (s *CurrencyRegistryService) IsCurrencySupported(ctx context.Context, code string) bool {
	code = strings.ToUpper(code)
	if code == "USD" {
		return true
	}
	for _, supported := range s.GetSupportedCurrencies(ctx, false) {
		if supported == code {
			return true
		}
	}
	return false
}

// GetSupportedCurrencies returns the supported currency codes. With
// refresh=false the ephemeral cache is tried first, then the durable registry;
// the upstream API is only consulted when both are empty. With refresh=true the
// API is always consulted and the registry reconciled. A fetch failure falls
// back to the default list, which is persisted and cached so subsequent calls
// succeed without refetching; it is logged but never surfaced to the caller.
func (s *CurrencyRegistryService) GetSupportedCurrencies(ctx context.Context, refresh bool) []string {
	if !refresh {
		if codes, ok := s.cache.GetSupportedCodes(); ok {
			return codes
		}

		codes, err := s.currencyRepo.ListSupportedCodes(ctx)
		if err != nil {
			s.logger.Warn("Failed to read supported currencies from registry", slog.String("error", err.Error()))
		} else if len(codes) > 0 {
			s.cache.SetSupportedCodes(codes)
			return codes
		}
	}

	codes, err := s.fetchSupportedCurrencies(ctx)
	if err != nil {
		s.logger.Warn("Failed to fetch supported currencies from API, using default list", slog.String("error", err.Error()))
		codes = defaultSupportedCurrencies
		if err := s.persistSupported(ctx, codes); err != nil {
			s.logger.Warn("Failed to persist default currency list", slog.String("error", err.Error()))
		}
	}

	s.cache.SetSupportedCodes(codes)
	return codes
}

// ListSupportedCurrencies returns full registry entries for currencies
// currently marked supported.
func (s *CurrencyRegistryService) ListSupportedCurrencies(ctx context.Context) ([]domain.SupportedCurrency, error) {
	return s.currencyRepo.ListSupported(ctx)
}

// RefreshSupportedCurrencies reconciles the registry against the upstream API.
// Unlike GetSupportedCurrencies it surfaces fetch failures to the caller.
func (s *CurrencyRegistryService) RefreshSupportedCurrencies(ctx context.Context) ([]string, error) {
	codes, err := s.fetchSupportedCurrencies(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to refresh supported currencies: %w", err)
	}
	s.cache.SetSupportedCodes(codes)
	return codes, nil
}

// fetchSupportedCurrencies pulls the latest USD-relative rates and treats the
// returned codes (plus USD itself) as the supported set, reconciling the
// durable registry with the result.
func (s *CurrencyRegistryService) fetchSupportedCurrencies(ctx context.Context) ([]string, error) {
	rates, err := s.client.LatestRates(ctx, "USD")
	if err != nil {
		return nil, err
	}

	codes := make([]string, 0, len(rates)+1)
	for code := range rates {
		codes = append(codes, strings.ToUpper(code))
	}
	codes = appendIfMissing(codes, "USD")
	sort.Strings(codes)

	if err := s.persistSupported(ctx, codes); err != nil {
		return nil, err
	}

	s.logger.Info("Fetched supported currencies from API", slog.Int("count", len(codes)))
	return codes, nil
}

func (s *CurrencyRegistryService) persistSupported(ctx context.Context, codes []string) error {
	now := time.Now()
	entries := make([]domain.SupportedCurrency, len(codes))
	for i, code := range codes {
		entries[i] = domain.SupportedCurrency{
			Code:        code,
			Name:        currencyName(code),
			IsSupported: true,
			LastChecked: now,
			CreatedAt:   now,
		}
	}
	return s.currencyRepo.ReplaceSupported(ctx, entries)
}

func currencyName(code string) string {
	code = strings.ToUpper(code)
	if name, ok := currencyNames[code]; ok {
		return name
	}
	return code + " Currency"
}

func appendIfMissing(codes []string, code string) []string {
	for _, c := range codes {
		if c == code {
			return codes
		}
	}
	return append(codes, code)
}
