package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/openaims/fxconvert/internal/apperrors"
	"github.com/openaims/fxconvert/internal/core/domain"
	"github.com/openaims/fxconvert/internal/core/ports"
	portsrepo "github.com/openaims/fxconvert/internal/core/ports/repositories"
	portssvc "github.com/openaims/fxconvert/internal/core/ports/services"
)

// ResolverOptions tune the upstream fetch behavior.
type ResolverOptions struct {
	// MaxRetries is the total number of attempts for transport-level failures.
	MaxRetries int
	// BackoffBase is the first retry delay; it doubles per attempt.
	BackoffBase time.Duration
}

// RateResolverService maps (currency, date) to a rate-to-USD, consulting the
// durable cache, the ephemeral cache, and the upstream API in that order, and
// persists any freshly fetched rate.
type RateResolverService struct {
	rateRepo    portsrepo.RateCacheRepositoryFacade
	cache       ports.RateCache
	client      ports.RatesAPIClient
	registry    portssvc.CurrencyRegistrySvcFacade
	logger      *slog.Logger
	maxRetries  int
	backoffBase time.Duration
}

// NewRateResolverService creates a new RateResolverService.
func NewRateResolverService(
	rateRepo portsrepo.RateCacheRepositoryFacade,
	cache ports.RateCache,
	client ports.RatesAPIClient,
	registry portssvc.CurrencyRegistrySvcFacade,
	opts ResolverOptions,
	logger *slog.Logger,
) *RateResolverService {
	if logger == nil {
		logger = slog.Default()
	}
	if opts.MaxRetries < 1 {
		opts.MaxRetries = 3
	}
	if opts.BackoffBase <= 0 {
		opts.BackoffBase = time.Second
	}
	return &RateResolverService{
		rateRepo:    rateRepo,
		cache:       cache,
		client:      client,
		registry:    registry,
		logger:      logger,
		maxRetries:  opts.MaxRetries,
		backoffBase: opts.BackoffBase,
	}
}

// GetRate resolves the exchange rate converting fromCurrency to toCurrency on
// the given date. Identical currencies resolve to 1 without any I/O.
func (s *RateResolverService) GetRate(ctx context.Context, fromCurrency, toCurrency string, date time.Time) (decimal.Decimal, error) {
	fromCurrency = strings.ToUpper(fromCurrency)
	toCurrency = strings.ToUpper(toCurrency)

	if fromCurrency == toCurrency {
		return decimal.NewFromInt(1), nil
	}

	if !s.registry.IsCurrencySupported(ctx, fromCurrency) {
		s.logger.Warn("Currency is not supported", slog.String("currency", fromCurrency))
		return decimal.Decimal{}, apperrors.ErrUnsupportedCurrency
	}

	cached, err := s.rateRepo.FindRate(ctx, fromCurrency, date)
	if err == nil {
		s.logger.Debug("Using cached rate",
			slog.String("currency", fromCurrency),
			slog.Time("date", date),
			slog.String("rate", cached.RateToUSD.String()))
		return cached.RateToUSD, nil
	}
	if !errors.Is(err, apperrors.ErrNotFound) {
		s.logger.Warn("Durable rate cache read failed, falling through to fetch",
			slog.String("currency", fromCurrency), slog.String("error", err.Error()))
	}

	if rate, ok := s.cache.GetRate(fromCurrency, toCurrency, date); ok {
		s.logger.Debug("Using memory cached rate",
			slog.String("currency", fromCurrency),
			slog.Time("date", date),
			slog.String("rate", rate.String()))
		return rate, nil
	}

	return s.fetchFromAPI(ctx, fromCurrency, toCurrency, date)
}

// GetRateHistory returns cached rates for a currency in [start, end], ordered
// by date. Served entirely from the durable cache; never fetches.
func (s *RateResolverService) GetRateHistory(ctx context.Context, currency string, start, end time.Time) ([]domain.CachedRate, error) {
	currency = strings.ToUpper(currency)
	if len(currency) != 3 {
		return nil, fmt.Errorf("%w: currency code must be 3 letters", apperrors.ErrValidation)
	}
	rates, err := s.rateRepo.ListRates(ctx, currency, start, end)
	if err != nil {
		return nil, fmt.Errorf("failed to get rate history for %s: %w", currency, err)
	}
	return rates, nil
}

// fetchFromAPI pulls a rate from the upstream API, persists it against the
// requested date and populates the ephemeral cache.
//
// The free upstream only serves current rates reliably; the latest rate is
// recorded against the requested historical date as a best-effort
// approximation. A true historical provider can replace the client behind
// ports.RatesAPIClient.
func (s *RateResolverService) fetchFromAPI(ctx context.Context, fromCurrency, toCurrency string, date time.Time) (decimal.Decimal, error) {
	today := time.Now().UTC().Truncate(24 * time.Hour)
	if date.UTC().Truncate(24 * time.Hour).After(today) {
		s.logger.Warn("Cannot fetch exchange rate for future date", slog.Time("date", date))
		return decimal.Decimal{}, apperrors.ErrFutureDate
	}

	var lastErr error
	for attempt := 0; attempt < s.maxRetries; attempt++ {
		rates, err := s.client.LatestRates(ctx, fromCurrency)
		if err != nil {
			if errors.Is(err, ports.ErrBadAPIResponse) {
				// Malformed responses are terminal; retries are for transport faults only.
				s.logger.Error("Error parsing rate API response", slog.String("error", err.Error()))
				return decimal.Decimal{}, fmt.Errorf("%w: %v", apperrors.ErrRateUnavailable, err)
			}

			lastErr = err
			s.logger.Warn("Rate API request failed",
				slog.Int("attempt", attempt+1),
				slog.Int("max_retries", s.maxRetries),
				slog.String("error", err.Error()))

			if attempt < s.maxRetries-1 {
				select {
				case <-ctx.Done():
					return decimal.Decimal{}, ctx.Err()
				case <-time.After(s.backoffBase << attempt):
				}
			}
			continue
		}

		rate, ok := rates[toCurrency]
		if !ok {
			s.logger.Error("Rate not found in API response",
				slog.String("from", fromCurrency), slog.String("to", toCurrency))
			return decimal.Decimal{}, apperrors.ErrRateUnavailable
		}

		s.cache.SetRate(fromCurrency, toCurrency, date, rate)
		if err := s.rateRepo.UpsertRate(ctx, fromCurrency, date, rate); err != nil && !errors.Is(err, apperrors.ErrDuplicate) {
			// The rate is still usable; the next resolution will refetch and retry the write.
			s.logger.Warn("Failed to persist fetched rate",
				slog.String("currency", fromCurrency), slog.String("error", err.Error()))
		}

		s.logger.Info("Fetched exchange rate",
			slog.String("from", fromCurrency),
			slog.String("to", toCurrency),
			slog.Time("date", date),
			slog.String("rate", rate.String()))
		return rate, nil
	}

	s.logger.Error("Failed to fetch exchange rate after retries",
		slog.Int("attempts", s.maxRetries),
		slog.String("error", lastErr.Error()))
	return decimal.Decimal{}, fmt.Errorf("%w: %v", apperrors.ErrRateUnavailable, lastErr)
}
