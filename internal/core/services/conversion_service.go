package services

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/openaims/fxconvert/internal/core/domain"
	portssvc "github.com/openaims/fxconvert/internal/core/ports/services"
)

// ConversionService converts amounts to USD using historical exchange rates.
type ConversionService struct {
	resolver portssvc.RateResolverSvcFacade
	logger   *slog.Logger
}

// NewConversionService creates a new ConversionService.
func NewConversionService(resolver portssvc.RateResolverSvcFacade, logger *slog.Logger) *ConversionService {
	if logger == nil {
		logger = slog.Default()
	}
	return &ConversionService{
		resolver: resolver,
		logger:   logger,
	}
}

// ConvertToUSD converts amount from the given currency to USD using the rate
// for date. A non-positive amount returns (nil, nil): nothing to convert, not
// an error. USD amounts convert at rate 1 without any I/O. Results are rounded
// to 2 decimal places with banker's rounding.
func (s *ConversionService) ConvertToUSD(ctx context.Context, amount decimal.Decimal, currency string, date time.Time) (conv *domain.Conversion, err error) {
	if !amount.IsPositive() {
		return nil, nil
	}

	currency = strings.ToUpper(currency)

	if currency == "USD" {
		return &domain.Conversion{
			AmountUSD: amount,
			Rate:      decimal.NewFromInt(1),
		}, nil
	}

	defer func() {
		if r := recover(); r != nil {
			s.logger.Error("Arithmetic failure during USD conversion",
				slog.String("amount", amount.String()),
				slog.String("currency", currency),
				slog.Any("panic", r))
			conv, err = nil, nil
		}
	}()

	rate, rateErr := s.resolver.GetRate(ctx, currency, "USD", date)
	if rateErr != nil {
		return nil, rateErr
	}

	usdAmount := amount.Mul(rate).RoundBank(2)

	s.logger.Debug("Converted amount to USD",
		slog.String("amount", amount.String()),
		slog.String("currency", currency),
		slog.String("usd_amount", usdAmount.String()),
		slog.String("rate", rate.String()))

	return &domain.Conversion{
		AmountUSD: usdAmount,
		Rate:      rate,
	}, nil
}
