package services_test

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"

	"github.com/openaims/fxconvert/internal/core/domain"
	portsrepo "github.com/openaims/fxconvert/internal/core/ports/repositories"
)

// --- Mock RatesAPIClient ---
type MockRatesAPIClient struct {
	mock.Mock
}

func (m *MockRatesAPIClient) LatestRates(ctx context.Context, baseCurrency string) (map[string]decimal.Decimal, error) {
	args := m.Called(ctx, baseCurrency)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[string]decimal.Decimal), args.Error(1)
}

// --- Mock RateCache ---
type MockRateCache struct {
	mock.Mock
}

func (m *MockRateCache) GetRate(fromCurrency, toCurrency string, date time.Time) (decimal.Decimal, bool) {
	args := m.Called(fromCurrency, toCurrency, date)
	return args.Get(0).(decimal.Decimal), args.Bool(1)
}

func (m *MockRateCache) SetRate(fromCurrency, toCurrency string, date time.Time, rate decimal.Decimal) {
	m.Called(fromCurrency, toCurrency, date, rate)
}

func (m *MockRateCache) GetSupportedCodes() ([]string, bool) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Bool(1)
	}
	return args.Get(0).([]string), args.Bool(1)
}

func (m *MockRateCache) SetSupportedCodes(codes []string) {
	m.Called(codes)
}

// --- Mock SupportedCurrencyRepository ---
type MockCurrencyRepository struct {
	mock.Mock
}

func (m *MockCurrencyRepository) FindByCode(ctx context.Context, code string) (*domain.SupportedCurrency, error) {
	args := m.Called(ctx, code)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.SupportedCurrency), args.Error(1)
}

func (m *MockCurrencyRepository) ListSupported(ctx context.Context) ([]domain.SupportedCurrency, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.SupportedCurrency), args.Error(1)
}

func (m *MockCurrencyRepository) ListSupportedCodes(ctx context.Context) ([]string, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}

func (m *MockCurrencyRepository) ReplaceSupported(ctx context.Context, currencies []domain.SupportedCurrency) error {
	args := m.Called(ctx, currencies)
	return args.Error(0)
}

// --- Mock RateCacheRepository ---
type MockRateCacheRepository struct {
	mock.Mock
}

func (m *MockRateCacheRepository) FindRate(ctx context.Context, currency string, date time.Time) (*domain.CachedRate, error) {
	args := m.Called(ctx, currency, date)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.CachedRate), args.Error(1)
}

func (m *MockRateCacheRepository) ListRates(ctx context.Context, currency string, start, end time.Time) ([]domain.CachedRate, error) {
	args := m.Called(ctx, currency, start, end)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.CachedRate), args.Error(1)
}

func (m *MockRateCacheRepository) UpsertRate(ctx context.Context, currency string, date time.Time, rate decimal.Decimal) error {
	args := m.Called(ctx, currency, date, rate)
	return args.Error(0)
}

// --- Mock TransactionRepository ---
type MockTransactionRepository struct {
	mock.Mock
}

func (m *MockTransactionRepository) FindTransactionByID(ctx context.Context, transactionID string) (*domain.AidTransaction, error) {
	args := m.Called(ctx, transactionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.AidTransaction), args.Error(1)
}

func (m *MockTransactionRepository) ListTransactions(ctx context.Context, filter portsrepo.TransactionFilter, limit, offset int) ([]domain.AidTransaction, error) {
	args := m.Called(ctx, filter, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.AidTransaction), args.Error(1)
}

func (m *MockTransactionRepository) CountTransactions(ctx context.Context, filter portsrepo.TransactionFilter) (int64, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockTransactionRepository) GetConversionStats(ctx context.Context, activityID string) ([]domain.CurrencyConversionStats, error) {
	args := m.Called(ctx, activityID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.CurrencyConversionStats), args.Error(1)
}

func (m *MockTransactionRepository) MarkUnconvertible(ctx context.Context, transactionID string, at time.Time) error {
	args := m.Called(ctx, transactionID, at)
	return args.Error(0)
}

func (m *MockTransactionRepository) SetUSDValue(ctx context.Context, transactionID string, usdAmount, rate decimal.Decimal, at time.Time) error {
	args := m.Called(ctx, transactionID, usdAmount, rate, at)
	return args.Error(0)
}

// --- Mock CurrencyRegistrySvc ---
type MockCurrencyRegistrySvc struct {
	mock.Mock
}

func (m *MockCurrencyRegistrySvc) IsCurrencySupported(ctx context.Context, code string) bool {
	args := m.Called(ctx, code)
	return args.Bool(0)
}

func (m *MockCurrencyRegistrySvc) GetSupportedCurrencies(ctx context.Context, refresh bool) []string {
	args := m.Called(ctx, refresh)
	if args.Get(0) == nil {
		return nil
	}
	return args.Get(0).([]string)
}

func (m *MockCurrencyRegistrySvc) ListSupportedCurrencies(ctx context.Context) ([]domain.SupportedCurrency, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.SupportedCurrency), args.Error(1)
}

func (m *MockCurrencyRegistrySvc) RefreshSupportedCurrencies(ctx context.Context) ([]string, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}

// --- Mock RateResolverSvc ---
type MockRateResolverSvc struct {
	mock.Mock
}

func (m *MockRateResolverSvc) GetRate(ctx context.Context, fromCurrency, toCurrency string, date time.Time) (decimal.Decimal, error) {
	args := m.Called(ctx, fromCurrency, toCurrency, date)
	return args.Get(0).(decimal.Decimal), args.Error(1)
}

func (m *MockRateResolverSvc) GetRateHistory(ctx context.Context, currency string, start, end time.Time) ([]domain.CachedRate, error) {
	args := m.Called(ctx, currency, start, end)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.CachedRate), args.Error(1)
}

// --- Mock ConverterSvc ---
type MockConverterSvc struct {
	mock.Mock
}

func (m *MockConverterSvc) ConvertToUSD(ctx context.Context, amount decimal.Decimal, currency string, date time.Time) (*domain.Conversion, error) {
	args := m.Called(ctx, amount, currency, date)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Conversion), args.Error(1)
}
