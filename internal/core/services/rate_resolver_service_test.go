package services_test

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/openaims/fxconvert/internal/apperrors"
	"github.com/openaims/fxconvert/internal/core/domain"
	"github.com/openaims/fxconvert/internal/core/ports"
	portssvc "github.com/openaims/fxconvert/internal/core/ports/services"
	"github.com/openaims/fxconvert/internal/core/services"
	"github.com/openaims/fxconvert/internal/platform/ratesapi"
)

type RateResolverServiceTestSuite struct {
	suite.Suite
	mockRepo     *MockRateCacheRepository
	mockCache    *MockRateCache
	mockClient   *MockRatesAPIClient
	mockRegistry *MockCurrencyRegistrySvc
	service      portssvc.RateResolverSvcFacade
}

func (suite *RateResolverServiceTestSuite) SetupTest() {
	suite.mockRepo = new(MockRateCacheRepository)
	suite.mockCache = new(MockRateCache)
	suite.mockClient = new(MockRatesAPIClient)
	suite.mockRegistry = new(MockCurrencyRegistrySvc)
	suite.service = services.NewRateResolverService(
		suite.mockRepo, suite.mockCache, suite.mockClient, suite.mockRegistry,
		services.ResolverOptions{MaxRetries: 3, BackoffBase: time.Millisecond}, nil)
}

func (suite *RateResolverServiceTestSuite) TestGetRate_SameCurrencyIsIdentity() {
	ctx := context.Background()

	rate, err := suite.service.GetRate(ctx, "usd", "USD", time.Now())

	suite.Require().NoError(err)
	suite.True(rate.Equal(decimal.NewFromInt(1)))
	suite.mockRegistry.AssertNotCalled(suite.T(), "IsCurrencySupported", mock.Anything, mock.Anything)
	suite.mockRepo.AssertNotCalled(suite.T(), "FindRate", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *RateResolverServiceTestSuite) TestGetRate_UnsupportedCurrency() {
	ctx := context.Background()
	suite.mockRegistry.On("IsCurrencySupported", ctx, "XYZ").Return(false).Once()

	_, err := suite.service.GetRate(ctx, "xyz", "USD", time.Now())

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrUnsupportedCurrency)
	suite.mockRepo.AssertNotCalled(suite.T(), "FindRate", mock.Anything, mock.Anything, mock.Anything)
	suite.mockClient.AssertNotCalled(suite.T(), "LatestRates", mock.Anything, mock.Anything)
}

func (suite *RateResolverServiceTestSuite) TestGetRate_DurableCacheHit() {
	ctx := context.Background()
	date := time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC)
	expected := decimal.RequireFromString("1.0845")
	suite.mockRegistry.On("IsCurrencySupported", ctx, "EUR").Return(true).Once()
	suite.mockRepo.On("FindRate", ctx, "EUR", date).Return(&domain.CachedRate{
		Currency: "EUR", Date: date, RateToUSD: expected,
	}, nil).Once()

	rate, err := suite.service.GetRate(ctx, "EUR", "USD", date)

	suite.Require().NoError(err)
	suite.True(rate.Equal(expected))
	suite.mockCache.AssertNotCalled(suite.T(), "GetRate", mock.Anything, mock.Anything, mock.Anything)
	suite.mockClient.AssertNotCalled(suite.T(), "LatestRates", mock.Anything, mock.Anything)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *RateResolverServiceTestSuite) TestGetRate_MemoryCacheHit() {
	ctx := context.Background()
	date := time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC)
	expected := decimal.RequireFromString("0.0012")
	suite.mockRegistry.On("IsCurrencySupported", ctx, "MMK").Return(true).Once()
	suite.mockRepo.On("FindRate", ctx, "MMK", date).Return(nil, apperrors.ErrNotFound).Once()
	suite.mockCache.On("GetRate", "MMK", "USD", date).Return(expected, true).Once()

	rate, err := suite.service.GetRate(ctx, "MMK", "USD", date)

	suite.Require().NoError(err)
	suite.True(rate.Equal(expected))
	suite.mockClient.AssertNotCalled(suite.T(), "LatestRates", mock.Anything, mock.Anything)
	suite.mockCache.AssertExpectations(suite.T())
}

func (suite *RateResolverServiceTestSuite) TestGetRate_FutureDateRejected() {
	ctx := context.Background()
	future := time.Now().AddDate(0, 0, 2)
	suite.mockRegistry.On("IsCurrencySupported", ctx, "EUR").Return(true).Once()
	suite.mockRepo.On("FindRate", ctx, "EUR", future).Return(nil, apperrors.ErrNotFound).Once()
	suite.mockCache.On("GetRate", "EUR", "USD", future).Return(decimal.Decimal{}, false).Once()

	_, err := suite.service.GetRate(ctx, "EUR", "USD", future)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrFutureDate)
	suite.mockClient.AssertNotCalled(suite.T(), "LatestRates", mock.Anything, mock.Anything)
}

func (suite *RateResolverServiceTestSuite) TestGetRate_RetriesTransportFailures() {
	ctx := context.Background()
	date := time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC)
	expected := decimal.RequireFromString("1.0845")
	suite.mockRegistry.On("IsCurrencySupported", ctx, "EUR").Return(true).Once()
	suite.mockRepo.On("FindRate", ctx, "EUR", date).Return(nil, apperrors.ErrNotFound).Once()
	suite.mockCache.On("GetRate", "EUR", "USD", date).Return(decimal.Decimal{}, false).Once()

	suite.mockClient.On("LatestRates", ctx, "EUR").Return(nil, fmt.Errorf("connection reset")).Twice()
	suite.mockClient.On("LatestRates", ctx, "EUR").Return(map[string]decimal.Decimal{"USD": expected}, nil).Once()

	suite.mockCache.On("SetRate", "EUR", "USD", date, expected).Once()
	suite.mockRepo.On("UpsertRate", ctx, "EUR", date, expected).Return(nil).Once()

	rate, err := suite.service.GetRate(ctx, "EUR", "USD", date)

	suite.Require().NoError(err)
	suite.True(rate.Equal(expected))
	suite.mockClient.AssertNumberOfCalls(suite.T(), "LatestRates", 3)
	suite.mockRepo.AssertExpectations(suite.T())
	suite.mockCache.AssertExpectations(suite.T())
}

func (suite *RateResolverServiceTestSuite) TestGetRate_RecoversFromTransientServerErrors() {
	ctx := context.Background()
	date := time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC)
	expected := decimal.RequireFromString("1.0845")

	calls := 0
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		if calls < 3 {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		w.Write([]byte(`{"rates":{"USD":1.0845}}`))
	}))
	defer server.Close()

	suite.mockRegistry.On("IsCurrencySupported", ctx, "EUR").Return(true).Once()
	suite.mockRepo.On("FindRate", ctx, "EUR", date).Return(nil, apperrors.ErrNotFound).Once()
	suite.mockCache.On("GetRate", "EUR", "USD", date).Return(decimal.Decimal{}, false).Once()
	suite.mockCache.On("SetRate", "EUR", "USD", date, expected).Once()
	suite.mockRepo.On("UpsertRate", ctx, "EUR", date, expected).Return(nil).Once()

	resolver := services.NewRateResolverService(
		suite.mockRepo, suite.mockCache, ratesapi.NewClient(server.URL, time.Second), suite.mockRegistry,
		services.ResolverOptions{MaxRetries: 3, BackoffBase: time.Millisecond}, nil)

	rate, err := resolver.GetRate(ctx, "EUR", "USD", date)

	suite.Require().NoError(err)
	suite.True(rate.Equal(expected))
	suite.Equal(3, calls)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *RateResolverServiceTestSuite) TestGetRate_BadResponseIsTerminal() {
	ctx := context.Background()
	date := time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC)
	suite.mockRegistry.On("IsCurrencySupported", ctx, "EUR").Return(true).Once()
	suite.mockRepo.On("FindRate", ctx, "EUR", date).Return(nil, apperrors.ErrNotFound).Once()
	suite.mockCache.On("GetRate", "EUR", "USD", date).Return(decimal.Decimal{}, false).Once()
	suite.mockClient.On("LatestRates", ctx, "EUR").
		Return(nil, fmt.Errorf("%w: missing rates field", ports.ErrBadAPIResponse)).Once()

	_, err := suite.service.GetRate(ctx, "EUR", "USD", date)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrRateUnavailable)
	suite.mockClient.AssertNumberOfCalls(suite.T(), "LatestRates", 1)
}

func (suite *RateResolverServiceTestSuite) TestGetRate_RateMissingFromResponse() {
	ctx := context.Background()
	date := time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC)
	suite.mockRegistry.On("IsCurrencySupported", ctx, "EUR").Return(true).Once()
	suite.mockRepo.On("FindRate", ctx, "EUR", date).Return(nil, apperrors.ErrNotFound).Once()
	suite.mockCache.On("GetRate", "EUR", "USD", date).Return(decimal.Decimal{}, false).Once()
	suite.mockClient.On("LatestRates", ctx, "EUR").
		Return(map[string]decimal.Decimal{"GBP": decimal.RequireFromString("0.85")}, nil).Once()

	_, err := suite.service.GetRate(ctx, "EUR", "USD", date)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrRateUnavailable)
	suite.mockClient.AssertNumberOfCalls(suite.T(), "LatestRates", 1)
}

func (suite *RateResolverServiceTestSuite) TestGetRate_RetriesExhausted() {
	ctx := context.Background()
	date := time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC)
	suite.mockRegistry.On("IsCurrencySupported", ctx, "EUR").Return(true).Once()
	suite.mockRepo.On("FindRate", ctx, "EUR", date).Return(nil, apperrors.ErrNotFound).Once()
	suite.mockCache.On("GetRate", "EUR", "USD", date).Return(decimal.Decimal{}, false).Once()
	suite.mockClient.On("LatestRates", ctx, "EUR").Return(nil, assert.AnError).Times(3)

	_, err := suite.service.GetRate(ctx, "EUR", "USD", date)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrRateUnavailable)
	suite.mockClient.AssertNumberOfCalls(suite.T(), "LatestRates", 3)
}

func (suite *RateResolverServiceTestSuite) TestGetRate_PersistFailureStillReturnsRate() {
	ctx := context.Background()
	date := time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC)
	expected := decimal.RequireFromString("1.0845")
	suite.mockRegistry.On("IsCurrencySupported", ctx, "EUR").Return(true).Once()
	suite.mockRepo.On("FindRate", ctx, "EUR", date).Return(nil, apperrors.ErrNotFound).Once()
	suite.mockCache.On("GetRate", "EUR", "USD", date).Return(decimal.Decimal{}, false).Once()
	suite.mockClient.On("LatestRates", ctx, "EUR").Return(map[string]decimal.Decimal{"USD": expected}, nil).Once()
	suite.mockCache.On("SetRate", "EUR", "USD", date, expected).Once()
	suite.mockRepo.On("UpsertRate", ctx, "EUR", date, expected).Return(assert.AnError).Once()

	rate, err := suite.service.GetRate(ctx, "EUR", "USD", date)

	suite.Require().NoError(err)
	suite.True(rate.Equal(expected))
}

func (suite *RateResolverServiceTestSuite) TestGetRateHistory_InvalidCode() {
	ctx := context.Background()

	_, err := suite.service.GetRateHistory(ctx, "EURO", time.Now().AddDate(0, -1, 0), time.Now())

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockRepo.AssertNotCalled(suite.T(), "ListRates", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (suite *RateResolverServiceTestSuite) TestGetRateHistory_Success() {
	ctx := context.Background()
	start := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2024, 3, 31, 0, 0, 0, 0, time.UTC)
	rates := []domain.CachedRate{
		{Currency: "EUR", Date: start, RateToUSD: decimal.RequireFromString("1.08")},
		{Currency: "EUR", Date: end, RateToUSD: decimal.RequireFromString("1.09")},
	}
	suite.mockRepo.On("ListRates", ctx, "EUR", start, end).Return(rates, nil).Once()

	got, err := suite.service.GetRateHistory(ctx, "eur", start, end)

	suite.Require().NoError(err)
	suite.Equal(rates, got)
	suite.mockRepo.AssertExpectations(suite.T())
}

func TestRateResolverServiceTestSuite(t *testing.T) {
	suite.Run(t, new(RateResolverServiceTestSuite))
}
