package services_test

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/openaims/fxconvert/internal/core/domain"
	portssvc "github.com/openaims/fxconvert/internal/core/ports/services"
	"github.com/openaims/fxconvert/internal/core/services"
)

type CurrencyRegistryServiceTestSuite struct {
	suite.Suite
	mockRepo   *MockCurrencyRepository
	mockCache  *MockRateCache
	mockClient *MockRatesAPIClient
	service    portssvc.CurrencyRegistrySvcFacade
}

func (suite *CurrencyRegistryServiceTestSuite) SetupTest() {
	suite.mockRepo = new(MockCurrencyRepository)
	suite.mockCache = new(MockRateCache)
	suite.mockClient = new(MockRatesAPIClient)
	suite.service = services.NewCurrencyRegistryService(suite.mockRepo, suite.mockCache, suite.mockClient, nil)
}

func (suite *CurrencyRegistryServiceTestSuite) TestIsCurrencySupported_USDAlwaysSupported() {
	ctx := context.Background()

	// No collaborator is consulted for USD.
	suite.True(suite.service.IsCurrencySupported(ctx, "USD"))
	suite.True(suite.service.IsCurrencySupported(ctx, "usd"))

	suite.mockCache.AssertNotCalled(suite.T(), "GetSupportedCodes")
	suite.mockRepo.AssertNotCalled(suite.T(), "ListSupportedCodes", mock.Anything)
	suite.mockClient.AssertNotCalled(suite.T(), "LatestRates", mock.Anything, mock.Anything)
}

func (suite *CurrencyRegistryServiceTestSuite) TestIsCurrencySupported_CaseInsensitive() {
	ctx := context.Background()
	suite.mockCache.On("GetSupportedCodes").Return([]string{"EUR", "GBP", "USD"}, true)

	suite.True(suite.service.IsCurrencySupported(ctx, "eur"))
	suite.False(suite.service.IsCurrencySupported(ctx, "XYZ"))
	suite.mockClient.AssertNotCalled(suite.T(), "LatestRates", mock.Anything, mock.Anything)
}

func (suite *CurrencyRegistryServiceTestSuite) TestGetSupportedCurrencies_EphemeralCacheHit() {
	ctx := context.Background()
	cached := []string{"EUR", "USD"}
	suite.mockCache.On("GetSupportedCodes").Return(cached, true).Once()

	codes := suite.service.GetSupportedCurrencies(ctx, false)

	suite.Equal(cached, codes)
	suite.mockRepo.AssertNotCalled(suite.T(), "ListSupportedCodes", mock.Anything)
	suite.mockClient.AssertNotCalled(suite.T(), "LatestRates", mock.Anything, mock.Anything)
	suite.mockCache.AssertExpectations(suite.T())
}

func (suite *CurrencyRegistryServiceTestSuite) TestGetSupportedCurrencies_DurableRegistryHit() {
	ctx := context.Background()
	stored := []string{"EUR", "GBP", "USD"}
	suite.mockCache.On("GetSupportedCodes").Return(nil, false).Once()
	suite.mockRepo.On("ListSupportedCodes", ctx).Return(stored, nil).Once()
	suite.mockCache.On("SetSupportedCodes", stored).Once()

	codes := suite.service.GetSupportedCurrencies(ctx, false)

	suite.Equal(stored, codes)
	suite.mockClient.AssertNotCalled(suite.T(), "LatestRates", mock.Anything, mock.Anything)
	suite.mockRepo.AssertExpectations(suite.T())
	suite.mockCache.AssertExpectations(suite.T())
}

func (suite *CurrencyRegistryServiceTestSuite) TestGetSupportedCurrencies_FetchesWhenEmpty() {
	ctx := context.Background()
	suite.mockCache.On("GetSupportedCodes").Return(nil, false).Once()
	suite.mockRepo.On("ListSupportedCodes", ctx).Return([]string{}, nil).Once()
	suite.mockClient.On("LatestRates", ctx, "USD").Return(map[string]decimal.Decimal{
		"EUR": decimal.RequireFromString("0.92"),
		"GBP": decimal.RequireFromString("0.79"),
	}, nil).Once()
	suite.mockRepo.On("ReplaceSupported", ctx, mock.MatchedBy(func(entries []domain.SupportedCurrency) bool {
		if len(entries) != 3 {
			return false
		}
		for _, e := range entries {
			if !e.IsSupported || e.Name == "" {
				return false
			}
		}
		return true
	})).Return(nil).Once()
	suite.mockCache.On("SetSupportedCodes", []string{"EUR", "GBP", "USD"}).Once()

	codes := suite.service.GetSupportedCurrencies(ctx, false)

	suite.Equal([]string{"EUR", "GBP", "USD"}, codes)
	suite.mockRepo.AssertExpectations(suite.T())
	suite.mockClient.AssertExpectations(suite.T())
	suite.mockCache.AssertExpectations(suite.T())
}

func (suite *CurrencyRegistryServiceTestSuite) TestGetSupportedCurrencies_RefreshBypassesCaches() {
	ctx := context.Background()
	suite.mockClient.On("LatestRates", ctx, "USD").Return(map[string]decimal.Decimal{
		"EUR": decimal.RequireFromString("0.92"),
	}, nil).Once()
	suite.mockRepo.On("ReplaceSupported", ctx, mock.AnythingOfType("[]domain.SupportedCurrency")).Return(nil).Once()
	suite.mockCache.On("SetSupportedCodes", []string{"EUR", "USD"}).Once()

	codes := suite.service.GetSupportedCurrencies(ctx, true)

	suite.Equal([]string{"EUR", "USD"}, codes)
	suite.mockCache.AssertNotCalled(suite.T(), "GetSupportedCodes")
	suite.mockRepo.AssertNotCalled(suite.T(), "ListSupportedCodes", mock.Anything)
	suite.mockClient.AssertExpectations(suite.T())
}

func (suite *CurrencyRegistryServiceTestSuite) TestGetSupportedCurrencies_APIFailureFallsBackToDefaults() {
	ctx := context.Background()
	suite.mockCache.On("GetSupportedCodes").Return(nil, false).Once()
	suite.mockRepo.On("ListSupportedCodes", ctx).Return([]string{}, nil).Once()
	suite.mockClient.On("LatestRates", ctx, "USD").Return(nil, assert.AnError).Once()
	suite.mockRepo.On("ReplaceSupported", ctx, mock.MatchedBy(func(entries []domain.SupportedCurrency) bool {
		return len(entries) == 40
	})).Return(nil).Once()
	suite.mockCache.On("SetSupportedCodes", mock.AnythingOfType("[]string")).Once()

	codes := suite.service.GetSupportedCurrencies(ctx, false)

	suite.Len(codes, 40)
	suite.Contains(codes, "USD")
	suite.Contains(codes, "EUR")
	suite.mockRepo.AssertExpectations(suite.T())
	suite.mockCache.AssertExpectations(suite.T())
}

func (suite *CurrencyRegistryServiceTestSuite) TestListSupportedCurrencies() {
	ctx := context.Background()
	entries := []domain.SupportedCurrency{
		{Code: "EUR", Name: "Euro", IsSupported: true},
		{Code: "USD", Name: "US Dollar", IsSupported: true},
	}
	suite.mockRepo.On("ListSupported", ctx).Return(entries, nil).Once()

	got, err := suite.service.ListSupportedCurrencies(ctx)

	suite.Require().NoError(err)
	suite.Equal(entries, got)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *CurrencyRegistryServiceTestSuite) TestRefreshSupportedCurrencies_SurfacesAPIFailure() {
	ctx := context.Background()
	suite.mockClient.On("LatestRates", ctx, "USD").Return(nil, assert.AnError).Once()

	codes, err := suite.service.RefreshSupportedCurrencies(ctx)

	suite.Require().Error(err)
	suite.Nil(codes)
	suite.mockRepo.AssertNotCalled(suite.T(), "ReplaceSupported", mock.Anything, mock.Anything)
	suite.mockCache.AssertNotCalled(suite.T(), "SetSupportedCodes", mock.Anything)
}

func (suite *CurrencyRegistryServiceTestSuite) TestRefreshSupportedCurrencies_Success() {
	ctx := context.Background()
	suite.mockClient.On("LatestRates", ctx, "USD").Return(map[string]decimal.Decimal{
		"EUR": decimal.RequireFromString("0.92"),
	}, nil).Once()
	suite.mockRepo.On("ReplaceSupported", ctx, mock.AnythingOfType("[]domain.SupportedCurrency")).Return(nil).Once()
	suite.mockCache.On("SetSupportedCodes", []string{"EUR", "USD"}).Once()

	codes, err := suite.service.RefreshSupportedCurrencies(ctx)

	suite.Require().NoError(err)
	suite.Equal([]string{"EUR", "USD"}, codes)
	suite.mockRepo.AssertExpectations(suite.T())
}

func TestCurrencyRegistryServiceTestSuite(t *testing.T) {
	suite.Run(t, new(CurrencyRegistryServiceTestSuite))
}
