package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/openaims/fxconvert/internal/apperrors"
	portssvc "github.com/openaims/fxconvert/internal/core/ports/services"
	"github.com/openaims/fxconvert/internal/core/services"
)

type ConversionServiceTestSuite struct {
	suite.Suite
	mockResolver *MockRateResolverSvc
	service      portssvc.ConverterSvcFacade
}

func (suite *ConversionServiceTestSuite) SetupTest() {
	suite.mockResolver = new(MockRateResolverSvc)
	suite.service = services.NewConversionService(suite.mockResolver, nil)
}

func (suite *ConversionServiceTestSuite) TestConvertToUSD_NonPositiveAmountIsNoop() {
	ctx := context.Background()

	for _, amount := range []decimal.Decimal{decimal.Zero, decimal.NewFromInt(-50)} {
		conv, err := suite.service.ConvertToUSD(ctx, amount, "EUR", time.Now())
		suite.Require().NoError(err)
		suite.Nil(conv)
	}
	suite.mockResolver.AssertNotCalled(suite.T(), "GetRate", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (suite *ConversionServiceTestSuite) TestConvertToUSD_USDIsIdentity() {
	ctx := context.Background()
	amount := decimal.RequireFromString("123.45")

	conv, err := suite.service.ConvertToUSD(ctx, amount, "usd", time.Now())

	suite.Require().NoError(err)
	suite.Require().NotNil(conv)
	suite.True(conv.AmountUSD.Equal(amount))
	suite.True(conv.Rate.Equal(decimal.NewFromInt(1)))
	suite.mockResolver.AssertNotCalled(suite.T(), "GetRate", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (suite *ConversionServiceTestSuite) TestConvertToUSD_Rounding() {
	ctx := context.Background()
	date := time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC)

	testCases := []struct {
		amount   string
		rate     string
		expected string
	}{
		{"100.00", "1.10", "110.00"},
		{"1000.50", "0.85", "850.42"},
		{"50.75", "1.25", "63.44"},
	}

	for _, tc := range testCases {
		suite.mockResolver.On("GetRate", ctx, "EUR", "USD", date).
			Return(decimal.RequireFromString(tc.rate), nil).Once()

		conv, err := suite.service.ConvertToUSD(ctx, decimal.RequireFromString(tc.amount), "EUR", date)

		suite.Require().NoError(err)
		suite.Require().NotNil(conv)
		suite.Equal(tc.expected, conv.AmountUSD.StringFixed(2), "amount %s at rate %s", tc.amount, tc.rate)
	}
	suite.mockResolver.AssertExpectations(suite.T())
}

func (suite *ConversionServiceTestSuite) TestConvertToUSD_ResolverErrorPropagates() {
	ctx := context.Background()
	date := time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC)
	suite.mockResolver.On("GetRate", ctx, "XYZ", "USD", date).
		Return(decimal.Decimal{}, apperrors.ErrUnsupportedCurrency).Once()

	conv, err := suite.service.ConvertToUSD(ctx, decimal.NewFromInt(10), "xyz", date)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrUnsupportedCurrency)
	suite.Nil(conv)
	suite.mockResolver.AssertExpectations(suite.T())
}

func TestConversionServiceTestSuite(t *testing.T) {
	suite.Run(t, new(ConversionServiceTestSuite))
}
