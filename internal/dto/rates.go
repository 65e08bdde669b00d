package dto

import (
	"github.com/openaims/fxconvert/internal/core/domain"
	"github.com/shopspring/decimal"
)

// RatePointResponse is a single cached rate observation.
type RatePointResponse struct {
	Date string          `json:"date"`
	Rate decimal.Decimal `json:"rate"`
}

// RateHistoryResponse reports cached rates for one currency over a date window.
type RateHistoryResponse struct {
	Currency string              `json:"currency"`
	Count    int                 `json:"count"`
	Rates    []RatePointResponse `json:"rates"`
}

// ToRateHistoryResponse converts cached rates to a history response DTO
func ToRateHistoryResponse(currency string, rates []domain.CachedRate) RateHistoryResponse {
	points := make([]RatePointResponse, len(rates))
	for i, r := range rates {
		points[i] = RatePointResponse{
			Date: r.Date.Format("2006-01-02"),
			Rate: r.RateToUSD,
		}
	}
	return RateHistoryResponse{
		Currency: currency,
		Count:    len(points),
		Rates:    points,
	}
}
