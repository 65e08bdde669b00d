package dto

import (
	"time"

	"github.com/openaims/fxconvert/internal/core/domain"
)

// SupportedCurrenciesResponse lists the currency codes convertible to USD.
type SupportedCurrenciesResponse struct {
	Currencies    []string   `json:"currencies"`
	Count         int        `json:"count"`
	LastRefreshed *time.Time `json:"lastRefreshed,omitempty"`
}

// RefreshCurrenciesResponse reports the outcome of an explicit registry refresh.
type RefreshCurrenciesResponse struct {
	Currencies []string `json:"currencies"`
	Count      int      `json:"count"`
}

// SupportedCurrencyResponse defines the data returned for a registry entry.
type SupportedCurrencyResponse struct {
	Code        string    `json:"code"`
	Name        string    `json:"name"`
	IsSupported bool      `json:"isSupported"`
	LastChecked time.Time `json:"lastChecked"`
}

// ToSupportedCurrencyResponse converts a domain.SupportedCurrency to its response DTO
func ToSupportedCurrencyResponse(c *domain.SupportedCurrency) SupportedCurrencyResponse {
	return SupportedCurrencyResponse{
		Code:        c.Code,
		Name:        c.Name,
		IsSupported: c.IsSupported,
		LastChecked: c.LastChecked,
	}
}

// ToListSupportedCurrencyResponse converts a slice of registry entries to response DTOs
func ToListSupportedCurrencyResponse(currencies []domain.SupportedCurrency) []SupportedCurrencyResponse {
	res := make([]SupportedCurrencyResponse, len(currencies))
	for i := range currencies {
		res[i] = ToSupportedCurrencyResponse(&currencies[i])
	}
	return res
}
