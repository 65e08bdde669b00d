package models

import "time"

// SupportedCurrency is a registry row for a currency the rate API supports.
type SupportedCurrency struct {
	Code        string    `json:"code"` // Primary key (e.g., "EUR")
	Name        string    `json:"name"`
	IsSupported bool      `json:"isSupported"`
	LastChecked time.Time `json:"lastChecked"`
	CreatedAt   time.Time `json:"createdAt"`
}
