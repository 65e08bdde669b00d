package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// ExchangeRateCache is a durable cache row for a historical exchange rate.
// Unique on (currency, date); rows are never evicted.
type ExchangeRateCache struct {
	Currency  string          `json:"currency"` // ISO 4217 code
	Date      time.Time       `json:"date"`
	RateToUSD decimal.Decimal `json:"rateToUSD"` // USD per 1 unit of currency
	AuditFields
}
