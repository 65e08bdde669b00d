package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// AidTransaction is the database row for an aid-activity financial record,
// including the USD conversion state columns owned by this service.
type AidTransaction struct {
	TransactionID   string          `json:"transactionID"` // Primary key (UUID)
	ActivityID      string          `json:"activityID"`
	Description     string          `json:"description"`
	ProviderOrg     string          `json:"providerOrg"`
	ReceiverOrg     string          `json:"receiverOrg"`
	Value           decimal.Decimal `json:"value"`
	Currency        string          `json:"currency"`
	TransactionDate time.Time       `json:"transactionDate"`
	ValueDate       *time.Time      `json:"valueDate,omitempty"`

	ValueUSD          *decimal.Decimal `json:"valueUSD,omitempty"`
	UsdConvertible    bool             `json:"usdConvertible"`
	ExchangeRateUsed  *decimal.Decimal `json:"exchangeRateUsed,omitempty"`
	UsdConversionDate *time.Time       `json:"usdConversionDate,omitempty"`
	AuditFields
}
