package dto

import (
	"time"

	"github.com/openaims/fxconvert/internal/core/domain"
	"github.com/shopspring/decimal"
)

// TransactionResponse defines the data returned for an aid transaction.
type TransactionResponse struct {
	TransactionID     string           `json:"transactionID"`
	ActivityID        string           `json:"activityID"`
	Description       string           `json:"description,omitempty"`
	ProviderOrg       string           `json:"providerOrg,omitempty"`
	ReceiverOrg       string           `json:"receiverOrg,omitempty"`
	Value             decimal.Decimal  `json:"value"`
	Currency          string           `json:"currency"`
	TransactionDate   time.Time        `json:"transactionDate"`
	ValueDate         *time.Time       `json:"valueDate,omitempty"`
	ValueUSD          *decimal.Decimal `json:"valueUSD,omitempty"`
	UsdConvertible    bool             `json:"usdConvertible"`
	ExchangeRateUsed  *decimal.Decimal `json:"exchangeRateUsed,omitempty"`
	UsdConversionDate *time.Time       `json:"usdConversionDate,omitempty"`
	ConversionStatus  string           `json:"conversionStatus"`
}

// ToTransactionResponse converts a domain.AidTransaction to TransactionResponse DTO
func ToTransactionResponse(txn *domain.AidTransaction) TransactionResponse {
	return TransactionResponse{
		TransactionID:     txn.TransactionID,
		ActivityID:        txn.ActivityID,
		Description:       txn.Description,
		ProviderOrg:       txn.ProviderOrg,
		ReceiverOrg:       txn.ReceiverOrg,
		Value:             txn.Value,
		Currency:          txn.Currency,
		TransactionDate:   txn.TransactionDate,
		ValueDate:         txn.ValueDate,
		ValueUSD:          txn.ValueUSD,
		UsdConvertible:    txn.UsdConvertible,
		ExchangeRateUsed:  txn.ExchangeRateUsed,
		UsdConversionDate: txn.UsdConversionDate,
		ConversionStatus:  string(txn.ConversionStatus()),
	}
}

// ListTransactionsQuery captures the supported listing filters.
type ListTransactionsQuery struct {
	ActivityID       string `form:"activityID"`
	Currency         string `form:"currency" binding:"omitempty,currencycode"`
	ConversionStatus string `form:"conversionStatus" binding:"omitempty,oneof=pending converted unconvertible native_usd"`
	Limit            int    `form:"limit,default=50" binding:"min=1,max=500"`
	Offset           int    `form:"offset" binding:"min=0"`
}

// ListTransactionsResponse wraps a page of transactions.
type ListTransactionsResponse struct {
	Transactions []TransactionResponse `json:"transactions"`
	Limit        int                   `json:"limit"`
	Offset       int                   `json:"offset"`
}

// ToListTransactionsResponse converts a page of transactions to its response DTO
func ToListTransactionsResponse(txns []domain.AidTransaction, limit, offset int) ListTransactionsResponse {
	res := make([]TransactionResponse, len(txns))
	for i := range txns {
		res[i] = ToTransactionResponse(&txns[i])
	}
	return ListTransactionsResponse{
		Transactions: res,
		Limit:        limit,
		Offset:       offset,
	}
}
