package dto

import (
	"github.com/openaims/fxconvert/internal/core/domain"
)

// ConvertTransactionsRequest defines the payload for converting a list of
// transactions to USD.
type ConvertTransactionsRequest struct {
	TransactionIDs []string `json:"transactionIDs" binding:"required,min=1,dive,required"`
	Force          bool     `json:"force"`
}

// ConversionOutcomeResponse is the per-record detail of a conversion run.
type ConversionOutcomeResponse struct {
	TransactionID string `json:"transactionID"`
	Status        string `json:"status"`
	Reason        string `json:"reason,omitempty"`
}

// ConversionRunResponse reports a conversion run: aggregate counters plus
// per-record details.
type ConversionRunResponse struct {
	Processed int                         `json:"processed"`
	Converted int                         `json:"converted"`
	Skipped   int                         `json:"skipped"`
	Errors    int                         `json:"errors"`
	Details   []ConversionOutcomeResponse `json:"details,omitempty"`
}

// ToConversionRunResponse converts a domain.BatchResult to its response DTO
func ToConversionRunResponse(result *domain.BatchResult) ConversionRunResponse {
	details := make([]ConversionOutcomeResponse, len(result.Details))
	for i, d := range result.Details {
		details[i] = ConversionOutcomeResponse{
			TransactionID: d.TransactionID,
			Status:        d.Status,
			Reason:        d.Reason,
		}
	}
	return ConversionRunResponse{
		Processed: result.Processed,
		Converted: result.Converted,
		Skipped:   result.Skipped,
		Errors:    result.Errors,
		Details:   details,
	}
}

// CurrencyStatsResponse is the per-currency slice of conversion statistics.
type CurrencyStatsResponse struct {
	Currency      string `json:"currency"`
	Total         int64  `json:"total"`
	Converted     int64  `json:"converted"`
	Unconvertible int64  `json:"unconvertible"`
	Pending       int64  `json:"pending"`
	IsSupported   bool   `json:"isSupported"`
}

// ConversionStatsResponse reports aggregate conversion state, optionally
// restricted to a single activity.
type ConversionStatsResponse struct {
	TotalTransactions         int64                            `json:"totalTransactions"`
	ConvertedTransactions     int64                            `json:"convertedTransactions"`
	UnconvertibleTransactions int64                            `json:"unconvertibleTransactions"`
	PendingTransactions       int64                            `json:"pendingTransactions"`
	USDTransactions           int64                            `json:"usdTransactions"`
	ConversionRatePercent     float64                          `json:"conversionRatePercent"`
	CurrencyBreakdown         map[string]CurrencyStatsResponse `json:"currencyBreakdown"`
}

// ToConversionStatsResponse converts a domain.ConversionStats to its response DTO
func ToConversionStatsResponse(stats *domain.ConversionStats) ConversionStatsResponse {
	breakdown := make(map[string]CurrencyStatsResponse, len(stats.CurrencyBreakdown))
	for code, row := range stats.CurrencyBreakdown {
		breakdown[code] = CurrencyStatsResponse{
			Currency:      row.Currency,
			Total:         row.Total,
			Converted:     row.Converted,
			Unconvertible: row.Unconvertible,
			Pending:       row.Pending,
			IsSupported:   row.IsSupported,
		}
	}
	return ConversionStatsResponse{
		TotalTransactions:         stats.TotalTransactions,
		ConvertedTransactions:     stats.ConvertedTransactions,
		UnconvertibleTransactions: stats.UnconvertibleTransactions,
		PendingTransactions:       stats.PendingTransactions,
		USDTransactions:           stats.USDTransactions,
		ConversionRatePercent:     stats.ConversionRatePercent,
		CurrencyBreakdown:         breakdown,
	}
}
