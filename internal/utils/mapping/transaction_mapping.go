package mapping

import (
	"github.com/openaims/fxconvert/internal/core/domain"
	"github.com/openaims/fxconvert/internal/models"
)

// ToDomainAidTransaction converts a model AidTransaction to a domain AidTransaction
func ToDomainAidTransaction(m models.AidTransaction) domain.AidTransaction {
	return domain.AidTransaction{
		TransactionID:     m.TransactionID,
		ActivityID:        m.ActivityID,
		Description:       m.Description,
		ProviderOrg:       m.ProviderOrg,
		ReceiverOrg:       m.ReceiverOrg,
		Value:             m.Value,
		Currency:          m.Currency,
		TransactionDate:   m.TransactionDate,
		ValueDate:         m.ValueDate,
		ValueUSD:          m.ValueUSD,
		UsdConvertible:    m.UsdConvertible,
		ExchangeRateUsed:  m.ExchangeRateUsed,
		UsdConversionDate: m.UsdConversionDate,
		AuditFields:       ToDomainAuditFields(m.AuditFields),
	}
}

// ToDomainAidTransactionSlice converts a slice of model AidTransactions to domain form
func ToDomainAidTransactionSlice(ms []models.AidTransaction) []domain.AidTransaction {
	ds := make([]domain.AidTransaction, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainAidTransaction(m)
	}
	return ds
}
