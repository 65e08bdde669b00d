package mapping

import (
	"github.com/openaims/fxconvert/internal/core/domain"
	"github.com/openaims/fxconvert/internal/models"
)

// ToDomainCachedRate converts a model ExchangeRateCache to a domain CachedRate
func ToDomainCachedRate(m models.ExchangeRateCache) domain.CachedRate {
	return domain.CachedRate{
		Currency:    m.Currency,
		Date:        m.Date,
		RateToUSD:   m.RateToUSD,
		AuditFields: ToDomainAuditFields(m.AuditFields),
	}
}

// ToDomainCachedRateSlice converts a slice of model ExchangeRateCache rows to domain form
func ToDomainCachedRateSlice(ms []models.ExchangeRateCache) []domain.CachedRate {
	ds := make([]domain.CachedRate, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainCachedRate(m)
	}
	return ds
}
