package mapping

import (
	"github.com/openaims/fxconvert/internal/core/domain"
	"github.com/openaims/fxconvert/internal/models"
)

// ToModelSupportedCurrency converts a domain SupportedCurrency to a model SupportedCurrency
func ToModelSupportedCurrency(d domain.SupportedCurrency) models.SupportedCurrency {
	return models.SupportedCurrency{
		Code:        d.Code,
		Name:        d.Name,
		IsSupported: d.IsSupported,
		LastChecked: d.LastChecked,
		CreatedAt:   d.CreatedAt,
	}
}

// ToDomainSupportedCurrency converts a model SupportedCurrency to a domain SupportedCurrency
func ToDomainSupportedCurrency(m models.SupportedCurrency) domain.SupportedCurrency {
	return domain.SupportedCurrency{
		Code:        m.Code,
		Name:        m.Name,
		IsSupported: m.IsSupported,
		LastChecked: m.LastChecked,
		CreatedAt:   m.CreatedAt,
	}
}

// ToDomainSupportedCurrencySlice converts a slice of model SupportedCurrencies to domain form
func ToDomainSupportedCurrencySlice(ms []models.SupportedCurrency) []domain.SupportedCurrency {
	ds := make([]domain.SupportedCurrency, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainSupportedCurrency(m)
	}
	return ds
}
