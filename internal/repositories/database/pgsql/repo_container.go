package pgsql

import (
	portsrepo "github.com/openaims/fxconvert/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

// NewRepositoryProvider wires all pgx-backed repositories into a provider.
func NewRepositoryProvider(dbPool *pgxpool.Pool) portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		RateCacheRepo:         newPgxRateCacheRepository(dbPool),
		SupportedCurrencyRepo: newPgxSupportedCurrencyRepository(dbPool),
		TransactionRepo:       newPgxTransactionRepository(dbPool),
	}
}
