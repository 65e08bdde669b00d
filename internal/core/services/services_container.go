package services

import (
	"log/slog"
	"time"

	"github.com/openaims/fxconvert/internal/core/ports"
	portsrepo "github.com/openaims/fxconvert/internal/core/ports/repositories"
	portssvc "github.com/openaims/fxconvert/internal/core/ports/services"
)

// ContainerOptions carries the tunables threaded into the services at wiring
// time, typically sourced from configuration.
type ContainerOptions struct {
	Resolver  ResolverOptions
	BatchSize int
}

// NewServiceContainer wires up all application services against the provided
// repositories, caches and upstream client.
func NewServiceContainer(
	repos portsrepo.RepositoryProvider,
	rateCache ports.RateCache,
	apiClient ports.RatesAPIClient,
	opts ContainerOptions,
	logger *slog.Logger,
) *portssvc.ServiceContainer {
	if logger == nil {
		logger = slog.Default()
	}
	if opts.Resolver.MaxRetries <= 0 {
		opts.Resolver.MaxRetries = 3
	}
	if opts.Resolver.BackoffBase <= 0 {
		opts.Resolver.BackoffBase = time.Second
	}

	registry := NewCurrencyRegistryService(repos.SupportedCurrencyRepo, rateCache, apiClient, logger)
	resolver := NewRateResolverService(repos.RateCacheRepo, rateCache, apiClient, registry, opts.Resolver, logger)
	converter := NewConversionService(resolver, logger)
	transaction := NewTransactionService(repos.TransactionRepo, registry, logger)
	batch := NewBatchConversionService(repos.TransactionRepo, transaction, registry, converter, opts.BatchSize, logger)

	return &portssvc.ServiceContainer{
		Registry:    registry,
		Resolver:    resolver,
		Converter:   converter,
		Transaction: transaction,
		Batch:       batch,
	}
}
