package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/openaims/fxconvert/internal/core/domain"
	portsrepo "github.com/openaims/fxconvert/internal/core/ports/repositories"
	"github.com/openaims/fxconvert/internal/core/services"
	"github.com/openaims/fxconvert/internal/platform/cache"
	"github.com/openaims/fxconvert/internal/platform/config"
	"github.com/openaims/fxconvert/internal/platform/ratesapi"
	pgsqlrepo "github.com/openaims/fxconvert/internal/repositories/database/pgsql"
	"github.com/openaims/fxconvert/pkg/database"
)

// convertctl runs a bulk USD conversion over aid transactions from the
// command line, sharing configuration and wiring with the API server.
func main() {
	currency := flag.String("currency", "", "restrict to one currency code")
	activityID := flag.String("activity-id", "", "restrict to one activity")
	startDate := flag.String("start-date", "", "transaction date window start (YYYY-MM-DD)")
	endDate := flag.String("end-date", "", "transaction date window end (YYYY-MM-DD)")
	dryRun := flag.Bool("dry-run", false, "classify records without writing anything")
	force := flag.Bool("force", false, "reprocess records that already hold a USD value")
	batchSize := flag.Int("batch-size", 0, "chunk size for paging (0 uses the configured default)")
	refreshCurrencies := flag.Bool("refresh-currencies", false, "refresh the supported-currency registry before converting")
	flag.Parse()

	logger := slog.New(slog.NewJSONHandler(os.Stderr, nil))
	slog.SetDefault(logger)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, logger, *currency, *activityID, *startDate, *endDate, *dryRun, *force, *batchSize, *refreshCurrencies); err != nil {
		logger.Error("Conversion run failed", slog.String("error", err.Error()))
		os.Exit(1)
	}
}

func run(ctx context.Context, logger *slog.Logger, currency, activityID, startDate, endDate string, dryRun, force bool, batchSize int, refreshCurrencies bool) error {
	cfg, err := config.LoadConfig()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	filter := portsrepo.TransactionFilter{
		Currency:   currency,
		ActivityID: activityID,
	}
	if startDate != "" {
		start, err := time.Parse("2006-01-02", startDate)
		if err != nil {
			return fmt.Errorf("invalid -start-date %q: %w", startDate, err)
		}
		filter.StartDate = &start
	}
	if endDate != "" {
		end, err := time.Parse("2006-01-02", endDate)
		if err != nil {
			return fmt.Errorf("invalid -end-date %q: %w", endDate, err)
		}
		filter.EndDate = &end
	}

	dbPool, err := database.NewPgxPool(ctx, cfg.DatabaseURL)
	if err != nil {
		return fmt.Errorf("failed to initialize database pool: %w", err)
	}
	defer dbPool.Close()

	repos := pgsqlrepo.NewRepositoryProvider(dbPool)
	rateCache := cache.NewMemoryRateCache(cfg.RateCacheTTL)
	apiClient := ratesapi.NewClient(cfg.RatesAPIBaseURL, cfg.RatesAPITimeout)

	container := services.NewServiceContainer(repos, rateCache, apiClient, services.ContainerOptions{
		Resolver:  services.ResolverOptions{MaxRetries: cfg.RatesAPIMaxRetries},
		BatchSize: cfg.ConversionBatchSize,
	}, logger)

	if refreshCurrencies {
		codes, err := container.Registry.RefreshSupportedCurrencies(ctx)
		if err != nil {
			return fmt.Errorf("failed to refresh supported currencies: %w", err)
		}
		logger.Info("Supported currencies refreshed", slog.Int("count", len(codes)))
	}

	result, err := container.Batch.ConvertBatch(ctx, filter, domain.BatchOptions{
		Force:          force,
		DryRun:         dryRun,
		BatchSize:      batchSize,
		CollectDetails: dryRun,
	})
	if err != nil {
		return err
	}

	printSummary(result, dryRun)
	if result.Errors > 0 {
		return fmt.Errorf("%d record(s) failed", result.Errors)
	}
	return nil
}

func printSummary(result *domain.BatchResult, dryRun bool) {
	if dryRun {
		fmt.Println("Dry run; no changes were written.")
	}
	fmt.Printf("Processed: %d\n", result.Processed)
	fmt.Printf("Converted: %d\n", result.Converted)
	fmt.Printf("Skipped:   %d\n", result.Skipped)
	fmt.Printf("Errors:    %d\n", result.Errors)
	for _, d := range result.Details {
		if d.Reason != "" {
			fmt.Printf("  %s  %s  (%s)\n", d.TransactionID, d.Status, d.Reason)
		} else {
			fmt.Printf("  %s  %s\n", d.TransactionID, d.Status)
		}
	}
}
