package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/openaims/fxconvert/internal/apperrors"
	"github.com/openaims/fxconvert/internal/core/domain"
	portsrepo "github.com/openaims/fxconvert/internal/core/ports/repositories"
	portssvc "github.com/openaims/fxconvert/internal/core/ports/services"
)

const defaultBatchSize = 100

// BatchConversionService drives bulk USD conversion over aid transactions,
// paging through matching records in chunks and isolating per-record failures
// so one bad record never aborts a run.
type BatchConversionService struct {
	txnRepo    portsrepo.TransactionRepositoryFacade
	txnService portssvc.TransactionSvcFacade
	registry   portssvc.CurrencyRegistrySvcFacade
	converter  portssvc.ConverterSvcFacade
	logger     *slog.Logger
	batchSize  int
}

// NewBatchConversionService creates a new BatchConversionService. A
// non-positive batchSize falls back to the default chunk size.
func NewBatchConversionService(
	txnRepo portsrepo.TransactionRepositoryFacade,
	txnService portssvc.TransactionSvcFacade,
	registry portssvc.CurrencyRegistrySvcFacade,
	converter portssvc.ConverterSvcFacade,
	batchSize int,
	logger *slog.Logger,
) *BatchConversionService {
	if logger == nil {
		logger = slog.Default()
	}
	if batchSize <= 0 {
		batchSize = defaultBatchSize
	}
	return &BatchConversionService{
		txnRepo:    txnRepo,
		txnService: txnService,
		registry:   registry,
		converter:  converter,
		logger:     logger,
		batchSize:  batchSize,
	}
}

// ConvertBatch converts every transaction matching the filter. Without force it
// targets records still missing a USD value; with force it reprocesses matches
// that already hold one. Dry runs classify records without writing anything.
func (s *BatchConversionService) ConvertBatch(ctx context.Context, filter portsrepo.TransactionFilter, opts domain.BatchOptions) (*domain.BatchResult, error) {
	filter.OnlyPositiveValue = true
	if !opts.Force {
		filter.OnlyMissingUSD = true
	}

	chunkSize := opts.BatchSize
	if chunkSize <= 0 {
		chunkSize = s.batchSize
	}
	collectDetails := opts.CollectDetails || opts.DryRun

	total, err := s.txnRepo.CountTransactions(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to count transactions for conversion: %w", err)
	}
	s.logger.InfoContext(ctx, "starting batch conversion",
		slog.Int64("matching", total),
		slog.Int("chunkSize", chunkSize),
		slog.Bool("force", opts.Force),
		slog.Bool("dryRun", opts.DryRun))

	result := &domain.BatchResult{}
	offset := 0
	for {
		txns, err := s.txnRepo.ListTransactions(ctx, filter, chunkSize, offset)
		if err != nil {
			return result, fmt.Errorf("failed to list transactions at offset %d: %w", offset, err)
		}
		if len(txns) == 0 {
			break
		}

		chunkConverted := 0
		for i := range txns {
			if err := ctx.Err(); err != nil {
				return result, err
			}
			outcome := s.convertRecord(ctx, &txns[i], opts.Force, opts.DryRun)
			s.tally(result, outcome, collectDetails)
			if outcome.Status == domain.OutcomeConverted {
				chunkConverted++
			}
		}

		// Converted rows drop out of the missing-USD filter, shifting later
		// pages back by the number converted in this chunk.
		if !opts.Force && !opts.DryRun {
			offset += len(txns) - chunkConverted
		} else {
			offset += len(txns)
		}

		s.logger.InfoContext(ctx, "batch conversion progress",
			slog.Int("processed", result.Processed),
			slog.Int64("matching", total),
			slog.Int("converted", result.Converted))
	}

	s.logger.InfoContext(ctx, "batch conversion finished",
		slog.Int("processed", result.Processed),
		slog.Int("converted", result.Converted),
		slog.Int("skipped", result.Skipped),
		slog.Int("errors", result.Errors))
	return result, nil
}

// ConvertTransactions converts an explicit list of transaction IDs. Unknown
// IDs are reported as skipped details rather than failing the run.
func (s *BatchConversionService) ConvertTransactions(ctx context.Context, transactionIDs []string, force bool) (*domain.BatchResult, error) {
	result := &domain.BatchResult{}
	for _, id := range transactionIDs {
		if err := ctx.Err(); err != nil {
			return result, err
		}
		txn, err := s.txnRepo.FindTransactionByID(ctx, id)
		if err != nil {
			if errors.Is(err, apperrors.ErrNotFound) {
				s.tally(result, domain.RecordOutcome{
					TransactionID: id,
					Status:        domain.OutcomeSkipped,
					Reason:        "transaction not found",
				}, true)
				continue
			}
			return result, fmt.Errorf("failed to load transaction %s: %w", id, err)
		}
		outcome := s.convertRecord(ctx, txn, force, false)
		s.tally(result, outcome, true)
	}
	return result, nil
}

// ConvertOne converts a single transaction by ID.
func (s *BatchConversionService) ConvertOne(ctx context.Context, transactionID string, force bool) (*domain.RecordOutcome, error) {
	txn, err := s.txnRepo.FindTransactionByID(ctx, transactionID)
	if err != nil {
		return nil, fmt.Errorf("failed to load transaction %s: %w", transactionID, err)
	}
	outcome := s.convertRecord(ctx, txn, force, false)
	return &outcome, nil
}

// convertRecord classifies and converts one transaction. Persistence failures
// are logged and reported as errors; classification failures become skips.
func (s *BatchConversionService) convertRecord(ctx context.Context, txn *domain.AidTransaction, force, dryRun bool) domain.RecordOutcome {
	outcome := domain.RecordOutcome{TransactionID: txn.TransactionID}

	if strings.EqualFold(txn.Currency, "USD") {
		outcome.Status = domain.OutcomeSkipped
		outcome.Reason = domain.ReasonAlreadyUSD
		return outcome
	}
	if txn.ValueUSD != nil && !force {
		outcome.Status = domain.OutcomeSkipped
		outcome.Reason = domain.ReasonAlreadyConverted
		return outcome
	}

	if !s.registry.IsCurrencySupported(ctx, txn.Currency) {
		if !dryRun {
			if err := s.txnService.MarkUnconvertible(ctx, txn); err != nil {
				s.logger.ErrorContext(ctx, "failed to mark transaction unconvertible",
					slog.String("transactionID", txn.TransactionID),
					slog.String("error", err.Error()))
				outcome.Status = domain.OutcomeError
				outcome.Reason = err.Error()
				return outcome
			}
		}
		outcome.Status = domain.OutcomeSkipped
		outcome.Reason = domain.ReasonUnsupported
		return outcome
	}

	if dryRun {
		outcome.Status = domain.OutcomeWouldConvert
		return outcome
	}

	conv, err := s.converter.ConvertToUSD(ctx, txn.Value, txn.Currency, txn.ConversionDate())
	if err != nil || conv == nil {
		if err != nil {
			s.logger.WarnContext(ctx, "conversion failed",
				slog.String("transactionID", txn.TransactionID),
				slog.String("currency", txn.Currency),
				slog.String("error", err.Error()))
		}
		if markErr := s.txnService.MarkUnconvertible(ctx, txn); markErr != nil {
			s.logger.ErrorContext(ctx, "failed to mark transaction unconvertible",
				slog.String("transactionID", txn.TransactionID),
				slog.String("error", markErr.Error()))
			outcome.Status = domain.OutcomeError
			outcome.Reason = markErr.Error()
			return outcome
		}
		outcome.Status = domain.OutcomeSkipped
		outcome.Reason = domain.ReasonNoRate
		return outcome
	}

	if err := s.txnService.SetUSDValue(ctx, txn, conv.AmountUSD, conv.Rate); err != nil {
		s.logger.ErrorContext(ctx, "failed to persist USD value",
			slog.String("transactionID", txn.TransactionID),
			slog.String("error", err.Error()))
		outcome.Status = domain.OutcomeError
		outcome.Reason = err.Error()
		return outcome
	}

	outcome.Status = domain.OutcomeConverted
	return outcome
}

func (s *BatchConversionService) tally(result *domain.BatchResult, outcome domain.RecordOutcome, collectDetails bool) {
	result.Processed++
	switch outcome.Status {
	case domain.OutcomeConverted, domain.OutcomeWouldConvert:
		result.Converted++
	case domain.OutcomeSkipped:
		result.Skipped++
	case domain.OutcomeError:
		result.Errors++
	}
	if collectDetails {
		result.Details = append(result.Details, outcome)
	}
}
