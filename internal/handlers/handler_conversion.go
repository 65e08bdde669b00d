package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	portssvc "github.com/openaims/fxconvert/internal/core/ports/services"
	"github.com/openaims/fxconvert/internal/dto"
	"github.com/openaims/fxconvert/internal/middleware"
)

// conversionHandler handles HTTP requests that drive USD conversion.
type conversionHandler struct {
	batchService portssvc.BatchConversionSvcFacade
	txnService   portssvc.TransactionSvcFacade
}

// newConversionHandler creates a new conversionHandler.
func newConversionHandler(batch portssvc.BatchConversionSvcFacade, txn portssvc.TransactionSvcFacade) *conversionHandler {
	return &conversionHandler{
		batchService: batch,
		txnService:   txn,
	}
}

// registerConversionRoutes registers routes related to USD conversion.
func registerConversionRoutes(rg *gin.RouterGroup, batch portssvc.BatchConversionSvcFacade, txn portssvc.TransactionSvcFacade) {
	h := newConversionHandler(batch, txn)

	conversions := rg.Group("/conversions")
	{
		conversions.POST("", h.convertTransactions)
		conversions.GET("/stats", h.getConversionStats)
	}
}

// convertTransactions godoc
// @Summary Convert transactions to USD
// @Description Converts the listed transactions to USD using historical rates. Per-record failures are reported in the details; they never abort the run.
// @Tags conversions
// @Accept  json
// @Produce  json
// @Param   request body dto.ConvertTransactionsRequest true "Transaction IDs to convert"
// @Success 200 {object} dto.ConversionRunResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 500 {object} map[string]string "Conversion run failed"
// @Router /conversions [post]
func (h *conversionHandler) convertTransactions(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.ConvertTransactionsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for ConvertTransactions", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	logger.Info("Received conversion request",
		slog.Int("transaction_count", len(req.TransactionIDs)),
		slog.Bool("force", req.Force))

	result, err := h.batchService.ConvertTransactions(c.Request.Context(), req.TransactionIDs, req.Force)
	if err != nil {
		logger.Error("Conversion run failed", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Conversion run failed"})
		return
	}

	logger.Info("Conversion run completed",
		slog.Int("processed", result.Processed),
		slog.Int("converted", result.Converted),
		slog.Int("skipped", result.Skipped),
		slog.Int("errors", result.Errors))
	c.JSON(http.StatusOK, dto.ToConversionRunResponse(result))
}

// getConversionStats godoc
// @Summary Get conversion statistics
// @Description Returns aggregate conversion state with a per-currency breakdown, optionally restricted to one activity.
// @Tags conversions
// @Produce  json
// @Param   activityID query string false "Restrict to a single activity"
// @Success 200 {object} dto.ConversionStatsResponse
// @Failure 500 {object} map[string]string "Failed to compute statistics"
// @Router /conversions/stats [get]
func (h *conversionHandler) getConversionStats(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	activityID := c.Query("activityID")

	stats, err := h.txnService.GetConversionStats(c.Request.Context(), activityID)
	if err != nil {
		logger.Error("Failed to compute conversion statistics", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to compute statistics"})
		return
	}

	c.JSON(http.StatusOK, dto.ToConversionStatsResponse(stats))
}
