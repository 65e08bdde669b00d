package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/openaims/fxconvert/internal/apperrors"
	"github.com/openaims/fxconvert/internal/core/domain"
	portsrepo "github.com/openaims/fxconvert/internal/core/ports/repositories"
	portssvc "github.com/openaims/fxconvert/internal/core/ports/services"
	"github.com/openaims/fxconvert/internal/dto"
	"github.com/openaims/fxconvert/internal/middleware"
)

// transactionHandler handles HTTP requests for aid transactions.
type transactionHandler struct {
	txnService portssvc.TransactionSvcFacade
}

// newTransactionHandler creates a new transactionHandler.
func newTransactionHandler(txn portssvc.TransactionSvcFacade) *transactionHandler {
	return &transactionHandler{
		txnService: txn,
	}
}

// registerTransactionRoutes registers routes related to aid transactions.
func registerTransactionRoutes(rg *gin.RouterGroup, txn portssvc.TransactionSvcFacade) {
	h := newTransactionHandler(txn)

	transactions := rg.Group("/transactions")
	{
		transactions.GET("", h.listTransactions)
		transactions.GET("/:id", h.getTransactionByID)
	}
}

// listTransactions godoc
// @Summary List aid transactions
// @Description Lists transactions newest first, filterable by activity, currency and conversion status.
// @Tags transactions
// @Produce  json
// @Param   activityID query string false "Filter by activity"
// @Param   currency query string false "Filter by currency code"
// @Param   conversionStatus query string false "Filter by conversion status" Enums(pending, converted, unconvertible, native_usd)
// @Param   limit query int false "Page size (default 50, max 500)"
// @Param   offset query int false "Page offset"
// @Success 200 {object} dto.ListTransactionsResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 500 {object} map[string]string "Failed to list transactions"
// @Router /transactions [get]
func (h *transactionHandler) listTransactions(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var q dto.ListTransactionsQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		logger.Warn("Failed to bind query for ListTransactions", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters: " + err.Error()})
		return
	}

	filter := portsrepo.TransactionFilter{
		ActivityID:       q.ActivityID,
		Currency:         strings.ToUpper(q.Currency),
		ConversionStatus: domain.ConversionStatus(q.ConversionStatus),
	}

	txns, err := h.txnService.ListTransactions(c.Request.Context(), filter, q.Limit, q.Offset)
	if err != nil {
		logger.Error("Failed to list transactions", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list transactions"})
		return
	}

	c.JSON(http.StatusOK, dto.ToListTransactionsResponse(txns, q.Limit, q.Offset))
}

// getTransactionByID godoc
// @Summary Get a transaction by ID
// @Description Retrieves a single aid transaction, including its conversion state.
// @Tags transactions
// @Produce  json
// @Param   id path string true "Transaction ID"
// @Success 200 {object} dto.TransactionResponse
// @Failure 404 {object} map[string]string "Transaction not found"
// @Failure 500 {object} map[string]string "Failed to retrieve transaction"
// @Router /transactions/{id} [get]
func (h *transactionHandler) getTransactionByID(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	transactionID := c.Param("id")

	txn, err := h.txnService.GetTransactionByID(c.Request.Context(), transactionID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Transaction not found"})
			return
		}
		logger.Error("Failed to retrieve transaction",
			slog.String("transaction_id", transactionID), slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve transaction"})
		return
	}

	c.JSON(http.StatusOK, dto.ToTransactionResponse(txn))
}
