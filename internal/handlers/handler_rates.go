package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/openaims/fxconvert/internal/apperrors"
	portssvc "github.com/openaims/fxconvert/internal/core/ports/services"
	"github.com/openaims/fxconvert/internal/dto"
	"github.com/openaims/fxconvert/internal/middleware"
)

const rateHistoryDefaultWindow = 30 * 24 * time.Hour

// ratesHandler handles HTTP requests for cached exchange rates.
type ratesHandler struct {
	resolver portssvc.RateResolverSvcFacade
}

// newRatesHandler creates a new ratesHandler.
func newRatesHandler(resolver portssvc.RateResolverSvcFacade) *ratesHandler {
	return &ratesHandler{
		resolver: resolver,
	}
}

// registerRatesRoutes registers routes related to exchange rates.
func registerRatesRoutes(rg *gin.RouterGroup, resolver portssvc.RateResolverSvcFacade) {
	h := newRatesHandler(resolver)

	rates := rg.Group("/rates")
	{
		rates.GET("/history", h.getRateHistory)
	}
}

// getRateHistory godoc
// @Summary Get cached rate history
// @Description Returns cached rates-to-USD for a currency over a date window, defaulting to the last 30 days. Served entirely from the cache; never fetches.
// @Tags rates
// @Produce  json
// @Param   currency query string true "Currency code (3 letters)"
// @Param   startDate query string false "Window start (YYYY-MM-DD)"
// @Param   endDate query string false "Window end (YYYY-MM-DD)"
// @Success 200 {object} dto.RateHistoryResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 500 {object} map[string]string "Failed to retrieve rate history"
// @Router /rates/history [get]
func (h *ratesHandler) getRateHistory(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	currency := strings.ToUpper(c.Query("currency"))
	if currency == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "currency query parameter is required"})
		return
	}

	end := time.Now().UTC().Truncate(24 * time.Hour)
	start := end.Add(-rateHistoryDefaultWindow)
	var err error
	if raw := c.Query("startDate"); raw != "" {
		if start, err = time.Parse("2006-01-02", raw); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "startDate must be formatted YYYY-MM-DD"})
			return
		}
	}
	if raw := c.Query("endDate"); raw != "" {
		if end, err = time.Parse("2006-01-02", raw); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "endDate must be formatted YYYY-MM-DD"})
			return
		}
	}
	if end.Before(start) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "endDate must not precede startDate"})
		return
	}

	rates, err := h.resolver.GetRateHistory(c.Request.Context(), currency, start, end)
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		logger.Error("Failed to retrieve rate history",
			slog.String("currency", currency), slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve rate history"})
		return
	}

	c.JSON(http.StatusOK, dto.ToRateHistoryResponse(currency, rates))
}
