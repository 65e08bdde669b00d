package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	portssvc "github.com/openaims/fxconvert/internal/core/ports/services"
	"github.com/openaims/fxconvert/internal/dto"
	"github.com/openaims/fxconvert/internal/middleware"
)

// currencyHandler handles HTTP requests related to the supported-currency registry.
type currencyHandler struct {
	registry portssvc.CurrencyRegistrySvcFacade
}

// newCurrencyHandler creates a new currencyHandler.
func newCurrencyHandler(registry portssvc.CurrencyRegistrySvcFacade) *currencyHandler {
	return &currencyHandler{
		registry: registry,
	}
}

// registerCurrencyRoutes registers routes related to the currency registry.
func registerCurrencyRoutes(rg *gin.RouterGroup, registry portssvc.CurrencyRegistrySvcFacade) {
	h := newCurrencyHandler(registry)

	currencies := rg.Group("/currencies")
	{
		currencies.GET("", h.listCurrencies)
		currencies.GET("/supported", h.getSupportedCurrencies)
		currencies.POST("/refresh", h.refreshCurrencies)
	}
}

// getSupportedCurrencies godoc
// @Summary List supported currency codes
// @Description Returns the currency codes convertible to USD. Pass refresh=true to reconcile against the upstream API first.
// @Tags currencies
// @Produce  json
// @Param   refresh query bool false "Force a refresh from the upstream API"
// @Success 200 {object} dto.SupportedCurrenciesResponse
// @Router /currencies/supported [get]
func (h *currencyHandler) getSupportedCurrencies(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	refresh := c.Query("refresh") == "true"

	codes := h.registry.GetSupportedCurrencies(c.Request.Context(), refresh)

	resp := dto.SupportedCurrenciesResponse{
		Currencies: codes,
		Count:      len(codes),
	}
	// Last refresh time comes from the registry entries; missing it is not
	// worth failing the request over.
	if entries, err := h.registry.ListSupportedCurrencies(c.Request.Context()); err == nil {
		for _, entry := range entries {
			if resp.LastRefreshed == nil || entry.LastChecked.After(*resp.LastRefreshed) {
				t := entry.LastChecked
				resp.LastRefreshed = &t
			}
		}
	} else {
		logger.Warn("Failed to read registry entries for last refresh time", slog.String("error", err.Error()))
	}

	c.JSON(http.StatusOK, resp)
}

// refreshCurrencies godoc
// @Summary Refresh the supported-currency registry
// @Description Reconciles the registry against the upstream rate API and returns the refreshed code list.
// @Tags currencies
// @Produce  json
// @Success 200 {object} dto.RefreshCurrenciesResponse
// @Failure 502 {object} map[string]string "Upstream API unavailable"
// @Router /currencies/refresh [post]
func (h *currencyHandler) refreshCurrencies(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	codes, err := h.registry.RefreshSupportedCurrencies(c.Request.Context())
	if err != nil {
		logger.Error("Failed to refresh supported currencies", slog.String("error", err.Error()))
		c.JSON(http.StatusBadGateway, gin.H{"error": "Failed to refresh supported currencies from upstream API"})
		return
	}

	logger.Info("Supported currencies refreshed", slog.Int("count", len(codes)))
	c.JSON(http.StatusOK, dto.RefreshCurrenciesResponse{
		Currencies: codes,
		Count:      len(codes),
	})
}

// listCurrencies godoc
// @Summary List registry entries
// @Description Returns full registry entries for currencies currently marked supported.
// @Tags currencies
// @Produce  json
// @Success 200 {array} dto.SupportedCurrencyResponse
// @Failure 500 {object} map[string]string "Failed to list currencies"
// @Router /currencies [get]
func (h *currencyHandler) listCurrencies(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	entries, err := h.registry.ListSupportedCurrencies(c.Request.Context())
	if err != nil {
		logger.Error("Failed to list supported currencies", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list currencies"})
		return
	}

	c.JSON(http.StatusOK, dto.ToListSupportedCurrencyResponse(entries))
}
