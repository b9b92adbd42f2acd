package handlers

import (
	"net/http"

	"nestulasli/services/rates"
	"nestulasli/utils"

	"github.com/gin-gonic/gin"
)

// RatesHandler exposes the current display-rate table and the monitor
// snapshot for the health endpoint.
type RatesHandler struct {
	Rates *rates.Service
}

// NewRatesHandler constructs a RatesHandler.
func NewRatesHandler(ratesSvc *rates.Service) *RatesHandler {
	return &RatesHandler{Rates: ratesSvc}
}

// GetRatesHandler returns the current rate table. FetchedAt is zero while
// the defaults are still in effect.
func (h *RatesHandler) GetRatesHandler(c *gin.Context) {
	c.JSON(http.StatusOK, h.Rates.Table())
}

// HealthHandler reports liveness plus the latest dependency snapshot.
func HealthHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":       "ok",
		"message":      "Hi, I'm Nest Ulasli",
		"dependencies": utils.GetHealthStatus(),
	})
}
