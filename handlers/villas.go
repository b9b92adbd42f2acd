package handlers

import (
	"net/http"

	"nestulasli/config"
	"nestulasli/services/availability"
	"nestulasli/utils"

	"github.com/gin-gonic/gin"
)

// VillaHandler serves the static villa configuration and each villa's
// blocked calendar.
type VillaHandler struct {
	Availability availability.Service
}

// NewVillaHandler constructs a VillaHandler.
func NewVillaHandler(availSvc availability.Service) *VillaHandler {
	return &VillaHandler{Availability: availSvc}
}

// GetVillasHandler returns the configured villas.
func (h *VillaHandler) GetVillasHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"villas": config.Villas})
}

// GetBlockedPeriodsHandler returns the blocked date ranges for one villa.
func (h *VillaHandler) GetBlockedPeriodsHandler(c *gin.Context) {
	key := c.Param("key")
	if _, ok := config.VillaByKey(key); !ok {
		utils.JSONError(c, http.StatusNotFound, "unknown villa", key)
		return
	}

	blocked, err := h.Availability.BlockedPeriods(c.Request.Context(), key)
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to load blocked periods", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"villaKey": key, "blocked": blocked})
}
