package handlers

import (
	"net/http"
	"time"

	"nestulasli/config"
	"nestulasli/models"
	availabilityRepo "nestulasli/database/repository/availability"
	"nestulasli/services/planner"
	"nestulasli/utils"

	"github.com/gin-gonic/gin"
)

// AdminHandler exposes runtime configuration: the scenario table (whose
// constants are deliberately not compiled in) and the blocked calendar.
type AdminHandler struct {
	Planner      *planner.Service
	Availability availabilityRepo.Repository
}

// NewAdminHandler constructs an AdminHandler.
func NewAdminHandler(plannerSvc *planner.Service, availRepo availabilityRepo.Repository) *AdminHandler {
	return &AdminHandler{Planner: plannerSvc, Availability: availRepo}
}

// UpdateScenariosHandler replaces the scenario table.
func (h *AdminHandler) UpdateScenariosHandler(c *gin.Context) {
	var input struct {
		Scenarios models.ScenarioTable `json:"scenarios"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	if err := h.Planner.SetTable(input.Scenarios); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid scenario table", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"scenarios": h.Planner.Table()})
}

// AddBlockedPeriodHandler blocks a date range on a villa's calendar.
func (h *AdminHandler) AddBlockedPeriodHandler(c *gin.Context) {
	key := c.Param("key")
	if _, ok := config.VillaByKey(key); !ok {
		utils.JSONError(c, http.StatusNotFound, "unknown villa", key)
		return
	}

	var input struct {
		From   string `json:"from"`
		To     string `json:"to"`
		Reason string `json:"reason"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	from, err := time.Parse("2006-01-02", input.From)
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid from date", err.Error())
		return
	}
	to, err := time.Parse("2006-01-02", input.To)
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid to date", err.Error())
		return
	}
	if !to.After(from) {
		utils.JSONError(c, http.StatusBadRequest, "invalid range", "to must be after from")
		return
	}

	period := models.BlockedPeriod{VillaKey: key, From: from, To: to, Reason: input.Reason}
	if err := h.Availability.Add(c.Request.Context(), period); err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to add blocked period", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"blocked": period})
}

// ClearBlockedPeriodsHandler wipes a villa's blocked calendar.
func (h *AdminHandler) ClearBlockedPeriodsHandler(c *gin.Context) {
	key := c.Param("key")
	if _, ok := config.VillaByKey(key); !ok {
		utils.JSONError(c, http.StatusNotFound, "unknown villa", key)
		return
	}
	if err := h.Availability.DeleteByVilla(c.Request.Context(), key); err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to clear blocked periods", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"villaKey": key, "cleared": true})
}
