package handlers

import (
	"net/http"

	"nestulasli/models"
	"nestulasli/services/planner"
	"nestulasli/services/rates"
	"nestulasli/utils"

	"github.com/gin-gonic/gin"
)

// PlannerHandler serves the profit-planner computations.
type PlannerHandler struct {
	Planner *planner.Service
	Rates   *rates.Service
}

// NewPlannerHandler constructs a PlannerHandler.
func NewPlannerHandler(plannerSvc *planner.Service, ratesSvc *rates.Service) *PlannerHandler {
	return &PlannerHandler{Planner: plannerSvc, Rates: ratesSvc}
}

// plannerRequest carries the editable villa rows plus the display currency.
type plannerRequest struct {
	Villas   []models.PlannerVilla `json:"villas"`
	Currency string                `json:"currency"`
}

// GetScenariosHandler returns the current scenario table.
func (h *PlannerHandler) GetScenariosHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"scenarios": h.Planner.Table()})
}

// ProjectionHandler computes the planner table rows, their totals and the
// milestone projections for the posted villas. All amounts are EUR; the
// response repeats the headline numbers converted to the display currency.
func (h *PlannerHandler) ProjectionHandler(c *gin.Context) {
	var req plannerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}
	if len(req.Villas) == 0 {
		utils.JSONError(c, http.StatusBadRequest, "no villas provided", "at least one villa row is required")
		return
	}

	rows := h.Planner.Rows(clampVillas(req.Villas))
	totalEBITDA, totalNet := planner.Totals(rows)
	projection := h.Planner.Project(len(req.Villas))

	resp := gin.H{
		"rows":       rows,
		"totals":     gin.H{"ebitda": totalEBITDA, "net": totalNet},
		"projection": projection,
		"currency":   "EUR",
	}
	if req.Currency != "" && req.Currency != "EUR" {
		table := h.Rates.Table()
		display := gin.H{
			"currency": req.Currency,
			"rate":     table.Rate(req.Currency),
			"ebitda":   utils.RoundMoney(table.Convert(totalEBITDA, req.Currency)),
			"net":      utils.RoundMoney(table.Convert(totalNet, req.Currency)),
		}
		resp["display"] = display
	}
	c.JSON(http.StatusOK, resp)
}

// ApplyScenarioHandler overwrites the posted villas with a named preset.
func (h *PlannerHandler) ApplyScenarioHandler(c *gin.Context) {
	name := models.ScenarioName(c.Param("name"))

	var req plannerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	villas, err := h.Planner.ApplyScenario(name, clampVillas(req.Villas))
	if err != nil {
		utils.JSONError(c, http.StatusNotFound, "unknown scenario", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"villas": villas})
}

// clampVillas pulls ratio fields back into [0,1] and fees to non-negative,
// mirroring the form inputs. The engines assume clamped values.
func clampVillas(villas []models.PlannerVilla) []models.PlannerVilla {
	out := make([]models.PlannerVilla, len(villas))
	for i, v := range villas {
		if v.DailyFee < 0 {
			v.DailyFee = 0
		}
		v.Occupancy = clampRatio(v.Occupancy)
		v.CostPct = clampRatio(v.CostPct)
		out[i] = v
	}
	return out
}

func clampRatio(r float64) float64 {
	if r < 0 {
		return 0
	}
	if r > 1 {
		return 1
	}
	return r
}
