package handlers

import (
	"net/http"

	"nestulasli/config"
	"nestulasli/models"
	"nestulasli/services/quote"
	"nestulasli/services/rates"
	"nestulasli/utils"

	"github.com/gin-gonic/gin"
)

// QuoteHandler computes one-shot price estimates.
type QuoteHandler struct {
	Rates *rates.Service
}

// NewQuoteHandler constructs a QuoteHandler.
func NewQuoteHandler(ratesSvc *rates.Service) *QuoteHandler {
	return &QuoteHandler{Rates: ratesSvc}
}

// ComputeQuoteHandler binds a StayRequest and returns the full quote. The
// optional "display" query parameter adds a converted total for the UI;
// the breakdown itself stays in EUR.
func (h *QuoteHandler) ComputeQuoteHandler(c *gin.Context) {
	var req models.StayRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	q, _, ok := computeQuote(c, req)
	if !ok {
		return
	}

	resp := gin.H{"quote": q}
	if currency := c.Query("display"); currency != "" && currency != "EUR" {
		table := h.Rates.Table()
		resp["display"] = gin.H{
			"currency": currency,
			"rate":     table.Rate(currency),
			"total":    utils.RoundMoney(table.Convert(q.Breakdown.Total, currency)),
		}
	}
	c.JSON(http.StatusOK, resp)
}

// computeQuote is the shared bind-validate-compute step used by the quote
// and enquiry handlers. On failure it writes the error response itself.
func computeQuote(c *gin.Context, req models.StayRequest) (models.Quote, quote.Input, bool) {
	villa, ok := config.VillaByKey(req.VillaKey)
	if !ok {
		utils.JSONError(c, http.StatusNotFound, "unknown villa", req.VillaKey)
		return models.Quote{}, quote.Input{}, false
	}

	in, err := quote.InputFromRequest(req, villa)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return models.Quote{}, quote.Input{}, false
	}

	return quote.Compute(in, config.Pricing), in, true
}
