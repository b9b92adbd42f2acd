package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"nestulasli/config"
	"nestulasli/models"
	"nestulasli/services/availability"
	"nestulasli/services/quote"
	"nestulasli/utils"
)

// EnquiryHandler manages the Redis-backed enquiry sessions and the final
// hand-off to WhatsApp or email.
type EnquiryHandler struct {
	Cache        *redis.Client
	Availability availability.Service
	Logger       *zap.Logger
}

// NewEnquiryHandler constructs an EnquiryHandler.
func NewEnquiryHandler(cache *redis.Client, availSvc availability.Service, logger *zap.Logger) *EnquiryHandler {
	return &EnquiryHandler{Cache: cache, Availability: availSvc, Logger: logger}
}

// InitiateSession creates a new enquiry session from a StayRequest.
func (h *EnquiryHandler) InitiateSession(c *gin.Context) {
	var req models.StayRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	q, in, ok := computeQuote(c, req)
	if !ok {
		return
	}

	session := models.EnquirySession{
		ID:        uuid.New().String(),
		Stay:      req.Clamped(),
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}
	if !h.storeSession(c, session) {
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"sessionID":      session.ID,
		"quote":          q,
		"rangeAvailable": h.rangeAvailable(c, in),
	})
}

// UpdateSession replaces the stay details of an existing session and
// recomputes the quote.
func (h *EnquiryHandler) UpdateSession(c *gin.Context) {
	session, ok := h.loadSession(c)
	if !ok {
		return
	}

	var req models.StayRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	q, in, ok := computeQuote(c, req)
	if !ok {
		return
	}

	session.Stay = req.Clamped()
	session.UpdatedAt = time.Now()
	if !h.storeSession(c, session) {
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"sessionID":      session.ID,
		"quote":          q,
		"rangeAvailable": h.rangeAvailable(c, in),
	})
}

// GetSession returns a session with its current quote.
func (h *EnquiryHandler) GetSession(c *gin.Context) {
	session, ok := h.loadSession(c)
	if !ok {
		return
	}
	q, _, ok := computeQuote(c, session.Stay)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, gin.H{"session": session, "quote": q})
}

// CancelSession drops a session.
func (h *EnquiryHandler) CancelSession(c *gin.Context) {
	sessionID := c.Param("sessionID")
	if err := h.Cache.Del(c.Request.Context(), utils.SessionCachePrefix+sessionID).Err(); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to cancel session", "details": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"sessionID": sessionID, "cancelled": true})
}

// Handoff renders the enquiry message and the outbound links. A stay that
// fails validation is refused with its flags so the UI can explain why.
func (h *EnquiryHandler) Handoff(c *gin.Context) {
	session, ok := h.loadSession(c)
	if !ok {
		return
	}

	q, in, ok := computeQuote(c, session.Stay)
	if !ok {
		return
	}
	if !q.CanSubmit {
		c.JSON(http.StatusUnprocessableEntity, gin.H{
			"error": "stay is not eligible for submission",
			"flags": q.Flags,
		})
		return
	}

	message := quote.EnquiryMessage(in, q, config.Pricing)
	subject := fmt.Sprintf("Booking Enquiry – %s", q.VillaName)

	h.Logger.Info("enquiry handoff",
		zap.String("sessionID", session.ID),
		zap.String("villa", q.VillaKey),
		zap.Int("nights", q.Nights),
	)

	c.JSON(http.StatusOK, gin.H{
		"sessionID":      session.ID,
		"message":        message,
		"whatsappLink":   quote.WhatsAppLink(config.AppConfig.EnquiryWhatsAppE164, message),
		"mailtoLink":     quote.MailtoLink(config.AppConfig.EnquiryEmail, subject, message),
		"rangeAvailable": h.rangeAvailable(c, in),
	})
}

func (h *EnquiryHandler) loadSession(c *gin.Context) (models.EnquirySession, bool) {
	sessionID := c.Param("sessionID")
	data, err := h.Cache.Get(c.Request.Context(), utils.SessionCachePrefix+sessionID).Result()
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "enquiry session not found or expired"})
		return models.EnquirySession{}, false
	}

	var session models.EnquirySession
	if err := json.Unmarshal([]byte(data), &session); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to parse enquiry session", "details": err.Error()})
		return models.EnquirySession{}, false
	}
	return session, true
}

func (h *EnquiryHandler) storeSession(c *gin.Context, session models.EnquirySession) bool {
	data, err := json.Marshal(session)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to marshal enquiry session", "details": err.Error()})
		return false
	}
	key := utils.SessionCachePrefix + session.ID
	if err := h.Cache.Set(c.Request.Context(), key, data, utils.SessionCacheTTL).Err(); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to cache enquiry session", "details": err.Error()})
		return false
	}
	return true
}

// rangeAvailable is advisory: the calendar collaborator owns date blocking,
// so a blocked range does not gate the quote, only informs the UI.
func (h *EnquiryHandler) rangeAvailable(c *gin.Context, in quote.Input) *bool {
	if in.CheckIn.IsZero() || in.CheckOut.IsZero() {
		return nil
	}
	free, err := h.Availability.IsRangeFree(c.Request.Context(), in.Villa.Key, in.CheckIn, in.CheckOut)
	if err != nil {
		h.Logger.Warn("availability check failed", zap.Error(err))
		return nil
	}
	return &free
}
