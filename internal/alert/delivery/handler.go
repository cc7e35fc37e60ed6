package delivery

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"teamhub-backend/internal/alert/usecase"
	"teamhub-backend/internal/apperr"

	"github.com/gin-gonic/gin"
)

// AlertHandler handles alert-related HTTP requests
type AlertHandler struct {
	alertUsecase usecase.AlertUsecase
}

// NewAlertHandler creates a new AlertHandler
func NewAlertHandler(alertUsecase usecase.AlertUsecase) *AlertHandler {
	return &AlertHandler{
		alertUsecase: alertUsecase,
	}
}

// SnoozeRequest represents the request body for snoozing an alert
type SnoozeRequest struct {
	Until time.Time `json:"until" binding:"required"`
}

// GetAlerts lists alerts
// GET /api/alerts?state=open&limit=50&offset=0
func (h *AlertHandler) GetAlerts(c *gin.Context) {
	state := c.Query("state")
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "50"))
	offset, _ := strconv.Atoi(c.DefaultQuery("offset", "0"))

	var statePtr *string
	if state != "" {
		statePtr = &state
	}

	alerts, total, err := h.alertUsecase.List(statePtr, limit, offset)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"alerts": alerts,
		"total":  total,
	})
}

// GetAlertStats returns aggregate alert counts
// GET /api/alerts/stats
func (h *AlertHandler) GetAlertStats(c *gin.Context) {
	stats, err := h.alertUsecase.Stats()
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, stats)
}

// GetAlertByID returns a specific alert
// GET /api/alerts/:id
func (h *AlertHandler) GetAlertByID(c *gin.Context) {
	alert, err := h.alertUsecase.GetByID(c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, alert)
}

// AcknowledgeAlert marks an alert as seen
// POST /api/alerts/:id/acknowledge
func (h *AlertHandler) AcknowledgeAlert(c *gin.Context) {
	alert, err := h.alertUsecase.Acknowledge(c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, alert)
}

// SnoozeAlert defers an alert until a future time
// POST /api/alerts/:id/snooze
func (h *AlertHandler) SnoozeAlert(c *gin.Context) {
	var req SnoozeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	alert, err := h.alertUsecase.Snooze(c.Param("id"), req.Until)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, alert)
}

// ResolveAlert closes an alert
// POST /api/alerts/:id/resolve
func (h *AlertHandler) ResolveAlert(c *gin.Context) {
	alert, err := h.alertUsecase.Resolve(c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, alert)
}

// NotifyAlert pushes the alert's message to subscribers
// POST /api/alerts/:id/notify
func (h *AlertHandler) NotifyAlert(c *gin.Context) {
	if err := h.alertUsecase.Notify(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Notification queued"})
}

// respondError maps service error kinds to HTTP status codes
func respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, apperr.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, apperr.ErrValidation):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, apperr.ErrInvalidTransition):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	}
}
