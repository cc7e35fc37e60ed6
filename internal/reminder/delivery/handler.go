package delivery

import (
	"errors"
	"net/http"
	"strconv"

	alertusecase "teamhub-backend/internal/alert/usecase"
	"teamhub-backend/internal/apperr"
	"teamhub-backend/internal/reminder/usecase"

	"github.com/gin-gonic/gin"
)

// ReminderHandler handles reminder-related HTTP requests
type ReminderHandler struct {
	reminderUsecase usecase.ReminderUsecase
	alertUsecase    alertusecase.AlertUsecase
}

// NewReminderHandler creates a new ReminderHandler
func NewReminderHandler(reminderUsecase usecase.ReminderUsecase, alertUsecase alertusecase.AlertUsecase) *ReminderHandler {
	return &ReminderHandler{
		reminderUsecase: reminderUsecase,
		alertUsecase:    alertUsecase,
	}
}

// CreateReminder creates a new scheduled reminder
// POST /api/reminders
func (h *ReminderHandler) CreateReminder(c *gin.Context) {
	var req usecase.CreateReminderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	item, err := h.reminderUsecase.Create(req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, item)
}

// GetReminders lists reminders
// GET /api/reminders?status=active&limit=50&offset=0
func (h *ReminderHandler) GetReminders(c *gin.Context) {
	status := c.Query("status")
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "50"))
	offset, _ := strconv.Atoi(c.DefaultQuery("offset", "0"))

	var statusPtr *string
	if status != "" {
		statusPtr = &status
	}

	items, total, err := h.reminderUsecase.List(statusPtr, limit, offset)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"reminders": items,
		"total":     total,
	})
}

// GetReminderByID returns a specific reminder
// GET /api/reminders/:id
func (h *ReminderHandler) GetReminderByID(c *gin.Context) {
	item, err := h.reminderUsecase.GetByID(c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, item)
}

// UpdateReminder updates an existing reminder
// PUT /api/reminders/:id
func (h *ReminderHandler) UpdateReminder(c *gin.Context) {
	var req usecase.UpdateReminderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	item, err := h.reminderUsecase.Update(c.Param("id"), req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, item)
}

// DeleteReminder deletes a reminder and its alerts
// DELETE /api/reminders/:id
func (h *ReminderHandler) DeleteReminder(c *gin.Context) {
	if err := h.reminderUsecase.Delete(c.Param("id")); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Reminder deleted"})
}

// CompleteReminder marks the current occurrence done
// POST /api/reminders/:id/complete
func (h *ReminderHandler) CompleteReminder(c *gin.Context) {
	item, err := h.reminderUsecase.Complete(c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, item)
}

// PauseReminder freezes a reminder's schedule
// POST /api/reminders/:id/pause
func (h *ReminderHandler) PauseReminder(c *gin.Context) {
	item, err := h.reminderUsecase.Pause(c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, item)
}

// ResumeReminder reactivates a paused reminder
// POST /api/reminders/:id/resume
func (h *ReminderHandler) ResumeReminder(c *gin.Context) {
	item, err := h.reminderUsecase.Resume(c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, item)
}

// GetReminderAlerts lists all alerts owned by a reminder
// GET /api/reminders/:id/alerts
func (h *ReminderHandler) GetReminderAlerts(c *gin.Context) {
	// Ensure the reminder exists so a bad id is a 404, not an empty list
	if _, err := h.reminderUsecase.GetByID(c.Param("id")); err != nil {
		respondError(c, err)
		return
	}

	alerts, err := h.alertUsecase.ListByItem(c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"alerts": alerts})
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
