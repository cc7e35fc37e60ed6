package api

import (
	"net/http"

	alertDelivery "teamhub-backend/internal/alert/delivery"
	reminderDelivery "teamhub-backend/internal/reminder/delivery"

	"github.com/gin-gonic/gin"
)

func SetupRoutes(r *gin.Engine, reminderHandler *reminderDelivery.ReminderHandler, alertHandler *alertDelivery.AlertHandler) {
	api := r.Group("/api")
	{
		// Health check
		api.GET("/health", func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{"status": "ok"})
		})

		// Reminder routes
		reminders := api.Group("/reminders")
		{
			reminders.POST("", reminderHandler.CreateReminder)
			reminders.GET("", reminderHandler.GetReminders)
			reminders.GET("/:id", reminderHandler.GetReminderByID)
			reminders.PUT("/:id", reminderHandler.UpdateReminder)
			reminders.DELETE("/:id", reminderHandler.DeleteReminder)
			reminders.POST("/:id/complete", reminderHandler.CompleteReminder)
			reminders.POST("/:id/pause", reminderHandler.PauseReminder)
			reminders.POST("/:id/resume", reminderHandler.ResumeReminder)
			reminders.GET("/:id/alerts", reminderHandler.GetReminderAlerts)
		}

		// Alert routes
		alerts := api.Group("/alerts")
		{
			alerts.GET("", alertHandler.GetAlerts)
			alerts.GET("/stats", alertHandler.GetAlertStats)
			alerts.GET("/:id", alertHandler.GetAlertByID)
			alerts.POST("/:id/acknowledge", alertHandler.AcknowledgeAlert)
			alerts.POST("/:id/snooze", alertHandler.SnoozeAlert)
			alerts.POST("/:id/resolve", alertHandler.ResolveAlert)
			alerts.POST("/:id/notify", alertHandler.NotifyAlert)
		}
	}
}
