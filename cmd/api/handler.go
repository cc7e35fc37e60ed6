package api

import (
	alertDelivery "teamhub-backend/internal/alert/delivery"
	alertUsecasePkg "teamhub-backend/internal/alert/usecase"
	reminderDelivery "teamhub-backend/internal/reminder/delivery"
	reminderUsecasePkg "teamhub-backend/internal/reminder/usecase"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	engine *gin.Engine
}

// NewHandler builds the gin engine and registers all routes
func NewHandler(reminderUc reminderUsecasePkg.ReminderUsecase, alertUc alertUsecasePkg.AlertUsecase) *Handler {
	engine := gin.Default()

	reminderHandler := reminderDelivery.NewReminderHandler(reminderUc, alertUc)
	alertHandler := alertDelivery.NewAlertHandler(alertUc)
	SetupRoutes(engine, reminderHandler, alertHandler)

	return &Handler{engine: engine}
}

// Start runs the HTTP server on the given address
func (h *Handler) Start(addr string) error {
	return h.engine.Run(addr)
}
