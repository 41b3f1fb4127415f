package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/smartattend/attendance-backend/internal/handlers"
)

func DashboardRoutes(r *gin.Engine, h *handlers.Handler) {
	r.GET("/api/dashboard", h.GetDashboard)
}
