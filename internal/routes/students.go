package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/smartattend/attendance-backend/internal/handlers"
)

func StudentRoutes(r *gin.Engine, h *handlers.Handler) {
	r.GET("/api/students", h.GetStudents)
	r.POST("/api/students", h.UpsertStudent)
	r.DELETE("/api/students", h.DeleteStudent)
}
