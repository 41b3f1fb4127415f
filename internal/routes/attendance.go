package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/smartattend/attendance-backend/internal/handlers"
)

func AttendanceRoutes(r *gin.Engine, h *handlers.Handler) {
	r.GET("/api/attendance", h.GetAttendance)
	r.POST("/api/attendance", h.RecordAttendance)
	r.DELETE("/api/attendance", h.DeleteAttendance)
	r.POST("/api/attendance/process", h.ProcessUpload)
}
