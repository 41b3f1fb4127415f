package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/smartattend/attendance-backend/internal/handlers"
)

func UploadRoutes(r *gin.Engine, h *handlers.Handler) {
	r.GET("/api/upload-url", h.GetUploadURL)
}
