package handlers

import (
	"context"
	"time"

	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/gin-gonic/gin"

	"github.com/smartattend/attendance-backend/internal/models"
	"github.com/smartattend/attendance-backend/internal/utils"
)

// GetDashboard composes the overview counts from fresh scans of both
// collections. It holds no state of its own, so calling it repeatedly or
// concurrently is safe; two calls with no intervening writes return the
// same counts. The date defaults to the server's calendar day and can be
// overridden with ?date=YYYY-MM-DD.
func (h *Handler) GetDashboard(c *gin.Context) {
	today := c.Query("date")
	if today == "" {
		today = time.Now().Format("2006-01-02")
	}

	ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
	defer cancel()

	studentItems, err := h.DB.ScanAll(ctx, h.DB.StudentsTable)
	if err != nil {
		utils.ErrorResponse(c, 500, err.Error())
		return
	}

	attendanceItems, err := h.DB.ScanAll(ctx, h.DB.AttendanceTable)
	if err != nil {
		utils.ErrorResponse(c, 500, err.Error())
		return
	}

	records := make([]models.AttendanceRecord, 0, len(attendanceItems))
	if err := attributevalue.UnmarshalListOfMaps(attendanceItems, &records); err != nil {
		utils.ErrorResponse(c, 500, err.Error())
		return
	}

	stats := models.ComputeStats(len(studentItems), models.PresentOn(records, today))
	utils.SuccessResponse(c, 200, stats)
}
