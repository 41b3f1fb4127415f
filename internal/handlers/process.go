package handlers

import (
	"context"
	"time"

	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/gin-gonic/gin"

	"github.com/smartattend/attendance-backend/internal/models"
	"github.com/smartattend/attendance-backend/internal/recognize"
	"github.com/smartattend/attendance-backend/internal/utils"
)

type ProcessUploadRequest struct {
	PhotoName string `json:"photoName" binding:"required"`
}

// ProcessUpload runs the simulated recognition pass over an uploaded
// class photo: it matches against the current roster and writes one
// ledger record per recognized student, through the same write path
// manual entry uses. A real matching pipeline replaces recognize.Simulate
// and keeps the same record contract.
func (h *Handler) ProcessUpload(c *gin.Context) {
	var req ProcessUploadRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, 400, "Missing photoName")
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
	defer cancel()

	items, err := h.DB.ScanAll(ctx, h.DB.StudentsTable)
	if err != nil {
		utils.ErrorResponse(c, 500, err.Error())
		return
	}

	roster := make([]models.Student, 0, len(items))
	if err := attributevalue.UnmarshalListOfMaps(items, &roster); err != nil {
		utils.ErrorResponse(c, 500, err.Error())
		return
	}

	records := recognize.Simulate(roster, req.PhotoName, time.Now())
	for _, record := range records {
		if err := h.DB.Put(ctx, h.DB.AttendanceTable, record); err != nil {
			utils.ErrorResponse(c, 500, err.Error())
			return
		}
	}

	utils.SuccessResponse(c, 200, gin.H{
		"items":  records,
		"marked": len(records),
	})
}
