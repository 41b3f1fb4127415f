package handlers

import (
	"context"

	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/smartattend/attendance-backend/internal/models"
	"github.com/smartattend/attendance-backend/internal/utils"
)

type RecordAttendanceRequest struct {
	Name       string   `json:"Name" binding:"required"`
	Date       string   `json:"Date" binding:"required"`
	Time       string   `json:"Time" binding:"required"`
	Similarity *float64 `json:"Similarity"`
	PhotoName  string   `json:"PhotoName"`
}

type DeleteAttendanceRequest struct {
	FaceID string `json:"face_id" binding:"required"`
}

// GetAttendance returns every ledger record from a full-table scan.
func (h *Handler) GetAttendance(c *gin.Context) {
	ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
	defer cancel()

	items, err := h.DB.ScanAll(ctx, h.DB.AttendanceTable)
	if err != nil {
		utils.ErrorResponse(c, 500, err.Error())
		return
	}

	records := make([]models.AttendanceRecord, 0, len(items))
	if err := attributevalue.UnmarshalListOfMaps(items, &records); err != nil {
		utils.ErrorResponse(c, 500, err.Error())
		return
	}

	utils.SuccessResponse(c, 200, gin.H{"items": records})
}

// RecordAttendance writes one presence event with a freshly generated
// face_id and returns the stored record. Records entered without a photo
// or score get the manual-entry defaults. The same name may be recorded
// any number of times per date; nothing is deduplicated.
func (h *Handler) RecordAttendance(c *gin.Context) {
	var req RecordAttendanceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, 400, "Name, Date and Time are required")
		return
	}

	record := models.AttendanceRecord{
		FaceID:     uuid.NewString(),
		Name:       req.Name,
		Date:       req.Date,
		Time:       req.Time,
		Similarity: models.ManualEntrySimilarity,
		PhotoName:  req.PhotoName,
	}
	if req.Similarity != nil {
		record.Similarity = *req.Similarity
	}
	if record.PhotoName == "" {
		record.PhotoName = models.ManualEntryPhoto
	}

	ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
	defer cancel()

	if err := h.DB.Put(ctx, h.DB.AttendanceTable, record); err != nil {
		utils.ErrorResponse(c, 500, err.Error())
		return
	}

	utils.SuccessResponse(c, 201, record)
}

// DeleteAttendance removes one ledger record by face_id, the only key a
// record can be deleted under. Unknown ids succeed silently.
func (h *Handler) DeleteAttendance(c *gin.Context) {
	var req DeleteAttendanceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, 400, "Missing face_id")
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
	defer cancel()

	if err := h.DB.Delete(ctx, h.DB.AttendanceTable, "face_id", req.FaceID); err != nil {
		utils.ErrorResponse(c, 500, err.Error())
		return
	}

	utils.SuccessResponse(c, 200, gin.H{"face_id": req.FaceID})
}
