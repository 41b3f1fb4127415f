package handlers

import (
	"context"

	"github.com/gin-gonic/gin"

	"github.com/smartattend/attendance-backend/internal/utils"
)

// GetUploadURL mints a one-hour credential for a single direct PUT of the
// named photo into the uploads/ namespace, with the content type pinned.
// The service never sees the photo bytes; the upload happens between the
// client and the bucket.
func (h *Handler) GetUploadURL(c *gin.Context) {
	fileName := c.Query("fileName")
	fileType := c.Query("fileType")

	if fileName == "" || fileType == "" {
		utils.ErrorResponse(c, 400, "Missing fileName or fileType")
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
	defer cancel()

	url, err := h.Store.PresignUpload(ctx, fileName, fileType)
	if err != nil {
		utils.ErrorResponse(c, 500, err.Error())
		return
	}

	utils.SuccessResponse(c, 200, gin.H{"url": url})
}
