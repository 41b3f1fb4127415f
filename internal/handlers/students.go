package handlers

import (
	"context"

	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/gin-gonic/gin"

	"github.com/smartattend/attendance-backend/internal/models"
	"github.com/smartattend/attendance-backend/internal/utils"
)

type UpsertStudentRequest struct {
	StudentID  string `json:"student_id" binding:"required"`
	Name       string `json:"name" binding:"required"`
	Email      string `json:"email" binding:"required"`
	Department string `json:"department" binding:"required"`
	PhotoName  string `json:"photo_name"`
}

type DeleteStudentRequest struct {
	StudentID string `json:"student_id" binding:"required"`
}

// GetStudents returns the whole roster from a full-table scan.
func (h *Handler) GetStudents(c *gin.Context) {
	ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
	defer cancel()

	items, err := h.DB.ScanAll(ctx, h.DB.StudentsTable)
	if err != nil {
		utils.ErrorResponse(c, 500, err.Error())
		return
	}

	students := make([]models.Student, 0, len(items))
	if err := attributevalue.UnmarshalListOfMaps(items, &students); err != nil {
		utils.ErrorResponse(c, 500, err.Error())
		return
	}

	utils.SuccessResponse(c, 200, gin.H{"items": students})
}

// UpsertStudent adds or replaces a roster entry. The record is written
// wholesale; partial updates are not supported, callers resend the full
// record. Duplicate emails are allowed, only student_id is unique.
func (h *Handler) UpsertStudent(c *gin.Context) {
	var req UpsertStudentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, 400, "student_id, name, email and department are required")
		return
	}

	student := models.Student{
		StudentID:  req.StudentID,
		Name:       req.Name,
		Email:      req.Email,
		Department: req.Department,
		PhotoName:  req.PhotoName,
	}

	ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
	defer cancel()

	if err := h.DB.Put(ctx, h.DB.StudentsTable, student); err != nil {
		utils.ErrorResponse(c, 500, err.Error())
		return
	}

	utils.SuccessResponse(c, 200, student)
}

// DeleteStudent removes a roster entry by student_id. Deleting an unknown
// id succeeds, a delete is an assertion of absence. Attendance events
// referencing the student are left untouched.
func (h *Handler) DeleteStudent(c *gin.Context) {
	var req DeleteStudentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, 400, "Missing student_id")
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
	defer cancel()

	if err := h.DB.Delete(ctx, h.DB.StudentsTable, "student_id", req.StudentID); err != nil {
		utils.ErrorResponse(c, 500, err.Error())
		return
	}

	utils.SuccessResponse(c, 200, gin.H{"student_id": req.StudentID})
}
