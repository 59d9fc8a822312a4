package dto

import "time"

// CreateExamRequest represents exam creation data
type CreateExamRequest struct {
	ExamName string    `json:"examName" binding:"required" example:"CIA-2 October 2025"`
	Date     time.Time `json:"date" binding:"required" example:"2025-10-14T09:30:00Z"`
	Semester int       `json:"semester" binding:"required,gte=1,lte=8" example:"5"`
}

// UpdateExamRequest represents exam update data (full replacement)
type UpdateExamRequest struct {
	ExamName string    `json:"examName" binding:"required"`
	Date     time.Time `json:"date" binding:"required"`
	Semester int       `json:"semester" binding:"required,gte=1,lte=8"`
}
