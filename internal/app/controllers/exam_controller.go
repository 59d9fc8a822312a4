package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/arjun/examhall/internal/app/models"
	"github.com/arjun/examhall/internal/app/models/dto"
	"github.com/arjun/examhall/internal/app/services"
	"github.com/arjun/examhall/internal/middleware"
)

// ExamController handles CIA exam-related endpoints
type ExamController struct {
	examService *services.ExamService
}

// NewExamController creates a new ExamController
func NewExamController(examService *services.ExamService) *ExamController {
	return &ExamController{
		examService: examService,
	}
}

// CreateExam handles exam creation
// @Summary Create a new exam
// @Description Schedules a CIA exam for one semester
// @Tags exams
// @Accept json
// @Produce json
// @Param request body dto.CreateExamRequest true "Exam information"
// @Success 201 {object} dto.APIResponse{data=models.Exam} "Exam created successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Router /exams [post]
func (c *ExamController) CreateExam(ctx *gin.Context) {
	var req dto.CreateExamRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid exam data")
		errorDetail = errorDetail.WithDetails(err.Error())
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	exam := models.Exam{
		ExamName: req.ExamName,
		Date:     req.Date,
		Semester: req.Semester,
	}

	if err := c.examService.CreateExam(ctx, &exam); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewAPIResponse(exam))
}

// GetExamByID retrieves an exam by ID
// @Summary Get exam by ID
// @Tags exams
// @Produce json
// @Param id path int true "Exam ID"
// @Success 200 {object} dto.APIResponse{data=models.Exam} "Exam retrieved successfully"
// @Failure 404 {object} dto.ErrorResponse "Exam not found"
// @Router /exams/{id} [get]
func (c *ExamController) GetExamByID(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	exam, err := c.examService.GetExamByID(ctx, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(exam))
}

// GetAllExams retrieves all exams
// @Summary List exams
// @Description Retrieves all scheduled exams, newest first
// @Tags exams
// @Produce json
// @Success 200 {object} dto.APIResponse{data=[]models.Exam} "Exams retrieved successfully"
// @Router /exams [get]
func (c *ExamController) GetAllExams(ctx *gin.Context) {
	exams, err := c.examService.GetAllExams(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(exams))
}

// UpdateExam updates an existing exam
// @Summary Update an exam
// @Tags exams
// @Accept json
// @Produce json
// @Param id path int true "Exam ID"
// @Param request body dto.UpdateExamRequest true "Exam information"
// @Success 200 {object} dto.APIResponse{data=models.Exam} "Exam updated successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 404 {object} dto.ErrorResponse "Exam not found"
// @Router /exams/{id} [put]
func (c *ExamController) UpdateExam(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	var req dto.UpdateExamRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid exam data")
		errorDetail = errorDetail.WithDetails(err.Error())
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	exam := models.Exam{
		ID:       id,
		ExamName: req.ExamName,
		Date:     req.Date,
		Semester: req.Semester,
	}

	if err := c.examService.UpdateExam(ctx, &exam); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(exam))
}

// DeleteExam deletes an exam
// @Summary Delete an exam
// @Description Deletes an exam; any allocation for it is removed as well
// @Tags exams
// @Produce json
// @Param id path int true "Exam ID"
// @Success 200 {object} dto.APIResponse{data=dto.SuccessResponse} "Exam deleted successfully"
// @Failure 404 {object} dto.ErrorResponse "Exam not found"
// @Router /exams/{id} [delete]
func (c *ExamController) DeleteExam(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	if err := c.examService.DeleteExam(ctx, id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(dto.SuccessResponse{Message: "Exam deleted successfully"}))
}
