package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/arjun/examhall/internal/app/models"
	"github.com/arjun/examhall/internal/app/models/dto"
	"github.com/arjun/examhall/internal/app/services"
	"github.com/arjun/examhall/internal/middleware"
)

// ClassroomController handles classroom-related endpoints
type ClassroomController struct {
	classroomService *services.ClassroomService
}

// NewClassroomController creates a new ClassroomController
func NewClassroomController(classroomService *services.ClassroomService) *ClassroomController {
	return &ClassroomController{
		classroomService: classroomService,
	}
}

// CreateClassroom handles classroom creation
// @Summary Create a new classroom
// @Description Registers a classroom; room number and block together must be unique
// @Tags classrooms
// @Accept json
// @Produce json
// @Param request body dto.CreateClassroomRequest true "Classroom information"
// @Success 201 {object} dto.APIResponse{data=models.Classroom} "Classroom created successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 409 {object} dto.ErrorResponse "Classroom already exists"
// @Router /classrooms [post]
func (c *ClassroomController) CreateClassroom(ctx *gin.Context) {
	var req dto.CreateClassroomRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid classroom data")
		errorDetail = errorDetail.WithDetails(err.Error())
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	classroom := models.Classroom{
		RoomNumber: req.RoomNumber,
		Block:      req.Block,
		Capacity:   req.Capacity,
	}

	if err := c.classroomService.CreateClassroom(ctx, &classroom); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewAPIResponse(classroom))
}

// GetClassroomByID retrieves a classroom by ID
// @Summary Get classroom by ID
// @Tags classrooms
// @Produce json
// @Param id path int true "Classroom ID"
// @Success 200 {object} dto.APIResponse{data=models.Classroom} "Classroom retrieved successfully"
// @Failure 404 {object} dto.ErrorResponse "Classroom not found"
// @Router /classrooms/{id} [get]
func (c *ClassroomController) GetClassroomByID(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	classroom, err := c.classroomService.GetClassroomByID(ctx, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(classroom))
}

// GetAllClassrooms retrieves all classrooms
// @Summary List classrooms
// @Tags classrooms
// @Produce json
// @Success 200 {object} dto.APIResponse{data=[]models.Classroom} "Classrooms retrieved successfully"
// @Router /classrooms [get]
func (c *ClassroomController) GetAllClassrooms(ctx *gin.Context) {
	classrooms, err := c.classroomService.GetAllClassrooms(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(classrooms))
}

// UpdateClassroom updates an existing classroom
// @Summary Update a classroom
// @Tags classrooms
// @Accept json
// @Produce json
// @Param id path int true "Classroom ID"
// @Param request body dto.UpdateClassroomRequest true "Classroom information"
// @Success 200 {object} dto.APIResponse{data=models.Classroom} "Classroom updated successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 404 {object} dto.ErrorResponse "Classroom not found"
// @Failure 409 {object} dto.ErrorResponse "Classroom already exists"
// @Router /classrooms/{id} [put]
func (c *ClassroomController) UpdateClassroom(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	var req dto.UpdateClassroomRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid classroom data")
		errorDetail = errorDetail.WithDetails(err.Error())
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	classroom := models.Classroom{
		ID:         id,
		RoomNumber: req.RoomNumber,
		Block:      req.Block,
		Capacity:   req.Capacity,
	}

	if err := c.classroomService.UpdateClassroom(ctx, &classroom); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(classroom))
}

// DeleteClassroom deletes a classroom
// @Summary Delete a classroom
// @Tags classrooms
// @Produce json
// @Param id path int true "Classroom ID"
// @Success 200 {object} dto.APIResponse{data=dto.SuccessResponse} "Classroom deleted successfully"
// @Failure 404 {object} dto.ErrorResponse "Classroom not found"
// @Router /classrooms/{id} [delete]
func (c *ClassroomController) DeleteClassroom(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	if err := c.classroomService.DeleteClassroom(ctx, id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(dto.SuccessResponse{Message: "Classroom deleted successfully"}))
}
