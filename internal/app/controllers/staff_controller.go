package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/arjun/examhall/internal/app/models"
	"github.com/arjun/examhall/internal/app/models/dto"
	"github.com/arjun/examhall/internal/app/services"
	"github.com/arjun/examhall/internal/middleware"
)

// StaffController handles staff-related endpoints
type StaffController struct {
	staffService *services.StaffService
}

// NewStaffController creates a new StaffController
func NewStaffController(staffService *services.StaffService) *StaffController {
	return &StaffController{
		staffService: staffService,
	}
}

// CreateStaff handles staff creation
// @Summary Create a new staff member
// @Description Registers a staff member; availability defaults to true when omitted
// @Tags staff
// @Accept json
// @Produce json
// @Param request body dto.CreateStaffRequest true "Staff information"
// @Success 201 {object} dto.APIResponse{data=models.Staff} "Staff member created successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /staff [post]
func (c *StaffController) CreateStaff(ctx *gin.Context) {
	var req dto.CreateStaffRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid staff data")
		errorDetail = errorDetail.WithDetails(err.Error())
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	isAvailable := true
	if req.IsAvailable != nil {
		isAvailable = *req.IsAvailable
	}

	staff := models.Staff{
		Name:        req.Name,
		Department:  req.Department,
		Designation: req.Designation,
		IsAvailable: isAvailable,
	}

	if err := c.staffService.CreateStaff(ctx, &staff); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewAPIResponse(staff))
}

// GetStaffByID retrieves a staff member by ID
// @Summary Get staff member by ID
// @Tags staff
// @Produce json
// @Param id path int true "Staff ID"
// @Success 200 {object} dto.APIResponse{data=models.Staff} "Staff member retrieved successfully"
// @Failure 404 {object} dto.ErrorResponse "Staff member not found"
// @Router /staff/{id} [get]
func (c *StaffController) GetStaffByID(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	staff, err := c.staffService.GetStaffByID(ctx, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(staff))
}

// GetAllStaff retrieves all staff members
// @Summary List staff
// @Description Retrieves all staff members; pass available=true to list only those eligible for duty
// @Tags staff
// @Produce json
// @Param available query bool false "Only staff available for invigilation duty"
// @Success 200 {object} dto.APIResponse{data=[]models.Staff} "Staff retrieved successfully"
// @Router /staff [get]
func (c *StaffController) GetAllStaff(ctx *gin.Context) {
	availableOnly := ctx.Query("available") == "true"

	staff, err := c.staffService.GetAllStaff(ctx, availableOnly)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(staff))
}

// UpdateStaff updates an existing staff member
// @Summary Update a staff member
// @Description Updates staff details including the duty availability flag
// @Tags staff
// @Accept json
// @Produce json
// @Param id path int true "Staff ID"
// @Param request body dto.UpdateStaffRequest true "Staff information"
// @Success 200 {object} dto.APIResponse{data=models.Staff} "Staff member updated successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 404 {object} dto.ErrorResponse "Staff member not found"
// @Router /staff/{id} [put]
func (c *StaffController) UpdateStaff(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	var req dto.UpdateStaffRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid staff data")
		errorDetail = errorDetail.WithDetails(err.Error())
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	staff := models.Staff{
		ID:          id,
		Name:        req.Name,
		Department:  req.Department,
		Designation: req.Designation,
		IsAvailable: *req.IsAvailable,
	}

	if err := c.staffService.UpdateStaff(ctx, &staff); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(staff))
}

// DeleteStaff deletes a staff member
// @Summary Delete a staff member
// @Tags staff
// @Produce json
// @Param id path int true "Staff ID"
// @Success 200 {object} dto.APIResponse{data=dto.SuccessResponse} "Staff member deleted successfully"
// @Failure 404 {object} dto.ErrorResponse "Staff member not found"
// @Router /staff/{id} [delete]
func (c *StaffController) DeleteStaff(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	if err := c.staffService.DeleteStaff(ctx, id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(dto.SuccessResponse{Message: "Staff member deleted successfully"}))
}
