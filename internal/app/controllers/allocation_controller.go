package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/samber/lo"

	"github.com/arjun/examhall/internal/app/models"
	"github.com/arjun/examhall/internal/app/models/dto"
	"github.com/arjun/examhall/internal/app/services"
	"github.com/arjun/examhall/internal/middleware"
)

// AllocationController handles seating and duty allocation endpoints
type AllocationController struct {
	allocationService *services.AllocationService
}

// NewAllocationController creates a new AllocationController
func NewAllocationController(allocationService *services.AllocationService) *AllocationController {
	return &AllocationController{
		allocationService: allocationService,
	}
}

// GenerateAllocation runs the allocation engine for one exam
// @Summary Generate seating and duty allocation
// @Description Distributes the eligible roster across classrooms and assigns invigilators, then persists the plan. Fails without saving when capacity or staff run out.
// @Tags allocations
// @Produce json
// @Param examId path int true "Exam ID"
// @Success 201 {object} dto.APIResponse{data=dto.GenerateAllocationResponse} "Allocation generated successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid exam ID"
// @Failure 404 {object} dto.ErrorResponse "Exam not found"
// @Failure 409 {object} dto.ErrorResponse "Allocation already exists for this exam"
// @Failure 422 {object} dto.ErrorResponse "No eligible students, no classrooms, or insufficient capacity or staff"
// @Router /allocations/generate/{examId} [post]
func (c *AllocationController) GenerateAllocation(ctx *gin.Context) {
	examID, ok := parseIDParam(ctx, "examId")
	if !ok {
		return
	}

	result, err := c.allocationService.Generate(ctx, examID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	summary := dto.AllocationSummary{
		TotalStudents:          result.TotalStudentsAllocated,
		TotalStudentsAllocated: result.TotalStudentsAllocated,
		TotalRoomsUsed:         result.TotalRoomsUsed,
		TotalStaffAssigned: lo.SumBy(result.RoomAllocations, func(r *models.RoomAllocation) int {
			return len(r.StaffAssigned)
		}),
	}

	ctx.JSON(http.StatusCreated, dto.NewAPIResponse(dto.GenerateAllocationResponse{
		Allocation: result,
		Summary:    summary,
	}))
}

// GetAllAllocations retrieves all stored allocations
// @Summary List allocations
// @Description Retrieves all stored allocations without room detail, newest first
// @Tags allocations
// @Produce json
// @Success 200 {object} dto.APIResponse{data=[]models.Allocation} "Allocations retrieved successfully"
// @Router /allocations [get]
func (c *AllocationController) GetAllAllocations(ctx *gin.Context) {
	allocations, err := c.allocationService.GetAllAllocations(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(allocations))
}

// GetAllocationByExam retrieves the allocation for one exam
// @Summary Get allocation by exam
// @Description Retrieves the full seating plan and duty roster for an exam
// @Tags allocations
// @Produce json
// @Param examId path int true "Exam ID"
// @Success 200 {object} dto.APIResponse{data=models.Allocation} "Allocation retrieved successfully"
// @Failure 404 {object} dto.ErrorResponse "Allocation not found"
// @Router /allocations/exam/{examId} [get]
func (c *AllocationController) GetAllocationByExam(ctx *gin.Context) {
	examID, ok := parseIDParam(ctx, "examId")
	if !ok {
		return
	}

	allocation, err := c.allocationService.GetAllocationByExam(ctx, examID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(allocation))
}

// DeleteAllocation deletes a stored allocation
// @Summary Delete an allocation
// @Description Removes a stored allocation, which makes regeneration for its exam possible
// @Tags allocations
// @Produce json
// @Param id path int true "Allocation ID"
// @Success 200 {object} dto.APIResponse{data=dto.SuccessResponse} "Allocation deleted successfully"
// @Failure 404 {object} dto.ErrorResponse "Allocation not found"
// @Router /allocations/{id} [delete]
func (c *AllocationController) DeleteAllocation(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	if err := c.allocationService.DeleteAllocation(ctx, id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(dto.SuccessResponse{Message: "Allocation deleted successfully"}))
}
