package middleware

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/arjun/examhall/internal/app/allocation"
	"github.com/arjun/examhall/internal/app/models/dto"
	"github.com/arjun/examhall/internal/pkg/apperrors"
	"github.com/arjun/examhall/internal/pkg/logger"
)

// HandleAPIError maps application errors onto HTTP responses.
//
// Allocation exhaustion errors carry structured shortfall details so
// clients can report exactly how many seats or invigilators were missing.
func HandleAPIError(ctx *gin.Context, err error) {
	if err == nil {
		return
	}

	var capErr *allocation.InsufficientCapacityError
	var staffErr *allocation.InsufficientStaffError

	switch {
	case errors.As(err, &capErr):
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeInsufficientCapacity, capErr.Error())
		errorDetail = errorDetail.WithDetails(map[string]interface{}{"shortfall": capErr.Shortfall})
		ctx.JSON(http.StatusUnprocessableEntity, dto.NewErrorResponse(errorDetail))

	case errors.As(err, &staffErr):
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeInsufficientStaff, staffErr.Error())
		errorDetail = errorDetail.WithDetails(map[string]interface{}{
			"shortfall": staffErr.Shortfall,
			"roomIndex": staffErr.RoomIndex,
		})
		ctx.JSON(http.StatusUnprocessableEntity, dto.NewErrorResponse(errorDetail))

	case apperrors.Is(err, apperrors.ErrNoEligibleStudents):
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeNoEligibleStudents, err.Error())
		ctx.JSON(http.StatusUnprocessableEntity, dto.NewErrorResponse(errorDetail))

	case apperrors.Is(err, apperrors.ErrNoClassrooms, allocation.ErrNoRooms):
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeNoClassrooms, err.Error())
		ctx.JSON(http.StatusUnprocessableEntity, dto.NewErrorResponse(errorDetail))

	case apperrors.Is(err, apperrors.ErrResourceNotFound,
		apperrors.ErrStudentNotFound,
		apperrors.ErrStaffNotFound,
		apperrors.ErrClassroomNotFound,
		apperrors.ErrExamNotFound,
		apperrors.ErrAllocationNotFound):
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeResourceNotFound, err.Error())
		ctx.JSON(http.StatusNotFound, dto.NewErrorResponse(errorDetail))

	case apperrors.Is(err, apperrors.ErrResourceAlreadyExists,
		apperrors.ErrUSNAlreadyExists,
		apperrors.ErrClassroomAlreadyExists,
		apperrors.ErrAllocationAlreadyExists,
		apperrors.ErrConflict):
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeResourceAlreadyExists, err.Error())
		ctx.JSON(http.StatusConflict, dto.NewErrorResponse(errorDetail))

	case apperrors.Is(err, apperrors.ErrValidationFailed, apperrors.ErrBadRequest):
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, err.Error())
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))

	default:
		logger.Error().
			Err(err).
			Str("path", ctx.Request.URL.Path).
			Str("method", ctx.Request.Method).
			Msg("Unhandled API error")

		errorDetail := dto.NewErrorDetail(dto.ErrorCodeInternalServer, "An unexpected error occurred")
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(errorDetail))
	}
}
