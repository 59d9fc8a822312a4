package middleware

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arjun/examhall/internal/app/allocation"
	"github.com/arjun/examhall/internal/app/models/dto"
	"github.com/arjun/examhall/internal/pkg/apperrors"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func runHandler(t *testing.T, err error) (*httptest.ResponseRecorder, *dto.ErrorResponse) {
	t.Helper()

	recorder := httptest.NewRecorder()
	ctx, _ := gin.CreateTestContext(recorder)
	ctx.Request = httptest.NewRequest(http.MethodGet, "/test", nil)

	HandleAPIError(ctx, err)

	var resp dto.ErrorResponse
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &resp))
	require.NotNil(t, resp.Error)
	return recorder, &resp
}

func TestHandleAPIError_NotFound(t *testing.T) {
	recorder, resp := runHandler(t, apperrors.ErrExamNotFound)

	assert.Equal(t, http.StatusNotFound, recorder.Code)
	assert.Equal(t, dto.ErrorCodeResourceNotFound, resp.Error.Code)
	assert.False(t, resp.Success)
}

func TestHandleAPIError_Conflict(t *testing.T) {
	recorder, resp := runHandler(t, apperrors.ErrAllocationAlreadyExists)

	assert.Equal(t, http.StatusConflict, recorder.Code)
	assert.Equal(t, dto.ErrorCodeResourceAlreadyExists, resp.Error.Code)
}

func TestHandleAPIError_WrappedValidation(t *testing.T) {
	err := fmt.Errorf("%w: semester must be between 1 and 8", apperrors.ErrValidationFailed)
	recorder, resp := runHandler(t, err)

	assert.Equal(t, http.StatusBadRequest, recorder.Code)
	assert.Equal(t, dto.ErrorCodeValidationFailed, resp.Error.Code)
}

func TestHandleAPIError_InsufficientCapacity(t *testing.T) {
	recorder, resp := runHandler(t, &allocation.InsufficientCapacityError{Shortfall: 7})

	assert.Equal(t, http.StatusUnprocessableEntity, recorder.Code)
	assert.Equal(t, dto.ErrorCodeInsufficientCapacity, resp.Error.Code)

	details, ok := resp.Error.Details.(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, float64(7), details["shortfall"])
}

func TestHandleAPIError_InsufficientStaff(t *testing.T) {
	recorder, resp := runHandler(t, &allocation.InsufficientStaffError{Shortfall: 2, RoomIndex: 3})

	assert.Equal(t, http.StatusUnprocessableEntity, recorder.Code)
	assert.Equal(t, dto.ErrorCodeInsufficientStaff, resp.Error.Code)

	details, ok := resp.Error.Details.(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, float64(2), details["shortfall"])
	assert.Equal(t, float64(3), details["roomIndex"])
}

func TestHandleAPIError_NoEligibleStudents(t *testing.T) {
	recorder, resp := runHandler(t, apperrors.ErrNoEligibleStudents)

	assert.Equal(t, http.StatusUnprocessableEntity, recorder.Code)
	assert.Equal(t, dto.ErrorCodeNoEligibleStudents, resp.Error.Code)
}

func TestHandleAPIError_UnknownErrorIsInternal(t *testing.T) {
	recorder, resp := runHandler(t, fmt.Errorf("connection reset"))

	assert.Equal(t, http.StatusInternalServerError, recorder.Code)
	assert.Equal(t, dto.ErrorCodeInternalServer, resp.Error.Code)
	// Internal details must not leak to the client
	assert.NotContains(t, resp.Error.Message, "connection reset")
}
