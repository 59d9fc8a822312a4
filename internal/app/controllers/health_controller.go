package controllers

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/arjun/examhall/internal/app/models/dto"
)

// HealthController reports service and database health
type HealthController struct {
	dbPool *pgxpool.Pool
}

// NewHealthController creates a new HealthController
func NewHealthController(dbPool *pgxpool.Pool) *HealthController {
	return &HealthController{
		dbPool: dbPool,
	}
}

// HealthStatus is the health endpoint payload
type HealthStatus struct {
	Status   string `json:"status" example:"ok"`
	Database string `json:"database" example:"ok"`
}

// Check reports liveness and database connectivity
// @Summary Health check
// @Description Reports service status and database connectivity
// @Tags health
// @Produce json
// @Success 200 {object} dto.APIResponse{data=controllers.HealthStatus} "Service is healthy"
// @Failure 503 {object} dto.ErrorResponse "Database unreachable"
// @Router /health [get]
func (c *HealthController) Check(ctx *gin.Context) {
	pingCtx, cancel := context.WithTimeout(ctx.Request.Context(), 2*time.Second)
	defer cancel()

	if err := c.dbPool.Ping(pingCtx); err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeDatabaseError, "Database unreachable")
		ctx.JSON(http.StatusServiceUnavailable, dto.NewErrorResponse(errorDetail))
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(HealthStatus{Status: "ok", Database: "ok"}))
}
