package controllers

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/tsepo/luctreport/internal/app/models/dto"
	"github.com/tsepo/luctreport/internal/db"
)

// HealthController reports service and database health.
type HealthController struct {
	database *db.PostgresDB
}

// NewHealthController creates a new HealthController instance
func NewHealthController(database *db.PostgresDB) *HealthController {
	return &HealthController{database: database}
}

// Check handles GET /api/health. It pings the database so load balancers see
// connectivity problems, not just a live process.
func (c *HealthController) Check(ctx *gin.Context) {
	pingCtx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()

	if err := c.database.Pool.Ping(pingCtx); err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.HealthResponse{
			Status: "ERROR",
			Error:  err.Error(),
		})
		return
	}

	ctx.JSON(http.StatusOK, dto.HealthResponse{
		Status:   "OK",
		Database: "Connected",
		Message:  "LUCT Reporting API is running",
	})
}
