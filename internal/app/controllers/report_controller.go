package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/tsepo/luctreport/internal/app/models"
	"github.com/tsepo/luctreport/internal/app/models/dto"
	"github.com/tsepo/luctreport/internal/app/policy"
	"github.com/tsepo/luctreport/internal/app/services"
	"github.com/tsepo/luctreport/internal/middleware"
	"github.com/tsepo/luctreport/internal/pkg/apperrors"
)

// ReportController handles the lecture report endpoints.
type ReportController struct {
	reportService services.ReportService
}

// NewReportController creates a new ReportController instance
func NewReportController(reportService services.ReportService) *ReportController {
	return &ReportController{reportService: reportService}
}

// Create handles POST /api/reports.
func (c *ReportController) Create(ctx *gin.Context) {
	var req dto.CreateReportRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.HandleAPIError(ctx, apperrors.NewValidationError("invalid request body"))
		return
	}

	reportID, err := c.reportService.Create(ctx, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.CreateReportResponse{
		Message:  "Report submitted successfully",
		ReportID: reportID,
	})
}

// List handles GET /api/reports. Visibility narrows by the caller's role:
// lecturers see their own reports, principal lecturers see their stream.
func (c *ReportController) List(ctx *gin.Context) {
	query := policy.ReportQuery{
		Search: ctx.Query("search"),
		Role:   models.Role(ctx.Query("userRole")),
		Stream: ctx.Query("stream"),
	}

	if raw := ctx.Query("userId"); raw != "" {
		userID, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			middleware.HandleAPIError(ctx, apperrors.NewValidationError("userId must be a number"))
			return
		}
		query.UserID = userID
	}

	reports, err := c.reportService.List(ctx, query)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, reports)
}

// GetDetail handles GET /api/reports/:id, returning the report with its
// feedback attached.
func (c *ReportController) GetDetail(ctx *gin.Context) {
	id, err := strconv.ParseInt(ctx.Param("id"), 10, 64)
	if err != nil {
		middleware.HandleAPIError(ctx, apperrors.NewValidationError("report id must be a number"))
		return
	}

	detail, err := c.reportService.GetDetail(ctx, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, detail)
}
