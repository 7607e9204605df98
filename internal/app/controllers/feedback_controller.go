package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/tsepo/luctreport/internal/app/models/dto"
	"github.com/tsepo/luctreport/internal/app/services"
	"github.com/tsepo/luctreport/internal/middleware"
	"github.com/tsepo/luctreport/internal/pkg/apperrors"
)

// FeedbackController handles the report feedback endpoints.
type FeedbackController struct {
	feedbackService services.FeedbackService
}

// NewFeedbackController creates a new FeedbackController instance
func NewFeedbackController(feedbackService services.FeedbackService) *FeedbackController {
	return &FeedbackController{feedbackService: feedbackService}
}

// Create handles POST /api/feedback. Only principal lecturers may attach
// feedback, and only to reports that exist.
func (c *FeedbackController) Create(ctx *gin.Context) {
	var req dto.CreateFeedbackRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.HandleAPIError(ctx, apperrors.NewValidationError("invalid request body"))
		return
	}

	feedback, err := c.feedbackService.Create(ctx, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.CreateFeedbackResponse{
		Message:  "Feedback added successfully",
		Feedback: feedback,
	})
}

// ListByReport handles GET /api/feedback/report/:reportId.
func (c *FeedbackController) ListByReport(ctx *gin.Context) {
	reportID, err := strconv.ParseInt(ctx.Param("reportId"), 10, 64)
	if err != nil {
		middleware.HandleAPIError(ctx, apperrors.NewValidationError("report id must be a number"))
		return
	}

	feedbackList, err := c.feedbackService.ListByReport(ctx, reportID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, feedbackList)
}
