package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/tsepo/luctreport/internal/app/models/dto"
	"github.com/tsepo/luctreport/internal/app/services"
	"github.com/tsepo/luctreport/internal/middleware"
	"github.com/tsepo/luctreport/internal/pkg/apperrors"
)

// RatingController handles the rating endpoints.
type RatingController struct {
	ratingService services.RatingService
}

// NewRatingController creates a new RatingController instance
func NewRatingController(ratingService services.RatingService) *RatingController {
	return &RatingController{ratingService: ratingService}
}

// Create handles POST /api/ratings.
func (c *RatingController) Create(ctx *gin.Context) {
	var req dto.CreateRatingRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.HandleAPIError(ctx, apperrors.NewValidationError("invalid request body"))
		return
	}

	ratingID, err := c.ratingService.Create(ctx, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.CreateRatingResponse{
		Message:  "Rating submitted successfully",
		RatingID: ratingID,
	})
}

// List handles GET /api/ratings.
func (c *RatingController) List(ctx *gin.Context) {
	ratings, err := c.ratingService.List(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, ratings)
}
