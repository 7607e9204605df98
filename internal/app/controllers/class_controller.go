package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/tsepo/luctreport/internal/app/models/dto"
	"github.com/tsepo/luctreport/internal/app/services"
	"github.com/tsepo/luctreport/internal/middleware"
	"github.com/tsepo/luctreport/internal/pkg/apperrors"
)

// ClassController handles the class catalog endpoints.
type ClassController struct {
	classService services.ClassService
}

// NewClassController creates a new ClassController instance
func NewClassController(classService services.ClassService) *ClassController {
	return &ClassController{classService: classService}
}

// Create handles POST /api/classes.
func (c *ClassController) Create(ctx *gin.Context) {
	var req dto.CreateClassRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.HandleAPIError(ctx, apperrors.NewValidationError("invalid request body"))
		return
	}

	classID, err := c.classService.Create(ctx, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.CreateClassResponse{
		Message: "Class created successfully",
		ClassID: classID,
	})
}

// List handles GET /api/classes with an optional ?stream filter.
func (c *ClassController) List(ctx *gin.Context) {
	classes, err := c.classService.List(ctx, ctx.Query("stream"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, classes)
}
