package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/tsepo/luctreport/internal/app/models/dto"
	"github.com/tsepo/luctreport/internal/app/services"
	"github.com/tsepo/luctreport/internal/middleware"
	"github.com/tsepo/luctreport/internal/pkg/apperrors"
)

// CourseController handles the course catalog endpoints.
type CourseController struct {
	courseService services.CourseService
}

// NewCourseController creates a new CourseController instance
func NewCourseController(courseService services.CourseService) *CourseController {
	return &CourseController{courseService: courseService}
}

// Create handles POST /api/courses.
func (c *CourseController) Create(ctx *gin.Context) {
	var req dto.CreateCourseRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.HandleAPIError(ctx, apperrors.NewValidationError("invalid request body"))
		return
	}

	courseID, err := c.courseService.Create(ctx, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.CreateCourseResponse{
		Message:  "Course created successfully",
		CourseID: courseID,
	})
}

// List handles GET /api/courses with an optional ?stream filter.
func (c *CourseController) List(ctx *gin.Context) {
	courses, err := c.courseService.List(ctx, ctx.Query("stream"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, courses)
}
