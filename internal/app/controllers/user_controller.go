package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/tsepo/luctreport/internal/app/services"
	"github.com/tsepo/luctreport/internal/middleware"
)

// UserController handles the user directory endpoints.
type UserController struct {
	userService services.UserService
}

// NewUserController creates a new UserController instance
func NewUserController(userService services.UserService) *UserController {
	return &UserController{userService: userService}
}

// ListUsers handles GET /api/users. Password hashes are never included.
func (c *UserController) ListUsers(ctx *gin.Context) {
	users, err := c.userService.ListUsers(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, users)
}

// ListLecturers handles GET /api/lecturers, the lecturer picker list.
func (c *UserController) ListLecturers(ctx *gin.Context) {
	lecturers, err := c.userService.ListLecturers(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, lecturers)
}
