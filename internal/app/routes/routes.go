package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/tsepo/luctreport/internal/app/controllers"
	"github.com/tsepo/luctreport/internal/app/models/dto"
	"github.com/tsepo/luctreport/internal/middleware"
)

// Controllers bundles every controller the router mounts.
type Controllers struct {
	Auth     *controllers.AuthController
	Course   *controllers.CourseController
	Class    *controllers.ClassController
	Report   *controllers.ReportController
	Feedback *controllers.FeedbackController
	Rating   *controllers.RatingController
	User     *controllers.UserController
	Health   *controllers.HealthController
}

// SetupRoutes mounts every API endpoint under /api.
func SetupRoutes(router *gin.Engine, ctrl Controllers, authMW *middleware.AuthMiddleware) {
	api := router.Group("/api")
	{
		api.GET("/health", ctrl.Health.Check)

		api.POST("/register", ctrl.Auth.Register)
		api.POST("/login", ctrl.Auth.Login)
		api.GET("/profile", authMW.JWTAuth(), ctrl.Auth.GetProfile)

		api.POST("/courses", ctrl.Course.Create)
		api.GET("/courses", ctrl.Course.List)

		api.POST("/classes", ctrl.Class.Create)
		api.GET("/classes", ctrl.Class.List)

		api.POST("/reports", ctrl.Report.Create)
		api.GET("/reports", ctrl.Report.List)
		api.GET("/reports/:id", ctrl.Report.GetDetail)

		api.POST("/feedback", ctrl.Feedback.Create)
		api.GET("/feedback/report/:reportId", ctrl.Feedback.ListByReport)

		api.POST("/ratings", ctrl.Rating.Create)
		api.GET("/ratings", ctrl.Rating.List)

		api.GET("/users", ctrl.User.ListUsers)
		api.GET("/lecturers", ctrl.User.ListLecturers)
	}

	router.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, dto.ErrorResponse{Error: "Endpoint not found"})
	})
}
