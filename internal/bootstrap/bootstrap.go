package bootstrap

import (
	"context"
	"path/filepath"
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	appControllers "github.com/tsepo/luctreport/internal/app/controllers"
	appRepos "github.com/tsepo/luctreport/internal/app/repositories"
	appRoutes "github.com/tsepo/luctreport/internal/app/routes"
	appServices "github.com/tsepo/luctreport/internal/app/services"
	"github.com/tsepo/luctreport/internal/config"
	"github.com/tsepo/luctreport/internal/db"
	appMiddleware "github.com/tsepo/luctreport/internal/middleware"
	pkgAuth "github.com/tsepo/luctreport/internal/pkg/auth"
	"github.com/tsepo/luctreport/internal/pkg/logger"
	"github.com/tsepo/luctreport/internal/schema"
	"github.com/tsepo/luctreport/internal/seed"
)

// Dependencies holds all the application dependencies
type Dependencies struct {
	AuthService     appServices.AuthService
	CourseService   appServices.CourseService
	ClassService    appServices.ClassService
	ReportService   appServices.ReportService
	FeedbackService appServices.FeedbackService
	RatingService   appServices.RatingService
	UserService     appServices.UserService

	Controllers    appRoutes.Controllers
	AuthMiddleware *appMiddleware.AuthMiddleware
	Repos          *appRepos.Repositories
	JWTService     *pkgAuth.JWTService
	Logger         zerolog.Logger
}

// LoadConfigAndSetupLogger loads configuration and initializes the logger.
func LoadConfigAndSetupLogger() (*config.Config, zerolog.Logger, error) {
	configPath := filepath.Join("configs", "config.yaml")
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		logger.Error().Err(err).Msg("Failed to load configuration")
		return nil, zerolog.Logger{}, err
	}

	logLevel := logger.LogLevel(strings.ToLower(cfg.Logging.Level))
	prettyLog := strings.ToLower(cfg.Logging.Format) == "text"

	logger.Configure(logger.Config{
		Level:  logLevel,
		Pretty: prettyLog,
	})

	lgr := log.Logger
	lgr.Info().Str("logLevel", string(logLevel)).Str("logFormat", cfg.Logging.Format).Msg("Logger configured")
	return cfg, lgr, nil
}

// SetupDatabase connects to PostgreSQL, creates the schema and seeds the
// demo dataset.
func SetupDatabase(cfg *config.Config, lgr zerolog.Logger) (*db.PostgresDB, error) {
	lgr.Info().Msg("Establishing database connection...")
	database, err := db.NewPostgresDB(cfg)
	if err != nil {
		lgr.Error().Err(err).Msg("Failed to connect to database")
		return nil, err
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := schema.Initialize(ctx, database); err != nil {
		lgr.Error().Err(err).Msg("Failed to initialize database schema")
		database.Close()
		return nil, err
	}

	if err := seed.Run(ctx, database); err != nil {
		// Seed data is a convenience; the API works without it.
		lgr.Error().Err(err).Msg("Failed to seed demo data, proceeding anyway...")
	}

	return database, nil
}

// BuildDependencies initializes application repositories, services, and controllers.
func BuildDependencies(cfg *config.Config, database *db.PostgresDB, lgr zerolog.Logger) (*Dependencies, error) {
	deps := &Dependencies{Logger: lgr}

	deps.Repos = appRepos.NewRepositories(database)

	accessTokenExp, err := time.ParseDuration(cfg.JWT.AccessTokenExpiration)
	if err != nil {
		return nil, err
	}
	deps.JWTService = pkgAuth.NewJWTService(pkgAuth.JWTConfig{
		SecretKey:      cfg.JWT.Secret,
		AccessTokenExp: accessTokenExp,
		TokenIssuer:    cfg.JWT.Issuer,
	})

	deps.AuthService = appServices.NewAuthService(deps.Repos.UserRepository, deps.JWTService)
	deps.CourseService = appServices.NewCourseService(deps.Repos.CourseRepository)
	deps.ClassService = appServices.NewClassService(deps.Repos.ClassRepository)
	deps.ReportService = appServices.NewReportService(deps.Repos.ReportRepository, deps.Repos.FeedbackRepository)
	deps.FeedbackService = appServices.NewFeedbackService(deps.Repos.FeedbackRepository)
	deps.RatingService = appServices.NewRatingService(deps.Repos.RatingRepository)
	deps.UserService = appServices.NewUserService(deps.Repos.UserRepository)

	deps.AuthMiddleware = appMiddleware.NewAuthMiddleware(deps.JWTService)

	deps.Controllers = appRoutes.Controllers{
		Auth:     appControllers.NewAuthController(deps.AuthService),
		Course:   appControllers.NewCourseController(deps.CourseService),
		Class:    appControllers.NewClassController(deps.ClassService),
		Report:   appControllers.NewReportController(deps.ReportService),
		Feedback: appControllers.NewFeedbackController(deps.FeedbackService),
		Rating:   appControllers.NewRatingController(deps.RatingService),
		User:     appControllers.NewUserController(deps.UserService),
		Health:   appControllers.NewHealthController(database),
	}

	return deps, nil
}

// SetupRouter configures the Gin engine with middleware and routes.
func SetupRouter(cfg *config.Config, deps *Dependencies, lgr zerolog.Logger) *gin.Engine {
	if strings.ToLower(cfg.Server.Mode) == "production" {
		gin.SetMode(gin.ReleaseMode)
		lgr.Info().Msg("Setting Gin mode to release")
	} else {
		gin.SetMode(gin.DebugMode)
		lgr.Info().Msg("Setting Gin mode to debug")
	}

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(appMiddleware.RequestID())
	router.Use(appMiddleware.RequestLogger(lgr))

	corsConfig := cors.DefaultConfig()
	corsConfig.AllowAllOrigins = true
	corsConfig.AllowHeaders = append(corsConfig.AllowHeaders, "Authorization")
	router.Use(cors.New(corsConfig))

	appRoutes.SetupRoutes(router, deps.Controllers, deps.AuthMiddleware)

	return router
}
