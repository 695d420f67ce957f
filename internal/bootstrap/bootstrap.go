package bootstrap

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	appControllers "github.com/emrekoc/acadport/internal/app/controllers"
	appMigrations "github.com/emrekoc/acadport/internal/app/migrations"
	appRepos "github.com/emrekoc/acadport/internal/app/repositories"
	appRoutes "github.com/emrekoc/acadport/internal/app/routes"
	appServices "github.com/emrekoc/acadport/internal/app/services"
	"github.com/emrekoc/acadport/internal/config"
	"github.com/emrekoc/acadport/internal/db"
	appMiddleware "github.com/emrekoc/acadport/internal/middleware"
	pkgAuth "github.com/emrekoc/acadport/internal/pkg/auth"
	"github.com/emrekoc/acadport/internal/pkg/helpers"
	"github.com/emrekoc/acadport/internal/pkg/logger"
	"github.com/emrekoc/acadport/internal/seed"
)

// Dependencies holds all the application dependencies
type Dependencies struct {
	AuthService         appServices.AuthService
	UserService         appServices.UserService
	SubjectService      appServices.SubjectService
	EnrollmentService   appServices.EnrollmentService
	GradeService        appServices.GradeService
	AttendanceService   appServices.AttendanceService
	TimetableService    appServices.TimetableService
	ReevaluationService appServices.ReevaluationService
	ContentService      appServices.ContentService

	AuthController    *appControllers.AuthController
	AdminController   *appControllers.AdminController
	SubjectController *appControllers.SubjectController
	StudentController *appControllers.StudentController
	FacultyController *appControllers.FacultyController
	ParentController  *appControllers.ParentController

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

// SetupDatabase establishes the database connection, runs migrations and
// seeds the default admin account.
func SetupDatabase(cfg *config.Config, lgr zerolog.Logger) (*db.PostgresDB, error) {
	lgr.Info().Msg("Establishing database connection...")
	database, err := db.NewPostgresDB(cfg)
	if err != nil {
		lgr.Error().Err(err).Msg("Failed to connect to database")
		return nil, err
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := database.Pool.Ping(ctx); err != nil {
		lgr.Error().Err(err).Msg("Failed to ping database")
		database.Close()
		return nil, err
	}
	lgr.Info().Msg("Database connection established")

	migrationsDir := "migrations"
	if _, err := os.Stat(migrationsDir); os.IsNotExist(err) {
		lgr.Error().Str("path", migrationsDir).Msg("Migrations directory not found")
		return nil, fmt.Errorf("migrations directory not found at %s: %w", migrationsDir, err)
	}

	migrator := appMigrations.NewMigrator(database.Pool)
	if err := migrator.MigrateFromDirectory(migrationsDir); err != nil {
		lgr.Error().Err(err).Msg("Database migration error")
		return nil, fmt.Errorf("database migrations failed: %w", err)
	}
	lgr.Info().Msg("Database migrations applied")

	repos := appRepos.NewRepositories(database)
	if err := seed.CreateDefaultAdmin(context.Background(), repos, cfg, lgr); err != nil {
		// Not fatal; an admin can still be created manually
		lgr.Error().Err(err).Msg("Failed to seed default admin, proceeding anyway")
	}

	return database, nil
}

// BuildDependencies initializes repositories, services and controllers.
func BuildDependencies(cfg *config.Config, database *db.PostgresDB, lgr zerolog.Logger) (*Dependencies, error) {
	deps := &Dependencies{Logger: lgr}

	deps.Repos = appRepos.NewRepositories(database)

	deps.JWTService = pkgAuth.NewJWTService(pkgAuth.JWTConfig{
		SecretKey:       cfg.JWT.Secret,
		AccessTokenExp:  helpers.ParseDuration(cfg.JWT.AccessTokenExpiration, 24*time.Hour),
		RefreshTokenExp: helpers.ParseDuration(cfg.JWT.RefreshTokenExpiration, 720*time.Hour),
		TokenIssuer:     cfg.JWT.Issuer,
	})

	deps.AuthService = appServices.NewAuthService(deps.Repos.UserRepository, deps.Repos.TokenRepository, deps.JWTService)
	deps.UserService = appServices.NewUserService(deps.Repos.UserRepository)
	deps.SubjectService = appServices.NewSubjectService(deps.Repos.SubjectRepository, deps.Repos.UserRepository)
	deps.EnrollmentService = appServices.NewEnrollmentService(deps.Repos.EnrollmentRepository, deps.Repos.SubjectRepository)
	deps.GradeService = appServices.NewGradeService(deps.Repos.GradeRepository, deps.Repos.EnrollmentRepository)
	deps.AttendanceService = appServices.NewAttendanceService(deps.Repos.AttendanceRepository, deps.Repos.EnrollmentRepository)
	deps.TimetableService = appServices.NewTimetableService(deps.Repos.EnrollmentRepository)
	deps.ReevaluationService = appServices.NewReevaluationService(deps.Repos.ReevaluationRepository, deps.Repos.SubjectRepository)
	deps.ContentService = appServices.NewContentService(deps.Repos.CourseContentRepository, deps.Repos.SubjectRepository, deps.Repos.EnrollmentRepository)

	deps.AuthMiddleware = appMiddleware.NewAuthMiddleware(deps.JWTService)

	deps.AuthController = appControllers.NewAuthController(deps.AuthService)
	deps.AdminController = appControllers.NewAdminController(deps.UserService, deps.ReevaluationService)
	deps.SubjectController = appControllers.NewSubjectController(deps.SubjectService)
	deps.StudentController = appControllers.NewStudentController(
		deps.EnrollmentService,
		deps.GradeService,
		deps.AttendanceService,
		deps.TimetableService,
		deps.ReevaluationService,
		deps.ContentService,
	)
	deps.FacultyController = appControllers.NewFacultyController(
		deps.EnrollmentService,
		deps.GradeService,
		deps.AttendanceService,
		deps.ContentService,
	)
	deps.ParentController = appControllers.NewParentController(
		deps.UserService,
		deps.EnrollmentService,
		deps.GradeService,
		deps.AttendanceService,
		deps.TimetableService,
	)

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
	router.Use(appMiddleware.RequestLogger())

	appRoutes.SetupRouter(router,
		deps.AuthController,
		deps.AdminController,
		deps.SubjectController,
		deps.StudentController,
		deps.FacultyController,
		deps.ParentController,
		deps.AuthMiddleware,
	)

	router.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong", "status": "success"})
	})

	return router
}
