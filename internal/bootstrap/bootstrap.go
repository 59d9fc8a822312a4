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
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/patrickmn/go-cache"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	appControllers "github.com/arjun/examhall/internal/app/controllers"
	appMigrations "github.com/arjun/examhall/internal/app/migrations"
	appRepos "github.com/arjun/examhall/internal/app/repositories"
	appRoutes "github.com/arjun/examhall/internal/app/routes"
	appServices "github.com/arjun/examhall/internal/app/services"
	"github.com/arjun/examhall/internal/config"
	"github.com/arjun/examhall/internal/db"
	appMiddleware "github.com/arjun/examhall/internal/middleware"
	"github.com/arjun/examhall/internal/pkg/logger"
	"github.com/arjun/examhall/internal/pkg/validation"
	"github.com/arjun/examhall/internal/seed"
)

// Dependencies holds all the application dependencies
type Dependencies struct {
	StudentService       *appServices.StudentService
	StaffService         *appServices.StaffService
	ClassroomService     *appServices.ClassroomService
	ExamService          *appServices.ExamService
	AllocationService    *appServices.AllocationService
	StudentController    *appControllers.StudentController
	StaffController      *appControllers.StaffController
	ClassroomController  *appControllers.ClassroomController
	ExamController       *appControllers.ExamController
	AllocationController *appControllers.AllocationController
	HealthController     *appControllers.HealthController
	Repos                *appRepos.Repositories
	AllocationCache      *cache.Cache
	Logger               zerolog.Logger
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
// optionally seeds sample data.
func SetupDatabase(cfg *config.Config, lgr zerolog.Logger) (*pgxpool.Pool, error) {
	lgr.Info().Msg("Establishing database connection...")
	database, err := db.NewPostgresDB(cfg)
	if err != nil {
		lgr.Error().Err(err).Msg("Failed to connect to database")
		return nil, err
	}
	dbPool := database.Pool

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := dbPool.Ping(ctx); err != nil {
		lgr.Error().Err(err).Msg("Failed to ping database")
		dbPool.Close()
		return nil, err
	}
	lgr.Info().Msg("Database connection successfully established.")

	lgr.Info().Msg("Running database migrations...")
	migrator := appMigrations.NewMigrator(dbPool)

	migrationsDir := "migrations"
	if _, err := os.Stat(migrationsDir); os.IsNotExist(err) {
		lgr.Error().Str("path", migrationsDir).Msg("Migrations directory not found")
		return nil, fmt.Errorf("migrations directory not found at %s: %w", migrationsDir, err)
	}

	if err := migrator.MigrateFromDirectory(migrationsDir); err != nil {
		lgr.Error().Err(err).Msg("Database migration error")
		return nil, fmt.Errorf("database migrations failed: %w", err)
	}

	lgr.Info().Msg("Database migrations successfully applied.")

	if cfg.Database.Seed {
		if err := seed.CreateSampleData(context.Background(), dbPool, lgr); err != nil {
			// Seeding is convenience data, startup continues without it
			lgr.Error().Err(err).Msg("Failed to seed sample data, proceeding anyway...")
		}
	}

	return dbPool, nil
}

// BuildDependencies initializes application repositories, services, and controllers.
func BuildDependencies(cfg *config.Config, dbPool *pgxpool.Pool, lgr zerolog.Logger) (*Dependencies, error) {
	deps := &Dependencies{Logger: lgr}

	deps.Repos = appRepos.NewRepositories(dbPool)

	deps.StudentService = appServices.NewStudentService(deps.Repos.StudentRepository)
	deps.StaffService = appServices.NewStaffService(deps.Repos.StaffRepository)
	deps.ClassroomService = appServices.NewClassroomService(deps.Repos.ClassroomRepository)
	deps.ExamService = appServices.NewExamService(deps.Repos.ExamRepository)
	deps.AllocationService = appServices.NewAllocationService(
		deps.Repos.ExamRepository,
		deps.Repos.StudentRepository,
		deps.Repos.ClassroomRepository,
		deps.Repos.StaffRepository,
		deps.Repos.AllocationRepository,
		lgr,
	)

	deps.StudentController = appControllers.NewStudentController(deps.StudentService)
	deps.StaffController = appControllers.NewStaffController(deps.StaffService)
	deps.ClassroomController = appControllers.NewClassroomController(deps.ClassroomService)
	deps.ExamController = appControllers.NewExamController(deps.ExamService)
	deps.AllocationController = appControllers.NewAllocationController(deps.AllocationService)
	deps.HealthController = appControllers.NewHealthController(dbPool)

	deps.AllocationCache = cache.New(cfg.CacheTTL(), cfg.CacheCleanupInterval())

	return deps, nil
}

// SetupRouter configures the Gin engine with middleware and routes.
func SetupRouter(cfg *config.Config, deps *Dependencies, lgr zerolog.Logger) (*gin.Engine, error) {
	if strings.ToLower(cfg.Server.Mode) == "production" {
		gin.SetMode(gin.ReleaseMode)
		lgr.Info().Msg("Setting Gin mode to release")
	} else {
		gin.SetMode(gin.DebugMode)
		lgr.Info().Msg("Setting Gin mode to debug")
	}

	if err := validation.RegisterCustomValidators(); err != nil {
		return nil, fmt.Errorf("failed to register custom validators: %w", err)
	}

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(appMiddleware.RequestID())
	router.Use(appMiddleware.RequestLogger())
	router.Use(appMiddleware.RateLimit(cfg.RateLimit.RequestsPerSecond, cfg.RateLimit.Burst))

	appRoutes.SetupSwagger(router)

	appRoutes.SetupRouter(router,
		deps.StudentController,
		deps.StaffController,
		deps.ClassroomController,
		deps.ExamController,
		deps.AllocationController,
		deps.HealthController,
		deps.AllocationCache,
		cfg.CacheTTL(),
	)

	// Test endpoint
	router.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong", "status": "success"})
	})

	return router, nil
}
