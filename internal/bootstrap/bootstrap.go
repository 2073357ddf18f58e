package bootstrap

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	appControllers "github.com/mokoena/studenthub/internal/app/controllers"
	appMigrations "github.com/mokoena/studenthub/internal/app/migrations"
	appRepos "github.com/mokoena/studenthub/internal/app/repositories"
	appRoutes "github.com/mokoena/studenthub/internal/app/routes"
	appServices "github.com/mokoena/studenthub/internal/app/services"
	"github.com/mokoena/studenthub/internal/config"
	"github.com/mokoena/studenthub/internal/db"
	"github.com/mokoena/studenthub/internal/pkg/helpers"
	"github.com/mokoena/studenthub/internal/pkg/insights"
	"github.com/mokoena/studenthub/internal/pkg/logger"
	"github.com/mokoena/studenthub/internal/pkg/websocket"
	"github.com/mokoena/studenthub/internal/relay"
	"github.com/mokoena/studenthub/internal/seed"
)

// Dependencies holds all the application dependencies
type Dependencies struct {
	FacultyService   appServices.FacultyService
	ProgrammeService appServices.ProgrammeService
	ModuleService    appServices.ModuleService
	StudentService   appServices.StudentService
	EnrolmentService appServices.EnrolmentService
	AnalyticsService appServices.AnalyticsService

	FacultyController   *appControllers.FacultyController
	ProgrammeController *appControllers.ProgrammeController
	ModuleController    *appControllers.ModuleController
	StudentController   *appControllers.StudentController
	EnrolmentController *appControllers.EnrolmentController
	AnalyticsController *appControllers.AnalyticsController

	Hub             *websocket.Hub
	RealtimeHandler *websocket.Handler
	ChangeListener  *db.ChangeListener
	Relay           *relay.Relay

	Repos  *appRepos.Repositories
	Logger zerolog.Logger
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

// SetupDatabase establishes the database connection and runs migrations.
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

	if err := seed.CreateDefaultData(context.Background(), dbPool, lgr); err != nil {
		// Log the error but don't fail the startup
		lgr.Error().Err(err).Msg("Failed to create default data, proceeding anyway...")
	}

	return dbPool, nil
}

// BuildDependencies initializes repositories, services, controllers and
// the realtime pipeline.
func BuildDependencies(cfg *config.Config, dbPool *pgxpool.Pool, lgr zerolog.Logger) (*Dependencies, error) {
	deps := &Dependencies{Logger: lgr}

	deps.Repos = appRepos.NewRepositories(dbPool)

	narrator := insights.New(cfg.OpenAI.APIKey, cfg.OpenAI.Model)

	deps.FacultyService = appServices.NewFacultyService(deps.Repos.FacultyRepository)
	deps.ProgrammeService = appServices.NewProgrammeService(deps.Repos.ProgrammeRepository, deps.Repos.FacultyRepository)
	deps.ModuleService = appServices.NewModuleService(deps.Repos.ModuleRepository, deps.Repos.ProgrammeRepository)
	deps.StudentService = appServices.NewStudentService(deps.Repos.StudentRepository, deps.Repos.ProgrammeRepository)
	deps.EnrolmentService = appServices.NewEnrolmentService(deps.Repos.EnrolmentRepository, deps.Repos.StudentRepository, deps.Repos.ModuleRepository)
	deps.AnalyticsService = appServices.NewAnalyticsService(deps.Repos.AnalyticsRepository, narrator, lgr)

	deps.FacultyController = appControllers.NewFacultyController(deps.FacultyService)
	deps.ProgrammeController = appControllers.NewProgrammeController(deps.ProgrammeService)
	deps.ModuleController = appControllers.NewModuleController(deps.ModuleService)
	deps.StudentController = appControllers.NewStudentController(deps.StudentService)
	deps.EnrolmentController = appControllers.NewEnrolmentController(deps.EnrolmentService)
	deps.AnalyticsController = appControllers.NewAnalyticsController(deps.AnalyticsService)

	// Realtime pipeline: trigger notices -> listener -> relay -> hub
	deps.Hub = websocket.NewHub(lgr)
	deps.RealtimeHandler = websocket.NewHandler(deps.Hub, func(ctx context.Context) (websocket.Event, error) {
		return websocket.Event{
			Event: relay.EventAnalyticsUpdate,
			Data:  deps.AnalyticsService.GenerateAnalytics(ctx),
		}, nil
	}, lgr)
	deps.ChangeListener = db.NewChangeListener(cfg.GetPostgresConnectionString(), lgr)
	deps.Relay = relay.New(
		deps.AnalyticsService,
		deps.ChangeListener.Events(),
		deps.Hub,
		helpers.ParseDuration(cfg.Analytics.Interval, 30*time.Second),
		helpers.ParseDuration(cfg.Analytics.Debounce, time.Second),
		lgr,
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

	router := gin.Default()

	router.Use(cors.New(cors.Config{
		AllowOrigins:     []string{cfg.CORS.AllowedOrigin},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	appRoutes.SetupSwagger(router)

	appRoutes.SetupRouter(router,
		deps.FacultyController,
		deps.ProgrammeController,
		deps.ModuleController,
		deps.StudentController,
		deps.EnrolmentController,
		deps.AnalyticsController,
		deps.RealtimeHandler,
	)

	return router
}
