package bootstrap

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	appControllers "github.com/SpecialAgentB3/benwilcox-dev/internal/app/controllers"
	appRepos "github.com/SpecialAgentB3/benwilcox-dev/internal/app/repositories"
	appRoutes "github.com/SpecialAgentB3/benwilcox-dev/internal/app/routes"
	appServices "github.com/SpecialAgentB3/benwilcox-dev/internal/app/services"
	"github.com/SpecialAgentB3/benwilcox-dev/internal/config"
	"github.com/SpecialAgentB3/benwilcox-dev/internal/db"
	appMiddleware "github.com/SpecialAgentB3/benwilcox-dev/internal/middleware"
	"github.com/SpecialAgentB3/benwilcox-dev/internal/pkg/logger"
	"github.com/SpecialAgentB3/benwilcox-dev/internal/pkg/metrics"
)

// Dependencies holds all the application dependencies
type Dependencies struct {
	Store               *appRepos.Store
	Services            *appServices.Services
	CourseController    *appControllers.CourseController
	SelectionController *appControllers.SelectionController
	StateController     *appControllers.StateController
	DatasetController   *appControllers.DatasetController
	Logger              zerolog.Logger
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

// SetupDatabase establishes the database connection the dataset is read from.
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

	return dbPool, nil
}

// LoadStore snapshots the dataset tables into the immutable in-memory store.
// The dataset never changes after this point; every request is served from
// the snapshot.
func LoadStore(cfg *config.Config, dbPool *pgxpool.Pool, lgr zerolog.Logger) (*appRepos.Store, error) {
	lgr.Info().Msg("Loading dataset snapshot...")

	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
	defer cancel()

	tables, err := appRepos.LoadTables(ctx, dbPool, cfg.Dataset.SemesterMappingPath)
	if err != nil {
		lgr.Error().Err(err).Msg("Failed to load dataset")
		return nil, fmt.Errorf("failed to load dataset: %w", err)
	}

	store := appRepos.NewStore(tables)
	lgr.Info().
		Int("courses", len(tables.Courses)).
		Int("listings", len(tables.Listings)).
		Int("offerings", len(tables.Offerings)).
		Int("faculty", len(tables.Faculty)).
		Msg("Dataset snapshot loaded.")
	return store, nil
}

// BuildDependencies initializes application services and controllers.
func BuildDependencies(cfg *config.Config, store *appRepos.Store, lgr zerolog.Logger) *Dependencies {
	deps := &Dependencies{Store: store, Logger: lgr}

	deps.Services = appServices.NewServices(store, cfg.Dataset.CurrentYear)

	deps.CourseController = appControllers.NewCourseController(
		deps.Services.Search,
		deps.Services.Aggregation,
		deps.Services.Export,
	)
	deps.SelectionController = appControllers.NewSelectionController(deps.Services.Selection)
	deps.StateController = appControllers.NewStateController(deps.Services.Session)
	deps.DatasetController = appControllers.NewDatasetController(store, cfg.Dataset.FilePath)

	return deps
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

	metrics.Init()

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(appMiddleware.RequestID())
	router.Use(appMiddleware.RequestLogger())
	router.Use(appMiddleware.Metrics())

	// Setup Swagger
	appRoutes.SetupSwagger(router)

	// Prometheus scrape endpoint
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// Setup API routes using the dependencies
	appRoutes.SetupRouter(router,
		deps.CourseController,
		deps.SelectionController,
		deps.StateController,
		deps.DatasetController,
	)

	return router
}
