package bootstrap

import (
	"context"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"gorm.io/gorm"

	appControllers "github.com/yigit/coursehub/internal/app/controllers"
	appMigrations "github.com/yigit/coursehub/internal/app/migrations"
	appRepos "github.com/yigit/coursehub/internal/app/repositories"
	appRoutes "github.com/yigit/coursehub/internal/app/routes"
	appServices "github.com/yigit/coursehub/internal/app/services"
	"github.com/yigit/coursehub/internal/app/validators"
	"github.com/yigit/coursehub/internal/config"
	"github.com/yigit/coursehub/internal/db"
	appMiddleware "github.com/yigit/coursehub/internal/middleware"
	"github.com/yigit/coursehub/internal/pkg/logger"
	"github.com/yigit/coursehub/internal/seed"
)

// DefaultConfigPath is used when no config file is given
const DefaultConfigPath = "configs/config.yaml"

// Dependencies holds all the application dependencies
type Dependencies struct {
	CourseService    appServices.CourseService
	CourseController *appControllers.CourseController
	Repos            *appRepos.Repositories
	Logger           zerolog.Logger
}

// Database holds whichever handle the configured engine opened
type Database struct {
	Engine   string
	Postgres *db.PostgresDB
	Gorm     *gorm.DB
}

// Close releases the open handle
func (d *Database) Close() error {
	if d.Postgres != nil {
		d.Postgres.Close()
	}
	if d.Gorm != nil {
		return db.CloseGorm(d.Gorm)
	}
	return nil
}

// LoadConfigAndSetupLogger loads configuration and initializes the logger.
func LoadConfigAndSetupLogger(configPath string) (*config.Config, zerolog.Logger, error) {
	if configPath == "" {
		configPath = DefaultConfigPath
	}
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		logger.Error().Err(err).Msg("Failed to load configuration")
		return nil, zerolog.Logger{}, err
	}

	lgr := logger.Configure(logger.Config{
		Level:  cfg.Logging.Level,
		Format: logger.Format(cfg.Logging.Format),
	})
	lgr.Info().Str("logLevel", cfg.Logging.Level).Str("logFormat", cfg.Logging.Format).Msg("Logger configured")
	return cfg, lgr, nil
}

// OpenDatabase connects with the configured driver and engine
func OpenDatabase(ctx context.Context, cfg *config.Config, lgr zerolog.Logger) (*Database, error) {
	lgr.Info().
		Str("driver", cfg.Database.Driver).
		Str("engine", cfg.Database.Engine).
		Msg("Establishing database connection...")

	database := &Database{Engine: cfg.Database.Engine}
	switch cfg.Database.Engine {
	case config.EnginePGX:
		pg, err := db.NewPostgresDB(ctx, cfg.Database, cfg.GetPostgresConnectionString())
		if err != nil {
			lgr.Error().Err(err).Msg("Failed to connect to database")
			return nil, err
		}
		database.Postgres = pg
	case config.EngineGorm:
		gdb, err := db.NewGormDB(cfg.Database, cfg.GetPostgresConnectionString())
		if err != nil {
			lgr.Error().Err(err).Msg("Failed to connect to database")
			return nil, err
		}
		database.Gorm = gdb
	default:
		return nil, fmt.Errorf("unsupported database engine %q", cfg.Database.Engine)
	}

	lgr.Info().Msg("Database connection successfully established.")
	return database, nil
}

// Migrate creates or updates the schema for the open engine
func Migrate(ctx context.Context, database *Database, lgr zerolog.Logger) error {
	lgr.Info().Msg("Running database migrations...")

	var err error
	switch {
	case database.Postgres != nil:
		err = appMigrations.NewMigrator(database.Postgres.Pool, appMigrations.Files(), lgr).Up(ctx)
	case database.Gorm != nil:
		err = appRepos.NewGormCourseRepository(database.Gorm).AutoMigrate(ctx)
	default:
		err = fmt.Errorf("no open database")
	}
	if err != nil {
		lgr.Error().Err(err).Msg("Database migration error")
		return fmt.Errorf("database migrations failed: %w", err)
	}

	lgr.Info().Msg("Database migrations successfully applied.")
	return nil
}

// SetupDatabase opens the database, then migrates and seeds it as configured.
func SetupDatabase(ctx context.Context, cfg *config.Config, lgr zerolog.Logger) (*Database, error) {
	database, err := OpenDatabase(ctx, cfg, lgr)
	if err != nil {
		return nil, err
	}

	if cfg.Database.AutoMigrate {
		if err := Migrate(ctx, database, lgr); err != nil {
			_ = database.Close()
			return nil, err
		}
	}

	return database, nil
}

// Seed creates the default courses through the service
func Seed(ctx context.Context, deps *Dependencies) error {
	return seed.CreateDefaultData(ctx, deps.CourseService, deps.Logger)
}

// BuildDependencies initializes application repositories, services, and controllers.
func BuildDependencies(database *Database, lgr zerolog.Logger) (*Dependencies, error) {
	deps := &Dependencies{Logger: lgr}

	switch {
	case database.Postgres != nil:
		deps.Repos = appRepos.NewRepositories(database.Postgres.Pool)
	case database.Gorm != nil:
		deps.Repos = appRepos.NewGormRepositories(database.Gorm)
	default:
		return nil, fmt.Errorf("no open database")
	}

	courseValidator := validators.NewCourseValidator()
	deps.CourseService = appServices.NewCourseService(deps.Repos.CourseRepository, courseValidator)
	deps.CourseController = appControllers.NewCourseController(deps.CourseService, courseValidator)

	return deps, nil
}

// SetupRouter configures the Gin engine with middleware and routes.
func SetupRouter(cfg *config.Config, deps *Dependencies, lgr zerolog.Logger) *gin.Engine {
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
		lgr.Info().Msg("Setting Gin mode to release")
	} else {
		gin.SetMode(gin.DebugMode)
		lgr.Info().Msg("Setting Gin mode to debug")
	}

	router := gin.New()
	router.Use(
		gin.Recovery(),
		appMiddleware.RequestID(),
		appMiddleware.RequestLogger(lgr.With().Str("component", "http").Logger()),
	)

	appRoutes.SetupSwagger(router)
	appRoutes.SetupRouter(router, deps.CourseController)

	router.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong", "status": "success"})
	})

	return router
}
