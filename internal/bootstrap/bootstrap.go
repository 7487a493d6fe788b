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
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "github.com/oalia/scholarsite/docs" // Import generated swagger docs
	appControllers "github.com/oalia/scholarsite/internal/app/controllers"
	appMigrations "github.com/oalia/scholarsite/internal/app/migrations"
	appRepos "github.com/oalia/scholarsite/internal/app/repositories"
	appRoutes "github.com/oalia/scholarsite/internal/app/routes"
	appServices "github.com/oalia/scholarsite/internal/app/services"
	"github.com/oalia/scholarsite/internal/config"
	"github.com/oalia/scholarsite/internal/db"
	appMiddleware "github.com/oalia/scholarsite/internal/middleware"
	pkgAuth "github.com/oalia/scholarsite/internal/pkg/auth"
	"github.com/oalia/scholarsite/internal/pkg/filestorage"
	"github.com/oalia/scholarsite/internal/pkg/helpers"
	"github.com/oalia/scholarsite/internal/pkg/logger"
	"github.com/oalia/scholarsite/internal/querycache"
	"github.com/oalia/scholarsite/internal/seed"
	"github.com/oalia/scholarsite/internal/session"
)

// Dependencies holds all the application dependencies
type Dependencies struct {
	AuthService           *appServices.AuthService
	PublicationService    *appServices.PublicationService
	ResearchService       *appServices.ResearchService
	TeachingService       *appServices.TeachingService
	MessageService        *appServices.MessageService
	SettingsService       *appServices.SettingsService
	UserService           *appServices.UserService
	AuthController        *appControllers.AuthController
	PublicationController *appControllers.PublicationController
	ResearchController    *appControllers.ResearchController
	TeachingController    *appControllers.TeachingController
	MessageController     *appControllers.MessageController
	SettingsController    *appControllers.SettingsController
	UserController        *appControllers.UserController
	AuthMiddleware        *appMiddleware.AuthMiddleware
	Repos                 *appRepos.Repositories
	JWTService            *pkgAuth.JWTService
	Cache                 *querycache.Cache
	SessionStore          *session.Store
	FileStorage           *filestorage.MinioStorage
	Logger                zerolog.Logger
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
// seeds default data.
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

	if err := seed.CreateDefaultData(context.Background(), dbPool, cfg, lgr); err != nil {
		// Log the error but don't fail the startup.
		lgr.Error().Err(err).Msg("Failed to create default data, proceeding anyway...")
	}

	return dbPool, nil
}

// BuildDependencies initializes repositories, services, controllers and the
// shared query cache.
func BuildDependencies(cfg *config.Config, dbPool *pgxpool.Pool, lgr zerolog.Logger) (*Dependencies, error) {
	deps := &Dependencies{Logger: lgr}

	deps.Repos = appRepos.NewRepositories(dbPool)
	deps.Cache = querycache.New()

	// Expired refresh tokens accumulate between restarts; clear them now.
	if removed, err := deps.Repos.TokenRepository.DeleteExpiredTokens(context.Background()); err != nil {
		lgr.Warn().Err(err).Msg("Failed to clean up expired refresh tokens")
	} else if removed > 0 {
		lgr.Info().Int64("removed", removed).Msg("Expired refresh tokens cleaned up")
	}

	// Object storage for cover images and course materials.
	fileStorage, err := filestorage.NewMinioStorage(filestorage.MinioConfig{
		Endpoint:  cfg.Storage.Endpoint,
		AccessKey: cfg.Storage.AccessKey,
		SecretKey: cfg.Storage.SecretKey,
		UseSSL:    cfg.Storage.UseSSL,
		PublicURL: cfg.Storage.PublicURL,
		Buckets:   []string{cfg.Storage.CoverImagesBucket, cfg.Storage.MaterialsBucket},
	})
	if err != nil {
		lgr.Error().Err(err).Msg("Failed to initialize object storage")
		return nil, fmt.Errorf("failed to initialize object storage: %w", err)
	}
	deps.FileStorage = fileStorage

	deps.JWTService = pkgAuth.NewJWTService(pkgAuth.JWTConfig{
		SecretKey:       cfg.JWT.Secret,
		AccessTokenExp:  helpers.ParseDuration(cfg.JWT.AccessTokenExpiration, 1*time.Hour),
		RefreshTokenExp: helpers.ParseDuration(cfg.JWT.RefreshTokenExpiration, 720*time.Hour),
		TokenIssuer:     cfg.JWT.Issuer,
	})

	deps.AuthService = appServices.NewAuthService(
		deps.Repos.UserRepository,
		deps.Repos.TokenRepository,
		deps.JWTService,
	)
	deps.PublicationService = appServices.NewPublicationService(deps.Repos.PublicationRepository, deps.Cache)
	deps.ResearchService = appServices.NewResearchService(deps.Repos.ResearchRepository, deps.Cache)
	deps.TeachingService = appServices.NewTeachingService(
		deps.Repos.CourseRepository,
		deps.Repos.MaterialRepository,
		deps.FileStorage,
		appServices.StorageBuckets{
			CoverImages: cfg.Storage.CoverImagesBucket,
			Materials:   cfg.Storage.MaterialsBucket,
		},
		deps.Cache,
	)
	deps.MessageService = appServices.NewMessageService(deps.Repos.MessageRepository, deps.Cache)
	deps.SettingsService = appServices.NewSettingsService(deps.Repos.SettingsRepository, deps.Cache)
	deps.UserService = appServices.NewUserService(deps.Repos.UserRepository, deps.Cache)

	// Session store resumes a persisted refresh token on boot and keeps the
	// privilege flag current for every listener.
	gateway := appServices.NewSessionGateway(deps.AuthService, &appServices.FileTokenStore{Path: cfg.Session.TokenFile})
	deps.SessionStore = session.NewStore(gateway, cfg.Admin.Email)
	deps.SessionStore.Subscribe(func(snap session.Snapshot) {
		lgr.Debug().
			Bool("authenticated", snap.Session != nil).
			Bool("privileged", snap.IsPrivileged).
			Bool("loading", snap.IsLoading).
			Msg("Session state changed")
	})
	deps.SessionStore.Init(context.Background())

	deps.AuthMiddleware = appMiddleware.NewAuthMiddleware(deps.JWTService, cfg.Admin.Email)

	deps.AuthController = appControllers.NewAuthController(deps.AuthService, deps.SessionStore, cfg.Admin.Email)
	deps.PublicationController = appControllers.NewPublicationController(deps.PublicationService)
	deps.ResearchController = appControllers.NewResearchController(deps.ResearchService)
	deps.TeachingController = appControllers.NewTeachingController(deps.TeachingService)
	deps.MessageController = appControllers.NewMessageController(deps.MessageService)
	deps.SettingsController = appControllers.NewSettingsController(deps.SettingsService)
	deps.UserController = appControllers.NewUserController(deps.UserService)

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

	// Setup Swagger
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler, ginSwagger.URL("/swagger/doc.json"), ginSwagger.DefaultModelsExpandDepth(1)))

	appRoutes.SetupRouter(router,
		deps.AuthController,
		deps.PublicationController,
		deps.ResearchController,
		deps.TeachingController,
		deps.MessageController,
		deps.SettingsController,
		deps.UserController,
		deps.AuthMiddleware,
	)

	// Test endpoint
	router.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong", "status": "success"})
	})

	return router
}
