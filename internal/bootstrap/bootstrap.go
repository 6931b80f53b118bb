package bootstrap

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	appControllers "github.com/arjun/hostelmate/internal/app/controllers"
	appMigrations "github.com/arjun/hostelmate/internal/app/migrations"
	appRepos "github.com/arjun/hostelmate/internal/app/repositories"
	appRoutes "github.com/arjun/hostelmate/internal/app/routes"
	appServices "github.com/arjun/hostelmate/internal/app/services"
	"github.com/arjun/hostelmate/internal/config"
	"github.com/arjun/hostelmate/internal/db"
	appMiddleware "github.com/arjun/hostelmate/internal/middleware"
	pkgAuth "github.com/arjun/hostelmate/internal/pkg/auth"
	"github.com/arjun/hostelmate/internal/pkg/email"
	"github.com/arjun/hostelmate/internal/pkg/filestorage"
	"github.com/arjun/hostelmate/internal/pkg/helpers"
	"github.com/arjun/hostelmate/internal/pkg/logger"
	"github.com/arjun/hostelmate/internal/seed"
)

// Dependencies holds all the application dependencies
type Dependencies struct {
	AuthService        *appServices.AuthService
	DirectorService    *appServices.DirectorService
	InstituteService   *appServices.InstituteService
	CourseService      *appServices.CourseService
	StudentService     *appServices.StudentService
	HostelService      *appServices.HostelService
	RoomService        *appServices.RoomService
	ManagerService     *appServices.ManagerService
	ApplicationService *appServices.ApplicationService
	AllocationService  *appServices.AllocationService
	PaymentService     *appServices.PaymentService

	AuthController        *appControllers.AuthController
	DirectorController    *appControllers.DirectorController
	InstituteController   *appControllers.InstituteController
	StudentController     *appControllers.StudentController
	HostelController      *appControllers.HostelController
	RoomController        *appControllers.RoomController
	ManagerController     *appControllers.ManagerController
	ApplicationController *appControllers.ApplicationController
	AllocationController  *appControllers.AllocationController
	PaymentController     *appControllers.PaymentController

	AuthMiddleware *appMiddleware.AuthMiddleware
	Repos          *appRepos.Repositories
	JWTService     *pkgAuth.JWTService
	EmailService   email.EmailService
	FileStorage    *filestorage.LocalStorage
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

// SetupDatabase establishes the database connection, runs migrations and seeds default data.
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
	lgr.Info().Msg("Database connection successfully established.")

	lgr.Info().Msg("Running database migrations...")
	migrationsDir := "migrations"
	if _, err := os.Stat(migrationsDir); os.IsNotExist(err) {
		lgr.Error().Str("path", migrationsDir).Msg("Migrations directory not found")
		database.Close()
		return nil, fmt.Errorf("migrations directory not found at %s: %w", migrationsDir, err)
	}

	migrator := appMigrations.NewMigrator(database.Pool)
	if err := migrator.MigrateFromDirectory(migrationsDir); err != nil {
		lgr.Error().Err(err).Msg("Database migration error")
		database.Close()
		return nil, fmt.Errorf("database migrations failed: %w", err)
	}
	lgr.Info().Msg("Database migrations successfully applied.")

	if err := seed.CreateDefaultData(context.Background(), database.Pool, lgr); err != nil {
		// Seeding problems should not block startup
		lgr.Error().Err(err).Msg("Failed to create default data, proceeding anyway...")
	}

	return database, nil
}

// BuildDependencies initializes application repositories, services and controllers.
func BuildDependencies(cfg *config.Config, database *db.PostgresDB, lgr zerolog.Logger) (*Dependencies, error) {
	deps := &Dependencies{Logger: lgr}

	deps.Repos = appRepos.NewRepositories(database.Pool)

	// The file storage base URL must match the static file serving path
	fileStorageBaseURL := strings.TrimRight(cfg.Server.BaseURL, "/") + "/uploads"
	var err error
	deps.FileStorage, err = filestorage.NewLocalStorage(cfg.Server.StoragePath, fileStorageBaseURL)
	if err != nil {
		lgr.Error().Err(err).Msg("Failed to initialize file storage")
		return nil, fmt.Errorf("failed to initialize file storage: %w", err)
	}

	deps.JWTService = pkgAuth.NewJWTService(pkgAuth.JWTConfig{
		SecretKey:       cfg.JWT.Secret,
		AccessTokenExp:  helpers.ParseDuration(cfg.JWT.AccessTokenExpiration, 1*time.Hour),
		RefreshTokenExp: helpers.ParseDuration(cfg.JWT.RefreshTokenExpiration, 720*time.Hour),
		TokenIssuer:     cfg.JWT.Issuer,
	})

	deps.EmailService = email.NewEmailService(email.SMTPConfig{
		Host:      cfg.SMTP.Host,
		Port:      cfg.SMTP.Port,
		Username:  cfg.SMTP.Username,
		Password:  cfg.SMTP.Password,
		FromName:  cfg.SMTP.FromName,
		FromEmail: cfg.SMTP.FromEmail,
		UseTLS:    cfg.SMTP.UseTLS,
		BaseURL:   cfg.Server.BaseURL,
	}, lgr)

	deps.AuthService = appServices.NewAuthService(
		deps.Repos.UserRepository,
		deps.Repos.TokenRepository,
		deps.Repos.PasswordResetTokenRepository,
		deps.Repos.InstituteRepository,
		deps.Repos.CourseRepository,
		deps.Repos.BranchRepository,
		database,
		deps.JWTService,
		deps.EmailService,
		cfg,
		lgr,
	)
	deps.DirectorService = appServices.NewDirectorService(
		deps.Repos.UserRepository,
		deps.Repos.InstituteRepository,
		database,
		lgr,
	)
	deps.InstituteService = appServices.NewInstituteService(deps.Repos.InstituteRepository, deps.Repos.UserRepository, lgr)
	deps.CourseService = appServices.NewCourseService(deps.Repos.CourseRepository, deps.Repos.BranchRepository, deps.Repos.UserRepository, lgr)
	deps.StudentService = appServices.NewStudentService(deps.Repos.UserRepository, deps.Repos.CourseRepository, deps.Repos.BranchRepository, lgr)
	deps.HostelService = appServices.NewHostelService(deps.Repos.HostelRepository, deps.Repos.UserRepository, deps.FileStorage, lgr)
	deps.RoomService = appServices.NewRoomService(deps.Repos.RoomRepository, deps.Repos.HostelRepository, deps.Repos.UserRepository, lgr)
	deps.ManagerService = appServices.NewManagerService(deps.Repos.UserRepository, deps.Repos.HostelRepository, database, lgr)
	deps.ApplicationService = appServices.NewApplicationService(
		deps.Repos.ApplicationRepository,
		deps.Repos.AllocationRepository,
		deps.Repos.HostelRepository,
		deps.Repos.UserRepository,
		lgr,
	)
	deps.AllocationService = appServices.NewAllocationService(
		deps.Repos.AllocationRepository,
		deps.Repos.ApplicationRepository,
		deps.Repos.RoomRepository,
		deps.Repos.HostelRepository,
		deps.Repos.UserRepository,
		database,
		lgr,
	)
	deps.PaymentService = appServices.NewPaymentService(
		deps.Repos.PaymentRepository,
		deps.Repos.AllocationRepository,
		deps.Repos.UserRepository,
		lgr,
	)

	deps.AuthMiddleware = appMiddleware.NewAuthMiddleware(deps.JWTService)

	deps.AuthController = appControllers.NewAuthController(deps.AuthService)
	deps.DirectorController = appControllers.NewDirectorController(deps.DirectorService)
	deps.InstituteController = appControllers.NewInstituteController(deps.InstituteService, deps.CourseService)
	deps.StudentController = appControllers.NewStudentController(deps.StudentService)
	deps.HostelController = appControllers.NewHostelController(deps.HostelService)
	deps.RoomController = appControllers.NewRoomController(deps.RoomService)
	deps.ManagerController = appControllers.NewManagerController(deps.ManagerService)
	deps.ApplicationController = appControllers.NewApplicationController(deps.ApplicationService)
	deps.AllocationController = appControllers.NewAllocationController(deps.AllocationService)
	deps.PaymentController = appControllers.NewPaymentController(deps.PaymentService)

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

	appRoutes.SetupRouter(router,
		deps.AuthController,
		deps.DirectorController,
		deps.InstituteController,
		deps.StudentController,
		deps.HostelController,
		deps.RoomController,
		deps.ManagerController,
		deps.ApplicationController,
		deps.AllocationController,
		deps.PaymentController,
		deps.AuthMiddleware,
		cfg.Server.StoragePath,
	)

	return router
}
