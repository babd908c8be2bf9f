package bootstrap

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	appControllers "github.com/anup/resultportal/internal/app/controllers"
	appRepos "github.com/anup/resultportal/internal/app/repositories"
	appRoutes "github.com/anup/resultportal/internal/app/routes"
	appServices "github.com/anup/resultportal/internal/app/services"
	"github.com/anup/resultportal/internal/config"
	"github.com/anup/resultportal/internal/db"
	appMiddleware "github.com/anup/resultportal/internal/middleware"
	"github.com/anup/resultportal/internal/migrations"
	"github.com/anup/resultportal/internal/pkg/logger"
	"github.com/anup/resultportal/internal/pkg/session"
	"github.com/anup/resultportal/internal/seed"
)

// Dependencies holds all the application dependencies
type Dependencies struct {
	AuthService         appServices.AuthService
	AccountService      appServices.AccountService
	StudentService      appServices.StudentService
	MarksheetService    appServices.MarksheetService
	AuthController      *appControllers.AuthController
	AccountController   *appControllers.AccountController
	StudentController   *appControllers.StudentController
	MarksheetController *appControllers.MarksheetController
	SessionMiddleware   *appMiddleware.SessionMiddleware
	SessionStore        session.Store
	Repos               *appRepos.Repositories
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

	logger.Configure(logger.Config{
		Level:  cfg.Logging.Level,
		Pretty: strings.ToLower(cfg.Logging.Format) == "text",
	})

	lgr := log.Logger
	lgr.Info().Str("logLevel", cfg.Logging.Level).Str("logFormat", cfg.Logging.Format).Msg("Logger configured")
	return cfg, lgr, nil
}

// SetupDatabase connects to Postgres, applies the schema, and seeds the
// default admin account.
func SetupDatabase(cfg *config.Config, lgr zerolog.Logger) (*pgxpool.Pool, error) {
	dbPool, err := db.NewPostgresPool(cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := migrations.NewMigrator(dbPool).Migrate(ctx); err != nil {
		dbPool.Close()
		return nil, fmt.Errorf("failed to migrate schema: %w", err)
	}

	if err := seed.CreateDefaultAdmin(ctx, dbPool, cfg, lgr); err != nil {
		dbPool.Close()
		return nil, fmt.Errorf("failed to seed default admin: %w", err)
	}

	return dbPool, nil
}

// BuildDependencies wires repositories, services, controllers, and the
// session gate.
func BuildDependencies(cfg *config.Config, dbPool *pgxpool.Pool, lgr zerolog.Logger) (*Dependencies, error) {
	repos := appRepos.NewRepositories(dbPool)

	var sessionStore session.Store
	switch cfg.Session.Backend {
	case "memory":
		sessionStore = session.NewMemoryStore(cfg.SessionTTL())
	default:
		sessionStore = session.NewPostgresStore(dbPool, cfg.SessionTTL())
	}

	authService := appServices.NewAuthService(repos.AccountRepository, sessionStore)
	accountService := appServices.NewAccountService(repos.AccountRepository, sessionStore)
	studentService := appServices.NewStudentService(repos.StudentRepository)
	marksheetService := appServices.NewMarksheetService(repos.MarksheetRepository)

	deps := &Dependencies{
		AuthService:         authService,
		AccountService:      accountService,
		StudentService:      studentService,
		MarksheetService:    marksheetService,
		AuthController:      appControllers.NewAuthController(authService),
		AccountController:   appControllers.NewAccountController(accountService),
		StudentController:   appControllers.NewStudentController(studentService),
		MarksheetController: appControllers.NewMarksheetController(marksheetService),
		SessionMiddleware:   appMiddleware.NewSessionMiddleware(sessionStore),
		SessionStore:        sessionStore,
		Repos:               repos,
		Logger:              lgr,
	}

	lgr.Info().Str("sessionBackend", cfg.Session.Backend).Msg("Dependencies wired")
	return deps, nil
}

// SetupRouter builds the gin engine with middleware and routes.
func SetupRouter(cfg *config.Config, deps *Dependencies, lgr zerolog.Logger) *gin.Engine {
	if strings.ToLower(cfg.Server.Mode) == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(appMiddleware.RequestLogger())

	appRoutes.SetupRouter(
		router,
		deps.AuthController,
		deps.AccountController,
		deps.StudentController,
		deps.MarksheetController,
		deps.SessionMiddleware,
	)

	lgr.Info().Msg("Router configured")
	return router
}
